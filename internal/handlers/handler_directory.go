package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/audit_dashboard/internal/core/ports/services"
	"github.com/SscSPs/audit_dashboard/internal/dto"
	"github.com/SscSPs/audit_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

type directoryHandler struct {
	directory portssvc.DirectorySvc
	audits    portssvc.AuditReaderSvc
}

func registerDirectoryRoutes(rg *gin.RouterGroup, directory portssvc.DirectorySvc, audits portssvc.AuditReaderSvc) {
	h := &directoryHandler{directory: directory, audits: audits}

	rg.GET("/clients", h.listClients)
	rg.GET("/users", h.listUsers)
	rg.GET("/stats", h.getStats)
}

// listClients godoc
// @Summary List clients
// @Tags directory
// @Produce  json
// @Success 200 {array} dto.ClientResponse
// @Failure 500 {object} map[string]string "Failed to list clients"
// @Router /clients [get]
func (h *directoryHandler) listClients(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	clients, err := h.directory.ListClients(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list clients")
		return
	}
	c.JSON(http.StatusOK, dto.ToListClientResponse(clients))
}

// listUsers godoc
// @Summary List users
// @Tags directory
// @Produce  json
// @Success 200 {array} dto.UserResponse
// @Failure 500 {object} map[string]string "Failed to list users"
// @Router /users [get]
func (h *directoryHandler) listUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	users, err := h.directory.ListUsers(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list users")
		return
	}
	c.JSON(http.StatusOK, dto.ToListUserResponse(users))
}

// getStats godoc
// @Summary Dashboard statistics
// @Description Counts audit records per status
// @Tags directory
// @Produce  json
// @Success 200 {object} dto.StatsResponse
// @Failure 500 {object} map[string]string "Failed to compute stats"
// @Router /stats [get]
func (h *directoryHandler) getStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stats, err := h.audits.GetStats(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute stats")
		return
	}
	c.JSON(http.StatusOK, dto.ToStatsResponse(stats))
}
