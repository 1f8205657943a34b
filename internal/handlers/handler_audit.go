package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/audit_dashboard/internal/core/ports/services"
	"github.com/SscSPs/audit_dashboard/internal/dto"
	"github.com/SscSPs/audit_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

// auditHandler handles HTTP requests related to audit records.
type auditHandler struct {
	auditService  portssvc.AuditSvcFacade
	creator       portssvc.AuditCreatorSvc
	exportService portssvc.ExportSvc
}

// registerAuditRoutes registers routes related to audit records.
func registerAuditRoutes(rg *gin.RouterGroup, auditService portssvc.AuditSvcFacade, creator portssvc.AuditCreatorSvc, exportService portssvc.ExportSvc) {
	h := &auditHandler{auditService: auditService, creator: creator, exportService: exportService}

	audits := rg.Group("/audits")
	{
		audits.GET("", h.listAuditRecords)
		audits.POST("", h.createAuditRecord)
		audits.GET("/:id", h.getAuditRecord)
		audits.DELETE("/:id", h.deleteAuditRecord)
		audits.GET("/:id/export", h.exportAuditRecord)
	}
}

// listAuditRecords godoc
// @Summary List audit records
// @Description Lists audit records most recent first, optionally filtered by a case-insensitive search over title and description
// @Tags audits
// @Produce  json
// @Param   q query string false "Search term"
// @Success 200 {array} dto.AuditRecordResponse
// @Failure 500 {object} map[string]string "Failed to list audit records"
// @Router /audits [get]
func (h *auditHandler) listAuditRecords(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	query := c.Query("q")

	views, err := h.auditService.ListAuditRecords(c.Request.Context(), query)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list audit records")
		return
	}

	logger.Debug("Audit records listed", slog.String("query", query), slog.Int("count", len(views)))
	c.JSON(http.StatusOK, dto.ToListAuditRecordViewResponse(views))
}

// createAuditRecord godoc
// @Summary Create an audit record
// @Description Creates an audit record in one call. Unknown client names and new creator names create the client or user.
// @Tags audits
// @Accept  json
// @Produce  json
// @Param   record body dto.CreateAuditRecordRequest true "Audit record details"
// @Success 201 {object} dto.AuditRecordResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create audit record"
// @Router /audits [post]
func (h *auditHandler) createAuditRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAuditRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAuditRecord", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	record, err := h.creator.CreateAuditRecord(c.Request.Context(), req.ToFormFields())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create audit record")
		return
	}

	c.JSON(http.StatusCreated, dto.ToAuditRecordResponse(*record))
}

// getAuditRecord godoc
// @Summary Get an audit record
// @Tags audits
// @Produce  json
// @Param   id path string true "Audit record ID"
// @Success 200 {object} dto.AuditRecordResponse
// @Failure 404 {object} map[string]string "Audit record not found"
// @Failure 500 {object} map[string]string "Failed to retrieve audit record"
// @Router /audits/{id} [get]
func (h *auditHandler) getAuditRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("record_id", c.Param("id")))

	view, err := h.auditService.GetAuditRecord(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve audit record")
		return
	}
	c.JSON(http.StatusOK, dto.ToAuditRecordViewResponse(*view))
}

// deleteAuditRecord godoc
// @Summary Delete an audit record
// @Description Removes an audit record. Deleting an unknown ID succeeds without changes.
// @Tags audits
// @Param   id path string true "Audit record ID"
// @Success 204 "No Content"
// @Failure 500 {object} map[string]string "Failed to delete audit record"
// @Router /audits/{id} [delete]
func (h *auditHandler) deleteAuditRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("record_id", c.Param("id")))

	if err := h.auditService.DeleteAuditRecord(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete audit record")
		return
	}
	c.Status(http.StatusNoContent)
}

// exportAuditRecord godoc
// @Summary Export an audit record
// @Description Renders a printable HTML page for one audit record
// @Tags audits
// @Produce  html
// @Param   id path string true "Audit record ID"
// @Success 200 {string} string "HTML document"
// @Failure 404 {object} map[string]string "Audit record not found"
// @Failure 500 {object} map[string]string "Failed to export audit record"
// @Router /audits/{id}/export [get]
func (h *auditHandler) exportAuditRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("record_id", c.Param("id")))

	var page bytes.Buffer
	if err := h.exportService.RenderAuditRecord(c.Request.Context(), c.Param("id"), &page); err != nil {
		respondServiceError(c, logger, err, "Failed to export audit record")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page.Bytes())
}
