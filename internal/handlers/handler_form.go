package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/audit_dashboard/internal/core/ports/services"
	"github.com/SscSPs/audit_dashboard/internal/dto"
	"github.com/SscSPs/audit_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

// formHandler exposes audit record form sessions.
type formHandler struct {
	formService portssvc.FormSessionSvc
}

func registerFormRoutes(rg *gin.RouterGroup, formService portssvc.FormSessionSvc) {
	h := &formHandler{formService: formService}

	forms := rg.Group("/forms")
	{
		forms.POST("", h.openForm)
		forms.GET("/:id", h.getForm)
		forms.PATCH("/:id", h.updateForm)
		forms.POST("/:id/submit", h.submitForm)
		forms.DELETE("/:id", h.cancelForm)
	}
}

// openForm godoc
// @Summary Open an audit record form
// @Description Opens a creation form, or an edit form when recordId is given
// @Tags forms
// @Accept  json
// @Produce  json
// @Param   form body dto.OpenFormRequest false "Record to edit"
// @Success 201 {object} dto.FormResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Audit record not found"
// @Router /forms [post]
func (h *formHandler) openForm(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.OpenFormRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		logger.Warn("Failed to bind JSON for OpenForm", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	form, err := h.formService.OpenForm(c.Request.Context(), req.RecordID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to open form")
		return
	}
	c.JSON(http.StatusCreated, dto.ToFormResponse(form))
}

// getForm godoc
// @Summary Get a form session
// @Tags forms
// @Produce  json
// @Param   id path string true "Form ID"
// @Success 200 {object} dto.FormResponse
// @Failure 404 {object} map[string]string "Form not found"
// @Router /forms/{id} [get]
func (h *formHandler) getForm(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	form, err := h.formService.GetForm(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve form")
		return
	}
	c.JSON(http.StatusOK, dto.ToFormResponse(form))
}

// updateForm godoc
// @Summary Edit form fields
// @Description Applies field edits to an open form. Omitted fields are unchanged.
// @Tags forms
// @Accept  json
// @Produce  json
// @Param   id path string true "Form ID"
// @Param   fields body dto.UpdateFormRequest true "Field edits"
// @Success 200 {object} dto.FormResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Form not found"
// @Router /forms/{id} [patch]
func (h *formHandler) updateForm(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateForm", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	form, err := h.formService.UpdateForm(c.Request.Context(), c.Param("id"), req.ToDomain())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update form")
		return
	}
	c.JSON(http.StatusOK, dto.ToFormResponse(form))
}

// submitForm godoc
// @Summary Submit a form
// @Description Validates and saves the form. On validation failure the form stays open.
// @Tags forms
// @Produce  json
// @Param   id path string true "Form ID"
// @Success 200 {object} dto.AuditRecordResponse
// @Failure 400 {object} map[string]string "Validation failed"
// @Failure 404 {object} map[string]string "Form not found"
// @Failure 500 {object} map[string]string "Failed to submit form"
// @Router /forms/{id}/submit [post]
func (h *formHandler) submitForm(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("form_id", c.Param("id")))

	record, err := h.formService.SubmitForm(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to submit form")
		return
	}
	logger.Info("Form submitted", slog.String("record_id", record.ID))
	c.JSON(http.StatusOK, dto.ToAuditRecordResponse(*record))
}

// cancelForm godoc
// @Summary Cancel a form
// @Tags forms
// @Param   id path string true "Form ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Form not found"
// @Router /forms/{id} [delete]
func (h *formHandler) cancelForm(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.formService.CancelForm(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, logger, err, "Failed to cancel form")
		return
	}
	c.Status(http.StatusNoContent)
}
