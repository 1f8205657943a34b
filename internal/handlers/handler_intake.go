package handlers

import (
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/SscSPs/audit_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/audit_dashboard/internal/core/ports/services"
	"github.com/SscSPs/audit_dashboard/internal/dto"
	"github.com/SscSPs/audit_dashboard/internal/middleware"
	"github.com/SscSPs/audit_dashboard/internal/utils"
	"github.com/gin-gonic/gin"
)

// filesField is the multipart field carrying uploaded documents.
const filesField = "files"

type intakeHandler struct {
	intakeService portssvc.IntakeSvcFacade
	posthog       *utils.PosthogClientWrapper
}

func registerIntakeRoutes(rg *gin.RouterGroup, intakeService portssvc.IntakeSvcFacade, posthog *utils.PosthogClientWrapper, submitLimit gin.HandlerFunc) {
	h := &intakeHandler{intakeService: intakeService, posthog: posthog}

	submitChain := []gin.HandlerFunc{h.submit}
	if submitLimit != nil {
		submitChain = append([]gin.HandlerFunc{submitLimit}, submitChain...)
	}

	intake := rg.Group("/intake")
	{
		intake.GET("", h.status)
		intake.POST("/files", h.selectFiles)
		intake.DELETE("/files/:index", h.removeFile)
		intake.POST("/submit", submitChain...)
	}
}

// status godoc
// @Summary Get document intake status
// @Tags intake
// @Produce  json
// @Success 200 {object} dto.IntakeStatusResponse
// @Router /intake [get]
func (h *intakeHandler) status(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToIntakeStatusResponse(h.intakeService.Status(c.Request.Context())))
}

// selectFiles godoc
// @Summary Stage files for upload
// @Description Adds files to the selection. At most 4 files are kept; extra files are dropped with a warning.
// @Tags intake
// @Accept  multipart/form-data
// @Produce  json
// @Param   files formData file true "Documents to upload"
// @Success 200 {object} dto.SelectFilesResponse
// @Failure 400 {object} map[string]string "No files"
// @Failure 409 {object} map[string]string "Upload in progress"
// @Router /intake/files [post]
func (h *intakeHandler) selectFiles(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	form, err := c.MultipartForm()
	if err != nil {
		logger.Warn("Failed to parse multipart form", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart request: " + err.Error()})
		return
	}
	headers := form.File[filesField]
	if len(headers) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("No files provided in field %q", filesField)})
		return
	}

	files := make([]domain.UploadFile, 0, len(headers))
	for _, fh := range headers {
		file, err := readUpload(fh)
		if err != nil {
			logger.Error("Failed to read uploaded file", slog.String("file", fh.Filename), slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file " + fh.Filename})
			return
		}
		files = append(files, file)
	}

	status, warning, err := h.intakeService.SelectFiles(c.Request.Context(), files)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to select files")
		return
	}
	c.JSON(http.StatusOK, dto.SelectFilesResponse{
		IntakeStatusResponse: dto.ToIntakeStatusResponse(status),
		Warning:              warning,
	})
}

// removeFile godoc
// @Summary Remove a staged file
// @Tags intake
// @Produce  json
// @Param   index path int true "Position in the selection"
// @Success 200 {object} dto.IntakeStatusResponse
// @Failure 400 {object} map[string]string "Invalid index"
// @Failure 409 {object} map[string]string "Upload in progress"
// @Router /intake/files/{index} [delete]
func (h *intakeHandler) removeFile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Index must be an integer"})
		return
	}
	status, err := h.intakeService.RemoveFile(c.Request.Context(), index)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to remove file")
		return
	}
	c.JSON(http.StatusOK, dto.ToIntakeStatusResponse(status))
}

// submit godoc
// @Summary Upload staged files for extraction
// @Description Sends the selection to the extraction service and creates one completed audit record per returned document
// @Tags intake
// @Produce  json
// @Success 201 {object} dto.IntakeSubmitResponse
// @Failure 400 {object} map[string]string "No files selected"
// @Failure 409 {object} map[string]string "Upload in progress"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 502 {object} map[string]string "Extraction failed"
// @Router /intake/submit [post]
func (h *intakeHandler) submit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	records, err := h.intakeService.Submit(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to process documents")
		return
	}

	middleware.PosthogEvent(c, h.posthog, "documents_extracted", map[string]any{"record_count": len(records)})
	c.JSON(http.StatusCreated, dto.IntakeSubmitResponse{
		Records: dto.ToListAuditRecordResponse(records),
		Status:  dto.ToIntakeStatusResponse(h.intakeService.Status(c.Request.Context())),
	})
}

func readUpload(fh *multipart.FileHeader) (domain.UploadFile, error) {
	f, err := fh.Open()
	if err != nil {
		return domain.UploadFile{}, err
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return domain.UploadFile{}, err
	}
	return domain.UploadFile{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Content:     content,
	}, nil
}
