package dto

import (
	"github.com/SscSPs/audit_dashboard/internal/core/domain"
)

// IntakeStatusResponse defines the data returned for the document intake.
type IntakeStatusResponse struct {
	SelectedFiles []string `json:"selectedFiles"`
	MaxFiles      int      `json:"maxFiles"`
	Busy          bool     `json:"busy"`
	Progress      int      `json:"progress"`
	Message       string   `json:"message,omitempty"`
	Error         string   `json:"error,omitempty"`
}

func ToIntakeStatusResponse(s domain.IntakeStatus) IntakeStatusResponse {
	files := s.SelectedFiles
	if files == nil {
		files = []string{}
	}
	return IntakeStatusResponse{
		SelectedFiles: files,
		MaxFiles:      domain.MaxFiles,
		Busy:          s.Busy,
		Progress:      s.Progress,
		Message:       s.Message,
		Error:         s.Error,
	}
}

// SelectFilesResponse is returned after staging files. Warning is set when
// the selection was truncated.
type SelectFilesResponse struct {
	IntakeStatusResponse
	Warning string `json:"warning,omitempty"`
}

// IntakeSubmitResponse lists the records created from the extracted documents.
type IntakeSubmitResponse struct {
	Records []AuditRecordResponse `json:"records"`
	Status  IntakeStatusResponse  `json:"status"`
}
