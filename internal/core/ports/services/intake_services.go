package services

import (
	"context"

	"github.com/SscSPs/audit_dashboard/internal/core/domain"
)

// IntakeSelectionSvc manages the files staged for upload.
type IntakeSelectionSvc interface {
	// Status returns a snapshot of the intake.
	Status(ctx context.Context) domain.IntakeStatus

	// SelectFiles appends files to the selection, keeping at most
	// domain.MaxFiles. The warning is non-empty when files were dropped.
	SelectFiles(ctx context.Context, files []domain.UploadFile) (status domain.IntakeStatus, warning string, err error)

	// RemoveFile drops the selected file at index.
	RemoveFile(ctx context.Context, index int) (domain.IntakeStatus, error)
}

// IntakeSubmitterSvc uploads the selection for extraction.
type IntakeSubmitterSvc interface {
	// Submit sends the selection to the extraction endpoint and inserts one
	// completed audit record per returned document.
	Submit(ctx context.Context) ([]domain.AuditRecord, error)
}

// IntakeSvcFacade combines the intake service interfaces
type IntakeSvcFacade interface {
	IntakeSelectionSvc
	IntakeSubmitterSvc
	// Close stops any in-flight progress ticker.
	Close()
}
