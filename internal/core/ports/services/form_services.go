package services

import (
	"context"

	"github.com/SscSPs/audit_dashboard/internal/core/domain"
)

// FormSessionSvc manages server-held audit record form sessions.
type FormSessionSvc interface {
	// OpenForm starts a session. An empty recordID opens a creation form,
	// otherwise the form edits that record.
	OpenForm(ctx context.Context, recordID string) (*domain.FormSnapshot, error)

	// GetForm returns the current state of an open session.
	GetForm(ctx context.Context, formID string) (*domain.FormSnapshot, error)

	// UpdateForm applies field edits to an open session.
	UpdateForm(ctx context.Context, formID string, patch domain.FormPatch) (*domain.FormSnapshot, error)

	// SubmitForm validates and saves the session. The session is discarded
	// on success and kept open on validation failure.
	SubmitForm(ctx context.Context, formID string) (*domain.AuditRecord, error)

	// CancelForm closes and discards a session.
	CancelForm(ctx context.Context, formID string) error
}

// AuditCreatorSvc creates records without an interactive session.
type AuditCreatorSvc interface {
	// CreateAuditRecord opens a creation form, fills it and submits it.
	CreateAuditRecord(ctx context.Context, fields domain.FormFields) (*domain.AuditRecord, error)
}

// FormSvcFacade combines the form service interfaces
type FormSvcFacade interface {
	FormSessionSvc
	AuditCreatorSvc
}
