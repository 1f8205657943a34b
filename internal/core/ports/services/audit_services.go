package services

import (
	"context"

	"github.com/SscSPs/audit_dashboard/internal/core/domain"
)

// AuditReaderSvc defines read operations for audit records
type AuditReaderSvc interface {
	// ListAuditRecords returns records whose title or description contains
	// query, most recent first. An empty query lists everything.
	ListAuditRecords(ctx context.Context, query string) ([]domain.AuditRecordView, error)

	// GetAuditRecord retrieves one record with its references resolved.
	GetAuditRecord(ctx context.Context, recordID string) (*domain.AuditRecordView, error)

	// GetStats counts the records per status.
	GetStats(ctx context.Context) (domain.Stats, error)
}

// AuditLifecycleSvc defines lifecycle operations for audit records
type AuditLifecycleSvc interface {
	// DeleteAuditRecord removes a record. Unknown IDs are ignored.
	DeleteAuditRecord(ctx context.Context, recordID string) error
}

// AuditSvcFacade combines all audit record service interfaces
type AuditSvcFacade interface {
	AuditReaderSvc
	AuditLifecycleSvc
}
