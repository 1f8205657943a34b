package repositories

import (
	"context"

	"github.com/SscSPs/audit_dashboard/internal/core/domain"
)

// AuditRecordReader defines read operations for audit records
type AuditRecordReader interface {
	// ListAuditRecords returns all records, or those matching pred, most recent first.
	ListAuditRecords(ctx context.Context, pred domain.AuditRecordPredicate) ([]domain.AuditRecord, error)

	// FindAuditRecordByID retrieves a specific audit record.
	FindAuditRecordByID(ctx context.Context, recordID string) (*domain.AuditRecord, error)
}

// AuditRecordWriter defines write operations for audit records
type AuditRecordWriter interface {
	// InsertAuditRecord prepends a fully resolved record.
	InsertAuditRecord(ctx context.Context, record domain.AuditRecord) error

	// ReplaceAuditRecord replaces the record with the same ID, keeping its position.
	ReplaceAuditRecord(ctx context.Context, record domain.AuditRecord) error
}

// AuditRecordLifecycleManager defines operations for managing audit record lifecycle
type AuditRecordLifecycleManager interface {
	// DeleteAuditRecord removes a record. Removing an unknown ID is a no-op.
	DeleteAuditRecord(ctx context.Context, recordID string) error
}

// AuditRecordRepositoryFacade combines all audit record repository interfaces
type AuditRecordRepositoryFacade interface {
	AuditRecordReader
	AuditRecordWriter
	AuditRecordLifecycleManager
}
