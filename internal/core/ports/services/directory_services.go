package services

import (
	"context"
	"io"

	"github.com/SscSPs/audit_dashboard/internal/core/domain"
)

// DirectorySvc lists the clients and users known to the dashboard.
type DirectorySvc interface {
	ListClients(ctx context.Context) ([]domain.Client, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// ExportSvc renders printable documents.
type ExportSvc interface {
	// RenderAuditRecord writes a printable HTML page for one record.
	RenderAuditRecord(ctx context.Context, recordID string, w io.Writer) error
}
