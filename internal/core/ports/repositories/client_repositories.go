package repositories

import (
	"context"

	"github.com/SscSPs/audit_dashboard/internal/core/domain"
)

// ClientReader defines read operations for client data
type ClientReader interface {
	// FindClientByName matches the trimmed name case-insensitively.
	FindClientByName(ctx context.Context, name string) (*domain.Client, error)

	// FindClientByID retrieves a specific client.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// ListClients returns every client in insertion order.
	ListClients(ctx context.Context) ([]domain.Client, error)
}

// ClientWriter defines write operations for client data
type ClientWriter interface {
	// InsertClient appends a client.
	InsertClient(ctx context.Context, client domain.Client) error
}

// ClientRepositoryFacade combines all client repository interfaces
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
