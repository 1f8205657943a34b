// Package memory holds the process-wide record store: the in-memory
// collections of audit records, clients and users that every other component
// treats as the single source of truth.
package memory

import (
	"sync"

	portsrepo "github.com/SscSPs/audit_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/audit_dashboard/internal/models"
)

// RecordStore owns the three entity collections. It is constructed once at
// application start and shared by reference. Reads return copies.
type RecordStore struct {
	mu sync.RWMutex
	// records[0] is the most recently inserted record.
	records []models.AuditRecord
	clients []models.Client
	users   []models.User
}

// NewRecordStore creates an empty store.
func NewRecordStore() *RecordStore {
	return &RecordStore{
		records: []models.AuditRecord{},
		clients: []models.Client{},
		users:   []models.User{},
	}
}

// Ensure RecordStore implements every repository facade
var (
	_ portsrepo.AuditRecordRepositoryFacade = (*RecordStore)(nil)
	_ portsrepo.ClientRepositoryFacade      = (*RecordStore)(nil)
	_ portsrepo.UserRepositoryFacade        = (*RecordStore)(nil)
)

// NewRepositoryProvider exposes a single store through the repository ports.
func NewRepositoryProvider(store *RecordStore) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AuditRecordRepo: store,
		ClientRepo:      store,
		UserRepo:        store,
	}
}
