package memory

import (
	"context"
	"strings"

	"github.com/SscSPs/audit_dashboard/internal/apperrors"
	"github.com/SscSPs/audit_dashboard/internal/core/domain"
	"github.com/SscSPs/audit_dashboard/internal/utils/mapping"
)

func (s *RecordStore) FindClientByName(ctx context.Context, name string) (*domain.Client, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.ErrNotFound
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.clients {
		d := mapping.ToDomainClient(m)
		if d.HasName(name) {
			return &d, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *RecordStore) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.clients {
		if m.ClientID == clientID {
			d := mapping.ToDomainClient(m)
			return &d, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *RecordStore) ListClients(ctx context.Context) ([]domain.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return mapping.ToDomainClientSlice(s.clients), nil
}

func (s *RecordStore) InsertClient(ctx context.Context, client domain.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clients = append(s.clients, mapping.ToModelClient(client))
	return nil
}
