package memory

import (
	"context"

	"github.com/SscSPs/audit_dashboard/internal/apperrors"
	"github.com/SscSPs/audit_dashboard/internal/core/domain"
	"github.com/SscSPs/audit_dashboard/internal/utils/mapping"
)

func (s *RecordStore) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.users {
		if m.UserID == userID {
			d := mapping.ToDomainUser(m)
			return &d, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *RecordStore) ListUsers(ctx context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return mapping.ToDomainUserSlice(s.users), nil
}

func (s *RecordStore) InsertUser(ctx context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = append(s.users, mapping.ToModelUser(user))
	return nil
}
