package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/audit_dashboard/internal/apperrors"
	"github.com/SscSPs/audit_dashboard/internal/core/domain"
	"github.com/SscSPs/audit_dashboard/internal/models"
	"github.com/SscSPs/audit_dashboard/internal/utils/mapping"
)

func (s *RecordStore) ListAuditRecords(ctx context.Context, pred domain.AuditRecordPredicate) ([]domain.AuditRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.AuditRecord, 0, len(s.records))
	for _, m := range s.records {
		d := mapping.ToDomainAuditRecord(m)
		if pred == nil || pred(d) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *RecordStore) FindAuditRecordByID(ctx context.Context, recordID string) (*domain.AuditRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOfRecord(recordID)
	if idx < 0 {
		return nil, apperrors.ErrNotFound
	}
	d := mapping.ToDomainAuditRecord(s.records[idx])
	return &d, nil
}

func (s *RecordStore) InsertAuditRecord(ctx context.Context, record domain.AuditRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOfRecord(record.ID) >= 0 {
		return fmt.Errorf("audit record %s: %w", record.ID, apperrors.ErrDuplicate)
	}
	s.records = append([]models.AuditRecord{mapping.ToModelAuditRecord(record)}, s.records...)
	return nil
}

func (s *RecordStore) ReplaceAuditRecord(ctx context.Context, record domain.AuditRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfRecord(record.ID)
	if idx < 0 {
		return fmt.Errorf("audit record %s: %w", record.ID, apperrors.ErrNotFound)
	}
	s.records[idx] = mapping.ToModelAuditRecord(record)
	return nil
}

func (s *RecordStore) DeleteAuditRecord(ctx context.Context, recordID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfRecord(recordID)
	if idx < 0 {
		return nil
	}
	s.records = append(s.records[:idx], s.records[idx+1:]...)
	return nil
}

// indexOfRecord must be called with s.mu held.
func (s *RecordStore) indexOfRecord(recordID string) int {
	for i := range s.records {
		if s.records[i].AuditRecordID == recordID {
			return i
		}
	}
	return -1
}
