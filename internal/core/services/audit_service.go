package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/audit_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/audit_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/audit_dashboard/internal/core/ports/services"
)

type auditService struct {
	BaseService
	recordRepo portsrepo.AuditRecordRepositoryFacade
	clientRepo portsrepo.ClientReader
	userRepo   portsrepo.UserReader
}

// NewAuditService creates the read and delete side of audit records.
func NewAuditService(repos portsrepo.RepositoryProvider, opts ...Option) portssvc.AuditSvcFacade {
	svc := &auditService{
		recordRepo: repos.AuditRecordRepo,
		clientRepo: repos.ClientRepo,
		userRepo:   repos.UserRepo,
	}
	svc.apply(opts)
	return svc
}

var _ portssvc.AuditSvcFacade = (*auditService)(nil)

func (s *auditService) ListAuditRecords(ctx context.Context, query string) ([]domain.AuditRecordView, error) {
	records, err := s.recordRepo.ListAuditRecords(ctx, domain.SearchPredicate(query))
	if err != nil {
		s.LogError(ctx, err, "Failed to list audit records", slog.String("query", query))
		return nil, fmt.Errorf("failed to list audit records: %w", err)
	}
	users, clients, err := s.lookups(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]domain.AuditRecordView, 0, len(records))
	for _, r := range records {
		views = append(views, domain.ResolveView(r, users, clients))
	}
	return views, nil
}

func (s *auditService) GetAuditRecord(ctx context.Context, recordID string) (*domain.AuditRecordView, error) {
	record, err := s.recordRepo.FindAuditRecordByID(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get audit record %s: %w", recordID, err)
	}
	users, clients, err := s.lookups(ctx)
	if err != nil {
		return nil, err
	}
	view := domain.ResolveView(*record, users, clients)
	return &view, nil
}

func (s *auditService) GetStats(ctx context.Context) (domain.Stats, error) {
	records, err := s.recordRepo.ListAuditRecords(ctx, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to list audit records for stats")
		return domain.Stats{}, fmt.Errorf("failed to compute stats: %w", err)
	}
	return domain.ComputeStats(records), nil
}

func (s *auditService) DeleteAuditRecord(ctx context.Context, recordID string) error {
	if err := s.recordRepo.DeleteAuditRecord(ctx, recordID); err != nil {
		s.LogError(ctx, err, "Failed to delete audit record", slog.String("record_id", recordID))
		return fmt.Errorf("failed to delete audit record: %w", err)
	}
	s.Metrics.IncAuditRecordsDeleted()
	s.LogInfo(ctx, "Audit record deleted", slog.String("record_id", recordID))
	return nil
}

// lookups indexes users and clients by ID for view resolution.
func (s *auditService) lookups(ctx context.Context) (map[string]domain.User, map[string]domain.Client, error) {
	userList, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list users: %w", err)
	}
	clientList, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list clients: %w", err)
	}

	users := make(map[string]domain.User, len(userList))
	for _, u := range userList {
		users[u.ID] = u
	}
	clients := make(map[string]domain.Client, len(clientList))
	for _, c := range clientList {
		clients[c.ID] = c
	}
	return users, clients, nil
}
