package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/audit_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/audit_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/audit_dashboard/internal/core/ports/services"
)

type directoryService struct {
	BaseService
	clientRepo portsrepo.ClientReader
	userRepo   portsrepo.UserReader
}

func NewDirectoryService(clientRepo portsrepo.ClientReader, userRepo portsrepo.UserReader, opts ...Option) portssvc.DirectorySvc {
	svc := &directoryService{clientRepo: clientRepo, userRepo: userRepo}
	svc.apply(opts)
	return svc
}

func (s *directoryService) ListClients(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients")
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	if clients == nil {
		return []domain.Client{}, nil
	}
	return clients, nil
}

func (s *directoryService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		return []domain.User{}, nil
	}
	return users, nil
}
