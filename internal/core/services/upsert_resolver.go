package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/SscSPs/audit_dashboard/internal/apperrors"
	"github.com/SscSPs/audit_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/audit_dashboard/internal/core/ports/repositories"
	"github.com/google/uuid"
)

// upsertResolver turns the free-text client name and the creator selection
// of a form into entity IDs, creating clients and users that do not exist yet.
type upsertResolver struct {
	BaseService
	// mu serializes lookup-then-insert so one name never yields two clients.
	mu         sync.Mutex
	clientRepo portsrepo.ClientRepositoryFacade
	userRepo   portsrepo.UserRepositoryFacade
}

func newUpsertResolver(clientRepo portsrepo.ClientRepositoryFacade, userRepo portsrepo.UserRepositoryFacade, base BaseService) *upsertResolver {
	return &upsertResolver{BaseService: base, clientRepo: clientRepo, userRepo: userRepo}
}

// Resolve returns the client ID and creator user ID for a record. Empty
// inputs resolve to empty IDs.
func (r *upsertResolver) Resolve(ctx context.Context, clientName string, creator domain.CreatorInput) (clientID string, createdBy string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	clientID, err = r.resolveClient(ctx, clientName)
	if err != nil {
		return "", "", err
	}
	createdBy, err = r.resolveCreator(ctx, creator)
	if err != nil {
		return "", "", err
	}
	return clientID, createdBy, nil
}

func (r *upsertResolver) resolveClient(ctx context.Context, clientName string) (string, error) {
	name := strings.TrimSpace(clientName)
	if name == "" {
		return "", nil
	}

	existing, err := r.clientRepo.FindClientByName(ctx, name)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return "", fmt.Errorf("failed to look up client %q: %w", name, err)
	}

	client := domain.Client{
		ID:          uuid.NewString(),
		Name:        name,
		Description: domain.ClientDescriptionFor(name),
	}
	if err := r.clientRepo.InsertClient(ctx, client); err != nil {
		r.LogError(ctx, err, "Failed to create client", slog.String("client_name", name))
		return "", fmt.Errorf("failed to create client %q: %w", name, err)
	}
	r.Metrics.IncEntityUpserted("client")
	r.LogInfo(ctx, "Client created", slog.String("client_id", client.ID), slog.String("client_name", name))
	return client.ID, nil
}

func (r *upsertResolver) resolveCreator(ctx context.Context, creator domain.CreatorInput) (string, error) {
	switch c := creator.(type) {
	case domain.ExistingCreator:
		if c.UserID == "" {
			return "", nil
		}
		user, err := r.userRepo.FindUserByID(ctx, c.UserID)
		if errors.Is(err, apperrors.ErrNotFound) {
			r.LogDebug(ctx, "Unknown creator selected, leaving record unassigned", slog.String("user_id", c.UserID))
			return "", nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to look up user %q: %w", c.UserID, err)
		}
		return user.ID, nil

	case domain.NewCreator:
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return "", nil
		}
		user := domain.User{
			ID:    uuid.NewString(),
			Name:  name,
			Email: domain.DeriveEmail(name),
		}
		if err := r.userRepo.InsertUser(ctx, user); err != nil {
			r.LogError(ctx, err, "Failed to create user", slog.String("user_name", name))
			return "", fmt.Errorf("failed to create user %q: %w", name, err)
		}
		r.Metrics.IncEntityUpserted("user")
		r.LogInfo(ctx, "User created", slog.String("user_id", user.ID), slog.String("user_name", name))
		return user.ID, nil

	default: // domain.UnsetCreator or nil
		return "", nil
	}
}

// newClientHint reports the message shown while typing a client name that
// does not match an existing client.
func (r *upsertResolver) newClientHint(ctx context.Context, clientName string) string {
	name := strings.TrimSpace(clientName)
	if name == "" {
		return ""
	}
	if _, err := r.clientRepo.FindClientByName(ctx, name); errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Sprintf("A new client will be created: %s", name)
	}
	return ""
}
