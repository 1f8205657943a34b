package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/SscSPs/audit_dashboard/internal/apperrors"
	"github.com/SscSPs/audit_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/audit_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/audit_dashboard/internal/core/ports/services"
	"github.com/google/uuid"
)

// formService hosts audit record form sessions keyed by ID.
type formService struct {
	BaseService
	mu         sync.Mutex
	forms      map[string]*AuditForm
	recordRepo portsrepo.AuditRecordRepositoryFacade
	clientRepo portsrepo.ClientReader
	resolver   *upsertResolver
}

// NewFormService creates the form session service.
func NewFormService(repos portsrepo.RepositoryProvider, opts ...Option) portssvc.FormSvcFacade {
	svc := &formService{
		forms:      make(map[string]*AuditForm),
		recordRepo: repos.AuditRecordRepo,
		clientRepo: repos.ClientRepo,
	}
	svc.apply(opts)
	svc.resolver = newUpsertResolver(repos.ClientRepo, repos.UserRepo, svc.BaseService)
	return svc
}

var _ portssvc.FormSvcFacade = (*formService)(nil)

func (s *formService) OpenForm(ctx context.Context, recordID string) (*domain.FormSnapshot, error) {
	form := NewAuditForm()
	if recordID == "" {
		form.Open(nil, "")
	} else {
		record, err := s.recordRepo.FindAuditRecordByID(ctx, recordID)
		if err != nil {
			return nil, fmt.Errorf("failed to open form for record %s: %w", recordID, err)
		}
		form.Open(record, s.clientName(ctx, record.ClientID))
	}

	formID := uuid.NewString()
	s.mu.Lock()
	s.forms[formID] = form
	s.mu.Unlock()

	s.LogDebug(ctx, "Form opened", slog.String("form_id", formID), slog.String("state", string(form.State())))
	return s.snapshot(ctx, formID, form), nil
}

func (s *formService) GetForm(ctx context.Context, formID string) (*domain.FormSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	form, err := s.lookup(formID)
	if err != nil {
		return nil, err
	}
	return s.snapshot(ctx, formID, form), nil
}

func (s *formService) UpdateForm(ctx context.Context, formID string, patch domain.FormPatch) (*domain.FormSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	form, err := s.lookup(formID)
	if err != nil {
		return nil, err
	}
	if err := form.Apply(patch); err != nil {
		return nil, err
	}
	return s.snapshot(ctx, formID, form), nil
}

func (s *formService) SubmitForm(ctx context.Context, formID string) (*domain.AuditRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	form, err := s.lookup(formID)
	if err != nil {
		return nil, err
	}
	record, err := s.submit(ctx, form)
	if err != nil {
		return nil, err
	}
	delete(s.forms, formID)
	return record, nil
}

func (s *formService) CancelForm(ctx context.Context, formID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	form, err := s.lookup(formID)
	if err != nil {
		return err
	}
	form.Cancel()
	delete(s.forms, formID)
	s.LogDebug(ctx, "Form cancelled", slog.String("form_id", formID))
	return nil
}

func (s *formService) CreateAuditRecord(ctx context.Context, fields domain.FormFields) (*domain.AuditRecord, error) {
	form := NewAuditForm()
	form.Open(nil, "")

	patch := domain.FormPatch{
		Title:         &fields.Title,
		Description:   &fields.Description,
		Creator:       fields.Creator,
		ClientName:    &fields.ClientName,
		SelectedFiles: fields.SelectedFiles,
	}
	if fields.Status != "" {
		patch.Status = &fields.Status
	}
	if err := form.Apply(patch); err != nil {
		return nil, err
	}
	return s.submit(ctx, form)
}

// submit validates, resolves references and saves the form's record. On
// success the form is closed; on failure it is left untouched.
func (s *formService) submit(ctx context.Context, form *AuditForm) (*domain.AuditRecord, error) {
	if err := form.Validate(); err != nil {
		s.LogDebug(ctx, "Form submission rejected", slog.String("reason", err.Error()))
		return nil, err
	}

	fields := form.Fields()
	clientID, createdBy, err := s.resolver.Resolve(ctx, fields.ClientName, fields.Creator)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve record references")
		return nil, err
	}

	record := form.Build(clientID, createdBy, s.Today())
	if form.State() == domain.FormEditingExisting {
		if err := s.recordRepo.ReplaceAuditRecord(ctx, record); err != nil {
			s.LogError(ctx, err, "Failed to update audit record", slog.String("record_id", record.ID))
			return nil, fmt.Errorf("failed to update audit record: %w", err)
		}
		s.Metrics.IncAuditRecordsUpdated()
		s.LogInfo(ctx, "Audit record updated", slog.String("record_id", record.ID))
	} else {
		if err := s.recordRepo.InsertAuditRecord(ctx, record); err != nil {
			s.LogError(ctx, err, "Failed to create audit record", slog.String("record_id", record.ID))
			return nil, fmt.Errorf("failed to create audit record: %w", err)
		}
		s.Metrics.IncAuditRecordsCreated("form", 1)
		s.LogInfo(ctx, "Audit record created", slog.String("record_id", record.ID))
	}

	form.Cancel()
	return &record, nil
}

// lookup must be called with s.mu held.
func (s *formService) lookup(formID string) (*AuditForm, error) {
	form, ok := s.forms[formID]
	if !ok {
		return nil, fmt.Errorf("form %s: %w", formID, apperrors.ErrNotFound)
	}
	if !form.IsOpen() {
		delete(s.forms, formID)
		return nil, fmt.Errorf("form %s: %w", formID, apperrors.ErrFormClosed)
	}
	return form, nil
}

func (s *formService) clientName(ctx context.Context, clientID string) string {
	if clientID == "" {
		return ""
	}
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to look up client", slog.String("client_id", clientID))
		}
		return ""
	}
	return client.Name
}

func (s *formService) snapshot(ctx context.Context, formID string, form *AuditForm) *domain.FormSnapshot {
	fields := form.Fields()
	return &domain.FormSnapshot{
		ID:            formID,
		State:         form.State(),
		Fields:        fields,
		Editing:       form.Editing(),
		NewClientHint: s.resolver.newClientHint(ctx, fields.ClientName),
	}
}
