package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/audit_dashboard/internal/apperrors"
	"github.com/SscSPs/audit_dashboard/internal/core/domain"
	"github.com/SscSPs/audit_dashboard/internal/core/ports"
	portsrepo "github.com/SscSPs/audit_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/audit_dashboard/internal/core/ports/services"
	"github.com/google/uuid"
)

// DefaultProgressInterval is how often the upload progress indicator advances.
const DefaultProgressInterval = 350 * time.Millisecond

// intakeService stages files, uploads them for extraction and turns the
// returned documents into audit records. Only one upload runs at a time.
type intakeService struct {
	BaseService
	extractor  ports.DocumentExtractor
	recordRepo portsrepo.AuditRecordWriter
	interval   time.Duration

	mu       sync.Mutex
	selected []domain.UploadFile
	busy     bool
	progress int
	message  string
	errMsg   string
	ticker   *progressTicker
}

// NewIntakeService creates the document intake. A zero progressInterval uses
// DefaultProgressInterval.
func NewIntakeService(extractor ports.DocumentExtractor, recordRepo portsrepo.AuditRecordWriter, progressInterval time.Duration, opts ...Option) portssvc.IntakeSvcFacade {
	if progressInterval <= 0 {
		progressInterval = DefaultProgressInterval
	}
	svc := &intakeService{
		extractor:  extractor,
		recordRepo: recordRepo,
		interval:   progressInterval,
	}
	svc.apply(opts)
	return svc
}

var _ portssvc.IntakeSvcFacade = (*intakeService)(nil)

func (s *intakeService) Status(ctx context.Context) domain.IntakeStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statusLocked()
}

func (s *intakeService) SelectFiles(ctx context.Context, files []domain.UploadFile) (domain.IntakeStatus, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.busy {
		return s.statusLocked(), "", apperrors.ErrIntakeBusy
	}

	combined := append(append([]domain.UploadFile(nil), s.selected...), files...)
	warning := ""
	if len(combined) > domain.MaxFiles {
		s.LogDebug(ctx, "Too many files selected, truncating",
			slog.Int("selected", len(combined)),
			slog.Int("max", domain.MaxFiles))
		combined = combined[:domain.MaxFiles]
		warning = domain.MsgTooManyFiles
	}
	s.selected = combined
	s.errMsg = warning
	return s.statusLocked(), warning, nil
}

func (s *intakeService) RemoveFile(ctx context.Context, index int) (domain.IntakeStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.busy {
		return s.statusLocked(), apperrors.ErrIntakeBusy
	}
	if index < 0 || index >= len(s.selected) {
		return s.statusLocked(), fmt.Errorf("%w: no selected file at index %d", apperrors.ErrValidation, index)
	}
	s.selected = append(s.selected[:index:index], s.selected[index+1:]...)
	return s.statusLocked(), nil
}

func (s *intakeService) Submit(ctx context.Context) ([]domain.AuditRecord, error) {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return nil, apperrors.ErrIntakeBusy
	}
	if len(s.selected) == 0 {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: no files selected", apperrors.ErrValidation)
	}
	files := append([]domain.UploadFile(nil), s.selected...)
	s.busy = true
	s.progress = domain.ProgressStart
	s.message = domain.MsgExtracting
	s.errMsg = ""
	ticker := startProgressTicker(s.interval, s.advanceProgress)
	s.ticker = ticker
	s.mu.Unlock()

	// The ticker must be stopped outside s.mu since tick acquires it.
	defer ticker.Stop()

	s.LogInfo(ctx, "Submitting files for extraction", slog.Int("file_count", len(files)))
	start := time.Now()
	docs, err := s.extractor.Extract(ctx, files)
	s.Metrics.ObserveExtraction(err == nil, time.Since(start))
	ticker.Stop()

	if err != nil {
		s.LogError(ctx, err, "Document extraction failed", slog.Int("file_count", len(files)))
		s.fail(err)
		if !errors.Is(err, apperrors.ErrExtractionFailed) {
			err = fmt.Errorf("%w: %v", apperrors.ErrExtractionFailed, err)
		}
		return nil, err
	}

	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name
	}
	records := recordsFromDocuments(docs, names, s.Today())

	// Insert last to first so the first document ends up on top.
	for i := len(records) - 1; i >= 0; i-- {
		if err := s.insert(ctx, &records[i]); err != nil {
			s.LogError(ctx, err, "Failed to store extracted record", slog.String("record_id", records[i].ID))
			s.fail(err)
			return nil, fmt.Errorf("failed to store extracted records: %w", err)
		}
	}
	s.Metrics.IncAuditRecordsCreated("intake", len(records))
	s.LogInfo(ctx, "Documents processed", slog.Int("record_count", len(records)))

	s.mu.Lock()
	s.selected = nil
	s.busy = false
	s.progress = domain.ProgressDone
	s.message = domain.MsgExtractionSucceeded
	s.errMsg = ""
	s.ticker = nil
	s.mu.Unlock()

	return records, nil
}

// Close stops the in-flight progress ticker, if any.
func (s *intakeService) Close() {
	s.mu.Lock()
	ticker := s.ticker
	s.ticker = nil
	s.mu.Unlock()

	if ticker != nil {
		ticker.Stop()
	}
}

// insert stores record, replacing an extractor-provided ID that collides
// with an existing record.
func (s *intakeService) insert(ctx context.Context, record *domain.AuditRecord) error {
	err := s.recordRepo.InsertAuditRecord(ctx, *record)
	if !errors.Is(err, apperrors.ErrDuplicate) {
		return err
	}
	previous := record.ID
	record.ID = uuid.NewString()
	s.LogWarn(ctx, "Extracted document ID already in use, assigning a new one",
		slog.String("document_id", previous),
		slog.String("record_id", record.ID))
	return s.recordRepo.InsertAuditRecord(ctx, *record)
}

func (s *intakeService) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.busy = false
	s.progress = 0
	s.message = ""
	s.errMsg = failureMessage(err)
	s.ticker = nil
}

func (s *intakeService) advanceProgress() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.busy || s.progress >= domain.ProgressCap {
		return
	}
	s.progress = min(s.progress+domain.ProgressStep, domain.ProgressCap)
}

func (s *intakeService) statusLocked() domain.IntakeStatus {
	names := make([]string, len(s.selected))
	for i, f := range s.selected {
		names[i] = f.Name
	}
	return domain.IntakeStatus{
		SelectedFiles: names,
		Busy:          s.busy,
		Progress:      s.progress,
		Message:       s.message,
		Error:         s.errMsg,
	}
}

func failureMessage(err error) string {
	if err == nil || err.Error() == "" {
		return domain.MsgExtractionFailedNote
	}
	return err.Error()
}
