package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/audit_dashboard/internal/apperrors"
	"github.com/SscSPs/audit_dashboard/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = newFormValidator()

func newFormValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("auditstatus", func(fl validator.FieldLevel) bool {
		return domain.AuditStatus(fl.Field().String()).IsValid()
	})
	return v
}

// formSubmission is the validated view of the form fields at submit time.
type formSubmission struct {
	Title       string             `validate:"required"`
	Status      domain.AuditStatus `validate:"auditstatus"`
	NewCreator  bool
	CreatorName string `validate:"required_if=NewCreator true"`
}

var submissionMessages = map[string]string{
	"Title":       "Title is required.",
	"Status":      "Status must be one of New, In Progress or Completed.",
	"CreatorName": "Creator name is required when adding a new creator.",
}

// AuditForm is the audit record form state machine: Closed, CreatingNew or
// EditingExisting. It is not safe for concurrent use.
type AuditForm struct {
	state   domain.FormState
	fields  domain.FormFields
	editing *domain.AuditRecord
}

// NewAuditForm returns a closed form.
func NewAuditForm() *AuditForm {
	return &AuditForm{state: domain.FormClosed}
}

// Open moves the form to CreatingNew when record is nil, otherwise to
// EditingExisting pre-populated from record. clientName is the display name
// of the record's client.
func (f *AuditForm) Open(record *domain.AuditRecord, clientName string) {
	if record == nil {
		f.state = domain.FormCreatingNew
		f.fields = domain.DefaultFormFields()
		f.editing = nil
		return
	}

	rec := *record
	rec.Attachments = append([]string(nil), record.Attachments...)
	var creator domain.CreatorInput = domain.UnsetCreator{}
	if rec.CreatedBy != "" {
		creator = domain.ExistingCreator{UserID: rec.CreatedBy}
	}
	f.state = domain.FormEditingExisting
	f.editing = &rec
	f.fields = domain.FormFields{
		Title:       rec.Title,
		Description: rec.Description,
		Status:      rec.Status,
		Creator:     creator,
		ClientName:  clientName,
	}
}

// Cancel closes the form from any state.
func (f *AuditForm) Cancel() {
	f.state = domain.FormClosed
	f.fields = domain.FormFields{}
	f.editing = nil
}

func (f *AuditForm) State() domain.FormState { return f.state }

func (f *AuditForm) IsOpen() bool { return f.state != domain.FormClosed }

// Fields returns a copy of the current field values.
func (f *AuditForm) Fields() domain.FormFields {
	fields := f.fields
	fields.SelectedFiles = append([]string(nil), f.fields.SelectedFiles...)
	if fields.Creator == nil {
		fields.Creator = domain.UnsetCreator{}
	}
	return fields
}

// Editing returns a copy of the record under edit, or nil.
func (f *AuditForm) Editing() *domain.AuditRecord {
	if f.editing == nil {
		return nil
	}
	rec := *f.editing
	return &rec
}

// Apply edits local field state only.
func (f *AuditForm) Apply(patch domain.FormPatch) error {
	if !f.IsOpen() {
		return apperrors.ErrFormClosed
	}
	if patch.Status != nil {
		if !patch.Status.IsValid() {
			return fmt.Errorf("%w: %s", apperrors.ErrValidation, submissionMessages["Status"])
		}
		f.fields.Status = *patch.Status
	}
	if patch.Title != nil {
		f.fields.Title = *patch.Title
	}
	if patch.Description != nil {
		f.fields.Description = *patch.Description
	}
	if patch.Creator != nil {
		f.fields.Creator = patch.Creator
	}
	if patch.ClientName != nil {
		f.fields.ClientName = *patch.ClientName
	}
	if patch.SelectedFiles != nil {
		f.fields.SelectedFiles = append([]string(nil), patch.SelectedFiles...)
	}
	return nil
}

// Validate checks the fields for submission. The form stays open either way.
func (f *AuditForm) Validate() error {
	if !f.IsOpen() {
		return apperrors.ErrFormClosed
	}
	sub := formSubmission{
		Title:  strings.TrimSpace(f.fields.Title),
		Status: f.fields.Status,
	}
	if c, ok := f.fields.Creator.(domain.NewCreator); ok {
		sub.NewCreator = true
		sub.CreatorName = strings.TrimSpace(c.Name)
	}

	err := validate.Struct(sub)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if msg, ok := submissionMessages[verrs[0].Field()]; ok {
			return fmt.Errorf("%w: %s", apperrors.ErrValidation, msg)
		}
	}
	return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
}

// Build assembles the record to save. Creating forms get a fresh ID and
// today's date. Editing forms keep the original ID and creation date, and
// keep the previous attachments unless new files were selected.
func (f *AuditForm) Build(clientID, createdBy string, today time.Time) domain.AuditRecord {
	record := domain.AuditRecord{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(f.fields.Title),
		Description: strings.TrimSpace(f.fields.Description),
		Status:      f.fields.Status,
		CreatedBy:   createdBy,
		ClientID:    clientID,
		CreatedDate: today,
	}
	if len(f.fields.SelectedFiles) > 0 {
		record.Attachments = append([]string(nil), f.fields.SelectedFiles...)
	}
	if f.editing != nil {
		record.ID = f.editing.ID
		record.CreatedDate = f.editing.CreatedDate
		if len(f.fields.SelectedFiles) == 0 {
			record.Attachments = append([]string(nil), f.editing.Attachments...)
		}
	}
	return record
}
