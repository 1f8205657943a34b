package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/audit_dashboard/internal/apperrors"
	"github.com/SscSPs/audit_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/audit_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/audit_dashboard/internal/core/ports/services"
	"github.com/SscSPs/audit_dashboard/internal/core/services"
	"github.com/SscSPs/audit_dashboard/internal/repositories/memory"
	"github.com/stretchr/testify/suite"
)

func ptr[T any](v T) *T { return &v }

var fixedNow = time.Date(2024, 7, 9, 16, 45, 0, 0, time.UTC)

type FormServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	repos   portsrepo.RepositoryProvider
	service portssvc.FormSvcFacade
}

func (suite *FormServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.repos = memory.NewRepositoryProvider(memory.NewRecordStore())
	suite.service = services.NewFormService(suite.repos, services.WithClock(func() time.Time { return fixedNow }))
}

func (suite *FormServiceTestSuite) records() []domain.AuditRecord {
	records, err := suite.repos.AuditRecordRepo.ListAuditRecords(suite.ctx, nil)
	suite.Require().NoError(err)
	return records
}

func (suite *FormServiceTestSuite) TestCreateAuditRecord_ReusesClientByTrimmedCaseInsensitiveName() {
	first, err := suite.service.CreateAuditRecord(suite.ctx, domain.FormFields{Title: "Quarterly review", ClientName: "Acme Corp"})
	suite.Require().NoError(err)
	second, err := suite.service.CreateAuditRecord(suite.ctx, domain.FormFields{Title: "Annual review", ClientName: "  acme CORP "})
	suite.Require().NoError(err)

	clients, err := suite.repos.ClientRepo.ListClients(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(clients, 1)
	suite.Equal("Acme Corp", clients[0].Name)
	suite.Equal("Audits for Acme Corp.", clients[0].Description)
	suite.Equal(clients[0].ID, first.ClientID)
	suite.Equal(first.ClientID, second.ClientID)
}

func (suite *FormServiceTestSuite) TestCreateAuditRecord_Defaults() {
	record, err := suite.service.CreateAuditRecord(suite.ctx, domain.FormFields{Title: "  Inventory count  "})
	suite.Require().NoError(err)

	suite.NotEmpty(record.ID)
	suite.Equal("Inventory count", record.Title)
	suite.Equal(domain.StatusNew, record.Status)
	suite.Equal(time.Date(2024, 7, 9, 0, 0, 0, 0, time.UTC), record.CreatedDate)
	suite.Empty(record.ClientID)
	suite.Empty(record.CreatedBy)
	suite.Nil(record.Attachments)

	records := suite.records()
	suite.Require().Len(records, 1)
	suite.Equal(record.ID, records[0].ID)
}

func (suite *FormServiceTestSuite) TestCreateAuditRecord_NewestFirst() {
	_, err := suite.service.CreateAuditRecord(suite.ctx, domain.FormFields{Title: "Older"})
	suite.Require().NoError(err)
	_, err = suite.service.CreateAuditRecord(suite.ctx, domain.FormFields{Title: "Newer"})
	suite.Require().NoError(err)

	records := suite.records()
	suite.Require().Len(records, 2)
	suite.Equal("Newer", records[0].Title)
	suite.Equal("Older", records[1].Title)
}

func (suite *FormServiceTestSuite) TestCreateAuditRecord_NewCreatorCreatesUser() {
	record, err := suite.service.CreateAuditRecord(suite.ctx, domain.FormFields{
		Title:   "Stock audit",
		Creator: domain.NewCreator{Name: " Mary Ann  Smith "},
	})
	suite.Require().NoError(err)

	user, err := suite.repos.UserRepo.FindUserByID(suite.ctx, record.CreatedBy)
	suite.Require().NoError(err)
	suite.Equal("Mary Ann  Smith", user.Name)
	suite.Equal("mary.ann..smith@example.com", user.Email)
}

func (suite *FormServiceTestSuite) TestCreateAuditRecord_NewCreatorRequiresName() {
	_, err := suite.service.CreateAuditRecord(suite.ctx, domain.FormFields{
		Title:   "Stock audit",
		Creator: domain.NewCreator{Name: "   "},
	})
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Empty(suite.records())

	users, err := suite.repos.UserRepo.ListUsers(suite.ctx)
	suite.Require().NoError(err)
	suite.Empty(users)
}

func (suite *FormServiceTestSuite) TestCreateAuditRecord_ExistingCreator() {
	suite.Require().NoError(suite.repos.UserRepo.InsertUser(suite.ctx, domain.User{ID: "user-1", Name: "Alice", Email: "alice@example.com"}))

	known, err := suite.service.CreateAuditRecord(suite.ctx, domain.FormFields{Title: "A", Creator: domain.ExistingCreator{UserID: "user-1"}})
	suite.Require().NoError(err)
	suite.Equal("user-1", known.CreatedBy)

	unknown, err := suite.service.CreateAuditRecord(suite.ctx, domain.FormFields{Title: "B", Creator: domain.ExistingCreator{UserID: "user-404"}})
	suite.Require().NoError(err)
	suite.Empty(unknown.CreatedBy)
}

func (suite *FormServiceTestSuite) TestSubmitForm_EmptyTitleKeepsFormOpen() {
	form, err := suite.service.OpenForm(suite.ctx, "")
	suite.Require().NoError(err)
	suite.Equal(domain.FormCreatingNew, form.State)
	suite.Equal(domain.StatusNew, form.Fields.Status)

	_, err = suite.service.UpdateForm(suite.ctx, form.ID, domain.FormPatch{Title: ptr("   "), ClientName: ptr("Acme")})
	suite.Require().NoError(err)

	_, err = suite.service.SubmitForm(suite.ctx, form.ID)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "Title is required.")

	current, err := suite.service.GetForm(suite.ctx, form.ID)
	suite.Require().NoError(err)
	suite.Equal(domain.FormCreatingNew, current.State)
	suite.Empty(suite.records())

	clients, err := suite.repos.ClientRepo.ListClients(suite.ctx)
	suite.Require().NoError(err)
	suite.Empty(clients)
}

func (suite *FormServiceTestSuite) TestSubmitForm_ClosesSession() {
	form, err := suite.service.OpenForm(suite.ctx, "")
	suite.Require().NoError(err)
	_, err = suite.service.UpdateForm(suite.ctx, form.ID, domain.FormPatch{
		Title:         ptr("Cash count"),
		Status:        ptr(domain.StatusInProgress),
		SelectedFiles: []string{"count.pdf"},
	})
	suite.Require().NoError(err)

	record, err := suite.service.SubmitForm(suite.ctx, form.ID)
	suite.Require().NoError(err)
	suite.Equal(domain.StatusInProgress, record.Status)
	suite.Equal([]string{"count.pdf"}, record.Attachments)

	_, err = suite.service.GetForm(suite.ctx, form.ID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *FormServiceTestSuite) TestUpdateForm_RejectsUnknownStatus() {
	form, err := suite.service.OpenForm(suite.ctx, "")
	suite.Require().NoError(err)

	_, err = suite.service.UpdateForm(suite.ctx, form.ID, domain.FormPatch{Status: ptr(domain.AuditStatus("Archived"))})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *FormServiceTestSuite) TestCancelForm() {
	form, err := suite.service.OpenForm(suite.ctx, "")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.service.CancelForm(suite.ctx, form.ID))

	_, err = suite.service.UpdateForm(suite.ctx, form.ID, domain.FormPatch{Title: ptr("late edit")})
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.ErrorIs(suite.service.CancelForm(suite.ctx, form.ID), apperrors.ErrNotFound)
}

func (suite *FormServiceTestSuite) TestOpenForm_UnknownRecord() {
	_, err := suite.service.OpenForm(suite.ctx, "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *FormServiceTestSuite) TestOpenForm_NewClientHint() {
	suite.Require().NoError(suite.repos.ClientRepo.InsertClient(suite.ctx, domain.Client{ID: "proj-1", Name: "ISI"}))
	form, err := suite.service.OpenForm(suite.ctx, "")
	suite.Require().NoError(err)
	suite.Empty(form.NewClientHint)

	updated, err := suite.service.UpdateForm(suite.ctx, form.ID, domain.FormPatch{ClientName: ptr(" isi ")})
	suite.Require().NoError(err)
	suite.Empty(updated.NewClientHint)

	updated, err = suite.service.UpdateForm(suite.ctx, form.ID, domain.FormPatch{ClientName: ptr("Globex ")})
	suite.Require().NoError(err)
	suite.Equal("A new client will be created: Globex", updated.NewClientHint)
}

func (suite *FormServiceTestSuite) seedEditable() domain.AuditRecord {
	suite.Require().NoError(suite.repos.ClientRepo.InsertClient(suite.ctx, domain.Client{ID: "proj-1", Name: "Waters on the Bay"}))
	suite.Require().NoError(suite.repos.UserRepo.InsertUser(suite.ctx, domain.User{ID: "user-1", Name: "Alice Johnson", Email: "alice@example.com"}))
	original := domain.AuditRecord{
		ID:          "task-1",
		Title:       "Original title",
		Description: "Original description",
		Status:      domain.StatusNew,
		CreatedBy:   "user-1",
		ClientID:    "proj-1",
		CreatedDate: time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
		Attachments: []string{"original.pdf"},
	}
	suite.Require().NoError(suite.repos.AuditRecordRepo.InsertAuditRecord(suite.ctx, original))
	suite.Require().NoError(suite.repos.AuditRecordRepo.InsertAuditRecord(suite.ctx, domain.AuditRecord{
		ID: "task-2", Title: "Newer", Status: domain.StatusNew, CreatedDate: original.CreatedDate,
	}))
	return original
}

func (suite *FormServiceTestSuite) TestOpenForm_EditPrepopulates() {
	original := suite.seedEditable()

	form, err := suite.service.OpenForm(suite.ctx, original.ID)
	suite.Require().NoError(err)

	suite.Equal(domain.FormEditingExisting, form.State)
	suite.Require().NotNil(form.Editing)
	suite.Equal(original.ID, form.Editing.ID)
	suite.Equal("Original title", form.Fields.Title)
	suite.Equal("Waters on the Bay", form.Fields.ClientName)
	suite.Equal(domain.ExistingCreator{UserID: "user-1"}, form.Fields.Creator)
	suite.Empty(form.Fields.SelectedFiles)
}

func (suite *FormServiceTestSuite) TestSubmitForm_EditUpdatesInPlace() {
	original := suite.seedEditable()

	form, err := suite.service.OpenForm(suite.ctx, original.ID)
	suite.Require().NoError(err)
	_, err = suite.service.UpdateForm(suite.ctx, form.ID, domain.FormPatch{
		Title:  ptr("Revised title"),
		Status: ptr(domain.StatusCompleted),
	})
	suite.Require().NoError(err)

	updated, err := suite.service.SubmitForm(suite.ctx, form.ID)
	suite.Require().NoError(err)

	suite.Equal(original.ID, updated.ID)
	suite.Equal(original.CreatedDate, updated.CreatedDate)
	suite.Equal("proj-1", updated.ClientID)
	suite.Equal("user-1", updated.CreatedBy)
	suite.Equal([]string{"original.pdf"}, updated.Attachments)

	records := suite.records()
	suite.Require().Len(records, 2)
	suite.Equal("task-2", records[0].ID)
	suite.Equal("task-1", records[1].ID)
	suite.Equal("Revised title", records[1].Title)
	suite.Equal(domain.StatusCompleted, records[1].Status)
}

func (suite *FormServiceTestSuite) TestSubmitForm_EditReplacesAttachmentsWhenFilesSelected() {
	original := suite.seedEditable()

	form, err := suite.service.OpenForm(suite.ctx, original.ID)
	suite.Require().NoError(err)
	_, err = suite.service.UpdateForm(suite.ctx, form.ID, domain.FormPatch{SelectedFiles: []string{"a.pdf", "b.png"}})
	suite.Require().NoError(err)

	updated, err := suite.service.SubmitForm(suite.ctx, form.ID)
	suite.Require().NoError(err)
	suite.Equal([]string{"a.pdf", "b.png"}, updated.Attachments)
}

func TestFormServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FormServiceTestSuite))
}
