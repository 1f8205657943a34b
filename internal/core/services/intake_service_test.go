package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/audit_dashboard/internal/apperrors"
	"github.com/SscSPs/audit_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/audit_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/audit_dashboard/internal/core/ports/services"
	"github.com/SscSPs/audit_dashboard/internal/core/services"
	"github.com/SscSPs/audit_dashboard/internal/repositories/memory"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockDocumentExtractor is a mock type for the DocumentExtractor interface
type MockDocumentExtractor struct {
	mock.Mock
}

func (m *MockDocumentExtractor) Extract(ctx context.Context, files []domain.UploadFile) ([]domain.ExtractedDocument, error) {
	args := m.Called(ctx, files)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExtractedDocument), args.Error(1)
}

const testTick = 2 * time.Millisecond

type IntakeServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	repos     portsrepo.RepositoryProvider
	extractor *MockDocumentExtractor
	service   portssvc.IntakeSvcFacade
}

func (suite *IntakeServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.repos = memory.NewRepositoryProvider(memory.NewRecordStore())
	suite.extractor = new(MockDocumentExtractor)
	suite.service = services.NewIntakeService(suite.extractor, suite.repos.AuditRecordRepo, testTick,
		services.WithClock(func() time.Time { return fixedNow }))
}

func (suite *IntakeServiceTestSuite) TearDownTest() {
	suite.service.Close()
}

func uploads(names ...string) []domain.UploadFile {
	files := make([]domain.UploadFile, len(names))
	for i, n := range names {
		files[i] = domain.UploadFile{Name: n, ContentType: "application/pdf", Content: []byte("%PDF-" + n)}
	}
	return files
}

func (suite *IntakeServiceTestSuite) records() []domain.AuditRecord {
	records, err := suite.repos.AuditRecordRepo.ListAuditRecords(suite.ctx, nil)
	suite.Require().NoError(err)
	return records
}

func (suite *IntakeServiceTestSuite) TestSelectFiles_TruncatesToMaxFiles() {
	status, warning, err := suite.service.SelectFiles(suite.ctx, uploads("1.pdf", "2.pdf", "3.pdf", "4.pdf", "5.pdf", "6.pdf"))

	suite.Require().NoError(err)
	suite.Equal("You can upload at most 4 files.", warning)
	suite.Equal([]string{"1.pdf", "2.pdf", "3.pdf", "4.pdf"}, status.SelectedFiles)
	suite.Equal(warning, status.Error)
}

func (suite *IntakeServiceTestSuite) TestSelectFiles_AppendsToSelection() {
	_, warning, err := suite.service.SelectFiles(suite.ctx, uploads("a.pdf", "b.pdf"))
	suite.Require().NoError(err)
	suite.Empty(warning)

	status, warning, err := suite.service.SelectFiles(suite.ctx, uploads("c.pdf", "d.pdf", "e.pdf"))
	suite.Require().NoError(err)
	suite.Equal(domain.MsgTooManyFiles, warning)
	suite.Equal([]string{"a.pdf", "b.pdf", "c.pdf", "d.pdf"}, status.SelectedFiles)
}

func (suite *IntakeServiceTestSuite) TestRemoveFile() {
	_, _, err := suite.service.SelectFiles(suite.ctx, uploads("a.pdf", "b.pdf", "c.pdf"))
	suite.Require().NoError(err)

	status, err := suite.service.RemoveFile(suite.ctx, 1)
	suite.Require().NoError(err)
	suite.Equal([]string{"a.pdf", "c.pdf"}, status.SelectedFiles)

	_, err = suite.service.RemoveFile(suite.ctx, 5)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *IntakeServiceTestSuite) TestSubmit_NoFiles() {
	_, err := suite.service.Submit(suite.ctx)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.extractor.AssertNotCalled(suite.T(), "Extract", mock.Anything, mock.Anything)
}

func (suite *IntakeServiceTestSuite) TestSubmit_CreatesCompletedRecordsInOrder() {
	files := uploads("a.pdf", "b.pdf")
	_, _, err := suite.service.SelectFiles(suite.ctx, files)
	suite.Require().NoError(err)
	suite.extractor.On("Extract", mock.Anything, files).Return([]domain.ExtractedDocument{
		{Title: "Invoice A"},
		{Title: "Invoice B"},
	}, nil).Once()

	created, err := suite.service.Submit(suite.ctx)

	suite.Require().NoError(err)
	suite.Require().Len(created, 2)
	records := suite.records()
	suite.Require().Len(records, 2)
	suite.Equal("Invoice A", records[0].Title)
	suite.Equal("Invoice B", records[1].Title)
	for _, r := range records {
		suite.Equal(domain.StatusCompleted, r.Status)
		suite.Equal(time.Date(2024, 7, 9, 0, 0, 0, 0, time.UTC), r.CreatedDate)
		suite.NotEmpty(r.ID)
	}

	status := suite.service.Status(suite.ctx)
	suite.Empty(status.SelectedFiles)
	suite.False(status.Busy)
	suite.Equal(100, status.Progress)
	suite.Equal("Documents processed successfully.", status.Message)
	suite.extractor.AssertExpectations(suite.T())
}

func (suite *IntakeServiceTestSuite) TestSubmit_ExtractionFailureKeepsSelection() {
	_, _, err := suite.service.SelectFiles(suite.ctx, uploads("a.pdf", "b.pdf"))
	suite.Require().NoError(err)
	suite.extractor.On("Extract", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: could not process the extraction request (status 500)", apperrors.ErrExtractionFailed)).Once()

	created, err := suite.service.Submit(suite.ctx)

	suite.ErrorIs(err, apperrors.ErrExtractionFailed)
	suite.Nil(created)
	suite.Empty(suite.records())

	status := suite.service.Status(suite.ctx)
	suite.Equal([]string{"a.pdf", "b.pdf"}, status.SelectedFiles)
	suite.False(status.Busy)
	suite.Equal(0, status.Progress)
	suite.Empty(status.Message)
	suite.Contains(status.Error, "status 500")
}

func (suite *IntakeServiceTestSuite) TestSubmit_UnexpectedErrorIsReportedAsExtractionFailure() {
	_, _, err := suite.service.SelectFiles(suite.ctx, uploads("a.pdf"))
	suite.Require().NoError(err)
	suite.extractor.On("Extract", mock.Anything, mock.Anything).Return(nil, context.DeadlineExceeded).Once()

	_, err = suite.service.Submit(suite.ctx)

	suite.ErrorIs(err, apperrors.ErrExtractionFailed)
	suite.Empty(suite.records())
}

func (suite *IntakeServiceTestSuite) TestSubmit_DuplicateDocumentIDGetsFreshID() {
	suite.Require().NoError(suite.repos.AuditRecordRepo.InsertAuditRecord(suite.ctx, domain.AuditRecord{ID: "doc-1", Title: "Existing", Status: domain.StatusNew}))
	_, _, err := suite.service.SelectFiles(suite.ctx, uploads("a.pdf"))
	suite.Require().NoError(err)
	suite.extractor.On("Extract", mock.Anything, mock.Anything).Return([]domain.ExtractedDocument{
		{Title: "Extracted", Metadata: domain.DocumentMetadata{ID: "doc-1"}},
	}, nil).Once()

	created, err := suite.service.Submit(suite.ctx)

	suite.Require().NoError(err)
	suite.Require().Len(created, 1)
	suite.NotEqual("doc-1", created[0].ID)
	suite.Len(suite.records(), 2)
}

func (suite *IntakeServiceTestSuite) TestSubmit_BusyRejectsSecondUpload() {
	release := make(chan struct{})
	_, _, err := suite.service.SelectFiles(suite.ctx, uploads("a.pdf"))
	suite.Require().NoError(err)
	suite.extractor.On("Extract", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { <-release }).
		Return([]domain.ExtractedDocument{{Title: "Only"}}, nil).Once()

	done := make(chan error, 1)
	go func() {
		_, err := suite.service.Submit(suite.ctx)
		done <- err
	}()
	suite.Eventually(func() bool { return suite.service.Status(suite.ctx).Busy }, time.Second, time.Millisecond)

	_, err = suite.service.Submit(suite.ctx)
	suite.ErrorIs(err, apperrors.ErrIntakeBusy)
	_, _, err = suite.service.SelectFiles(suite.ctx, uploads("b.pdf"))
	suite.ErrorIs(err, apperrors.ErrIntakeBusy)

	close(release)
	suite.Require().NoError(<-done)
	suite.Len(suite.records(), 1)
}

func (suite *IntakeServiceTestSuite) TestProgress_AdvancesWhileBusyAndStopsAfterCompletion() {
	release := make(chan struct{})
	_, _, err := suite.service.SelectFiles(suite.ctx, uploads("a.pdf"))
	suite.Require().NoError(err)
	suite.extractor.On("Extract", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { <-release }).
		Return([]domain.ExtractedDocument{{Title: "Only"}}, nil).Once()

	done := make(chan error, 1)
	go func() {
		_, err := suite.service.Submit(suite.ctx)
		done <- err
	}()

	// 10 + 7n never exceeds the cap of 90.
	suite.Eventually(func() bool { return suite.service.Status(suite.ctx).Progress == 90 }, 2*time.Second, time.Millisecond)
	status := suite.service.Status(suite.ctx)
	suite.True(status.Busy)
	suite.Equal("Uploading files and extracting content...", status.Message)

	close(release)
	suite.Require().NoError(<-done)
	suite.Equal(100, suite.service.Status(suite.ctx).Progress)

	time.Sleep(20 * testTick)
	suite.Equal(100, suite.service.Status(suite.ctx).Progress)
}

func (suite *IntakeServiceTestSuite) TestClose_StopsProgressTicker() {
	release := make(chan struct{})
	_, _, err := suite.service.SelectFiles(suite.ctx, uploads("a.pdf"))
	suite.Require().NoError(err)
	suite.extractor.On("Extract", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { <-release }).
		Return(nil, fmt.Errorf("%w: gone", apperrors.ErrExtractionFailed)).Once()

	done := make(chan error, 1)
	go func() {
		_, err := suite.service.Submit(suite.ctx)
		done <- err
	}()
	suite.Eventually(func() bool { return suite.service.Status(suite.ctx).Progress > 10 }, time.Second, time.Millisecond)

	suite.service.Close()
	frozen := suite.service.Status(suite.ctx).Progress
	time.Sleep(20 * testTick)
	suite.Equal(frozen, suite.service.Status(suite.ctx).Progress)

	close(release)
	suite.ErrorIs(<-done, apperrors.ErrExtractionFailed)
	suite.Equal(0, suite.service.Status(suite.ctx).Progress)
}

func TestIntakeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(IntakeServiceTestSuite))
}
