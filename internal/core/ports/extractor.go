package ports

import (
	"context"

	"github.com/SscSPs/audit_dashboard/internal/core/domain"
)

// DocumentExtractor sends files to the external extraction endpoint and returns
// the document descriptors it produced. An error means the upload failed or the
// payload carried no documents.
type DocumentExtractor interface {
	Extract(ctx context.Context, files []domain.UploadFile) ([]domain.ExtractedDocument, error)
}
