package services

import (
	"fmt"
	"time"

	"github.com/SscSPs/audit_dashboard/internal/core/domain"
	"github.com/google/uuid"
)

const defaultDocumentDescription = "Processed document content."

// recordsFromDocuments maps the first domain.MaxFiles documents to completed
// audit records. fileNames are the selected files in upload order.
func recordsFromDocuments(docs []domain.ExtractedDocument, fileNames []string, today time.Time) []domain.AuditRecord {
	if len(docs) > domain.MaxFiles {
		docs = docs[:domain.MaxFiles]
	}
	records := make([]domain.AuditRecord, 0, len(docs))
	for i, doc := range docs {
		records = append(records, recordFromDocument(i, doc, fileNames, today))
	}
	return records
}

func recordFromDocument(i int, doc domain.ExtractedDocument, fileNames []string, today time.Time) domain.AuditRecord {
	meta := doc.Metadata

	fileName := ""
	if i < len(fileNames) {
		fileName = fileNames[i]
	}

	var attachments []string
	switch {
	case len(meta.Attachments) > 0:
		attachments = append([]string(nil), meta.Attachments...)
	case meta.Source != "":
		attachments = []string{meta.Source}
	}

	return domain.AuditRecord{
		ID:          firstNonEmpty(meta.ID, uuid.NewString()),
		Title:       firstNonEmpty(doc.Title, meta.Title, fileName, fmt.Sprintf("Document %d", i+1)),
		Description: firstNonEmpty(doc.Text, meta.Text, defaultDocumentDescription),
		Status:      domain.StatusCompleted,
		CreatedBy:   meta.CreatedBy,
		ClientID:    meta.ClientID,
		CreatedDate: today,
		Attachments: attachments,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
