package mapping

import (
	"github.com/SscSPs/audit_dashboard/internal/core/domain"
	"github.com/SscSPs/audit_dashboard/internal/models"
)

// ToModelAuditRecord converts a domain AuditRecord to a model AuditRecord.
// Attachments are copied so the stored record does not alias caller memory.
func ToModelAuditRecord(d domain.AuditRecord) models.AuditRecord {
	return models.AuditRecord{
		AuditRecordID: d.ID,
		Title:         d.Title,
		Description:   d.Description,
		Status:        string(d.Status),
		CreatedBy:     d.CreatedBy,
		ClientID:      d.ClientID,
		CreatedDate:   d.CreatedDate,
		Attachments:   copyStrings(d.Attachments),
	}
}

// ToDomainAuditRecord converts a model AuditRecord to a domain AuditRecord.
func ToDomainAuditRecord(m models.AuditRecord) domain.AuditRecord {
	return domain.AuditRecord{
		ID:          m.AuditRecordID,
		Title:       m.Title,
		Description: m.Description,
		Status:      domain.AuditStatus(m.Status),
		CreatedBy:   m.CreatedBy,
		ClientID:    m.ClientID,
		CreatedDate: m.CreatedDate,
		Attachments: copyStrings(m.Attachments),
	}
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
