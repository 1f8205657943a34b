package models

import "time"

// AuditRecord is the stored representation of an audit record.
type AuditRecord struct {
	AuditRecordID string
	Title         string
	Description   string
	Status        string
	CreatedBy     string // UserID reference
	ClientID      string // ClientID reference
	CreatedDate   time.Time
	Attachments   []string
}
