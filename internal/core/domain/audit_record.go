package domain

import (
	"strings"
	"time"
)

// AuditStatus is the progress state of an audit record.
type AuditStatus string

const (
	StatusNew        AuditStatus = "New"
	StatusInProgress AuditStatus = "In Progress"
	StatusCompleted  AuditStatus = "Completed"
)

// AuditStatuses lists every status in display order.
var AuditStatuses = []AuditStatus{StatusNew, StatusInProgress, StatusCompleted}

// IsValid reports whether s is one of the known statuses.
func (s AuditStatus) IsValid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// ParseAuditStatus accepts the display value ("In Progress") or its compact
// form ("InProgress"), case-insensitively.
func ParseAuditStatus(raw string) (AuditStatus, bool) {
	compact := strings.ReplaceAll(strings.TrimSpace(raw), " ", "")
	for _, s := range AuditStatuses {
		if strings.EqualFold(compact, strings.ReplaceAll(string(s), " ", "")) {
			return s, true
		}
	}
	return "", false
}

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// DateOf truncates t to its calendar day, expressed as midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AuditRecord is the primary tracked unit of work.
type AuditRecord struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Status      AuditStatus `json:"status"`
	CreatedBy   string      `json:"createdBy"` // User ID, may be empty
	ClientID    string      `json:"clientId"`  // Client ID, may be empty
	CreatedDate time.Time   `json:"createdDate"`
	Attachments []string    `json:"attachments,omitempty"`
}

// AuditRecordPredicate filters audit records. A nil predicate matches everything.
type AuditRecordPredicate func(AuditRecord) bool

// MatchesSearch reports whether term occurs in the title or description,
// ignoring case. An empty term matches every record.
func (r AuditRecord) MatchesSearch(term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(r.Title), needle) ||
		strings.Contains(strings.ToLower(r.Description), needle)
}

// SearchPredicate builds a text-search predicate, or nil for an empty term.
func SearchPredicate(term string) AuditRecordPredicate {
	if term == "" {
		return nil
	}
	return func(r AuditRecord) bool { return r.MatchesSearch(term) }
}
