package domain

import "github.com/shopspring/decimal"

// Stats summarizes the audit records shown on the dashboard.
type Stats struct {
	Total          int             `json:"total"`
	New            int             `json:"new"`
	InProgress     int             `json:"inProgress"`
	Completed      int             `json:"completed"`
	CompletionRate decimal.Decimal `json:"completionRate"` // percentage, 2 decimal places
}

var hundred = decimal.NewFromInt(100)

// ComputeStats counts records per status.
func ComputeStats(records []AuditRecord) Stats {
	stats := Stats{Total: len(records), CompletionRate: decimal.Zero}
	for _, r := range records {
		switch r.Status {
		case StatusNew:
			stats.New++
		case StatusInProgress:
			stats.InProgress++
		case StatusCompleted:
			stats.Completed++
		}
	}
	if stats.Total > 0 {
		stats.CompletionRate = decimal.NewFromInt(int64(stats.Completed)).
			Mul(hundred).
			Div(decimal.NewFromInt(int64(stats.Total))).
			Round(2)
	}
	return stats
}
