package models

import "time"

// Client represents a stored client (an organizational grouping of audits).
type Client struct {
	ClientID    string
	Name        string
	Description string
	StartDate   *time.Time
	EndDate     *time.Time
}
