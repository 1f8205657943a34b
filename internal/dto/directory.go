package dto

import (
	"time"

	"github.com/SscSPs/audit_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

type ClientResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(domain.DateLayout)
	return &s
}

func ToListClientResponse(clients []domain.Client) []ClientResponse {
	res := make([]ClientResponse, len(clients))
	for i, c := range clients {
		res[i] = ClientResponse{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			StartDate:   formatDate(c.StartDate),
			EndDate:     formatDate(c.EndDate),
		}
	}
	return res
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func ToListUserResponse(users []domain.User) []UserResponse {
	res := make([]UserResponse, len(users))
	for i, u := range users {
		res[i] = UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
	}
	return res
}

// StatsResponse summarizes the dashboard. CompletionRate is a percentage.
type StatsResponse struct {
	Total          int             `json:"total"`
	New            int             `json:"new"`
	InProgress     int             `json:"inProgress"`
	Completed      int             `json:"completed"`
	CompletionRate decimal.Decimal `json:"completionRate" swaggertype:"string" example:"33.33"`
}

func ToStatsResponse(s domain.Stats) StatsResponse {
	return StatsResponse{
		Total:          s.Total,
		New:            s.New,
		InProgress:     s.InProgress,
		Completed:      s.Completed,
		CompletionRate: s.CompletionRate,
	}
}
