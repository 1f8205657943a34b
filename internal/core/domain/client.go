package domain

import (
	"fmt"
	"strings"
	"time"
)

// Client is an organizational grouping that audit records belong to.
type Client struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
}

// HasName reports whether the client's name equals name after trimming and
// case folding. No fuzzy or partial matching is performed.
func (c Client) HasName(name string) bool {
	return strings.EqualFold(strings.TrimSpace(c.Name), strings.TrimSpace(name))
}

// ClientDescriptionFor is the description given to implicitly created clients.
func ClientDescriptionFor(name string) string {
	return fmt.Sprintf("Audits for %s.", name)
}
