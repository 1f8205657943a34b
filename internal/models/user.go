package models

// User represents a stored user.
type User struct {
	UserID string
	Name   string
	Email  string
}
