package domain

import (
	"strings"
	"unicode"
)

// SyntheticEmailDomain is appended to emails derived from a user name.
const SyntheticEmailDomain = "@example.com"

// User is a person attributable as the creator of an audit record.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// DeriveEmail synthesizes an email from a display name: trimmed, lowercased,
// every whitespace character replaced with a dot.
func DeriveEmail(name string) string {
	local := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '.'
		}
		return r
	}, strings.ToLower(strings.TrimSpace(name)))
	return local + SyntheticEmailDomain
}
