package model

import (
	"time"
)

// Credentials are submitted by the login and signup forms.
type Credentials struct {
	Name     string
	Email    string
	Password string
}

// Session binds a browser cookie to the credential token issued by the store API.
type Session struct {
	ID        string
	Token     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session record outlived its storage TTL.
// A zero ExpiresAt never expires.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
