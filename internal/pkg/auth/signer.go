package auth

import "time"

// Signer binds a session identifier to a tamper-proof cookie value.
type Signer interface {
	Sign(sessionID string, expires time.Time) string
	Verify(value string) (string, error)
}
