package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidCookie = errors.New("invalid session cookie")

// HMACSigner signs session cookies with HMAC-SHA256.
type HMACSigner struct {
	secret []byte
	now    func() time.Time
}

// NewHMACSigner builds HMACSigner with provided secret.
func NewHMACSigner(secret string) *HMACSigner {
	return &HMACSigner{secret: []byte(secret), now: time.Now}
}

// Sign encodes the session id and expiry. A zero expiry never lapses.
func (s *HMACSigner) Sign(sessionID string, expires time.Time) string {
	var unix int64
	if !expires.IsZero() {
		unix = expires.Unix()
	}
	payload := fmt.Sprintf("%s:%d", sessionID, unix)
	value := fmt.Sprintf("%s:%s", payload, s.sign(payload))
	return base64.RawURLEncoding.EncodeToString([]byte(value))
}

// Verify checks the signature and expiry and returns the session id.
func (s *HMACSigner) Verify(value string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return "", ErrInvalidCookie
	}

	parts := strings.Split(string(raw), ":")
	if len(parts) != 3 || parts[0] == "" {
		return "", ErrInvalidCookie
	}

	payload := strings.Join(parts[:2], ":")
	if !hmac.Equal([]byte(s.sign(payload)), []byte(parts[2])) {
		return "", ErrInvalidCookie
	}

	expires, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return "", ErrInvalidCookie
	}
	if expires != 0 && !s.now().Before(time.Unix(expires, 0)) {
		return "", ErrInvalidCookie
	}

	return parts[0], nil
}

func (s *HMACSigner) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
