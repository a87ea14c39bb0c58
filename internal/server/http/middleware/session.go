package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storefront/internal/domain/model"
	pkgAuth "github.com/polkiloo/storefront/internal/pkg/auth"
)

const (
	// SessionIDContextKey is a gin context key for the verified session identifier.
	SessionIDContextKey = "sessionID"
	// SessionCookieName names the signed session cookie.
	SessionCookieName = "storefront_session"
)

// SessionChecker reports whether a session id still has a stored record.
type SessionChecker interface {
	HasSession(ctx context.Context, sessionID string) bool
}

// LoadSession verifies the session cookie and stores the session id in the
// context. A cookie that fails verification, or whose session record is gone,
// is cleared; the request goes on as anonymous.
func LoadSession(signer pkgAuth.Signer, sessions SessionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, err := c.Cookie(SessionCookieName)
		if err == nil && value != "" {
			sessionID, err := signer.Verify(value)
			if err != nil || !sessions.HasSession(c.Request.Context(), sessionID) {
				ClearSessionCookie(c)
			} else {
				c.Set(SessionIDContextKey, sessionID)
			}
		}
		c.Next()
	}
}

// SetSessionCookie writes the signed cookie for session. The cookie lives as
// long as the session record; a session without expiry gets a browser
// session cookie.
func SetSessionCookie(c *gin.Context, signer pkgAuth.Signer, session *model.Session) {
	maxAge := 0
	if !session.ExpiresAt.IsZero() {
		maxAge = int(time.Until(session.ExpiresAt).Seconds())
		if maxAge <= 0 {
			maxAge = -1
		}
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, signer.Sign(session.ID, session.ExpiresAt), maxAge, "/", "", isSecure(c), true)
	c.Set(SessionIDContextKey, session.ID)
}

// ClearSessionCookie expires the session cookie in the browser.
func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", isSecure(c), true)
}

func isSecure(c *gin.Context) bool {
	return c.Request != nil && c.Request.TLS != nil
}
