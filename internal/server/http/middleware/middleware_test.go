package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storefront/internal/domain/model"
	pkgAuth "github.com/polkiloo/storefront/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type liveSessions map[string]bool

func (l liveSessions) HasSession(_ context.Context, sessionID string) bool {
	return l[sessionID]
}

func sessionRouter(signer pkgAuth.Signer, seen *string) *gin.Engine {
	router := gin.New()
	router.Use(LoadSession(signer, liveSessions{"sid-1": true}))
	router.GET("/", func(c *gin.Context) {
		if v, ok := c.Get(SessionIDContextKey); ok {
			*seen = v.(string)
		}
		c.Status(http.StatusOK)
	})
	return router
}

func TestLoadSession(t *testing.T) {
	signer := pkgAuth.NewHMACSigner("secret")

	var seen string
	router := sessionRouter(signer, &seen)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen != "" {
		t.Fatalf("expected anonymous request, got session %q", seen)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: signer.Sign("sid-1", time.Time{})})
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if seen != "sid-1" {
		t.Fatalf("expected session sid-1, got %q", seen)
	}

	seen = ""
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: pkgAuth.NewHMACSigner("other").Sign("sid-1", time.Time{})})
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if seen != "" {
		t.Fatalf("expected forged cookie to be ignored, got %q", seen)
	}
	if resp.Code != http.StatusOK {
		t.Fatalf("expected request to continue, got %d", resp.Code)
	}
	cookies := resp.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
		t.Fatalf("expected invalid cookie to be cleared, got %+v", cookies)
	}
}

func TestLoadSessionDropsMissingRecord(t *testing.T) {
	signer := pkgAuth.NewHMACSigner("secret")
	var seen string
	router := sessionRouter(signer, &seen)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: signer.Sign("swept", time.Time{})})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if seen != "" {
		t.Fatalf("expected session without record to be anonymous, got %q", seen)
	}
	cookies := resp.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != SessionCookieName || cookies[0].MaxAge >= 0 {
		t.Fatalf("expected stale cookie to be cleared, got %+v", cookies)
	}
}

func TestSetSessionCookie(t *testing.T) {
	signer := pkgAuth.NewHMACSigner("secret")
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/login", nil)

	SetSessionCookie(c, signer, &model.Session{ID: "sid", ExpiresAt: time.Now().Add(time.Hour)})

	result := recorder.Result()
	t.Cleanup(func() {
		_ = result.Body.Close()
	})
	cookies := result.Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %+v", cookies)
	}
	cookie := cookies[0]
	if cookie.Name != SessionCookieName || !cookie.HttpOnly || cookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("unexpected cookie attributes: %+v", cookie)
	}
	if cookie.MaxAge <= 0 || cookie.MaxAge > 3600 {
		t.Fatalf("expected max age bounded by session expiry, got %d", cookie.MaxAge)
	}
	id, err := signer.Verify(cookie.Value)
	if err != nil || id != "sid" {
		t.Fatalf("expected cookie to verify to sid, got %q, %v", id, err)
	}
	if v := c.GetString(SessionIDContextKey); v != "sid" {
		t.Fatalf("expected session id in context, got %q", v)
	}
}

func TestSetSessionCookieWithoutExpiry(t *testing.T) {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/login", nil)

	SetSessionCookie(c, pkgAuth.NewHMACSigner("secret"), &model.Session{ID: "sid"})

	header := recorder.Header().Get("Set-Cookie")
	if strings.Contains(header, "Max-Age") {
		t.Fatalf("expected browser session cookie, got %q", header)
	}
}

func TestClearSessionCookie(t *testing.T) {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/logout", nil)

	ClearSessionCookie(c)

	header := recorder.Header().Get("Set-Cookie")
	if !strings.Contains(header, SessionCookieName+"=;") || !strings.Contains(header, "Max-Age=0") {
		t.Fatalf("expected expired cookie, got %q", header)
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(RequestLogger(logger))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/fail", func(c *gin.Context) {
		_ = c.Error(errors.New("upstream down"))
		c.Status(http.StatusBadGateway)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if !strings.Contains(buf.String(), `"level":"INFO"`) || !strings.Contains(buf.String(), `"status":200`) {
		t.Fatalf("expected info request log, got %s", buf.String())
	}

	buf.Reset()
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fail", nil))
	out := buf.String()
	if !strings.Contains(out, `"level":"ERROR"`) || !strings.Contains(out, "upstream down") {
		t.Fatalf("expected error request log, got %s", out)
	}
}
