package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/polkiloo/storefront/internal/adapter/storeapi"
	"github.com/polkiloo/storefront/internal/config"
	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

// SessionManager is the only component that reads or writes credential tokens.
type SessionManager struct {
	api      AuthAPI
	sessions repository.SessionRepository
	ttl      time.Duration
	now      func() time.Time
	newID    func() string
}

// NewSessionManager constructs SessionManager.
func NewSessionManager(api AuthAPI, sessions repository.SessionRepository, cfg *config.Config) *SessionManager {
	return &SessionManager{
		api:      api,
		sessions: sessions,
		ttl:      cfg.SessionTTL,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Login exchanges credentials for a token and stores it in a fresh session.
func (m *SessionManager) Login(ctx context.Context, creds model.Credentials) (*model.Session, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	if creds.Email == "" || creds.Password == "" {
		return nil, domainErrors.ErrInvalidCredentials
	}

	token, err := m.api.Login(ctx, creds)
	if err != nil {
		return nil, mapAuthError(err)
	}
	return m.store(ctx, token)
}

// Signup registers a new account and stores the issued token.
func (m *SessionManager) Signup(ctx context.Context, creds model.Credentials) (*model.Session, error) {
	creds.Name = strings.TrimSpace(creds.Name)
	creds.Email = strings.TrimSpace(creds.Email)
	if creds.Name == "" || creds.Email == "" || creds.Password == "" {
		return nil, domainErrors.ErrInvalidCredentials
	}

	token, err := m.api.Signup(ctx, creds)
	if err != nil {
		return nil, mapAuthError(err)
	}
	return m.store(ctx, token)
}

func (m *SessionManager) store(ctx context.Context, token string) (*model.Session, error) {
	if token == "" {
		return nil, domainErrors.ErrInvalidCredentials
	}
	now := m.now()
	session := &model.Session{
		ID:        m.newID(),
		Token:     token,
		CreatedAt: now,
	}
	if m.ttl > 0 {
		session.ExpiresAt = now.Add(m.ttl)
	}
	if err := m.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Token returns the credential bound to sessionID, or "" when there is none.
func (m *SessionManager) Token(ctx context.Context, sessionID string) string {
	if sessionID == "" {
		return ""
	}
	session, err := m.sessions.Get(ctx, sessionID)
	if err != nil || session.Expired(m.now()) {
		return ""
	}
	return session.Token
}

// Logout forgets the session. Unknown sessions are not an error.
func (m *SessionManager) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	err := m.sessions.Delete(ctx, sessionID)
	if errors.Is(err, domainErrors.ErrNotFound) {
		return nil
	}
	return err
}

// PurgeExpired removes stored sessions past their expiry.
func (m *SessionManager) PurgeExpired(ctx context.Context) (int64, error) {
	return m.sessions.DeleteExpired(ctx, m.now())
}

func mapAuthError(err error) error {
	var statusErr *storeapi.StatusError
	if !errors.As(err, &statusErr) {
		return err
	}
	switch {
	case statusErr.Code == http.StatusConflict:
		return domainErrors.ErrAlreadyExists
	case statusErr.ClientError():
		return domainErrors.ErrInvalidCredentials
	default:
		return err
	}
}
