package usecase

import (
	"context"
	"log/slog"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// SessionGuard resolves whether a token grants access. Any failure resolves
// to AuthUnauthorized and is never retried.
type SessionGuard struct {
	api    AuthAPI
	logger *slog.Logger
}

// NewSessionGuard constructs SessionGuard.
func NewSessionGuard(api AuthAPI, logger *slog.Logger) *SessionGuard {
	return &SessionGuard{api: api, logger: logger}
}

// Resolve checks the token against the verification endpoint.
func (g *SessionGuard) Resolve(ctx context.Context, token string) model.AuthState {
	if err := g.api.Verify(ctx, token); err != nil {
		g.logger.Debug("session not verified", slog.String("error", err.Error()))
		return model.AuthUnauthorized
	}
	return model.AuthAuthorized
}

// ResolveAdmin checks the token against the admin endpoint.
func (g *SessionGuard) ResolveAdmin(ctx context.Context, token string) model.AuthState {
	if err := g.api.VerifyAdmin(ctx, token); err != nil {
		g.logger.Debug("admin not verified", slog.String("error", err.Error()))
		return model.AuthUnauthorized
	}
	return model.AuthAuthorized
}
