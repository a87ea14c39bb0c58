package storage

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/storefront/internal/config"
	"github.com/polkiloo/storefront/internal/domain/repository"
	"github.com/polkiloo/storefront/internal/storage/memory"
	"github.com/polkiloo/storefront/internal/storage/postgres"
	"github.com/polkiloo/storefront/internal/storage/redis"
)

// HealthChecker reports whether the session backend is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Module provides the session repository selected by configuration.
var Module = fx.Provide(newBackend)

type backendParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Ctx       context.Context
	Config    *config.Config
	Logger    *slog.Logger
}

type backendResult struct {
	fx.Out

	Sessions repository.SessionRepository
	Health   HealthChecker
}

func newBackend(p backendParams) (backendResult, error) {
	p.Logger.Info("session backend selected", slog.String("backend", p.Config.SessionBackend))

	switch p.Config.SessionBackend {
	case config.BackendMemory, "":
		store := memory.New()
		return backendResult{Sessions: store, Health: store}, nil
	case config.BackendRedis:
		store, err := redis.Open(p.Ctx, p.Lifecycle, p.Config, p.Logger)
		if err != nil {
			return backendResult{}, err
		}
		return backendResult{Sessions: store, Health: store}, nil
	case config.BackendPostgres:
		store, err := postgres.Open(p.Ctx, p.Lifecycle, p.Config, p.Logger)
		if err != nil {
			return backendResult{}, err
		}
		return backendResult{Sessions: store.Sessions(), Health: store}, nil
	default:
		return backendResult{}, fmt.Errorf("unknown session backend %q", p.Config.SessionBackend)
	}
}
