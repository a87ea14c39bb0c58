package redis

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/storefront/internal/config"
)

// Open connects to the configured address and closes the client when lc stops.
func Open(ctx context.Context, lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (*Store, error) {
	store, err := New(ctx, cfg.RedisAddr, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return store.Close()
		},
	})
	return store, nil
}
