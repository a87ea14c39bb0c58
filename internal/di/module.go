package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/storefront/internal/adapter/storeapi"
	"github.com/polkiloo/storefront/internal/app"
	"github.com/polkiloo/storefront/internal/config"
	"github.com/polkiloo/storefront/internal/logger"
	"github.com/polkiloo/storefront/internal/pkg/auth"
	"github.com/polkiloo/storefront/internal/server/http/handlers"
	"github.com/polkiloo/storefront/internal/server/http/router"
	"github.com/polkiloo/storefront/internal/storage"
	"github.com/polkiloo/storefront/internal/usecase"
)

// Module composes the storefront fx graph. Extra options are applied last so
// tests can replace any component.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		storage.Module,
		storeapi.Module,
		fx.Provide(
			func(client storeapi.Client) usecase.AuthAPI { return client },
			func(client storeapi.Client) usecase.CatalogAPI { return client },
			func(client storeapi.Client) usecase.CartAPI { return client },
			func(client storeapi.Client) usecase.OrderAPI { return client },
		),
		usecase.Module,
		fx.Provide(
			func(facade *app.StorefrontFacade) handlers.StorefrontFacade { return facade },
			func(checker storage.HealthChecker) handlers.HealthChecker { return checker },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
