package handlers

import (
	"context"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Login(ctx context.Context, creds model.Credentials) (*model.Session, error)
	Signup(ctx context.Context, creds model.Credentials) (*model.Session, error)
	Logout(ctx context.Context, sessionID string) error
	HasSession(ctx context.Context, sessionID string) bool
}

// ShopFacade covers the product grid, cart and order history.
type ShopFacade interface {
	HomePage(ctx context.Context, sessionID string) model.HomePage
	AddToCart(ctx context.Context, sessionID, productID string) error
	CartPage(ctx context.Context, sessionID string) model.CartPage
	RemoveFromCart(ctx context.Context, sessionID, productID string) (model.CartPage, error)
	Checkout(ctx context.Context, sessionID string) (model.CartPage, *model.Order, error)
}

// AdminFacade provides catalog management for administrators.
type AdminFacade interface {
	AdminPage(ctx context.Context, sessionID string) model.AdminPage
	CreateProduct(ctx context.Context, sessionID string, draft model.ProductDraft) (model.AdminPage, error)
	UpdateProduct(ctx context.Context, sessionID, id string, draft model.ProductDraft) (model.AdminPage, error)
	DeleteProduct(ctx context.Context, sessionID, id string) (model.AdminPage, error)
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	AuthFacade
	ShopFacade
	AdminFacade
}

// HealthChecker reports whether the session backend is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
