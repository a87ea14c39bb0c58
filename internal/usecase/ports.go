package usecase

import (
	"context"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// AuthAPI is the part of the store API that issues and checks credentials.
type AuthAPI interface {
	Verify(ctx context.Context, token string) error
	VerifyAdmin(ctx context.Context, token string) error
	Login(ctx context.Context, creds model.Credentials) (string, error)
	Signup(ctx context.Context, creds model.Credentials) (string, error)
}

// CatalogAPI lists and mutates products.
type CatalogAPI interface {
	Products(ctx context.Context) ([]model.Product, error)
	CreateProduct(ctx context.Context, token string, draft model.ProductDraft) (*model.Product, error)
	UpdateProduct(ctx context.Context, token, id string, draft model.ProductDraft) (*model.Product, error)
	DeleteProduct(ctx context.Context, token, id string) error
}

// CartAPI manages the user's cart and turns it into an order.
type CartAPI interface {
	Cart(ctx context.Context, token string) (*model.Cart, error)
	AddToCart(ctx context.Context, token, productID string) error
	RemoveFromCart(ctx context.Context, token, productID string) (*model.Cart, error)
	CreateOrder(ctx context.Context, token string, cart model.Cart) (*model.Order, error)
}

// OrderAPI lists past orders.
type OrderAPI interface {
	Orders(ctx context.Context, token string) ([]model.Order, error)
}
