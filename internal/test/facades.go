package test

import (
	"context"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// StorefrontFacadeStub simulates the application facade for HTTP tests.
// Unset page functions return an allowed page with empty data.
type StorefrontFacadeStub struct {
	LoginFn          func(context.Context, model.Credentials) (*model.Session, error)
	SignupFn         func(context.Context, model.Credentials) (*model.Session, error)
	LogoutFn         func(context.Context, string) error
	HasSessionFn     func(context.Context, string) bool
	HomePageFn       func(context.Context, string) model.HomePage
	AddToCartFn      func(context.Context, string, string) error
	CartPageFn       func(context.Context, string) model.CartPage
	RemoveFromCartFn func(context.Context, string, string) (model.CartPage, error)
	CheckoutFn       func(context.Context, string) (model.CartPage, *model.Order, error)
	AdminPageFn      func(context.Context, string) model.AdminPage
	CreateProductFn  func(context.Context, string, model.ProductDraft) (model.AdminPage, error)
	UpdateProductFn  func(context.Context, string, string, model.ProductDraft) (model.AdminPage, error)
	DeleteProductFn  func(context.Context, string, string) (model.AdminPage, error)
}

var allowed = model.Gate{State: model.AuthAuthorized}

func (s StorefrontFacadeStub) Login(ctx context.Context, creds model.Credentials) (*model.Session, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, creds)
	}
	return &model.Session{ID: "session", Token: "token"}, nil
}

func (s StorefrontFacadeStub) Signup(ctx context.Context, creds model.Credentials) (*model.Session, error) {
	if s.SignupFn != nil {
		return s.SignupFn(ctx, creds)
	}
	return &model.Session{ID: "session", Token: "token"}, nil
}

func (s StorefrontFacadeStub) Logout(ctx context.Context, sessionID string) error {
	if s.LogoutFn != nil {
		return s.LogoutFn(ctx, sessionID)
	}
	return nil
}

func (s StorefrontFacadeStub) HasSession(ctx context.Context, sessionID string) bool {
	if s.HasSessionFn != nil {
		return s.HasSessionFn(ctx, sessionID)
	}
	return true
}

func (s StorefrontFacadeStub) HomePage(ctx context.Context, sessionID string) model.HomePage {
	if s.HomePageFn != nil {
		return s.HomePageFn(ctx, sessionID)
	}
	return model.HomePage{Auth: allowed, Products: model.Empty[[]model.Product]()}
}

func (s StorefrontFacadeStub) AddToCart(ctx context.Context, sessionID, productID string) error {
	if s.AddToCartFn != nil {
		return s.AddToCartFn(ctx, sessionID, productID)
	}
	return nil
}

func (s StorefrontFacadeStub) CartPage(ctx context.Context, sessionID string) model.CartPage {
	if s.CartPageFn != nil {
		return s.CartPageFn(ctx, sessionID)
	}
	return model.CartPage{Gate: allowed, Cart: model.Empty[model.Cart](), Orders: model.Empty[[]model.Order]()}
}

func (s StorefrontFacadeStub) RemoveFromCart(ctx context.Context, sessionID, productID string) (model.CartPage, error) {
	if s.RemoveFromCartFn != nil {
		return s.RemoveFromCartFn(ctx, sessionID, productID)
	}
	return s.CartPage(ctx, sessionID), nil
}

func (s StorefrontFacadeStub) Checkout(ctx context.Context, sessionID string) (model.CartPage, *model.Order, error) {
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, sessionID)
	}
	return s.CartPage(ctx, sessionID), &model.Order{ID: "order", Status: model.OrderStatusProcessing}, nil
}

func (s StorefrontFacadeStub) AdminPage(ctx context.Context, sessionID string) model.AdminPage {
	if s.AdminPageFn != nil {
		return s.AdminPageFn(ctx, sessionID)
	}
	return model.AdminPage{Gate: allowed, Products: model.Empty[[]model.Product]()}
}

func (s StorefrontFacadeStub) CreateProduct(ctx context.Context, sessionID string, draft model.ProductDraft) (model.AdminPage, error) {
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, sessionID, draft)
	}
	return s.AdminPage(ctx, sessionID), nil
}

func (s StorefrontFacadeStub) UpdateProduct(ctx context.Context, sessionID, id string, draft model.ProductDraft) (model.AdminPage, error) {
	if s.UpdateProductFn != nil {
		return s.UpdateProductFn(ctx, sessionID, id, draft)
	}
	return s.AdminPage(ctx, sessionID), nil
}

func (s StorefrontFacadeStub) DeleteProduct(ctx context.Context, sessionID, id string) (model.AdminPage, error) {
	if s.DeleteProductFn != nil {
		return s.DeleteProductFn(ctx, sessionID, id)
	}
	return s.AdminPage(ctx, sessionID), nil
}

// HealthCheckerStub returns Err from HealthCheck.
type HealthCheckerStub struct {
	Err error
}

func (s HealthCheckerStub) HealthCheck(context.Context) error {
	return s.Err
}
