package test

import (
	"context"
	"sync"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// StoreAPIStub simulates the remote store API. Every method records its
// name in Calls and delegates to the matching Fn field when set.
type StoreAPIStub struct {
	VerifyFn         func(context.Context, string) error
	VerifyAdminFn    func(context.Context, string) error
	LoginFn          func(context.Context, model.Credentials) (string, error)
	SignupFn         func(context.Context, model.Credentials) (string, error)
	ProductsFn       func(context.Context) ([]model.Product, error)
	CreateProductFn  func(context.Context, string, model.ProductDraft) (*model.Product, error)
	UpdateProductFn  func(context.Context, string, string, model.ProductDraft) (*model.Product, error)
	DeleteProductFn  func(context.Context, string, string) error
	CartFn           func(context.Context, string) (*model.Cart, error)
	AddToCartFn      func(context.Context, string, string) error
	RemoveFromCartFn func(context.Context, string, string) (*model.Cart, error)
	OrdersFn         func(context.Context, string) ([]model.Order, error)
	CreateOrderFn    func(context.Context, string, model.Cart) (*model.Order, error)

	mu    sync.Mutex
	calls []string
}

func (s *StoreAPIStub) record(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, name)
}

// Calls returns the recorded method names in call order.
func (s *StoreAPIStub) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

// CallCount returns how often name was invoked.
func (s *StoreAPIStub) CallCount(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.calls {
		if c == name {
			n++
		}
	}
	return n
}

func (s *StoreAPIStub) Verify(ctx context.Context, token string) error {
	s.record("Verify")
	if s.VerifyFn != nil {
		return s.VerifyFn(ctx, token)
	}
	return nil
}

func (s *StoreAPIStub) VerifyAdmin(ctx context.Context, token string) error {
	s.record("VerifyAdmin")
	if s.VerifyAdminFn != nil {
		return s.VerifyAdminFn(ctx, token)
	}
	return nil
}

func (s *StoreAPIStub) Login(ctx context.Context, creds model.Credentials) (string, error) {
	s.record("Login")
	if s.LoginFn != nil {
		return s.LoginFn(ctx, creds)
	}
	return "token", nil
}

func (s *StoreAPIStub) Signup(ctx context.Context, creds model.Credentials) (string, error) {
	s.record("Signup")
	if s.SignupFn != nil {
		return s.SignupFn(ctx, creds)
	}
	return "token", nil
}

func (s *StoreAPIStub) Products(ctx context.Context) ([]model.Product, error) {
	s.record("Products")
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return []model.Product{}, nil
}

func (s *StoreAPIStub) CreateProduct(ctx context.Context, token string, draft model.ProductDraft) (*model.Product, error) {
	s.record("CreateProduct")
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, token, draft)
	}
	return &model.Product{ID: "new", Name: draft.Name, Description: draft.Description, Price: draft.Price, Image: draft.Image}, nil
}

func (s *StoreAPIStub) UpdateProduct(ctx context.Context, token, id string, draft model.ProductDraft) (*model.Product, error) {
	s.record("UpdateProduct")
	if s.UpdateProductFn != nil {
		return s.UpdateProductFn(ctx, token, id, draft)
	}
	return &model.Product{ID: id, Name: draft.Name, Description: draft.Description, Price: draft.Price, Image: draft.Image}, nil
}

func (s *StoreAPIStub) DeleteProduct(ctx context.Context, token, id string) error {
	s.record("DeleteProduct")
	if s.DeleteProductFn != nil {
		return s.DeleteProductFn(ctx, token, id)
	}
	return nil
}

func (s *StoreAPIStub) Cart(ctx context.Context, token string) (*model.Cart, error) {
	s.record("Cart")
	if s.CartFn != nil {
		return s.CartFn(ctx, token)
	}
	return nil, nil
}

func (s *StoreAPIStub) AddToCart(ctx context.Context, token, productID string) error {
	s.record("AddToCart")
	if s.AddToCartFn != nil {
		return s.AddToCartFn(ctx, token, productID)
	}
	return nil
}

func (s *StoreAPIStub) RemoveFromCart(ctx context.Context, token, productID string) (*model.Cart, error) {
	s.record("RemoveFromCart")
	if s.RemoveFromCartFn != nil {
		return s.RemoveFromCartFn(ctx, token, productID)
	}
	return nil, nil
}

func (s *StoreAPIStub) Orders(ctx context.Context, token string) ([]model.Order, error) {
	s.record("Orders")
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, token)
	}
	return []model.Order{}, nil
}

func (s *StoreAPIStub) CreateOrder(ctx context.Context, token string, cart model.Cart) (*model.Order, error) {
	s.record("CreateOrder")
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, token, cart)
	}
	return &model.Order{ID: "order", Products: cart.Products, Status: model.OrderStatusProcessing}, nil
}
