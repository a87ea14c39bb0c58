package app

import (
	"context"
	"sync"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/usecase"
)

// StorefrontFacade composes use cases into the pages served to the browser.
// Sessions are referenced by id; tokens never leave this layer.
type StorefrontFacade struct {
	sessions *usecase.SessionManager
	guard    *usecase.SessionGuard
	carts    *usecase.CartController
	orders   *usecase.OrderViewer
	catalog  *usecase.Catalog
	products *usecase.ProductManager
}

func NewStorefrontFacade(
	sessions *usecase.SessionManager,
	guard *usecase.SessionGuard,
	carts *usecase.CartController,
	orders *usecase.OrderViewer,
	catalog *usecase.Catalog,
	products *usecase.ProductManager,
) *StorefrontFacade {
	return &StorefrontFacade{
		sessions: sessions,
		guard:    guard,
		carts:    carts,
		orders:   orders,
		catalog:  catalog,
		products: products,
	}
}

func (f *StorefrontFacade) Login(ctx context.Context, creds model.Credentials) (*model.Session, error) {
	return f.sessions.Login(ctx, creds)
}

func (f *StorefrontFacade) Signup(ctx context.Context, creds model.Credentials) (*model.Session, error) {
	return f.sessions.Signup(ctx, creds)
}

func (f *StorefrontFacade) Logout(ctx context.Context, sessionID string) error {
	return f.sessions.Logout(ctx, sessionID)
}

// HasSession reports whether sessionID still maps to a live credential token.
func (f *StorefrontFacade) HasSession(ctx context.Context, sessionID string) bool {
	return f.sessions.Token(ctx, sessionID) != ""
}

// PurgeExpired lets the session sweeper reach the session manager.
func (f *StorefrontFacade) PurgeExpired(ctx context.Context) (int64, error) {
	return f.sessions.PurgeExpired(ctx)
}

// HomePage resolves the login state and the catalog concurrently.
func (f *StorefrontFacade) HomePage(ctx context.Context, sessionID string) model.HomePage {
	token := f.sessions.Token(ctx, sessionID)

	var (
		page model.HomePage
		wg   sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		page.Auth = model.Gate{State: f.guard.Resolve(ctx, token)}
	}()
	go func() {
		defer wg.Done()
		page.Products = f.catalog.Products(ctx)
	}()
	wg.Wait()
	return page
}

// AddToCart requires a session; the server decides whether the token is valid.
func (f *StorefrontFacade) AddToCart(ctx context.Context, sessionID, productID string) error {
	token := f.sessions.Token(ctx, sessionID)
	if token == "" {
		return domainErrors.ErrUnauthorized
	}
	return f.carts.AddItem(ctx, token, productID)
}

// CartPage starts the guard check and both data loads together. Data is
// withheld from the page unless the guard allows access.
func (f *StorefrontFacade) CartPage(ctx context.Context, sessionID string) model.CartPage {
	return f.cartPage(ctx, f.sessions.Token(ctx, sessionID))
}

func (f *StorefrontFacade) cartPage(ctx context.Context, token string) model.CartPage {
	var (
		state  model.AuthState
		cart   model.Load[model.Cart]
		orders model.Load[[]model.Order]
		wg     sync.WaitGroup
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		state = f.guard.Resolve(ctx, token)
	}()
	go func() {
		defer wg.Done()
		cart = f.carts.FetchCart(ctx, token)
	}()
	go func() {
		defer wg.Done()
		orders = f.orders.FetchOrders(ctx, token)
	}()
	wg.Wait()

	page := model.CartPage{Gate: model.Gate{State: state}}
	if !page.Gate.Allowed() {
		return page
	}
	page.Cart = cart
	page.Orders = orders
	page.Total = usecase.ComputeTotal(cart.Data.Products)
	return page
}

// RemoveFromCart removes one product and returns the page with the updated
// cart. On failure the page shows the cart as it was.
func (f *StorefrontFacade) RemoveFromCart(ctx context.Context, sessionID, productID string) (model.CartPage, error) {
	token := f.sessions.Token(ctx, sessionID)
	page := f.cartPage(ctx, token)
	if !page.Gate.Allowed() {
		return page, domainErrors.ErrUnauthorized
	}
	if page.Cart.IsFailed() {
		return page, domainErrors.ErrTransport
	}

	updated, err := f.carts.RemoveItem(ctx, token, page.Cart.Data, productID)
	if err != nil {
		return page, err
	}
	if updated.IsEmpty() {
		page.Cart = model.Empty[model.Cart]()
		page.Cart.Data = updated
	} else {
		page.Cart = model.Loaded(updated)
	}
	page.Total = usecase.ComputeTotal(updated.Products)
	return page, nil
}

// Checkout places an order from the current cart, then reloads cart and
// orders from the server. A nil order means the cart was empty.
func (f *StorefrontFacade) Checkout(ctx context.Context, sessionID string) (model.CartPage, *model.Order, error) {
	token := f.sessions.Token(ctx, sessionID)
	page := f.cartPage(ctx, token)
	if !page.Gate.Allowed() {
		return page, nil, domainErrors.ErrUnauthorized
	}
	if page.Cart.IsFailed() {
		return page, nil, domainErrors.ErrTransport
	}

	order, err := f.carts.Checkout(ctx, token, page.Cart.Data)
	if err != nil || order == nil {
		return page, nil, err
	}
	return f.cartPage(ctx, token), order, nil
}

// AdminPage resolves admin privilege and loads the catalog concurrently.
func (f *StorefrontFacade) AdminPage(ctx context.Context, sessionID string) model.AdminPage {
	return f.adminPage(ctx, f.sessions.Token(ctx, sessionID))
}

func (f *StorefrontFacade) adminPage(ctx context.Context, token string) model.AdminPage {
	var (
		state    model.AuthState
		products model.Load[[]model.Product]
		wg       sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		state = f.guard.ResolveAdmin(ctx, token)
	}()
	go func() {
		defer wg.Done()
		products = f.catalog.Products(ctx)
	}()
	wg.Wait()

	page := model.AdminPage{Gate: model.Gate{State: state}}
	if page.Gate.Allowed() {
		page.Products = products
	}
	return page
}

func (f *StorefrontFacade) CreateProduct(ctx context.Context, sessionID string, draft model.ProductDraft) (model.AdminPage, error) {
	token := f.sessions.Token(ctx, sessionID)
	result, err := f.products.Create(ctx, token, draft)
	return f.afterMutation(ctx, token, result, err)
}

func (f *StorefrontFacade) UpdateProduct(ctx context.Context, sessionID, id string, draft model.ProductDraft) (model.AdminPage, error) {
	token := f.sessions.Token(ctx, sessionID)
	result, err := f.products.Update(ctx, token, id, draft)
	return f.afterMutation(ctx, token, result, err)
}

func (f *StorefrontFacade) DeleteProduct(ctx context.Context, sessionID, id string) (model.AdminPage, error) {
	token := f.sessions.Token(ctx, sessionID)
	result, err := f.products.Delete(ctx, token, id)
	return f.afterMutation(ctx, token, result, err)
}

func (f *StorefrontFacade) afterMutation(ctx context.Context, token string, result *usecase.MutationResult, err error) (model.AdminPage, error) {
	if err != nil {
		return f.adminPage(ctx, token), err
	}
	return model.AdminPage{
		Gate:     model.Gate{State: model.AuthAuthorized},
		Products: result.Products,
	}, nil
}
