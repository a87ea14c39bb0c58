package storeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
)

// Client exposes every store API endpoint the storefront consumes.
type Client interface {
	Verify(ctx context.Context, token string) error
	VerifyAdmin(ctx context.Context, token string) error
	Login(ctx context.Context, creds model.Credentials) (string, error)
	Signup(ctx context.Context, creds model.Credentials) (string, error)

	Products(ctx context.Context) ([]model.Product, error)
	CreateProduct(ctx context.Context, token string, draft model.ProductDraft) (*model.Product, error)
	UpdateProduct(ctx context.Context, token, id string, draft model.ProductDraft) (*model.Product, error)
	DeleteProduct(ctx context.Context, token, id string) error

	Cart(ctx context.Context, token string) (*model.Cart, error)
	AddToCart(ctx context.Context, token, productID string) error
	RemoveFromCart(ctx context.Context, token, productID string) (*model.Cart, error)

	Orders(ctx context.Context, token string) ([]model.Order, error)
	CreateOrder(ctx context.Context, token string, cart model.Cart) (*model.Order, error)
}

// HTTPClient implements Client via the REST API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient creates a client for baseURL. A zero timeout means calls
// are bounded only by their context.
func NewHTTPClient(baseURL string, timeout time.Duration, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse store api url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("store api url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}, nil
}

func (c *HTTPClient) Verify(ctx context.Context, token string) error {
	return c.do(ctx, "verify", http.MethodGet, token, nil, http.StatusOK, nil, "auth", "verify")
}

func (c *HTTPClient) VerifyAdmin(ctx context.Context, token string) error {
	return c.do(ctx, "verify admin", http.MethodGet, token, nil, http.StatusOK, nil, "auth", "admin")
}

func (c *HTTPClient) Login(ctx context.Context, creds model.Credentials) (string, error) {
	body := credentialsPayload{Email: creds.Email, Password: creds.Password}
	var out tokenResponse
	if err := c.do(ctx, "login", http.MethodPost, "", body, anySuccess, &out, "auth", "login"); err != nil {
		return "", err
	}
	return out.Token, nil
}

func (c *HTTPClient) Signup(ctx context.Context, creds model.Credentials) (string, error) {
	body := credentialsPayload{Name: creds.Name, Email: creds.Email, Password: creds.Password}
	var out tokenResponse
	if err := c.do(ctx, "signup", http.MethodPost, "", body, anySuccess, &out, "auth", "signup"); err != nil {
		return "", err
	}
	return out.Token, nil
}

func (c *HTTPClient) Products(ctx context.Context) ([]model.Product, error) {
	var out productsResponse
	if err := c.do(ctx, "list products", http.MethodGet, "", nil, anySuccess, &out, "product"); err != nil {
		return nil, err
	}
	products, err := toProducts(out.Products)
	if err != nil {
		return nil, malformed("list products", err)
	}
	return products, nil
}

func (c *HTTPClient) CreateProduct(ctx context.Context, token string, draft model.ProductDraft) (*model.Product, error) {
	var out productResponse
	if err := c.do(ctx, "create product", http.MethodPost, token, fromDraft(draft), http.StatusCreated, &out, "product", "/"); err != nil {
		return nil, err
	}
	return productFrom("create product", out)
}

func (c *HTTPClient) UpdateProduct(ctx context.Context, token, id string, draft model.ProductDraft) (*model.Product, error) {
	var out productResponse
	if err := c.do(ctx, "update product", http.MethodPut, token, fromDraft(draft), anySuccess, &out, "product", id); err != nil {
		return nil, err
	}
	return productFrom("update product", out)
}

func (c *HTTPClient) DeleteProduct(ctx context.Context, token, id string) error {
	return c.do(ctx, "delete product", http.MethodDelete, token, nil, http.StatusOK, nil, "product", id)
}

// Cart returns nil without error when the server holds no cart for the user.
func (c *HTTPClient) Cart(ctx context.Context, token string) (*model.Cart, error) {
	var out cartResponse
	if err := c.do(ctx, "get cart", http.MethodGet, token, nil, anySuccess, &out, "cart", "/"); err != nil {
		return nil, err
	}
	if out.Cart == nil {
		return nil, nil
	}
	cart, err := out.Cart.toModel()
	if err != nil {
		return nil, malformed("get cart", err)
	}
	return cart, nil
}

func (c *HTTPClient) AddToCart(ctx context.Context, token, productID string) error {
	return c.do(ctx, "add to cart", http.MethodPost, token, nil, anySuccess, nil, "cart", productID)
}

// RemoveFromCart returns the cart as the server holds it after the removal.
func (c *HTTPClient) RemoveFromCart(ctx context.Context, token, productID string) (*model.Cart, error) {
	var out cartResponse
	if err := c.do(ctx, "remove from cart", http.MethodDelete, token, nil, http.StatusOK, &out, "cart", productID); err != nil {
		return nil, err
	}
	if out.Cart == nil {
		return nil, nil
	}
	cart, err := out.Cart.toModel()
	if err != nil {
		return nil, malformed("remove from cart", err)
	}
	return cart, nil
}

func (c *HTTPClient) Orders(ctx context.Context, token string) ([]model.Order, error) {
	var out ordersResponse
	if err := c.do(ctx, "list orders", http.MethodGet, token, nil, anySuccess, &out, "order"); err != nil {
		return nil, err
	}
	orders := make([]model.Order, 0, len(out.Orders))
	for _, o := range out.Orders {
		order, err := o.toModel()
		if err != nil {
			return nil, malformed("list orders", err)
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// CreateOrder posts the cart document itself; the server derives the order from it.
func (c *HTTPClient) CreateOrder(ctx context.Context, token string, cart model.Cart) (*model.Order, error) {
	var out orderResponse
	if err := c.do(ctx, "create order", http.MethodPost, token, fromCart(cart), anySuccess, &out, "order", "add"); err != nil {
		return nil, err
	}
	if out.Order == nil {
		return nil, malformed("create order", errors.New("missing order"))
	}
	order, err := out.Order.toModel()
	if err != nil {
		return nil, malformed("create order", err)
	}
	return &order, nil
}

func (c *HTTPClient) do(ctx context.Context, op, method, token string, in any, want int, out any, segments ...string) error {
	endpoint := *c.baseURL
	parts := append([]string{endpoint.Path}, segments...)
	endpoint.Path = path.Join(parts...)
	if last := segments[len(segments)-1]; last == "/" {
		endpoint.Path += "/"
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("store api unreachable", slog.String("op", op), slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w: %v", op, domainErrors.ErrTransport, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: %w: %v", op, domainErrors.ErrTransport, err)
	}

	if !accepted(resp.StatusCode, want) {
		c.logger.Error("store api request failed",
			slog.String("op", op),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(data)),
		)
		return &StatusError{Op: op, Code: resp.StatusCode, Body: string(data)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return malformed(op, err)
	}
	return nil
}

// anySuccess accepts every 2xx status.
const anySuccess = 0

func accepted(code, want int) bool {
	if want == anySuccess {
		return code >= 200 && code < 300
	}
	return code == want
}

func malformed(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, domainErrors.ErrMalformedResponse, err)
}

func productFrom(op string, out productResponse) (*model.Product, error) {
	if out.Product == nil {
		return nil, malformed(op, errors.New("missing product"))
	}
	product, err := out.Product.toModel()
	if err != nil {
		return nil, malformed(op, err)
	}
	return &product, nil
}
