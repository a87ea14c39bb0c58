package usecase

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/storefront/internal/domain/model"
)

const (
	reasonCartFetch   = "Failed to fetch cart"
	reasonOrdersFetch = "Failed to fetch orders"
)

// CartController loads and mutates the authenticated user's cart.
type CartController struct {
	api    CartAPI
	logger *slog.Logger
}

// NewCartController constructs CartController.
func NewCartController(api CartAPI, logger *slog.Logger) *CartController {
	return &CartController{api: api, logger: logger}
}

// FetchCart reports Empty both when the server has no cart and when the cart
// holds no products.
func (c *CartController) FetchCart(ctx context.Context, token string) model.Load[model.Cart] {
	cart, err := c.api.Cart(ctx, token)
	if err != nil {
		c.logger.Error("fetch cart", slog.String("error", err.Error()))
		return model.Failed[model.Cart](reasonCartFetch)
	}
	if cart.IsEmpty() {
		empty := model.Empty[model.Cart]()
		if cart != nil {
			empty.Data = *cart
		}
		return empty
	}
	return model.Loaded(*cart)
}

// AddItem appends one unit of the product to the cart.
func (c *CartController) AddItem(ctx context.Context, token, productID string) error {
	if err := c.api.AddToCart(ctx, token, productID); err != nil {
		c.logger.Error("add to cart", slog.String("product", productID), slog.String("error", err.Error()))
		return err
	}
	return nil
}

// RemoveItem issues exactly one removal. On failure current is returned as is.
func (c *CartController) RemoveItem(ctx context.Context, token string, current model.Cart, productID string) (model.Cart, error) {
	updated, err := c.api.RemoveFromCart(ctx, token, productID)
	if err != nil {
		c.logger.Error("remove from cart", slog.String("product", productID), slog.String("error", err.Error()))
		return current, err
	}
	if updated == nil {
		return model.Cart{ID: current.ID, User: current.User, Products: []model.Product{}}, nil
	}
	return *updated, nil
}

// Checkout converts the cart into an order. An empty cart makes no call and
// yields a nil order.
func (c *CartController) Checkout(ctx context.Context, token string, cart model.Cart) (*model.Order, error) {
	if cart.IsEmpty() {
		return nil, nil
	}
	order, err := c.api.CreateOrder(ctx, token, cart)
	if err != nil {
		c.logger.Error("checkout", slog.String("cart", cart.ID), slog.String("error", err.Error()))
		return nil, err
	}
	return order, nil
}

// ComputeTotal sums product prices without rounding.
func ComputeTotal(products []model.Product) decimal.Decimal {
	return model.SumPrices(products)
}

// FormatPrice renders a price for display with two decimal places.
func FormatPrice(price decimal.Decimal) string {
	return "$" + price.StringFixed(2)
}
