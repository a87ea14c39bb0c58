package storeapi

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// Payloads mirror the JSON documents exchanged with the store API.

type productPayload struct {
	ID          string      `json:"_id,omitempty"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       json.Number `json:"price"`
	Image       string      `json:"image"`
}

type cartPayload struct {
	ID       string           `json:"_id,omitempty"`
	User     string           `json:"user"`
	Products []productPayload `json:"products"`
}

type orderPayload struct {
	ID         string           `json:"_id"`
	User       string           `json:"user"`
	Products   []productPayload `json:"products"`
	TotalPrice json.Number      `json:"totalPrice"`
	Status     string           `json:"status"`
}

type credentialsPayload struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type productsResponse struct {
	Products []productPayload `json:"products"`
}

type productResponse struct {
	Product *productPayload `json:"product"`
}

type cartResponse struct {
	Cart *cartPayload `json:"cart"`
}

type ordersResponse struct {
	Orders []orderPayload `json:"orders"`
}

type orderResponse struct {
	Order *orderPayload `json:"order"`
}

func parsePrice(n json.Number) (decimal.Decimal, error) {
	if n == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(string(n))
	if err != nil {
		return decimal.Zero, fmt.Errorf("price %q: %w", n, err)
	}
	return d, nil
}

func (p productPayload) toModel() (model.Product, error) {
	price, err := parsePrice(p.Price)
	if err != nil {
		return model.Product{}, err
	}
	return model.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       price,
		Image:       p.Image,
	}, nil
}

func toProducts(payloads []productPayload) ([]model.Product, error) {
	products := make([]model.Product, 0, len(payloads))
	for _, p := range payloads {
		product, err := p.toModel()
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}

func (c cartPayload) toModel() (*model.Cart, error) {
	products, err := toProducts(c.Products)
	if err != nil {
		return nil, err
	}
	return &model.Cart{ID: c.ID, User: c.User, Products: products}, nil
}

func (o orderPayload) toModel() (model.Order, error) {
	products, err := toProducts(o.Products)
	if err != nil {
		return model.Order{}, err
	}
	total, err := parsePrice(o.TotalPrice)
	if err != nil {
		return model.Order{}, err
	}
	return model.Order{
		ID:         o.ID,
		User:       o.User,
		Products:   products,
		TotalPrice: total,
		Status:     model.OrderStatus(o.Status),
	}, nil
}

func fromProduct(p model.Product) productPayload {
	return productPayload{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       json.Number(p.Price.String()),
		Image:       p.Image,
	}
}

func fromDraft(d model.ProductDraft) productPayload {
	return productPayload{
		Name:        d.Name,
		Description: d.Description,
		Price:       json.Number(d.Price.String()),
		Image:       d.Image,
	}
}

func fromCart(c model.Cart) cartPayload {
	products := make([]productPayload, 0, len(c.Products))
	for _, p := range c.Products {
		products = append(products, fromProduct(p))
	}
	return cartPayload{ID: c.ID, User: c.User, Products: products}
}
