package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
)

// MutationResult carries the affected product and the re-fetched catalog.
type MutationResult struct {
	Product  *model.Product
	Products model.Load[[]model.Product]
}

// ProductManager performs admin-only catalog mutations.
type ProductManager struct {
	api     CatalogAPI
	guard   *SessionGuard
	catalog *Catalog
	logger  *slog.Logger
}

// NewProductManager constructs ProductManager.
func NewProductManager(api CatalogAPI, guard *SessionGuard, catalog *Catalog, logger *slog.Logger) *ProductManager {
	return &ProductManager{api: api, guard: guard, catalog: catalog, logger: logger}
}

// ParseDraft builds a draft from raw form values and validates it.
func ParseDraft(name, description, price, image string) (model.ProductDraft, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(price))
	if err != nil {
		return model.ProductDraft{}, fmt.Errorf("%w: %q", domainErrors.ErrInvalidPrice, price)
	}
	draft := model.ProductDraft{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		Price:       amount,
		Image:       strings.TrimSpace(image),
	}
	if err := ValidateDraft(draft); err != nil {
		return model.ProductDraft{}, err
	}
	return draft, nil
}

// ValidateDraft checks a draft before it is sent upstream.
func ValidateDraft(draft model.ProductDraft) error {
	if strings.TrimSpace(draft.Name) == "" {
		return fmt.Errorf("%w: name is required", domainErrors.ErrInvalidProduct)
	}
	if draft.Price.IsNegative() {
		return fmt.Errorf("%w: must not be negative", domainErrors.ErrInvalidPrice)
	}
	u, err := url.Parse(draft.Image)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("%w: image must be an absolute url", domainErrors.ErrInvalidProduct)
	}
	return nil
}

// Create adds a product and re-fetches the catalog.
func (m *ProductManager) Create(ctx context.Context, token string, draft model.ProductDraft) (*MutationResult, error) {
	if err := m.authorize(ctx, token); err != nil {
		return nil, err
	}
	if err := ValidateDraft(draft); err != nil {
		return nil, err
	}
	product, err := m.api.CreateProduct(ctx, token, draft)
	if err != nil {
		m.logger.Error("create product", slog.String("error", err.Error()))
		return nil, err
	}
	return &MutationResult{Product: product, Products: m.catalog.Products(ctx)}, nil
}

// Update replaces the product identified by id and re-fetches the catalog.
func (m *ProductManager) Update(ctx context.Context, token, id string, draft model.ProductDraft) (*MutationResult, error) {
	if err := m.authorize(ctx, token); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, domainErrors.ErrNotFound
	}
	if err := ValidateDraft(draft); err != nil {
		return nil, err
	}
	product, err := m.api.UpdateProduct(ctx, token, id, draft)
	if err != nil {
		m.logger.Error("update product", slog.String("product", id), slog.String("error", err.Error()))
		return nil, err
	}
	return &MutationResult{Product: product, Products: m.catalog.Products(ctx)}, nil
}

// Delete removes the product identified by id and re-fetches the catalog.
func (m *ProductManager) Delete(ctx context.Context, token, id string) (*MutationResult, error) {
	if err := m.authorize(ctx, token); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, domainErrors.ErrNotFound
	}
	if err := m.api.DeleteProduct(ctx, token, id); err != nil {
		m.logger.Error("delete product", slog.String("product", id), slog.String("error", err.Error()))
		return nil, err
	}
	return &MutationResult{Products: m.catalog.Products(ctx)}, nil
}

func (m *ProductManager) authorize(ctx context.Context, token string) error {
	if token == "" {
		return domainErrors.ErrUnauthorized
	}
	if m.guard.ResolveAdmin(ctx, token) != model.AuthAuthorized {
		return domainErrors.ErrForbidden
	}
	return nil
}
