package usecase

import (
	"context"
	"log/slog"

	"github.com/polkiloo/storefront/internal/domain/model"
)

const reasonProductsFetch = "Failed to fetch products"

// Catalog lists the public product collection.
type Catalog struct {
	api    CatalogAPI
	logger *slog.Logger
}

func NewCatalog(api CatalogAPI, logger *slog.Logger) *Catalog {
	return &Catalog{api: api, logger: logger}
}

func (c *Catalog) Products(ctx context.Context) model.Load[[]model.Product] {
	products, err := c.api.Products(ctx)
	if err != nil {
		c.logger.Error("fetch products", slog.String("error", err.Error()))
		return model.Failed[[]model.Product](reasonProductsFetch)
	}
	if len(products) == 0 {
		empty := model.Empty[[]model.Product]()
		empty.Data = []model.Product{}
		return empty
	}
	return model.Loaded(products)
}
