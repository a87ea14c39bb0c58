package usecase

import (
	"io"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/storefront/internal/domain/model"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func product(id, price string) model.Product {
	return model.Product{ID: id, Name: "product " + id, Price: decimal.RequireFromString(price), Image: "http://img/" + id}
}
