package usecase

import (
	"context"
	"log/slog"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// Badge is the display affordance for an order status.
type Badge struct {
	Icon  string
	Color string
	Label string
}

// StatusBadge maps an order status to its badge. Unknown statuses get a
// neutral badge carrying the raw value.
func StatusBadge(status model.OrderStatus) Badge {
	switch status {
	case model.OrderStatusProcessing:
		return Badge{Icon: "package", Color: "yellow", Label: string(status)}
	case model.OrderStatusShipped:
		return Badge{Icon: "truck", Color: "green", Label: string(status)}
	case model.OrderStatusDelivered:
		return Badge{Icon: "check-circle", Color: "blue", Label: string(status)}
	default:
		return Badge{Icon: "help-circle", Color: "gray", Label: string(status)}
	}
}

// OrderViewer is read-only with respect to orders.
type OrderViewer struct {
	api    OrderAPI
	logger *slog.Logger
}

// NewOrderViewer constructs OrderViewer.
func NewOrderViewer(api OrderAPI, logger *slog.Logger) *OrderViewer {
	return &OrderViewer{api: api, logger: logger}
}

// FetchOrders loads the user's orders.
func (v *OrderViewer) FetchOrders(ctx context.Context, token string) model.Load[[]model.Order] {
	orders, err := v.api.Orders(ctx, token)
	if err != nil {
		v.logger.Error("fetch orders", slog.String("error", err.Error()))
		return model.Failed[[]model.Order](reasonOrdersFetch)
	}
	if len(orders) == 0 {
		empty := model.Empty[[]model.Order]()
		empty.Data = []model.Order{}
		return empty
	}
	for _, o := range orders {
		if !o.TotalMatches() {
			v.logger.Warn("order total differs from product sum",
				slog.String("order", o.ID),
				slog.String("total", o.TotalPrice.String()),
				slog.String("sum", ComputeTotal(o.Products).String()),
			)
		}
	}
	return model.Loaded(orders)
}
