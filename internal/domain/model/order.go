package model

import "github.com/shopspring/decimal"

// OrderStatus describes fulfilment lifecycle reported by the store API.
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
)

// Order is a priced snapshot of a checked-out cart.
type Order struct {
	ID         string
	User       string
	Products   []Product
	TotalPrice decimal.Decimal
	Status     OrderStatus
}

// TotalMatches reports whether TotalPrice equals the sum of embedded product prices.
func (o Order) TotalMatches() bool {
	return SumPrices(o.Products).Equal(o.TotalPrice)
}
