package model

import "github.com/shopspring/decimal"

// Product describes a catalog item as published by the store API.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Image       string
}

// ProductDraft carries admin form values for create and update requests.
type ProductDraft struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Image       string
}

// SumPrices adds product prices exactly, without rounding.
func SumPrices(products []Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Price)
	}
	return total
}
