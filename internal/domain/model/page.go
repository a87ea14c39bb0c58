package model

import "github.com/shopspring/decimal"

// HomePage is the product grid with the visitor's login state.
type HomePage struct {
	Auth     Gate
	Products Load[[]Product]
}

// CartPage holds the guarded cart and order history. Cart and Orders stay in
// the loading state unless Gate allows access.
type CartPage struct {
	Gate   Gate
	Cart   Load[Cart]
	Orders Load[[]Order]
	Total  decimal.Decimal
}

// AdminPage is the guarded product management table.
type AdminPage struct {
	Gate     Gate
	Products Load[[]Product]
}
