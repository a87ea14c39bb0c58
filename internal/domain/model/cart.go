package model

// Cart is the pending product selection of a single user.
// Products keep server order and may contain duplicates.
type Cart struct {
	ID       string
	User     string
	Products []Product
}

// IsEmpty reports whether the cart holds no products.
func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Products) == 0
}
