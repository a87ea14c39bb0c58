package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storefront/internal/domain/model"
)

const (
	tabCart   = "cart"
	tabOrders = "orders"
)

// CartHandler serves the guarded cart and order history page.
type CartHandler struct {
	facade ShopFacade
}

// NewCartHandler creates CartHandler instance.
func NewCartHandler(facade ShopFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

// Show handles GET /cart. ?tab=orders opens the order history.
func (h *CartHandler) Show(c *gin.Context) {
	page := h.facade.CartPage(c.Request.Context(), CurrentSessionID(c))
	tab := tabCart
	if c.Query("tab") == tabOrders {
		tab = tabOrders
	}
	h.render(c, gateStatus(page.Gate, http.StatusUnauthorized), tab, page, "", "")
}

// Remove handles POST /cart/items/:productID/remove.
func (h *CartHandler) Remove(c *gin.Context) {
	page, err := h.facade.RemoveFromCart(c.Request.Context(), CurrentSessionID(c), c.Param("productID"))
	if err != nil {
		h.render(c, fail(c, err), tabCart, page, "", "Failed to remove item from cart")
		return
	}
	h.render(c, http.StatusOK, tabCart, page, "Item removed from cart", "")
}

// Checkout handles POST /cart/checkout and shows the order history on success.
func (h *CartHandler) Checkout(c *gin.Context) {
	page, order, err := h.facade.Checkout(c.Request.Context(), CurrentSessionID(c))
	switch {
	case err != nil:
		h.render(c, fail(c, err), tabCart, page, "", "Failed to place order")
	case order == nil:
		h.render(c, http.StatusBadRequest, tabCart, page, "", "Your cart is empty")
	default:
		h.render(c, http.StatusOK, tabOrders, page, "Order placed successfully", "")
	}
}

func (h *CartHandler) render(c *gin.Context, status int, tab string, page model.CartPage, notice, alert string) {
	title := "Cart"
	if tab == tabOrders {
		title = "Orders"
	}
	v := newView(c, title, page)
	v.Tab = tab
	v.Notice = notice
	v.Alert = alert
	c.HTML(status, "cart.html", v)
}

// gateStatus is the status of a guarded page that rendered without errors.
func gateStatus(gate model.Gate, denied int) int {
	if gate.Denied() {
		return denied
	}
	return http.StatusOK
}
