package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
)

// HomeHandler renders the product grid.
type HomeHandler struct {
	facade ShopFacade
}

// NewHomeHandler creates HomeHandler instance.
func NewHomeHandler(facade ShopFacade) *HomeHandler {
	return &HomeHandler{facade: facade}
}

// Show handles GET /.
func (h *HomeHandler) Show(c *gin.Context) {
	page := h.facade.HomePage(c.Request.Context(), CurrentSessionID(c))
	v := newView(c, "Products", page)
	v.LoggedIn = page.Auth.Allowed()
	c.HTML(http.StatusOK, "home.html", v)
}

// AddToCart handles POST /cart/items/:productID.
func (h *HomeHandler) AddToCart(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := CurrentSessionID(c)
	err := h.facade.AddToCart(ctx, sessionID, c.Param("productID"))

	page := h.facade.HomePage(ctx, sessionID)
	v := newView(c, "Products", page)
	v.LoggedIn = page.Auth.Allowed()
	status := http.StatusOK
	switch {
	case err == nil:
		v.Notice = "Added to cart"
	case errors.Is(err, domainErrors.ErrUnauthorized):
		status = fail(c, err)
		v.Alert = "Please log in to add items to your cart"
	default:
		status = fail(c, err)
		v.Alert = "Failed to add to cart"
	}
	c.HTML(status, "home.html", v)
}
