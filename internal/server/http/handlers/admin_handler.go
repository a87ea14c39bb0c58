package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/server/http/dto"
	"github.com/polkiloo/storefront/internal/usecase"
)

// AdminHandler serves product management for administrators.
type AdminHandler struct {
	facade AdminFacade
}

// NewAdminHandler creates AdminHandler instance.
func NewAdminHandler(facade AdminFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

// Show handles GET /admin.
func (h *AdminHandler) Show(c *gin.Context) {
	page := h.facade.AdminPage(c.Request.Context(), CurrentSessionID(c))
	h.render(c, gateStatus(page.Gate, http.StatusForbidden), page, dto.FormValues{}, "", "")
}

// Create handles POST /admin/products.
func (h *AdminHandler) Create(c *gin.Context) {
	draft, form, ok := h.bindDraft(c)
	if !ok {
		return
	}
	page, err := h.facade.CreateProduct(c.Request.Context(), CurrentSessionID(c), draft)
	if err != nil {
		h.render(c, fail(c, err), page, form, "", mutationAlert(err, "Failed to add product"))
		return
	}
	h.render(c, http.StatusOK, page, dto.FormValues{}, "Product added successfully", "")
}

// Update handles POST /admin/products/:id.
func (h *AdminHandler) Update(c *gin.Context) {
	draft, _, ok := h.bindDraft(c)
	if !ok {
		return
	}
	page, err := h.facade.UpdateProduct(c.Request.Context(), CurrentSessionID(c), c.Param("id"), draft)
	if err != nil {
		h.render(c, fail(c, err), page, dto.FormValues{}, "", mutationAlert(err, "Failed to update product"))
		return
	}
	h.render(c, http.StatusOK, page, dto.FormValues{}, "Product updated successfully", "")
}

// Delete handles POST /admin/products/:id/delete.
func (h *AdminHandler) Delete(c *gin.Context) {
	page, err := h.facade.DeleteProduct(c.Request.Context(), CurrentSessionID(c), c.Param("id"))
	if err != nil {
		h.render(c, fail(c, err), page, dto.FormValues{}, "", mutationAlert(err, "Failed to delete product"))
		return
	}
	h.render(c, http.StatusOK, page, dto.FormValues{}, "Product deleted successfully", "")
}

// bindDraft parses the product form. On failure it renders the admin page
// with the submitted values and reports false.
func (h *AdminHandler) bindDraft(c *gin.Context) (model.ProductDraft, dto.FormValues, bool) {
	var form dto.ProductForm
	bindErr := c.ShouldBind(&form)
	values := form.Values()

	var (
		draft model.ProductDraft
		err   error
		alert string
	)
	if bindErr != nil {
		err = domainErrors.ErrInvalidProduct
		alert = "Please fill in name, price and image"
	} else if draft, err = usecase.ParseDraft(form.Name, form.Description, form.Price, form.Image); err != nil {
		alert = mutationAlert(err, "Invalid product")
	}
	if err == nil {
		return draft, values, true
	}

	page := h.facade.AdminPage(c.Request.Context(), CurrentSessionID(c))
	h.render(c, fail(c, err), page, values, "", alert)
	return model.ProductDraft{}, values, false
}

func mutationAlert(err error, fallback string) string {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidPrice):
		return "Price must be a non-negative number"
	case errors.Is(err, domainErrors.ErrInvalidProduct):
		return "Product needs a name and an absolute image URL"
	case errors.Is(err, domainErrors.ErrUnauthorized), errors.Is(err, domainErrors.ErrForbidden):
		return "You are not authorized to manage products"
	case errors.Is(err, domainErrors.ErrNotFound):
		return "Product not found"
	default:
		return fallback
	}
}

func (h *AdminHandler) render(c *gin.Context, status int, page model.AdminPage, form dto.FormValues, notice, alert string) {
	v := newView(c, "Admin", page)
	v.Form = form
	v.Notice = notice
	v.Alert = alert
	c.HTML(status, "admin.html", v)
}
