package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/server/http/dto"
	"github.com/polkiloo/storefront/internal/server/http/middleware"
)

// CurrentSessionID extracts the verified session identifier from context.
func CurrentSessionID(c *gin.Context) string {
	return c.GetString(middleware.SessionIDContextKey)
}

// view is the data handed to every page template.
type view struct {
	Title    string
	Notice   string
	Alert    string
	LoggedIn bool
	Tab      string
	Mode     string
	Form     dto.FormValues
	Page     any
}

func newView(c *gin.Context, title string, page any) view {
	return view{Title: title, LoggedIn: CurrentSessionID(c) != "", Page: page}
}

// statusFor maps a failed operation to the response status of the
// re-rendered page.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domainErrors.ErrUnauthorized), errors.Is(err, domainErrors.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domainErrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domainErrors.ErrInvalidProduct), errors.Is(err, domainErrors.ErrInvalidPrice):
		return http.StatusBadRequest
	case errors.Is(err, domainErrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusBadGateway
	}
}

func fail(c *gin.Context, err error) int {
	_ = c.Error(err)
	return statusFor(err)
}
