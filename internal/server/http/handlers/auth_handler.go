package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	pkgAuth "github.com/polkiloo/storefront/internal/pkg/auth"
	"github.com/polkiloo/storefront/internal/server/http/dto"
	"github.com/polkiloo/storefront/internal/server/http/middleware"
)

const (
	modeLogin  = "login"
	modeSignup = "signup"
)

// AuthHandler processes login, signup and logout.
type AuthHandler struct {
	facade AuthFacade
	signer pkgAuth.Signer
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade, signer pkgAuth.Signer) *AuthHandler {
	return &AuthHandler{facade: facade, signer: signer}
}

// Show handles GET /auth. ?mode=signup switches to the signup form.
func (h *AuthHandler) Show(c *gin.Context) {
	mode := modeLogin
	if c.Query("mode") == modeSignup {
		mode = modeSignup
	}
	h.render(c, http.StatusOK, mode, dto.FormValues{}, "")
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusBadRequest, modeLogin, form.Values(), "Please enter a valid email and password")
		return
	}

	session, err := h.facade.Login(c.Request.Context(), model.Credentials{Email: form.Email, Password: form.Password})
	if err != nil {
		alert := "Login failed, please try again later"
		if errors.Is(err, domainErrors.ErrInvalidCredentials) {
			alert = "Invalid email or password"
		}
		h.render(c, fail(c, err), modeLogin, form.Values(), alert)
		return
	}

	middleware.SetSessionCookie(c, h.signer, session)
	c.Redirect(http.StatusSeeOther, "/")
}

// Signup handles POST /auth/signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var form dto.SignupForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusBadRequest, modeSignup, form.Values(), "Please fill in your name, a valid email and a password")
		return
	}

	creds := model.Credentials{Name: form.Name, Email: form.Email, Password: form.Password}
	session, err := h.facade.Signup(c.Request.Context(), creds)
	if err != nil {
		status := fail(c, err)
		var alert string
		switch {
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			alert = "An account with this email already exists"
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			status = http.StatusBadRequest
			alert = "Signup was rejected, please check your details"
		default:
			alert = "Signup failed, please try again later"
		}
		h.render(c, status, modeSignup, form.Values(), alert)
		return
	}

	middleware.SetSessionCookie(c, h.signer, session)
	c.Redirect(http.StatusSeeOther, "/")
}

// Logout handles POST /auth/logout. The cookie is cleared even when the
// session record could not be deleted.
func (h *AuthHandler) Logout(c *gin.Context) {
	if sessionID := CurrentSessionID(c); sessionID != "" {
		if err := h.facade.Logout(c.Request.Context(), sessionID); err != nil {
			_ = c.Error(err)
		}
	}
	middleware.ClearSessionCookie(c)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *AuthHandler) render(c *gin.Context, status int, mode string, form dto.FormValues, alert string) {
	title := "Login"
	if mode == modeSignup {
		title = "Sign Up"
	}
	v := newView(c, title, nil)
	v.Mode = mode
	v.Form = form
	v.Alert = alert
	c.HTML(status, "auth.html", v)
}
