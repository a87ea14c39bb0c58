package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	pkgAuth "github.com/polkiloo/storefront/internal/pkg/auth"
	"github.com/polkiloo/storefront/internal/server/http/handlers"
	"github.com/polkiloo/storefront/internal/server/http/middleware"
	"github.com/polkiloo/storefront/internal/server/http/views"
)

// Setup configures gin router with page templates, handlers and middleware.
func Setup(facade handlers.StorefrontFacade, signer pkgAuth.Signer, health handlers.HealthChecker, logger *slog.Logger) (*gin.Engine, error) {
	tmpl, err := views.Load()
	if err != nil {
		return nil, err
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.SetHTMLTemplate(tmpl)

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.Use(middleware.LoadSession(signer, facade))

	homeHandler := handlers.NewHomeHandler(facade)
	authHandler := handlers.NewAuthHandler(facade, signer)
	cartHandler := handlers.NewCartHandler(facade)
	adminHandler := handlers.NewAdminHandler(facade)
	healthHandler := handlers.NewHealthHandler(health)

	engine.GET("/", homeHandler.Show)
	engine.GET("/healthz", healthHandler.Check)

	auth := engine.Group("/auth")
	auth.GET("", authHandler.Show)
	auth.POST("/login", authHandler.Login)
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/logout", authHandler.Logout)

	cart := engine.Group("/cart")
	cart.GET("", cartHandler.Show)
	cart.POST("/items/:productID", homeHandler.AddToCart)
	cart.POST("/items/:productID/remove", cartHandler.Remove)
	cart.POST("/checkout", cartHandler.Checkout)

	admin := engine.Group("/admin")
	admin.GET("", adminHandler.Show)
	admin.POST("/products", adminHandler.Create)
	admin.POST("/products/:id", adminHandler.Update)
	admin.POST("/products/:id/delete", adminHandler.Delete)

	return engine, nil
}
