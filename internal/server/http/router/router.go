package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/mkazlauskas/shoplt/internal/server/http/handlers"
	"github.com/mkazlauskas/shoplt/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StoreFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)

	api := engine.Group("/api")

	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	catalog := api.Group("")
	catalog.Use(middleware.OptionalAuth(facade))
	catalog.GET("/categories", catalogHandler.Categories)
	catalog.GET("/categories/:slug", catalogHandler.CategoryProducts)
	catalog.GET("/products", catalogHandler.Products)
	catalog.GET("/products/:slug", catalogHandler.Product)

	// Cart routes serve guests and signed-in users alike, so the session
	// cookie is issued here and authentication stays optional.
	cart := api.Group("/cart")
	cart.Use(middleware.CartSession(), middleware.OptionalAuth(facade))
	cart.GET("", cartHandler.Show)
	cart.POST("/items/:slug", cartHandler.AddItem)
	cart.PATCH("/items/:slug", cartHandler.ChangeQuantity)
	cart.DELETE("/items/:slug", cartHandler.RemoveItem)

	checkout := api.Group("/checkout")
	checkout.Use(middleware.CartSession(), middleware.OptionalAuth(facade))
	checkout.POST("/intent", orderHandler.CheckoutIntent)

	orders := api.Group("/orders")
	orders.Use(middleware.CartSession(), middleware.AuthRequired(facade))
	orders.POST("", orderHandler.Place)
	orders.GET("", orderHandler.List)
	orders.POST("/paid-online", orderHandler.PaidOnline)

	return engine
}
