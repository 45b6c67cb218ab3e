package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"storefront-backend/internal/shared/middleware"
	"storefront-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.App.AllowedOrigins),
	)

	// Session middleware configuration
	sessionMiddlewareConfig := middleware.DefaultSessionMiddlewareConfig(
		c.SessionManager,
		c.Config.Session.CookieName,
		c.Config.Session.MaxAge,
	)
	if c.Config.App.Environment == "development" {
		sessionMiddlewareConfig.CookieSecure = false
	}

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))

		setupCatalogRoutes(v1, c)
		setupCartRoutes(v1, c, &sessionMiddlewareConfig)
		setupCheckoutRoutes(v1, c, &sessionMiddlewareConfig)
		setupOrderRoutes(v1, c, &sessionMiddlewareConfig)
	}

	return router
}

// ========================================
// CATALOG ROUTES
// ========================================
func setupCatalogRoutes(v1 *gin.RouterGroup, c *container.Container) {
	products := v1.Group("/products")
	{
		products.GET("", c.CatalogHandler.ListProducts)
		products.GET("/:id", c.CatalogHandler.GetProduct)
	}

	categories := v1.Group("/categories")
	{
		categories.GET("", c.CatalogHandler.ListCategories)
	}
}

// ========================================
// CART ROUTES
// ========================================
func setupCartRoutes(v1 *gin.RouterGroup, c *container.Container, config *middleware.SessionMiddlewareConfig) {
	cart := v1.Group("/cart")
	cart.Use(middleware.SessionMiddleware(*config))
	{
		cart.GET("", c.CartHandler.GetCart)
		cart.POST("/items", c.CartHandler.AddItem)
		cart.PUT("/items/:id", c.CartHandler.UpdateItem)
		cart.DELETE("/items/:id", c.CartHandler.RemoveItem)
		cart.POST("/clear", c.CartHandler.ClearCart)
	}
}

// ========================================
// CHECKOUT ROUTES
// ========================================
func setupCheckoutRoutes(v1 *gin.RouterGroup, c *container.Container, config *middleware.SessionMiddlewareConfig) {
	checkout := v1.Group("/checkout")
	checkout.Use(middleware.SessionMiddleware(*config))
	{
		checkout.POST("/session", c.CheckoutHandler.CreateSession)
		checkout.GET("/status/:id", c.CheckoutHandler.GetStatus)
	}
}

// ========================================
// ORDER ROUTES
// ========================================
func setupOrderRoutes(v1 *gin.RouterGroup, c *container.Container, config *middleware.SessionMiddlewareConfig) {
	orders := v1.Group("/orders")
	orders.Use(middleware.SessionMiddleware(*config))
	{
		orders.GET("", c.OrderHandler.ListOrders)
		orders.GET("/:id", c.OrderHandler.GetOrder)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   getEnv("APP_VERSION", "1.0.0"),
			"services":  gin.H{},
		}

		// Check snapshot store
		snapshotStatus := "ok"
		if appCtx.SnapshotStore == nil {
			snapshotStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.SnapshotStore.HealthCheck(ctx); err != nil {
				snapshotStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		// Check redis
		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"snapshot_store": snapshotStatus,
			"redis":          redisStatus,
			"active_carts":   appCtx.CartManager.Len(),
		}

		statusCode := http.StatusOK
		if snapshotStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
