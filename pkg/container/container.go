package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"storefront-backend/internal/config"
	cartController "storefront-backend/internal/domains/cart/controller"
	cartHandler "storefront-backend/internal/domains/cart/handler"
	catalogHandler "storefront-backend/internal/domains/catalog/handler"
	catalogService "storefront-backend/internal/domains/catalog/service"
	checkoutHandler "storefront-backend/internal/domains/checkout/handler"
	checkoutService "storefront-backend/internal/domains/checkout/service"
	orderHandler "storefront-backend/internal/domains/order/handler"
	orderService "storefront-backend/internal/domains/order/service"
	"storefront-backend/internal/gateway/shopapi"
	infraCache "storefront-backend/internal/infrastructure/cache"
	"storefront-backend/internal/infrastructure/snapshot"
	"storefront-backend/pkg/cache"
	"storefront-backend/pkg/session"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa TẤT CẢ dependencies của application.
// Root của dependency graph; mọi thứ là singleton trong app lifetime.
type Container struct {
	// Infrastructure
	Config         *config.Config
	Cache          cache.Cache
	SnapshotStore  *snapshot.SQLiteStore
	ShopClient     *shopapi.Client
	SessionManager *session.Manager

	// Domain state / services
	CartManager     *cartController.Manager
	CatalogService  catalogService.ServiceInterface
	CheckoutService checkoutService.ServiceInterface
	OrderService    orderService.ServiceInterface

	// HTTP handlers
	CartHandler     *cartHandler.Handler
	CatalogHandler  *catalogHandler.Handler
	CheckoutHandler *checkoutHandler.Handler
	OrderHandler    *orderHandler.Handler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer tạo và initialize toàn bộ dependency graph.
//
// Thứ tự initialization:
// 1. Config (không phụ thuộc gì)
// 2. Infrastructure (snapshot store, cache, shop API client)
// 3. Domain state + services
// 4. Handlers
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE SNAPSHOT STORE
	// ========================================
	log.Println("🗄️  Opening snapshot store...")

	store, err := snapshot.NewSQLiteStore(cfg.Snapshot.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot store: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.HealthCheck(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("snapshot store health check failed: %w", err)
	}

	c.SnapshotStore = store
	log.Println("✅ Snapshot store ready")

	// ========================================
	// STEP 3: INITIALIZE CACHE
	// ========================================
	log.Println("🔴 Connecting to Redis...")

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			// Redis failure không critical - log warning và continue
			log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
		} else {
			log.Println("✅ Redis connected")
		}
	}
	c.Cache = redisCache

	// ========================================
	// STEP 4: SHOP API CLIENT + SESSION MANAGER
	// ========================================
	log.Println("🛒 Configuring shop API client...")

	c.ShopClient = shopapi.NewClient(shopapi.Config{
		BaseURL: cfg.ShopAPI.BaseURL,
		Timeout: cfg.ShopAPI.Timeout,
	})
	c.SessionManager = session.NewManager(
		cfg.Session.Secret,
		time.Duration(cfg.Session.MaxAge)*time.Second,
	)
	log.Printf("✅ Shop API client ready (%s)", cfg.ShopAPI.BaseURL)

	// ========================================
	// STEP 5: INITIALIZE DOMAIN SERVICES
	// ========================================
	log.Println("⚙️  Initializing services...")

	c.CartManager = cartController.NewManager(c.ShopClient, c.SnapshotStore)
	c.CatalogService = catalogService.NewCatalogService(c.ShopClient, c.Cache)
	c.CheckoutService = checkoutService.NewCheckoutService(c.ShopClient, c.CartManager)
	c.OrderService = orderService.NewOrderService(c.ShopClient)
	log.Println("✅ Services initialized")

	// ========================================
	// STEP 6: INITIALIZE HANDLERS
	// ========================================
	log.Println("🎯 Initializing handlers...")

	c.CartHandler = cartHandler.NewHandler(c.CartManager)
	c.CatalogHandler = catalogHandler.NewHandler(c.CatalogService)
	c.CheckoutHandler = checkoutHandler.NewHandler(c.CheckoutService)
	c.OrderHandler = orderHandler.NewHandler(c.OrderService)
	log.Println("✅ Handlers initialized")

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// Cleanup dọn dẹp resources khi shutdown
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.SnapshotStore != nil {
		if err := c.SnapshotStore.Close(); err != nil {
			log.Printf("⚠️  Failed to close snapshot store: %v", err)
		} else {
			log.Println("✅ Snapshot store closed")
		}
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				log.Printf("⚠️  Failed to close Redis: %v", err)
			} else {
				log.Println("✅ Redis connections closed")
			}
		}
	}

	log.Println("✅ Container cleanup completed")
}
