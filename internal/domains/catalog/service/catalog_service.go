package service

import (
	"context"
	"fmt"
	"time"

	"storefront-backend/internal/domains/catalog/model"
	"storefront-backend/pkg/cache"
	"storefront-backend/pkg/logger"
)

const (
	productListTTL   = 60 * time.Second
	productDetailTTL = 5 * time.Minute
	categoriesTTL    = 10 * time.Minute

	categoriesCacheKey = "catalog:categories"
)

// CatalogService reads the catalog through the shop API with a Redis
// read-through cache. Cache failures degrade to direct gateway calls and are
// never user-visible.
type CatalogService struct {
	gateway Gateway
	cache   cache.Cache
}

func NewCatalogService(gateway Gateway, c cache.Cache) ServiceInterface {
	return &CatalogService{
		gateway: gateway,
		cache:   c,
	}
}

func (s *CatalogService) ListProducts(ctx context.Context, filter model.Filter) (*model.ProductList, error) {
	filter = filter.Normalize()
	key := filter.CacheKey()

	var cached model.ProductList
	if found, err := s.cache.Get(ctx, key, &cached); err != nil {
		logger.Error("Product list cache read failed", err)
	} else if found {
		return &cached, nil
	}

	list, err := s.gateway.ListProducts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	if err := s.cache.Set(ctx, key, list, productListTTL); err != nil {
		logger.Error("Product list cache write failed", err)
	}
	return list, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id int) (*model.Product, error) {
	key := fmt.Sprintf("catalog:product:%d", id)

	var cached model.Product
	if found, err := s.cache.Get(ctx, key, &cached); err != nil {
		logger.Error("Product cache read failed", err)
	} else if found {
		return &cached, nil
	}

	product, err := s.gateway.GetProduct(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}

	if err := s.cache.Set(ctx, key, product, productDetailTTL); err != nil {
		logger.Error("Product cache write failed", err)
	}
	return product, nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]model.Category, error) {
	var cached []model.Category
	if found, err := s.cache.Get(ctx, categoriesCacheKey, &cached); err != nil {
		logger.Error("Categories cache read failed", err)
	} else if found {
		return cached, nil
	}

	categories, err := s.gateway.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	if err := s.cache.Set(ctx, categoriesCacheKey, categories, categoriesTTL); err != nil {
		logger.Error("Categories cache write failed", err)
	}
	return categories, nil
}

// WarmCategories refreshes the category cache unconditionally. Called by the
// maintenance worker so first page loads never pay the upstream round-trip.
func (s *CatalogService) WarmCategories(ctx context.Context) error {
	categories, err := s.gateway.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("failed to warm categories: %w", err)
	}
	if err := s.cache.Set(ctx, categoriesCacheKey, categories, categoriesTTL); err != nil {
		return fmt.Errorf("failed to write warmed categories: %w", err)
	}
	logger.Info("Category cache warmed", map[string]interface{}{
		"count": len(categories),
	})
	return nil
}
