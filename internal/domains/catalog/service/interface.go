package service

import (
	"context"

	"storefront-backend/internal/domains/catalog/model"
)

// Gateway is the catalog slice of the shop API.
type Gateway interface {
	ListProducts(ctx context.Context, filter model.Filter) (*model.ProductList, error)
	GetProduct(ctx context.Context, id int) (*model.Product, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
}

// ServiceInterface exposes catalog browsing to handlers and the worker.
type ServiceInterface interface {
	ListProducts(ctx context.Context, filter model.Filter) (*model.ProductList, error)
	GetProduct(ctx context.Context, id int) (*model.Product, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	WarmCategories(ctx context.Context) error
}
