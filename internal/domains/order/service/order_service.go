package service

import (
	"context"
	"fmt"

	"storefront-backend/internal/domains/order/model"
)

// Gateway is the order-history slice of the shop API.
type Gateway interface {
	ListOrders(ctx context.Context, sessionID string) ([]model.Order, error)
	GetOrder(ctx context.Context, sessionID string, id int) (*model.Order, error)
}

type ServiceInterface interface {
	ListOrders(ctx context.Context, sessionID string) ([]model.Order, error)
	GetOrder(ctx context.Context, sessionID string, id int) (*model.Order, error)
}

// OrderService is a passthrough: order state is owned entirely by the
// backend and shown read-only in the storefront.
type OrderService struct {
	gateway Gateway
}

func NewOrderService(gateway Gateway) ServiceInterface {
	return &OrderService{gateway: gateway}
}

func (s *OrderService) ListOrders(ctx context.Context, sessionID string) ([]model.Order, error) {
	orders, err := s.gateway.ListOrders(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) GetOrder(ctx context.Context, sessionID string, id int) (*model.Order, error) {
	order, err := s.gateway.GetOrder(ctx, sessionID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order %d: %w", id, err)
	}
	return order, nil
}
