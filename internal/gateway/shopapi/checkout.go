package shopapi

import (
	"context"
	"fmt"
	"net/http"

	checkoutModel "storefront-backend/internal/domains/checkout/model"
	orderModel "storefront-backend/internal/domains/order/model"
)

func (c *Client) CreateCheckoutSession(ctx context.Context, sessionID string) (*checkoutModel.Session, error) {
	var session checkoutModel.Session
	if err := c.do(ctx, http.MethodPost, "/checkout/session/", sessionID, nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) GetPaymentStatus(ctx context.Context, sessionID, checkoutSessionID string) (*checkoutModel.PaymentStatus, error) {
	var status checkoutModel.PaymentStatus
	path := fmt.Sprintf("/checkout/status/%s/", checkoutSessionID)
	if err := c.get(ctx, path, sessionID, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *Client) ListOrders(ctx context.Context, sessionID string) ([]orderModel.Order, error) {
	var orders []orderModel.Order
	if err := c.get(ctx, "/orders/", sessionID, &orders); err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []orderModel.Order{}
	}
	return orders, nil
}

func (c *Client) GetOrder(ctx context.Context, sessionID string, id int) (*orderModel.Order, error) {
	var order orderModel.Order
	if err := c.get(ctx, fmt.Sprintf("/orders/%d/", id), sessionID, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
