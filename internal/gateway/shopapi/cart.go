package shopapi

import (
	"context"
	"fmt"
	"net/http"

	cartModel "storefront-backend/internal/domains/cart/model"
)

// Cart operations. Paths and payloads follow the shop API contract:
// the add/update/remove responses are not trusted for state; the cart
// controller refetches after every mutation.

func (c *Client) FetchCart(ctx context.Context, sessionID string) (*cartModel.Cart, error) {
	var cart cartModel.Cart
	if err := c.get(ctx, "/cart/", sessionID, &cart); err != nil {
		return nil, err
	}
	if cart.Items == nil {
		cart.Items = []cartModel.CartItem{}
	}
	return &cart, nil
}

func (c *Client) AddToCart(ctx context.Context, sessionID, productID string, quantity int) error {
	body := map[string]interface{}{
		"product_id": productID,
		"quantity":   quantity,
	}
	return c.do(ctx, http.MethodPost, "/cart/add/", sessionID, body, nil)
}

func (c *Client) UpdateCartItem(ctx context.Context, sessionID, itemID string, quantity int) error {
	body := map[string]interface{}{
		"quantity": quantity,
	}
	path := fmt.Sprintf("/cart/items/%s/", itemID)
	return c.do(ctx, http.MethodPut, path, sessionID, body, nil)
}

func (c *Client) RemoveCartItem(ctx context.Context, sessionID, itemID string) error {
	path := fmt.Sprintf("/cart/items/%s/", itemID)
	return c.do(ctx, http.MethodDelete, path, sessionID, nil, nil)
}

func (c *Client) ClearCart(ctx context.Context, sessionID string) error {
	return c.do(ctx, http.MethodPost, "/cart/clear/", sessionID, nil, nil)
}
