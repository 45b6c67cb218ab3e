package model

import "errors"

// Session is the redirect target returned by the shop API. The storefront
// sends the browser to CheckoutURL; payment itself never touches this
// service.
type Session struct {
	SessionID   string `json:"session_id"`
	CheckoutURL string `json:"checkout_url"`
}

// PaymentStatus is the post-redirect polling response.
type PaymentStatus struct {
	SessionID string `json:"session_id"`
	Status    string `json:"status"` // pending, completed, cancelled
	OrderID   *int   `json:"order_id,omitempty"`
}

// PricingEstimate is a display-only breakdown shown before redirecting. The
// subtotal is the server-reported cart total; tax and shipping are estimates,
// never the canonical amounts the backend charges.
type PricingEstimate struct {
	Subtotal string `json:"subtotal"`
	Tax      string `json:"tax"`
	Shipping string `json:"shipping"`
	Total    string `json:"total"`
}

// SessionResponse bundles the redirect session with the estimate.
type SessionResponse struct {
	Session  Session         `json:"session"`
	Estimate PricingEstimate `json:"estimate"`
}

// ErrEmptyCart rejects checkout on a cart with no items.
var ErrEmptyCart = errors.New("cannot check out an empty cart")
