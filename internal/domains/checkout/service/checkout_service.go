package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	cartController "storefront-backend/internal/domains/cart/controller"
	"storefront-backend/internal/domains/checkout/model"
	"storefront-backend/pkg/logger"
)

// Estimate parameters. Display-only: the backend computes the amounts it
// actually charges.
var (
	taxRate               = decimal.NewFromFloat(0.08)
	flatShipping          = decimal.NewFromInt(10)
	freeShippingThreshold = decimal.NewFromInt(100)
)

// Gateway is the checkout slice of the shop API.
type Gateway interface {
	CreateCheckoutSession(ctx context.Context, sessionID string) (*model.Session, error)
	GetPaymentStatus(ctx context.Context, sessionID, checkoutSessionID string) (*model.PaymentStatus, error)
}

type ServiceInterface interface {
	CreateSession(ctx context.Context, sessionID string) (*model.SessionResponse, error)
	GetStatus(ctx context.Context, sessionID, checkoutSessionID string) (*model.PaymentStatus, error)
}

// CheckoutService creates the redirect session the browser is sent to. It
// refreshes the cart first so the emptiness check and the estimate reflect
// the authoritative state, not a stale snapshot.
type CheckoutService struct {
	gateway Gateway
	carts   *cartController.Manager
}

func NewCheckoutService(gateway Gateway, carts *cartController.Manager) ServiceInterface {
	return &CheckoutService{
		gateway: gateway,
		carts:   carts,
	}
}

func (s *CheckoutService) CreateSession(ctx context.Context, sessionID string) (*model.SessionResponse, error) {
	// Step 1: Refresh cart state
	ctrl := s.carts.Get(ctx, sessionID)
	if err := ctrl.FetchCart(ctx); err != nil {
		return nil, fmt.Errorf("failed to refresh cart before checkout: %w", err)
	}

	// Step 2: Reject empty carts
	state := ctrl.State()
	if len(state.Cart.Items) == 0 {
		return nil, model.ErrEmptyCart
	}

	// Step 3: Ask the shop API for a checkout session
	session, err := s.gateway.CreateCheckoutSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	logger.Info("Checkout session created", map[string]interface{}{
		"session_id":          sessionID,
		"checkout_session_id": session.SessionID,
		"item_count":          state.Cart.ItemCount,
	})

	return &model.SessionResponse{
		Session:  *session,
		Estimate: estimate(state.Cart.Total),
	}, nil
}

func (s *CheckoutService) GetStatus(ctx context.Context, sessionID, checkoutSessionID string) (*model.PaymentStatus, error) {
	status, err := s.gateway.GetPaymentStatus(ctx, sessionID, checkoutSessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment status: %w", err)
	}
	return status, nil
}

// estimate derives the display breakdown from the server-reported total.
// An unparseable total yields a zero estimate rather than an error; the
// canonical value is still shown as-is by the cart endpoints.
func estimate(cartTotal string) model.PricingEstimate {
	subtotal, err := decimal.NewFromString(cartTotal)
	if err != nil {
		logger.Error("Unparseable cart total in estimate", err)
		subtotal = decimal.Zero
	}

	tax := subtotal.Mul(taxRate).Round(2)

	shipping := decimal.Zero
	if subtotal.IsPositive() && subtotal.LessThan(freeShippingThreshold) {
		shipping = flatShipping
	}

	total := subtotal.Add(tax).Add(shipping)

	return model.PricingEstimate{
		Subtotal: subtotal.StringFixed(2),
		Tax:      tax.StringFixed(2),
		Shipping: shipping.StringFixed(2),
		Total:    total.StringFixed(2),
	}
}
