package controller

import (
	"context"
	"encoding/json"
	"sync"

	"storefront-backend/internal/domains/cart/model"
	"storefront-backend/pkg/logger"
)

// Gateway is the slice of the shop API the controller needs. The concrete
// implementation lives in internal/gateway/shopapi.
type Gateway interface {
	FetchCart(ctx context.Context, sessionID string) (*model.Cart, error)
	AddToCart(ctx context.Context, sessionID, productID string, quantity int) error
	UpdateCartItem(ctx context.Context, sessionID, itemID string, quantity int) error
	RemoveCartItem(ctx context.Context, sessionID, itemID string) error
	ClearCart(ctx context.Context, sessionID string) error
}

// SnapshotStore persists the best-effort local cart snapshot. The controller
// is the single writer for its scope.
type SnapshotStore interface {
	Load(ctx context.Context, scope string, schemaVersion int) ([]byte, bool, error)
	Save(ctx context.Context, scope string, schemaVersion int, payload []byte) error
	Delete(ctx context.Context, scope string) error
}

// Controller owns the in-memory cart for one session scope. All mutations go
// through the remote shop API; on success the authoritative post-mutation
// state is re-fetched and swapped in atomically. On failure the last-known-good
// snapshot stays untouched and the failure is surfaced as state.
//
// Overlapping operations are allowed. Each operation takes a generation token
// at issue time; a completed response is applied only if no later-issued
// response has been applied already, so a slow stale fetch can never overwrite
// a newer one.
type Controller struct {
	scope string
	gw    Gateway
	store SnapshotStore

	mu       sync.Mutex
	cart     model.Cart
	lastErr  *model.OpError
	inflight int
	nextGen  uint64 // last issued generation
	applied  uint64 // generation of the last applied snapshot
}

func New(scope string, gw Gateway, store SnapshotStore) *Controller {
	return &Controller{
		scope: scope,
		gw:    gw,
		store: store,
		cart:  model.Empty(),
	}
}

// State returns a copy of the current controller state.
func (c *Controller) State() model.State {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]model.CartItem, len(c.cart.Items))
	copy(items, c.cart.Items)

	return model.State{
		Cart:    model.Cart{Items: items, Total: c.cart.Total, ItemCount: c.cart.ItemCount},
		Loading: c.inflight > 0,
		Err:     c.lastErr,
	}
}

// Hydrate pre-populates state from the persisted snapshot, if one exists with
// the current schema version. Called once before the first network round-trip;
// the hydrated state carries generation zero, so any fetch supersedes it.
func (c *Controller) Hydrate(ctx context.Context) {
	payload, found, err := c.store.Load(ctx, c.scope, model.SnapshotSchemaVersion)
	if err != nil {
		logger.Error("Failed to load cart snapshot", err)
		return
	}
	if !found {
		return
	}

	var cart model.Cart
	if err := json.Unmarshal(payload, &cart); err != nil {
		// Unreadable snapshot is treated as absent
		logger.Error("Discarding unreadable cart snapshot", err)
		_ = c.store.Delete(ctx, c.scope)
		return
	}
	if cart.Items == nil {
		cart.Items = []model.CartItem{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.applied > 0 {
		// A real fetch already landed; the snapshot is older by definition.
		return
	}
	c.cart = cart
}

// FetchCart replaces local state with the shop API's authoritative cart.
func (c *Controller) FetchCart(ctx context.Context) error {
	gen := c.begin()

	cart, err := c.gw.FetchCart(ctx, c.scope)
	if err != nil {
		return c.fail(gen, model.FetchFailed, err)
	}

	c.apply(ctx, gen, cart)
	return nil
}

// AddItem sends an add-to-cart mutation, then re-fetches the authoritative
// cart. Quantity must be positive; violating that is a programming error and
// is rejected before any network call.
func (c *Controller) AddItem(ctx context.Context, productID string, quantity int) error {
	if quantity < 1 {
		return model.ErrInvalidQuantity
	}

	gen := c.begin()

	if err := c.gw.AddToCart(ctx, c.scope, productID, quantity); err != nil {
		return c.fail(gen, model.AddFailed, err)
	}
	return c.refresh(ctx, gen, model.AddFailed)
}

// UpdateItem changes a line's quantity, then re-fetches. A quantity of zero
// or below means removal, not an error.
func (c *Controller) UpdateItem(ctx context.Context, itemID string, quantity int) error {
	if quantity <= 0 {
		return c.RemoveItem(ctx, itemID)
	}

	gen := c.begin()

	if err := c.gw.UpdateCartItem(ctx, c.scope, itemID, quantity); err != nil {
		return c.fail(gen, model.UpdateFailed, err)
	}
	return c.refresh(ctx, gen, model.UpdateFailed)
}

// RemoveItem deletes a line, then re-fetches. Removing an unknown id is
// idempotent from the client's perspective: whatever the service reports back
// is reflected verbatim.
func (c *Controller) RemoveItem(ctx context.Context, itemID string) error {
	gen := c.begin()

	if err := c.gw.RemoveCartItem(ctx, c.scope, itemID); err != nil {
		return c.fail(gen, model.RemoveFailed, err)
	}
	return c.refresh(ctx, gen, model.RemoveFailed)
}

// ClearCart empties the cart. On success local state becomes the canonical
// empty cart directly; "empty" is unambiguous, so no refetch is needed.
func (c *Controller) ClearCart(ctx context.Context) error {
	gen := c.begin()

	if err := c.gw.ClearCart(ctx, c.scope); err != nil {
		return c.fail(gen, model.ClearFailed, err)
	}

	empty := model.Empty()
	c.apply(ctx, gen, &empty)
	return nil
}

// refresh performs the implicit post-mutation fetch. A failure here maps to
// the mutation's failure kind, not FetchFailed: the user-visible operation is
// the mutation.
func (c *Controller) refresh(ctx context.Context, gen uint64, kind model.FailureKind) error {
	cart, err := c.gw.FetchCart(ctx, c.scope)
	if err != nil {
		return c.fail(gen, kind, err)
	}
	c.apply(ctx, gen, cart)
	return nil
}

// begin registers a new in-flight operation and issues its generation token.
func (c *Controller) begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight++
	c.nextGen++
	return c.nextGen
}

// apply installs a fetched cart if it is newer than the last applied one and
// persists the snapshot. Stale responses are discarded, keeping state
// consistent with the latest-issued completed operation.
func (c *Controller) apply(ctx context.Context, gen uint64, cart *model.Cart) {
	if cart.Items == nil {
		cart.Items = []model.CartItem{}
	}

	c.mu.Lock()
	c.inflight--
	if gen < c.applied {
		c.mu.Unlock()
		return
	}
	c.applied = gen
	c.cart = *cart
	c.lastErr = nil
	snapshot := c.cart
	c.mu.Unlock()

	c.persist(ctx, snapshot)
}

// fail records the failure as state, leaving the snapshot untouched. A
// failure superseded by a newer applied response does not clobber its state.
func (c *Controller) fail(gen uint64, kind model.FailureKind, err error) error {
	opErr := model.NewOpError(kind, err)

	c.mu.Lock()
	c.inflight--
	if gen >= c.applied {
		c.lastErr = opErr
	}
	c.mu.Unlock()

	logger.Error("Cart operation failed", opErr)
	return opErr
}

// persist writes the snapshot best-effort. Persistence failures are logged
// and never surfaced: the in-memory state is already correct.
func (c *Controller) persist(ctx context.Context, cart model.Cart) {
	payload, err := json.Marshal(cart)
	if err != nil {
		logger.Error("Failed to marshal cart snapshot", err)
		return
	}
	if err := c.store.Save(ctx, c.scope, model.SnapshotSchemaVersion, payload); err != nil {
		logger.Error("Failed to persist cart snapshot", err)
	}
}
