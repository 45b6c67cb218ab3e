package model

// SnapshotSchemaVersion tags persisted cart snapshots. A stored snapshot with
// a different version is treated as absent on load.
const SnapshotSchemaVersion = 1

// ProductSnapshot is the denormalized product copy embedded in a cart line.
// It is frozen at the time the line was created by the shop API and is never
// live-joined against the catalog.
type ProductSnapshot struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"` // decimal string, unit price at time of adding
	Image string `json:"image,omitempty"`
}

// CartItem represents a single cart line as reported by the shop API.
type CartItem struct {
	ID       string          `json:"id"`
	Product  ProductSnapshot `json:"product"`
	Quantity int             `json:"quantity"` // always >= 1; a zero-quantity line is removed, never stored
	Price    string          `json:"price"`    // unit price snapshot, decimal string
	Subtotal string          `json:"subtotal"` // server-computed line subtotal
}

// Cart is the authoritative cart state from the shop API. Total and ItemCount
// always come from the same server response; the client never recomputes the
// canonical total.
type Cart struct {
	Items     []CartItem `json:"items"`
	Total     string     `json:"total"`
	ItemCount int        `json:"item_count"`
}

// Empty returns the canonical empty cart.
func Empty() Cart {
	return Cart{Items: []CartItem{}, Total: "0", ItemCount: 0}
}

// State is the controller-owned view handed to the HTTP layer. Consumers hold
// read copies only; all mutation goes through controller operations.
type State struct {
	Cart    Cart      `json:"cart"`
	Loading bool      `json:"loading"`
	Err     *OpError  `json:"error,omitempty"`
}
