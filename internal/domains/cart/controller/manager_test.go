package controller

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-backend/internal/domains/cart/model"
)

func TestManagerReturnsSameControllerPerSession(t *testing.T) {
	m := NewManager(newFakeGateway(), newMemStore())
	ctx := context.Background()

	a := m.Get(ctx, "sess-1")
	b := m.Get(ctx, "sess-1")
	other := m.Get(ctx, "sess-2")

	assert.Same(t, a, b)
	assert.NotSame(t, a, other)
	assert.Equal(t, 2, m.Len())
}

func TestManagerHydratesOnFirstUse(t *testing.T) {
	store := newMemStore()
	payload, err := json.Marshal(model.Cart{
		Items:     []model.CartItem{{ID: "p1", Quantity: 3}},
		Total:     "30.00",
		ItemCount: 3,
	})
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), "sess-1", model.SnapshotSchemaVersion, payload))

	m := NewManager(newFakeGateway(), store)
	ctrl := m.Get(context.Background(), "sess-1")

	state := ctrl.State()
	require.Len(t, state.Cart.Items, 1)
	assert.Equal(t, "30.00", state.Cart.Total)
}

func TestManagerEvictDropsControllerButKeepsSnapshot(t *testing.T) {
	gw := newFakeGateway()
	gw.items["p1"] = 1
	store := newMemStore()
	m := NewManager(gw, store)
	ctx := context.Background()

	ctrl := m.Get(ctx, "sess-1")
	require.NoError(t, ctrl.FetchCart(ctx))

	m.Evict("sess-1")
	assert.Equal(t, 0, m.Len())

	// A recreated controller hydrates from the surviving snapshot.
	fresh := m.Get(ctx, "sess-1")
	assert.NotSame(t, ctrl, fresh)
	require.Len(t, fresh.State().Cart.Items, 1)
}
