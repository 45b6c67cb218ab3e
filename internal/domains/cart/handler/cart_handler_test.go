package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-backend/internal/domains/cart/controller"
	"storefront-backend/internal/domains/cart/model"
	"storefront-backend/internal/shared/middleware"
	"storefront-backend/internal/shared/response"
)

type fakeGateway struct {
	mu      sync.Mutex
	items   map[string]int
	failAll error
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{items: map[string]int{}}
}

func (g *fakeGateway) FetchCart(ctx context.Context, sessionID string) (*model.Cart, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failAll != nil {
		return nil, g.failAll
	}
	cart := model.Empty()
	for id, qty := range g.items {
		cart.Items = append(cart.Items, model.CartItem{ID: id, Quantity: qty, Price: "5.00"})
		cart.ItemCount += qty
	}
	return &cart, nil
}

func (g *fakeGateway) AddToCart(ctx context.Context, sessionID, productID string, quantity int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failAll != nil {
		return g.failAll
	}
	g.items[productID] += quantity
	return nil
}

func (g *fakeGateway) UpdateCartItem(ctx context.Context, sessionID, itemID string, quantity int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failAll != nil {
		return g.failAll
	}
	g.items[itemID] = quantity
	return nil
}

func (g *fakeGateway) RemoveCartItem(ctx context.Context, sessionID, itemID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failAll != nil {
		return g.failAll
	}
	delete(g.items, itemID)
	return nil
}

func (g *fakeGateway) ClearCart(ctx context.Context, sessionID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failAll != nil {
		return g.failAll
	}
	g.items = map[string]int{}
	return nil
}

type nopStore struct{}

func (nopStore) Load(ctx context.Context, scope string, schemaVersion int) ([]byte, bool, error) {
	return nil, false, nil
}

func (nopStore) Save(ctx context.Context, scope string, schemaVersion int, payload []byte) error {
	return nil
}

func (nopStore) Delete(ctx context.Context, scope string) error { return nil }

// stubSession injects a fixed session id, standing in for the cookie
// middleware.
func stubSession(sessionID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextKeySessionID, sessionID)
		c.Next()
	}
}

func newTestRouter(gw *fakeGateway) *gin.Engine {
	gin.SetMode(gin.TestMode)
	manager := controller.NewManager(gw, nopStore{})
	h := NewHandler(manager)

	router := gin.New()
	cart := router.Group("/cart", stubSession("sess-1"))
	cart.GET("", h.GetCart)
	cart.POST("/items", h.AddItem)
	cart.PUT("/items/:id", h.UpdateItem)
	cart.DELETE("/items/:id", h.RemoveItem)
	cart.POST("/clear", h.ClearCart)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var envelope response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w, envelope
}

func stateFromData(t *testing.T, data interface{}) model.State {
	t.Helper()
	payload, err := json.Marshal(data)
	require.NoError(t, err)
	var state model.State
	require.NoError(t, json.Unmarshal(payload, &state))
	return state
}

func TestGetCartReturnsState(t *testing.T) {
	gw := newFakeGateway()
	gw.items["p1"] = 2
	router := newTestRouter(gw)

	w, envelope := doJSON(t, router, http.MethodGet, "/cart", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, envelope.Success)

	state := stateFromData(t, envelope.Data)
	require.Len(t, state.Cart.Items, 1)
	assert.Equal(t, 2, state.Cart.Items[0].Quantity)
	assert.False(t, state.Loading)
	assert.Nil(t, state.Err)
}

func TestGetCartUpstreamFailureStillRespondsOK(t *testing.T) {
	gw := newFakeGateway()
	gw.failAll = errors.New("upstream down")
	router := newTestRouter(gw)

	w, envelope := doJSON(t, router, http.MethodGet, "/cart", "")
	assert.Equal(t, http.StatusOK, w.Code, "fetch failure is state, not an HTTP error")
	assert.True(t, envelope.Success)

	state := stateFromData(t, envelope.Data)
	require.NotNil(t, state.Err)
	assert.Equal(t, model.FetchFailed, state.Err.Kind)
}

func TestAddItemSuccess(t *testing.T) {
	router := newTestRouter(newFakeGateway())

	w, envelope := doJSON(t, router, http.MethodPost, "/cart/items", `{"product_id":"p1","quantity":2}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, envelope.Success)

	state := stateFromData(t, envelope.Data)
	require.Len(t, state.Cart.Items, 1)
	assert.Equal(t, 2, state.Cart.Items[0].Quantity)
}

func TestAddItemValidation(t *testing.T) {
	router := newTestRouter(newFakeGateway())

	cases := []struct {
		name string
		body string
	}{
		{"zero quantity", `{"product_id":"p1","quantity":0}`},
		{"negative quantity", `{"product_id":"p1","quantity":-2}`},
		{"missing product", `{"quantity":1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, envelope := doJSON(t, router, http.MethodPost, "/cart/items", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, envelope.Success)
			require.NotNil(t, envelope.Error)
			assert.Equal(t, "VALIDATION_FAILED", envelope.Error.Code)
		})
	}
}

func TestAddItemUpstreamFailureMapsToBadGateway(t *testing.T) {
	gw := newFakeGateway()
	gw.failAll = errors.New("upstream down")
	router := newTestRouter(gw)

	w, envelope := doJSON(t, router, http.MethodPost, "/cart/items", `{"product_id":"p1","quantity":1}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "AddFailed", envelope.Error.Code)

	// The controller state rides along in details for continued rendering.
	state := stateFromData(t, envelope.Error.Details)
	assert.NotNil(t, state.Err)
}

func TestUpdateItemZeroRemovesLine(t *testing.T) {
	gw := newFakeGateway()
	gw.items["p1"] = 3
	router := newTestRouter(gw)

	w, envelope := doJSON(t, router, http.MethodPut, "/cart/items/p1", `{"quantity":0}`)
	assert.Equal(t, http.StatusOK, w.Code)

	state := stateFromData(t, envelope.Data)
	assert.Empty(t, state.Cart.Items)
}

func TestRemoveItem(t *testing.T) {
	gw := newFakeGateway()
	gw.items["p1"] = 1
	router := newTestRouter(gw)

	w, envelope := doJSON(t, router, http.MethodDelete, "/cart/items/p1", "")
	assert.Equal(t, http.StatusOK, w.Code)

	state := stateFromData(t, envelope.Data)
	assert.Empty(t, state.Cart.Items)
}

func TestClearCart(t *testing.T) {
	gw := newFakeGateway()
	gw.items["p1"] = 5
	router := newTestRouter(gw)

	w, envelope := doJSON(t, router, http.MethodPost, "/cart/clear", "")
	assert.Equal(t, http.StatusOK, w.Code)

	state := stateFromData(t, envelope.Data)
	assert.Empty(t, state.Cart.Items)
	assert.Equal(t, "0", state.Cart.Total)
	assert.Equal(t, 0, state.Cart.ItemCount)
}

func TestMissingSessionIsBadRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	manager := controller.NewManager(newFakeGateway(), nopStore{})
	h := NewHandler(manager)

	router := gin.New()
	router.GET("/cart", h.GetCart) // no session middleware

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
