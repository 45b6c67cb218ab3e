package shopapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogModel "storefront-backend/internal/domains/catalog/model"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(Config{BaseURL: server.URL})
}

func TestFetchCartForwardsSessionHeader(t *testing.T) {
	var gotSession, gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotSession = r.Header.Get("X-Session-ID")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"items":[{"id":"1","quantity":2,"price":"9.99","subtotal":"19.98","product":{"id":"1","name":"Widget","price":"9.99"}}],"total":"19.98","item_count":2}`)
	})

	cart, err := client.FetchCart(context.Background(), "sess-abc")
	require.NoError(t, err)

	assert.Equal(t, "sess-abc", gotSession)
	assert.Equal(t, "/cart/", gotPath)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "Widget", cart.Items[0].Product.Name)
	assert.Equal(t, "19.98", cart.Total)
}

func TestFetchCartNilItemsBecomesEmptySlice(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"total":"0","item_count":0}`)
	})

	cart, err := client.FetchCart(context.Background(), "sess-abc")
	require.NoError(t, err)
	assert.NotNil(t, cart.Items)
	assert.Empty(t, cart.Items)
}

func TestAddToCartSendsPayload(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]interface{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
	})

	err := client.AddToCart(context.Background(), "sess-abc", "42", 3)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/cart/add/", gotPath)
	assert.Equal(t, "42", gotBody["product_id"])
	assert.Equal(t, float64(3), gotBody["quantity"])
}

func TestUpdateAndRemoveTargetItemPath(t *testing.T) {
	var paths []string
	var methods []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		methods = append(methods, r.Method)
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, client.UpdateCartItem(context.Background(), "sess", "line-7", 5))
	require.NoError(t, client.RemoveCartItem(context.Background(), "sess", "line-7"))
	require.NoError(t, client.ClearCart(context.Background(), "sess"))

	assert.Equal(t, []string{"/cart/items/line-7/", "/cart/items/line-7/", "/cart/clear/"}, paths)
	assert.Equal(t, []string{http.MethodPut, http.MethodDelete, http.MethodPost}, methods)
}

func TestNon2xxReturnsAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, "upstream broken")
	})

	_, err := client.FetchCart(context.Background(), "sess")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "upstream broken")
}

func TestListProductsPaginatedEnvelope(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		io.WriteString(w, `{"count":25,"results":[{"id":1,"name":"Widget","price":"9.99"}]}`)
	})

	filter := catalogModel.Filter{Search: "widget", Page: 2}.Normalize()
	list, err := client.ListProducts(context.Background(), filter)
	require.NoError(t, err)

	assert.Equal(t, 25, list.Count)
	require.Len(t, list.Results, 1)
	assert.Equal(t, "Widget", list.Results[0].Name)
	assert.Contains(t, gotQuery, "search=widget")
	assert.Contains(t, gotQuery, "page=2")
}

func TestListProductsBareArray(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[{"id":1,"name":"Widget","price":"9.99"},{"id":2,"name":"Gadget","price":"19.99"}]`)
	})

	list, err := client.ListProducts(context.Background(), catalogModel.Filter{})
	require.NoError(t, err)

	assert.Equal(t, 2, list.Count)
	require.Len(t, list.Results, 2)
}

func TestListCategoriesAcceptsBothShapes(t *testing.T) {
	t.Run("bare array", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `[{"id":1,"name":"Books"}]`)
		})
		categories, err := client.ListCategories(context.Background())
		require.NoError(t, err)
		require.Len(t, categories, 1)
		assert.Equal(t, "Books", categories[0].Name)
	})

	t.Run("envelope", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{"results":[{"id":1,"name":"Books"}]}`)
		})
		categories, err := client.ListCategories(context.Background())
		require.NoError(t, err)
		require.Len(t, categories, 1)
	})
}

func TestCreateCheckoutSession(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/checkout/session/", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		io.WriteString(w, `{"session_id":"cs_123","checkout_url":"https://pay.example/cs_123"}`)
	})

	session, err := client.CreateCheckoutSession(context.Background(), "sess")
	require.NoError(t, err)
	assert.Equal(t, "cs_123", session.SessionID)
	assert.Equal(t, "https://pay.example/cs_123", session.CheckoutURL)
}

func TestListOrdersNilBecomesEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `null`)
	})

	orders, err := client.ListOrders(context.Background(), "sess")
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestBaseURLTrailingSlashTrimmed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cart/", r.URL.Path)
		io.WriteString(w, `{"items":[],"total":"0","item_count":0}`)
	}))
	t.Cleanup(server.Close)

	client := NewClient(Config{BaseURL: server.URL + "/"})
	_, err := client.FetchCart(context.Background(), "sess")
	require.NoError(t, err)
}
