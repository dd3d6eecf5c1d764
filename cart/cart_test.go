package cart

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"electrofusion/catalog"
	"electrofusion/globals"
	"electrofusion/kv"
	"electrofusion/models"
	"electrofusion/notify"
	"electrofusion/state"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandlers(t *testing.T) (*Handlers, *state.Manager) {
	t.Helper()
	manager := state.NewManager(kv.NewMemory())
	return NewHandlers(manager, catalog.NewStatic(), notify.NewHub()), manager
}

func authedRequest(method, target, body, userID string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	if userID != "" {
		r = r.WithContext(context.WithValue(r.Context(), globals.UserIDKey, userID))
	}
	return r
}

func TestAddToCartHandler(t *testing.T) {
	h, manager := newTestHandlers(t)

	w := httptest.NewRecorder()
	h.AddToCart(w, authedRequest(http.MethodPost, "/api/v1/cart", `{"productId":"1"}`, "u"), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	h.AddToCart(w, authedRequest(http.MethodPost, "/api/v1/cart", `{"productId":"1"}`, "u"), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Items []models.CartItem `json:"items"`
		Total int               `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 2, resp.Items[0].Quantity)
	assert.Equal(t, 269800, resp.Total)

	snap := manager.ForUser(context.Background(), "u").State()
	assert.Equal(t, 269800, snap.CartTotal())
}

func TestAddToCartUnknownProduct(t *testing.T) {
	h, _ := newTestHandlers(t)

	w := httptest.NewRecorder()
	h.AddToCart(w, authedRequest(http.MethodPost, "/api/v1/cart", `{"productId":"999"}`, "u"), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddToCartRequiresAuth(t *testing.T) {
	h, _ := newTestHandlers(t)

	w := httptest.NewRecorder()
	h.AddToCart(w, authedRequest(http.MethodPost, "/api/v1/cart", `{"productId":"1"}`, ""), nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateQuantityClamps(t *testing.T) {
	h, manager := newTestHandlers(t)

	w := httptest.NewRecorder()
	h.AddToCart(w, authedRequest(http.MethodPost, "/api/v1/cart", `{"productId":"1"}`, "u"), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	params := httprouter.Params{{Key: "productid", Value: "1"}}
	w = httptest.NewRecorder()
	h.UpdateQuantity(w, authedRequest(http.MethodPut, "/api/v1/cart/1", `{"quantity":0}`, "u"), params)
	require.Equal(t, http.StatusOK, w.Code)

	snap := manager.ForUser(context.Background(), "u").State()
	assert.Equal(t, 1, snap.Cart[0].Quantity)
}

func TestRemoveFromCartHandler(t *testing.T) {
	h, manager := newTestHandlers(t)

	w := httptest.NewRecorder()
	h.AddToCart(w, authedRequest(http.MethodPost, "/api/v1/cart", `{"productId":"1"}`, "u"), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	params := httprouter.Params{{Key: "productid", Value: "1"}}
	w = httptest.NewRecorder()
	h.RemoveFromCart(w, authedRequest(http.MethodDelete, "/api/v1/cart/1", "", "u"), params)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Empty(t, manager.ForUser(context.Background(), "u").State().Cart)
}

func TestWishlistMoveToCartHandler(t *testing.T) {
	h, manager := newTestHandlers(t)

	for _, id := range []string{"1", "2"} {
		w := httptest.NewRecorder()
		h.AddToWishlist(w, authedRequest(http.MethodPost, "/api/v1/wishlist", `{"productId":"`+id+`"}`, "u"), nil)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	params := httprouter.Params{{Key: "productid", Value: "1"}}
	w := httptest.NewRecorder()
	h.MoveToCart(w, authedRequest(http.MethodPost, "/api/v1/wishlist/1/move-to-cart", "", "u"), params)
	require.Equal(t, http.StatusOK, w.Code)

	snap := manager.ForUser(context.Background(), "u").State()
	require.Len(t, snap.Cart, 1)
	assert.Equal(t, "1", snap.Cart[0].ID)
	assert.Equal(t, 1, snap.Cart[0].Quantity)
	require.Len(t, snap.Wishlist, 1)
	assert.Equal(t, "2", snap.Wishlist[0].ID)
}

func TestMoveToCartNotInWishlist(t *testing.T) {
	h, _ := newTestHandlers(t)

	params := httprouter.Params{{Key: "productid", Value: "8"}}
	w := httptest.NewRecorder()
	h.MoveToCart(w, authedRequest(http.MethodPost, "/api/v1/wishlist/8/move-to-cart", "", "u"), params)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddToWishlistIdempotentOverHTTP(t *testing.T) {
	h, manager := newTestHandlers(t)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		h.AddToWishlist(w, authedRequest(http.MethodPost, "/api/v1/wishlist", `{"productId":"3"}`, "u"), nil)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	assert.Len(t, manager.ForUser(context.Background(), "u").State().Wishlist, 1)
}
