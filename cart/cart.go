// Package cart exposes the cart and wishlist intents over HTTP. Handlers
// resolve products through the catalog and dispatch actions to the caller's
// state store; they never mutate state directly.
package cart

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"electrofusion/catalog"
	"electrofusion/middleware"
	"electrofusion/notify"
	"electrofusion/state"
	"electrofusion/utils"

	"github.com/julienschmidt/httprouter"
)

type Handlers struct {
	manager  *state.Manager
	provider catalog.Provider
	hub      *notify.Hub
}

func NewHandlers(manager *state.Manager, provider catalog.Provider, hub *notify.Hub) *Handlers {
	return &Handlers{manager: manager, provider: provider, hub: hub}
}

func (h *Handlers) store(r *http.Request) (*state.Store, string, bool) {
	userID := middleware.UserIDFromContext(r.Context())
	if userID == "" {
		return nil, "", false
	}
	return h.manager.ForUser(r.Context(), userID), userID, true
}

type productRef struct {
	ProductID string `json:"productId"`
}

// GetCart returns the cart along with its derived totals.
func (h *Handlers) GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	store, _, ok := h.store(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	snap := store.State()
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"items": snap.Cart,
		"total": snap.CartTotal(),
		"count": snap.CartItemCount(),
	})
}

// AddToCart increments quantity if the product is already in the cart, or
// appends it with quantity 1.
func (h *Handlers) AddToCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	store, userID, ok := h.store(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var ref productRef
	if err := json.NewDecoder(r.Body).Decode(&ref); err != nil || ref.ProductID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	product, err := h.provider.Product(r.Context(), ref.ProductID)
	if errors.Is(err, catalog.ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		log.Println("AddToCart catalog error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not retrieve product")
		return
	}

	snap := store.Dispatch(r.Context(), state.AddToCart(product))
	h.hub.Push(userID, notify.Toast{Title: "Added to cart", Description: product.Name})
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"items": snap.Cart, "total": snap.CartTotal()})
}

// RemoveFromCart deletes the matching item; removing an absent id is fine.
func (h *Handlers) RemoveFromCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	store, _, ok := h.store(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	snap := store.Dispatch(r.Context(), state.RemoveFromCart(ps.ByName("productid")))
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"items": snap.Cart, "total": snap.CartTotal()})
}

// UpdateQuantity sets the item's quantity, clamped to at least 1.
func (h *Handlers) UpdateQuantity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	store, _, ok := h.store(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	snap := store.Dispatch(r.Context(), state.UpdateCartQuantity(ps.ByName("productid"), input.Quantity))
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"items": snap.Cart, "total": snap.CartTotal()})
}

// ClearCart empties the cart unconditionally.
func (h *Handlers) ClearCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	store, _, ok := h.store(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	store.Dispatch(r.Context(), state.ClearCart())
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}
