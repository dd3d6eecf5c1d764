package cart

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"electrofusion/catalog"
	"electrofusion/notify"
	"electrofusion/state"
	"electrofusion/utils"

	"github.com/julienschmidt/httprouter"
)

// GetWishlist returns the saved-for-later products in insertion order.
func (h *Handlers) GetWishlist(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	store, _, ok := h.store(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, store.State().Wishlist)
}

// AddToWishlist is idempotent: re-adding a saved product changes nothing.
func (h *Handlers) AddToWishlist(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
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
		log.Println("AddToWishlist catalog error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not retrieve product")
		return
	}

	snap := store.Dispatch(r.Context(), state.AddToWishlist(product))
	h.hub.Push(userID, notify.Toast{Title: "Added to wishlist", Description: product.Name})
	utils.RespondWithJSON(w, http.StatusCreated, snap.Wishlist)
}

func (h *Handlers) RemoveFromWishlist(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	store, _, ok := h.store(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	snap := store.Dispatch(r.Context(), state.RemoveFromWishlist(ps.ByName("productid")))
	utils.RespondWithJSON(w, http.StatusOK, snap.Wishlist)
}

// MoveToCart moves a saved product into the cart in one step: merged or
// appended there, removed from the wishlist, both records persisted.
func (h *Handlers) MoveToCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	store, userID, ok := h.store(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	productID := ps.ByName("productid")
	if !store.State().IsInWishlist(productID) {
		utils.RespondWithError(w, http.StatusNotFound, "Not in wishlist")
		return
	}

	snap := store.Dispatch(r.Context(), state.MoveToCart(productID))
	h.hub.Push(userID, notify.Toast{Title: "Moved to cart"})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"cart":     snap.Cart,
		"wishlist": snap.Wishlist,
	})
}
