// Package state is the single source of truth for a user's cart, wishlist,
// order history and session identity. All mutation goes through a closed
// action set applied by a pure reducer; the surrounding Store persists the
// affected records after every action.
package state

import "electrofusion/models"

// AppState aggregates everything the storefront tracks for one user.
// Invariants: at most one cart item and one wishlist entry per product id;
// orders are newest-first; IsAuthenticated holds exactly when User is set.
type AppState struct {
	Cart            []models.CartItem `json:"cart"`
	Wishlist        []models.Product  `json:"wishlist"`
	Orders          []models.Order    `json:"orders"`
	User            *models.User      `json:"user"`
	IsAuthenticated bool              `json:"isAuthenticated"`
}

// Record names one of the independently persisted slices of AppState.
type Record string

const (
	RecordCart     Record = "cart"
	RecordWishlist Record = "wishlist"
	RecordOrders   Record = "orders"
	RecordUser     Record = "user"
)

// AllRecords in persistence-key order.
var AllRecords = []Record{RecordCart, RecordWishlist, RecordOrders, RecordUser}

// CartTotal sums price times quantity over the cart.
func (s AppState) CartTotal() int {
	total := 0
	for _, item := range s.Cart {
		total += item.Price * item.Quantity
	}
	return total
}

// CartItemCount sums quantities over the cart.
func (s AppState) CartItemCount() int {
	count := 0
	for _, item := range s.Cart {
		count += item.Quantity
	}
	return count
}

func (s AppState) IsInCart(productID string) bool {
	for _, item := range s.Cart {
		if item.ID == productID {
			return true
		}
	}
	return false
}

func (s AppState) IsInWishlist(productID string) bool {
	for _, p := range s.Wishlist {
		if p.ID == productID {
			return true
		}
	}
	return false
}
