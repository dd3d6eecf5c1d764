package state

import "electrofusion/models"

// Apply is the pure transition function. It never mutates its input; slices
// in the returned state are fresh copies whenever they change. The returned
// records name the persisted collections the action touched (a Logout
// reports all four so the caller can erase them).
func Apply(s AppState, a Action) (AppState, []Record) {
	switch a.Type {
	case ActionAddToCart:
		s.Cart = mergeIntoCart(s.Cart, *a.Product)
		return s, []Record{RecordCart}

	case ActionRemoveFromCart:
		cart := make([]models.CartItem, 0, len(s.Cart))
		for _, item := range s.Cart {
			if item.ID != a.ProductID {
				cart = append(cart, item)
			}
		}
		s.Cart = cart
		return s, []Record{RecordCart}

	case ActionUpdateCartQuantity:
		cart := make([]models.CartItem, len(s.Cart))
		copy(cart, s.Cart)
		for i := range cart {
			if cart[i].ID == a.ProductID {
				cart[i].Quantity = max(1, a.Quantity)
			}
		}
		s.Cart = cart
		return s, []Record{RecordCart}

	case ActionClearCart:
		s.Cart = []models.CartItem{}
		return s, []Record{RecordCart}

	case ActionAddToWishlist:
		if s.IsInWishlist(a.Product.ID) {
			return s, nil
		}
		wishlist := make([]models.Product, len(s.Wishlist), len(s.Wishlist)+1)
		copy(wishlist, s.Wishlist)
		s.Wishlist = append(wishlist, *a.Product)
		return s, []Record{RecordWishlist}

	case ActionRemoveFromWishlist:
		wishlist := make([]models.Product, 0, len(s.Wishlist))
		for _, p := range s.Wishlist {
			if p.ID != a.ProductID {
				wishlist = append(wishlist, p)
			}
		}
		s.Wishlist = wishlist
		return s, []Record{RecordWishlist}

	case ActionMoveToCart:
		var product *models.Product
		for i := range s.Wishlist {
			if s.Wishlist[i].ID == a.ProductID {
				product = &s.Wishlist[i]
				break
			}
		}
		if product == nil {
			return s, nil
		}
		s.Cart = mergeIntoCart(s.Cart, *product)
		wishlist := make([]models.Product, 0, len(s.Wishlist)-1)
		for _, p := range s.Wishlist {
			if p.ID != a.ProductID {
				wishlist = append(wishlist, p)
			}
		}
		s.Wishlist = wishlist
		return s, []Record{RecordCart, RecordWishlist}

	case ActionAddOrder:
		orders := make([]models.Order, 0, len(s.Orders)+1)
		orders = append(orders, *a.Order)
		orders = append(orders, s.Orders...)
		s.Orders = orders
		return s, []Record{RecordOrders}

	case ActionLogin:
		u := *a.User
		s.User = &u
		s.IsAuthenticated = true
		return s, []Record{RecordUser}

	case ActionLogout:
		return AppState{
			Cart:     []models.CartItem{},
			Wishlist: []models.Product{},
			Orders:   []models.Order{},
		}, AllRecords

	default:
		return s, nil
	}
}

// mergeIntoCart increments the quantity of an existing item or appends a
// new one with quantity 1, preserving the order of existing items.
func mergeIntoCart(cart []models.CartItem, p models.Product) []models.CartItem {
	next := make([]models.CartItem, len(cart))
	copy(next, cart)
	for i := range next {
		if next[i].ID == p.ID {
			next[i].Quantity++
			return next
		}
	}
	return append(next, models.CartItem{Product: p, Quantity: 1})
}
