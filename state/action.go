package state

import "electrofusion/models"

// ActionType tags the closed set of mutations the reducer understands.
type ActionType string

const (
	ActionAddToCart          ActionType = "ADD_TO_CART"
	ActionRemoveFromCart     ActionType = "REMOVE_FROM_CART"
	ActionUpdateCartQuantity ActionType = "UPDATE_CART_QUANTITY"
	ActionClearCart          ActionType = "CLEAR_CART"
	ActionAddToWishlist      ActionType = "ADD_TO_WISHLIST"
	ActionRemoveFromWishlist ActionType = "REMOVE_FROM_WISHLIST"
	ActionMoveToCart         ActionType = "MOVE_TO_CART"
	ActionAddOrder           ActionType = "ADD_ORDER"
	ActionLogin              ActionType = "LOGIN"
	ActionLogout             ActionType = "LOGOUT"
)

// Action carries the payload for one mutation. Only the fields relevant to
// its Type are set.
type Action struct {
	Type      ActionType
	Product   *models.Product
	ProductID string
	Quantity  int
	Order     *models.Order
	User      *models.User
}

func AddToCart(p models.Product) Action {
	return Action{Type: ActionAddToCart, Product: &p}
}

func RemoveFromCart(productID string) Action {
	return Action{Type: ActionRemoveFromCart, ProductID: productID}
}

func UpdateCartQuantity(productID string, quantity int) Action {
	return Action{Type: ActionUpdateCartQuantity, ProductID: productID, Quantity: quantity}
}

func ClearCart() Action {
	return Action{Type: ActionClearCart}
}

func AddToWishlist(p models.Product) Action {
	return Action{Type: ActionAddToWishlist, Product: &p}
}

func RemoveFromWishlist(productID string) Action {
	return Action{Type: ActionRemoveFromWishlist, ProductID: productID}
}

func MoveToCart(productID string) Action {
	return Action{Type: ActionMoveToCart, ProductID: productID}
}

func AddOrder(order models.Order) Action {
	return Action{Type: ActionAddOrder, Order: &order}
}

func Login(user models.User) Action {
	return Action{Type: ActionLogin, User: &user}
}

func Logout() Action {
	return Action{Type: ActionLogout}
}
