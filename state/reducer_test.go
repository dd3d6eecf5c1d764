package state

import (
	"testing"

	"electrofusion/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id string, price int) models.Product {
	return models.Product{
		ID:       id,
		Name:     "Product " + id,
		Brand:    "BrandCo",
		Price:    price,
		Category: "smartphones",
	}
}

func emptyState() AppState {
	return AppState{
		Cart:     []models.CartItem{},
		Wishlist: []models.Product{},
		Orders:   []models.Order{},
	}
}

func TestAddToCartMergesByProductID(t *testing.T) {
	s := emptyState()
	p := product("1", 134900)

	for i := 0; i < 5; i++ {
		s, _ = Apply(s, AddToCart(p))
	}

	require.Len(t, s.Cart, 1)
	assert.Equal(t, "1", s.Cart[0].ID)
	assert.Equal(t, 5, s.Cart[0].Quantity)
}

func TestAddToCartPreservesOrderAndAppends(t *testing.T) {
	s := emptyState()
	s, _ = Apply(s, AddToCart(product("1", 100)))
	s, _ = Apply(s, AddToCart(product("2", 200)))
	s, _ = Apply(s, AddToCart(product("1", 100)))
	s, _ = Apply(s, AddToCart(product("3", 300)))

	require.Len(t, s.Cart, 3)
	assert.Equal(t, []string{"1", "2", "3"}, []string{s.Cart[0].ID, s.Cart[1].ID, s.Cart[2].ID})
	assert.Equal(t, 2, s.Cart[0].Quantity)
}

func TestRemoveThenAddResetsQuantity(t *testing.T) {
	s := emptyState()
	p := product("1", 100)
	s, _ = Apply(s, AddToCart(p))
	s, _ = Apply(s, AddToCart(p))
	s, _ = Apply(s, RemoveFromCart("1"))
	require.Empty(t, s.Cart)

	s, _ = Apply(s, AddToCart(p))
	require.Len(t, s.Cart, 1)
	assert.Equal(t, 1, s.Cart[0].Quantity, "stale quantity must not survive removal")
}

func TestRemoveFromCartAbsentIsNoop(t *testing.T) {
	s := emptyState()
	s, _ = Apply(s, AddToCart(product("1", 100)))

	s, changed := Apply(s, RemoveFromCart("nope"))
	assert.Len(t, s.Cart, 1)
	assert.Equal(t, []Record{RecordCart}, changed)
}

func TestUpdateCartQuantityClampsToOne(t *testing.T) {
	for _, q := range []int{-10, -1, 0, 1} {
		s := emptyState()
		s, _ = Apply(s, AddToCart(product("1", 100)))
		s, _ = Apply(s, UpdateCartQuantity("1", q))
		assert.Equal(t, 1, s.Cart[0].Quantity, "requested %d", q)
	}

	s := emptyState()
	s, _ = Apply(s, AddToCart(product("1", 100)))
	s, _ = Apply(s, UpdateCartQuantity("1", 7))
	assert.Equal(t, 7, s.Cart[0].Quantity)

	// absent id is a no-op
	s, _ = Apply(s, UpdateCartQuantity("nope", 3))
	require.Len(t, s.Cart, 1)
}

func TestClearCart(t *testing.T) {
	s := emptyState()
	s, _ = Apply(s, AddToCart(product("1", 100)))
	s, _ = Apply(s, AddToCart(product("2", 200)))
	s, _ = Apply(s, ClearCart())
	assert.Empty(t, s.Cart)
}

func TestAddToWishlistIsIdempotent(t *testing.T) {
	s := emptyState()
	p := product("1", 100)
	for i := 0; i < 4; i++ {
		s, _ = Apply(s, AddToWishlist(p))
	}
	assert.Len(t, s.Wishlist, 1)

	// second add reports no changed records
	_, changed := Apply(s, AddToWishlist(p))
	assert.Empty(t, changed)
}

func TestWishlistPreservesInsertionOrder(t *testing.T) {
	s := emptyState()
	s, _ = Apply(s, AddToWishlist(product("b", 2)))
	s, _ = Apply(s, AddToWishlist(product("a", 1)))
	s, _ = Apply(s, AddToWishlist(product("c", 3)))

	require.Len(t, s.Wishlist, 3)
	assert.Equal(t, "b", s.Wishlist[0].ID)
	assert.Equal(t, "a", s.Wishlist[1].ID)
	assert.Equal(t, "c", s.Wishlist[2].ID)
}

func TestMoveToCartIsAtomic(t *testing.T) {
	s := emptyState()
	s, _ = Apply(s, AddToWishlist(product("A", 500)))
	s, _ = Apply(s, AddToWishlist(product("B", 600)))

	s, changed := Apply(s, MoveToCart("A"))

	assert.ElementsMatch(t, []Record{RecordCart, RecordWishlist}, changed)
	require.Len(t, s.Cart, 1)
	assert.Equal(t, "A", s.Cart[0].ID)
	assert.Equal(t, 1, s.Cart[0].Quantity)
	require.Len(t, s.Wishlist, 1)
	assert.Equal(t, "B", s.Wishlist[0].ID)
}

func TestMoveToCartMergesWithExistingCartItem(t *testing.T) {
	s := emptyState()
	s, _ = Apply(s, AddToCart(product("A", 500)))
	s, _ = Apply(s, AddToWishlist(product("A", 500)))

	s, _ = Apply(s, MoveToCart("A"))

	require.Len(t, s.Cart, 1)
	assert.Equal(t, 2, s.Cart[0].Quantity)
	assert.False(t, s.IsInWishlist("A"))
}

func TestMoveToCartAbsentIsNoop(t *testing.T) {
	s := emptyState()
	s, _ = Apply(s, AddToCart(product("A", 500)))

	next, changed := Apply(s, MoveToCart("ghost"))
	assert.Empty(t, changed)
	assert.Equal(t, s, next)
}

func TestAddOrderPrependsNewestFirst(t *testing.T) {
	s := emptyState()
	for _, id := range []string{"EF1", "EF2", "EF3"} {
		s, _ = Apply(s, AddOrder(models.Order{ID: id, Status: models.OrderStatusConfirmed}))
	}

	require.Len(t, s.Orders, 3)
	assert.Equal(t, "EF3", s.Orders[0].ID)
	assert.Equal(t, "EF2", s.Orders[1].ID)
	assert.Equal(t, "EF1", s.Orders[2].ID)
}

func TestLoginLogout(t *testing.T) {
	s := emptyState()
	s, changed := Apply(s, Login(models.User{Email: "a@b.com", Name: "A"}))
	assert.True(t, s.IsAuthenticated)
	require.NotNil(t, s.User)
	assert.Equal(t, []Record{RecordUser}, changed)

	s, _ = Apply(s, AddToCart(product("1", 100)))
	s, _ = Apply(s, AddToWishlist(product("2", 200)))
	s, _ = Apply(s, AddOrder(models.Order{ID: "EF1"}))

	s, changed = Apply(s, Logout())
	assert.Equal(t, AllRecords, changed)
	assert.Empty(t, s.Cart)
	assert.Empty(t, s.Wishlist)
	assert.Empty(t, s.Orders)
	assert.Nil(t, s.User)
	assert.False(t, s.IsAuthenticated)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	s := emptyState()
	s, _ = Apply(s, AddToCart(product("1", 100)))
	before := s.Cart[0].Quantity

	Apply(s, AddToCart(product("1", 100)))
	Apply(s, UpdateCartQuantity("1", 9))
	Apply(s, RemoveFromCart("1"))

	assert.Equal(t, before, s.Cart[0].Quantity)
	assert.Len(t, s.Cart, 1)
}

func TestCartTotalScenario(t *testing.T) {
	// cart = [{id:"1", price:134900, qty:1}], add the same product again
	s := emptyState()
	p := product("1", 134900)
	s, _ = Apply(s, AddToCart(p))
	s, _ = Apply(s, AddToCart(p))

	require.Len(t, s.Cart, 1)
	assert.Equal(t, 2, s.Cart[0].Quantity)
	assert.Equal(t, 269800, s.CartTotal())
	assert.Equal(t, 2, s.CartItemCount())
}

func TestDerivedQueries(t *testing.T) {
	s := emptyState()
	s, _ = Apply(s, AddToCart(product("1", 100)))
	s, _ = Apply(s, AddToWishlist(product("2", 200)))

	assert.True(t, s.IsInCart("1"))
	assert.False(t, s.IsInCart("2"))
	assert.True(t, s.IsInWishlist("2"))
	assert.False(t, s.IsInWishlist("1"))
}
