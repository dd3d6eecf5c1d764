package routes

import (
	"electrofusion/auth"
	"electrofusion/cart"
	"electrofusion/catalog"
	"electrofusion/checkout"
	"electrofusion/invoice"
	"electrofusion/middleware"
	"electrofusion/notify"
	"electrofusion/ratelim"

	"github.com/julienschmidt/httprouter"
)

// AddAuthRoutes wires the demo session endpoints.
func AddAuthRoutes(router *httprouter.Router, h *auth.Handlers, rl *ratelim.RateLimiter) {
	router.POST("/api/v1/auth/login", rl.Limit(h.Login))
	router.POST("/api/v1/auth/logout",
		middleware.Chain(rl.Limit, middleware.Authenticate)(h.Logout),
	)
}

// AddCatalogRoutes wires the read-only product endpoints.
func AddCatalogRoutes(router *httprouter.Router, h *catalog.Handlers) {
	router.GET("/api/v1/products", h.GetProducts)
	router.GET("/api/v1/products/:id", h.GetProduct)
	router.GET("/api/v1/products/:id/image", h.GetProductImage)
	router.GET("/api/v1/categories", h.GetCategories)
}

// AddCartRoutes wires cart and wishlist intents.
func AddCartRoutes(router *httprouter.Router, h *cart.Handlers, rl *ratelim.RateLimiter) {
	authed := middleware.Chain(rl.Limit, middleware.Authenticate)

	router.GET("/api/v1/cart", authed(h.GetCart))
	router.POST("/api/v1/cart", authed(h.AddToCart))
	router.PUT("/api/v1/cart/:productid", authed(h.UpdateQuantity))
	router.DELETE("/api/v1/cart/:productid", authed(h.RemoveFromCart))
	router.DELETE("/api/v1/cart", authed(h.ClearCart))

	router.GET("/api/v1/wishlist", authed(h.GetWishlist))
	router.POST("/api/v1/wishlist", authed(h.AddToWishlist))
	router.DELETE("/api/v1/wishlist/:productid", authed(h.RemoveFromWishlist))
	router.POST("/api/v1/wishlist/:productid/move-to-cart", authed(h.MoveToCart))
}

// AddCheckoutRoutes wires the order flow and history.
func AddCheckoutRoutes(router *httprouter.Router, h *checkout.Handlers, inv *invoice.Handlers, rl *ratelim.RateLimiter) {
	authed := middleware.Chain(rl.Limit, middleware.Authenticate)

	router.POST("/api/v1/checkout/address", authed(h.ValidateAddress))
	router.POST("/api/v1/checkout/order", authed(h.PlaceOrder))

	router.GET("/api/v1/orders", authed(h.GetOrders))
	router.GET("/api/v1/orders/:orderid", authed(h.GetOrder))
	router.GET("/api/v1/orders/:orderid/invoice", authed(inv.Download))
}

// AddNotifyRoutes wires the toast websocket.
func AddNotifyRoutes(router *httprouter.Router, hub *notify.Hub) {
	router.GET("/api/v1/ws/toasts", middleware.Authenticate(hub.HandleWebSocket))
}
