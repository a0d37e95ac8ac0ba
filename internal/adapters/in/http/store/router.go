// internal/adapters/in/http/store/router.go
package store

import (
	"log"
	"net/http"
)

// Deps is the buyer-facing handler set.
type Deps struct {
	Catalog  http.Handler
	Product  http.Handler
	Cart     http.Handler
	Checkout http.Handler
	User     http.Handler
	Order    http.Handler
	Inquiry  http.Handler
}

// handleSafe registers pattern with h.
// If h is nil, it logs and registers NotFoundHandler instead (so Cloud Run won't crash).
func handleSafe(mux *http.ServeMux, pattern string, h http.Handler, name string) {
	if h == nil {
		log.Printf("[store.router] WARN: nil handler: %s pattern=%s (registering NotFoundHandler)", name, pattern)
		h = http.NotFoundHandler()
	}
	mux.Handle(pattern, h)
}

// Register registers buyer-facing routes onto mux.
func Register(mux *http.ServeMux, deps Deps) {
	if mux == nil {
		return
	}

	// catalog + categories (public)
	handleSafe(mux, "/store/catalog", deps.Catalog, "Catalog")
	handleSafe(mux, "/store/catalog/", deps.Catalog, "Catalog")
	handleSafe(mux, "/store/categories", deps.Catalog, "Catalog(categories)")
	handleSafe(mux, "/store/categories/", deps.Catalog, "Catalog(categories)")

	// product detail (public)
	handleSafe(mux, "/store/products/", deps.Product, "Product")

	// cart (guest or signed-in; wrapped in OptionalUserAuth by DI)
	handleSafe(mux, "/store/cart", deps.Cart, "Cart")
	handleSafe(mux, "/store/cart/", deps.Cart, "Cart")

	// checkout stub
	handleSafe(mux, "/store/checkout", deps.Checkout, "Checkout")

	// signed-in surfaces (wrapped in UserAuthMiddleware by DI)
	handleSafe(mux, "/store/me", deps.User, "User(me)")
	handleSafe(mux, "/store/me/notifications", deps.User, "User(notifications)")
	handleSafe(mux, "/store/me/billing", deps.User, "User(billing)")
	handleSafe(mux, "/store/me/orders", deps.Order, "Order")
	handleSafe(mux, "/store/me/orders/", deps.Order, "Order")

	// contact form (public)
	handleSafe(mux, "/store/inquiries", deps.Inquiry, "Inquiry")
}
