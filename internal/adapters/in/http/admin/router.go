// internal/adapters/in/http/admin/router.go
package admin

import (
	"log"
	"net/http"
)

// Deps is the back-office handler set. Every handler here is expected to be
// wrapped in UserAuth + AdminAuth by DI before registration.
type Deps struct {
	Product  http.Handler
	Category http.Handler
	Order    http.Handler
	Inquiry  http.Handler
	Upload   http.Handler
}

// handleSafe registers pattern with h.
// If h is nil, it logs and registers NotFoundHandler instead (so Cloud Run won't crash).
func handleSafe(mux *http.ServeMux, pattern string, h http.Handler, name string) {
	if h == nil {
		log.Printf("[admin.router] WARN: nil handler: %s pattern=%s (registering NotFoundHandler)", name, pattern)
		h = http.NotFoundHandler()
	}
	mux.Handle(pattern, h)
}

// Register registers back-office routes onto mux.
func Register(mux *http.ServeMux, deps Deps) {
	if mux == nil {
		return
	}

	handleSafe(mux, "/admin/products", deps.Product, "Product")
	handleSafe(mux, "/admin/products/", deps.Product, "Product")

	handleSafe(mux, "/admin/categories", deps.Category, "Category")
	handleSafe(mux, "/admin/categories/", deps.Category, "Category")

	handleSafe(mux, "/admin/orders", deps.Order, "Order")
	handleSafe(mux, "/admin/orders/", deps.Order, "Order")

	handleSafe(mux, "/admin/inquiries", deps.Inquiry, "Inquiry")
	handleSafe(mux, "/admin/inquiries/", deps.Inquiry, "Inquiry")

	handleSafe(mux, "/admin/uploads/", deps.Upload, "Upload")
}
