package storeHandler

import (
	"net/http"
)

// CheckoutHandler reserves the checkout route. Payment capture runs in a
// separate service; this endpoint exists so the storefront gets a stable,
// explicit "not here yet" instead of a 404.
type CheckoutHandler struct{}

func NewCheckoutHandler() http.Handler {
	return &CheckoutHandler{}
}

func (h *CheckoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	writeErr(w, http.StatusNotImplemented, "checkout is handled by the payments service")
}
