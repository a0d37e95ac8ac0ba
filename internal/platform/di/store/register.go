// internal/platform/di/store/register.go
package store

import (
	"encoding/json"
	"log"
	"net/http"

	storehttp "greenhaven/internal/adapters/in/http/store"
	storehandler "greenhaven/internal/adapters/in/http/store/handler"
	"greenhaven/internal/adapters/in/http/middleware"
)

// notImplemented returns a non-nil handler (so deps are never nil) for
// endpoints that are not wired yet.
func notImplemented(name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotImplemented)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error": "not_implemented",
			"name":  name,
		})
	})
}

// requireUserAuth wraps handler with UserAuthMiddleware (fail-closed).
// If middleware is not initialized, it returns 503 so the bug is obvious.
func requireUserAuth(mw *middleware.UserAuthMiddleware, h http.Handler, name string) http.Handler {
	if h == nil {
		h = http.NotFoundHandler()
	}
	if mw == nil || mw.FirebaseAuth == nil {
		log.Printf("[store.register] ERROR: UserAuthMiddleware is not initialized (endpoint=%s). returning 503", name)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error": "user_auth_not_initialized",
				"name":  name,
			})
		})
	}
	return mw.Handler(h)
}

// Register constructs handlers from the container and registers buyer routes.
// - Catalog/product/inquiry are public.
// - Cart goes through OptionalUserAuth so guests and signed-in users share it.
// - /store/me* is fail-closed behind UserAuthMiddleware.
func Register(mux *http.ServeMux, cont *Container) {
	if mux == nil || cont == nil {
		return
	}

	userAuthMW := &middleware.UserAuthMiddleware{}
	optionalAuthMW := &middleware.OptionalUserAuth{}
	if cont.Infra != nil && cont.Infra.FirebaseAuth != nil {
		userAuthMW.FirebaseAuth = cont.Infra.FirebaseAuth
		optionalAuthMW.FirebaseAuth = cont.Infra.FirebaseAuth
	} else {
		log.Printf("[store.register] WARN: FirebaseAuth is nil (protected endpoints will return 503)")
	}

	catalogH := notImplemented("Catalog")
	productH := notImplemented("Product")
	cartH := notImplemented("Cart")
	userH := notImplemented("User")
	orderH := notImplemented("Order")
	inquiryH := notImplemented("Inquiry")

	if cont.CatalogQ != nil && cont.CategoryUC != nil {
		catalogH = storehandler.NewCatalogHandler(cont.CatalogQ, cont.CategoryUC)
	}
	if cont.ProductUC != nil {
		productH = storehandler.NewProductHandler(cont.ProductUC)
	}
	if cont.CartUC != nil {
		cartH = optionalAuthMW.Handler(storehandler.NewCartHandler(cont.CartUC))
	}
	if cont.UserUC != nil {
		userH = requireUserAuth(userAuthMW, storehandler.NewUserHandler(cont.UserUC), "User")
	}
	if cont.OrderRepo != nil {
		orderH = requireUserAuth(userAuthMW, storehandler.NewOrderHandler(cont.OrderRepo), "Order")
	}
	if cont.InquiryUC != nil {
		inquiryH = storehandler.NewInquiryHandler(cont.InquiryUC)
	}

	storehttp.Register(mux, storehttp.Deps{
		Catalog:  catalogH,
		Product:  productH,
		Cart:     cartH,
		Checkout: storehandler.NewCheckoutHandler(),
		User:     userH,
		Order:    orderH,
		Inquiry:  inquiryH,
	})
}
