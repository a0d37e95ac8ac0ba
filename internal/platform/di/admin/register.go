// internal/platform/di/admin/register.go
package admin

import (
	"encoding/json"
	"log"
	"net/http"

	adminhttp "greenhaven/internal/adapters/in/http/admin"
	adminhandler "greenhaven/internal/adapters/in/http/admin/handler"
	"greenhaven/internal/adapters/in/http/middleware"
)

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

// requireAdmin wraps handler with UserAuth + AdminAuth (fail-closed).
func requireAdmin(userMW *middleware.UserAuthMiddleware, adminMW *middleware.AdminAuthMiddleware, h http.Handler, name string) http.Handler {
	if h == nil {
		h = http.NotFoundHandler()
	}
	if userMW == nil || userMW.FirebaseAuth == nil || adminMW == nil || adminMW.Roles == nil {
		log.Printf("[admin.register] ERROR: admin auth chain is not initialized (endpoint=%s). returning 503", name)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error": "admin_auth_not_initialized",
				"name":  name,
			})
		})
	}
	return userMW.Handler(adminMW.Handler(h))
}

// Register constructs handlers from the container and registers admin routes.
// Every route is behind the UserAuth + AdminAuth chain.
func Register(mux *http.ServeMux, cont *Container) {
	if mux == nil || cont == nil {
		return
	}

	userAuthMW := &middleware.UserAuthMiddleware{}
	if cont.Infra != nil && cont.Infra.FirebaseAuth != nil {
		userAuthMW.FirebaseAuth = cont.Infra.FirebaseAuth
	} else {
		log.Printf("[admin.register] WARN: FirebaseAuth is nil (all admin endpoints will return 503)")
	}
	adminAuthMW := &middleware.AdminAuthMiddleware{}
	if cont.UserUC != nil {
		adminAuthMW.Roles = cont.UserUC
	}

	productH := notImplemented("Product")
	categoryH := notImplemented("Category")
	orderH := notImplemented("Order")
	inquiryH := notImplemented("Inquiry")
	uploadH := notImplemented("Upload")

	if cont.ProductUC != nil {
		productH = adminhandler.NewProductHandler(cont.ProductUC, cont.ProductPager)
	}
	if cont.CategoryUC != nil {
		categoryH = adminhandler.NewCategoryHandler(cont.CategoryUC, cont.ExtractUC)
	}
	if cont.OrderRepo != nil {
		orderH = adminhandler.NewOrderHandler(cont.OrderRepo)
	}
	if cont.InquiryUC != nil {
		inquiryH = adminhandler.NewInquiryHandler(cont.InquiryUC)
	}
	if cont.Images != nil {
		uploadH = adminhandler.NewUploadHandler(cont.Images, cont.ProductUC, cont.CategoryUC)
	}

	adminhttp.Register(mux, adminhttp.Deps{
		Product:  requireAdmin(userAuthMW, adminAuthMW, productH, "Product"),
		Category: requireAdmin(userAuthMW, adminAuthMW, categoryH, "Category"),
		Order:    requireAdmin(userAuthMW, adminAuthMW, orderH, "Order"),
		Inquiry:  requireAdmin(userAuthMW, adminAuthMW, inquiryH, "Inquiry"),
		Upload:   requireAdmin(userAuthMW, adminAuthMW, uploadH, "Upload"),
	})
}
