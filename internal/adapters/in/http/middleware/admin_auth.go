package middleware

import (
	"context"
	"log"
	"net/http"

	userdom "greenhaven/internal/domain/user"
)

// RoleReader resolves the stored role for a uid.
// Implemented by usecase.UserUsecase.
type RoleReader interface {
	Role(ctx context.Context, uid string) (userdom.Role, error)
}

// AdminAuthMiddleware gates back-office routes: it runs after
// UserAuthMiddleware and additionally requires role == admin on the user
// document. Note this is an HTTP-boundary gate; the document store's own
// security rules remain the backstop.
type AdminAuthMiddleware struct {
	Roles RoleReader
}

func (m *AdminAuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m == nil || m.Roles == nil {
			http.Error(w, "admin auth middleware not initialized", http.StatusServiceUnavailable)
			return
		}

		uid, ok := CurrentUserUID(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		role, err := m.Roles.Role(r.Context(), uid)
		if err != nil {
			log.Printf("[admin_auth] role lookup failed uid=%q err=%v", uid, err)
			http.Error(w, "role lookup failed", http.StatusInternalServerError)
			return
		}
		if role != userdom.RoleAdmin {
			http.Error(w, "forbidden: admin role required", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
