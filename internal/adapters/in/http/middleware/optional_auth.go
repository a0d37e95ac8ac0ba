package middleware

import (
	"context"
	"net/http"
	"strings"
)

// OptionalUserAuth verifies a bearer token when one is present and passes the
// request through untouched otherwise. Cart routes use it so guests (who
// identify via the X-Guest-Cart header) share the same handler as signed-in
// shoppers.
type OptionalUserAuth struct {
	FirebaseAuth *FirebaseAuthClient
}

func (m *OptionalUserAuth) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if m == nil || m.FirebaseAuth == nil || !strings.HasPrefix(authHeader, "Bearer ") {
			next.ServeHTTP(w, r)
			return
		}

		idToken := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if idToken == "" {
			next.ServeHTTP(w, r)
			return
		}

		token, err := m.FirebaseAuth.VerifyIDToken(r.Context(), idToken)
		if err != nil {
			// a present-but-invalid token is rejected, not ignored
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		uid := strings.TrimSpace(token.UID)
		if uid == "" {
			http.Error(w, "invalid uid in token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), ctxKeyUID, uid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
