package storeHandler

import (
	"log"
	"net/http"
	"strings"

	"greenhaven/internal/adapters/in/http/middleware"
	usecase "greenhaven/internal/application/usecase"
	userdom "greenhaven/internal/domain/user"
)

// UserHandler serves the signed-in profile surface:
//
//	GET /store/me                    profile (created on first access)
//	PUT /store/me/notifications      replace notification settings
//	PUT /store/me/billing            replace billing info
type UserHandler struct {
	uc *usecase.UserUsecase
}

func NewUserHandler(uc *usecase.UserUsecase) http.Handler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "user handler is not configured")
		return
	}

	uid, ok := middleware.CurrentUserUID(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	path := strings.TrimRight(r.URL.Path, "/")

	switch {
	case r.Method == http.MethodGet && strings.HasSuffix(path, "/me"):
		email, _ := middleware.CurrentUserEmail(r)
		name, _ := middleware.CurrentUserName(r)
		u, err := h.uc.EnsureProfile(r.Context(), uid, email, name)
		if err != nil {
			log.Printf("[store_user_handler] ensure failed uid=%q err=%v", uid, err)
			writeDomainErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, u)

	case r.Method == http.MethodPut && strings.HasSuffix(path, "/me/notifications"):
		var body userdom.NotificationSettings
		if err := decodeBody(r, &body); err != nil {
			writeErr(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if err := h.uc.UpdateNotifications(r.Context(), uid, body); err != nil {
			writeDomainErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})

	case r.Method == http.MethodPut && strings.HasSuffix(path, "/me/billing"):
		var body userdom.BillingInfo
		if err := decodeBody(r, &body); err != nil {
			writeErr(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if err := h.uc.UpdateBilling(r.Context(), uid, body); err != nil {
			writeDomainErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})

	default:
		methodNotAllowed(w)
	}
}
