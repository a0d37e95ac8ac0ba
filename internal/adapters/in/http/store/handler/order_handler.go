package storeHandler

import (
	"net/http"
	"strings"

	"greenhaven/internal/adapters/in/http/middleware"
	orderdom "greenhaven/internal/domain/order"
)

// OrderHandler serves the signed-in order history (read-only; orders are
// written by the fulfilment pipeline, not this service):
//
//	GET /store/me/orders
//	GET /store/me/orders/{id}
type OrderHandler struct {
	repo orderdom.Repository
}

func NewOrderHandler(repo orderdom.Repository) http.Handler {
	return &OrderHandler{repo: repo}
}

func (h *OrderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.repo == nil {
		writeErr(w, http.StatusInternalServerError, "order handler is not configured")
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	uid, ok := middleware.CurrentUserUID(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	path := strings.TrimRight(r.URL.Path, "/")

	if id := pathTail(path, "/store/me/orders"); id != "" {
		o, err := h.repo.GetByID(r.Context(), id)
		if err != nil {
			writeDomainErr(w, err)
			return
		}
		// an order is only visible to its owner
		if o.UserID != uid {
			writeErr(w, http.StatusNotFound, orderdom.ErrNotFound.Error())
			return
		}
		writeJSON(w, http.StatusOK, o)
		return
	}

	list, err := h.repo.ListByUserID(r.Context(), uid)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": list})
}
