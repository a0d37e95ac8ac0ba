package adminHandler

import (
	"net/http"
	"strconv"
	"strings"

	orderdom "greenhaven/internal/domain/order"
)

// OrderHandler serves back-office order views (read-only):
//
//	GET /admin/orders?status=processing&limit=50
//	GET /admin/orders/{id}
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

	path := strings.TrimRight(r.URL.Path, "/")

	if id := pathTail(path, "/admin/orders"); id != "" {
		o, err := h.repo.GetByID(r.Context(), id)
		if err != nil {
			writeDomainErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, o)
		return
	}

	status := strings.TrimSpace(r.URL.Query().Get("status"))
	if status != "" && !orderdom.ValidStatus(status) {
		writeErr(w, http.StatusBadRequest, "unknown order status: "+status)
		return
	}

	limit := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	list, err := h.repo.ListByStatus(r.Context(), orderdom.Status(strings.ToLower(status)), limit)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": list})
}
