package adminHandler

import (
	"net/http"
	"strconv"
	"strings"

	usecase "greenhaven/internal/application/usecase"
)

// InquiryHandler serves back-office inquiry triage:
//
//	GET  /admin/inquiries?status=open&limit=100
//	POST /admin/inquiries/{id}/close
type InquiryHandler struct {
	uc *usecase.InquiryUsecase
}

func NewInquiryHandler(uc *usecase.InquiryUsecase) http.Handler {
	return &InquiryHandler{uc: uc}
}

func (h *InquiryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "inquiry handler is not configured")
		return
	}

	path := strings.TrimRight(r.URL.Path, "/")
	tail := pathTail(path, "/admin/inquiries")

	switch {
	case r.Method == http.MethodGet && tail == "":
		status := strings.TrimSpace(r.URL.Query().Get("status"))
		limit := 0
		if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil && n > 0 {
				limit = n
			}
		}
		list, err := h.uc.List(r.Context(), status, limit)
		if err != nil {
			writeDomainErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": list})

	case r.Method == http.MethodPost && strings.HasSuffix(tail, "/close"):
		id := strings.Trim(strings.TrimSuffix(tail, "/close"), "/")
		if id == "" {
			writeErr(w, http.StatusBadRequest, "missing inquiry id")
			return
		}
		if err := h.uc.Close(r.Context(), id); err != nil {
			writeDomainErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "id": id})

	default:
		methodNotAllowed(w)
	}
}
