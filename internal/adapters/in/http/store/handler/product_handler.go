package storeHandler

import (
	"net/http"
	"strings"

	usecase "greenhaven/internal/application/usecase"
)

// ProductHandler serves product detail reads:
//
//	GET /store/products/{id}
//	GET /store/products/by-link/{link}
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

func NewProductHandler(uc *usecase.ProductUsecase) http.Handler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "product handler is not configured")
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	path := strings.TrimRight(r.URL.Path, "/")

	if link := pathTail(path, "/store/products/by-link"); link != "" {
		p, err := h.uc.GetByLink(r.Context(), link)
		if err != nil {
			writeDomainErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
		return
	}

	id := pathTail(path, "/store/products")
	if id == "" {
		writeErr(w, http.StatusBadRequest, "missing product id")
		return
	}

	p, err := h.uc.GetByID(r.Context(), id)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
