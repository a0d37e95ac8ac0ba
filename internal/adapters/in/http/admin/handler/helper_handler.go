package adminHandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	usecase "greenhaven/internal/application/usecase"
	categorydom "greenhaven/internal/domain/category"
	inquirydom "greenhaven/internal/domain/inquiry"
	orderdom "greenhaven/internal/domain/order"
	productdom "greenhaven/internal/domain/product"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeErr(w, http.StatusMethodNotAllowed, "method_not_allowed")
}

func writeDomainErr(w http.ResponseWriter, err error) {
	switch {
	case err == nil:
		writeErr(w, http.StatusInternalServerError, "unknown error")
	case errors.Is(err, usecase.ErrProductInvalidArgument),
		errors.Is(err, usecase.ErrCategoryInvalidArgument),
		errors.Is(err, usecase.ErrInquiryInvalidArgument),
		errors.Is(err, productdom.ErrInvalidProduct):
		writeErr(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, productdom.ErrNotFound),
		errors.Is(err, categorydom.ErrNotFound),
		errors.Is(err, orderdom.ErrNotFound),
		errors.Is(err, inquirydom.ErrNotFound):
		writeErr(w, http.StatusNotFound, err.Error())
	default:
		writeErr(w, http.StatusInternalServerError, err.Error())
	}
}

func decodeBody(r *http.Request, dst any) error {
	defer func() { _ = r.Body.Close() }()
	return json.NewDecoder(r.Body).Decode(dst)
}

// pathTail returns the path segment(s) after prefix, "" when absent.
func pathTail(path, prefix string) string {
	p := strings.TrimRight(path, "/")
	if !strings.HasPrefix(p, prefix) {
		return ""
	}
	return strings.Trim(strings.TrimPrefix(p, prefix), "/")
}
