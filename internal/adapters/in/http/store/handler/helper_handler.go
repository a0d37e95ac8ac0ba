package storeHandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"greenhaven/internal/adapters/in/http/middleware"
	cartdom "greenhaven/internal/domain/cart"
	categorydom "greenhaven/internal/domain/category"
	inquirydom "greenhaven/internal/domain/inquiry"
	orderdom "greenhaven/internal/domain/order"
	productdom "greenhaven/internal/domain/product"
	usecase "greenhaven/internal/application/usecase"
)

// ============================================================
// HTTP helpers
// ============================================================

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

// writeDomainErr maps the shallow error taxonomy: invalid argument -> 400,
// not found -> 404, everything else -> 500.
func writeDomainErr(w http.ResponseWriter, err error) {
	switch {
	case err == nil:
		writeErr(w, http.StatusInternalServerError, "unknown error")
	case errors.Is(err, usecase.ErrCartInvalidArgument),
		errors.Is(err, usecase.ErrUserInvalidArgument),
		errors.Is(err, usecase.ErrInquiryInvalidArgument),
		errors.Is(err, cartdom.ErrInvalidCart),
		errors.Is(err, inquirydom.ErrInvalidInquiry),
		errors.Is(err, productdom.ErrInvalidProduct):
		writeErr(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase.ErrCartNotFound),
		errors.Is(err, productdom.ErrNotFound),
		errors.Is(err, categorydom.ErrNotFound),
		errors.Is(err, orderdom.ErrNotFound),
		errors.Is(err, inquirydom.ErrNotFound):
		writeErr(w, http.StatusNotFound, err.Error())
	default:
		writeErr(w, http.StatusInternalServerError, err.Error())
	}
}

// readOwnerID resolves the cart owner: the authenticated uid when present,
// otherwise the guest cart id from the X-Guest-Cart header (or guestCartId
// query param).
func readOwnerID(r *http.Request) string {
	if uid, ok := middleware.CurrentUserUID(r); ok {
		return uid
	}
	if g := strings.TrimSpace(r.Header.Get("X-Guest-Cart")); g != "" {
		return g
	}
	return strings.TrimSpace(r.URL.Query().Get("guestCartId"))
}

func queryInt(r *http.Request, key string, def int) int {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// queryCents parses an optional decimal price ("12.50") into cents.
func queryCents(r *http.Request, key string) *int64 {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		return nil
	}
	c := int64(f*100 + 0.5)
	return &c
}

func decodeBody(r *http.Request, dst any) error {
	defer func() { _ = r.Body.Close() }()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// pathTail returns the path segment after prefix, "" when absent.
func pathTail(path, prefix string) string {
	p := strings.TrimRight(path, "/")
	if !strings.HasPrefix(p, prefix) {
		return ""
	}
	return strings.Trim(strings.TrimPrefix(p, prefix), "/")
}
