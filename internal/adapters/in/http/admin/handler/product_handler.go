package adminHandler

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	catalogQuery "greenhaven/internal/application/query/catalog"
	usecase "greenhaven/internal/application/usecase"
	productdom "greenhaven/internal/domain/product"
)

// productBody is the admin write shape. Details arrive as loose JSON and are
// narrowed to the string/bool/number union; unsupported value types are
// dropped rather than rejected.
type productBody struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`

	PriceCents int64 `json:"priceCents"`

	Category    string `json:"category"`
	SubCategory string `json:"subCategory"`
	Type        string `json:"type"`
	Link        string `json:"link"`
	Brand       string `json:"brand"`

	Stock struct {
		Available bool `json:"available"`
		Quantity  int  `json:"quantity"`
	} `json:"stock"`

	Featured   bool `json:"featured"`
	NewArrival bool `json:"newArrival"`
	Popular    bool `json:"popular"`

	Details map[string]any `json:"details"`
}

func (b productBody) toDomain(id string) *productdom.Product {
	return &productdom.Product{
		ID:          id,
		Title:       b.Title,
		Description: b.Description,
		ImageURL:    b.ImageURL,
		PriceCents:  b.PriceCents,
		Category:    b.Category,
		SubCategory: b.SubCategory,
		ProductType: b.Type,
		Link:        b.Link,
		Brand:       b.Brand,
		Stock: productdom.Stock{
			Available: b.Stock.Available,
			Quantity:  b.Stock.Quantity,
		},
		Featured:   b.Featured,
		NewArrival: b.NewArrival,
		Popular:    b.Popular,
		Details:    productdom.ParseDetails(b.Details),
	}
}

// ProductHandler serves back-office product CRUD:
//
//	GET    /admin/products           paged list (category/pageSize/startAfter)
//	POST   /admin/products           create
//	GET    /admin/products/{id}      read
//	PUT    /admin/products/{id}      full update
//	DELETE /admin/products/{id}      delete
type ProductHandler struct {
	uc    *usecase.ProductUsecase
	pager catalogQuery.Pager
}

func NewProductHandler(uc *usecase.ProductUsecase, pager catalogQuery.Pager) http.Handler {
	return &ProductHandler{uc: uc, pager: pager}
}

func (h *ProductHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "product handler is not configured")
		return
	}

	path := strings.TrimRight(r.URL.Path, "/")
	id := pathTail(path, "/admin/products")

	switch {
	case r.Method == http.MethodGet && id == "":
		h.handleList(w, r)
	case r.Method == http.MethodPost && id == "":
		h.handleCreate(w, r)
	case r.Method == http.MethodGet:
		h.handleGet(w, r, id)
	case r.Method == http.MethodPut:
		h.handleUpdate(w, r, id)
	case r.Method == http.MethodDelete:
		h.handleDelete(w, r, id)
	default:
		methodNotAllowed(w)
	}
}

func (h *ProductHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if h.pager == nil {
		writeErr(w, http.StatusInternalServerError, "product handler is not configured")
		return
	}

	q := r.URL.Query()
	limit := catalogQuery.DefaultPageSize
	if raw := strings.TrimSpace(q.Get("pageSize")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > catalogQuery.MaxPageSize {
		limit = catalogQuery.MaxPageSize
	}

	f := productdom.Filter{Category: strings.TrimSpace(q.Get("category"))}
	s := catalogQuery.ParseSortKey(strings.TrimSpace(q.Get("sort")))

	items, err := h.pager.ListPage(r.Context(), f, s, limit, strings.TrimSpace(q.Get("startAfter")))
	if err != nil {
		log.Printf("[admin_product_handler] list failed err=%v", err)
		writeDomainErr(w, err)
		return
	}

	lastID := ""
	if len(items) > 0 {
		lastID = items[len(items)-1].ID
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items":   items,
		"lastId":  lastID,
		"hasMore": len(items) == limit,
	})
}

func (h *ProductHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var body productBody
	if err := decodeBody(r, &body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	created, err := h.uc.Create(r.Context(), body.toDomain(""))
	if err != nil {
		log.Printf("[admin_product_handler] create failed title=%q err=%v", body.Title, err)
		writeDomainErr(w, err)
		return
	}

	log.Printf("[admin_product_handler] create ok id=%q title=%q", created.ID, created.Title)
	writeJSON(w, http.StatusCreated, created)
}

func (h *ProductHandler) handleGet(w http.ResponseWriter, r *http.Request, id string) {
	p, err := h.uc.GetByID(r.Context(), id)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) handleUpdate(w http.ResponseWriter, r *http.Request, id string) {
	var body productBody
	if err := decodeBody(r, &body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	updated, err := h.uc.Update(r.Context(), body.toDomain(id))
	if err != nil {
		log.Printf("[admin_product_handler] update failed id=%q err=%v", id, err)
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *ProductHandler) handleDelete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.uc.Delete(r.Context(), id); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "id": id})
}
