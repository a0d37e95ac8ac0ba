package storeHandler

import (
	"log"
	"net/http"
	"strings"
	"time"

	catalogQuery "greenhaven/internal/application/query/catalog"
	usecase "greenhaven/internal/application/usecase"
)

// CatalogHandler serves the browse surface:
//
//	GET /store/catalog              paged, filtered product list
//	GET /store/catalog/facets       distinct categories / subcategories / brands
//	GET /store/categories           category documents (slug, name, image, count)
type CatalogHandler struct {
	query      *catalogQuery.CatalogQuery
	categories *usecase.CategoryUsecase
}

func NewCatalogHandler(query *catalogQuery.CatalogQuery, categories *usecase.CategoryUsecase) http.Handler {
	return &CatalogHandler{query: query, categories: categories}
}

func (h *CatalogHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	path := strings.TrimRight(r.URL.Path, "/")

	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	switch {
	case strings.HasSuffix(path, "/catalog/facets"):
		h.handleFacets(w, r, start)
	case strings.HasSuffix(path, "/catalog"):
		h.handlePage(w, r, start)
	case strings.HasSuffix(path, "/categories"):
		h.handleCategories(w, r, start)
	default:
		// /store/categories/{slug}
		if slug := pathTail(path, "/store/categories"); slug != "" {
			h.handleCategoryBySlug(w, r, slug)
			return
		}
		writeErr(w, http.StatusNotFound, "not found")
	}
}

func (h *CatalogHandler) handlePage(w http.ResponseWriter, r *http.Request, start time.Time) {
	if h.query == nil {
		writeErr(w, http.StatusInternalServerError, "catalog handler is not configured")
		return
	}

	q := r.URL.Query()
	params := catalogQuery.Params{
		Category:      strings.TrimSpace(q.Get("category")),
		SubCategory:   strings.TrimSpace(q.Get("subCategory")),
		Brand:         strings.TrimSpace(q.Get("brand")),
		Special:       strings.TrimSpace(q.Get("special")),
		Search:        strings.TrimSpace(q.Get("search")),
		SortKey:       strings.TrimSpace(q.Get("sort")),
		PageSize:      queryInt(r, "pageSize", catalogQuery.DefaultPageSize),
		StartAfterID:  strings.TrimSpace(q.Get("startAfter")),
		MinPriceCents: queryCents(r, "minPrice"),
		MaxPriceCents: queryCents(r, "maxPrice"),
	}
	// brands=a,b,c — multi-brand membership is refined client-side
	if raw := strings.TrimSpace(q.Get("brands")); raw != "" {
		for _, b := range strings.Split(raw, ",") {
			if b = strings.TrimSpace(b); b != "" {
				params.Brands = append(params.Brands, b)
			}
		}
	}

	res, err := h.query.Page(r.Context(), params)
	if err != nil {
		log.Printf("[store_catalog_handler] page failed params=%+v err=%v", params, err)
		writeDomainErr(w, err)
		return
	}

	log.Printf("[store_catalog_handler] page ok items=%d raw=%d hasMore=%t elapsed=%s",
		len(res.Items), res.RawCount, res.HasMore, time.Since(start))
	writeJSON(w, http.StatusOK, res)
}

func (h *CatalogHandler) handleFacets(w http.ResponseWriter, r *http.Request, start time.Time) {
	if h.query == nil {
		writeErr(w, http.StatusInternalServerError, "catalog handler is not configured")
		return
	}

	facets, err := h.query.DiscoverFacets(r.Context())
	if err != nil {
		log.Printf("[store_catalog_handler] facets failed err=%v", err)
		writeDomainErr(w, err)
		return
	}

	log.Printf("[store_catalog_handler] facets ok categories=%d brands=%d elapsed=%s",
		len(facets.Categories), len(facets.Brands), time.Since(start))
	writeJSON(w, http.StatusOK, facets)
}

func (h *CatalogHandler) handleCategories(w http.ResponseWriter, r *http.Request, start time.Time) {
	if h.categories == nil {
		writeErr(w, http.StatusInternalServerError, "catalog handler is not configured")
		return
	}

	list, err := h.categories.List(r.Context())
	if err != nil {
		log.Printf("[store_catalog_handler] categories failed err=%v", err)
		writeDomainErr(w, err)
		return
	}

	log.Printf("[store_catalog_handler] categories ok count=%d elapsed=%s", len(list), time.Since(start))
	writeJSON(w, http.StatusOK, map[string]any{"items": list})
}

func (h *CatalogHandler) handleCategoryBySlug(w http.ResponseWriter, r *http.Request, slug string) {
	if h.categories == nil {
		writeErr(w, http.StatusInternalServerError, "catalog handler is not configured")
		return
	}

	c, err := h.categories.GetBySlug(r.Context(), slug)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}
