package adminHandler

import (
	"log"
	"net/http"
	"strings"
	"time"

	usecase "greenhaven/internal/application/usecase"
)

// CategoryHandler serves back-office category maintenance:
//
//	GET    /admin/categories                 list
//	POST   /admin/categories                 create {name, imageUrl}
//	PUT    /admin/categories/{slug}/image    set image {imageUrl}
//	DELETE /admin/categories/{slug}          delete
//	POST   /admin/categories/extract         run extraction from the product corpus
type CategoryHandler struct {
	uc      *usecase.CategoryUsecase
	extract *usecase.CategoryExtractUsecase
}

func NewCategoryHandler(uc *usecase.CategoryUsecase, extract *usecase.CategoryExtractUsecase) http.Handler {
	return &CategoryHandler{uc: uc, extract: extract}
}

func (h *CategoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "category handler is not configured")
		return
	}

	path := strings.TrimRight(r.URL.Path, "/")
	tail := pathTail(path, "/admin/categories")

	switch {
	case r.Method == http.MethodPost && tail == "extract":
		h.handleExtract(w, r)
	case r.Method == http.MethodGet && tail == "":
		h.handleList(w, r)
	case r.Method == http.MethodPost && tail == "":
		h.handleCreate(w, r)
	case r.Method == http.MethodPut && strings.HasSuffix(tail, "/image"):
		h.handleSetImage(w, r, strings.TrimSuffix(tail, "/image"))
	case r.Method == http.MethodDelete && tail != "":
		h.handleDelete(w, r, tail)
	default:
		methodNotAllowed(w)
	}
}

func (h *CategoryHandler) handleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.uc.List(r.Context())
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": list})
}

func (h *CategoryHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string `json:"name"`
		ImageURL string `json:"imageUrl"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	c, err := h.uc.Create(r.Context(), body.Name, body.ImageURL)
	if err != nil {
		writeDomainErr(w, err)
		return
	}

	log.Printf("[admin_category_handler] create ok slug=%q name=%q", c.Slug, c.Name)
	writeJSON(w, http.StatusCreated, c)
}

func (h *CategoryHandler) handleSetImage(w http.ResponseWriter, r *http.Request, slug string) {
	slug = strings.Trim(slug, "/")
	if slug == "" {
		writeErr(w, http.StatusBadRequest, "missing category slug")
		return
	}

	var body struct {
		ImageURL string `json:"imageUrl"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := h.uc.UpdateImage(r.Context(), slug, body.ImageURL); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "slug": slug})
}

func (h *CategoryHandler) handleDelete(w http.ResponseWriter, r *http.Request, slug string) {
	if err := h.uc.Delete(r.Context(), slug); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "slug": slug})
}

// handleExtract runs the product->category extraction job. The three policy
// flags default to true; the body may switch any of them off.
func (h *CategoryHandler) handleExtract(w http.ResponseWriter, r *http.Request) {
	if h.extract == nil {
		writeErr(w, http.StatusInternalServerError, "extract usecase is not configured")
		return
	}

	settings := usecase.ExtractSettings{
		UpdateCounts: true,
		UpdateImages: true,
	}
	if r.ContentLength > 0 {
		var body struct {
			UpdateCounts      *bool `json:"updateCounts"`
			UpdateImages      *bool `json:"updateImages"`
			OverwriteExisting *bool `json:"overwriteExisting"`
		}
		if err := decodeBody(r, &body); err != nil {
			writeErr(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if body.UpdateCounts != nil {
			settings.UpdateCounts = *body.UpdateCounts
		}
		if body.UpdateImages != nil {
			settings.UpdateImages = *body.UpdateImages
		}
		if body.OverwriteExisting != nil {
			settings.OverwriteExisting = *body.OverwriteExisting
		}
	}

	start := time.Now()
	summary, err := h.extract.Run(r.Context(), settings)
	if err != nil {
		log.Printf("[admin_category_handler] extract failed err=%v", err)
		writeDomainErr(w, err)
		return
	}

	log.Printf("[admin_category_handler] extract ok created=%d updated=%d unchanged=%d skipped=%d elapsed=%s",
		summary.Created, summary.Updated, summary.Unchanged, summary.Skipped, time.Since(start))
	writeJSON(w, http.StatusOK, summary)
}
