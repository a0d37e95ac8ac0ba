package adminHandler

import (
	"log"
	"mime/multipart"
	"net/http"
	"strings"

	gcsout "greenhaven/internal/adapters/out/gcs"
	usecase "greenhaven/internal/application/usecase"
)

const maxUploadBytes = 10 << 20 // 10 MiB

// UploadHandler accepts multipart image uploads and points the owning
// document at the resulting public URL:
//
//	POST /admin/uploads/products/{id}       form field "file"
//	POST /admin/uploads/categories/{slug}   form field "file"
type UploadHandler struct {
	images     *gcsout.ProductImageRepositoryGCS
	products   *usecase.ProductUsecase
	categories *usecase.CategoryUsecase
}

func NewUploadHandler(images *gcsout.ProductImageRepositoryGCS, products *usecase.ProductUsecase, categories *usecase.CategoryUsecase) http.Handler {
	return &UploadHandler{images: images, products: products, categories: categories}
}

func (h *UploadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.images == nil {
		writeErr(w, http.StatusInternalServerError, "upload handler is not configured")
		return
	}
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	path := strings.TrimRight(r.URL.Path, "/")

	if id := pathTail(path, "/admin/uploads/products"); id != "" {
		h.handleProductImage(w, r, id)
		return
	}
	if slug := pathTail(path, "/admin/uploads/categories"); slug != "" {
		h.handleCategoryImage(w, r, slug)
		return
	}
	writeErr(w, http.StatusNotFound, "not found")
}

func (h *UploadHandler) handleProductImage(w http.ResponseWriter, r *http.Request, id string) {
	if h.products == nil {
		writeErr(w, http.StatusInternalServerError, "upload handler is not configured")
		return
	}

	// the product must exist before we attach an image to it
	p, err := h.products.GetByID(r.Context(), id)
	if err != nil {
		writeDomainErr(w, err)
		return
	}

	file, header, contentType, ok := readUploadFile(w, r)
	if !ok {
		return
	}
	defer func() { _ = file.Close() }()

	url, err := h.images.UploadProductImage(r.Context(), id, header.Filename, contentType, file)
	if err != nil {
		log.Printf("[admin_upload_handler] product upload failed id=%q file=%q err=%v", id, header.Filename, err)
		writeErr(w, http.StatusInternalServerError, "upload failed")
		return
	}

	p.ImageURL = url
	if _, err := h.products.Update(r.Context(), p); err != nil {
		log.Printf("[admin_upload_handler] imageUrl update failed id=%q err=%v", id, err)
		writeDomainErr(w, err)
		return
	}

	log.Printf("[admin_upload_handler] product image ok id=%q url=%q", id, url)
	writeJSON(w, http.StatusOK, map[string]any{"imageUrl": url})
}

func (h *UploadHandler) handleCategoryImage(w http.ResponseWriter, r *http.Request, slug string) {
	if h.categories == nil {
		writeErr(w, http.StatusInternalServerError, "upload handler is not configured")
		return
	}

	file, header, contentType, ok := readUploadFile(w, r)
	if !ok {
		return
	}
	defer func() { _ = file.Close() }()

	url, err := h.images.UploadCategoryImage(r.Context(), slug, header.Filename, contentType, file)
	if err != nil {
		log.Printf("[admin_upload_handler] category upload failed slug=%q file=%q err=%v", slug, header.Filename, err)
		writeErr(w, http.StatusInternalServerError, "upload failed")
		return
	}

	if err := h.categories.UpdateImage(r.Context(), slug, url); err != nil {
		writeDomainErr(w, err)
		return
	}

	log.Printf("[admin_upload_handler] category image ok slug=%q url=%q", slug, url)
	writeJSON(w, http.StatusOK, map[string]any{"imageUrl": url})
}

// readUploadFile pulls the "file" part out of a multipart form. It writes the
// error response itself when the form is unusable.
func readUploadFile(w http.ResponseWriter, r *http.Request) (multipart.File, *multipart.FileHeader, string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid multipart form")
		return nil, nil, "", false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeErr(w, http.StatusBadRequest, `missing form field "file"`)
		return nil, nil, "", false
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return file, header, contentType, true
}
