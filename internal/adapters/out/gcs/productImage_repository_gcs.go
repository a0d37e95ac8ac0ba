package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/storage"
)

// ProductImageRepositoryGCS stores product/category images in GCS.
//
// Layout (single bucket):
// - bucket: <PRODUCT_IMAGE_BUCKET>
// - objectPath: products/{productId}/{yyyyMMddHHmmss}-<fileName>
//               categories/{slug}/<fileName>
//
// Public access:
//   - The bucket is expected to grant "allUsers: Storage Object Viewer"
//     (uniform access), so uploaded objects are publicly readable without
//     per-object ACL changes.
type ProductImageRepositoryGCS struct {
	Client *storage.Client
	Bucket string
}

func NewProductImageRepositoryGCS(client *storage.Client, bucket string) *ProductImageRepositoryGCS {
	return &ProductImageRepositoryGCS{
		Client: client,
		Bucket: strings.TrimSpace(bucket),
	}
}

func (r *ProductImageRepositoryGCS) bucket() (*storage.BucketHandle, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("productImage_repository_gcs: storage client is nil")
	}
	if strings.TrimSpace(r.Bucket) == "" {
		return nil, errors.New("productImage_repository_gcs: bucket is empty")
	}
	return r.Client.Bucket(strings.TrimSpace(r.Bucket)), nil
}

// UploadProductImage streams body into the product prefix and returns the
// public URL.
func (r *ProductImageRepositoryGCS) UploadProductImage(ctx context.Context, productID, fileName, contentType string, body io.Reader) (string, error) {
	pid := strings.TrimSpace(productID)
	if pid == "" {
		return "", errors.New("productImage_repository_gcs: productID is empty")
	}
	objectPath := fmt.Sprintf("products/%s/%s-%s",
		pid,
		time.Now().UTC().Format("20060102150405"),
		sanitizeFileName(fileName),
	)
	return r.upload(ctx, objectPath, contentType, body)
}

// UploadCategoryImage streams body into the category prefix and returns the
// public URL.
func (r *ProductImageRepositoryGCS) UploadCategoryImage(ctx context.Context, slug, fileName, contentType string, body io.Reader) (string, error) {
	s := strings.TrimSpace(slug)
	if s == "" {
		return "", errors.New("productImage_repository_gcs: slug is empty")
	}
	objectPath := fmt.Sprintf("categories/%s/%s", s, sanitizeFileName(fileName))
	return r.upload(ctx, objectPath, contentType, body)
}

func (r *ProductImageRepositoryGCS) upload(ctx context.Context, objectPath, contentType string, body io.Reader) (string, error) {
	bh, err := r.bucket()
	if err != nil {
		return "", err
	}
	if body == nil {
		return "", errors.New("productImage_repository_gcs: body is nil")
	}

	w := bh.Object(objectPath).NewWriter(ctx)
	if ct := strings.TrimSpace(contentType); ct != "" {
		w.ContentType = ct
	}
	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("productImage_repository_gcs: upload failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("productImage_repository_gcs: close failed: %w", err)
	}

	return PublicURL(r.Bucket, objectPath), nil
}

// DeleteObject removes one object (best-effort caller side; missing objects
// are not an error).
func (r *ProductImageRepositoryGCS) DeleteObject(ctx context.Context, objectPath string) error {
	bh, err := r.bucket()
	if err != nil {
		return err
	}
	obj := strings.TrimLeft(strings.TrimSpace(objectPath), "/")
	if obj == "" {
		return errors.New("productImage_repository_gcs: objectPath is empty")
	}

	err = bh.Object(obj).Delete(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil
	}
	return err
}

func sanitizeFileName(name string) string {
	n := strings.TrimSpace(name)
	if n == "" {
		return "image"
	}
	n = strings.ReplaceAll(n, " ", "-")
	n = strings.ReplaceAll(n, "/", "-")
	return n
}
