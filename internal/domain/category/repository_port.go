package category

import "context"

// Fields is a partial update payload (field name -> new value).
// Keys follow the stored document field names: "name", "imageUrl", "count",
// "updatedAt".
type Fields map[string]any

// Repository is the persistence port for categories.
type Repository interface {
	GetBySlug(ctx context.Context, slug string) (*Category, error)
	ListAll(ctx context.Context) ([]Category, error)

	// Set writes the full document (create or overwrite) at docId = c.Slug.
	Set(ctx context.Context, c *Category) error

	// UpdateFields applies a merge-style partial update.
	UpdateFields(ctx context.Context, slug string, fields Fields) error

	Delete(ctx context.Context, slug string) error
}
