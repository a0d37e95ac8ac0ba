package product

import "context"

// Filter holds the equality constraints the document store can push down.
// Range/membership/substring refinement happens client-side in the catalog
// query layer, not here.
type Filter struct {
	Category    string
	SubCategory string
	Brand       string

	// Special selects one curated boolean flag: "newArrival" | "featured" | "popular".
	Special string
}

// Sort is a single-field sort specification.
// Field is one of: "price", "title", "createdAt". Implementations add a
// document-id tiebreaker so cursors stay stable.
type Sort struct {
	Field string
	Desc  bool
}

// Repository is the persistence port for products.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Product, error)
	GetByLink(ctx context.Context, link string) (*Product, error)

	// GetByIDs returns found products keyed by id; missing ids are absent
	// (not an error). Used by the cart subtotal join.
	GetByIDs(ctx context.Context, ids []string) (map[string]*Product, error)

	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id string) error

	// ListPage returns at most limit products ordered by sort, starting
	// after the document startAfterID (empty = first page).
	ListPage(ctx context.Context, f Filter, s Sort, limit int, startAfterID string) ([]Product, error)

	// ListAll scans the whole collection. Used only by facet discovery and
	// the category extraction job; does not scale past small catalogs.
	ListAll(ctx context.Context) ([]Product, error)
}
