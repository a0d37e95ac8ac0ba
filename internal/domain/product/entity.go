package product

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound       = errors.New("product: not found")
	ErrInvalidProduct = errors.New("product: invalid")
)

// Stock is the per-product availability snapshot.
// Quantity is advisory only; nothing in this service reserves stock.
type Stock struct {
	Available bool `json:"available" firestore:"available"`
	Quantity  int  `json:"quantity" firestore:"quantity"`
}

// Product is a catalog item.
//   - docId = Product.ID (Firestore collection "products")
//   - Category is a free-text label; the category taxonomy is derived from it
//     by the extraction job, not enforced here.
//   - Link is a URL-safe slug used by the storefront detail page. It should be
//     unique but uniqueness is not enforced.
type Product struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`

	// PriceCents keeps money exact (no float drift in subtotals).
	PriceCents int64 `json:"priceCents"`

	Category    string `json:"category"`
	SubCategory string `json:"subCategory"`
	ProductType string `json:"type"`
	Link        string `json:"link"`
	Brand       string `json:"brand"`

	Stock Stock `json:"stock"`

	Featured   bool `json:"featured"`
	NewArrival bool `json:"newArrival"`
	Popular    bool `json:"popular"`

	// Details is an open key set with a closed value set (string|bool|number).
	Details map[string]DetailValue `json:"details"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate checks the storefront invariants:
// price >= 0, stock quantity >= 0, non-empty title.
func (p *Product) Validate() error {
	if p == nil {
		return ErrInvalidProduct
	}
	if strings.TrimSpace(p.Title) == "" {
		return ErrInvalidProduct
	}
	if p.PriceCents < 0 {
		return ErrInvalidProduct
	}
	if p.Stock.Quantity < 0 {
		return ErrInvalidProduct
	}
	return nil
}

// Normalize trims identifier-ish fields in place.
func (p *Product) Normalize() {
	if p == nil {
		return
	}
	p.ID = strings.TrimSpace(p.ID)
	p.Title = strings.TrimSpace(p.Title)
	p.Category = strings.TrimSpace(p.Category)
	p.SubCategory = strings.TrimSpace(p.SubCategory)
	p.ProductType = strings.TrimSpace(p.ProductType)
	p.Link = strings.TrimSpace(p.Link)
	p.Brand = strings.TrimSpace(p.Brand)
}
