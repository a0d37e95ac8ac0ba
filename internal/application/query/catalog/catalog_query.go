package catalogQuery

import (
	"context"
	"errors"
	"log"
	"strings"

	productdom "greenhaven/internal/domain/product"
)

// Pager is the subset of the product repository the browse path needs.
// Kept narrow so tests can drive the query with an in-memory page source.
type Pager interface {
	ListPage(ctx context.Context, f productdom.Filter, s productdom.Sort, limit int, startAfterID string) ([]productdom.Product, error)
	ListAll(ctx context.Context) ([]productdom.Product, error)
}

const (
	DefaultPageSize = 12
	MaxPageSize     = 60
)

// Params is one browse request: the push-down dimensions plus the
// client-side refinement dimensions.
//
// Push-down (remote equality filters): Category, SubCategory, Brand, Special.
// Client-side only: Search (substring on title+description), Brands
// (multi-brand membership), MinPriceCents/MaxPriceCents (price range).
// The split exists because the document store cannot combine IN/range
// constraints with the other filters reliably.
type Params struct {
	Category    string
	SubCategory string
	Brand       string
	Special     string // "newArrival" | "featured" | "popular"

	Search string
	Brands []string

	// nil = unbounded on that side
	MinPriceCents *int64
	MaxPriceCents *int64

	// SortKey is a "field-direction" compound key, e.g. "price-asc".
	SortKey string

	PageSize     int
	StartAfterID string
}

// Result is one refined page.
type Result struct {
	Items []productdom.Product `json:"items"`

	// RawCount is the pre-refinement fetch size. HasMore is derived from it
	// (full raw page => assume more), which can over- or under-shoot when
	// client-side refinement is active; both counts are surfaced so callers
	// can tell the difference.
	RawCount int    `json:"rawCount"`
	LastID   string `json:"lastId"`
	HasMore  bool   `json:"hasMore"`
}

// CatalogQuery executes filtered, cursor-paginated catalog reads.
type CatalogQuery struct {
	Products Pager
}

func New(products Pager) *CatalogQuery {
	return &CatalogQuery{Products: products}
}

// Page fetches one page: push-down filters + sort + limit + cursor on the
// remote query, then the in-memory refinement pass.
func (q *CatalogQuery) Page(ctx context.Context, p Params) (Result, error) {
	if q == nil || q.Products == nil {
		return Result{}, errors.New("catalog query: pager is nil")
	}

	limit := p.PageSize
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	filter := pushDownFilter(p)
	sort := ParseSortKey(p.SortKey)

	raw, err := q.Products.ListPage(ctx, filter, sort, limit, strings.TrimSpace(p.StartAfterID))
	if err != nil {
		log.Printf("[catalog] page fetch error category=%q err=%v", filter.Category, err)
		return Result{}, err
	}

	res := Result{RawCount: len(raw)}
	if len(raw) == 0 {
		return res, nil
	}

	// forward cursor advances on the raw page, not the refined one
	res.LastID = raw[len(raw)-1].ID
	res.HasMore = len(raw) == limit

	res.Items = Refine(raw, p)
	return res, nil
}

// Refine applies the client-side pass: free-text substring, multi-brand
// membership, price range. Order preserved; never grows the input.
func Refine(items []productdom.Product, p Params) []productdom.Product {
	search := strings.ToLower(strings.TrimSpace(p.Search))

	brandSet := map[string]struct{}{}
	for _, b := range p.Brands {
		b = strings.TrimSpace(b)
		if b != "" {
			brandSet[strings.ToLower(b)] = struct{}{}
		}
	}

	out := make([]productdom.Product, 0, len(items))
	for _, it := range items {
		if search != "" &&
			!strings.Contains(strings.ToLower(it.Title), search) &&
			!strings.Contains(strings.ToLower(it.Description), search) {
			continue
		}
		if len(brandSet) > 0 {
			if _, ok := brandSet[strings.ToLower(strings.TrimSpace(it.Brand))]; !ok {
				continue
			}
		}
		if p.MinPriceCents != nil && it.PriceCents < *p.MinPriceCents {
			continue
		}
		if p.MaxPriceCents != nil && it.PriceCents > *p.MaxPriceCents {
			continue
		}
		out = append(out, it)
	}
	return out
}

// pushDownFilter maps Params to the remote equality constraints.
// SubCategory only applies when a concrete category is selected; "All" (or
// empty) means no category constraint at all.
func pushDownFilter(p Params) productdom.Filter {
	f := productdom.Filter{}

	cat := strings.TrimSpace(p.Category)
	if cat != "" && !strings.EqualFold(cat, "All") {
		f.Category = cat
		f.SubCategory = strings.TrimSpace(p.SubCategory)
	}

	// Single brand pushes down; multi-brand stays client-side.
	if len(p.Brands) == 0 {
		f.Brand = strings.TrimSpace(p.Brand)
	}

	switch strings.TrimSpace(p.Special) {
	case "newArrival", "featured", "popular":
		f.Special = strings.TrimSpace(p.Special)
	}

	return f
}

// ParseSortKey splits a "field-direction" compound key.
// Unknown fields fall back to createdAt descending (newest first).
func ParseSortKey(key string) productdom.Sort {
	key = strings.TrimSpace(key)

	field := key
	dir := ""
	if i := strings.LastIndex(key, "-"); i > 0 {
		field = key[:i]
		dir = key[i+1:]
	}

	switch field {
	case "price", "title", "createdAt":
	default:
		return productdom.Sort{Field: "createdAt", Desc: true}
	}

	return productdom.Sort{Field: field, Desc: strings.EqualFold(dir, "desc")}
}
