package catalogQuery

import (
	"context"
	"sort"
	"strings"
)

// Facets are the distinct filterable values for the browse sidebar.
type Facets struct {
	Categories []string `json:"categories"`
	Brands     []string `json:"brands"`

	// SubCategories maps category -> its distinct subcategories.
	SubCategories map[string][]string `json:"subCategories"`
}

// DiscoverFacets scans the whole product collection once and derives the
// distinct category/brand/subcategory values. O(N) full-collection read;
// acceptable only for small catalogs (no faceted-search index exists).
func (q *CatalogQuery) DiscoverFacets(ctx context.Context) (Facets, error) {
	out := Facets{SubCategories: map[string][]string{}}

	products, err := q.Products.ListAll(ctx)
	if err != nil {
		return out, err
	}

	cats := map[string]struct{}{}
	brands := map[string]struct{}{}
	subs := map[string]map[string]struct{}{}

	for _, p := range products {
		cat := strings.TrimSpace(p.Category)
		if cat != "" {
			cats[cat] = struct{}{}
			if sub := strings.TrimSpace(p.SubCategory); sub != "" {
				if subs[cat] == nil {
					subs[cat] = map[string]struct{}{}
				}
				subs[cat][sub] = struct{}{}
			}
		}
		if b := strings.TrimSpace(p.Brand); b != "" {
			brands[b] = struct{}{}
		}
	}

	out.Categories = sortedKeys(cats)
	out.Brands = sortedKeys(brands)
	for cat, set := range subs {
		out.SubCategories[cat] = sortedKeys(set)
	}
	return out, nil
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
