package catalogQuery

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	productdom "greenhaven/internal/domain/product"
)

// fakePager serves deterministic pages out of an in-memory slice, honoring
// equality filters and the startAfter cursor (insertion order stands in for
// the sort order).
type fakePager struct {
	products []productdom.Product
	calls    int
}

func (f *fakePager) matches(p productdom.Product, flt productdom.Filter) bool {
	if flt.Category != "" && p.Category != flt.Category {
		return false
	}
	if flt.SubCategory != "" && p.SubCategory != flt.SubCategory {
		return false
	}
	if flt.Brand != "" && p.Brand != flt.Brand {
		return false
	}
	switch flt.Special {
	case "newArrival":
		if !p.NewArrival {
			return false
		}
	case "featured":
		if !p.Featured {
			return false
		}
	case "popular":
		if !p.Popular {
			return false
		}
	}
	return true
}

func (f *fakePager) ListPage(ctx context.Context, flt productdom.Filter, s productdom.Sort, limit int, startAfterID string) ([]productdom.Product, error) {
	f.calls++

	started := startAfterID == ""
	out := []productdom.Product{}
	for _, p := range f.products {
		if !started {
			if p.ID == startAfterID {
				started = true
			}
			continue
		}
		if !f.matches(p, flt) {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakePager) ListAll(ctx context.Context) ([]productdom.Product, error) {
	return append([]productdom.Product(nil), f.products...), nil
}

func cents(v int64) *int64 { return &v }

func seed(n int) []productdom.Product {
	out := make([]productdom.Product, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, productdom.Product{
			ID:         fmt.Sprintf("p%02d", i),
			Title:      fmt.Sprintf("Plant %02d", i),
			Category:   "Indoor Plants",
			Brand:      "Greenhaven",
			PriceCents: int64(1000 + i*100),
		})
	}
	return out
}

func TestPageAppliesPriceRangeRefinement(t *testing.T) {
	pager := &fakePager{products: seed(10)} // prices 1000..1900
	q := New(pager)

	res, err := q.Page(context.Background(), Params{
		PageSize:      10,
		MinPriceCents: cents(1200),
		MaxPriceCents: cents(1500),
	})
	require.NoError(t, err)

	assert.Equal(t, 10, res.RawCount)
	require.Len(t, res.Items, 4) // 1200, 1300, 1400, 1500
	for _, it := range res.Items {
		assert.GreaterOrEqual(t, it.PriceCents, int64(1200))
		assert.LessOrEqual(t, it.PriceCents, int64(1500))
	}
	// the cursor tracks the raw page, not the refined one
	assert.Equal(t, "p09", res.LastID)
}

func TestPageSearchMatchesTitleAndDescription(t *testing.T) {
	pager := &fakePager{products: []productdom.Product{
		{ID: "a", Title: "Monstera Deliciosa", Description: "large leaves"},
		{ID: "b", Title: "Boston Fern", Description: "prefers humidity, monstera-adjacent"},
		{ID: "c", Title: "Snake Plant", Description: "low light"},
	}}
	q := New(pager)

	res, err := q.Page(context.Background(), Params{Search: "MONSTERA", PageSize: 10})
	require.NoError(t, err)

	require.Len(t, res.Items, 2)
	assert.Equal(t, "a", res.Items[0].ID)
	assert.Equal(t, "b", res.Items[1].ID)
}

func TestPageMultiBrandStaysClientSide(t *testing.T) {
	pager := &fakePager{products: []productdom.Product{
		{ID: "a", Brand: "Greenhaven"},
		{ID: "b", Brand: "Terra"},
		{ID: "c", Brand: "Bloom"},
	}}
	q := New(pager)

	res, err := q.Page(context.Background(), Params{
		Brands:   []string{"terra", "Bloom"},
		PageSize: 10,
	})
	require.NoError(t, err)

	require.Len(t, res.Items, 2)
	assert.Equal(t, "b", res.Items[0].ID)
	assert.Equal(t, "c", res.Items[1].ID)
	assert.Equal(t, 3, res.RawCount, "multi-brand membership must not be pushed down")
}

func TestPageConcatenationEqualsSequentialScan(t *testing.T) {
	products := seed(25)
	pager := &fakePager{products: products}
	q := New(pager)

	var got []string
	cursor := ""
	pages := 0
	for {
		res, err := q.Page(context.Background(), Params{PageSize: 10, StartAfterID: cursor})
		require.NoError(t, err)
		if res.RawCount == 0 {
			break
		}
		for _, it := range res.Items {
			got = append(got, it.ID)
		}
		pages++
		if !res.HasMore {
			break
		}
		cursor = res.LastID
	}

	want := make([]string, 0, len(products))
	for _, p := range products {
		want = append(want, p.ID)
	}
	assert.Equal(t, want, got, "page concatenation equals the unpaginated scan, no gaps or duplicates")
	assert.Equal(t, 3, pages)
}

func TestPageHasMoreDerivedFromRawPage(t *testing.T) {
	pager := &fakePager{products: seed(10)}
	q := New(pager)

	res, err := q.Page(context.Background(), Params{PageSize: 10})
	require.NoError(t, err)
	assert.True(t, res.HasMore, "a full raw page assumes more remain, even at the exact end")

	res, err = q.Page(context.Background(), Params{PageSize: 10, StartAfterID: res.LastID})
	require.NoError(t, err)
	assert.Zero(t, res.RawCount)
	assert.False(t, res.HasMore)
}

func TestPushDownFilterAllCategoryMeansNoConstraint(t *testing.T) {
	f := pushDownFilter(Params{Category: "All", SubCategory: "Ferns"})
	assert.Empty(t, f.Category)
	assert.Empty(t, f.SubCategory, "subcategory only applies under a concrete category")

	f = pushDownFilter(Params{Category: "Indoor Plants", SubCategory: "Ferns"})
	assert.Equal(t, "Indoor Plants", f.Category)
	assert.Equal(t, "Ferns", f.SubCategory)

	f = pushDownFilter(Params{Brand: "Terra", Brands: []string{"Terra", "Bloom"}})
	assert.Empty(t, f.Brand, "single-brand push-down is disabled when a brand set is present")

	f = pushDownFilter(Params{Special: "bogus"})
	assert.Empty(t, f.Special)
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, productdom.Sort{Field: "price", Desc: false}, ParseSortKey("price-asc"))
	assert.Equal(t, productdom.Sort{Field: "price", Desc: true}, ParseSortKey("price-desc"))
	assert.Equal(t, productdom.Sort{Field: "title", Desc: false}, ParseSortKey("title-asc"))
	// unknown keys fall back to newest-first
	assert.Equal(t, productdom.Sort{Field: "createdAt", Desc: true}, ParseSortKey("relevance"))
	assert.Equal(t, productdom.Sort{Field: "createdAt", Desc: true}, ParseSortKey(""))
}

func TestPaginatorNextPrevReplaysSnapshots(t *testing.T) {
	pager := &fakePager{products: seed(25)}
	p := NewPaginator(New(pager), Params{PageSize: 10})

	page1, ok, err := p.Next(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, p.PageIndex())

	page2, ok, err := p.Next(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, p.PageIndex())
	assert.NotEqual(t, page1.Items[0].ID, page2.Items[0].ID)

	// back to page 1: identical content
	back, ok, err := p.Prev(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, p.PageIndex())
	assert.Equal(t, idsOf(page1.Items), idsOf(back.Items))

	// forward again: identical page 2
	fwd, ok, err := p.Next(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, idsOf(page2.Items), idsOf(fwd.Items))

	// step back to page 1, then Prev refuses (already on the first page)
	_, ok, err = p.Prev(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	_, ok, _ = p.Prev(context.Background())
	assert.False(t, ok)
}

func TestPaginatorWalksToTheEnd(t *testing.T) {
	pager := &fakePager{products: seed(25)}
	p := NewPaginator(New(pager), Params{PageSize: 10})

	var all []string
	for {
		res, ok, err := p.Next(context.Background())
		require.NoError(t, err)
		if !ok {
			break
		}
		all = append(all, idsOf(res.Items)...)
	}

	assert.Len(t, all, 25)
	assert.True(t, strings.HasPrefix(all[0], "p00"))

	// exhausted: further Next calls keep refusing
	_, ok, err := p.Next(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func idsOf(items []productdom.Product) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}
