package catalogQuery

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	productdom "greenhaven/internal/domain/product"
)

func TestDiscoverFacets(t *testing.T) {
	pager := &fakePager{products: []productdom.Product{
		{ID: "a", Category: "Indoor Plants", SubCategory: "Ferns", Brand: "Greenhaven"},
		{ID: "b", Category: "Indoor Plants", SubCategory: "Palms", Brand: "Terra"},
		{ID: "c", Category: "Succulents", Brand: "Greenhaven"},
		{ID: "d", Category: "  ", Brand: ""},
	}}
	q := New(pager)

	facets, err := q.DiscoverFacets(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Indoor Plants", "Succulents"}, facets.Categories)
	assert.Equal(t, []string{"Greenhaven", "Terra"}, facets.Brands)
	assert.Equal(t, []string{"Ferns", "Palms"}, facets.SubCategories["Indoor Plants"])
	assert.NotContains(t, facets.SubCategories, "Succulents")
}
