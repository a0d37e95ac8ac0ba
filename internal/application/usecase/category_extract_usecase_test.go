package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	categorydom "greenhaven/internal/domain/category"
	productdom "greenhaven/internal/domain/product"
)

// ------------------------------------------------------------
// fakes
// ------------------------------------------------------------

// fakeProductRepo only implements the ListAll path the extraction uses.
type fakeProductRepo struct {
	products []productdom.Product
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*productdom.Product, error) {
	return nil, productdom.ErrNotFound
}

func (r *fakeProductRepo) GetByLink(ctx context.Context, link string) (*productdom.Product, error) {
	return nil, productdom.ErrNotFound
}

func (r *fakeProductRepo) GetByIDs(ctx context.Context, ids []string) (map[string]*productdom.Product, error) {
	return map[string]*productdom.Product{}, nil
}

func (r *fakeProductRepo) Create(ctx context.Context, p *productdom.Product) error { return nil }
func (r *fakeProductRepo) Update(ctx context.Context, p *productdom.Product) error { return nil }
func (r *fakeProductRepo) Delete(ctx context.Context, id string) error             { return nil }

func (r *fakeProductRepo) ListPage(ctx context.Context, f productdom.Filter, s productdom.Sort, limit int, startAfterID string) ([]productdom.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) ListAll(ctx context.Context) ([]productdom.Product, error) {
	return append([]productdom.Product(nil), r.products...), nil
}

type fakeCategoryRepo struct {
	bySlug map[string]categorydom.Category

	sets    int
	updates int
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{bySlug: map[string]categorydom.Category{}}
}

func (r *fakeCategoryRepo) GetBySlug(ctx context.Context, slug string) (*categorydom.Category, error) {
	c, ok := r.bySlug[slug]
	if !ok {
		return nil, categorydom.ErrNotFound
	}
	return &c, nil
}

func (r *fakeCategoryRepo) ListAll(ctx context.Context) ([]categorydom.Category, error) {
	out := make([]categorydom.Category, 0, len(r.bySlug))
	for _, c := range r.bySlug {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Set(ctx context.Context, c *categorydom.Category) error {
	r.sets++
	r.bySlug[c.Slug] = *c
	return nil
}

func (r *fakeCategoryRepo) UpdateFields(ctx context.Context, slug string, fields categorydom.Fields) error {
	r.updates++
	c, ok := r.bySlug[slug]
	if !ok {
		return categorydom.ErrNotFound
	}
	if v, ok := fields["count"]; ok {
		c.Count = v.(int)
	}
	if v, ok := fields["imageUrl"]; ok {
		c.ImageURL = v.(string)
	}
	if v, ok := fields["updatedAt"]; ok {
		c.UpdatedAt = v.(time.Time)
	}
	r.bySlug[slug] = c
	return nil
}

func (r *fakeCategoryRepo) Delete(ctx context.Context, slug string) error {
	delete(r.bySlug, slug)
	return nil
}

func newExtractUCForTest(products []productdom.Product, categories *fakeCategoryRepo) *CategoryExtractUsecase {
	return NewCategoryExtractUsecase(
		&fakeProductRepo{products: products},
		categories,
		fakeClock{t: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)},
	)
}

func defaultSettings() ExtractSettings {
	return ExtractSettings{UpdateCounts: true, UpdateImages: true}
}

// ------------------------------------------------------------
// tests
// ------------------------------------------------------------

func TestExtractCreatesCategoriesFromProducts(t *testing.T) {
	cats := newFakeCategoryRepo()
	uc := newExtractUCForTest([]productdom.Product{
		{ID: "p1", Category: "Indoor Plants", ImageURL: "https://cdn/p1.jpg"},
		{ID: "p2", Category: "Indoor Plants"},
		{ID: "p3", Category: "Succulents", ImageURL: "https://cdn/p3.jpg"},
		{ID: "p4", Category: ""},
	}, cats)

	sum, err := uc.Run(context.Background(), defaultSettings())
	require.NoError(t, err)

	assert.Equal(t, 2, sum.Created)
	assert.Equal(t, 0, sum.Updated)
	assert.Equal(t, 1, sum.Skipped, "products without a category label are skipped")
	assert.Equal(t, []string{"indoor-plants", "succulents"}, sum.CreatedSlugs)

	indoor := cats.bySlug["indoor-plants"]
	assert.Equal(t, "Indoor Plants", indoor.Name)
	assert.Equal(t, 2, indoor.Count)
	assert.Equal(t, "https://cdn/p1.jpg", indoor.ImageURL, "first non-empty product image wins")
}

func TestExtractCaseVariantsCollapseIntoOneCategory(t *testing.T) {
	cats := newFakeCategoryRepo()
	uc := newExtractUCForTest([]productdom.Product{
		{ID: "p1", Category: "Ferns"},
		{ID: "p2", Category: "ferns"},
	}, cats)

	sum, err := uc.Run(context.Background(), defaultSettings())
	require.NoError(t, err)

	assert.Equal(t, 1, sum.Created)
	require.Contains(t, cats.bySlug, "ferns")
	assert.Equal(t, 2, cats.bySlug["ferns"].Count)
}

func TestExtractSecondRunIsIdempotent(t *testing.T) {
	cats := newFakeCategoryRepo()
	products := []productdom.Product{
		{ID: "p1", Category: "Indoor Plants", ImageURL: "https://cdn/p1.jpg"},
		{ID: "p2", Category: "Succulents", ImageURL: "https://cdn/p2.jpg"},
	}

	uc := newExtractUCForTest(products, cats)
	_, err := uc.Run(context.Background(), defaultSettings())
	require.NoError(t, err)

	writesAfterFirst := cats.sets + cats.updates

	sum, err := uc.Run(context.Background(), defaultSettings())
	require.NoError(t, err)

	assert.Equal(t, 0, sum.Created)
	assert.Equal(t, 0, sum.Updated)
	assert.Equal(t, 2, sum.Unchanged)
	assert.Equal(t, writesAfterFirst, cats.sets+cats.updates, "second run over unchanged products performs zero writes")
}

func TestExtractUpdatesCountOnlyWhenChanged(t *testing.T) {
	cats := newFakeCategoryRepo()
	cats.bySlug["ferns"] = categorydom.Category{
		Slug: "ferns", Name: "Ferns", Count: 1, ImageURL: "https://cdn/ferns.jpg",
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	uc := newExtractUCForTest([]productdom.Product{
		{ID: "p1", Category: "Ferns"},
		{ID: "p2", Category: "Ferns"},
		{ID: "p3", Category: "Ferns"},
	}, cats)

	sum, err := uc.Run(context.Background(), defaultSettings())
	require.NoError(t, err)

	assert.Equal(t, 1, sum.Updated)
	assert.Equal(t, 3, cats.bySlug["ferns"].Count)
	assert.Equal(t, "https://cdn/ferns.jpg", cats.bySlug["ferns"].ImageURL, "real image is never replaced")
}

func TestExtractReplacesPlaceholderImageOnly(t *testing.T) {
	cats := newFakeCategoryRepo()
	cats.bySlug["ferns"] = categorydom.Category{
		Slug: "ferns", Name: "Ferns", Count: 1,
		ImageURL:  "https://cdn/placeholder.png",
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	uc := newExtractUCForTest([]productdom.Product{
		{ID: "p1", Category: "Ferns", ImageURL: "https://cdn/real-fern.jpg"},
	}, cats)

	sum, err := uc.Run(context.Background(), defaultSettings())
	require.NoError(t, err)

	assert.Equal(t, 1, sum.Updated)
	assert.Equal(t, "https://cdn/real-fern.jpg", cats.bySlug["ferns"].ImageURL)
}

func TestExtractPoliciesOffMeansNoWrites(t *testing.T) {
	cats := newFakeCategoryRepo()
	cats.bySlug["ferns"] = categorydom.Category{
		Slug: "ferns", Name: "Ferns", Count: 1,
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	uc := newExtractUCForTest([]productdom.Product{
		{ID: "p1", Category: "Ferns", ImageURL: "https://cdn/f.jpg"},
		{ID: "p2", Category: "Ferns"},
	}, cats)

	sum, err := uc.Run(context.Background(), ExtractSettings{})
	require.NoError(t, err)

	assert.Equal(t, 1, sum.Unchanged)
	assert.Zero(t, cats.updates)
	assert.Zero(t, cats.sets)
}

func TestExtractOverwriteKeepsCreationStamp(t *testing.T) {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cats := newFakeCategoryRepo()
	cats.bySlug["ferns"] = categorydom.Category{
		Slug: "ferns", Name: "ferns", Count: 99,
		ImageURL:  "https://cdn/old.jpg",
		CreatedAt: created,
	}

	uc := newExtractUCForTest([]productdom.Product{
		{ID: "p1", Category: "Ferns", ImageURL: "https://cdn/new.jpg"},
	}, cats)

	sum, err := uc.Run(context.Background(), ExtractSettings{OverwriteExisting: true})
	require.NoError(t, err)

	assert.Equal(t, 1, sum.Updated)
	got := cats.bySlug["ferns"]
	assert.Equal(t, 1, got.Count)
	assert.Equal(t, "Ferns", got.Name)
	assert.Equal(t, created, got.CreatedAt, "overwrite preserves the original creation stamp")
}
