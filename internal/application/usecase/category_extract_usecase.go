package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"

	categorydom "greenhaven/internal/domain/category"
	productdom "greenhaven/internal/domain/product"
)

// ExtractSettings are the independently toggleable write policies of the
// category extraction job.
type ExtractSettings struct {
	// UpdateCounts overwrites a stored count only when it changed.
	UpdateCounts bool `json:"updateCounts"`
	// UpdateImages overwrites a stored image only when the existing one is
	// empty or a placeholder and a candidate image exists.
	UpdateImages bool `json:"updateImages"`
	// OverwriteExisting replaces existing category documents wholesale.
	OverwriteExisting bool `json:"overwriteExisting"`
}

// ExtractSummary reports what the run changed, for display.
type ExtractSummary struct {
	Created   int      `json:"created"`
	Updated   int      `json:"updated"`
	Unchanged int      `json:"unchanged"`
	Skipped   int      `json:"skipped"`

	CreatedSlugs []string `json:"createdSlugs"`
	UpdatedSlugs []string `json:"updatedSlugs"`
}

// CategoryExtractUsecase derives the category collection from the free-text
// category labels scattered across products.
//
// Writes are sequential, one remote call at a time; the first failure aborts
// the run and leaves earlier writes in place (accepted partial-failure
// window, no surrounding transaction).
//
// Idempotence: a second run over unchanged products with
// {UpdateCounts:true, UpdateImages:true, OverwriteExisting:false} performs
// zero writes.
type CategoryExtractUsecase struct {
	products   productdom.Repository
	categories categorydom.Repository
	clock      Clock
}

func NewCategoryExtractUsecase(products productdom.Repository, categories categorydom.Repository, clock Clock) *CategoryExtractUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &CategoryExtractUsecase{products: products, categories: categories, clock: clock}
}

// candidate is one accumulated taxonomy entry.
type candidate struct {
	name     string
	count    int
	imageURL string // first non-empty product image seen
}

// Run executes one extraction pass.
func (uc *CategoryExtractUsecase) Run(ctx context.Context, settings ExtractSettings) (ExtractSummary, error) {
	var sum ExtractSummary

	if uc == nil || uc.products == nil || uc.categories == nil {
		return sum, errors.New("category_extract: not configured")
	}

	products, err := uc.products.ListAll(ctx)
	if err != nil {
		return sum, err
	}
	existing, err := uc.categories.ListAll(ctx)
	if err != nil {
		return sum, err
	}

	existingBySlug := map[string]categorydom.Category{}
	for _, c := range existing {
		existingBySlug[c.Slug] = c
	}

	// Accumulate candidates keyed by slug. Slugging only lowercases and
	// hyphenates, so case variants of the same label collapse into one
	// candidate and their counts add up.
	cands := map[string]*candidate{}
	for _, p := range products {
		label := strings.TrimSpace(p.Category)
		if label == "" {
			sum.Skipped++
			continue
		}
		slug := categorydom.Slugify(label)
		if slug == "" {
			sum.Skipped++
			continue
		}

		c := cands[slug]
		if c == nil {
			c = &candidate{name: label}
			cands[slug] = c
		}
		c.count++
		if c.imageURL == "" && strings.TrimSpace(p.ImageURL) != "" {
			c.imageURL = strings.TrimSpace(p.ImageURL)
		}
	}

	// Deterministic apply order.
	slugs := make([]string, 0, len(cands))
	for s := range cands {
		slugs = append(slugs, s)
	}
	sort.Strings(slugs)

	now := uc.clock.Now()

	for _, slug := range slugs {
		cand := cands[slug]
		cur, exists := existingBySlug[slug]

		if !exists || settings.OverwriteExisting {
			doc, err := categorydom.New(cand.name, cand.imageURL, cand.count, now)
			if err != nil {
				return sum, err
			}
			doc.Slug = slug
			if exists {
				// keep the original creation stamp on overwrite
				doc.CreatedAt = cur.CreatedAt
			}
			if err := uc.categories.Set(ctx, doc); err != nil {
				return sum, err
			}
			if exists {
				sum.Updated++
				sum.UpdatedSlugs = append(sum.UpdatedSlugs, slug)
			} else {
				sum.Created++
				sum.CreatedSlugs = append(sum.CreatedSlugs, slug)
			}
			continue
		}

		// Field-level diff under the toggleable policies.
		fields := categorydom.Fields{}
		if settings.UpdateCounts && cur.Count != cand.count {
			fields["count"] = cand.count
		}
		if settings.UpdateImages && cand.imageURL != "" && categorydom.IsPlaceholderImage(cur.ImageURL) {
			fields["imageUrl"] = cand.imageURL
		}

		if len(fields) == 0 {
			sum.Unchanged++
			continue
		}

		fields["updatedAt"] = now
		if err := uc.categories.UpdateFields(ctx, slug, fields); err != nil {
			return sum, err
		}
		sum.Updated++
		sum.UpdatedSlugs = append(sum.UpdatedSlugs, slug)
	}

	log.Printf("[category_extract] run done created=%d updated=%d unchanged=%d skipped=%d",
		sum.Created, sum.Updated, sum.Unchanged, sum.Skipped)
	return sum, nil
}
