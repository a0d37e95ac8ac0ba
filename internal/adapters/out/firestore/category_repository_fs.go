package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	categorydom "greenhaven/internal/domain/category"
)

// CategoryRepositoryFS implements category.Repository on Firestore.
//
// Collection design:
// - collection: categories
// - docId: slug (docId is the source of truth)
type CategoryRepositoryFS struct {
	Client *firestore.Client
}

func NewCategoryRepositoryFS(client *firestore.Client) *CategoryRepositoryFS {
	return &CategoryRepositoryFS{Client: client}
}

func (r *CategoryRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("categories")
}

func (r *CategoryRepositoryFS) GetBySlug(ctx context.Context, slug string) (*categorydom.Category, error) {
	if r == nil || r.Client == nil {
		return nil, errNilClient
	}
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, categorydom.ErrNotFound
	}

	snap, err := r.col().Doc(slug).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, categorydom.ErrNotFound
		}
		return nil, err
	}
	return categoryFromSnapshot(snap), nil
}

func (r *CategoryRepositoryFS) ListAll(ctx context.Context) ([]categorydom.Category, error) {
	if r == nil || r.Client == nil {
		return nil, errNilClient
	}

	it := r.col().OrderBy("name", firestore.Asc).Documents(ctx)
	defer it.Stop()

	var out []categorydom.Category
	for {
		snap, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, *categoryFromSnapshot(snap))
	}
	return out, nil
}

// Set writes the full document at docId = c.Slug (create or overwrite).
func (r *CategoryRepositoryFS) Set(ctx context.Context, c *categorydom.Category) error {
	if r == nil || r.Client == nil {
		return errNilClient
	}
	if c == nil || strings.TrimSpace(c.Slug) == "" {
		return categorydom.ErrInvalidCategory
	}

	_, err := r.col().Doc(strings.TrimSpace(c.Slug)).Set(ctx, map[string]any{
		"name":      c.Name,
		"imageUrl":  c.ImageURL,
		"count":     c.Count,
		"createdAt": c.CreatedAt,
		"updatedAt": c.UpdatedAt,
	})
	return err
}

// UpdateFields applies a merge-style partial update.
func (r *CategoryRepositoryFS) UpdateFields(ctx context.Context, slug string, fields categorydom.Fields) error {
	if r == nil || r.Client == nil {
		return errNilClient
	}
	slug = strings.TrimSpace(slug)
	if slug == "" || len(fields) == 0 {
		return categorydom.ErrInvalidCategory
	}

	updates := make([]firestore.Update, 0, len(fields))
	for k, v := range fields {
		updates = append(updates, firestore.Update{Path: k, Value: v})
	}

	_, err := r.col().Doc(slug).Update(ctx, updates)
	if err != nil && isNotFound(err) {
		return categorydom.ErrNotFound
	}
	return err
}

func (r *CategoryRepositoryFS) Delete(ctx context.Context, slug string) error {
	if r == nil || r.Client == nil {
		return errNilClient
	}
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return categorydom.ErrNotFound
	}

	_, err := r.col().Doc(slug).Delete(ctx)
	return err
}

func categoryFromSnapshot(snap *firestore.DocumentSnapshot) *categorydom.Category {
	c := &categorydom.Category{Slug: snap.Ref.ID}

	raw := snap.Data()
	if raw == nil {
		return c
	}

	c.Name = asString(raw["name"])
	c.ImageURL = asString(raw["imageUrl"])
	c.Count = asInt(raw["count"])
	if t, ok := asTime(raw["createdAt"]); ok {
		c.CreatedAt = t
	}
	if t, ok := asTime(raw["updatedAt"]); ok {
		c.UpdatedAt = t
	}
	return c
}
