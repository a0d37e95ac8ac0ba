package usecase

import (
	"context"
	"errors"
	"strings"

	categorydom "greenhaven/internal/domain/category"
)

var ErrCategoryInvalidArgument = errors.New("category_usecase: invalid argument")

// CategoryUsecase backs the manual admin category editor. The derived path
// (bulk reconciliation from products) lives in CategoryExtractUsecase.
type CategoryUsecase struct {
	repo  categorydom.Repository
	clock Clock
}

func NewCategoryUsecase(repo categorydom.Repository, clock Clock) *CategoryUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &CategoryUsecase{repo: repo, clock: clock}
}

func (uc *CategoryUsecase) List(ctx context.Context) ([]categorydom.Category, error) {
	return uc.repo.ListAll(ctx)
}

func (uc *CategoryUsecase) GetBySlug(ctx context.Context, slug string) (*categorydom.Category, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, categorydom.ErrNotFound
	}
	return uc.repo.GetBySlug(ctx, slug)
}

// Create derives the slug from name and persists the document.
func (uc *CategoryUsecase) Create(ctx context.Context, name, imageURL string) (*categorydom.Category, error) {
	c, err := categorydom.New(name, imageURL, 0, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Set(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateImage replaces the category image.
func (uc *CategoryUsecase) UpdateImage(ctx context.Context, slug, imageURL string) error {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return ErrCategoryInvalidArgument
	}
	return uc.repo.UpdateFields(ctx, slug, categorydom.Fields{
		"imageUrl":  strings.TrimSpace(imageURL),
		"updatedAt": uc.clock.Now(),
	})
}

func (uc *CategoryUsecase) Delete(ctx context.Context, slug string) error {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return ErrCategoryInvalidArgument
	}
	return uc.repo.Delete(ctx, slug)
}
