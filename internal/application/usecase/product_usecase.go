package usecase

import (
	"context"
	"errors"
	"strings"

	productdom "greenhaven/internal/domain/product"
)

var ErrProductInvalidArgument = errors.New("product_usecase: invalid argument")

// ProductUsecase backs the admin product editors and the storefront detail
// page. Thin by design; the catalog browse path goes through the catalog
// query package instead.
type ProductUsecase struct {
	repo  productdom.Repository
	clock Clock
}

func NewProductUsecase(repo productdom.Repository, clock Clock) *ProductUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &ProductUsecase{repo: repo, clock: clock}
}

func (uc *ProductUsecase) GetByID(ctx context.Context, id string) (*productdom.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, productdom.ErrNotFound
	}
	return uc.repo.GetByID(ctx, id)
}

// GetByLink resolves a storefront slug to a product.
func (uc *ProductUsecase) GetByLink(ctx context.Context, link string) (*productdom.Product, error) {
	link = strings.TrimSpace(link)
	if link == "" {
		return nil, productdom.ErrNotFound
	}
	return uc.repo.GetByLink(ctx, link)
}

// Create validates and persists a new product. The repository assigns the
// document id when p.ID is empty.
func (uc *ProductUsecase) Create(ctx context.Context, p *productdom.Product) (*productdom.Product, error) {
	if p == nil {
		return nil, ErrProductInvalidArgument
	}
	p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update overwrites an existing product.
func (uc *ProductUsecase) Update(ctx context.Context, p *productdom.Product) (*productdom.Product, error) {
	if p == nil || strings.TrimSpace(p.ID) == "" {
		return nil, ErrProductInvalidArgument
	}
	p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}

	cur, err := uc.repo.GetByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	p.CreatedAt = cur.CreatedAt
	p.UpdatedAt = uc.clock.Now()

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete hard-deletes a product (explicit admin action only).
func (uc *ProductUsecase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrProductInvalidArgument
	}
	return uc.repo.Delete(ctx, id)
}
