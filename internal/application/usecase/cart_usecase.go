package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	cartdom "greenhaven/internal/domain/cart"
	productdom "greenhaven/internal/domain/product"
)

var (
	ErrCartInvalidArgument = errors.New("cart_usecase: invalid argument")
	ErrCartNotFound        = errors.New("cart_usecase: not found")
)

// Clock provides current time (for testability).
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// SystemClock returns the real clock.
func SystemClock() Clock { return systemClock{} }

// PriceReader is the subset of the product repository the subtotal join needs.
type PriceReader interface {
	GetByIDs(ctx context.Context, ids []string) (map[string]*productdom.Product, error)
}

// CartUsecase coordinates cart operations for both signed-in owners
// (ownerID = Firebase uid) and guests (ownerID = guest cart id).
//
// Consistency model (accepted): each mutation is a client-side
// read-modify-write with no server-side arbitration; concurrent writers to
// the same cart race and the last writer wins.
type CartUsecase struct {
	repo   cartdom.Repository
	prices PriceReader
	clock  Clock
}

func NewCartUsecase(repo cartdom.Repository, prices PriceReader) *CartUsecase {
	return NewCartUsecaseWithClock(repo, prices, nil)
}

// NewCartUsecaseWithClock is useful for tests.
func NewCartUsecaseWithClock(repo cartdom.Repository, prices PriceReader, clock Clock) *CartUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &CartUsecase{repo: repo, prices: prices, clock: clock}
}

// Get returns the cart for ownerID, or ErrCartNotFound when absent.
func (uc *CartUsecase) Get(ctx context.Context, ownerID string) (*cartdom.Cart, error) {
	oid := strings.TrimSpace(ownerID)
	if oid == "" {
		return nil, ErrCartInvalidArgument
	}

	c, err := uc.repo.GetByOwnerID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCartNotFound
	}
	return c, nil
}

// GetOrCreate returns an existing cart; if absent, creates an empty one and
// persists it (the "initialized empty on first access" lifecycle).
func (uc *CartUsecase) GetOrCreate(ctx context.Context, ownerID string) (*cartdom.Cart, error) {
	oid := strings.TrimSpace(ownerID)
	if oid == "" {
		return nil, ErrCartInvalidArgument
	}

	c, err := uc.repo.GetByOwnerID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if c != nil {
		return c, nil
	}

	c, err = cartdom.NewCart(oid, nil, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Upsert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// AddItem increments qty for productID (merge-on-add). qty must be >= 1.
func (uc *CartUsecase) AddItem(ctx context.Context, ownerID, productID string, qty int) (*cartdom.Cart, error) {
	oid := strings.TrimSpace(ownerID)
	pid := strings.TrimSpace(productID)
	if oid == "" || pid == "" || qty < 1 {
		return nil, ErrCartInvalidArgument
	}

	now := uc.clock.Now()

	c, err := uc.repo.GetByOwnerID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if c == nil {
		c, err = cartdom.NewCart(oid, nil, now)
		if err != nil {
			return nil, err
		}
	}

	if err := c.Add(pid, qty, now); err != nil {
		return nil, err
	}
	return c, uc.persist(ctx, c)
}

// SetItemQty sets qty for productID. qty < 1 removes the line item.
func (uc *CartUsecase) SetItemQty(ctx context.Context, ownerID, productID string, qty int) (*cartdom.Cart, error) {
	oid := strings.TrimSpace(ownerID)
	pid := strings.TrimSpace(productID)
	if oid == "" || pid == "" {
		return nil, ErrCartInvalidArgument
	}

	now := uc.clock.Now()

	c, err := uc.repo.GetByOwnerID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if c == nil {
		c, err = cartdom.NewCart(oid, nil, now)
		if err != nil {
			return nil, err
		}
	}

	if err := c.SetQty(pid, qty, now); err != nil {
		return nil, err
	}
	return c, uc.persist(ctx, c)
}

// RemoveItem removes productID from the cart.
func (uc *CartUsecase) RemoveItem(ctx context.Context, ownerID, productID string) (*cartdom.Cart, error) {
	return uc.SetItemQty(ctx, ownerID, productID, 0)
}

// Clear empties the cart and zeroes its aggregates; the document is kept
// (an explicit empty cart, matching the checkout-clear action).
func (uc *CartUsecase) Clear(ctx context.Context, ownerID string) (*cartdom.Cart, error) {
	oid := strings.TrimSpace(ownerID)
	if oid == "" {
		return nil, ErrCartInvalidArgument
	}

	now := uc.clock.Now()

	c, err := uc.repo.GetByOwnerID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if c == nil {
		c, err = cartdom.NewCart(oid, nil, now)
		if err != nil {
			return nil, err
		}
	}

	if err := c.Clear(now); err != nil {
		return nil, err
	}
	return c, uc.repo.Upsert(ctx, c)
}

// MergeGuestCart folds the guest cart into the signed-in user's cart,
// summing quantities per product, then deletes the guest document.
//
// The original storefront pushed local over remote unconditionally on login,
// which can silently drop a pre-existing remote cart; merge-by-summing is the
// chosen policy here (recorded in DESIGN.md).
func (uc *CartUsecase) MergeGuestCart(ctx context.Context, guestID, uid string) (*cartdom.Cart, error) {
	gid := strings.TrimSpace(guestID)
	oid := strings.TrimSpace(uid)
	if gid == "" || oid == "" || gid == oid {
		return nil, ErrCartInvalidArgument
	}

	now := uc.clock.Now()

	guest, err := uc.repo.GetByOwnerID(ctx, gid)
	if err != nil {
		return nil, err
	}

	c, err := uc.repo.GetByOwnerID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if c == nil {
		c, err = cartdom.NewCart(oid, nil, now)
		if err != nil {
			return nil, err
		}
	}

	if err := c.Merge(guest, now); err != nil {
		return nil, err
	}
	if err := uc.persist(ctx, c); err != nil {
		return nil, err
	}

	if guest != nil {
		// Best-effort cleanup; the merged cart is already durable.
		if err := uc.repo.DeleteByOwnerID(ctx, gid); err != nil {
			log.Printf("[cart_usecase] WARN: guest cart delete failed guestId=%q err=%v", gid, err)
		}
	}
	return c, nil
}

// Subtotal recomputes the joined subtotal for the current cart without
// persisting (read-model helper for the drawer preview).
func (uc *CartUsecase) Subtotal(ctx context.Context, ownerID string) (int64, error) {
	c, err := uc.Get(ctx, ownerID)
	if err != nil {
		return 0, err
	}
	return uc.subtotalFor(ctx, c)
}

// persist recomputes the joined subtotal and upserts the document.
// Aggregates: subtotal = sum(price x qty) over a separately fetched product
// list; unknown product ids contribute 0. totalQuantity is maintained by the
// aggregate itself.
func (uc *CartUsecase) persist(ctx context.Context, c *cartdom.Cart) error {
	sub, err := uc.subtotalFor(ctx, c)
	if err != nil {
		// Persist the items anyway; a stale subtotal beats losing the mutation.
		log.Printf("[cart_usecase] WARN: subtotal join failed ownerId=%q err=%v", c.ID, err)
	} else {
		c.SetSubtotal(sub)
	}
	return uc.repo.Upsert(ctx, c)
}

func (uc *CartUsecase) subtotalFor(ctx context.Context, c *cartdom.Cart) (int64, error) {
	if c == nil || len(c.Items) == 0 {
		return 0, nil
	}
	if uc.prices == nil {
		return 0, errors.New("cart_usecase: price reader is nil")
	}

	ids := make([]string, 0, len(c.Items))
	for _, it := range c.Items {
		ids = append(ids, it.ProductID)
	}

	products, err := uc.prices.GetByIDs(ctx, ids)
	if err != nil {
		return 0, err
	}

	var sub int64
	for _, it := range c.Items {
		p := products[it.ProductID]
		if p == nil {
			continue
		}
		sub += p.PriceCents * int64(it.Quantity)
	}
	return sub, nil
}
