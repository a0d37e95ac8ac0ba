package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdom "greenhaven/internal/domain/cart"
	productdom "greenhaven/internal/domain/product"
)

// ------------------------------------------------------------
// fakes
// ------------------------------------------------------------

type fakeClock struct{ t time.Time }

func (f fakeClock) Now() time.Time { return f.t }

type fakeCartRepo struct {
	carts map[string]*cartdom.Cart

	upserts   int
	deleteErr error
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: map[string]*cartdom.Cart{}}
}

func (r *fakeCartRepo) GetByOwnerID(ctx context.Context, ownerID string) (*cartdom.Cart, error) {
	c, ok := r.carts[ownerID]
	if !ok {
		return nil, nil
	}
	cp := *c
	cp.Items = append([]cartdom.Item(nil), c.Items...)
	return &cp, nil
}

func (r *fakeCartRepo) Upsert(ctx context.Context, c *cartdom.Cart) error {
	r.upserts++
	cp := *c
	cp.Items = append([]cartdom.Item(nil), c.Items...)
	r.carts[c.ID] = &cp
	return nil
}

func (r *fakeCartRepo) DeleteByOwnerID(ctx context.Context, ownerID string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.carts, ownerID)
	return nil
}

type fakePriceReader struct {
	prices map[string]int64
	err    error
}

func (p *fakePriceReader) GetByIDs(ctx context.Context, ids []string) (map[string]*productdom.Product, error) {
	if p.err != nil {
		return nil, p.err
	}
	out := map[string]*productdom.Product{}
	for _, id := range ids {
		if cents, ok := p.prices[id]; ok {
			out[id] = &productdom.Product{ID: id, PriceCents: cents}
		}
	}
	return out, nil
}

func newCartUCForTest(repo *fakeCartRepo, prices *fakePriceReader) *CartUsecase {
	return NewCartUsecaseWithClock(repo, prices, fakeClock{t: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)})
}

// ------------------------------------------------------------
// tests
// ------------------------------------------------------------

func TestGetOrCreateInitializesEmptyCart(t *testing.T) {
	repo := newFakeCartRepo()
	uc := newCartUCForTest(repo, &fakePriceReader{})

	c, err := uc.GetOrCreate(context.Background(), "uid-1")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", c.ID)
	assert.Empty(t, c.Items)
	assert.Equal(t, 1, repo.upserts, "first access persists the empty cart")

	// second access returns the stored cart without another write
	_, err = uc.GetOrCreate(context.Background(), "uid-1")
	require.NoError(t, err)
	assert.Equal(t, 1, repo.upserts)
}

func TestGetReturnsNotFound(t *testing.T) {
	uc := newCartUCForTest(newFakeCartRepo(), &fakePriceReader{})

	_, err := uc.Get(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrCartNotFound)

	_, err = uc.Get(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrCartInvalidArgument)
}

func TestAddItemComputesJoinedSubtotal(t *testing.T) {
	repo := newFakeCartRepo()
	prices := &fakePriceReader{prices: map[string]int64{
		"monstera": 1000, // $10.00
		"fern":     2500, // $25.00
	}}
	uc := newCartUCForTest(repo, prices)

	_, err := uc.AddItem(context.Background(), "uid-1", "monstera", 2)
	require.NoError(t, err)

	c, err := uc.AddItem(context.Background(), "uid-1", "fern", 1)
	require.NoError(t, err)

	// 2 x $10.00 + 1 x $25.00 = $45.00
	assert.Equal(t, int64(4500), c.SubtotalCents)
	assert.Equal(t, 3, c.TotalQuantity)

	stored := repo.carts["uid-1"]
	require.NotNil(t, stored)
	assert.Equal(t, int64(4500), stored.SubtotalCents)
}

func TestAddItemUnknownProductContributesZero(t *testing.T) {
	repo := newFakeCartRepo()
	prices := &fakePriceReader{prices: map[string]int64{"monstera": 1000}}
	uc := newCartUCForTest(repo, prices)

	_, err := uc.AddItem(context.Background(), "uid-1", "monstera", 1)
	require.NoError(t, err)
	c, err := uc.AddItem(context.Background(), "uid-1", "deleted-product", 4)
	require.NoError(t, err)

	assert.Equal(t, int64(1000), c.SubtotalCents)
	assert.Equal(t, 5, c.TotalQuantity)
}

func TestAddItemPersistsDespiteJoinFailure(t *testing.T) {
	repo := newFakeCartRepo()
	uc := newCartUCForTest(repo, &fakePriceReader{err: errors.New("firestore unavailable")})

	c, err := uc.AddItem(context.Background(), "uid-1", "monstera", 1)
	require.NoError(t, err, "the mutation must survive a subtotal join failure")
	assert.Equal(t, int64(0), c.SubtotalCents)
	require.NotNil(t, repo.carts["uid-1"])
	assert.Len(t, repo.carts["uid-1"].Items, 1)
}

func TestSetItemQtyFloorRemoves(t *testing.T) {
	repo := newFakeCartRepo()
	prices := &fakePriceReader{prices: map[string]int64{"monstera": 1000}}
	uc := newCartUCForTest(repo, prices)

	_, err := uc.AddItem(context.Background(), "uid-1", "monstera", 3)
	require.NoError(t, err)

	c, err := uc.SetItemQty(context.Background(), "uid-1", "monstera", 0)
	require.NoError(t, err)
	assert.Empty(t, c.Items)
	assert.Zero(t, c.SubtotalCents)
}

func TestClearKeepsDocument(t *testing.T) {
	repo := newFakeCartRepo()
	prices := &fakePriceReader{prices: map[string]int64{"monstera": 1000}}
	uc := newCartUCForTest(repo, prices)

	_, err := uc.AddItem(context.Background(), "uid-1", "monstera", 2)
	require.NoError(t, err)

	c, err := uc.Clear(context.Background(), "uid-1")
	require.NoError(t, err)
	assert.Empty(t, c.Items)
	assert.Zero(t, c.SubtotalCents)
	assert.Zero(t, c.TotalQuantity)

	stored, ok := repo.carts["uid-1"]
	require.True(t, ok, "clear keeps the cart document")
	assert.Empty(t, stored.Items)
}

func TestMergeGuestCartSumsAndDeletesGuest(t *testing.T) {
	repo := newFakeCartRepo()
	prices := &fakePriceReader{prices: map[string]int64{"a": 100, "b": 200, "c": 300}}
	uc := newCartUCForTest(repo, prices)

	_, err := uc.AddItem(context.Background(), "guest-x", "b", 3)
	require.NoError(t, err)
	_, err = uc.AddItem(context.Background(), "guest-x", "c", 1)
	require.NoError(t, err)

	_, err = uc.AddItem(context.Background(), "uid-1", "a", 1)
	require.NoError(t, err)
	_, err = uc.AddItem(context.Background(), "uid-1", "b", 2)
	require.NoError(t, err)

	c, err := uc.MergeGuestCart(context.Background(), "guest-x", "uid-1")
	require.NoError(t, err)

	byID := map[string]int{}
	for _, it := range c.Items {
		byID[it.ProductID] = it.Quantity
	}
	assert.Equal(t, map[string]int{"a": 1, "b": 5, "c": 1}, byID)
	assert.Equal(t, int64(1*100+5*200+1*300), c.SubtotalCents)

	_, guestStillThere := repo.carts["guest-x"]
	assert.False(t, guestStillThere, "guest document is deleted after merge")
}

func TestMergeGuestCartSurvivesGuestDeleteFailure(t *testing.T) {
	repo := newFakeCartRepo()
	repo.deleteErr = errors.New("permission denied")
	prices := &fakePriceReader{prices: map[string]int64{"a": 100}}
	uc := newCartUCForTest(repo, prices)

	_, err := uc.AddItem(context.Background(), "guest-x", "a", 2)
	require.NoError(t, err)

	c, err := uc.MergeGuestCart(context.Background(), "guest-x", "uid-1")
	require.NoError(t, err, "delete is best-effort; the merged cart is already durable")
	assert.Equal(t, int64(200), c.SubtotalCents)
}

func TestMergeGuestCartRejectsSameOwner(t *testing.T) {
	uc := newCartUCForTest(newFakeCartRepo(), &fakePriceReader{})

	_, err := uc.MergeGuestCart(context.Background(), "uid-1", "uid-1")
	assert.ErrorIs(t, err, ErrCartInvalidArgument)
}

func TestMergeGuestCartWithNoGuestDocIsANoop(t *testing.T) {
	repo := newFakeCartRepo()
	prices := &fakePriceReader{prices: map[string]int64{"a": 100}}
	uc := newCartUCForTest(repo, prices)

	_, err := uc.AddItem(context.Background(), "uid-1", "a", 1)
	require.NoError(t, err)

	c, err := uc.MergeGuestCart(context.Background(), "guest-missing", "uid-1")
	require.NoError(t, err)
	assert.Len(t, c.Items, 1)
	assert.Equal(t, int64(100), c.SubtotalCents)
}
