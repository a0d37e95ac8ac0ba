package cart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCart(t *testing.T, id string, items []Item) *Cart {
	t.Helper()
	c, err := NewCart(id, items, time.Now().UTC())
	require.NoError(t, err)
	return c
}

func TestAddMergesExistingLine(t *testing.T) {
	now := time.Now().UTC()
	c := mustCart(t, "u1", nil)

	require.NoError(t, c.Add("fiddle-leaf-fig", 2, now))
	require.NoError(t, c.Add("fiddle-leaf-fig", 3, now))

	require.Len(t, c.Items, 1)
	assert.Equal(t, 5, c.Items[0].Quantity)
	assert.Equal(t, 5, c.TotalQuantity)
}

func TestAddRejectsBadInput(t *testing.T) {
	now := time.Now().UTC()
	c := mustCart(t, "u1", nil)

	assert.ErrorIs(t, c.Add("", 1, now), ErrInvalidCart)
	assert.ErrorIs(t, c.Add("p1", 0, now), ErrInvalidCart)
	assert.ErrorIs(t, c.Add("p1", -4, now), ErrInvalidCart)
	assert.Empty(t, c.Items)
}

func TestSetQtyFloorRemovesLine(t *testing.T) {
	now := time.Now().UTC()
	c := mustCart(t, "u1", []Item{{ProductID: "monstera", Quantity: 2}})

	require.NoError(t, c.SetQty("monstera", 0, now))
	assert.Empty(t, c.Items)
	assert.Equal(t, 0, c.TotalQuantity)

	// removing an absent product is a no-op, not an error
	require.NoError(t, c.Remove("monstera", now))
}

func TestSetQtyReplacesNotIncrements(t *testing.T) {
	now := time.Now().UTC()
	c := mustCart(t, "u1", []Item{{ProductID: "monstera", Quantity: 5}})

	require.NoError(t, c.SetQty("monstera", 2, now))
	assert.Equal(t, 2, c.Items[0].Quantity)
}

func TestClearZeroesAggregates(t *testing.T) {
	now := time.Now().UTC()
	c := mustCart(t, "u1", []Item{{ProductID: "a", Quantity: 1}, {ProductID: "b", Quantity: 2}})
	c.SetSubtotal(4500)

	require.NoError(t, c.Clear(now))
	assert.Empty(t, c.Items)
	assert.Zero(t, c.SubtotalCents)
	assert.Zero(t, c.TotalQuantity)
}

func TestMergeSumsQuantitiesPerProduct(t *testing.T) {
	now := time.Now().UTC()
	mine := mustCart(t, "uid-1", []Item{{ProductID: "a", Quantity: 1}, {ProductID: "b", Quantity: 2}})
	guest := mustCart(t, "guest-x", []Item{{ProductID: "b", Quantity: 3}, {ProductID: "c", Quantity: 1}})

	require.NoError(t, mine.Merge(guest, now))

	require.Len(t, mine.Items, 3)
	byID := map[string]int{}
	for _, it := range mine.Items {
		byID[it.ProductID] = it.Quantity
	}
	assert.Equal(t, map[string]int{"a": 1, "b": 5, "c": 1}, byID)
	assert.Equal(t, 7, mine.TotalQuantity)
}

func TestNewCartNormalizesSeedItems(t *testing.T) {
	c := mustCart(t, "u1", []Item{
		{ProductID: " b ", Quantity: 1},
		{ProductID: "a", Quantity: 2},
		{ProductID: "b", Quantity: 1},
		{ProductID: "", Quantity: 9},
		{ProductID: "dropped", Quantity: 0},
	})

	require.Len(t, c.Items, 2)
	// stable order: sorted by product id
	assert.Equal(t, "a", c.Items[0].ProductID)
	assert.Equal(t, "b", c.Items[1].ProductID)
	assert.Equal(t, 2, c.Items[1].Quantity)
}
