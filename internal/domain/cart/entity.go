package cart

import (
	"errors"
	"sort"
	"strings"
	"time"
)

var ErrInvalidCart = errors.New("cart: invalid")

// Item is one line item: a (productId, quantity) pair.
// Quantity is always >= 1 inside a valid cart; setting it below 1 removes
// the line.
type Item struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Cart is one shopper's cart document.
//   - docId = Cart.ID (Firestore collection "carts")
//   - ID is either a Firebase UID or a guest cart id ("guest-<uuid>"), the
//     server-side stand-in for the browser's localStorage fallback.
//   - SubtotalCents / TotalQuantity are denormalized aggregates recomputed on
//     every persist; the subtotal requires a price join against products and
//     is therefore set by the usecase, not here.
type Cart struct {
	ID    string `json:"id"`
	Items []Item `json:"items"`

	SubtotalCents int64 `json:"subtotalCents"`
	TotalQuantity int   `json:"totalQuantity"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewCart creates an empty-or-seeded cart. items may be nil.
func NewCart(id string, items []Item, now time.Time) (*Cart, error) {
	c := &Cart{
		ID:        strings.TrimSpace(id),
		Items:     normalizeAndMerge(items),
		CreatedAt: now,
		UpdatedAt: now,
	}
	c.TotalQuantity = c.totalQuantity()
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Add increments the quantity for productID by qty (merge-on-add).
// qty must be >= 1; the number of distinct line items grows only when the
// product was not present.
func (c *Cart) Add(productID string, qty int, now time.Time) error {
	if c == nil {
		return ErrInvalidCart
	}
	pid := strings.TrimSpace(productID)
	if pid == "" || qty < 1 {
		return ErrInvalidCart
	}

	idx := c.indexOf(pid)
	if idx >= 0 {
		c.Items[idx].Quantity += qty
	} else {
		c.Items = append(c.Items, Item{ProductID: pid, Quantity: qty})
	}

	c.touch(now)
	return c.validate()
}

// SetQty replaces the quantity for productID.
// qty < 1 removes the line item (quantity floor).
func (c *Cart) SetQty(productID string, qty int, now time.Time) error {
	if c == nil {
		return ErrInvalidCart
	}
	pid := strings.TrimSpace(productID)
	if pid == "" {
		return ErrInvalidCart
	}

	idx := c.indexOf(pid)

	if qty < 1 {
		if idx >= 0 {
			c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
		}
		c.touch(now)
		return c.validate()
	}

	if idx >= 0 {
		c.Items[idx].Quantity = qty
	} else {
		c.Items = append(c.Items, Item{ProductID: pid, Quantity: qty})
	}

	c.touch(now)
	return c.validate()
}

// Remove drops the line item for productID (no-op when absent).
func (c *Cart) Remove(productID string, now time.Time) error {
	return c.SetQty(productID, 0, now)
}

// Clear empties the cart and zeroes both aggregates.
func (c *Cart) Clear(now time.Time) error {
	if c == nil {
		return ErrInvalidCart
	}
	c.Items = []Item{}
	c.SubtotalCents = 0
	c.TotalQuantity = 0
	c.UpdatedAt = now
	return c.validate()
}

// Merge folds other's line items into c, summing quantities per product.
// Used for guest-cart reconciliation on login.
func (c *Cart) Merge(other *Cart, now time.Time) error {
	if c == nil {
		return ErrInvalidCart
	}
	if other == nil || len(other.Items) == 0 {
		return nil
	}
	for _, it := range other.Items {
		if err := c.Add(it.ProductID, it.Quantity, now); err != nil {
			return err
		}
	}
	return nil
}

// SetSubtotal stores the joined subtotal computed by the caller.
func (c *Cart) SetSubtotal(cents int64) {
	if c == nil || cents < 0 {
		return
	}
	c.SubtotalCents = cents
}

func (c *Cart) touch(now time.Time) {
	c.UpdatedAt = now
	c.TotalQuantity = c.totalQuantity()
}

func (c *Cart) totalQuantity() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) indexOf(productID string) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

func (c *Cart) validate() error {
	if c == nil || strings.TrimSpace(c.ID) == "" {
		return ErrInvalidCart
	}
	if c.CreatedAt.IsZero() || c.UpdatedAt.IsZero() || c.UpdatedAt.Before(c.CreatedAt) {
		return ErrInvalidCart
	}

	if len(c.Items) > 0 {
		c.Items = normalizeAndMerge(c.Items)
		c.TotalQuantity = c.totalQuantity()
		for _, it := range c.Items {
			if strings.TrimSpace(it.ProductID) == "" || it.Quantity < 1 {
				return ErrInvalidCart
			}
		}
	}
	return nil
}

// normalizeAndMerge trims ids, drops empty/non-positive entries, merges
// duplicate product ids by summing quantities, and sorts by product id for
// a stable persisted order.
func normalizeAndMerge(src []Item) []Item {
	m := map[string]int{}
	for _, it := range src {
		pid := strings.TrimSpace(it.ProductID)
		if pid == "" || it.Quantity < 1 {
			continue
		}
		m[pid] += it.Quantity
	}

	ids := make([]string, 0, len(m))
	for pid := range m {
		ids = append(ids, pid)
	}
	sort.Strings(ids)

	out := make([]Item, 0, len(ids))
	for _, pid := range ids {
		out = append(out, Item{ProductID: pid, Quantity: m[pid]})
	}
	return out
}
