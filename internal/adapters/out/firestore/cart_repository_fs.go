package firestore

import (
	"context"
	"strings"

	"cloud.google.com/go/firestore"

	cartdom "greenhaven/internal/domain/cart"
)

// CartRepositoryFS implements cart.Repository on Firestore.
//
// Collection design:
// - collection: carts
// - docId: ownerId (Firebase uid or guest cart id; docId is the source of truth)
// - fields: items(array), subtotalCents, totalQuantity, createdAt, updatedAt
type CartRepositoryFS struct {
	Client *firestore.Client
}

func NewCartRepositoryFS(client *firestore.Client) *CartRepositoryFS {
	return &CartRepositoryFS{Client: client}
}

func (r *CartRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("carts")
}

// GetByOwnerID returns (nil, nil) if not found (nil policy).
func (r *CartRepositoryFS) GetByOwnerID(ctx context.Context, ownerID string) (*cartdom.Cart, error) {
	if r == nil || r.Client == nil {
		return nil, errNilClient
	}
	oid := strings.TrimSpace(ownerID)
	if oid == "" {
		return nil, cartdom.ErrInvalidCart
	}

	snap, err := r.col().Doc(oid).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	c := cartFromSnapshot(snap)
	c.ID = oid
	return c, nil
}

// Upsert writes the full cart document (simple and predictable; last write wins).
func (r *CartRepositoryFS) Upsert(ctx context.Context, c *cartdom.Cart) error {
	if r == nil || r.Client == nil {
		return errNilClient
	}
	if c == nil || strings.TrimSpace(c.ID) == "" {
		return cartdom.ErrInvalidCart
	}

	items := make([]map[string]any, 0, len(c.Items))
	for _, it := range c.Items {
		pid := strings.TrimSpace(it.ProductID)
		if pid == "" || it.Quantity < 1 {
			continue
		}
		items = append(items, map[string]any{
			"productId": pid,
			"quantity":  it.Quantity,
		})
	}

	_, err := r.col().Doc(strings.TrimSpace(c.ID)).Set(ctx, map[string]any{
		"items":         items,
		"subtotalCents": c.SubtotalCents,
		"totalQuantity": c.TotalQuantity,
		"createdAt":     c.CreatedAt,
		"updatedAt":     c.UpdatedAt,
	})
	return err
}

func (r *CartRepositoryFS) DeleteByOwnerID(ctx context.Context, ownerID string) error {
	if r == nil || r.Client == nil {
		return errNilClient
	}
	oid := strings.TrimSpace(ownerID)
	if oid == "" {
		return cartdom.ErrInvalidCart
	}

	_, err := r.col().Doc(oid).Delete(ctx)
	return err
}

// cartFromSnapshot parses document data with backward compatibility.
//
// Supported item shapes:
// 1) items: [{productId, quantity}]
// 2) items: map[productId] = quantity (legacy)
func cartFromSnapshot(snap *firestore.DocumentSnapshot) *cartdom.Cart {
	c := &cartdom.Cart{}

	raw := snap.Data()
	if raw == nil {
		return c
	}

	if t, ok := asTime(raw["createdAt"]); ok {
		c.CreatedAt = t
	}
	if t, ok := asTime(raw["updatedAt"]); ok {
		c.UpdatedAt = t
	}
	c.SubtotalCents = asInt64(raw["subtotalCents"])
	c.TotalQuantity = asInt(raw["totalQuantity"])

	switch items := raw["items"].(type) {
	case []any:
		for _, v := range items {
			m := asStringMap(v)
			if m == nil {
				continue
			}
			pid := strings.TrimSpace(asString(m["productId"]))
			qty := asInt(m["quantity"])
			if pid == "" || qty < 1 {
				continue
			}
			c.Items = append(c.Items, cartdom.Item{ProductID: pid, Quantity: qty})
		}
	case map[string]any:
		// legacy shape: productId -> qty
		for k, v := range items {
			pid := strings.TrimSpace(k)
			qty := asInt(v)
			if pid == "" || qty < 1 {
				continue
			}
			c.Items = append(c.Items, cartdom.Item{ProductID: pid, Quantity: qty})
		}
	}

	return c
}
