package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	orderdom "greenhaven/internal/domain/order"
)

const defaultOrderListLimit = 50

// OrderRepositoryFS implements the read-only order.Repository on Firestore.
// Order documents are created by the external checkout process; this adapter
// never writes.
type OrderRepositoryFS struct {
	Client *firestore.Client
}

func NewOrderRepositoryFS(client *firestore.Client) *OrderRepositoryFS {
	return &OrderRepositoryFS{Client: client}
}

func (r *OrderRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("orders")
}

func (r *OrderRepositoryFS) GetByID(ctx context.Context, id string) (*orderdom.Order, error) {
	if r == nil || r.Client == nil {
		return nil, errNilClient
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, orderdom.ErrNotFound
	}

	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, orderdom.ErrNotFound
		}
		return nil, err
	}
	return orderFromSnapshot(snap), nil
}

func (r *OrderRepositoryFS) ListByUserID(ctx context.Context, userID string) ([]orderdom.Order, error) {
	if r == nil || r.Client == nil {
		return nil, errNilClient
	}
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, orderdom.ErrNotFound
	}

	it := r.col().
		Where("userId", "==", uid).
		OrderBy("createdAt", firestore.Desc).
		OrderBy(firestore.DocumentID, firestore.Desc).
		Documents(ctx)
	defer it.Stop()

	return collectOrders(it)
}

func (r *OrderRepositoryFS) ListByStatus(ctx context.Context, status orderdom.Status, limit int) ([]orderdom.Order, error) {
	if r == nil || r.Client == nil {
		return nil, errNilClient
	}
	if limit < 1 {
		limit = defaultOrderListLimit
	}

	q := r.col().Query
	if s := strings.TrimSpace(string(status)); s != "" {
		q = q.Where("status", "==", s)
	}

	it := q.
		OrderBy("createdAt", firestore.Desc).
		OrderBy(firestore.DocumentID, firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer it.Stop()

	return collectOrders(it)
}

func collectOrders(it *firestore.DocumentIterator) ([]orderdom.Order, error) {
	var out []orderdom.Order
	for {
		snap, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, *orderFromSnapshot(snap))
	}
	return out, nil
}

func orderFromSnapshot(snap *firestore.DocumentSnapshot) *orderdom.Order {
	o := &orderdom.Order{ID: snap.Ref.ID}

	raw := snap.Data()
	if raw == nil {
		return o
	}

	o.UserID = asString(raw["userId"])
	o.Status = orderdom.Status(strings.ToLower(asString(raw["status"])))

	if items, ok := raw["items"].([]any); ok {
		for _, v := range items {
			m := asStringMap(v)
			if m == nil {
				continue
			}
			o.Items = append(o.Items, orderdom.Item{
				ProductID:  asString(m["productId"]),
				Title:      asString(m["title"]),
				Quantity:   asInt(m["quantity"]),
				PriceCents: asInt64(m["priceCents"]),
			})
		}
	}

	if pr := asStringMap(raw["pricing"]); pr != nil {
		o.Pricing = orderdom.Pricing{
			SubtotalCents:   asInt64(pr["subtotalCents"]),
			ShippingCents:   asInt64(pr["shippingCents"]),
			TaxCents:        asInt64(pr["taxCents"]),
			GrandTotalCents: asInt64(pr["grandTotalCents"]),
			Currency:        asString(pr["currency"]),
		}
	}

	if sa := asStringMap(raw["shippingAddress"]); sa != nil {
		o.ShippingAddress = orderdom.ShippingAddress{
			Name:       asString(sa["name"]),
			Line1:      asString(sa["line1"]),
			Line2:      asString(sa["line2"]),
			City:       asString(sa["city"]),
			PostalCode: asString(sa["postalCode"]),
			Country:    asString(sa["country"]),
		}
	}

	if tr := asStringMap(raw["tracking"]); tr != nil {
		o.Tracking = orderdom.Tracking{
			Carrier: asString(tr["carrier"]),
			Number:  asString(tr["number"]),
			URL:     asString(tr["url"]),
		}
	}

	if t, ok := asTime(raw["createdAt"]); ok {
		o.CreatedAt = t
	}
	if t, ok := asTime(raw["updatedAt"]); ok {
		o.UpdatedAt = t
	}
	return o
}
