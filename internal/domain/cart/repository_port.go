package cart

import "context"

// Repository is the persistence port for carts.
//
// Storage (Firestore):
// - collection: carts
// - docId: owner id (Firebase uid or guest cart id)
// - fields: items(array), subtotalCents, totalQuantity, createdAt, updatedAt
type Repository interface {
	// GetByOwnerID returns (nil, nil) when the cart document is absent;
	// the application layer treats nil as "no cart yet".
	GetByOwnerID(ctx context.Context, ownerID string) (*Cart, error)

	// Upsert writes the full cart document (last write wins; no transaction,
	// per the accepted concurrency model).
	Upsert(ctx context.Context, c *Cart) error

	DeleteByOwnerID(ctx context.Context, ownerID string) error
}
