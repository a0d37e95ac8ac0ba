package order

import "context"

// Repository is the read-only persistence port for orders.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Order, error)

	// ListByUserID returns the user's orders, newest first.
	ListByUserID(ctx context.Context, userID string) ([]Order, error)

	// ListByStatus is the back-office view; empty status lists everything,
	// newest first, capped at limit (0 = implementation default).
	ListByStatus(ctx context.Context, status Status, limit int) ([]Order, error)
}
