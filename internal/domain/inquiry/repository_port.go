package inquiry

import "context"

// Repository is the persistence port for inquiries.
type Repository interface {
	Create(ctx context.Context, q *Inquiry) error
	GetByID(ctx context.Context, id string) (*Inquiry, error)

	// List returns inquiries newest first; empty status lists everything.
	List(ctx context.Context, status Status, limit int) ([]Inquiry, error)

	// SetStatus flips open/closed and stamps updatedAt.
	SetStatus(ctx context.Context, id string, status Status) error
}
