package user

import "context"

// Repository is the persistence port for user profiles.
type Repository interface {
	// GetByUID returns (nil, nil) when absent.
	GetByUID(ctx context.Context, uid string) (*User, error)

	// Upsert writes the full profile document.
	Upsert(ctx context.Context, u *User) error

	// UpdateFields applies a merge-style partial update
	// (e.g. notificationSettings or billingInfo only).
	UpdateFields(ctx context.Context, uid string, fields map[string]any) error
}
