package firestore

import (
	"context"
	"strings"

	"cloud.google.com/go/firestore"

	userdom "greenhaven/internal/domain/user"
)

// UserRepositoryFS implements user.Repository on Firestore.
//
// Collection design:
// - collection: users
// - docId: Firebase uid
type UserRepositoryFS struct {
	Client *firestore.Client
}

func NewUserRepositoryFS(client *firestore.Client) *UserRepositoryFS {
	return &UserRepositoryFS{Client: client}
}

func (r *UserRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("users")
}

// GetByUID returns (nil, nil) if not found (nil policy).
func (r *UserRepositoryFS) GetByUID(ctx context.Context, uid string) (*userdom.User, error) {
	if r == nil || r.Client == nil {
		return nil, errNilClient
	}
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return nil, userdom.ErrInvalidUser
	}

	snap, err := r.col().Doc(uid).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	u := userFromSnapshot(snap)
	u.UID = uid
	return u, nil
}

func (r *UserRepositoryFS) Upsert(ctx context.Context, u *userdom.User) error {
	if r == nil || r.Client == nil {
		return errNilClient
	}
	if u == nil || strings.TrimSpace(u.UID) == "" {
		return userdom.ErrInvalidUser
	}

	_, err := r.col().Doc(strings.TrimSpace(u.UID)).Set(ctx, map[string]any{
		"email":       u.Email,
		"displayName": u.DisplayName,
		"role":        string(u.Role),
		"notificationSettings": map[string]any{
			"orderUpdates": u.Notifications.OrderUpdates,
			"promotions":   u.Notifications.Promotions,
			"newsletter":   u.Notifications.Newsletter,
		},
		"billingInfo": map[string]any{
			"name":       u.Billing.Name,
			"line1":      u.Billing.Line1,
			"line2":      u.Billing.Line2,
			"city":       u.Billing.City,
			"postalCode": u.Billing.PostalCode,
			"country":    u.Billing.Country,
		},
		"createdAt": u.CreatedAt,
		"updatedAt": u.UpdatedAt,
	})
	return err
}

func (r *UserRepositoryFS) UpdateFields(ctx context.Context, uid string, fields map[string]any) error {
	if r == nil || r.Client == nil {
		return errNilClient
	}
	uid = strings.TrimSpace(uid)
	if uid == "" || len(fields) == 0 {
		return userdom.ErrInvalidUser
	}

	updates := make([]firestore.Update, 0, len(fields))
	for k, v := range fields {
		updates = append(updates, firestore.Update{Path: k, Value: v})
	}

	_, err := r.col().Doc(uid).Update(ctx, updates)
	if err != nil && isNotFound(err) {
		return userdom.ErrNotFound
	}
	return err
}

func userFromSnapshot(snap *firestore.DocumentSnapshot) *userdom.User {
	u := &userdom.User{Role: userdom.RoleCustomer}

	raw := snap.Data()
	if raw == nil {
		return u
	}

	u.Email = asString(raw["email"])
	u.DisplayName = asString(raw["displayName"])
	u.Role = userdom.ParseRole(asString(raw["role"]))

	if ns := asStringMap(raw["notificationSettings"]); ns != nil {
		u.Notifications = userdom.NotificationSettings{
			OrderUpdates: asBool(ns["orderUpdates"]),
			Promotions:   asBool(ns["promotions"]),
			Newsletter:   asBool(ns["newsletter"]),
		}
	}
	if bi := asStringMap(raw["billingInfo"]); bi != nil {
		u.Billing = userdom.BillingInfo{
			Name:       asString(bi["name"]),
			Line1:      asString(bi["line1"]),
			Line2:      asString(bi["line2"]),
			City:       asString(bi["city"]),
			PostalCode: asString(bi["postalCode"]),
			Country:    asString(bi["country"]),
		}
	}

	if t, ok := asTime(raw["createdAt"]); ok {
		u.CreatedAt = t
	}
	if t, ok := asTime(raw["updatedAt"]); ok {
		u.UpdatedAt = t
	}
	return u
}
