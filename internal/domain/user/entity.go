package user

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound    = errors.New("user: not found")
	ErrInvalidUser = errors.New("user: invalid")
)

// Role is a closed two-value enum used for admin route gating.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// ParseRole falls back to customer for unknown values.
func ParseRole(s string) Role {
	if strings.EqualFold(strings.TrimSpace(s), string(RoleAdmin)) {
		return RoleAdmin
	}
	return RoleCustomer
}

// NotificationSettings mirrors the profile toggles; nothing in this service
// schedules mail from them, they are stored for the storefront UI.
type NotificationSettings struct {
	OrderUpdates bool `json:"orderUpdates"`
	Promotions   bool `json:"promotions"`
	Newsletter   bool `json:"newsletter"`
}

// BillingInfo is display-only billing data (no payment processing here).
type BillingInfo struct {
	Name       string `json:"name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// User is a shopper profile document.
// docId = UID (Firestore collection "users").
type User struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Role        Role   `json:"role"`

	Notifications NotificationSettings `json:"notificationSettings"`
	Billing       BillingInfo          `json:"billingInfo"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func New(uid, email, displayName string, now time.Time) (*User, error) {
	u := &User{
		UID:         strings.TrimSpace(uid),
		Email:       strings.TrimSpace(email),
		DisplayName: strings.TrimSpace(displayName),
		Role:        RoleCustomer,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if u.UID == "" {
		return nil, ErrInvalidUser
	}
	return u, nil
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
