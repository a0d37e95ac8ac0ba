package usecase

import (
	"context"
	"errors"
	"strings"

	userdom "greenhaven/internal/domain/user"
)

var ErrUserInvalidArgument = errors.New("user_usecase: invalid argument")

// UserUsecase maintains shopper profiles keyed by Firebase uid.
type UserUsecase struct {
	repo  userdom.Repository
	clock Clock
}

func NewUserUsecase(repo userdom.Repository, clock Clock) *UserUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &UserUsecase{repo: repo, clock: clock}
}

// EnsureProfile returns the profile, creating a customer-role one on first
// authenticated access.
func (uc *UserUsecase) EnsureProfile(ctx context.Context, uid, email, displayName string) (*userdom.User, error) {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return nil, ErrUserInvalidArgument
	}

	u, err := uc.repo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if u != nil {
		return u, nil
	}

	u, err = userdom.New(uid, email, displayName, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Upsert(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (uc *UserUsecase) Get(ctx context.Context, uid string) (*userdom.User, error) {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return nil, ErrUserInvalidArgument
	}
	u, err := uc.repo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, userdom.ErrNotFound
	}
	return u, nil
}

// UpdateNotifications stores the profile toggles.
func (uc *UserUsecase) UpdateNotifications(ctx context.Context, uid string, s userdom.NotificationSettings) error {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return ErrUserInvalidArgument
	}
	return uc.repo.UpdateFields(ctx, uid, map[string]any{
		"notificationSettings": s,
		"updatedAt":            uc.clock.Now(),
	})
}

// UpdateBilling stores the display-only billing block.
func (uc *UserUsecase) UpdateBilling(ctx context.Context, uid string, b userdom.BillingInfo) error {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return ErrUserInvalidArgument
	}
	return uc.repo.UpdateFields(ctx, uid, map[string]any{
		"billingInfo": b,
		"updatedAt":   uc.clock.Now(),
	})
}

// Role returns the stored role for uid ("customer" when no profile exists).
// Used by the admin gate middleware.
func (uc *UserUsecase) Role(ctx context.Context, uid string) (userdom.Role, error) {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return userdom.RoleCustomer, ErrUserInvalidArgument
	}
	u, err := uc.repo.GetByUID(ctx, uid)
	if err != nil {
		return userdom.RoleCustomer, err
	}
	if u == nil {
		return userdom.RoleCustomer, nil
	}
	return u.Role, nil
}
