package service

import (
	"context"
	"fmt"

	"github.com/msomdec/wysider/internal/domain"
)

// Redemption codes. The promo code unlocks the Pro+ tier; the admin code
// grants the administrator role.
const (
	promoCode = "cai2301"
	adminCode = "admin2301"
)

// AccountService handles profile upgrades via redemption codes.
type AccountService struct {
	users domain.UserRepository
}

// NewAccountService creates a new AccountService.
func NewAccountService(users domain.UserRepository) *AccountService {
	return &AccountService{users: users}
}

// Redeem applies a redemption code to the user. An unknown code returns
// ErrInvalidCode and leaves the profile untouched.
func (s *AccountService) Redeem(ctx context.Context, userID, code string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	switch code {
	case promoCode:
		user.Plan = domain.PlanProPlus
	case adminCode:
		user.Role = domain.RoleAdmin
	default:
		return nil, domain.ErrInvalidCode
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}

	return user, nil
}
