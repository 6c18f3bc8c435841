package service

import (
	"context"
	"fmt"

	"github.com/msomdec/wysider/internal/domain"
)

// AdminService serves the admin console.
type AdminService struct {
	users domain.UserRepository
}

// NewAdminService creates a new AdminService.
func NewAdminService(users domain.UserRepository) *AdminService {
	return &AdminService{users: users}
}

// ListUsers returns every registered user. Callers are responsible for
// gating this behind the admin role.
func (s *AdminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
