package domain

import (
	"context"
	"time"
)

// Plan is a subscription tier.
type Plan string

const (
	PlanStandard Plan = "STANDARD"
	PlanProPlus  Plan = "PRO_PLUS"
)

// Role controls access to the admin console.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User represents a registered user of the application.
type User struct {
	ID           string
	Email        string
	DisplayName  string
	PasswordHash string
	Plan         Plan
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user may access the admin console.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// Save overwrites an existing user by id.
	Save(ctx context.Context, user *User) error
	// List returns every registered user. Admin console only.
	List(ctx context.Context) ([]User, error)
}
