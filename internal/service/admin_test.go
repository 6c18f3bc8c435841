package service_test

import (
	"context"
	"testing"

	"github.com/msomdec/wysider/internal/service"
)

func TestAdminService_ListUsers(t *testing.T) {
	auth, db := newTestAuthService(t)
	admin := service.NewAdminService(db.Users())
	ctx := context.Background()

	registerTestUser(t, auth, "first@example.com")
	registerTestUser(t, auth, "second@example.com")

	users, err := admin.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}
