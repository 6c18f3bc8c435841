package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/msomdec/wysider/internal/domain"
	"github.com/msomdec/wysider/internal/service"
)

func TestAccountService_Redeem_PromoCodeUpgradesPlan(t *testing.T) {
	auth, db := newTestAuthService(t)
	account := service.NewAccountService(db.Users())
	ctx := context.Background()

	user := registerTestUser(t, auth, "promo@example.com")

	updated, err := account.Redeem(ctx, user.ID, "cai2301")
	if err != nil {
		t.Fatalf("Redeem: %v", err)
	}
	if updated.Plan != domain.PlanProPlus {
		t.Fatalf("expected plan PRO_PLUS, got %s", updated.Plan)
	}

	// The upgrade must be persisted, not just returned.
	stored, err := db.Users().GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.Plan != domain.PlanProPlus {
		t.Fatalf("expected persisted plan PRO_PLUS, got %s", stored.Plan)
	}
	if stored.Role != domain.RoleUser {
		t.Fatalf("promo code must not change the role, got %s", stored.Role)
	}
}

func TestAccountService_Redeem_AdminCodeUpgradesRole(t *testing.T) {
	auth, db := newTestAuthService(t)
	account := service.NewAccountService(db.Users())
	ctx := context.Background()

	user := registerTestUser(t, auth, "admin@example.com")

	updated, err := account.Redeem(ctx, user.ID, "admin2301")
	if err != nil {
		t.Fatalf("Redeem: %v", err)
	}
	if updated.Role != domain.RoleAdmin {
		t.Fatalf("expected role ADMIN, got %s", updated.Role)
	}

	stored, err := db.Users().GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.Role != domain.RoleAdmin {
		t.Fatalf("expected persisted role ADMIN, got %s", stored.Role)
	}
	if stored.Plan != domain.PlanStandard {
		t.Fatalf("admin code must not change the plan, got %s", stored.Plan)
	}
}

func TestAccountService_Redeem_InvalidCodeLeavesUserUnchanged(t *testing.T) {
	auth, db := newTestAuthService(t)
	account := service.NewAccountService(db.Users())
	ctx := context.Background()

	user := registerTestUser(t, auth, "typo@example.com")

	for _, code := range []string{"", "CAI2301", "cai2301 ", "cai2302", "letmein"} {
		_, err := account.Redeem(ctx, user.ID, code)
		if !errors.Is(err, domain.ErrInvalidCode) {
			t.Fatalf("code %q: expected ErrInvalidCode, got %v", code, err)
		}
	}

	stored, err := db.Users().GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.Plan != domain.PlanStandard || stored.Role != domain.RoleUser {
		t.Fatalf("invalid codes must not change the user, got %s/%s", stored.Plan, stored.Role)
	}
}
