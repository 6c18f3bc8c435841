package session_test

import (
	"testing"

	"github.com/msomdec/wysider/internal/domain"
	"github.com/msomdec/wysider/internal/session"
)

func member() *domain.User {
	return &domain.User{ID: "u1", Email: "m@example.com", Role: domain.RoleUser}
}

func admin() *domain.User {
	return &domain.User{ID: "a1", Email: "a@example.com", Role: domain.RoleAdmin}
}

func TestCompleteSplash_WithResolvedIdentity(t *testing.T) {
	ctrl := session.NewController(member())

	if got := ctrl.CompleteSplash(); got != session.ScreenDashboard {
		t.Fatalf("expected DASHBOARD after splash with identity, got %v", got)
	}
}

func TestCompleteSplash_WithoutIdentity(t *testing.T) {
	ctrl := session.NewController(nil)

	if got := ctrl.CompleteSplash(); got != session.ScreenLanding {
		t.Fatalf("expected LANDING after splash without identity, got %v", got)
	}
}

func TestNavigate_AdminRequiresAdminRole(t *testing.T) {
	tests := []struct {
		name string
		role domain.Role
		want session.Screen
	}{
		{"member is redirected", domain.RoleUser, session.ScreenDashboard},
		{"admin is admitted", domain.RoleAdmin, session.ScreenAdmin},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			user := member()
			user.Role = tc.role
			ctrl := session.NewController(user)
			ctrl.CompleteSplash()

			if got := ctrl.Navigate(session.ScreenAdmin); got != tc.want {
				t.Fatalf("Navigate(ADMIN) with role %s: expected %v, got %v", tc.role, tc.want, got)
			}
		})
	}
}

func TestNavigate_GatedScreensWithoutIdentity(t *testing.T) {
	for _, target := range []session.Screen{
		session.ScreenDashboard,
		session.ScreenWorkspace,
		session.ScreenAccount,
		session.ScreenAdmin,
	} {
		t.Run(target.String(), func(t *testing.T) {
			ctrl := session.NewController(nil)
			ctrl.CompleteSplash()

			if got := ctrl.Navigate(target); got != session.ScreenAuth {
				t.Fatalf("Navigate(%v) without identity: expected AUTH, got %v", target, got)
			}
		})
	}
}

func TestNavigate_UngatedScreens(t *testing.T) {
	ctrl := session.NewController(nil)
	ctrl.CompleteSplash()

	if got := ctrl.Navigate(session.ScreenAuth); got != session.ScreenAuth {
		t.Fatalf("Navigate(AUTH): expected AUTH, got %v", got)
	}
	if got := ctrl.Navigate(session.ScreenLanding); got != session.ScreenLanding {
		t.Fatalf("Navigate(LANDING): expected LANDING, got %v", got)
	}
}

func TestSignIn_MovesToDashboard(t *testing.T) {
	ctrl := session.NewController(nil)
	ctrl.CompleteSplash()

	if got := ctrl.SignIn(member()); got != session.ScreenDashboard {
		t.Fatalf("expected DASHBOARD after sign-in, got %v", got)
	}
	if ctrl.User() == nil {
		t.Fatal("expected identity to be stored after sign-in")
	}
}

func TestSignOut_ClearsIdentityAndLands(t *testing.T) {
	ctrl := session.NewController(admin())
	ctrl.CompleteSplash()
	ctrl.Navigate(session.ScreenAdmin)

	if got := ctrl.SignOut(); got != session.ScreenLanding {
		t.Fatalf("expected LANDING after sign-out, got %v", got)
	}
	if ctrl.User() != nil {
		t.Fatal("expected identity to be cleared after sign-out")
	}

	// A subsequent gated navigation lands on Auth again.
	if got := ctrl.Navigate(session.ScreenWorkspace); got != session.ScreenAuth {
		t.Fatalf("expected AUTH after sign-out navigation, got %v", got)
	}
}

func TestParseScreen(t *testing.T) {
	screen, err := session.ParseScreen("WORKSPACE")
	if err != nil {
		t.Fatalf("ParseScreen: %v", err)
	}
	if screen != session.ScreenWorkspace {
		t.Fatalf("expected WORKSPACE, got %v", screen)
	}

	if _, err := session.ParseScreen("KITCHEN"); err == nil {
		t.Fatal("expected error for unknown screen")
	}
}
