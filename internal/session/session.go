// Package session models the single-page application's screen flow: which
// screen is active and which identity, if any, is signed in. The rules live
// here so every surface applies the same gating.
package session

import (
	"fmt"

	"github.com/msomdec/wysider/internal/domain"
)

// Screen is one of the application's screens.
type Screen int

const (
	ScreenSplash Screen = iota
	ScreenLanding
	ScreenAuth
	ScreenDashboard
	ScreenWorkspace
	ScreenAccount
	ScreenAdmin
)

var screenNames = map[Screen]string{
	ScreenSplash:    "SPLASH",
	ScreenLanding:   "LANDING",
	ScreenAuth:      "AUTH",
	ScreenDashboard: "DASHBOARD",
	ScreenWorkspace: "WORKSPACE",
	ScreenAccount:   "ACCOUNT",
	ScreenAdmin:     "ADMIN",
}

// String returns the wire name of the screen.
func (s Screen) String() string {
	if name, ok := screenNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Screen(%d)", int(s))
}

// ParseScreen maps a wire name back to a Screen.
func ParseScreen(name string) (Screen, error) {
	for s, n := range screenNames {
		if n == name {
			return s, nil
		}
	}
	return ScreenSplash, fmt.Errorf("%w: unknown screen %q", domain.ErrInvalidInput, name)
}

// requiresIdentity reports whether the screen is gated behind a signed-in
// identity.
func (s Screen) requiresIdentity() bool {
	switch s {
	case ScreenDashboard, ScreenWorkspace, ScreenAccount, ScreenAdmin:
		return true
	case ScreenSplash, ScreenLanding, ScreenAuth:
		return false
	}
	return false
}

// Controller holds the transient per-instance session: the active identity
// and the active screen. It is never persisted; it is rebuilt from the
// resolved identity on startup.
type Controller struct {
	user   *domain.User
	screen Screen
}

// NewController starts a session on the splash screen with the identity that
// was resolved at startup, or nil when none is signed in.
func NewController(user *domain.User) *Controller {
	return &Controller{user: user, screen: ScreenSplash}
}

// User returns the active identity, or nil.
func (c *Controller) User() *domain.User { return c.user }

// Screen returns the active screen.
func (c *Controller) Screen() Screen { return c.screen }

// CompleteSplash advances past the splash screen: to the dashboard when an
// identity is already resolved, to the landing page otherwise.
func (c *Controller) CompleteSplash() Screen {
	if c.user != nil {
		c.screen = ScreenDashboard
	} else {
		c.screen = ScreenLanding
	}
	return c.screen
}

// SignIn stores the authenticated identity and moves to the dashboard.
func (c *Controller) SignIn(user *domain.User) Screen {
	c.user = user
	c.screen = ScreenDashboard
	return c.screen
}

// SignOut clears the active identity and returns to the landing page
// unconditionally.
func (c *Controller) SignOut() Screen {
	c.user = nil
	c.screen = ScreenLanding
	return c.screen
}

// Navigate moves toward the target screen, substituting a permitted screen
// when the target is gated: identity-gated screens without a signed-in user
// yield Auth, and the admin console without the admin role silently yields
// the dashboard.
func (c *Controller) Navigate(target Screen) Screen {
	switch {
	case target.requiresIdentity() && c.user == nil:
		c.screen = ScreenAuth
	case target == ScreenAdmin && !c.user.IsAdmin():
		c.screen = ScreenDashboard
	default:
		c.screen = target
	}
	return c.screen
}
