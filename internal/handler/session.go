package handler

import (
	"net/http"

	"github.com/msomdec/wysider/internal/session"
)

// SessionHandler answers the SPA's screen-routing questions. The controller
// is rebuilt per request from the auth cookie; the screen machine itself
// lives in the session package.
type SessionHandler struct{}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

// HandleResolve resolves the post-splash state: dashboard when an identity
// is signed in, landing otherwise.
// GET /api/session
// Response: {"screen":"DASHBOARD","user":{...}} or {"screen":"LANDING"}
func (h *SessionHandler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	ctrl := session.NewController(UserFromContext(r.Context()))
	screen := ctrl.CompleteSplash()

	body := map[string]any{"screen": screen.String()}
	if user := ctrl.User(); user != nil {
		body["user"] = toUserDTO(user)
	}
	writeJSON(w, http.StatusOK, body)
}

// HandleNavigate applies the screen-gating rules to a navigation request and
// returns the screen the client should actually show.
// POST /api/session/navigate
// Request:  {"screen":"ADMIN"}
// Response: {"screen":"DASHBOARD"}
func (h *SessionHandler) HandleNavigate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Screen string `json:"screen"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	target, err := session.ParseScreen(req.Screen)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Unknown screen.")
		return
	}

	ctrl := session.NewController(UserFromContext(r.Context()))
	ctrl.CompleteSplash()

	writeJSON(w, http.StatusOK, map[string]string{
		"screen": ctrl.Navigate(target).String(),
	})
}
