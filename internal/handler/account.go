package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/msomdec/wysider/internal/domain"
	"github.com/msomdec/wysider/internal/service"
)

// AccountHandler handles profile and redemption requests.
type AccountHandler struct {
	account *service.AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(account *service.AccountService) *AccountHandler {
	return &AccountHandler{account: account}
}

// HandleRedeem applies a redemption code to the current user.
// POST /api/account/redeem
// Request:  {"code":"..."}
// Response: {"user": {...}, "message": "..."} or 422 with "Invalid code."
func (h *AccountHandler) HandleRedeem(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var req struct {
		Code string `json:"code"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	updated, err := h.account.Redeem(r.Context(), user.ID, req.Code)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCode) {
			writeError(w, http.StatusUnprocessableEntity, "Invalid code.")
			return
		}
		slog.Error("redeem code", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	message := "Success! You have been upgraded to Pro+."
	if updated.Role == domain.RoleAdmin && user.Role != domain.RoleAdmin {
		message = "Success! You now have Admin privileges."
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user":    toUserDTO(updated),
		"message": message,
	})
}
