package handler

import (
	"log/slog"
	"net/http"

	"github.com/msomdec/wysider/internal/service"
)

// ChatHandler handles the CAI support-chat widget.
type ChatHandler struct {
	chat *service.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chat *service.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// HandleHistory returns the current user's transcript.
// GET /api/chat
// Response: {"messages": [...]}
func (h *ChatHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	messages, err := h.chat.History(r.Context(), user.ID)
	if err != nil {
		slog.Error("load chat history", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load chat history.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"messages": toMessageDTOs(messages),
	})
}

// HandleSend sends a message to the support assistant and returns the
// updated transcript.
// POST /api/chat
// Request:  {"message":"..."}
// Response: {"messages": [...]}
func (h *ChatHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var req struct {
		Message string `json:"message"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	messages, err := h.chat.Send(r.Context(), user.ID, req.Message)
	if err != nil {
		writeGenerationError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"messages": toMessageDTOs(messages),
	})
}
