package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/msomdec/wysider/internal/domain"
	"github.com/msomdec/wysider/internal/service"
)

// ConceptHandler handles the workspace: strategy generation and saved
// concepts.
type ConceptHandler struct {
	strategies *service.StrategyService
}

// NewConceptHandler creates a new ConceptHandler.
func NewConceptHandler(strategies *service.StrategyService) *ConceptHandler {
	return &ConceptHandler{strategies: strategies}
}

// HandleGenerate runs the Marketer Agent over a raw idea.
// POST /api/strategy
// Request:  {"idea":"..."}
// Response: {"strategy":"..."} or an error body rendered inline by the client
func (h *ConceptHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Idea string `json:"idea"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	strategy, err := h.strategies.Generate(r.Context(), req.Idea)
	if err != nil {
		writeGenerationError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"strategy": strategy})
}

// HandleSave upserts a concept for the current user.
// POST /api/concepts
// Request:  {"id":"...","title":"...","idea":"...","strategy":"..."}
// Response: {"concept": {...}}
func (h *ConceptHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var req struct {
		ID       string `json:"id"`
		Title    string `json:"title"`
		Idea     string `json:"idea"`
		Strategy string `json:"strategy"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	concept := &domain.Concept{
		ID:       req.ID,
		Title:    req.Title,
		Idea:     req.Idea,
		Strategy: req.Strategy,
	}
	if err := h.strategies.Save(r.Context(), user.ID, concept); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("save concept", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to save concept.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"concept": toConceptDTO(*concept),
	})
}

// HandleList returns the current user's saved concepts, newest first.
// GET /api/concepts
// Response: {"concepts": [...]}
func (h *ConceptHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	concepts, err := h.strategies.List(r.Context(), user.ID)
	if err != nil {
		slog.Error("list concepts", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load concepts.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"concepts": toConceptDTOs(concepts),
	})
}

// writeGenerationError maps generation failures onto displayable messages;
// the client renders these in place of the expected result.
func writeGenerationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrConfiguration):
		writeError(w, http.StatusBadGateway, "Configuration Error: The AI service credentials are missing or invalid.")
	case errors.Is(err, domain.ErrConnection):
		writeError(w, http.StatusBadGateway, "Connection Error: I'm having trouble connecting to my knowledge base right now. Please try again later.")
	default:
		slog.Error("generation failed", "error", err)
		writeError(w, http.StatusBadGateway, "System Error: "+err.Error())
	}
}
