package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/msomdec/wysider/internal/export"
)

// ExportHandler renders strategies as downloadable PDF documents.
type ExportHandler struct{}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// HandleExport renders the posted strategy and returns it as a PDF
// attachment.
// POST /api/export
// Request:  {"title":"...","strategy":"..."}
// Response: application/pdf
func (h *ExportHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var req struct {
		Title    string `json:"title"`
		Strategy string `json:"strategy"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if strings.TrimSpace(req.Strategy) == "" {
		writeError(w, http.StatusUnprocessableEntity, "Nothing to export.")
		return
	}
	if req.Title == "" {
		req.Title = "Business Strategy"
	}

	doc := export.Document{
		Title:  req.Title,
		Body:   req.Strategy,
		Author: user.DisplayName,
		Date:   time.Now(),
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(req.Title)+`"`)
	if err := export.Render(doc, w); err != nil {
		// Headers may already be out; log and give up on this response.
		slog.Error("render PDF", "error", err)
	}
}
