package handler

import (
	"log/slog"
	"net/http"

	"typeset/internal/domain/models"
	"typeset/internal/httputil"
	"typeset/internal/service"
)

// ContentHandler handles per-node content HTTP requests
type ContentHandler struct {
	contentService *service.ContentService
	logger         *slog.Logger
}

// NewContentHandler creates a new content handler
func NewContentHandler(contentService *service.ContentService, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
		logger:         logger,
	}
}

// GetContent returns the content for a node, or 404 if nothing was ever
// saved for it (indistinguishable from the node itself not existing)
// GET /api/content/{node_id}
func (h *ContentHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	nodeID, err := httputil.PathID(r, "node_id")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	content, err := h.contentService.GetContent(r.Context(), nodeID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, content)
}

// SaveContent upserts the content for a node and returns the resulting row
// PUT /api/content/{node_id}
func (h *ContentHandler) SaveContent(w http.ResponseWriter, r *http.Request) {
	nodeID, err := httputil.PathID(r, "node_id")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req models.SaveContentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	content, err := h.contentService.SaveContent(r.Context(), nodeID, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, content)
}
