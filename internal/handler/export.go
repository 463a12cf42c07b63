package handler

import (
	"log/slog"
	"net/http"

	"typeset/internal/domain/models"
	"typeset/internal/httputil"
	"typeset/internal/service"
)

// ExportHandler handles PDF export requests
type ExportHandler struct {
	exportService *service.ExportService
	logger        *slog.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService *service.ExportService, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
		logger:        logger,
	}
}

// ExportPDF acknowledges an export request without generating a document
// POST /api/export/pdf
func (h *ExportHandler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	var req models.ExportPDFRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ack, err := h.exportService.ExportPDF(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, ack)
}

// ListTemplates returns the built-in export templates
// GET /api/export/templates
func (h *ExportHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.exportService.ListTemplates())
}
