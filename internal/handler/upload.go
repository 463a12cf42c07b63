package handler

import (
	"log/slog"
	"net/http"

	"typeset/internal/httputil"
	"typeset/internal/service"
)

// UploadHandler handles multipart image uploads
type UploadHandler struct {
	uploadService *service.UploadService
	logger        *slog.Logger
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(uploadService *service.UploadService, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
		logger:        logger,
	}
}

// Upload processes the first multipart field carrying a file and returns the
// public URL and stored filename. A request with no fields is a 400.
// POST /api/upload
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	mr, err := r.MultipartReader()
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "expected multipart form data")
		return
	}

	part, err := mr.NextPart()
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "no file field in request")
		return
	}
	defer part.Close()

	filename := part.FileName()
	if filename == "" {
		httputil.RespondError(w, http.StatusBadRequest, "uploaded field has no filename")
		return
	}

	result, err := h.uploadService.Process(filename, part)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, result)
}
