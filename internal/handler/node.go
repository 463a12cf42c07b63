package handler

import (
	"log/slog"
	"net/http"

	"typeset/internal/domain/models"
	"typeset/internal/httputil"
	"typeset/internal/service"
)

// NodeHandler handles node HTTP requests
type NodeHandler struct {
	nodeService *service.NodeService
	logger      *slog.Logger
}

// NewNodeHandler creates a new node handler
func NewNodeHandler(nodeService *service.NodeService, logger *slog.Logger) *NodeHandler {
	return &NodeHandler{
		nodeService: nodeService,
		logger:      logger,
	}
}

// ListNodes returns the flat node list for a document ordered by order_index
// GET /api/documents/{doc_id}/nodes
func (h *NodeHandler) ListNodes(w http.ResponseWriter, r *http.Request) {
	docID, err := httputil.PathID(r, "doc_id")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	nodes, err := h.nodeService.ListNodes(r.Context(), docID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, nodes)
}

// CreateNode creates a new node
// POST /api/nodes
func (h *NodeHandler) CreateNode(w http.ResponseWriter, r *http.Request) {
	var req models.CreateNodeRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	node, err := h.nodeService.CreateNode(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, node)
}

// GetNode retrieves a node by ID
// GET /api/nodes/{id}
func (h *NodeHandler) GetNode(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r, "id")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	node, err := h.nodeService.GetNode(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, node)
}

// UpdateNode applies a partial update and returns the row after all writes
// PUT /api/nodes/{id}
func (h *NodeHandler) UpdateNode(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r, "id")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req models.UpdateNodeRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	node, err := h.nodeService.UpdateNode(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, node)
}

// DeleteNode deletes a node, its content, and any child nodes
// DELETE /api/nodes/{id}
func (h *NodeHandler) DeleteNode(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r, "id")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.nodeService.DeleteNode(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
