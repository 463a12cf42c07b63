package service

import (
	"context"
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"typeset/internal/domain"
	"typeset/internal/domain/models"
	"typeset/internal/domain/repositories"
)

// NodeService implements node operations. The hierarchy fields (parent_id,
// order_index, indent_level) are stored as given: no sibling-order
// validation, no depth check, no cross-document or cycle rejection. Tree
// semantics are enforced client-side.
type NodeService struct {
	nodeRepo repositories.NodeRepository
	logger   *slog.Logger
}

// NewNodeService creates a new node service
func NewNodeService(nodeRepo repositories.NodeRepository, logger *slog.Logger) *NodeService {
	return &NodeService{
		nodeRepo: nodeRepo,
		logger:   logger,
	}
}

// ListNodes returns the flat node list for a document ordered by order_index
func (s *NodeService) ListNodes(ctx context.Context, documentID int64) ([]models.Node, error) {
	return s.nodeRepo.ListByDocument(ctx, documentID)
}

// CreateNode inserts a node and returns the created row
func (s *NodeService) CreateNode(ctx context.Context, req *models.CreateNodeRequest) (*models.Node, error) {
	if err := validateCreateNodeRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	node, err := s.nodeRepo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("node created", "id", node.ID, "document_id", node.DocumentID, "node_type", node.NodeType)
	return node, nil
}

// GetNode retrieves a node by ID
func (s *NodeService) GetNode(ctx context.Context, id int64) (*models.Node, error) {
	return s.nodeRepo.GetByID(ctx, id)
}

// UpdateNode applies a partial update. Unsupplied fields are left untouched;
// the row after all writes is returned, or not-found if absent.
func (s *NodeService) UpdateNode(ctx context.Context, id int64, req *models.UpdateNodeRequest) (*models.Node, error) {
	if err := s.nodeRepo.UpdateFields(ctx, id, req); err != nil {
		return nil, err
	}

	return s.nodeRepo.GetByID(ctx, id)
}

// DeleteNode deletes a node, cascading to its content and child nodes.
// Deletion is not existence-checked.
func (s *NodeService) DeleteNode(ctx context.Context, id int64) error {
	return s.nodeRepo.Delete(ctx, id)
}

func validateCreateNodeRequest(req *models.CreateNodeRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.DocumentID, validation.Required),
		// node_type is a free-text tag; required but not constrained to the
		// section/equation/figure convention
		validation.Field(&req.NodeType, validation.Required),
		validation.Field(&req.Title, validation.Required),
	)
}
