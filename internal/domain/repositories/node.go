package repositories

import (
	"context"

	"typeset/internal/domain/models"
)

// NodeRepository defines data access operations for nodes
type NodeRepository interface {
	// ListByDocument returns the flat node list for a document ordered by
	// order_index. No tree assembly happens server-side.
	ListByDocument(ctx context.Context, documentID int64) ([]models.Node, error)

	// Create inserts a new node and returns the stored row. Referential
	// checks are left to the database constraints.
	Create(ctx context.Context, req *models.CreateNodeRequest) (*models.Node, error)

	// GetByID retrieves a node by ID
	GetByID(ctx context.Context, id int64) (*models.Node, error)

	// UpdateFields writes each supplied field as its own statement, each
	// refreshing updated_at. Callers re-fetch to observe the result.
	UpdateFields(ctx context.Context, id int64, req *models.UpdateNodeRequest) error

	// Delete removes a node. Deleting an absent ID is not an error.
	Delete(ctx context.Context, id int64) error
}
