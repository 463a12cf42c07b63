package repositories

import (
	"context"

	"typeset/internal/domain/models"
)

// ContentRepository defines data access operations for per-node content
type ContentRepository interface {
	// GetByNodeID retrieves the content row for a node. A node that never
	// had content saved yields the same not-found as a missing node.
	GetByNodeID(ctx context.Context, nodeID int64) (*models.Content, error)

	// Upsert creates the content row on first save and overwrites
	// content_json afterwards. Concurrent savers for the same node serialize
	// through the node_id uniqueness constraint; last writer wins.
	Upsert(ctx context.Context, nodeID int64, contentJSON string) error
}
