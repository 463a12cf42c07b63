package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"typeset/internal/domain"
	"typeset/internal/domain/models"
	"typeset/internal/domain/repositories"
)

// PostgresContentRepository implements the ContentRepository interface
type PostgresContentRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewContentRepository creates a new content repository
func NewContentRepository(config *RepositoryConfig) repositories.ContentRepository {
	return &PostgresContentRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// GetByNodeID retrieves the content row for a node
func (r *PostgresContentRepository) GetByNodeID(ctx context.Context, nodeID int64) (*models.Content, error) {
	query := fmt.Sprintf(`
		SELECT id, node_id, content_json, updated_at
		FROM %s
		WHERE node_id = $1
	`, r.tables.Content)

	var content models.Content
	err := r.pool.QueryRow(ctx, query, nodeID).Scan(
		&content.ID,
		&content.NodeID,
		&content.ContentJSON,
		&content.UpdatedAt,
	)
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("content for node %d: %w", nodeID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get content: %w", err)
	}

	return &content, nil
}

// Upsert creates the content row on first save, otherwise overwrites
// content_json and refreshes updated_at. The node_id uniqueness constraint
// keeps exactly one row per node; concurrent savers resolve to last writer
// wins through the database's conflict resolution.
func (r *PostgresContentRepository) Upsert(ctx context.Context, nodeID int64, contentJSON string) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (node_id, content_json)
		VALUES ($1, $2)
		ON CONFLICT (node_id) DO UPDATE SET content_json = $2, updated_at = now()
	`, r.tables.Content)

	if _, err := r.pool.Exec(ctx, query, nodeID, contentJSON); err != nil {
		return fmt.Errorf("save content: %w", err)
	}

	return nil
}
