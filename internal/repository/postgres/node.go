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

// PostgresNodeRepository implements the NodeRepository interface
type PostgresNodeRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewNodeRepository creates a new node repository
func NewNodeRepository(config *RepositoryConfig) repositories.NodeRepository {
	return &PostgresNodeRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

const nodeColumns = "id, document_id, parent_id, node_type, title, order_index, indent_level, image_url, created_at, updated_at"

func scanNode(row interface{ Scan(dest ...any) error }) (*models.Node, error) {
	var node models.Node
	err := row.Scan(
		&node.ID,
		&node.DocumentID,
		&node.ParentID,
		&node.NodeType,
		&node.Title,
		&node.OrderIndex,
		&node.IndentLevel,
		&node.ImageURL,
		&node.CreatedAt,
		&node.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &node, nil
}

// ListByDocument returns all nodes for a document ordered by order_index.
// Sibling ordering is not validated for uniqueness or contiguity.
func (r *PostgresNodeRepository) ListByDocument(ctx context.Context, documentID int64) ([]models.Node, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE document_id = $1
		ORDER BY order_index
	`, nodeColumns, r.tables.Nodes)

	rows, err := r.pool.Query(ctx, query, documentID)
	if err != nil {
		return nil, fmt.Errorf("list nodes: %w", err)
	}
	defer rows.Close()

	nodes := []models.Node{}
	for rows.Next() {
		node, err := scanNode(rows)
		if err != nil {
			return nil, fmt.Errorf("scan node: %w", err)
		}
		nodes = append(nodes, *node)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list nodes: %w", err)
	}

	return nodes, nil
}

// Create inserts a new node. document_id and parent_id are not pre-checked
// here; a dangling reference surfaces as a constraint failure from the
// database, and a wrong-document parent_id is accepted.
func (r *PostgresNodeRepository) Create(ctx context.Context, req *models.CreateNodeRequest) (*models.Node, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (document_id, parent_id, node_type, title, order_index, indent_level, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s
	`, r.tables.Nodes, nodeColumns)

	node, err := scanNode(r.pool.QueryRow(ctx, query,
		req.DocumentID,
		req.ParentID,
		req.NodeType,
		req.Title,
		req.OrderIndex,
		req.IndentLevel,
		req.ImageURL,
	))
	if err != nil {
		return nil, fmt.Errorf("create node: %w", err)
	}

	return node, nil
}

// GetByID retrieves a node by ID
func (r *PostgresNodeRepository) GetByID(ctx context.Context, id int64) (*models.Node, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE id = $1
	`, nodeColumns, r.tables.Nodes)

	node, err := scanNode(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("node %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get node: %w", err)
	}

	return node, nil
}

// UpdateFields writes each supplied field as its own statement, each with
// its own updated_at refresh. The writes are deliberately not wrapped in a
// transaction; the final read is what callers return.
func (r *PostgresNodeRepository) UpdateFields(ctx context.Context, id int64, req *models.UpdateNodeRequest) error {
	if req.Title != nil {
		query := fmt.Sprintf(`UPDATE %s SET title = $1, updated_at = now() WHERE id = $2`, r.tables.Nodes)
		if _, err := r.pool.Exec(ctx, query, *req.Title, id); err != nil {
			return fmt.Errorf("update node title: %w", err)
		}
	}

	if req.OrderIndex != nil {
		query := fmt.Sprintf(`UPDATE %s SET order_index = $1, updated_at = now() WHERE id = $2`, r.tables.Nodes)
		if _, err := r.pool.Exec(ctx, query, *req.OrderIndex, id); err != nil {
			return fmt.Errorf("update node order_index: %w", err)
		}
	}

	if req.IndentLevel != nil {
		query := fmt.Sprintf(`UPDATE %s SET indent_level = $1, updated_at = now() WHERE id = $2`, r.tables.Nodes)
		if _, err := r.pool.Exec(ctx, query, *req.IndentLevel, id); err != nil {
			return fmt.Errorf("update node indent_level: %w", err)
		}
	}

	if req.ParentID != nil {
		query := fmt.Sprintf(`UPDATE %s SET parent_id = $1, updated_at = now() WHERE id = $2`, r.tables.Nodes)
		if _, err := r.pool.Exec(ctx, query, *req.ParentID, id); err != nil {
			return fmt.Errorf("update node parent_id: %w", err)
		}
	}

	return nil
}

// Delete removes a node; its content and child nodes cascade. Deleting an
// absent id is not an error.
func (r *PostgresNodeRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Nodes)

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("delete node: %w", err)
	}

	return nil
}
