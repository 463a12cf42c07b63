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

// PostgresDocumentRepository implements the DocumentRepository interface
type PostgresDocumentRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(config *RepositoryConfig) repositories.DocumentRepository {
	return &PostgresDocumentRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// List returns all documents ordered by most-recently-updated first
func (r *PostgresDocumentRepository) List(ctx context.Context) ([]models.Document, error) {
	query := fmt.Sprintf(`
		SELECT id, title, created_at, updated_at
		FROM %s
		ORDER BY updated_at DESC
	`, r.tables.Documents)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	docs := []models.Document{}
	for rows.Next() {
		var doc models.Document
		if err := rows.Scan(&doc.ID, &doc.Title, &doc.CreatedAt, &doc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	return docs, nil
}

// Create inserts a new document with server-assigned id and timestamps
func (r *PostgresDocumentRepository) Create(ctx context.Context, title string) (*models.Document, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (title)
		VALUES ($1)
		RETURNING id, title, created_at, updated_at
	`, r.tables.Documents)

	var doc models.Document
	err := r.pool.QueryRow(ctx, query, title).Scan(
		&doc.ID,
		&doc.Title,
		&doc.CreatedAt,
		&doc.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}

	return &doc, nil
}

// GetByID retrieves a document by ID
func (r *PostgresDocumentRepository) GetByID(ctx context.Context, id int64) (*models.Document, error) {
	query := fmt.Sprintf(`
		SELECT id, title, created_at, updated_at
		FROM %s
		WHERE id = $1
	`, r.tables.Documents)

	var doc models.Document
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&doc.ID,
		&doc.Title,
		&doc.CreatedAt,
		&doc.UpdatedAt,
	)
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("document %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get document: %w", err)
	}

	return &doc, nil
}

// UpdateTitle overwrites the title and refreshes updated_at. An update of a
// non-existent id succeeds silently; the subsequent fetch reports not-found.
func (r *PostgresDocumentRepository) UpdateTitle(ctx context.Context, id int64, title string) error {
	query := fmt.Sprintf(`
		UPDATE %s SET title = $1, updated_at = now() WHERE id = $2
	`, r.tables.Documents)

	if _, err := r.pool.Exec(ctx, query, title, id); err != nil {
		return fmt.Errorf("update document: %w", err)
	}

	return nil
}

// Delete removes a document; nodes and their content cascade. Deleting an
// absent id is not an error.
func (r *PostgresDocumentRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Documents)

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}

	return nil
}
