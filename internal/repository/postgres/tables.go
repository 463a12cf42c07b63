package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TableNames holds dynamically prefixed table names
type TableNames struct {
	Documents string
	Nodes     string
	Content   string
}

// NewTableNames creates table names with the given prefix. An empty prefix
// yields the bare schema names.
func NewTableNames(prefix string) *TableNames {
	return &TableNames{
		Documents: fmt.Sprintf("%sdocuments", prefix),
		Nodes:     fmt.Sprintf("%snodes", prefix),
		Content:   fmt.Sprintf("%scontent", prefix),
	}
}

// EnsureSchema creates the three tables if they do not exist. It is
// idempotent and runs on every boot. Foreign keys cascade on delete, which
// is the only referential cleanup this system relies on.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	statements := []string{
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id BIGSERIAL PRIMARY KEY,
				title TEXT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)
		`, tables.Documents),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id BIGSERIAL PRIMARY KEY,
				document_id BIGINT NOT NULL REFERENCES %s(id) ON DELETE CASCADE,
				parent_id BIGINT REFERENCES %s(id) ON DELETE CASCADE,
				node_type TEXT NOT NULL,
				title TEXT NOT NULL,
				order_index BIGINT NOT NULL,
				indent_level BIGINT NOT NULL DEFAULT 0,
				image_url TEXT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)
		`, tables.Nodes, tables.Documents, tables.Nodes),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id BIGSERIAL PRIMARY KEY,
				node_id BIGINT NOT NULL UNIQUE REFERENCES %s(id) ON DELETE CASCADE,
				content_json TEXT NOT NULL,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)
		`, tables.Content, tables.Nodes),
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	return nil
}
