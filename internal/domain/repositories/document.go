package repositories

import (
	"context"

	"typeset/internal/domain/models"
)

// DocumentRepository defines data access operations for documents
type DocumentRepository interface {
	// List returns all documents, most recently updated first
	List(ctx context.Context) ([]models.Document, error)

	// Create inserts a new document and returns the stored row
	Create(ctx context.Context, title string) (*models.Document, error)

	// GetByID retrieves a document by ID
	GetByID(ctx context.Context, id int64) (*models.Document, error)

	// UpdateTitle overwrites the title and refreshes updated_at. It does not
	// report whether a row was touched; callers re-fetch to observe the result.
	UpdateTitle(ctx context.Context, id int64, title string) error

	// Delete removes a document. Deleting an absent ID is not an error.
	Delete(ctx context.Context, id int64) error
}
