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

// DocumentService implements document operations
type DocumentService struct {
	docRepo repositories.DocumentRepository
	logger  *slog.Logger
}

// NewDocumentService creates a new document service
func NewDocumentService(docRepo repositories.DocumentRepository, logger *slog.Logger) *DocumentService {
	return &DocumentService{
		docRepo: docRepo,
		logger:  logger,
	}
}

// ListDocuments returns all documents, most recently updated first. No
// pagination, no filter.
func (s *DocumentService) ListDocuments(ctx context.Context) ([]models.Document, error) {
	return s.docRepo.List(ctx)
}

// CreateDocument creates a new document with server-assigned id and timestamps
func (s *DocumentService) CreateDocument(ctx context.Context, req *models.CreateDocumentRequest) (*models.Document, error) {
	if err := validateDocumentRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	doc, err := s.docRepo.Create(ctx, req.Title)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("document created", "id", doc.ID)
	return doc, nil
}

// GetDocument retrieves a document by ID
func (s *DocumentService) GetDocument(ctx context.Context, id int64) (*models.Document, error) {
	return s.docRepo.GetByID(ctx, id)
}

// UpdateDocument overwrites the title and returns the refreshed row. The
// post-update read is authoritative for the not-found signal.
func (s *DocumentService) UpdateDocument(ctx context.Context, id int64, req *models.CreateDocumentRequest) (*models.Document, error) {
	if err := validateDocumentRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if err := s.docRepo.UpdateTitle(ctx, id, req.Title); err != nil {
		return nil, err
	}

	return s.docRepo.GetByID(ctx, id)
}

// DeleteDocument deletes a document, cascading to its nodes and their
// content. Deletion is not existence-checked.
func (s *DocumentService) DeleteDocument(ctx context.Context, id int64) error {
	return s.docRepo.Delete(ctx, id)
}

func validateDocumentRequest(req *models.CreateDocumentRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Title, validation.Required),
	)
}
