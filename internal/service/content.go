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

// ContentService implements per-node content operations
type ContentService struct {
	contentRepo repositories.ContentRepository
	logger      *slog.Logger
}

// NewContentService creates a new content service
func NewContentService(contentRepo repositories.ContentRepository, logger *slog.Logger) *ContentService {
	return &ContentService{
		contentRepo: contentRepo,
		logger:      logger,
	}
}

// GetContent returns the content row for a node. A node whose content was
// never saved and a node that does not exist surface the same not-found.
func (s *ContentService) GetContent(ctx context.Context, nodeID int64) (*models.Content, error) {
	return s.contentRepo.GetByNodeID(ctx, nodeID)
}

// SaveContent upserts the content for a node and returns the resulting row
func (s *ContentService) SaveContent(ctx context.Context, nodeID int64, req *models.SaveContentRequest) (*models.Content, error) {
	if err := validateSaveContentRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if err := s.contentRepo.Upsert(ctx, nodeID, req.ContentJSON); err != nil {
		return nil, err
	}

	return s.contentRepo.GetByNodeID(ctx, nodeID)
}

func validateSaveContentRequest(req *models.SaveContentRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.ContentJSON, validation.Required),
	)
}
