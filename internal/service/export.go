package service

import (
	"context"
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"typeset/internal/domain"
	"typeset/internal/domain/models"
)

// ExportAck acknowledges an export request. No document is generated;
// rendering is unimplemented and the payload says so, echoing the inputs.
type ExportAck struct {
	Message      string `json:"message"`
	DocumentID   int64  `json:"document_id"`
	Template     string `json:"template"`
	TemplateName string `json:"template_name,omitempty"`
}

// ExportService handles PDF export requests. Only the acknowledgement
// contract exists; full rendering is out of scope.
type ExportService struct {
	templates *TemplateRegistry
	logger    *slog.Logger
}

// NewExportService creates a new export service
func NewExportService(templates *TemplateRegistry, logger *slog.Logger) *ExportService {
	return &ExportService{
		templates: templates,
		logger:    logger,
	}
}

// ExportPDF acknowledges the request without generating anything. The
// template field is free text; known templates enrich the acknowledgement
// with their display name, unknown ones are echoed as-is.
func (s *ExportService) ExportPDF(ctx context.Context, req *models.ExportPDFRequest) (*ExportAck, error) {
	if err := validateExportRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	ack := &ExportAck{
		Message:    "PDF export not yet implemented",
		DocumentID: req.DocumentID,
		Template:   req.Template,
	}
	if tpl, ok := s.templates.Get(req.Template); ok {
		ack.TemplateName = tpl.Name
	}

	s.logger.Debug("export requested", "document_id", req.DocumentID, "template", req.Template)
	return ack, nil
}

// ListTemplates returns the built-in export templates
func (s *ExportService) ListTemplates() []ExportTemplate {
	return s.templates.List()
}

func validateExportRequest(req *models.ExportPDFRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.DocumentID, validation.Required),
		validation.Field(&req.Template, validation.Required),
	)
}
