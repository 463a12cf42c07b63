package service

import (
	"context"
	"errors"
	"testing"

	"typeset/internal/domain"
	"typeset/internal/domain/models"
)

func newTestExportService(t *testing.T) *ExportService {
	t.Helper()
	registry, err := NewTemplateRegistry()
	if err != nil {
		t.Fatalf("NewTemplateRegistry() error = %v", err)
	}
	return NewExportService(registry, discardLogger())
}

func TestTemplateRegistry(t *testing.T) {
	registry, err := NewTemplateRegistry()
	if err != nil {
		t.Fatalf("NewTemplateRegistry() error = %v", err)
	}

	wantIDs := []string{"paper", "report", "resume"}
	list := registry.List()
	if len(list) != len(wantIDs) {
		t.Fatalf("List() returned %d templates, want %d", len(list), len(wantIDs))
	}
	for i, id := range wantIDs {
		if list[i].ID != id {
			t.Errorf("List()[%d].ID = %q, want %q", i, list[i].ID, id)
		}
	}

	tpl, ok := registry.Get("paper")
	if !ok {
		t.Fatal("Get(paper) not found")
	}
	if tpl.Name == "" || tpl.PageSize == "" {
		t.Errorf("template metadata incomplete: %+v", tpl)
	}

	if _, ok := registry.Get("poster"); ok {
		t.Error("Get(poster) should not be found")
	}
}

func TestExportPDF(t *testing.T) {
	svc := newTestExportService(t)

	tests := []struct {
		name             string
		req              *models.ExportPDFRequest
		wantErr          error
		wantTemplateName string
	}{
		{
			name:             "known template enriched",
			req:              &models.ExportPDFRequest{DocumentID: 7, Template: "paper"},
			wantTemplateName: "Academic Paper",
		},
		{
			name: "unknown template echoed",
			req:  &models.ExportPDFRequest{DocumentID: 7, Template: "poster"},
		},
		{
			name:    "missing document id",
			req:     &models.ExportPDFRequest{Template: "paper"},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "missing template",
			req:     &models.ExportPDFRequest{DocumentID: 7},
			wantErr: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ack, err := svc.ExportPDF(context.Background(), tt.req)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExportPDF() error = %v", err)
			}

			if ack.Message != "PDF export not yet implemented" {
				t.Errorf("Message = %q", ack.Message)
			}
			if ack.DocumentID != tt.req.DocumentID {
				t.Errorf("DocumentID = %d, want %d", ack.DocumentID, tt.req.DocumentID)
			}
			if ack.Template != tt.req.Template {
				t.Errorf("Template = %q, want %q", ack.Template, tt.req.Template)
			}
			if ack.TemplateName != tt.wantTemplateName {
				t.Errorf("TemplateName = %q, want %q", ack.TemplateName, tt.wantTemplateName)
			}
		})
	}
}
