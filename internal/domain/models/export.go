package models

type ExportPDFRequest struct {
	DocumentID int64  `json:"document_id"`
	Template   string `json:"template"` // paper, report, resume
}
