package models

import (
	"time"
)

// Node is a titled, typed, orderable unit within a document. ParentID is a
// loose self-reference: the backend stores it but never walks the hierarchy,
// so no tree structure is materialized here.
type Node struct {
	ID          int64     `json:"id" db:"id"`
	DocumentID  int64     `json:"document_id" db:"document_id"`
	ParentID    *int64    `json:"parent_id" db:"parent_id"` // NULL = top level
	NodeType    string    `json:"node_type" db:"node_type"` // section, equation, figure by convention
	Title       string    `json:"title" db:"title"`
	OrderIndex  int64     `json:"order_index" db:"order_index"`
	IndentLevel int64     `json:"indent_level" db:"indent_level"`
	ImageURL    *string   `json:"image_url" db:"image_url"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type CreateNodeRequest struct {
	DocumentID  int64   `json:"document_id"`
	ParentID    *int64  `json:"parent_id"`
	NodeType    string  `json:"node_type"`
	Title       string  `json:"title"`
	OrderIndex  int64   `json:"order_index"`
	IndentLevel int64   `json:"indent_level"`
	ImageURL    *string `json:"image_url"`
}

// UpdateNodeRequest carries a partial update: nil fields are left untouched.
// Each supplied field is written independently with its own updated_at
// refresh.
type UpdateNodeRequest struct {
	Title       *string `json:"title"`
	OrderIndex  *int64  `json:"order_index"`
	IndentLevel *int64  `json:"indent_level"`
	ParentID    *int64  `json:"parent_id"`
}
