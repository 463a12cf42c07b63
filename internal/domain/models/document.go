package models

import (
	"time"
)

// Document is the top-level container owning an ordered set of nodes.
type Document struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CreateDocumentRequest is the body for both document create and update;
// a document only carries a title.
type CreateDocumentRequest struct {
	Title string `json:"title"`
}
