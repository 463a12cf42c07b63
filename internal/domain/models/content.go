package models

import (
	"time"
)

// Content is the rich payload associated 1:1 with a node. ContentJSON is an
// opaque blob interpreted by the client; the row is created lazily on the
// first save.
type Content struct {
	ID          int64     `json:"id" db:"id"`
	NodeID      int64     `json:"node_id" db:"node_id"`
	ContentJSON string    `json:"content_json" db:"content_json"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type SaveContentRequest struct {
	ContentJSON string `json:"content_json"`
}
