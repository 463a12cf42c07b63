package postgres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"typeset/internal/domain"
	"typeset/internal/domain/models"
)

// These tests run against a live database and are skipped unless
// DATABASE_URL is set. Each run uses a unique table prefix and drops its
// tables afterwards.

func setupTestDB(t *testing.T) (*pgxpool.Pool, *RepositoryConfig) {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set, skipping database integration test")
	}

	ctx := context.Background()
	pool, err := CreateConnectionPool(ctx, dbURL)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	tables := NewTableNames(fmt.Sprintf("test_%d_", time.Now().UnixNano()))
	if err := EnsureSchema(ctx, pool, tables); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}

	t.Cleanup(func() {
		for _, table := range []string{tables.Content, tables.Nodes, tables.Documents} {
			_, _ = pool.Exec(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", table))
		}
		pool.Close()
	})

	return pool, &RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func mustCreateDocument(t *testing.T, cfg *RepositoryConfig, title string) *models.Document {
	t.Helper()
	doc, err := NewDocumentRepository(cfg).Create(context.Background(), title)
	if err != nil {
		t.Fatalf("create document: %v", err)
	}
	return doc
}

func mustCreateNode(t *testing.T, cfg *RepositoryConfig, req *models.CreateNodeRequest) *models.Node {
	t.Helper()
	node, err := NewNodeRepository(cfg).Create(context.Background(), req)
	if err != nil {
		t.Fatalf("create node: %v", err)
	}
	return node
}

func TestDocumentLifecycle(t *testing.T) {
	_, cfg := setupTestDB(t)
	ctx := context.Background()
	repo := NewDocumentRepository(cfg)

	doc := mustCreateDocument(t, cfg, "Draft")
	if doc.ID == 0 {
		t.Fatal("expected server-assigned id")
	}
	if doc.CreatedAt.IsZero() || doc.UpdatedAt.IsZero() {
		t.Fatal("expected server-set timestamps")
	}

	got, err := repo.GetByID(ctx, doc.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Draft" {
		t.Errorf("title = %q", got.Title)
	}

	// Update refreshes updated_at and the re-fetch returns the new title
	prior := got.UpdatedAt
	if err := repo.UpdateTitle(ctx, doc.ID, "Final"); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err = repo.GetByID(ctx, doc.ID)
	if err != nil {
		t.Fatalf("re-fetch: %v", err)
	}
	if got.Title != "Final" {
		t.Errorf("title after update = %q", got.Title)
	}
	if got.UpdatedAt.Before(prior) {
		t.Errorf("updated_at went backwards: %v < %v", got.UpdatedAt, prior)
	}

	// List orders by most-recently-updated first
	mustCreateDocument(t, cfg, "Older")
	if err := repo.UpdateTitle(ctx, doc.ID, "Touched"); err != nil {
		t.Fatalf("touch: %v", err)
	}
	docs, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("list len = %d, want 2", len(docs))
	}
	if docs[0].ID != doc.ID {
		t.Errorf("most recently updated document not first")
	}

	if err := repo.Delete(ctx, doc.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, doc.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("get after delete: error = %v, want ErrNotFound", err)
	}

	// Deleting an id that never existed is still a success
	if err := repo.Delete(ctx, 999999); err != nil {
		t.Errorf("delete of absent id: %v", err)
	}
}

func TestUpdateAbsentDocumentSurfacesNotFoundOnFetch(t *testing.T) {
	_, cfg := setupTestDB(t)
	ctx := context.Background()
	repo := NewDocumentRepository(cfg)

	// The update itself succeeds silently; the follow-up read reports 404
	if err := repo.UpdateTitle(ctx, 424242, "Ghost"); err != nil {
		t.Fatalf("update of absent id errored: %v", err)
	}
	if _, err := repo.GetByID(ctx, 424242); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestDocumentDeleteCascades(t *testing.T) {
	pool, cfg := setupTestDB(t)
	ctx := context.Background()

	doc := mustCreateDocument(t, cfg, "Cascade")
	parent := mustCreateNode(t, cfg, &models.CreateNodeRequest{
		DocumentID: doc.ID, NodeType: "section", Title: "Top", OrderIndex: 0,
	})
	child := mustCreateNode(t, cfg, &models.CreateNodeRequest{
		DocumentID: doc.ID, ParentID: &parent.ID, NodeType: "equation",
		Title: "Euler", OrderIndex: 1, IndentLevel: 1,
	})

	contentRepo := NewContentRepository(cfg)
	for _, nodeID := range []int64{parent.ID, child.ID} {
		if err := contentRepo.Upsert(ctx, nodeID, `{"blocks":[]}`); err != nil {
			t.Fatalf("save content: %v", err)
		}
	}

	if err := NewDocumentRepository(cfg).Delete(ctx, doc.ID); err != nil {
		t.Fatalf("delete document: %v", err)
	}

	nodes, err := NewNodeRepository(cfg).ListByDocument(ctx, doc.ID)
	if err != nil {
		t.Fatalf("list nodes: %v", err)
	}
	if len(nodes) != 0 {
		t.Errorf("%d nodes survived the cascade", len(nodes))
	}

	var contentCount int
	err = pool.QueryRow(ctx, fmt.Sprintf("SELECT count(*) FROM %s", cfg.Tables.Content)).Scan(&contentCount)
	if err != nil {
		t.Fatalf("count content: %v", err)
	}
	if contentCount != 0 {
		t.Errorf("%d content rows survived the cascade", contentCount)
	}
}

func TestNodeOrderingAndPartialUpdate(t *testing.T) {
	_, cfg := setupTestDB(t)
	ctx := context.Background()
	repo := NewNodeRepository(cfg)

	doc := mustCreateDocument(t, cfg, "Ordering")
	mustCreateNode(t, cfg, &models.CreateNodeRequest{
		DocumentID: doc.ID, NodeType: "section", Title: "Second", OrderIndex: 10,
	})
	first := mustCreateNode(t, cfg, &models.CreateNodeRequest{
		DocumentID: doc.ID, NodeType: "section", Title: "First", OrderIndex: 5,
	})

	nodes, err := repo.ListByDocument(ctx, doc.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(nodes) != 2 || nodes[0].Title != "First" || nodes[1].Title != "Second" {
		t.Fatalf("unexpected order: %+v", nodes)
	}

	// Partial update touches only the supplied fields
	newTitle := "Renamed"
	newIndent := int64(2)
	if err := repo.UpdateFields(ctx, first.ID, &models.UpdateNodeRequest{
		Title:       &newTitle,
		IndentLevel: &newIndent,
	}); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.GetByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Renamed" || got.IndentLevel != 2 {
		t.Errorf("updated fields not applied: %+v", got)
	}
	if got.OrderIndex != 5 || got.NodeType != "section" {
		t.Errorf("untouched fields changed: %+v", got)
	}
	if !got.UpdatedAt.After(first.UpdatedAt) && !got.UpdatedAt.Equal(first.UpdatedAt) {
		t.Errorf("updated_at went backwards")
	}

	// Updating an absent node errors only on the follow-up read
	if err := repo.UpdateFields(ctx, 777777, &models.UpdateNodeRequest{Title: &newTitle}); err != nil {
		t.Fatalf("update of absent node errored: %v", err)
	}
	if _, err := repo.GetByID(ctx, 777777); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestNodeDeleteCascadesToChildren(t *testing.T) {
	_, cfg := setupTestDB(t)
	ctx := context.Background()
	repo := NewNodeRepository(cfg)

	doc := mustCreateDocument(t, cfg, "Tree")
	parent := mustCreateNode(t, cfg, &models.CreateNodeRequest{
		DocumentID: doc.ID, NodeType: "section", Title: "Parent",
	})
	child := mustCreateNode(t, cfg, &models.CreateNodeRequest{
		DocumentID: doc.ID, ParentID: &parent.ID, NodeType: "figure", Title: "Child",
	})

	if err := repo.Delete(ctx, parent.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, child.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("child survived parent deletion: error = %v", err)
	}
}

func TestContentUpsert(t *testing.T) {
	pool, cfg := setupTestDB(t)
	ctx := context.Background()
	repo := NewContentRepository(cfg)

	doc := mustCreateDocument(t, cfg, "Content")
	node := mustCreateNode(t, cfg, &models.CreateNodeRequest{
		DocumentID: doc.ID, NodeType: "section", Title: "Body",
	})

	// Nothing saved yet: same not-found as a missing node
	if _, err := repo.GetByNodeID(ctx, node.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("error before first save = %v, want ErrNotFound", err)
	}

	if err := repo.Upsert(ctx, node.ID, `{"rev":1}`); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := repo.Upsert(ctx, node.ID, `{"rev":2}`); err != nil {
		t.Fatalf("second save: %v", err)
	}

	content, err := repo.GetByNodeID(ctx, node.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if content.ContentJSON != `{"rev":2}` {
		t.Errorf("content_json = %q, want latest payload", content.ContentJSON)
	}

	var count int
	query := fmt.Sprintf("SELECT count(*) FROM %s WHERE node_id = $1", cfg.Tables.Content)
	if err := pool.QueryRow(ctx, query, node.ID).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("content rows = %d, want exactly 1", count)
	}
}
