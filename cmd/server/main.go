package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"typeset/internal/config"
	"typeset/internal/handler"
	"typeset/internal/middleware"
	"typeset/internal/repository/postgres"
	"typeset/internal/service"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"upload_dir", cfg.UploadDir,
	)

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected", "max_conns", postgres.PoolMaxConns)

	// Ensure the schema exists (idempotent)
	tables := postgres.NewTableNames(cfg.TablePrefix)
	if err := postgres.EnsureSchema(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}
	logger.Info("schema ensured", "table_prefix", cfg.TablePrefix)

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	docRepo := postgres.NewDocumentRepository(repoConfig)
	nodeRepo := postgres.NewNodeRepository(repoConfig)
	contentRepo := postgres.NewContentRepository(repoConfig)

	// Export template registry (embedded YAML)
	templateRegistry, err := service.NewTemplateRegistry()
	if err != nil {
		log.Fatalf("Failed to load export templates: %v", err)
	}

	// Create services
	docService := service.NewDocumentService(docRepo, logger)
	nodeService := service.NewNodeService(nodeRepo, logger)
	contentService := service.NewContentService(contentRepo, logger)
	uploadService := service.NewUploadService(cfg.UploadDir, logger)
	exportService := service.NewExportService(templateRegistry, logger)

	// Create handlers
	docHandler := handler.NewDocumentHandler(docService, logger)
	nodeHandler := handler.NewNodeHandler(nodeService, logger)
	contentHandler := handler.NewContentHandler(contentService, logger)
	uploadHandler := handler.NewUploadHandler(uploadService, logger)
	exportHandler := handler.NewExportHandler(exportService, logger)
	healthHandler := handler.NewHealthHandler(pool)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health checks
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.HandleFunc("GET /health/detailed", healthHandler.HealthDetailed)

	// Document routes
	mux.HandleFunc("GET /api/documents", docHandler.ListDocuments)
	mux.HandleFunc("POST /api/documents", docHandler.CreateDocument)
	mux.HandleFunc("GET /api/documents/{id}", docHandler.GetDocument)
	mux.HandleFunc("PUT /api/documents/{id}", docHandler.UpdateDocument)
	mux.HandleFunc("DELETE /api/documents/{id}", docHandler.DeleteDocument)

	// Node routes
	mux.HandleFunc("GET /api/documents/{doc_id}/nodes", nodeHandler.ListNodes)
	mux.HandleFunc("POST /api/nodes", nodeHandler.CreateNode)
	mux.HandleFunc("GET /api/nodes/{id}", nodeHandler.GetNode)
	mux.HandleFunc("PUT /api/nodes/{id}", nodeHandler.UpdateNode)
	mux.HandleFunc("DELETE /api/nodes/{id}", nodeHandler.DeleteNode)

	// Content routes
	mux.HandleFunc("GET /api/content/{node_id}", contentHandler.GetContent)
	mux.HandleFunc("PUT /api/content/{node_id}", contentHandler.SaveContent)

	// File upload
	mux.HandleFunc("POST /api/upload", uploadHandler.Upload)

	// PDF export
	mux.HandleFunc("POST /api/export/pdf", exportHandler.ExportPDF)
	mux.HandleFunc("GET /api/export/templates", exportHandler.ListTemplates)

	// Serve uploaded files
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))

	// Build middleware chain (applied in reverse order, they wrap each other)
	var root http.Handler = mux
	root = middleware.Recovery(logger)(root)
	root = middleware.RequestLog(logger)(root)

	// CORS - outermost so OPTIONS pre-flight requests short-circuit
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOriginList(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
