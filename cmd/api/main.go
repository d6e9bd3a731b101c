package main

import (
	"log"
	"log/slog"
	"math/rand"
	nethttp "net/http"
	"os"
	"time"

	"photolib/internal/catalog"
	"photolib/internal/config"
	"photolib/internal/http"
	"photolib/internal/migration"
	"photolib/internal/sources"
	"photolib/internal/storage"
)

//go:generate swagger generate spec -o swagger.json

// General API information
//
// This API manages photo library projects: multi-source image collection,
// deduplication, URL migration, and library browsing.
//
// swagger:meta
//
// ---
// swagger: '2.0'
// info:
//   title: Photolib API
//   description: |
//     Catalog collection API for building multilingual photo libraries from
//     Pixabay, Pexels, Unsplash, Wikimedia Commons, and ad-hoc web scrapes.
//   version: 1.0.0
// schemes:
//   - http
//   - https
// consumes:
//   - application/json
// produces:
//   - application/json

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	level := parseLogLevel(cfg.LogLevel)
	opts := &slog.HandlerOptions{
		Level: level,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", level.String(), "format", cfg.LogFormat)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	// Create repository instances
	photoRepo := storage.NewPhotoRepo(db)
	projectRepo := storage.NewProjectRepo(db)

	// Build the source registry. Sources without credentials stay
	// registered and degrade to empty results.
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	registry := sources.NewRegistry(
		sources.NewPixabay(cfg.PixabayAPIKey),
		sources.NewPexels(cfg.PexelsAPIKey),
		sources.NewUnsplash(cfg.UnsplashAccessKey, rng),
		sources.NewWikimedia(rng),
	)
	scraper := sources.NewScraper()
	slog.Info("Source registry ready",
		"sources", registry.Len(),
		"pixabay_key", cfg.PixabayAPIKey != "",
		"pexels_key", cfg.PexelsAPIKey != "",
		"unsplash_key", cfg.UnsplashAccessKey != "")

	// Create collection orchestration and migration services
	orchestrator := catalog.NewOrchestrator(photoRepo, registry, logger, cfg.CollectionTarget, cfg.CollectDelay)
	catalogService := catalog.NewService(photoRepo, projectRepo, registry, scraper, orchestrator, logger)
	migrationEngine := migration.NewEngine(photoRepo, logger)

	// Create router with dependencies
	deps := &http.Deps{
		DB:              db,
		Photos:          photoRepo,
		Projects:        projectRepo,
		CatalogService:  catalogService,
		MigrationEngine: migrationEngine,
	}
	router := http.NewRouter(deps)

	// Start API server. Collection runs are API-triggered, nothing
	// starts at boot.
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr, "collection_target", cfg.CollectionTarget)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
