package http

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"photolib/internal/catalog"
	"photolib/internal/handlers"
	"photolib/internal/migration"
	"photolib/internal/storage"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	DB              *sql.DB
	Photos          storage.PhotoStore
	Projects        storage.ProjectStore
	CatalogService  *catalog.Service
	MigrationEngine *migration.Engine
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	// Add chi middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(CORS)
	r.Use(LoggerMiddleware)

	healthHandler := handlers.NewHealthHandler(deps.DB)
	projectsHandler := handlers.NewProjectsHandler(deps.Projects)
	photosHandler := handlers.NewPhotosHandler(deps.Photos)
	collectionHandler := handlers.NewCollectionHandler(deps.CatalogService)
	migrationHandler := handlers.NewMigrationHandler(deps.MigrationEngine)
	scrapeHandler := handlers.NewScrapeHandler(deps.CatalogService)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", healthHandler)

		r.Get("/projects", projectsHandler.List)
		r.Post("/projects", projectsHandler.Create)

		r.Route("/projects/{projectID}", func(r chi.Router) {
			r.Put("/", projectsHandler.Rename)
			r.Delete("/", projectsHandler.Delete)

			r.Get("/photos", photosHandler.List)
			r.Get("/photos/ids", photosHandler.IDs)
			r.Get("/photos/distribution", photosHandler.Distribution)
			r.Post("/photos/delete", photosHandler.Delete)
			r.Post("/photos/use", photosHandler.Use)
			r.Get("/photos/export", photosHandler.ExportCSV)
			r.Post("/photos/import", photosHandler.ImportCSV)

			r.Post("/collect", collectionHandler.Start)
			r.Post("/collect/stop", collectionHandler.Stop)
			r.Get("/collection-progress", collectionHandler.Progress)

			r.Post("/migrate", migrationHandler.Migrate)
			r.Get("/migration-status", migrationHandler.Status)

			r.Method(http.MethodPost, "/scrape", scrapeHandler)
		})
	})

	return r
}
