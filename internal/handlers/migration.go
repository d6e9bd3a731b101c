package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"photolib/internal/contextutil"
	"photolib/internal/migration"
	"photolib/internal/taxonomy"
)

// MigrationHandler handles HTTP requests for URL migration.
type MigrationHandler struct {
	engine *migration.Engine
}

// NewMigrationHandler creates a new MigrationHandler.
func NewMigrationHandler(engine *migration.Engine) *MigrationHandler {
	return &MigrationHandler{engine: engine}
}

// MigrateRequest selects which source's URLs to migrate. Defaults to
// pixabay, the only source handing out expiring CDN links.
type MigrateRequest struct {
	Source string `json:"source"`
}

// Migrate rewrites the project's transient URLs for a source.
//
// swagger:route POST /api/projects/{projectID}/migrate migration migrateURLs
func (h *MigrationHandler) Migrate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)
	projectID := chi.URLParam(r, "projectID")

	var req MigrateRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WarnContext(ctx, "invalid request body", "error", err)
			writeError(ctx, w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}
	if req.Source == "" {
		req.Source = taxonomy.SourcePixabay
	}

	result, err := h.engine.Migrate(ctx, projectID, req.Source)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to migrate urls")
		return
	}
	writeJSON(ctx, w, http.StatusOK, result)
}

// Status reports how many URLs still need migration for a source.
//
// swagger:route GET /api/projects/{projectID}/migration-status migration migrationStatus
func (h *MigrationHandler) Status(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projectID := chi.URLParam(r, "projectID")

	source := r.URL.Query().Get("source")
	if source == "" {
		source = taxonomy.SourcePixabay
	}

	status, err := h.engine.Scan(ctx, projectID, source)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to scan urls")
		return
	}
	writeJSON(ctx, w, http.StatusOK, status)
}
