package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"photolib/internal/catalog"
)

// CollectionHandler handles HTTP requests for massive collection runs.
type CollectionHandler struct {
	service *catalog.Service
}

// NewCollectionHandler creates a new CollectionHandler.
func NewCollectionHandler(service *catalog.Service) *CollectionHandler {
	return &CollectionHandler{service: service}
}

// StartResponse acknowledges a collection run that now executes in the
// background.
type StartResponse struct {
	Message    string `json:"message"`
	Target     int    `json:"target"`
	Languages  int    `json:"languages"`
	Categories int    `json:"categories"`
}

// Start launches a massive collection run for the project. The run
// continues after the response; progress is polled separately.
//
// swagger:route POST /api/projects/{projectID}/collect collection startCollection
func (h *CollectionHandler) Start(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projectID := chi.URLParam(r, "projectID")

	ack, err := h.service.StartRun(ctx, projectID)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to start collection")
		return
	}

	writeJSON(ctx, w, http.StatusAccepted, StartResponse{
		Message:    "Massive collection started",
		Target:     ack.Target,
		Languages:  ack.Locales,
		Categories: ack.Categories,
	})
}

// Stop cancels the project's in-flight collection run.
//
// swagger:route POST /api/projects/{projectID}/collect/stop collection stopCollection
func (h *CollectionHandler) Stop(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projectID := chi.URLParam(r, "projectID")

	if !h.service.StopRun(projectID) {
		writeError(ctx, w, http.StatusNotFound, "No collection running for project")
		return
	}
	writeJSON(ctx, w, http.StatusAccepted, map[string]string{"message": "Collection stop requested"})
}

// Progress reports how far the project's collection has come, aggregated
// from everything stored so far.
//
// swagger:route GET /api/projects/{projectID}/collection-progress collection collectionProgress
func (h *CollectionHandler) Progress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projectID := chi.URLParam(r, "projectID")

	report, err := h.service.Progress(ctx, projectID)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to build progress report")
		return
	}
	writeJSON(ctx, w, http.StatusOK, report)
}
