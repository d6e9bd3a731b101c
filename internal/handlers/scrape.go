package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"photolib/internal/catalog"
	"photolib/internal/contextutil"
)

// Scrape modes.
const (
	modeImageDatabase = "image-database"
	modeCustomWebsite = "custom-website"
)

// ScrapeHandler handles HTTP requests for ad-hoc scraping.
type ScrapeHandler struct {
	service *catalog.Service
}

// NewScrapeHandler creates a new ScrapeHandler.
func NewScrapeHandler(service *catalog.Service) *ScrapeHandler {
	return &ScrapeHandler{service: service}
}

// ScrapeRequest represents the HTTP request payload for a scrape job.
// image-database mode searches the given keywords across the named sites,
// optionally fanned out over "site:param" language tokens. custom-website
// mode crawls each URL in full.
type ScrapeRequest struct {
	Mode      string   `json:"mode"`
	Keywords  []string `json:"keywords"`
	Sites     []string `json:"sites"`
	Languages []string `json:"languages"`
	URLs      []string `json:"urls"`
}

// ScrapeResponse reports how many photos a scrape job added.
type ScrapeResponse struct {
	Added int    `json:"added"`
	Mode  string `json:"mode"`
}

// ServeHTTP handles HTTP requests for scrape jobs.
func (h *ScrapeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)
	projectID := chi.URLParam(r, "projectID")

	var req ScrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(ctx, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var added int
	var err error
	switch req.Mode {
	case modeImageDatabase:
		added, err = h.service.ScrapeImageDatabase(ctx, projectID, req.Keywords, req.Sites, req.Languages)
	case modeCustomWebsite:
		added, err = h.service.CrawlWebsites(ctx, projectID, req.URLs)
	default:
		writeError(ctx, w, http.StatusBadRequest, "Mode must be image-database or custom-website")
		return
	}
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to run scrape")
		return
	}

	writeJSON(ctx, w, http.StatusOK, ScrapeResponse{Added: added, Mode: req.Mode})
}
