package handlers

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"photolib/internal/catalog"
	"photolib/internal/contextutil"
	"photolib/internal/storage"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 500

	// distribution panel sizes
	distributionLocales    = 50
	distributionImageTypes = 20
)

// csvHeader is the column layout for CSV export and import.
var csvHeader = []string{"url", "description", "language", "locale", "textAmount", "imageType", "usageCount", "source"}

// PhotosHandler handles HTTP requests for a project's photo library.
type PhotosHandler struct {
	photos storage.PhotoStore
}

// NewPhotosHandler creates a new PhotosHandler.
func NewPhotosHandler(photos storage.PhotoStore) *PhotosHandler {
	return &PhotosHandler{photos: photos}
}

// PhotoListResponse represents the paginated photo listing with the
// filter options still available in the project.
type PhotoListResponse struct {
	Photos           []*storage.PhotoRecord `json:"photos"`
	Total            int                    `json:"total"`
	Page             int                    `json:"page"`
	Limit            int                    `json:"limit"`
	AvailableFilters AvailableFilters       `json:"availableFilters"`
}

// AvailableFilters lists the distinct values present per filterable field.
type AvailableFilters struct {
	Languages   []string `json:"languages"`
	Locales     []string `json:"locales"`
	TextAmounts []string `json:"textAmounts"`
	ImageTypes  []string `json:"imageTypes"`
	Sources     []string `json:"sources"`
}

// DistributionResponse represents per-field photo counts.
type DistributionResponse struct {
	Locales    []storage.ValueCount `json:"locales"`
	ImageTypes []storage.ValueCount `json:"imageTypes"`
}

// IDListRequest represents a request addressing photos by id.
type IDListRequest struct {
	IDs []string `json:"ids"`
}

// UseRequest asks for the n least-used photos.
type UseRequest struct {
	Count int `json:"count"`
}

// parseFilter builds a storage filter from query parameters. Each
// parameter takes comma-separated values.
func parseFilter(r *http.Request) storage.PhotoFilter {
	split := func(key string) []string {
		raw := strings.TrimSpace(r.URL.Query().Get(key))
		if raw == "" {
			return nil
		}
		var out []string
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
		return out
	}

	return storage.PhotoFilter{
		Languages:   split("language"),
		Locales:     split("locale"),
		TextAmounts: split("textAmount"),
		ImageTypes:  split("imageType"),
		Usage:       split("usage"),
		Source:      r.URL.Query().Get("source"),
	}
}

func parsePagination(r *http.Request) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

// List returns a filtered, paginated photo page.
//
// swagger:route GET /api/projects/{projectID}/photos photos listPhotos
func (h *PhotosHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projectID := chi.URLParam(r, "projectID")
	page, limit := parsePagination(r)

	photos, total, err := h.photos.List(ctx, projectID, parseFilter(r), page, limit)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to list photos")
		return
	}

	filters, err := h.availableFilters(r, projectID)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to load filter options")
		return
	}

	writeJSON(ctx, w, http.StatusOK, PhotoListResponse{
		Photos:           photos,
		Total:            total,
		Page:             page,
		Limit:            limit,
		AvailableFilters: filters,
	})
}

func (h *PhotosHandler) availableFilters(r *http.Request, projectID string) (AvailableFilters, error) {
	ctx := r.Context()
	var filters AvailableFilters

	for _, f := range []struct {
		field string
		dst   *[]string
	}{
		{"language", &filters.Languages},
		{"locale", &filters.Locales},
		{"textAmount", &filters.TextAmounts},
		{"imageType", &filters.ImageTypes},
		{"source", &filters.Sources},
	} {
		values, err := h.photos.Distinct(ctx, projectID, f.field)
		if err != nil {
			return AvailableFilters{}, err
		}
		*f.dst = values
	}
	return filters, nil
}

// IDs returns every photo id matching the filter, for bulk selection.
//
// swagger:route GET /api/projects/{projectID}/photos/ids photos listPhotoIDs
func (h *PhotosHandler) IDs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projectID := chi.URLParam(r, "projectID")

	ids, err := h.photos.ListIDs(ctx, projectID, parseFilter(r))
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to list photo ids")
		return
	}
	writeJSON(ctx, w, http.StatusOK, map[string]any{"ids": ids, "total": len(ids)})
}

// Distribution returns the locale and image type breakdowns.
//
// swagger:route GET /api/projects/{projectID}/photos/distribution photos photoDistribution
func (h *PhotosHandler) Distribution(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projectID := chi.URLParam(r, "projectID")

	locales, err := h.photos.GroupCount(ctx, projectID, "locale", distributionLocales)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to aggregate locales")
		return
	}
	imageTypes, err := h.photos.GroupCount(ctx, projectID, "imageType", distributionImageTypes)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to aggregate image types")
		return
	}

	writeJSON(ctx, w, http.StatusOK, DistributionResponse{Locales: locales, ImageTypes: imageTypes})
}

// Delete removes the given photos from the project.
//
// swagger:route POST /api/projects/{projectID}/photos/delete photos deletePhotos
func (h *PhotosHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)
	projectID := chi.URLParam(r, "projectID")

	var req IDListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(ctx, w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.IDs) == 0 {
		writeError(ctx, w, http.StatusBadRequest, "Photo ids are required")
		return
	}

	deleted, err := h.photos.DeleteByIDs(ctx, projectID, req.IDs)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to delete photos")
		return
	}
	writeJSON(ctx, w, http.StatusOK, map[string]int{"deleted": deleted})
}

// Use returns the n least-used photos and bumps their usage counters, so
// repeated calls walk through the whole library before repeating a photo.
//
// swagger:route POST /api/projects/{projectID}/photos/use photos usePhotos
func (h *PhotosHandler) Use(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)
	projectID := chi.URLParam(r, "projectID")

	var req UseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(ctx, w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Count < 1 {
		writeError(ctx, w, http.StatusBadRequest, "Count must be at least 1")
		return
	}

	photos, err := h.photos.LeastUsed(ctx, projectID, req.Count)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to select photos")
		return
	}

	ids := make([]string, 0, len(photos))
	for _, p := range photos {
		ids = append(ids, p.ID)
	}
	if err := h.photos.IncrementUsage(ctx, ids); err != nil {
		handleServiceError(ctx, w, err, "Failed to update usage counts")
		return
	}

	writeJSON(ctx, w, http.StatusOK, map[string]any{"photos": photos, "count": len(photos)})
}

// ExportCSV streams every photo matching the filter as CSV.
//
// swagger:route GET /api/projects/{projectID}/photos/export photos exportPhotos
func (h *PhotosHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)
	projectID := chi.URLParam(r, "projectID")
	filter := parseFilter(r)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="photos.csv"`)

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		logger.ErrorContext(ctx, "failed to write csv header", "error", err)
		return
	}

	// Page through the library so exports of large projects stay bounded
	// in memory.
	for page := 1; ; page++ {
		photos, _, err := h.photos.List(ctx, projectID, filter, page, maxPageLimit)
		if err != nil {
			logger.ErrorContext(ctx, "failed to page photos for export", "error", err)
			return
		}
		if len(photos) == 0 {
			break
		}
		for _, p := range photos {
			source, _ := p.Metadata["source"].(string)
			row := []string{
				p.URL, p.Description, p.Language, p.Locale,
				p.TextAmount, p.ImageType, strconv.Itoa(p.UsageCount), source,
			}
			if err := writer.Write(row); err != nil {
				logger.ErrorContext(ctx, "failed to write csv row", "error", err)
				return
			}
		}
		if len(photos) < maxPageLimit {
			break
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		logger.ErrorContext(ctx, "failed to flush csv", "error", err)
	}
}

// ImportCSV loads photos from an uploaded CSV file. Rows whose URL is
// already in the project are skipped.
//
// swagger:route POST /api/projects/{projectID}/photos/import photos importPhotos
func (h *PhotosHandler) ImportCSV(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)
	projectID := chi.URLParam(r, "projectID")

	reader := csv.NewReader(r.Body)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		writeError(ctx, w, http.StatusBadRequest, "Invalid CSV: missing header row")
		return
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	if _, ok := col["url"]; !ok {
		writeError(ctx, w, http.StatusBadRequest, "Invalid CSV: url column is required")
		return
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	imported, skipped, line := 0, 0, 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			writeError(ctx, w, http.StatusBadRequest, fmt.Sprintf("Invalid CSV at line %d", line))
			return
		}

		url := field(row, "url")
		if url == "" {
			skipped++
			continue
		}
		exists, err := h.photos.ExistsByURL(ctx, projectID, url)
		if err != nil {
			handleServiceError(ctx, w, err, "Failed to check for duplicates")
			return
		}
		if exists {
			skipped++
			continue
		}

		usageCount, _ := strconv.Atoi(field(row, "usageCount"))
		description := field(row, "description")
		record := &storage.PhotoRecord{
			ProjectID:   projectID,
			URL:         url,
			Description: description,
			Language:    field(row, "language"),
			Locale:      field(row, "locale"),
			TextAmount:  field(row, "textAmount"),
			ImageType:   field(row, "imageType"),
			UsageCount:  usageCount,
			Metadata:    map[string]any{"source": importSource(field(row, "source"))},
		}
		if record.TextAmount == "" {
			record.TextAmount = catalog.EstimateTextAmount(description)
		}
		if err := h.photos.Insert(ctx, record); err != nil {
			logger.WarnContext(ctx, "failed to import row", "line", line, "error", err)
			skipped++
			continue
		}
		imported++
	}

	writeJSON(ctx, w, http.StatusOK, map[string]int{"imported": imported, "skipped": skipped})
}

func importSource(source string) string {
	if source == "" {
		return "csv-import"
	}
	return source
}
