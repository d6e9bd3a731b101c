package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_photo_store.go -package=mocks photolib/internal/storage PhotoStore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// groupFields maps API-facing field names to the SQL expressions used for
// DISTINCT and GROUP BY queries. "source" lives inside the metadata JSON
// column rather than in its own column.
var groupFields = map[string]string{
	"language":   "language",
	"locale":     "locale",
	"textAmount": "text_amount",
	"imageType":  "image_type",
	"source":     "json_extract(metadata, '$.source')",
}

// PhotoStore defines the interface for photo storage operations.
type PhotoStore interface {
	// Insert stores a new photo. A missing ID is filled with a new UUID.
	Insert(ctx context.Context, photo *PhotoRecord) error
	// ExistsByURL reports whether the project already holds a photo with
	// this exact URL.
	ExistsByURL(ctx context.Context, projectID, url string) (bool, error)
	// List returns one page of photos matching the filter, newest first,
	// along with the total match count.
	List(ctx context.Context, projectID string, filter PhotoFilter, page, limit int) ([]*PhotoRecord, int, error)
	// ListIDs returns the IDs of every photo matching the filter.
	ListIDs(ctx context.Context, projectID string, filter PhotoFilter) ([]string, error)
	// Count returns the number of photos matching the filter.
	Count(ctx context.Context, projectID string, filter PhotoFilter) (int, error)
	// Distinct returns the distinct non-empty values of a field within a
	// project. Valid fields: language, locale, textAmount, imageType, source.
	Distinct(ctx context.Context, projectID, field string) ([]string, error)
	// GroupCount returns per-value row counts for a field, largest first,
	// capped at limit (0 means no cap). Same field names as Distinct.
	GroupCount(ctx context.Context, projectID, field string, limit int) ([]ValueCount, error)
	// LeastUsed returns up to n photos ordered by ascending usage count.
	LeastUsed(ctx context.Context, projectID string, n int) ([]*PhotoRecord, error)
	// IncrementUsage adds one to the usage count of each listed photo.
	IncrementUsage(ctx context.Context, ids []string) error
	// DeleteByIDs removes the listed photos from a project and returns how
	// many rows were deleted.
	DeleteByIDs(ctx context.Context, projectID string, ids []string) (int, error)
	// ListBySource returns every photo in a project whose metadata source
	// matches.
	ListBySource(ctx context.Context, projectID, source string) ([]*PhotoRecord, error)
	// BulkUpdateURLs rewrites URL and metadata for each update in a single
	// transaction and returns how many rows changed.
	BulkUpdateURLs(ctx context.Context, updates []URLUpdate) (int, error)
}

// PhotoRepo provides methods for photo operations.
// It implements the PhotoStore interface.
type PhotoRepo struct {
	db *sql.DB
}

// NewPhotoRepo creates a new PhotoRepo.
func NewPhotoRepo(db *sql.DB) *PhotoRepo {
	return &PhotoRepo{db: db}
}

// Insert stores a new photo. A missing ID is filled with a new UUID.
func (r *PhotoRepo) Insert(ctx context.Context, photo *PhotoRecord) error {
	if photo.ID == "" {
		photo.ID = uuid.New().String()
	}

	meta, err := marshalMetadata(photo.Metadata)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO photos (id, project_id, url, description, language, locale, text_amount, image_type, usage_count, metadata)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		photo.ID, photo.ProjectID, photo.URL, photo.Description, photo.Language,
		photo.Locale, photo.TextAmount, photo.ImageType, photo.UsageCount, meta,
	)
	if err != nil {
		return fmt.Errorf("failed to insert photo: %w", err)
	}

	return nil
}

// ExistsByURL reports whether the project already holds a photo with this
// exact URL.
func (r *PhotoRepo) ExistsByURL(ctx context.Context, projectID, url string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		"SELECT 1 FROM photos WHERE project_id = ? AND url = ? LIMIT 1",
		projectID, url,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check photo url: %w", err)
	}
	return true, nil
}

// List returns one page of photos matching the filter, newest first, along
// with the total match count. Page numbers start at 1.
func (r *PhotoRepo) List(ctx context.Context, projectID string, filter PhotoFilter, page, limit int) ([]*PhotoRecord, int, error) {
	where, args := buildFilter(projectID, filter)

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM photos WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count photos: %w", err)
	}

	if page < 1 {
		page = 1
	}
	query := selectPhotoColumns + " WHERE " + where + " ORDER BY created_at DESC, id LIMIT ? OFFSET ?"
	rows, err := r.db.QueryContext(ctx, query, append(args, limit, (page-1)*limit)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list photos: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	photos, err := scanPhotos(rows)
	if err != nil {
		return nil, 0, err
	}
	return photos, total, nil
}

// ListIDs returns the IDs of every photo matching the filter.
func (r *PhotoRepo) ListIDs(ctx context.Context, projectID string, filter PhotoFilter) ([]string, error) {
	where, args := buildFilter(projectID, filter)

	rows, err := r.db.QueryContext(ctx, "SELECT id FROM photos WHERE "+where, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list photo ids: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan photo id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Count returns the number of photos matching the filter.
func (r *PhotoRepo) Count(ctx context.Context, projectID string, filter PhotoFilter) (int, error) {
	where, args := buildFilter(projectID, filter)

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM photos WHERE "+where, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count photos: %w", err)
	}
	return total, nil
}

// Distinct returns the distinct non-empty values of a field within a project.
func (r *PhotoRepo) Distinct(ctx context.Context, projectID, field string) ([]string, error) {
	expr, ok := groupFields[field]
	if !ok {
		return nil, fmt.Errorf("unknown field %q", field)
	}

	rows, err := r.db.QueryContext(ctx,
		fmt.Sprintf("SELECT DISTINCT %s FROM photos WHERE project_id = ? AND %s IS NOT NULL AND %s != '' ORDER BY 1", expr, expr, expr),
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query distinct %s: %w", field, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan distinct value: %w", err)
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

// GroupCount returns per-value row counts for a field, largest first, capped
// at limit (0 means no cap).
func (r *PhotoRepo) GroupCount(ctx context.Context, projectID, field string, limit int) ([]ValueCount, error) {
	expr, ok := groupFields[field]
	if !ok {
		return nil, fmt.Errorf("unknown field %q", field)
	}

	query := fmt.Sprintf(
		"SELECT %s, COUNT(*) FROM photos WHERE project_id = ? AND %s IS NOT NULL AND %s != '' GROUP BY 1 ORDER BY 2 DESC",
		expr, expr, expr,
	)
	args := []any{projectID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s counts: %w", field, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var counts []ValueCount
	for rows.Next() {
		var vc ValueCount
		if err := rows.Scan(&vc.Value, &vc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan count row: %w", err)
		}
		counts = append(counts, vc)
	}
	return counts, rows.Err()
}

// LeastUsed returns up to n photos ordered by ascending usage count.
func (r *PhotoRepo) LeastUsed(ctx context.Context, projectID string, n int) ([]*PhotoRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		selectPhotoColumns+" WHERE project_id = ? ORDER BY usage_count ASC, id LIMIT ?",
		projectID, n,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query least-used photos: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanPhotos(rows)
}

// IncrementUsage adds one to the usage count of each listed photo.
func (r *PhotoRepo) IncrementUsage(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	_, err := r.db.ExecContext(ctx,
		"UPDATE photos SET usage_count = usage_count + 1 WHERE id IN ("+placeholders(len(ids))+")",
		args...,
	)
	if err != nil {
		return fmt.Errorf("failed to increment usage counts: %w", err)
	}
	return nil
}

// DeleteByIDs removes the listed photos from a project and returns how many
// rows were deleted.
func (r *PhotoRepo) DeleteByIDs(ctx context.Context, projectID string, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	args := []any{projectID}
	for _, id := range ids {
		args = append(args, id)
	}
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM photos WHERE project_id = ? AND id IN ("+placeholders(len(ids))+")",
		args...,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete photos: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read delete count: %w", err)
	}
	return int(n), nil
}

// ListBySource returns every photo in a project whose metadata source matches.
func (r *PhotoRepo) ListBySource(ctx context.Context, projectID, source string) ([]*PhotoRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		selectPhotoColumns+" WHERE project_id = ? AND json_extract(metadata, '$.source') = ? ORDER BY created_at, id",
		projectID, source,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos by source: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanPhotos(rows)
}

// BulkUpdateURLs rewrites URL and metadata for each update in a single
// transaction and returns how many rows changed.
func (r *PhotoRepo) BulkUpdateURLs(ctx context.Context, updates []URLUpdate) (int, error) {
	if len(updates) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.PrepareContext(ctx, "UPDATE photos SET url = ?, metadata = ? WHERE id = ?")
	if err != nil {
		return 0, fmt.Errorf("failed to prepare url update: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	changed := 0
	for _, u := range updates {
		meta, err := marshalMetadata(u.Metadata)
		if err != nil {
			return 0, err
		}
		res, err := stmt.ExecContext(ctx, u.NewURL, meta, u.ID)
		if err != nil {
			return 0, fmt.Errorf("failed to update photo %s: %w", u.ID, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("failed to read update count: %w", err)
		}
		changed += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit url updates: %w", err)
	}
	return changed, nil
}

const selectPhotoColumns = `SELECT id, project_id, url, description, language, locale, text_amount, image_type, usage_count, metadata, created_at FROM photos`

func scanPhotos(rows *sql.Rows) ([]*PhotoRecord, error) {
	var photos []*PhotoRecord
	for rows.Next() {
		var p PhotoRecord
		var meta string
		var createdAtStr string
		if err := rows.Scan(&p.ID, &p.ProjectID, &p.URL, &p.Description, &p.Language,
			&p.Locale, &p.TextAmount, &p.ImageType, &p.UsageCount, &meta, &createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan photo: %w", err)
		}
		if meta != "" && meta != "{}" {
			if err := json.Unmarshal([]byte(meta), &p.Metadata); err != nil {
				return nil, fmt.Errorf("failed to decode photo metadata: %w", err)
			}
		}
		ts, err := parseTimestamp(createdAtStr)
		if err != nil {
			return nil, err
		}
		p.CreatedAt = ts
		photos = append(photos, &p)
	}
	return photos, rows.Err()
}

func parseTimestamp(s string) (time.Time, error) {
	ts, err := time.Parse("2006-01-02 15:04:05", s)
	if err != nil {
		// Try alternative format (SQLite might use different format)
		ts, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse timestamp: %w", err)
		}
	}
	return ts, nil
}

func marshalMetadata(m map[string]any) (string, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to encode photo metadata: %w", err)
	}
	return string(b), nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

// buildFilter compiles a PhotoFilter into a WHERE clause and its arguments.
// The clause always restricts by project id.
func buildFilter(projectID string, f PhotoFilter) (string, []any) {
	clauses := []string{"project_id = ?"}
	args := []any{projectID}

	in := func(column string, values []string) {
		if len(values) == 0 {
			return
		}
		clauses = append(clauses, column+" IN ("+placeholders(len(values))+")")
		for _, v := range values {
			args = append(args, v)
		}
	}

	in("language", f.Languages)
	in("locale", f.Locales)
	in("text_amount", f.TextAmounts)
	in("image_type", f.ImageTypes)

	if len(f.Usage) > 0 {
		var parts []string
		for _, bucket := range f.Usage {
			if bucket == "4+" {
				parts = append(parts, "usage_count >= 4")
				continue
			}
			parts = append(parts, "usage_count = ?")
			args = append(args, bucket)
		}
		clauses = append(clauses, "("+strings.Join(parts, " OR ")+")")
	}

	if f.Source != "" {
		clauses = append(clauses, "json_extract(metadata, '$.source') = ?")
		args = append(args, f.Source)
	}

	return strings.Join(clauses, " AND "), args
}
