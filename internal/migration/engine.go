// Package migration rewrites transient image URLs into permanent ones.
//
// API sources hand out CDN links that expire after a while. The engine
// walks a project's photos for a source and swaps each expiring link for
// the source's stable page URL, keeping the old link in metadata for
// auditing.
package migration

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"photolib/internal/service"
	"photolib/internal/storage"
	"photolib/internal/taxonomy"
)

// batchSize caps how many URL rewrites go into one transaction.
const batchSize = 100

// Rule decides, for one source, which URLs are transient and what their
// permanent form is.
type Rule interface {
	// Source names the metadata source the rule applies to.
	Source() string
	// Transient reports whether a URL will expire and needs rewriting.
	Transient(url string) bool
	// Permanent builds the stable URL for a photo. The returned id is the
	// source record id the URL was derived from, so callers can backfill
	// metadata. ok is false when no id can be recovered.
	Permanent(photo *storage.PhotoRecord) (url, id string, ok bool)
}

// pixabayIDPattern recovers the numeric photo id embedded in Pixabay CDN
// file names, e.g. "flower-field-1234567_1280.jpg".
var pixabayIDPattern = regexp.MustCompile(`[-_](\d{6,})[-_.]`)

// PixabayRule migrates Pixabay CDN links to pixabay.com/photos/ pages.
type PixabayRule struct{}

func (PixabayRule) Source() string {
	return taxonomy.SourcePixabay
}

// Transient treats CDN hosts and temporary download links as expiring.
// Anything already on a /photos/ page is permanent.
func (PixabayRule) Transient(url string) bool {
	if strings.Contains(url, "cdn.pixabay.com") || strings.Contains(url, "pixabay.com/get") {
		return true
	}
	return !strings.Contains(url, "pixabay.com/photos/")
}

func (PixabayRule) Permanent(photo *storage.PhotoRecord) (string, string, bool) {
	id := metadataString(photo.Metadata, "sourceRecordId")
	if id == "" {
		m := pixabayIDPattern.FindStringSubmatch(photo.URL)
		if m == nil {
			return "", "", false
		}
		id = m[1]
	}
	return fmt.Sprintf("https://pixabay.com/photos/photo-%s/", id), id, true
}

// Engine runs URL migrations against the photo store.
type Engine struct {
	photos storage.PhotoStore
	logger *slog.Logger
	rules  map[string]Rule

	now func() time.Time
}

// NewEngine creates an engine with the built-in rules registered.
func NewEngine(photos storage.PhotoStore, logger *slog.Logger) *Engine {
	e := &Engine{
		photos: photos,
		logger: logger,
		rules:  make(map[string]Rule),
		now:    time.Now,
	}
	e.Register(PixabayRule{})
	return e
}

// Register adds a rule. A rule registered for an existing source replaces
// the previous one.
func (e *Engine) Register(r Rule) {
	e.rules[r.Source()] = r
}

// Status summarizes a project's URL health for one source.
type Status struct {
	Total          int `json:"total"`
	NeedsMigration int `json:"needsMigration"`
	Migrated       int `json:"migrated"`
	Permanent      int `json:"permanent"`
}

// Result reports what one migration pass changed.
type Result struct {
	Total    int `json:"total"`
	Migrated int `json:"migrated"`
	Failed   int `json:"failed"`
}

// Scan counts how many of a project's photos for a source still carry
// transient URLs. Nothing is modified.
func (e *Engine) Scan(ctx context.Context, projectID, source string) (*Status, error) {
	rule, photos, err := e.load(ctx, projectID, source)
	if err != nil {
		return nil, err
	}

	status := &Status{Total: len(photos)}
	for _, p := range photos {
		if metadataString(p.Metadata, "migratedAt") != "" {
			status.Migrated++
		}
		if rule.Transient(p.URL) {
			status.NeedsMigration++
		} else {
			status.Permanent++
		}
	}
	return status, nil
}

// Migrate rewrites every transient URL for a source in a project.
// Rewrites are flushed in batches; photos whose permanent URL cannot be
// derived are counted as failed and left untouched. Already-permanent
// rows are never modified, so a second pass is a no-op.
func (e *Engine) Migrate(ctx context.Context, projectID, source string) (*Result, error) {
	rule, photos, err := e.load(ctx, projectID, source)
	if err != nil {
		return nil, err
	}

	result := &Result{Total: len(photos)}
	batch := make([]storage.URLUpdate, 0, batchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		n, err := e.photos.BulkUpdateURLs(ctx, batch)
		if err != nil {
			return service.WrapError(err, "failed to apply url batch")
		}
		result.Migrated += n
		batch = batch[:0]
		return nil
	}

	for _, p := range photos {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if !rule.Transient(p.URL) {
			continue
		}

		permanent, id, ok := rule.Permanent(p)
		if !ok {
			e.logger.Warn("no permanent url derivable", "photo_id", p.ID, "url", p.URL)
			result.Failed++
			continue
		}

		md := cloneMetadata(p.Metadata)
		md["sourceRecordId"] = id
		if metadataString(md, "oldTempUrl") == "" {
			md["oldTempUrl"] = p.URL
		}
		md["migratedAt"] = e.now().UTC().Format(time.RFC3339)

		batch = append(batch, storage.URLUpdate{ID: p.ID, NewURL: permanent, Metadata: md})
		if len(batch) == batchSize {
			if err := flush(); err != nil {
				return result, err
			}
		}
	}
	if err := flush(); err != nil {
		return result, err
	}

	e.logger.Info("url migration done",
		"project_id", projectID, "source", source,
		"total", result.Total, "migrated", result.Migrated, "failed", result.Failed)
	return result, nil
}

func (e *Engine) load(ctx context.Context, projectID, source string) (Rule, []*storage.PhotoRecord, error) {
	rule, ok := e.rules[source]
	if !ok {
		return nil, nil, &service.ValidationError{Field: "source", Message: fmt.Sprintf("no migration rule for source %q", source)}
	}

	photos, err := e.photos.ListBySource(ctx, projectID, source)
	if err != nil {
		return nil, nil, service.WrapError(err, "failed to list photos for migration")
	}
	return rule, photos, nil
}

func metadataString(md map[string]any, key string) string {
	if md == nil {
		return ""
	}
	s, _ := md[key].(string)
	return s
}

func cloneMetadata(md map[string]any) map[string]any {
	out := make(map[string]any, len(md)+3)
	for k, v := range md {
		out[k] = v
	}
	return out
}
