package catalog

import (
	"context"
	"log/slog"
	"time"

	"photolib/internal/sources"
	"photolib/internal/storage"
	"photolib/internal/taxonomy"
)

// Orchestrator runs the massive collection loop: every locale crossed with
// every category, each bucket fed by the source registry until its share
// of the total target is met or the keyword rotation is exhausted.
type Orchestrator struct {
	photos   storage.PhotoStore
	registry *sources.Registry
	logger   *slog.Logger
	target   int
	delay    time.Duration

	// test seams
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration)
}

// NewOrchestrator creates an orchestrator. target is the run-wide image
// goal split evenly across locales and categories; delay spaces out source
// requests between attempts.
func NewOrchestrator(photos storage.PhotoStore, registry *sources.Registry, logger *slog.Logger, target int, delay time.Duration) *Orchestrator {
	return &Orchestrator{
		photos:   photos,
		registry: registry,
		logger:   logger,
		target:   target,
		delay:    delay,
		now:      time.Now,
		sleep:    sleepCtx,
	}
}

// Target returns the run-wide image goal.
func (o *Orchestrator) Target() int {
	return o.target
}

// TargetPerLocale returns each locale's share of the run target.
func (o *Orchestrator) TargetPerLocale() int {
	return o.target / len(taxonomy.Locales())
}

// TargetPerBucket returns each (locale, category) bucket's share.
func (o *Orchestrator) TargetPerBucket() int {
	return o.TargetPerLocale() / len(taxonomy.Categories())
}

// Run executes a full collection pass for a project. High-priority locales
// are processed first, then the rest. The run stops early only on context
// cancellation; source and store failures cost a bucket images, never the
// run. Returns the number of images persisted.
func (o *Orchestrator) Run(ctx context.Context, projectID string, progress *Progress) (int, error) {
	ledger := NewLedger(projectID, o.photos)
	perBucket := o.TargetPerBucket()

	var phase1, phase2 []taxonomy.Locale
	for _, l := range taxonomy.Locales() {
		if taxonomy.HighPriority(l) {
			phase1 = append(phase1, l)
		} else {
			phase2 = append(phase2, l)
		}
	}

	o.logger.Info("collection run started",
		"project_id", projectID,
		"target", o.target,
		"per_bucket", perBucket,
		"high_priority_locales", len(phase1))

	total := 0
	for _, phase := range [][]taxonomy.Locale{phase1, phase2} {
		for _, locale := range phase {
			for _, category := range taxonomy.Categories() {
				progress.SetBucketState(locale.Code, category.Key, BucketInProgress)
				added, err := o.collectBucket(ctx, ledger, projectID, locale, category, perBucket, progress)
				total += added
				if err != nil {
					return total, err
				}
			}
			o.logger.Info("locale done", "locale", locale.Code, "collected_total", total)
		}
	}

	progress.MarkCompleted()
	report := progress.Report()
	o.logger.Info("collection run finished",
		"project_id", projectID,
		"collected", report.Total,
		"locales", len(report.ByLocale),
		"by_category", report.ByCategory,
		"by_source", report.BySource)
	return total, nil
}

// collectBucket fills one (locale, category) bucket. Attempts rotate
// through the keyword list, switching source every full rotation, and stop
// at three rotations. Sources that require a language parameter the locale
// does not have are skipped without burning delay time.
func (o *Orchestrator) collectBucket(ctx context.Context, ledger *Ledger, projectID string, locale taxonomy.Locale, category taxonomy.Category, target int, progress *Progress) (int, error) {
	keywords := taxonomy.KeywordsFor(category.Key, locale.Code)
	srcs := o.registry.Ordered()
	if len(keywords) == 0 || len(srcs) == 0 {
		progress.SetBucketState(locale.Code, category.Key, BucketExhausted)
		return 0, nil
	}

	collected := 0
	maxAttempts := 3 * len(keywords)

	for idx := 0; collected < target && idx < maxAttempts; idx++ {
		if err := ctx.Err(); err != nil {
			return collected, err
		}

		keyword := keywords[idx%len(keywords)]
		src := srcs[(idx/len(keywords))%len(srcs)]
		hint := sourceHint(src, locale)

		if src.NeedsLanguage() && hint == "" {
			continue
		}

		added := o.attempt(ctx, ledger, projectID, locale, category, src, keyword, hint)
		collected += added
		progress.Add(locale.Code, category.Key, src.Name(), added)

		o.sleep(ctx, o.delay)
	}

	state := BucketExhausted
	if collected >= target {
		state = BucketSatisfied
	}
	progress.SetBucketState(locale.Code, category.Key, state)
	return collected, nil
}

// attempt runs one source query and persists the admitted candidates.
// All failures are logged and absorbed.
func (o *Orchestrator) attempt(ctx context.Context, ledger *Ledger, projectID string, locale taxonomy.Locale, category taxonomy.Category, src sources.Source, keyword, hint string) int {
	candidates, err := src.Fetch(ctx, keyword, hint, 0)
	if err != nil {
		o.logger.Warn("source fetch failed",
			"source", src.Name(), "keyword", keyword, "locale", locale.Code, "error", err)
		return 0
	}

	lang := ""
	if src.NeedsLanguage() {
		lang = hint
	}

	added := 0
	for _, c := range candidates {
		ok, err := ledger.Admit(ctx, c.RawURL)
		if err != nil {
			o.logger.Warn("dedup check failed", "url", c.RawURL, "error", err)
			continue
		}
		if !ok {
			continue
		}

		record := &storage.PhotoRecord{
			ProjectID:   projectID,
			URL:         c.RawURL,
			Description: firstNonEmpty(c.Description, keyword),
			Language:    lang,
			Locale:      locale.Code,
			TextAmount:  EstimateTextAmount(c.Description),
			ImageType:   category.Key,
			Metadata:    o.candidateMetadata(c, src.Name(), keyword, category.Key, locale.Code, lang),
		}
		if err := o.photos.Insert(ctx, record); err != nil {
			o.logger.Warn("photo insert failed", "url", c.RawURL, "error", err)
			continue
		}
		added++
	}

	o.logger.Debug("attempt done",
		"source", src.Name(), "keyword", keyword, "locale", locale.Code,
		"category", category.Key, "added", added)
	return added
}

func (o *Orchestrator) candidateMetadata(c sources.Candidate, source, keyword, categoryKey, localeCode, lang string) map[string]any {
	md := map[string]any{
		"source":      source,
		"keyword":     keyword,
		"category":    categoryKey,
		"locale":      localeCode,
		"collectedAt": o.now().UTC().Format(time.RFC3339),
	}
	if lang != "" {
		md["language"] = lang
	}
	if c.SourceRecordID != "" {
		md["sourceRecordId"] = c.SourceRecordID
	}
	if c.Author != "" {
		md["photographer"] = c.Author
	}
	if c.License != "" {
		md["license"] = c.License
	}
	if c.Width > 0 {
		md["width"] = c.Width
	}
	if c.Height > 0 {
		md["height"] = c.Height
	}
	return md
}

// sourceHint picks the per-source hint: the taxonomy language parameter
// for language-filtered sources, the locale code for the rest.
func sourceHint(src sources.Source, locale taxonomy.Locale) string {
	if src.NeedsLanguage() {
		return locale.Params[src.Name()]
	}
	return locale.Code
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func sleepCtx(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
