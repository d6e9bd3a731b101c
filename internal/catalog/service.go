package catalog

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"photolib/internal/service"
	"photolib/internal/sources"
	"photolib/internal/storage"
	"photolib/internal/taxonomy"
)

// Service coordinates collection runs and ad-hoc scrapes for projects.
// At most one massive run is in flight per project.
type Service struct {
	photos       storage.PhotoStore
	projects     storage.ProjectStore
	registry     *sources.Registry
	scraper      *sources.Scraper
	orchestrator *Orchestrator
	logger       *slog.Logger

	mu      sync.Mutex
	active  map[string]bool
	cancels map[string]context.CancelFunc
	runs    map[string]*Progress // latest run per project
}

// NewService creates a collection service.
func NewService(photos storage.PhotoStore, projects storage.ProjectStore, registry *sources.Registry, scraper *sources.Scraper, orchestrator *Orchestrator, logger *slog.Logger) *Service {
	return &Service{
		photos:       photos,
		projects:     projects,
		registry:     registry,
		scraper:      scraper,
		orchestrator: orchestrator,
		logger:       logger,
		active:       make(map[string]bool),
		cancels:      make(map[string]context.CancelFunc),
		runs:         make(map[string]*Progress),
	}
}

// RunAck acknowledges a started collection run.
type RunAck struct {
	Target     int `json:"target"`
	Locales    int `json:"languages"`
	Categories int `json:"categories"`
}

// StartRun launches a massive collection run in the background and
// returns immediately. A second start while a run is active for the same
// project returns service.ErrConflict.
func (s *Service) StartRun(ctx context.Context, projectID string) (RunAck, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return RunAck{}, service.ErrNotFound
		}
		return RunAck{}, service.WrapError(err, "failed to load project")
	}

	s.mu.Lock()
	if s.active[projectID] {
		s.mu.Unlock()
		return RunAck{}, service.WrapError(service.ErrConflict, "collection already running for project")
	}
	progress := NewProgress()
	runCtx, cancel := context.WithCancel(context.Background())
	s.active[projectID] = true
	s.cancels[projectID] = cancel
	s.runs[projectID] = progress
	s.mu.Unlock()

	// The run outlives the HTTP request that triggered it; runCtx is the
	// only handle StopRun needs to abort it.
	go func() {
		defer func() {
			cancel()
			s.mu.Lock()
			delete(s.active, projectID)
			delete(s.cancels, projectID)
			s.mu.Unlock()
		}()
		if _, err := s.orchestrator.Run(runCtx, projectID, progress); err != nil {
			s.logger.Error("collection run aborted", "project_id", projectID, "error", err)
		}
	}()

	return RunAck{
		Target:     s.orchestrator.Target(),
		Locales:    len(taxonomy.Locales()),
		Categories: len(taxonomy.Categories()),
	}, nil
}

// RunActive reports whether a collection run is in flight for a project.
func (s *Service) RunActive(projectID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active[projectID]
}

// StopRun cancels a project's in-flight collection run. Returns false
// when no run is active.
func (s *Service) StopRun(projectID string) bool {
	s.mu.Lock()
	cancel := s.cancels[projectID]
	s.mu.Unlock()
	if cancel == nil {
		return false
	}
	cancel()
	return true
}

// LatestRun reports the most recent collection run for a project, running
// or finished. ok is false when the project never ran in this process.
func (s *Service) LatestRun(projectID string) (RunReport, bool) {
	s.mu.Lock()
	progress := s.runs[projectID]
	s.mu.Unlock()
	if progress == nil {
		return RunReport{}, false
	}
	return progress.Report(), true
}

// ProgressReport aggregates a project's collection state from the store,
// so it reflects every run and import ever done, not just the current run.
type ProgressReport struct {
	TotalImages          int                  `json:"totalImages"`
	Target               int                  `json:"target"`
	Progress             float64              `json:"progress"`
	Active               bool                 `json:"active"`
	LocaleDistribution   []storage.ValueCount `json:"languageDistribution"`
	CategoryDistribution []storage.ValueCount `json:"categoryDistribution"`
	SourceDistribution   []storage.ValueCount `json:"sourceDistribution"`
	LastRun              *RunReport           `json:"lastRun,omitempty"`
}

// Progress builds a progress report for a project.
func (s *Service) Progress(ctx context.Context, projectID string) (*ProgressReport, error) {
	total, err := s.photos.Count(ctx, projectID, storage.PhotoFilter{})
	if err != nil {
		return nil, service.WrapError(err, "failed to count photos")
	}

	byLocale, err := s.photos.GroupCount(ctx, projectID, "locale", 0)
	if err != nil {
		return nil, service.WrapError(err, "failed to aggregate locales")
	}
	byCategory, err := s.photos.GroupCount(ctx, projectID, "imageType", 0)
	if err != nil {
		return nil, service.WrapError(err, "failed to aggregate categories")
	}
	bySource, err := s.photos.GroupCount(ctx, projectID, "source", 0)
	if err != nil {
		return nil, service.WrapError(err, "failed to aggregate sources")
	}

	target := s.orchestrator.Target()
	report := &ProgressReport{
		TotalImages:          total,
		Target:               target,
		Active:               s.RunActive(projectID),
		LocaleDistribution:   byLocale,
		CategoryDistribution: byCategory,
		SourceDistribution:   bySource,
	}
	if target > 0 {
		report.Progress = float64(total) / float64(target) * 100
	}
	if run, ok := s.LatestRun(projectID); ok {
		report.LastRun = &run
	}
	return report, nil
}

// searchPageURL builds the public search page for sites without an API
// adapter, so they can still be page-scraped.
func searchPageURL(site, keyword string) string {
	encoded := url.QueryEscape(keyword)
	switch site {
	case "freepik":
		return "https://www.freepik.com/search?format=search&query=" + encoded
	default:
		return ""
	}
}

// ScrapeImageDatabase runs an ad-hoc keyword search across the named
// sites. Language tokens take the form "site:param" and fan each matching
// site's searches out over its params; sites without a token search
// unfiltered. Returns the number of photos added.
func (s *Service) ScrapeImageDatabase(ctx context.Context, projectID string, keywords, sites, languages []string) (int, error) {
	if len(keywords) == 0 || len(sites) == 0 {
		return 0, &service.ValidationError{Field: "keywords", Message: "keywords and sites are required"}
	}

	hintsBySite := make(map[string][]string)
	for _, token := range languages {
		site, param, ok := strings.Cut(token, ":")
		if !ok {
			continue
		}
		hintsBySite[site] = append(hintsBySite[site], param)
	}

	ledger := NewLedger(projectID, s.photos)
	added := 0
	for _, keyword := range keywords {
		for _, site := range sites {
			if err := ctx.Err(); err != nil {
				return added, err
			}

			src, ok := s.registry.ByName(site)
			if !ok {
				pageURL := searchPageURL(site, keyword)
				if pageURL == "" {
					s.logger.Warn("unknown scrape site", "site", site)
					continue
				}
				added += s.persistPage(ctx, ledger, projectID, pageURL, site)
				continue
			}

			hints := hintsBySite[site]
			if len(hints) == 0 {
				hints = []string{""}
			}
			for _, hint := range hints {
				candidates, err := src.Fetch(ctx, keyword, hint, 0)
				if err != nil {
					s.logger.Warn("ad-hoc fetch failed", "site", site, "keyword", keyword, "error", err)
					continue
				}
				added += s.persistCandidates(ctx, ledger, projectID, candidates, site, keyword, hint)
			}
		}
	}
	return added, nil
}

// CrawlWebsites crawls each given site in full and stores every image
// found. Returns the number of photos added.
func (s *Service) CrawlWebsites(ctx context.Context, projectID string, urls []string) (int, error) {
	if len(urls) == 0 {
		return 0, &service.ValidationError{Field: "urls", Message: "url list is required"}
	}

	ledger := NewLedger(projectID, s.photos)
	added := 0
	for _, baseURL := range urls {
		err := s.scraper.CrawlSite(ctx, baseURL, func(pageURL string, candidates []sources.Candidate) error {
			added += s.persistCandidates(ctx, ledger, projectID, candidates, "custom-website", "", "")
			return ctx.Err()
		})
		if err != nil {
			if ctx.Err() != nil {
				return added, err
			}
			s.logger.Warn("site crawl failed", "url", baseURL, "error", err)
		}
	}
	return added, nil
}

func (s *Service) persistPage(ctx context.Context, ledger *Ledger, projectID, pageURL, site string) int {
	candidates, err := s.scraper.ScrapePage(ctx, pageURL)
	if err != nil {
		s.logger.Warn("page scrape failed", "url", pageURL, "error", err)
		return 0
	}
	return s.persistCandidates(ctx, ledger, projectID, candidates, site, "", "")
}

func (s *Service) persistCandidates(ctx context.Context, ledger *Ledger, projectID string, candidates []sources.Candidate, source, keyword, lang string) int {
	added := 0
	for _, c := range candidates {
		ok, err := ledger.Admit(ctx, c.RawURL)
		if err != nil {
			s.logger.Warn("dedup check failed", "url", c.RawURL, "error", err)
			continue
		}
		if !ok {
			continue
		}

		md := map[string]any{
			"source":      source,
			"collectedAt": time.Now().UTC().Format(time.RFC3339),
		}
		if keyword != "" {
			md["keyword"] = keyword
		}
		if c.SourceRecordID != "" {
			md["sourceRecordId"] = c.SourceRecordID
		}
		if c.Author != "" {
			md["photographer"] = c.Author
		}

		record := &storage.PhotoRecord{
			ProjectID:   projectID,
			URL:         c.RawURL,
			Description: c.Description,
			Language:    lang,
			TextAmount:  EstimateTextAmount(c.Description),
			Metadata:    md,
		}
		if err := s.photos.Insert(ctx, record); err != nil {
			s.logger.Warn("photo insert failed", "url", c.RawURL, "error", err)
			continue
		}
		added++
	}
	return added
}
