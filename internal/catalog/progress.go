package catalog

import (
	"sync"
	"time"

	"photolib/internal/taxonomy"
)

// BucketState describes where one (locale, category) bucket stands.
type BucketState string

const (
	// BucketPending means collection has not reached the bucket yet.
	BucketPending BucketState = "pending"
	// BucketInProgress means the bucket loop is running.
	BucketInProgress BucketState = "in_progress"
	// BucketSatisfied means the bucket reached its target.
	BucketSatisfied BucketState = "satisfied"
	// BucketExhausted means the attempt budget ran out below target.
	BucketExhausted BucketState = "exhausted"
)

// Progress tracks per-locale, per-category and per-source counts for one
// collection run. It is safe for concurrent use.
type Progress struct {
	mu        sync.Mutex
	started   time.Time
	completed time.Time
	perLocale map[string]*localeProgress
	perSource map[string]int
	buckets   map[string]BucketState // key: locale|category
}

type localeProgress struct {
	total      int
	categories map[string]int
}

// NewProgress builds a progress tracker with every taxonomy bucket
// initialized to pending.
func NewProgress() *Progress {
	p := &Progress{
		started:   time.Now(),
		perLocale: make(map[string]*localeProgress),
		perSource: make(map[string]int),
		buckets:   make(map[string]BucketState),
	}
	for _, l := range taxonomy.Locales() {
		lp := &localeProgress{categories: make(map[string]int)}
		for _, c := range taxonomy.Categories() {
			lp.categories[c.Key] = 0
			p.buckets[l.Code+"|"+c.Key] = BucketPending
		}
		p.perLocale[l.Code] = lp
	}
	return p
}

// Add records images collected for a bucket from one source.
func (p *Progress) Add(localeCode, categoryKey, source string, n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	lp, ok := p.perLocale[localeCode]
	if !ok {
		return
	}
	lp.total += n
	lp.categories[categoryKey] += n
	if source != "" && n > 0 {
		p.perSource[source] += n
	}
}

// SetBucketState moves a bucket to a new state.
func (p *Progress) SetBucketState(localeCode, categoryKey string, state BucketState) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.buckets[localeCode+"|"+categoryKey] = state
}

// BucketStateFor returns a bucket's current state.
func (p *Progress) BucketStateFor(localeCode, categoryKey string) BucketState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.buckets[localeCode+"|"+categoryKey]
}

// MarkCompleted stamps the run's end time.
func (p *Progress) MarkCompleted() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.completed = time.Now()
}

// RunReport is a snapshot of a finished or running collection run.
type RunReport struct {
	Started     time.Time      `json:"started"`
	CompletedAt *time.Time     `json:"completedAt,omitempty"`
	Total       int            `json:"total"`
	ByLocale    map[string]int `json:"byLocale"`
	ByCategory  map[string]int `json:"byCategory"`
	BySource    map[string]int `json:"bySource"`
}

// Report snapshots the tracker.
func (p *Progress) Report() RunReport {
	p.mu.Lock()
	defer p.mu.Unlock()

	r := RunReport{
		Started:    p.started,
		ByLocale:   make(map[string]int),
		ByCategory: make(map[string]int),
		BySource:   make(map[string]int),
	}
	if !p.completed.IsZero() {
		t := p.completed
		r.CompletedAt = &t
	}
	for code, lp := range p.perLocale {
		if lp.total > 0 {
			r.ByLocale[code] = lp.total
		}
		r.Total += lp.total
		for cat, n := range lp.categories {
			if n > 0 {
				r.ByCategory[cat] += n
			}
		}
	}
	for source, n := range p.perSource {
		r.BySource[source] = n
	}
	return r
}
