// Package sources holds the image source adapters used by catalog
// collection. Each adapter turns a keyword search against one upstream
// provider into a list of photo candidates; the collection engine decides
// which candidates to keep.
package sources

import (
	"context"
	"net/http"
	"time"
)

// Candidate is one photo offered by a source before deduplication.
type Candidate struct {
	RawURL         string
	Description    string
	Author         string
	License        string
	Width          int
	Height         int
	SourceRecordID string // provider-side id, used later for URL migration
}

// Source is a pluggable image provider.
type Source interface {
	// Name returns the stable source name used in photo metadata and
	// taxonomy parameter tables.
	Name() string
	// NeedsLanguage reports whether the source is useless without a
	// language hint. Collection skips such sources for locales that have
	// no parameter for them.
	NeedsLanguage() bool
	// Fetch searches the provider for a keyword and returns up to limit
	// candidates. The hint carries the taxonomy language parameter for
	// language-filtered sources, and the locale code for sources that
	// bias results with location terms. Adapters with missing credentials
	// return no candidates and no error.
	Fetch(ctx context.Context, keyword, hint string, limit int) ([]Candidate, error)
}

// Registry holds the configured sources in collection order.
type Registry struct {
	ordered []Source
	byName  map[string]Source
}

// NewRegistry builds a registry preserving the given order.
func NewRegistry(srcs ...Source) *Registry {
	r := &Registry{byName: make(map[string]Source, len(srcs))}
	for _, s := range srcs {
		r.ordered = append(r.ordered, s)
		r.byName[s.Name()] = s
	}
	return r
}

// Ordered returns the sources in collection order.
func (r *Registry) Ordered() []Source {
	return r.ordered
}

// ByName looks a source up by its stable name.
func (r *Registry) ByName(name string) (Source, bool) {
	s, ok := r.byName[name]
	return s, ok
}

// Len returns the number of registered sources.
func (r *Registry) Len() int {
	return len(r.ordered)
}

// newHTTPClient returns the client used for all upstream calls. Every
// request also carries the caller's context, so the timeout here is a
// backstop against hung connections.
func newHTTPClient() *http.Client {
	return &http.Client{Timeout: 15 * time.Second}
}
