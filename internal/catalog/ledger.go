package catalog

import (
	"context"
	"sync"

	"photolib/internal/storage"
)

// Ledger deduplicates photo URLs for one collection run: an in-memory
// seen-set catches repeats within the run, and a store existence check
// catches photos persisted by earlier runs. Admission is racy against
// concurrent writers by design; the photos table carries no unique URL
// constraint and an occasional duplicate is acceptable.
type Ledger struct {
	projectID string
	photos    storage.PhotoStore

	mu   sync.Mutex
	seen map[string]bool
}

// NewLedger creates a ledger scoped to one project.
func NewLedger(projectID string, photos storage.PhotoStore) *Ledger {
	return &Ledger{
		projectID: projectID,
		photos:    photos,
		seen:      make(map[string]bool),
	}
}

// Admit reports whether a URL should be persisted. A URL is admitted at
// most once per ledger; URLs already in the store are never admitted.
func (l *Ledger) Admit(ctx context.Context, url string) (bool, error) {
	if url == "" {
		return false, nil
	}

	l.mu.Lock()
	if l.seen[url] {
		l.mu.Unlock()
		return false, nil
	}
	l.seen[url] = true
	l.mu.Unlock()

	exists, err := l.photos.ExistsByURL(ctx, l.projectID, url)
	if err != nil {
		// Unmark so a later attempt can retry the URL after a transient
		// store failure.
		l.mu.Lock()
		delete(l.seen, url)
		l.mu.Unlock()
		return false, err
	}
	return !exists, nil
}
