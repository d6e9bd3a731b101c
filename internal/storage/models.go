package storage

import "time"

// Text amount buckets derived from a photo's description at collection time.
const (
	TextAmountNone        = "none"
	TextAmountMinimal     = "minimal"
	TextAmountModerate    = "moderate"
	TextAmountSubstantial = "substantial"
)

// ProjectRecord represents a photo project in the database.
type ProjectRecord struct {
	ID        string // UUID
	Name      string // Unique project name
	CreatedAt time.Time
}

// PhotoRecord represents one collected photo in the database.
// URL is the dedup key within a project; after a URL migration the original
// value is preserved in Metadata under "oldTempUrl".
type PhotoRecord struct {
	ID          string // UUID, assigned at insert when empty
	ProjectID   string
	URL         string
	Description string
	Language    string // bare language code, may be empty
	Locale      string // full locale code, may be empty
	TextAmount  string
	ImageType   string // category key, empty for ad-hoc scrape entries
	UsageCount  int
	Metadata    map[string]any // stored as a JSON TEXT column
	CreatedAt   time.Time
}

// ValueCount pairs a distinct column value with its row count.
type ValueCount struct {
	Value string `json:"name"`
	Count int    `json:"count"`
}

// URLUpdate describes one row of a bulk URL rewrite.
type URLUpdate struct {
	ID       string
	NewURL   string
	Metadata map[string]any
}

// PhotoFilter narrows photo queries. Empty slices and strings mean "no
// restriction on this field". Usage holds bucket labels "0" through "3"
// plus "4+".
type PhotoFilter struct {
	Languages   []string
	Locales     []string
	TextAmounts []string
	ImageTypes  []string
	Usage       []string
	Source      string
}
