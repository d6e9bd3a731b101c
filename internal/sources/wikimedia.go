package sources

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"photolib/internal/taxonomy"
)

const wikimediaMaxResults = 40

// Wikimedia scrapes the Commons MediaSearch results page. Commons has no
// stable search API for this use, so the adapter parses the rendered HTML.
type Wikimedia struct {
	BaseURL string
	// FetchDetails turns on a second request per candidate against the
	// file description page for author and license. Off by default, it
	// multiplies request volume by the result count.
	FetchDetails bool
	client       *http.Client
	rng          *rand.Rand
}

// NewWikimedia creates a Wikimedia Commons adapter. No credentials are
// required.
func NewWikimedia(rng *rand.Rand) *Wikimedia {
	return &Wikimedia{
		BaseURL: "https://commons.wikimedia.org",
		client:  newHTTPClient(),
		rng:     rng,
	}
}

func (w *Wikimedia) Name() string { return taxonomy.SourceWikimedia }

func (w *Wikimedia) NeedsLanguage() bool { return false }

// Fetch scrapes the MediaSearch page for a keyword. The hint is the full
// locale code, used only for location-term keyword decoration.
func (w *Wikimedia) Fetch(ctx context.Context, keyword, hint string, limit int) ([]Candidate, error) {
	if limit <= 0 || limit > wikimediaMaxResults {
		limit = wikimediaMaxResults
	}

	searchURL := w.BaseURL + "/w/index.php?search=" + url.QueryEscape(localizeKeyword(keyword, hint, w.rng)) +
		"&title=Special:MediaSearch&go=Go&type=image"

	req, err := http.NewRequestWithContext(ctx, "GET", searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wikimedia bad status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse search page: %w", err)
	}

	var candidates []Candidate
	doc.Find("figure.sdms-search-result__media").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if len(candidates) >= limit {
			return false
		}

		img := sel.Find("img")
		imageURL := strings.TrimSpace(img.AttrOr("src", ""))
		if !usableCommonsURL(imageURL) {
			return true
		}

		c := Candidate{
			RawURL:      imageURL,
			Description: strings.TrimSpace(img.AttrOr("alt", "")),
		}

		detailPath := sel.Find("a.sdms-search-result__media-container").AttrOr("href", "")
		if detailPath != "" {
			c.SourceRecordID = detailPath
			if w.FetchDetails {
				c.Author, c.License = w.fetchDetails(ctx, detailPath)
			}
		}

		candidates = append(candidates, c)
		return true
	})

	return candidates, nil
}

// usableCommonsURL rejects vector images and chrome assets that show up in
// the search result markup.
func usableCommonsURL(imageURL string) bool {
	if imageURL == "" {
		return false
	}
	if strings.HasSuffix(imageURL, ".svg") {
		return false
	}
	if strings.Contains(imageURL, "/static/") || strings.Contains(imageURL, "/resources/") {
		return false
	}
	return true
}

// fetchDetails pulls author and license from the file description page.
// Failures return empty strings; the candidate is still usable.
func (w *Wikimedia) fetchDetails(ctx context.Context, detailPath string) (author, license string) {
	req, err := http.NewRequestWithContext(ctx, "GET", w.BaseURL+detailPath, nil)
	if err != nil {
		return "", ""
	}
	resp, err := w.client.Do(req)
	if err != nil {
		return "", ""
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return "", ""
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", ""
	}
	author = strings.TrimSpace(doc.Find("#fileinfotpl_aut").Text())
	license = strings.TrimSpace(doc.Find("#licensetpl_long").Text())
	return author, license
}
