package sources

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Scraper pulls image URLs out of arbitrary web pages for ad-hoc
// collection, outside the stock-photo adapters.
type Scraper struct {
	UserAgent string
	client    *http.Client
}

// NewScraper creates a page scraper.
func NewScraper() *Scraper {
	return &Scraper{
		UserAgent: "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
		client:    newHTTPClient(),
	}
}

// ScrapePage collects image candidates from every img and source tag on a
// single page. Relative URLs are resolved against the page URL; srcset
// entries contribute their first URL.
func (s *Scraper) ScrapePage(ctx context.Context, pageURL string) ([]Candidate, error) {
	doc, base, err := s.fetchDocument(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	return extractImages(doc, base), nil
}

func extractImages(doc *goquery.Document, base *url.URL) []Candidate {
	var candidates []Candidate
	seen := make(map[string]bool)
	doc.Find("img, source").Each(func(_ int, sel *goquery.Selection) {
		rawSrc := sel.AttrOr("src", "")
		if rawSrc == "" {
			rawSrc = firstSrcsetURL(sel.AttrOr("srcset", ""))
		}
		if rawSrc == "" {
			return
		}

		fullURL := resolveURL(base, rawSrc)
		if fullURL == "" || seen[fullURL] {
			return
		}
		seen[fullURL] = true

		candidates = append(candidates, Candidate{
			RawURL:      fullURL,
			Description: strings.TrimSpace(sel.AttrOr("alt", "")),
		})
	})
	return candidates
}

// CrawlSite walks every reachable page under baseURL in breadth-first
// order and calls visit with each page's candidates. Links leaving the
// base URL prefix, mailto: and tel: links are not followed. Page fetch
// failures are skipped; a non-nil error from visit stops the crawl.
func (s *Scraper) CrawlSite(ctx context.Context, baseURL string, visit func(pageURL string, candidates []Candidate) error) error {
	visited := make(map[string]bool)
	queue := []string{baseURL}

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		current := queue[0]
		queue = queue[1:]
		if visited[current] {
			continue
		}
		visited[current] = true

		doc, base, err := s.fetchDocument(ctx, current)
		if err != nil {
			continue
		}

		if err := visit(current, extractImages(doc, base)); err != nil {
			return err
		}

		doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
			href := sel.AttrOr("href", "")
			if href == "" || strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "tel:") {
				return
			}
			next := resolveURL(base, href)
			if next != "" && strings.HasPrefix(next, baseURL) && !visited[next] {
				queue = append(queue, next)
			}
		})
	}

	return nil
}

func (s *Scraper) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, *url.URL, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid page url %q: %w", pageURL, err)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", pageURL, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", s.UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch page: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("bad status %d for %s", resp.StatusCode, pageURL)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse page: %w", err)
	}
	return doc, base, nil
}

// firstSrcsetURL extracts the first URL from a srcset attribute, dropping
// the width descriptor and any trailing comma.
func firstSrcsetURL(srcset string) string {
	fields := strings.Fields(srcset)
	if len(fields) == 0 {
		return ""
	}
	return strings.TrimSuffix(fields[0], ",")
}

func resolveURL(base *url.URL, raw string) string {
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	ref, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
