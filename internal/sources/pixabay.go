package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"photolib/internal/taxonomy"
)

const pixabayMaxPerPage = 80

// Pixabay searches the Pixabay REST API. It is the only source with a
// first-class language parameter, so it anchors the high-priority
// collection phase.
type Pixabay struct {
	BaseURL string
	APIKey  string
	client  *http.Client
}

// NewPixabay creates a Pixabay adapter. An empty key yields an adapter
// that returns no candidates.
func NewPixabay(apiKey string) *Pixabay {
	return &Pixabay{
		BaseURL: "https://pixabay.com/api/",
		APIKey:  apiKey,
		client:  newHTTPClient(),
	}
}

func (p *Pixabay) Name() string { return taxonomy.SourcePixabay }

func (p *Pixabay) NeedsLanguage() bool { return true }

type pixabayHit struct {
	ID            int    `json:"id"`
	PageURL       string `json:"pageURL"`
	Tags          string `json:"tags"`
	User          string `json:"user"`
	ImageWidth    int    `json:"imageWidth"`
	ImageHeight   int    `json:"imageHeight"`
	WebformatURL  string `json:"webformatURL"`
	LargeImageURL string `json:"largeImageURL"`
}

type pixabayResponse struct {
	Hits []pixabayHit `json:"hits"`
}

// Fetch searches Pixabay for a keyword. The hint is the two-letter
// language parameter; when empty the search runs unfiltered.
func (p *Pixabay) Fetch(ctx context.Context, keyword, hint string, limit int) ([]Candidate, error) {
	if p.APIKey == "" {
		return nil, nil
	}

	if limit <= 0 || limit > pixabayMaxPerPage {
		limit = pixabayMaxPerPage
	}

	params := url.Values{}
	params.Set("key", p.APIKey)
	params.Set("q", strings.ReplaceAll(keyword, " ", "+"))
	params.Set("image_type", "photo")
	params.Set("per_page", strconv.Itoa(limit))
	params.Set("safesearch", "true")
	if hint != "" {
		params.Set("lang", hint)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", p.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("pixabay bad status %d: %s", resp.StatusCode, string(raw))
	}

	var body pixabayResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	var candidates []Candidate
	for _, hit := range body.Hits {
		imageURL := hit.LargeImageURL
		if imageURL == "" {
			imageURL = hit.WebformatURL
		}
		if imageURL == "" {
			continue
		}
		candidates = append(candidates, Candidate{
			RawURL:         imageURL,
			Description:    hit.Tags,
			Author:         hit.User,
			Width:          hit.ImageWidth,
			Height:         hit.ImageHeight,
			SourceRecordID: strconv.Itoa(hit.ID),
		})
	}
	return candidates, nil
}
