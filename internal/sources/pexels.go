package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"photolib/internal/taxonomy"
)

const pexelsMaxPerPage = 80

// Pexels searches the Pexels REST API.
type Pexels struct {
	BaseURL string
	APIKey  string
	client  *http.Client
}

// NewPexels creates a Pexels adapter. An empty key yields an adapter that
// returns no candidates.
func NewPexels(apiKey string) *Pexels {
	return &Pexels{
		BaseURL: "https://api.pexels.com",
		APIKey:  apiKey,
		client:  newHTTPClient(),
	}
}

func (p *Pexels) Name() string { return taxonomy.SourcePexels }

func (p *Pexels) NeedsLanguage() bool { return true }

type pexelsPhoto struct {
	ID           int    `json:"id"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Photographer string `json:"photographer"`
	Alt          string `json:"alt"`
	Src          struct {
		Original string `json:"original"`
	} `json:"src"`
}

type pexelsResponse struct {
	Photos []pexelsPhoto `json:"photos"`
}

// Fetch searches Pexels for a keyword. The hint is the locale parameter;
// when empty the search runs unfiltered.
func (p *Pexels) Fetch(ctx context.Context, keyword, hint string, limit int) ([]Candidate, error) {
	if p.APIKey == "" {
		return nil, nil
	}

	if limit <= 0 || limit > pexelsMaxPerPage {
		limit = pexelsMaxPerPage
	}

	params := url.Values{}
	params.Set("query", keyword)
	params.Set("per_page", strconv.Itoa(limit))
	if hint != "" {
		params.Set("locale", hint)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", p.BaseURL+"/v1/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", p.APIKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("pexels bad status %d: %s", resp.StatusCode, string(raw))
	}

	var body pexelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	var candidates []Candidate
	for _, photo := range body.Photos {
		if photo.Src.Original == "" {
			continue
		}
		candidates = append(candidates, Candidate{
			RawURL:         photo.Src.Original,
			Description:    photo.Alt,
			Author:         photo.Photographer,
			Width:          photo.Width,
			Height:         photo.Height,
			SourceRecordID: strconv.Itoa(photo.ID),
		})
	}
	return candidates, nil
}
