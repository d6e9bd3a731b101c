package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"

	"photolib/internal/taxonomy"
)

const unsplashMaxPerPage = 30

// Unsplash searches the Unsplash REST API. The API has no language filter,
// so a share of searches gets the keyword decorated with a locale location
// term instead.
type Unsplash struct {
	BaseURL   string
	AccessKey string
	client    *http.Client
	rng       *rand.Rand
}

// NewUnsplash creates an Unsplash adapter. An empty access key yields an
// adapter that returns no candidates.
func NewUnsplash(accessKey string, rng *rand.Rand) *Unsplash {
	return &Unsplash{
		BaseURL:   "https://api.unsplash.com",
		AccessKey: accessKey,
		client:    newHTTPClient(),
		rng:       rng,
	}
}

func (u *Unsplash) Name() string { return taxonomy.SourceUnsplash }

func (u *Unsplash) NeedsLanguage() bool { return false }

type unsplashResult struct {
	ID             string `json:"id"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	Description    string `json:"description"`
	AltDescription string `json:"alt_description"`
	URLs           struct {
		Full    string `json:"full"`
		Regular string `json:"regular"`
	} `json:"urls"`
	User struct {
		Name string `json:"name"`
	} `json:"user"`
}

type unsplashResponse struct {
	Results []unsplashResult `json:"results"`
}

// Fetch searches Unsplash for a keyword. The hint is the full locale code,
// used only to pick location terms for keyword decoration.
func (u *Unsplash) Fetch(ctx context.Context, keyword, hint string, limit int) ([]Candidate, error) {
	if u.AccessKey == "" {
		return nil, nil
	}

	if limit <= 0 || limit > unsplashMaxPerPage {
		limit = unsplashMaxPerPage
	}

	params := url.Values{}
	params.Set("query", localizeKeyword(keyword, hint, u.rng))
	params.Set("per_page", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, "GET", u.BaseURL+"/search/photos?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+u.AccessKey)

	resp, err := u.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unsplash bad status %d: %s", resp.StatusCode, string(raw))
	}

	var body unsplashResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	var candidates []Candidate
	for _, res := range body.Results {
		imageURL := res.URLs.Full
		if imageURL == "" {
			imageURL = res.URLs.Regular
		}
		if imageURL == "" {
			continue
		}
		description := res.AltDescription
		if description == "" {
			description = res.Description
		}
		candidates = append(candidates, Candidate{
			RawURL:         imageURL,
			Description:    description,
			Author:         res.User.Name,
			Width:          res.Width,
			Height:         res.Height,
			SourceRecordID: res.ID,
		})
	}
	return candidates, nil
}

// localizeKeyword appends a locale location term to the keyword about 30%
// of the time, when the locale has terms at all. A nil rng disables
// decoration, which keeps tests deterministic.
func localizeKeyword(keyword, localeCode string, rng *rand.Rand) string {
	terms := taxonomy.LocationTerms(localeCode)
	if len(terms) == 0 || rng == nil {
		return keyword
	}
	if rng.Float64() >= 0.3 {
		return keyword
	}
	return keyword + " " + terms[rng.Intn(len(terms))]
}
