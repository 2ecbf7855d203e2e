package googlecse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/websage-ai/websage/tools/web_search/models"
)

const endpoint = "https://www.googleapis.com/customsearch/v1"

// ErrNoCredentials is returned without any network call when the API key or
// the search-engine identifier is missing. Callers treat it as "search
// unavailable", not as a transport failure.
var ErrNoCredentials = errors.New("googlecse: api key or engine id not configured")

type Search struct {
	ApiKey   string
	EngineID string
	Timeout  time.Duration
	Endpoint string // overrides the default API endpoint
}

func (s Search) Discover(ctx context.Context, q string, k int) ([]models.Result, error) {
	// https://developers.google.com/custom-search/v1/overview
	if s.ApiKey == "" || s.EngineID == "" {
		return nil, ErrNoCredentials
	}
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	params := url.Values{}
	params.Set("key", s.ApiKey)
	params.Set("cx", s.EngineID)
	params.Set("q", q)
	params.Set("num", fmt.Sprint(k))

	base := s.Endpoint
	if base == "" {
		base = endpoint
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("googlecse: status %d", resp.StatusCode)
	}

	var raw struct {
		Items []struct {
			Title   string `json:"title"`
			Link    string `json:"link"`
			Snippet string `json:"snippet"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}

	var out []models.Result
	for _, it := range raw.Items {
		if it.Link == "" {
			continue
		}
		out = append(out, models.Result{Title: it.Title, URL: it.Link, Snippet: it.Snippet})
		if len(out) >= k {
			break
		}
	}
	return out, nil
}
