package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	braveSearchEndpoint = "https://api.search.brave.com/res/v1/web/search"
	searchTimeout       = 30 * time.Second
	maxSearchCount      = 10
)

// SearchResult is one web search hit surfaced to the model and to clients.
type SearchResult struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// SearchFunc performs a web search. Injectable so tests can run the tool
// loop without a live backend.
type SearchFunc func(ctx context.Context, query string, count int) ([]SearchResult, error)

// braveSearch queries the Brave Search API.
type braveSearch struct {
	apiKey string
	client *http.Client
}

func newBraveSearch(apiKey string) *braveSearch {
	return &braveSearch{
		apiKey: apiKey,
		client: &http.Client{Timeout: searchTimeout},
	}
}

func (b *braveSearch) Search(ctx context.Context, query string, count int) ([]SearchResult, error) {
	if b.apiKey == "" {
		return nil, fmt.Errorf("web search is not configured: missing search API key")
	}
	if count <= 0 || count > maxSearchCount {
		count = maxSearchCount
	}

	q := url.Values{}
	q.Set("q", query)
	q.Set("count", fmt.Sprintf("%d", count))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, braveSearchEndpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", b.apiKey)

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search API returned %d", resp.StatusCode)
	}

	var parsed struct {
		Web struct {
			Results []SearchResult `json:"results"`
		} `json:"web"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	return parsed.Web.Results, nil
}
