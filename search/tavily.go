package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/avisser/scout"
)

const tavilyEndpoint = "https://api.tavily.com/search"

// Interface compliance check.
var _ scout.Searcher = (*Tavily)(nil)

// Tavily calls the Tavily search API.
type Tavily struct {
	apiKey   string
	endpoint string
	client   *http.Client
	depth    string
}

// TavilyOption configures a [Tavily].
type TavilyOption func(*Tavily)

// WithTavilyDepth sets Tavily's depth parameter (basic or advanced).
// Default is basic.
func WithTavilyDepth(depth string) TavilyOption {
	return func(t *Tavily) { t.depth = depth }
}

// WithTavilyClient sets the HTTP client, overriding the default timeout.
func WithTavilyClient(client *http.Client) TavilyOption {
	return func(t *Tavily) { t.client = client }
}

// WithTavilyEndpoint overrides the API endpoint. Used in tests.
func WithTavilyEndpoint(endpoint string) TavilyOption {
	return func(t *Tavily) { t.endpoint = endpoint }
}

// NewTavily constructs a Tavily search backend.
func NewTavily(apiKey string, opts ...TavilyOption) *Tavily {
	t := &Tavily{
		apiKey:   apiKey,
		endpoint: tavilyEndpoint,
		client:   defaultClient(),
		depth:    "basic",
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Search posts a query to Tavily, requesting up to count results.
func (t *Tavily) Search(ctx context.Context, query string, count int) ([]scout.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, scout.ErrEmptyQuery
	}
	if strings.TrimSpace(t.apiKey) == "" {
		return nil, fmt.Errorf("tavily: API key is missing")
	}

	body := map[string]any{
		"query":       query,
		"api_key":     t.apiKey,
		"depth":       t.depth,
		"max_results": count,
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	resp, err := postWithBackoff(ctx, t.client, t.endpoint, payload)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tavily: http %d", resp.StatusCode)
	}

	var response struct {
		Results []struct {
			Title   string `json:"title"`
			URL     string `json:"url"`
			Content string `json:"content"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("tavily: %w", err)
	}

	results := make([]scout.SearchResult, 0, len(response.Results))
	for _, r := range response.Results {
		results = append(results, scout.SearchResult{Title: r.Title, URL: r.URL, Snippet: r.Content})
		if len(results) >= count {
			break
		}
	}
	return results, nil
}

// postWithBackoff issues the request, retrying on 429 with a doubling
// delay up to 30 seconds.
func postWithBackoff(ctx context.Context, client *http.Client, endpoint string, payload []byte) (*http.Response, error) {
	delay := 1 * time.Second
	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}
		resp.Body.Close()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
		if delay < 30*time.Second {
			delay *= 2
		}
	}
}
