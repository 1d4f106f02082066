package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avisser/scout"
)

const braveEndpoint = "https://api.search.brave.com/res/v1/web/search"

// Interface compliance check.
var _ scout.Searcher = (*Brave)(nil)

// Brave uses the Brave Search API. An API key is required via the
// X-Subscription-Token header.
type Brave struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// BraveOption configures a [Brave].
type BraveOption func(*Brave)

// WithBraveClient sets the HTTP client, overriding the default timeout.
func WithBraveClient(client *http.Client) BraveOption {
	return func(b *Brave) { b.client = client }
}

// WithBraveEndpoint overrides the API endpoint. Used in tests.
func WithBraveEndpoint(endpoint string) BraveOption {
	return func(b *Brave) { b.endpoint = endpoint }
}

// NewBrave constructs a Brave search backend.
func NewBrave(apiKey string, opts ...BraveOption) *Brave {
	b := &Brave{apiKey: apiKey, endpoint: braveEndpoint, client: defaultClient()}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Search executes a Brave web search, requesting up to count results.
// 429 responses are retried after the delay the X-RateLimit-Reset
// header asks for.
func (b *Brave) Search(ctx context.Context, query string, count int) ([]scout.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, scout.ErrEmptyQuery
	}
	if strings.TrimSpace(b.apiKey) == "" {
		return nil, fmt.Errorf("brave: API key is missing")
	}

	q := url.Values{}
	q.Set("q", query)
	q.Set("count", strconv.Itoa(count))
	endpoint := b.endpoint + "?" + q.Encode()

	var resp *http.Response
	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("X-Subscription-Token", b.apiKey)

		resp, err = b.client.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusTooManyRequests {
			break
		}
		wait := braveRetryDelay(resp.Header)
		resp.Body.Close()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("brave: http %d", resp.StatusCode)
	}

	var payload struct {
		Web struct {
			Results []struct {
				Title       string `json:"title"`
				URL         string `json:"url"`
				Description string `json:"description"`
			} `json:"results"`
		} `json:"web"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("brave: %w", err)
	}

	results := make([]scout.SearchResult, 0, len(payload.Web.Results))
	for _, r := range payload.Web.Results {
		results = append(results, scout.SearchResult{Title: r.Title, URL: r.URL, Snippet: r.Description})
		if len(results) >= count {
			break
		}
	}
	return results, nil
}

// braveRetryDelay reads the X-RateLimit-Reset header to determine how
// long to wait before retrying. The header is a comma-separated list of
// reset times in seconds (e.g. "1, 1419704"); the smallest value wins.
// Falls back to 1 second if the header is missing or unparseable.
func braveRetryDelay(h http.Header) time.Duration {
	raw := h.Get("X-RateLimit-Reset")
	if raw == "" {
		return 1 * time.Second
	}
	minReset := -1
	for _, part := range strings.Split(raw, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 {
			continue
		}
		if minReset < 0 || n < minReset {
			minReset = n
		}
	}
	if minReset <= 0 {
		return 1 * time.Second
	}
	return time.Duration(minReset) * time.Second
}
