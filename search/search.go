// Package search provides web search backends and the tool adapter
// that exposes one of them to the agent loop.
//
// Available backends:
//
//   - Tavily: requires an API key, JSON POST API
//   - Brave: requires an API key via X-Subscription-Token
//   - DuckDuckGo: free, scrapes the lite HTML interface
//
// All backends implement scout.Searcher. Calls are independent: no
// caching, no deduplication, no shared state between queries.
package search

import (
	"net/http"
	"time"
)

const defaultTimeout = 10 * time.Second

func defaultClient() *http.Client {
	return &http.Client{Timeout: defaultTimeout}
}
