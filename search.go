package scout

import "context"

// SearchResult is a single web search hit.
type SearchResult struct {
	Title   string
	Snippet string
	URL     string
}

// Searcher is a strategy pattern interface for web search backends.
// Search returns up to count results, most relevant first. Each call is
// independent: no caching and no deduplication across calls.
type Searcher interface {
	Search(ctx context.Context, query string, count int) ([]SearchResult, error)
}
