package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/avisser/scout"
)

// ToolName is the name the agent invokes the search tool by.
const ToolName = "web_search"

// DefaultCount is the number of results requested per search.
const DefaultCount = 5

// Interface compliance check.
var _ scout.ToolExecutor = (*WebSearch)(nil)

// WebSearch adapts a Searcher into the agent's single tool: it
// validates the action, runs the search, and formats the hits as a
// numbered observation that keeps the URL attached to each item so the
// model can cite it.
type WebSearch struct {
	searcher scout.Searcher
	count    int
	site     string
}

// WebSearchOption configures a [WebSearch].
type WebSearchOption func(*WebSearch)

// WithCount sets how many results each search requests. Default is
// DefaultCount; non-positive values are ignored.
func WithCount(n int) WebSearchOption {
	return func(w *WebSearch) {
		if n > 0 {
			w.count = n
		}
	}
}

// WithSite restricts every query to one domain by prefixing the
// standard site: operator, e.g. WithSite("go.dev").
func WithSite(domain string) WebSearchOption {
	return func(w *WebSearch) { w.site = strings.TrimSpace(domain) }
}

// NewWebSearch constructs the tool adapter around a backend.
func NewWebSearch(searcher scout.Searcher, opts ...WebSearchOption) *WebSearch {
	w := &WebSearch{searcher: searcher, count: DefaultCount}
	for _, o := range opts {
		o(w)
	}
	return w
}

// Tool returns the descriptor registered with the agent loop.
func (w *WebSearch) Tool() scout.Tool {
	return scout.Tool{
		Name:        ToolName,
		Description: "Search the web for current information. Input is a plain search query; supports operators like site:example.com.",
	}
}

// Execute runs one search. Backend failures come back as a *ToolError
// for the loop to convert into an observation.
func (w *WebSearch) Execute(ctx context.Context, name, input string) (*scout.ToolResult, error) {
	if name != ToolName {
		return nil, fmt.Errorf("%q: %w", name, scout.ErrToolNotFound)
	}
	query := strings.TrimSpace(input)
	if query == "" {
		return nil, &scout.ToolError{Tool: ToolName, Err: scout.ErrEmptyQuery}
	}
	if w.site != "" && !strings.Contains(query, "site:") {
		query = "site:" + w.site + " " + query
	}

	results, err := w.searcher.Search(ctx, query, w.count)
	if err != nil {
		return nil, &scout.ToolError{Tool: ToolName, Err: err}
	}
	if len(results) == 0 {
		return &scout.ToolResult{Output: fmt.Sprintf("no results found for %q", query)}, nil
	}

	return &scout.ToolResult{Output: Format(results), Sources: results}, nil
}

// Format renders results as the numbered observation text fed back to
// the model.
func Format(results []scout.SearchResult) string {
	var b strings.Builder
	for i, r := range results {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. %s\n   %s", i+1, r.Title, r.URL)
		if r.Snippet != "" {
			fmt.Fprintf(&b, "\n   %s", r.Snippet)
		}
	}
	return b.String()
}
