// Package mock provides test doubles for scout interfaces using
// function fields.
package mock

import (
	"context"

	"github.com/avisser/scout"
)

// Interface compliance checks.
var (
	_ scout.Model        = (*Model)(nil)
	_ scout.ToolExecutor = (*ToolExecutor)(nil)
	_ scout.Searcher     = (*Searcher)(nil)
)

// Model is a test double for scout.Model.
// Set StreamFn before calling Stream.
type Model struct {
	StreamFn func(ctx context.Context, req scout.Request) (scout.Stream, error)
}

// Stream delegates to StreamFn.
func (m *Model) Stream(ctx context.Context, req scout.Request) (scout.Stream, error) {
	return m.StreamFn(ctx, req)
}

// ToolExecutor is a test double for scout.ToolExecutor.
// Set ExecuteFn before calling Execute.
type ToolExecutor struct {
	ExecuteFn func(ctx context.Context, name, input string) (*scout.ToolResult, error)
}

// Execute delegates to ExecuteFn.
func (e *ToolExecutor) Execute(ctx context.Context, name, input string) (*scout.ToolResult, error) {
	return e.ExecuteFn(ctx, name, input)
}

// Searcher is a test double for scout.Searcher.
// Set SearchFn before calling Search.
type Searcher struct {
	SearchFn func(ctx context.Context, query string, count int) ([]scout.SearchResult, error)
}

// Search delegates to SearchFn.
func (s *Searcher) Search(ctx context.Context, query string, count int) ([]scout.SearchResult, error) {
	return s.SearchFn(ctx, query, count)
}
