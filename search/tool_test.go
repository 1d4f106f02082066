package search_test

import (
	"context"
	"errors"
	"testing"

	"github.com/avisser/scout"
	"github.com/avisser/scout/mock"
	"github.com/avisser/scout/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedSearcher(results ...scout.SearchResult) *mock.Searcher {
	return &mock.Searcher{
		SearchFn: func(_ context.Context, _ string, _ int) ([]scout.SearchResult, error) {
			return results, nil
		},
	}
}

func TestWebSearch_Execute(t *testing.T) {
	t.Parallel()

	t.Run("formats numbered observation with URLs", func(t *testing.T) {
		t.Parallel()

		w := search.NewWebSearch(fixedSearcher(
			scout.SearchResult{Title: "X", Snippet: "302 openings", URL: "https://example.com"},
			scout.SearchResult{Title: "Y", URL: "https://example.org"},
		))

		result, err := w.Execute(context.Background(), search.ToolName, "dallas jobs")
		require.NoError(t, err)
		assert.False(t, result.IsError)
		assert.Equal(t, "1. X\n   https://example.com\n   302 openings\n2. Y\n   https://example.org", result.Output)
		require.Len(t, result.Sources, 2)
		assert.Equal(t, "https://example.com", result.Sources[0].URL)
	})

	t.Run("passes configured count to the backend", func(t *testing.T) {
		t.Parallel()

		var gotCount int
		searcher := &mock.Searcher{
			SearchFn: func(_ context.Context, _ string, count int) ([]scout.SearchResult, error) {
				gotCount = count
				return nil, nil
			},
		}
		w := search.NewWebSearch(searcher, search.WithCount(3))
		_, err := w.Execute(context.Background(), search.ToolName, "q")
		require.NoError(t, err)
		assert.Equal(t, 3, gotCount)
	})

	t.Run("default count is five", func(t *testing.T) {
		t.Parallel()

		var gotCount int
		searcher := &mock.Searcher{
			SearchFn: func(_ context.Context, _ string, count int) ([]scout.SearchResult, error) {
				gotCount = count
				return nil, nil
			},
		}
		_, err := search.NewWebSearch(searcher).Execute(context.Background(), search.ToolName, "q")
		require.NoError(t, err)
		assert.Equal(t, 5, gotCount)
	})

	t.Run("site scope prefixes the query", func(t *testing.T) {
		t.Parallel()

		var gotQuery string
		searcher := &mock.Searcher{
			SearchFn: func(_ context.Context, query string, _ int) ([]scout.SearchResult, error) {
				gotQuery = query
				return nil, nil
			},
		}
		w := search.NewWebSearch(searcher, search.WithSite("go.dev"))
		_, err := w.Execute(context.Background(), search.ToolName, "error wrapping")
		require.NoError(t, err)
		assert.Equal(t, "site:go.dev error wrapping", gotQuery)
	})

	t.Run("explicit site operator is left alone", func(t *testing.T) {
		t.Parallel()

		var gotQuery string
		searcher := &mock.Searcher{
			SearchFn: func(_ context.Context, query string, _ int) ([]scout.SearchResult, error) {
				gotQuery = query
				return nil, nil
			},
		}
		w := search.NewWebSearch(searcher, search.WithSite("go.dev"))
		_, err := w.Execute(context.Background(), search.ToolName, "site:pkg.go.dev context")
		require.NoError(t, err)
		assert.Equal(t, "site:pkg.go.dev context", gotQuery)
	})

	t.Run("empty query is a tool error", func(t *testing.T) {
		t.Parallel()

		w := search.NewWebSearch(fixedSearcher())
		_, err := w.Execute(context.Background(), search.ToolName, "   ")
		var te *scout.ToolError
		require.ErrorAs(t, err, &te)
		assert.ErrorIs(t, err, scout.ErrEmptyQuery)
	})

	t.Run("wrong tool name", func(t *testing.T) {
		t.Parallel()

		w := search.NewWebSearch(fixedSearcher())
		_, err := w.Execute(context.Background(), "calculator", "1+1")
		assert.ErrorIs(t, err, scout.ErrToolNotFound)
	})

	t.Run("backend failure wraps as tool error", func(t *testing.T) {
		t.Parallel()

		searcher := &mock.Searcher{
			SearchFn: func(_ context.Context, _ string, _ int) ([]scout.SearchResult, error) {
				return nil, errors.New("network down")
			},
		}
		w := search.NewWebSearch(searcher)
		_, err := w.Execute(context.Background(), search.ToolName, "q")
		var te *scout.ToolError
		require.ErrorAs(t, err, &te)
		assert.Contains(t, err.Error(), "network down")
	})

	t.Run("no results yields a readable observation", func(t *testing.T) {
		t.Parallel()

		w := search.NewWebSearch(fixedSearcher())
		result, err := w.Execute(context.Background(), search.ToolName, "askjdhakjsdh")
		require.NoError(t, err)
		assert.Contains(t, result.Output, "no results found")
		assert.Empty(t, result.Sources)
	})

	t.Run("identical queries against a deterministic backend are idempotent", func(t *testing.T) {
		t.Parallel()

		w := search.NewWebSearch(fixedSearcher(
			scout.SearchResult{Title: "A", URL: "https://a.example"},
			scout.SearchResult{Title: "B", URL: "https://b.example"},
		))

		first, err := w.Execute(context.Background(), search.ToolName, "same query")
		require.NoError(t, err)
		second, err := w.Execute(context.Background(), search.ToolName, "same query")
		require.NoError(t, err)

		assert.Equal(t, first.Output, second.Output)
		assert.Equal(t, first.Sources, second.Sources)
	})
}
