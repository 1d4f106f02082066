package scout_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/avisser/scout"
	"github.com/stretchr/testify/assert"
)

func TestTransient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "service error is transient",
			err:  &scout.ServiceError{Provider: "gemini", Err: errors.New("connection reset")},
			want: true,
		},
		{
			name: "wrapped service error is transient",
			err:  fmt.Errorf("attempt 1: %w", &scout.ServiceError{Provider: "openai", Err: errors.New("503")}),
			want: true,
		},
		{
			name: "incomplete reasoning is transient",
			err:  fmt.Errorf("after 10 steps: %w", scout.ErrIncompleteReasoning),
			want: true,
		},
		{
			name: "validation error is permanent",
			err:  fmt.Errorf("bad request: %w", scout.ErrValidation),
			want: false,
		},
		{
			name: "tool error is permanent",
			err:  &scout.ToolError{Tool: "web_search", Err: errors.New("no searcher configured")},
			want: false,
		},
		{
			name: "nil is permanent",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, scout.Transient(tt.err))
		})
	}
}

func TestServiceError_Unwrap(t *testing.T) {
	t.Parallel()

	inner := errors.New("boom")
	err := &scout.ServiceError{Provider: "gemini", Err: inner}
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "gemini")
}

func TestToolError_Unwrap(t *testing.T) {
	t.Parallel()

	err := &scout.ToolError{Tool: "web_search", Err: scout.ErrEmptyQuery}
	assert.ErrorIs(t, err, scout.ErrEmptyQuery)
	assert.Contains(t, err.Error(), "web_search")
}
