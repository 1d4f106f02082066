package gemini

import (
	"errors"
	"io"
	"iter"
	"testing"

	"github.com/avisser/scout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func chunk(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: text}}},
		}},
	}
}

func seqOf(chunks []*genai.GenerateContentResponse, errs []error) iter.Seq2[*genai.GenerateContentResponse, error] {
	return func(yield func(*genai.GenerateContentResponse, error) bool) {
		for i := range chunks {
			var err error
			if i < len(errs) {
				err = errs[i]
			}
			if !yield(chunks[i], err) {
				return
			}
		}
	}
}

func TestStream_Next(t *testing.T) {
	t.Parallel()

	t.Run("emits token per chunk then EOF", func(t *testing.T) {
		t.Parallel()

		s := newStream(seqOf([]*genai.GenerateContentResponse{chunk("Final "), chunk("Answer: 42")}, nil))
		defer s.Close()

		evt, err := s.Next()
		require.NoError(t, err)
		assert.Equal(t, scout.EventToken{Delta: "Final "}, evt)

		evt, err = s.Next()
		require.NoError(t, err)
		assert.Equal(t, scout.EventToken{Delta: "Answer: 42"}, evt)

		_, err = s.Next()
		assert.Equal(t, io.EOF, err)
		assert.Equal(t, scout.StreamStateComplete, s.State())

		text, err := s.Text()
		require.NoError(t, err)
		assert.Equal(t, "Final Answer: 42", text)
	})

	t.Run("skips empty chunks", func(t *testing.T) {
		t.Parallel()

		s := newStream(seqOf([]*genai.GenerateContentResponse{{}, chunk("hi")}, nil))
		defer s.Close()

		evt, err := s.Next()
		require.NoError(t, err)
		assert.Equal(t, scout.EventToken{Delta: "hi"}, evt)
	})

	t.Run("iterator error becomes a service error", func(t *testing.T) {
		t.Parallel()

		s := newStream(seqOf([]*genai.GenerateContentResponse{chunk("partial"), nil}, []error{nil, errors.New("quota")}))
		defer s.Close()

		_, err := s.Next()
		require.NoError(t, err)

		_, err = s.Next()
		var se *scout.ServiceError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, scout.StreamStateError, s.State())

		// Partial text remains available.
		text, textErr := s.Text()
		require.NoError(t, textErr)
		assert.Equal(t, "partial", text)
	})

	t.Run("text before next is an error", func(t *testing.T) {
		t.Parallel()

		s := newStream(seqOf(nil, nil))
		defer s.Close()

		_, err := s.Text()
		assert.Error(t, err)
	})

	t.Run("close mid-stream", func(t *testing.T) {
		t.Parallel()

		s := newStream(seqOf([]*genai.GenerateContentResponse{chunk("a"), chunk("b")}, nil))
		_, err := s.Next()
		require.NoError(t, err)

		require.NoError(t, s.Close())
		assert.Equal(t, scout.StreamStateClosed, s.State())

		_, err = s.Next()
		assert.ErrorIs(t, err, scout.ErrStreamClosed)
	})
}
