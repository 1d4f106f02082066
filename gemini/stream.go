package gemini

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/avisser/scout"
	"google.golang.org/genai"
)

// stream implements [scout.Stream] by wrapping the genai SDK's
// streaming iterator.
type stream struct {
	pull  func() (*genai.GenerateContentResponse, error, bool)
	stop  func()
	state scout.StreamState
	text  strings.Builder
	err   error
}

// Interface compliance check.
var _ scout.Stream = (*stream)(nil)

func newStream(iterFn iter.Seq2[*genai.GenerateContentResponse, error]) *stream {
	next, stop := iter.Pull2(iterFn)
	return &stream{
		pull:  next,
		stop:  stop,
		state: scout.StreamStateNew,
	}
}

// Next pulls chunks until one carries text, returning it as a token
// event. Returns io.EOF when the iterator is exhausted.
func (s *stream) Next() (scout.Event, error) {
	switch s.state {
	case scout.StreamStateComplete:
		return nil, io.EOF
	case scout.StreamStateError:
		return nil, s.err
	case scout.StreamStateClosed:
		return nil, fmt.Errorf("gemini: %w", scout.ErrStreamClosed)
	}

	for {
		resp, err, ok := s.pull()
		if !ok {
			s.state = scout.StreamStateComplete
			return nil, io.EOF
		}
		if err != nil {
			s.state = scout.StreamStateError
			s.err = &scout.ServiceError{Provider: "gemini", Err: err}
			return nil, s.err
		}
		s.state = scout.StreamStateStreaming

		delta := chunkText(resp)
		if delta == "" {
			continue
		}
		s.text.WriteString(delta)
		return scout.EventToken{Delta: delta}, nil
	}
}

// State returns the current stream state.
func (s *stream) State() scout.StreamState {
	return s.state
}

// Text returns the completion assembled so far.
func (s *stream) Text() (string, error) {
	if s.state == scout.StreamStateNew {
		return "", fmt.Errorf("gemini: no data received yet")
	}
	return s.text.String(), nil
}

// Close releases the iterator.
func (s *stream) Close() error {
	if s.state != scout.StreamStateComplete && s.state != scout.StreamStateError {
		s.state = scout.StreamStateClosed
	}
	s.stop()
	return nil
}

// chunkText concatenates the visible text parts of one response chunk,
// skipping thought parts.
func chunkText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		b.WriteString(part.Text)
	}
	return b.String()
}
