package openai

import (
	"fmt"
	"io"
	"strings"

	"github.com/avisser/scout"
	openai "github.com/sashabaranov/go-openai"
)

// receiver is the part of openai.ChatCompletionStream the adapter
// needs. Narrowed for testing.
type receiver interface {
	Recv() (openai.ChatCompletionStreamResponse, error)
	Close() error
}

// stream implements [scout.Stream] over a chat completion stream.
type stream struct {
	upstream receiver
	state    scout.StreamState
	text     strings.Builder
	err      error
}

// Interface compliance check.
var _ scout.Stream = (*stream)(nil)

func newStream(upstream receiver) *stream {
	return &stream{upstream: upstream, state: scout.StreamStateNew}
}

// Next receives chunks until one carries content, returning it as a
// token event. Returns io.EOF when the upstream stream finishes.
func (s *stream) Next() (scout.Event, error) {
	switch s.state {
	case scout.StreamStateComplete:
		return nil, io.EOF
	case scout.StreamStateError:
		return nil, s.err
	case scout.StreamStateClosed:
		return nil, fmt.Errorf("openai: %w", scout.ErrStreamClosed)
	}

	for {
		resp, err := s.upstream.Recv()
		if err == io.EOF {
			s.state = scout.StreamStateComplete
			return nil, io.EOF
		}
		if err != nil {
			s.state = scout.StreamStateError
			s.err = &scout.ServiceError{Provider: "openai", Err: err}
			return nil, s.err
		}
		s.state = scout.StreamStateStreaming

		if len(resp.Choices) == 0 || resp.Choices[0].Delta.Content == "" {
			continue
		}
		delta := resp.Choices[0].Delta.Content
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
		return "", fmt.Errorf("openai: no data received yet")
	}
	return s.text.String(), nil
}

// Close closes the upstream stream.
func (s *stream) Close() error {
	if s.state != scout.StreamStateComplete && s.state != scout.StreamStateError {
		s.state = scout.StreamStateClosed
	}
	return s.upstream.Close()
}
