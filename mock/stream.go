package mock

import (
	"io"

	"github.com/avisser/scout"
)

// Interface compliance check.
var _ scout.Stream = (*Stream)(nil)

// Stream is a test double for scout.Stream.
// Set the function fields for the methods you need. NextFn and TextFn
// panic when nil to catch missing setup. CloseFn and StateFn are
// nil-safe (no-op and zero value) because test code commonly calls
// defer stream.Close() and these methods rarely need custom behavior.
type Stream struct {
	NextFn  func() (scout.Event, error)
	StateFn func() scout.StreamState
	TextFn  func() (string, error)
	CloseFn func() error
}

// Next delegates to NextFn.
func (s *Stream) Next() (scout.Event, error) {
	return s.NextFn()
}

// State delegates to StateFn. Returns StreamStateNew when StateFn is nil.
func (s *Stream) State() scout.StreamState {
	if s.StateFn == nil {
		return scout.StreamStateNew
	}
	return s.StateFn()
}

// Text delegates to TextFn.
func (s *Stream) Text() (string, error) {
	return s.TextFn()
}

// Close delegates to CloseFn. Returns nil when CloseFn is not set.
func (s *Stream) Close() error {
	if s.CloseFn == nil {
		return nil
	}
	return s.CloseFn()
}

// TextStream returns a completed Stream that emits text as a sequence
// of single token events and assembles to the same text. Most loop
// tests only need this.
func TextStream(text string) *Stream {
	emitted := false
	return &Stream{
		NextFn: func() (scout.Event, error) {
			if emitted || text == "" {
				return nil, io.EOF
			}
			emitted = true
			return scout.EventToken{Delta: text}, nil
		},
		StateFn: func() scout.StreamState { return scout.StreamStateComplete },
		TextFn:  func() (string, error) { return text, nil },
	}
}
