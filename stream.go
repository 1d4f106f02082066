package scout

// StreamState indicates the current state of a Stream.
type StreamState int

const (
	StreamStateNew       StreamState = iota // Before Next() is ever called.
	StreamStateStreaming                    // Mid-stream, receiving deltas.
	StreamStateComplete                     // Next() returned io.EOF.
	StreamStateError                        // Next() returned non-EOF error.
	StreamStateClosed                       // Close() called before terminal state.
)

// Stream uses a pull-based iterator pattern. Cancellation flows through
// the context passed to Model.Stream().
//
// State() returns the current StreamState. Callers can use it to
// determine whether Text() will return a partial or complete completion.
//
// Text() returns the completion assembled from deltas. Behavior by state:
//   - StreamStateComplete: complete text, nil error.
//   - StreamStateStreaming / StreamStateError / StreamStateClosed:
//     text assembled from deltas received so far, nil error.
//   - StreamStateNew: empty string, non-nil error.
type Stream interface {
	Next() (Event, error)
	State() StreamState
	Text() (string, error)
	Close() error
}
