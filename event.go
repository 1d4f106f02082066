package scout

// Event is a sealed interface representing a progress notification.
// Events are purely observational: they mirror what the loop is doing
// and never affect control flow. Transport/protocol errors come from
// Stream.Next()'s error return, not from events.
// The unexported marker method prevents external implementations.
type Event interface {
	event()
}

// EventToken represents a model output token delta.
type EventToken struct {
	Delta string
}

func (EventToken) event() {}

// EventToolStart signals that a tool invocation is about to run.
type EventToolStart struct {
	Name  string
	Input string
}

func (EventToolStart) event() {}

// EventToolEnd signals that a tool invocation finished with the given
// observation text.
type EventToolEnd struct {
	Name    string
	Output  string
	IsError bool
}

func (EventToolEnd) event() {}

// Interface compliance checks.
var (
	_ Event = EventToken{}
	_ Event = EventToolStart{}
	_ Event = EventToolEnd{}
)
