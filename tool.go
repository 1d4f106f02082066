package scout

import "context"

// Tool is the descriptor shown to the LLM for a callable capability.
// Registered once at loop construction and never mutated.
type Tool struct {
	Name        string
	Description string
}

// ToolExecutor runs tools. Execute returns an error for infrastructure
// failures; the loop converts those into observations rather than
// aborting. ToolResult.IsError marks tool-reported failures that are
// still fed back to the model as text.
type ToolExecutor interface {
	Execute(ctx context.Context, name, input string) (*ToolResult, error)
}

// ToolResult is the outcome of a tool execution. Sources carries the
// structured hits behind the observation text so callers can cite URLs
// without re-parsing the observation.
type ToolResult struct {
	Output  string
	Sources []SearchResult
	IsError bool
}
