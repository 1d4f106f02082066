// Package react implements the textual ReAct protocol: the system
// prompt that teaches the model the Thought / Action / Action Input /
// Observation / Final Answer grammar, and the parser that turns model
// output back into a tagged scout.Step.
package react

import (
	"fmt"

	"github.com/avisser/scout"
)

// SystemPrompt renders the fixed system instruction for an agent with a
// single registered tool.
func SystemPrompt(tool scout.Tool) string {
	return fmt.Sprintf(`You are a research assistant that answers questions using web search.

You have access to exactly one tool:

%s: %s

Work in steps. At each step, output either a tool invocation:

Thought: what you need to find out next
Action: %s
Action Input: the search query

or, once you have enough information, the terminal answer:

Final Answer: the complete answer to the question

Cite the URLs of the search results you relied on inline in the final
answer. Never invent URLs. After each Action you will receive an
Observation with the search results; do not write Observations yourself.`,
		tool.Name, tool.Description, tool.Name)
}

// Observation formats a tool result (or failure description) as the
// observation turn fed back to the model.
func Observation(text string) string {
	return "Observation: " + text
}
