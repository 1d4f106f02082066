// Package gemini implements scout.Model for the Google Gemini API.
//
// The ReAct protocol is textual, so no native function calling is
// declared: the model sees the tool contract in the system instruction
// and replies in plain text.
package gemini

const (
	defaultModel     = "gemini-2.5-flash"
	defaultMaxTokens = 4096
)
