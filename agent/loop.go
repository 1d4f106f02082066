// Package agent orchestrates the ReAct loop between a Model and a
// single registered search tool.
package agent

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/avisser/scout"
	"github.com/avisser/scout/react"
)

// DefaultMaxSteps bounds the number of model calls in one run.
const DefaultMaxSteps = 10

// Loop runs the ReAct protocol: stream the model, parse its output,
// dispatch actions to the tool, feed observations back, and repeat
// until the model emits a final answer.
type Loop struct {
	model    scout.Model
	tool     scout.Tool
	executor scout.ToolExecutor
}

// New creates a Loop with the given model and its one registered tool.
func New(model scout.Model, tool scout.Tool, executor scout.ToolExecutor) *Loop {
	return &Loop{model: model, tool: tool, executor: executor}
}

// RunOption configures a single Run invocation.
type RunOption func(*runConfig)

type runConfig struct {
	onEvent     func(scout.Event)
	model       string
	maxSteps    int
	maxTokens   int
	temperature *float64
}

// WithEventHandler sets a callback that receives each progress event
// during the run. If nil or not set, events are silently discarded.
// Handler panics are swallowed; an observer must never abort the loop.
func WithEventHandler(h func(scout.Event)) RunOption {
	return func(c *runConfig) {
		c.onEvent = h
	}
}

// WithModel sets the model ID for provider requests during this run.
// Empty string means the provider uses its default model.
func WithModel(model string) RunOption {
	return func(c *runConfig) {
		c.model = model
	}
}

// WithMaxSteps overrides the model-call cap for this run.
func WithMaxSteps(n int) RunOption {
	return func(c *runConfig) {
		if n > 0 {
			c.maxSteps = n
		}
	}
}

// WithMaxTokens sets the per-call output token limit.
func WithMaxTokens(n int) RunOption {
	return func(c *runConfig) {
		c.maxTokens = n
	}
}

// WithTemperature overrides the generation temperature. The default is
// 0: answering from search results wants determinism, not flair.
func WithTemperature(t float64) RunOption {
	return func(c *runConfig) {
		c.temperature = &t
	}
}

// Run answers one question. The transcript is created fresh for this
// run, grows append-only, and is discarded on return. Run returns
// ErrIncompleteReasoning when the step cap is reached without a final
// answer, and a *ServiceError when the model transport fails.
func (l *Loop) Run(ctx context.Context, question string, opts ...RunOption) (scout.Answer, error) {
	zero := 0.0
	cfg := runConfig{maxSteps: DefaultMaxSteps, temperature: &zero}
	for _, opt := range opts {
		opt(&cfg)
	}

	turns := []scout.Turn{
		{Role: scout.RoleUser, Content: question, Timestamp: time.Now()},
	}

	var sources []scout.SearchResult
	seen := map[string]bool{}

	for step := 1; step <= cfg.maxSteps; step++ {
		if err := ctx.Err(); err != nil {
			return scout.Answer{}, err
		}

		text, err := l.complete(ctx, turns, &cfg)
		if err != nil {
			return scout.Answer{}, err
		}
		turns = append(turns, scout.Turn{Role: scout.RoleAssistant, Content: text, Timestamp: time.Now()})

		switch s := react.Parse(text).(type) {
		case scout.FinalAnswerStep:
			return scout.Answer{Text: s.Text, Sources: sources, Steps: step}, nil

		case scout.ActionStep:
			obs, results := l.dispatch(ctx, s, &cfg)
			for _, r := range results {
				if !seen[r.URL] {
					seen[r.URL] = true
					sources = append(sources, r)
				}
			}
			turns = append(turns, scout.Turn{
				Role:      scout.RoleObservation,
				Content:   react.Observation(obs),
				Timestamp: time.Now(),
			})

		case scout.MalformedStep:
			turns = append(turns, scout.Turn{
				Role: scout.RoleObservation,
				Content: react.Observation(fmt.Sprintf(
					"could not parse your response; reply with either %q and %q lines, or a %q line",
					"Action:", "Action Input:", "Final Answer:")),
				Timestamp: time.Now(),
			})
		}
	}

	return scout.Answer{}, fmt.Errorf("after %d steps: %w", cfg.maxSteps, scout.ErrIncompleteReasoning)
}

// complete streams one model call, forwarding token events, and returns
// the assembled output text.
func (l *Loop) complete(ctx context.Context, turns []scout.Turn, cfg *runConfig) (string, error) {
	req := scout.Request{
		Model:       cfg.model,
		System:      react.SystemPrompt(l.tool),
		Turns:       turns,
		MaxTokens:   cfg.maxTokens,
		Temperature: cfg.temperature,
	}
	if err := req.Validate(); err != nil {
		return "", err
	}

	stream, err := l.model.Stream(ctx, req)
	if err != nil {
		return "", err
	}
	defer stream.Close()

	// Drain the stream, forwarding events to the handler if set.
	var streamErr error
	for {
		evt, err := stream.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			streamErr = err
			break
		}
		notify(cfg, evt)
	}
	if streamErr != nil {
		return "", streamErr
	}

	return stream.Text()
}

// dispatch resolves one action against the registry and runs it. Both
// unknown tool names and execution failures come back as observation
// text; neither aborts the run.
func (l *Loop) dispatch(ctx context.Context, action scout.ActionStep, cfg *runConfig) (string, []scout.SearchResult) {
	if action.Tool != l.tool.Name {
		return fmt.Sprintf("unknown tool %q; the only available tool is %q", action.Tool, l.tool.Name), nil
	}

	notify(cfg, scout.EventToolStart{Name: action.Tool, Input: action.Input})

	result, err := l.executor.Execute(ctx, action.Tool, action.Input)
	if err != nil {
		obs := "search failed: " + err.Error()
		notify(cfg, scout.EventToolEnd{Name: action.Tool, Output: obs, IsError: true})
		return obs, nil
	}

	notify(cfg, scout.EventToolEnd{Name: action.Tool, Output: result.Output, IsError: result.IsError})
	return result.Output, result.Sources
}

// notify forwards an event to the handler, isolating the loop from
// observer panics.
func notify(cfg *runConfig, evt scout.Event) {
	if cfg.onEvent == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	cfg.onEvent(evt)
}
