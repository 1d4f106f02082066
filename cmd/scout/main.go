// Command scout is a web-search agent for the terminal. It runs a
// single-tool ReAct loop: the model reasons in text, issues search
// actions, reads the results back as observations, and finishes with a
// cited answer.
//
// Usage:
//
//	GEMINI_API_KEY=...     scout [flags]
//	OPENAI_API_KEY=...     scout [flags]
//	OPENROUTER_API_KEY=... scout [flags]
//
// Flags:
//
//	-provider string   Provider: gemini, openai, openrouter (auto-detected from env vars if omitted)
//	-model string      Model ID (default: provider default)
//	-api-key string    API key (overrides provider's env var)
//	-search string     Search backend: tavily, brave, duckduckgo (auto-detected from env vars if omitted)
//	-k int             Results per search (default 5)
//	-site string       Restrict searches to one domain
//	-attempts int      Retry budget per question (default 2)
//	-max-steps int     Model-call cap per attempt (default 10)
//	-q string          Ask one question, print the answer, and exit
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/avisser/scout"
	"github.com/avisser/scout/agent"
	bt "github.com/avisser/scout/bubbletea"
	"github.com/avisser/scout/markdown"
	"github.com/avisser/scout/search"
)

const answerWidth = 80

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "scout: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		providerFlag = flag.String("provider", "", "Provider: gemini, openai, openrouter (auto-detected from env vars if omitted)")
		modelFlag    = flag.String("model", "", "Model ID (provider-specific)")
		apiKey       = flag.String("api-key", "", "API key (overrides provider's env var)")
		searchFlag   = flag.String("search", "", "Search backend: tavily, brave, duckduckgo (auto-detected from env vars if omitted)")
		count        = flag.Int("k", search.DefaultCount, "Results per search")
		site         = flag.String("site", "", "Restrict searches to one domain")
		attempts     = flag.Int("attempts", agent.DefaultAttempts, "Retry budget per question")
		maxSteps     = flag.Int("max-steps", agent.DefaultMaxSteps, "Model-call cap per attempt")
		question     = flag.String("q", "", "Ask one question, print the answer, and exit")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Env vars are read here and passed as values.
	model, err := resolveModel(ctx, *providerFlag, *apiKey,
		os.Getenv("GEMINI_API_KEY"), os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENROUTER_API_KEY"))
	if err != nil {
		return err
	}

	searcher, err := resolveSearcher(*searchFlag,
		os.Getenv("TAVILY_API_KEY"), os.Getenv("BRAVE_API_KEY"))
	if err != nil {
		return err
	}

	var toolOpts []search.WebSearchOption
	if *count != search.DefaultCount {
		toolOpts = append(toolOpts, search.WithCount(*count))
	}
	if *site != "" {
		toolOpts = append(toolOpts, search.WithSite(*site))
	}
	webSearch := search.NewWebSearch(searcher, toolOpts...)

	runner := &agent.Runner{
		Loop:     agent.New(model, webSearch.Tool(), webSearch),
		Attempts: *attempts,
	}

	runOpts := []agent.RunOption{agent.WithMaxSteps(*maxSteps)}
	if *modelFlag != "" {
		runOpts = append(runOpts, agent.WithModel(*modelFlag))
	}

	theme := scout.DefaultTheme()

	// One-shot mode: answer and exit.
	if *question != "" {
		answer, err := runner.Ask(ctx, *question, runOpts...)
		if err != nil {
			return err
		}
		fmt.Println(markdown.RenderAnswer(answer, answerWidth, theme))
		return nil
	}

	agentFn := func(ctx context.Context, q string, onEvent func(scout.Event)) (scout.Answer, error) {
		opts := append([]agent.RunOption{agent.WithEventHandler(onEvent)}, runOpts...)
		return runner.Ask(ctx, q, opts...)
	}

	if err := bt.Run(ctx, bt.New(agentFn, theme)); err != nil {
		return fmt.Errorf("TUI: %w", err)
	}
	return nil
}
