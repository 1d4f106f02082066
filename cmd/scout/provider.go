package main

import (
	"context"
	"fmt"

	"github.com/avisser/scout"
	"github.com/avisser/scout/gemini"
	"github.com/avisser/scout/openai"
)

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// resolveModel selects and constructs the provider. All env var values
// are passed in as parameters — env is only read in main().
func resolveModel(ctx context.Context, providerFlag, apiKeyFlag, geminiKey, openaiKey, openRouterKey string) (scout.Model, error) {
	provider := providerFlag

	// Auto-detect from env vars if no flag.
	if provider == "" {
		var detected []string
		if geminiKey != "" {
			detected = append(detected, "gemini")
		}
		if openaiKey != "" {
			detected = append(detected, "openai")
		}
		if openRouterKey != "" {
			detected = append(detected, "openrouter")
		}
		switch len(detected) {
		case 0:
			return nil, fmt.Errorf("no API key found: set GEMINI_API_KEY, OPENAI_API_KEY, or OPENROUTER_API_KEY (or use -provider and -api-key flags)")
		case 1:
			provider = detected[0]
		default:
			return nil, fmt.Errorf("multiple API keys found: use -provider flag to select one of %v", detected)
		}
	}

	key := apiKeyFlag
	switch provider {
	case "gemini":
		if key == "" {
			key = geminiKey
		}
		if key == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY not set (use -api-key flag or environment variable)")
		}
		client, err := gemini.New(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("gemini: %w", err)
		}
		return client, nil

	case "openai":
		if key == "" {
			key = openaiKey
		}
		if key == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY not set (use -api-key flag or environment variable)")
		}
		return openai.New(key), nil

	case "openrouter":
		if key == "" {
			key = openRouterKey
		}
		if key == "" {
			return nil, fmt.Errorf("OPENROUTER_API_KEY not set (use -api-key flag or environment variable)")
		}
		return openai.New(key, openai.WithBaseURL(openRouterBaseURL)), nil

	default:
		return nil, fmt.Errorf("unknown provider %q: must be \"gemini\", \"openai\", or \"openrouter\"", provider)
	}
}
