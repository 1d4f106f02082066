package main

import (
	"fmt"

	"github.com/avisser/scout"
	"github.com/avisser/scout/search"
)

// resolveSearcher selects and constructs the search backend. Keyed
// backends win auto-detection; DuckDuckGo is the keyless fallback.
func resolveSearcher(searchFlag, tavilyKey, braveKey string) (scout.Searcher, error) {
	backend := searchFlag
	if backend == "" {
		switch {
		case tavilyKey != "":
			backend = "tavily"
		case braveKey != "":
			backend = "brave"
		default:
			backend = "duckduckgo"
		}
	}

	switch backend {
	case "tavily":
		if tavilyKey == "" {
			return nil, fmt.Errorf("TAVILY_API_KEY not set")
		}
		return search.NewTavily(tavilyKey), nil
	case "brave":
		if braveKey == "" {
			return nil, fmt.Errorf("BRAVE_API_KEY not set")
		}
		return search.NewBrave(braveKey), nil
	case "duckduckgo":
		return search.NewDuckDuckGo(), nil
	default:
		return nil, fmt.Errorf("unknown search backend %q: must be \"tavily\", \"brave\", or \"duckduckgo\"", backend)
	}
}
