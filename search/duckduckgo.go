package search

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/avisser/scout"
)

const ddgEndpoint = "https://lite.duckduckgo.com/lite/"

// Interface compliance check.
var _ scout.Searcher = (*DuckDuckGo)(nil)

// DuckDuckGo scrapes DuckDuckGo's lite HTML interface. No API key is
// required, which makes it the default backend.
type DuckDuckGo struct {
	endpoint string
	client   *http.Client
}

// DuckDuckGoOption configures a [DuckDuckGo].
type DuckDuckGoOption func(*DuckDuckGo)

// WithDuckDuckGoClient sets the HTTP client, overriding the default timeout.
func WithDuckDuckGoClient(client *http.Client) DuckDuckGoOption {
	return func(d *DuckDuckGo) { d.client = client }
}

// WithDuckDuckGoEndpoint overrides the endpoint. Used in tests.
func WithDuckDuckGoEndpoint(endpoint string) DuckDuckGoOption {
	return func(d *DuckDuckGo) { d.endpoint = endpoint }
}

// NewDuckDuckGo constructs a DuckDuckGo search backend.
func NewDuckDuckGo(opts ...DuckDuckGoOption) *DuckDuckGo {
	d := &DuckDuckGo{endpoint: ddgEndpoint, client: &http.Client{Timeout: 15 * time.Second}}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Search posts the query to the lite HTML page and extracts up to count
// results.
func (d *DuckDuckGo) Search(ctx context.Context, query string, count int) ([]scout.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, scout.ErrEmptyQuery
	}

	form := url.Values{}
	form.Set("q", query)

	var resp *http.Response
	delay := 1 * time.Second
	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, strings.NewReader(form.Encode()))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")

		resp, err = d.client.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusTooManyRequests {
			break
		}
		resp.Body.Close()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
		if delay < 30*time.Second {
			delay *= 2
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("duckduckgo: http %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("duckduckgo: %w", err)
	}
	return parseLiteHTML(string(body), count), nil
}

// The lite page is a plain table: result links carry class
// "result-link", snippets sit in "result-snippet" cells.
var (
	ddgLinkRe    = regexp.MustCompile(`<a[^>]*class=['"]result-link['"][^>]*href=['"]([^'"]+)['"][^>]*>(.*?)</a>`)
	ddgLinkAltRe = regexp.MustCompile(`<a[^>]*href=['"]([^'"]+)['"][^>]*class=['"]result-link['"][^>]*>(.*?)</a>`)
	ddgSnippetRe = regexp.MustCompile(`<td[^>]*class=['"]result-snippet['"][^>]*>(.*?)</td>`)
	htmlTagRe    = regexp.MustCompile(`<[^>]+>`)
)

func parseLiteHTML(html string, count int) []scout.SearchResult {
	links := ddgLinkRe.FindAllStringSubmatchIndex(html, -1)
	if len(links) == 0 {
		links = ddgLinkAltRe.FindAllStringSubmatchIndex(html, -1)
	}

	var results []scout.SearchResult
	for i, m := range links {
		u := strings.TrimSpace(html[m[2]:m[3]])
		title := stripHTML(html[m[4]:m[5]])
		if u == "" || title == "" {
			continue
		}

		// A snippet belongs to a link only if it sits between that link
		// and the next one. Rows without a snippet cell (ads, spacers)
		// must not steal the next result's snippet.
		end := len(html)
		if i+1 < len(links) {
			end = links[i+1][0]
		}
		snippet := ""
		if sm := ddgSnippetRe.FindStringSubmatch(html[m[1]:end]); sm != nil {
			snippet = stripHTML(sm[1])
		}

		results = append(results, scout.SearchResult{Title: title, Snippet: snippet, URL: u})
		if len(results) >= count {
			break
		}
	}
	return results
}

// stripHTML removes tags and decodes the entities the lite page emits.
func stripHTML(s string) string {
	s = htmlTagRe.ReplaceAllString(s, "")
	r := strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
		"&nbsp;", " ",
	)
	return strings.TrimSpace(r.Replace(s))
}
