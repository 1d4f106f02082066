package gemini

import (
	"context"

	"github.com/avisser/scout"
	"google.golang.org/genai"
)

// Interface compliance check.
var _ scout.Model = (*Client)(nil)

// Client implements [scout.Model] for the Google Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

// Option configures a [Client].
type Option func(*Client)

// WithModel sets the default model ID.
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// New creates a new Gemini [Client] with the given API key and options.
func New(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, &scout.ServiceError{Provider: "gemini", Err: err}
	}
	c := &Client{client: gc, model: defaultModel}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// Stream sends a streaming request to the Gemini API and returns a
// [scout.Stream] emitting token events.
func (c *Client) Stream(ctx context.Context, req scout.Request) (scout.Stream, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	model := req.Model
	if model == "" {
		model = c.model
	}

	iter := c.client.Models.GenerateContentStream(ctx, model, ConvertTurns(req.Turns), buildConfig(req))
	return newStream(iter), nil
}

func buildConfig(req scout.Request) *genai.GenerateContentConfig {
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}

	config := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(maxTokens),
	}

	if req.System != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}

	if req.Temperature != nil {
		temp := float32(*req.Temperature)
		config.Temperature = &temp
	}

	return config
}

// ConvertTurns converts transcript turns to genai Contents. Observation
// turns travel as user content: the protocol feeds tool results back as
// ordinary input text. Exported for testing.
func ConvertTurns(turns []scout.Turn) []*genai.Content {
	var result []*genai.Content
	for _, turn := range turns {
		role := "user"
		if turn.Role == scout.RoleAssistant {
			role = "model"
		}
		result = append(result, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: turn.Content}},
		})
	}
	return result
}
