// Package openai implements scout.Model for OpenAI-compatible chat
// APIs, including OpenRouter via WithBaseURL.
package openai

import (
	"context"

	"github.com/avisser/scout"
	openai "github.com/sashabaranov/go-openai"
)

const defaultModel = openai.GPT4oMini

// Interface compliance check.
var _ scout.Model = (*Client)(nil)

// Client implements [scout.Model] over the OpenAI chat completions API.
type Client struct {
	client  *openai.Client
	model   string
	baseURL string
}

// Option configures a [Client].
type Option func(*Client)

// WithModel sets the default model ID.
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// WithBaseURL points the client at an OpenAI-compatible endpoint such
// as https://openrouter.ai/api/v1.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// New creates a new [Client] with the given API key and options.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{model: defaultModel}
	for _, o := range opts {
		o(c)
	}

	config := openai.DefaultConfig(apiKey)
	if c.baseURL != "" {
		config.BaseURL = c.baseURL
	}
	c.client = openai.NewClientWithConfig(config)
	return c
}

// Stream sends a streaming chat completion request and returns a
// [scout.Stream] emitting token events.
func (c *Client) Stream(ctx context.Context, req scout.Request) (scout.Stream, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	model := req.Model
	if model == "" {
		model = c.model
	}

	chatReq := openai.ChatCompletionRequest{
		Model:    model,
		Messages: ConvertTurns(req.System, req.Turns),
		Stream:   true,
	}
	if req.MaxTokens > 0 {
		chatReq.MaxTokens = req.MaxTokens
	}
	if req.Temperature != nil {
		chatReq.Temperature = float32(*req.Temperature)
	}

	upstream, err := c.client.CreateChatCompletionStream(ctx, chatReq)
	if err != nil {
		return nil, &scout.ServiceError{Provider: "openai", Err: err}
	}
	return newStream(upstream), nil
}

// ConvertTurns maps the system prompt and transcript turns to chat
// messages. Observation turns travel as user messages: the protocol
// feeds tool results back as ordinary input text. Exported for testing.
func ConvertTurns(system string, turns []scout.Turn) []openai.ChatCompletionMessage {
	messages := make([]openai.ChatCompletionMessage, 0, len(turns)+1)
	if system != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: system,
		})
	}
	for _, turn := range turns {
		role := openai.ChatMessageRoleUser
		if turn.Role == scout.RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: turn.Content})
	}
	return messages
}
