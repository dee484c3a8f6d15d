package pkg

import (
	"context"

	"github.com/sashabaranov/go-openai"
)

// DefaultBaseURL targets OpenRouter's OpenAI-compatible API.
const DefaultBaseURL = "https://openrouter.ai/api/v1"

// ChatClient calls an OpenAI-compatible chat completion endpoint.
type ChatClient struct {
	client *openai.Client
	model  string
}

// NewChatClient builds a client for the given key, base URL and model. An
// empty baseURL falls back to OpenRouter.
func NewChatClient(apiKey, baseURL, model string) *ChatClient {
	config := openai.DefaultConfig(apiKey)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	config.BaseURL = baseURL
	return &ChatClient{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

// Complete sends content as a single user-role message and returns the
// text of every candidate the provider produced. The caller owns the
// timeout via ctx; interpreting an empty candidate list is up to the
// caller as well.
func (c *ChatClient) Complete(ctx context.Context, content string) ([]string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: content},
		},
	})
	if err != nil {
		return nil, err
	}

	candidates := make([]string, 0, len(resp.Choices))
	for _, choice := range resp.Choices {
		candidates = append(candidates, choice.Message.Content)
	}
	return candidates, nil
}
