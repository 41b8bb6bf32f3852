/* Completion model client. One request per chat turn, no streaming, no retry. */

package llm

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// ErrEmptyResponse is returned when the model answers with zero content
// blocks. Callers must surface it, never render a silent empty bot turn.
var ErrEmptyResponse = errors.New("no response from model")

// Client sends an accumulated conversation, already concatenated into a
// single prompt string, to the hosted completion model.
type Client struct {
	api       *openai.Client
	model     string
	maxTokens int
}

// NewClient builds a completion client with a fixed model identifier and a
// fixed maximum output size.
func NewClient(apiKey, model string, maxTokens int) *Client {
	return &Client{
		api:       openai.NewClient(apiKey),
		model:     model,
		maxTokens: maxTokens,
	}
}

// Complete sends the prompt as one user message and returns the first
// content block of the response. A single failed call surfaces immediately;
// there is no retry.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}
