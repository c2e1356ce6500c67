// Package llm is the thin boundary to the language model provider. Stages in
// the decision pipeline describe a prompt and a model; this package returns
// the raw JSON text or an error, nothing more. All interpretation, fallback
// and clamping happens in the pipeline.
package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// ErrEmptyCompletion is returned when the provider answers with no choices.
var ErrEmptyCompletion = errors.New("llm returned no completion")

// Request is one JSON-mode completion call.
type Request struct {
	Model        string
	SystemPrompt string
	UserPrompt   string
	// Timeout bounds the call; zero means the caller's context deadline.
	Timeout time.Duration
}

// Caller performs completion calls. The production implementation talks to an
// OpenAI-compatible endpoint; tests substitute a canned one.
type Caller interface {
	// Complete returns the raw completion text, expected to be a single JSON
	// object per the request's system prompt.
	Complete(ctx context.Context, req Request) (string, error)
}

// Client is the OpenAI-compatible Caller.
type Client struct {
	api *openai.Client
}

// NewClient builds a Client. baseURL overrides the provider origin for
// self-hosted OpenAI-compatible servers; empty means the default.
func NewClient(apiKey, baseURL string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{api: openai.NewClientWithConfig(cfg)}
}

// Complete implements Caller using chat completions in JSON mode.
func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: req.UserPrompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0,
	})
	if err != nil {
		return "", fmt.Errorf("llm completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}
