// Package openai generates phrase batches with an OpenAI-compatible
// chat completions endpoint.
package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/heartmarshall/phrasegen-backend/internal/adapter/llm"
	"github.com/heartmarshall/phrasegen-backend/internal/config"
	"github.com/heartmarshall/phrasegen-backend/internal/domain"
)

// Brand identifies this provider in generation results.
const Brand = "openai"

// Client calls a chat completions model. Retries are left to the batch processor.
type Client struct {
	client      openai.Client
	model       string
	maxTokens   int64
	temperature float64
	timeout     time.Duration
}

// New creates a Client from LLM settings. BaseURL points it at any
// OpenAI-compatible server.
func New(cfg config.LLMConfig) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &Client{
		client:      openai.NewClient(opts...),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
	}
}

// Generate sends one prompt pair and returns the JSON document found in the reply.
func (c *Client) Generate(ctx context.Context, pc domain.PromptConfig) ([]byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	model := pc.Model
	if model == "" {
		model = c.model
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(pc.SystemPrompt),
			openai.UserMessage(pc.UserPrompt),
		},
		Temperature:         openai.Float(c.temperature),
		MaxCompletionTokens: openai.Int(c.maxTokens),
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return nil, &llm.StatusError{Provider: Brand, Code: apiErr.StatusCode, Err: err}
		}
		return nil, fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty choices", llm.ErrEmptyResponse)
	}

	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return nil, llm.ErrEmptyResponse
	}
	return llm.ExtractJSON(content)
}
