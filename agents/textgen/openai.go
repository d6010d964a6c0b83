/*
Copyright 2026 PowerCore, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package textgen

import (
	"context"
	"errors"
	"fmt"

	"github.com/chainguard-dev/clog"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/ianmxaof/powercore-agentic-injection/agents/textgen/retry"
)

// openAIClient implements Client over OpenAI chat completions.
type openAIClient struct {
	client  openai.Client
	cfg     settings
	metrics *usageMetrics
}

// NewOpenAI creates a Client backed by the OpenAI chat completions API.
func NewOpenAI(opts ...Option) (Client, error) {
	cfg, err := defaultSettings().apply(opts)
	if err != nil {
		return nil, err
	}
	if cfg.apiKey == "" {
		return nil, errors.New("openai api key is required")
	}

	reqOpts := []option.RequestOption{option.WithAPIKey(cfg.apiKey)}
	if cfg.baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(cfg.baseURL))
	}

	return &openAIClient{
		client:  openai.NewClient(reqOpts...),
		cfg:     cfg,
		metrics: newUsageMetrics(),
	}, nil
}

// Complete implements Client.
func (c *openAIClient) Complete(ctx context.Context, req Request) (Completion, error) {
	ctx, cancel := c.cfg.withCallTimeout(ctx)
	defer cancel()

	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(req.Model),
		Messages:    toOpenAIMessages(req.Messages),
		Temperature: openai.Float(req.Temperature),
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(req.MaxTokens)
	}

	resp, err := retry.WithBackoff(ctx, c.cfg.retryConfig, "chat_completion", isRetryableOpenAIError, func() (*openai.ChatCompletion, error) {
		return c.client.Chat.Completions.New(ctx, params)
	})
	if err != nil {
		return Completion{}, fmt.Errorf("openai completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Completion{}, errors.New("no choices in OpenAI response")
	}

	c.metrics.record(ctx, req.Model, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)
	clog.FromContext(ctx).With("model", req.Model).
		With("prompt_tokens", resp.Usage.PromptTokens).
		With("completion_tokens", resp.Usage.CompletionTokens).
		Debug("OpenAI completion finished")

	return Completion{
		Text:             resp.Choices[0].Message.Content,
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
	}, nil
}

func toOpenAIMessages(messages []Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			out = append(out, openai.SystemMessage(m.Content))
		case RoleAssistant:
			out = append(out, openai.AssistantMessage(m.Content))
		default:
			out = append(out, openai.UserMessage(m.Content))
		}
	}
	return out
}

// isRetryableOpenAIError checks if an error is a retryable OpenAI API error.
// Returns true for rate limit and transient server errors.
func isRetryableOpenAIError(err error) bool {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case 429, 500, 502, 503, 504:
			return true
		}
	}
	return false
}
