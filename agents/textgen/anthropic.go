/*
Copyright 2026 PowerCore, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package textgen

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/chainguard-dev/clog"

	"github.com/ianmxaof/powercore-agentic-injection/agents/textgen/retry"
)

// anthropicClient implements Client over the Anthropic messages API.
type anthropicClient struct {
	client  anthropic.Client
	cfg     settings
	metrics *usageMetrics
}

// NewAnthropic creates a Client backed by the Anthropic messages API.
func NewAnthropic(opts ...Option) (Client, error) {
	cfg, err := defaultSettings().apply(opts)
	if err != nil {
		return nil, err
	}
	if cfg.apiKey == "" {
		return nil, errors.New("anthropic api key is required")
	}

	reqOpts := []option.RequestOption{option.WithAPIKey(cfg.apiKey)}
	if cfg.baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(cfg.baseURL))
	}

	return &anthropicClient{
		client:  anthropic.NewClient(reqOpts...),
		cfg:     cfg,
		metrics: newUsageMetrics(),
	}, nil
}

// Complete implements Client.
func (c *anthropicClient) Complete(ctx context.Context, req Request) (Completion, error) {
	ctx, cancel := c.cfg.withCallTimeout(ctx)
	defer cancel()

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		// The messages API requires a positive max_tokens
		maxTokens = 1024
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(req.Model),
		MaxTokens:   maxTokens,
		Temperature: anthropic.Float(req.Temperature),
	}

	for _, m := range req.Messages {
		switch m.Role {
		case RoleSystem:
			params.System = append(params.System, anthropic.TextBlockParam{Text: m.Content})
		case RoleAssistant:
			params.Messages = append(params.Messages, anthropic.MessageParam{
				Role:    anthropic.MessageParamRoleAssistant,
				Content: []anthropic.ContentBlockParamUnion{anthropic.NewTextBlock(m.Content)},
			})
		default:
			params.Messages = append(params.Messages, anthropic.MessageParam{
				Role:    anthropic.MessageParamRoleUser,
				Content: []anthropic.ContentBlockParamUnion{anthropic.NewTextBlock(m.Content)},
			})
		}
	}

	message, err := retry.WithBackoff(ctx, c.cfg.retryConfig, "message", isRetryableAnthropicError, func() (*anthropic.Message, error) {
		return c.client.Messages.New(ctx, params)
	})
	if err != nil {
		return Completion{}, fmt.Errorf("anthropic completion: %w", err)
	}

	var text strings.Builder
	for _, content := range message.Content {
		if content.Type == "text" {
			text.WriteString(content.Text)
		}
	}
	if text.Len() == 0 {
		return Completion{}, errors.New("no text content in Anthropic response")
	}

	c.metrics.record(ctx, req.Model, message.Usage.InputTokens, message.Usage.OutputTokens)
	clog.FromContext(ctx).With("model", req.Model).
		With("prompt_tokens", message.Usage.InputTokens).
		With("completion_tokens", message.Usage.OutputTokens).
		Debug("Anthropic completion finished")

	return Completion{
		Text:             text.String(),
		PromptTokens:     message.Usage.InputTokens,
		CompletionTokens: message.Usage.OutputTokens,
	}, nil
}

// isRetryableAnthropicError checks if an error is a retryable Anthropic API
// error. Returns true for rate limit, overloaded, and transient server errors.
func isRetryableAnthropicError(err error) bool {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case 429, 503, 504, 529:
			return true
		}
	}
	return false
}
