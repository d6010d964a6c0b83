/*
Copyright 2026 PowerCore, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package textgen

import "context"

// Message roles understood by the providers.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single conversation message.
type Message struct {
	Role    string
	Content string
}

// Request describes one completion call.
type Request struct {
	// Model is the provider model identifier, e.g. "gpt-4" or "claude-sonnet-4".
	Model string
	// Messages is the conversation to complete.
	Messages []Message
	// MaxTokens bounds the generated output size.
	MaxTokens int64
	// Temperature is the sampling temperature in [0.0, 1.0].
	Temperature float64
}

// Completion is the result of a successful completion call.
type Completion struct {
	// Text is the generated text of the first choice.
	Text string
	// PromptTokens and CompletionTokens report provider token usage.
	PromptTokens     int64
	CompletionTokens int64
}

// Client is the capability the engine depends on for text generation.
// Every provider failure surfaces as a single error; the engine treats
// them uniformly as "external call failed".
type Client interface {
	Complete(ctx context.Context, req Request) (Completion, error)
}
