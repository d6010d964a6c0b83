/*
Copyright 2026 PowerCore, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package conditions

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/chainguard-dev/clog"

	"github.com/ianmxaof/powercore-agentic-injection/agents/project"
	"github.com/ianmxaof/powercore-agentic-injection/agents/promptbuilder"
	"github.com/ianmxaof/powercore-agentic-injection/agents/textgen"
)

// Fixed condition vocabulary, matched after lowercasing.
const (
	ConditionAlways            = "always"
	ConditionFileChanged       = "file_changed"
	ConditionTestFilesModified = "test_files_modified"
	ConditionComplexityHigh    = "complexity_high"
	ConditionPlatformWeb       = "platform_web"
	ConditionPlatformMobile    = "platform_mobile"
)

// customConditionPrompt asks the model to decide an open-ended condition.
var customConditionPrompt = promptbuilder.MustNewPrompt(
	`Evaluate if the following project request meets the condition: "{{condition}}"

Project Request: {{request}}

Respond with only 'true' or 'false'.`)

// Evaluator decides whether a trigger condition holds for a project context.
type Evaluator interface {
	Evaluate(ctx context.Context, condition string, req project.Request) bool
}

// evaluator provides the private implementation
type evaluator struct {
	client textgen.Client
	model  string
}

// Option is a functional option for configuring the evaluator.
type Option func(*evaluator) error

// WithModel overrides the model used for custom condition evaluation.
func WithModel(model string) Option {
	return func(e *evaluator) error {
		if model == "" {
			return errors.New("model cannot be empty")
		}
		e.model = model
		return nil
	}
}

// New creates an Evaluator that handles the fixed vocabulary structurally
// and delegates everything else to the given text-generation client.
func New(client textgen.Client, opts ...Option) (Evaluator, error) {
	if client == nil {
		return nil, errors.New("client cannot be nil")
	}
	e := &evaluator{
		client: client,
		model:  "gpt-4",
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return e, nil
}

// Evaluate implements Evaluator.
func (e *evaluator) Evaluate(ctx context.Context, condition string, req project.Request) bool {
	switch cond := strings.ToLower(condition); cond {
	case ConditionAlways:
		return true
	case ConditionFileChanged:
		return len(req.FilesModified) > 0
	case ConditionTestFilesModified:
		for _, f := range req.FilesModified {
			if strings.Contains(strings.ToLower(f), "test") {
				return true
			}
		}
		return false
	case ConditionComplexityHigh:
		return req.Complexity == "high"
	case ConditionPlatformWeb:
		return req.Platform == "web"
	case ConditionPlatformMobile:
		return req.Platform == "mobile"
	default:
		return e.evaluateCustom(ctx, cond, req)
	}
}

// evaluateCustom asks the text-generation service to decide the condition.
// Any failure degrades to false: the trigger does not fire.
func (e *evaluator) evaluateCustom(ctx context.Context, condition string, req project.Request) bool {
	log := clog.FromContext(ctx).With("condition", condition)

	prompt, err := buildCustomPrompt(condition, req)
	if err != nil {
		log.With("error", err).Error("Failed to build condition prompt")
		return false
	}

	completion, err := e.client.Complete(ctx, textgen.Request{
		Model:       e.model,
		Messages:    []textgen.Message{{Role: textgen.RoleUser, Content: prompt}},
		MaxTokens:   10,
		Temperature: 0,
	})
	if err != nil {
		log.With("error", err).Error("Failed to evaluate custom condition")
		return false
	}

	// Strict parse: anything but the literal "true" is false
	return strings.ToLower(strings.TrimSpace(completion.Text)) == "true"
}

func buildCustomPrompt(condition string, req project.Request) (string, error) {
	p, err := customConditionPrompt.BindString("condition", condition)
	if err != nil {
		return "", err
	}
	p, err = p.BindJSON("request", req)
	if err != nil {
		return "", err
	}
	return p.Build()
}
