/*
Copyright 2026 PowerCore, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package executor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chainguard-dev/clog"

	"github.com/ianmxaof/powercore-agentic-injection/agents/project"
	"github.com/ianmxaof/powercore-agentic-injection/agents/registry"
	"github.com/ianmxaof/powercore-agentic-injection/agents/textgen"
)

// Executor runs agents against the text-generation service.
type Executor struct {
	registry *registry.Registry
	client   textgen.Client
}

// New creates an Executor.
func New(reg *registry.Registry, client textgen.Client) (*Executor, error) {
	if reg == nil {
		return nil, errors.New("registry cannot be nil")
	}
	if client == nil {
		return nil, errors.New("client cannot be nil")
	}
	return &Executor{registry: reg, client: client}, nil
}

// Execute runs one agent with the given project context.
// Failures are returned as a failed Result, never as a panic or a partial
// state: the agent ends in StatusCompleted or StatusError.
func (x *Executor) Execute(ctx context.Context, agent *Agent, req project.Request) Result {
	log := clog.FromContext(ctx).
		With("agent", agent.Name).
		With("agent_type", agent.Kind)
	log.Info("Executing agent")

	start := time.Now()
	agent.Status = StatusExecuting

	info, ok := x.registry.Get(agent.Kind)
	if !ok {
		return fail(log, agent, start, fmt.Sprintf("unknown agent type: %s", agent.Kind))
	}

	params := mergeParams(info.Defaults, agent.Config)

	builder := builderFor(agent.Kind)
	prompt, err := builder.buildPrompt(req)
	if err != nil {
		return fail(log, agent, start, fmt.Sprintf("building prompt: %v", err))
	}

	completion, err := x.client.Complete(ctx, textgen.Request{
		Model:       params.Model,
		Messages:    []textgen.Message{{Role: textgen.RoleUser, Content: prompt}},
		MaxTokens:   params.MaxTokens,
		Temperature: params.Temperature,
	})
	if err != nil {
		return fail(log, agent, start, err.Error())
	}

	now := time.Now()
	agent.Status = StatusCompleted
	agent.LastExecuted = now
	agent.ExecutionCount++

	elapsed := now.Sub(start).Seconds()
	log.With("elapsed_seconds", elapsed).Info("Agent completed successfully")

	return Result{
		Success:        true,
		ElapsedSeconds: elapsed,
		Payload:        builder.shapePayload(completion.Text),
	}
}

// fail marks the agent errored and shapes the failure as a Result.
func fail(log *clog.Logger, agent *Agent, start time.Time, msg string) Result {
	log.With("error", msg).Error("Agent execution failed")
	agent.Status = StatusError
	return Result{
		Success:        false,
		Err:            msg,
		ElapsedSeconds: time.Since(start).Seconds(),
	}
}

// mergeParams overlays per-agent overrides on the registry defaults.
// The merge is shallow: only the top-level parameter keys are recognized,
// override keys win on conflict.
func mergeParams(defaults registry.Params, overrides map[string]any) registry.Params {
	merged := defaults
	if v, ok := overrides["model"].(string); ok {
		merged.Model = v
	}
	if v, ok := asInt64(overrides["max_tokens"]); ok {
		merged.MaxTokens = v
	}
	if v, ok := asFloat64(overrides["temperature"]); ok {
		merged.Temperature = v
	}
	return merged
}

// asInt64 normalizes the numeric types a YAML or JSON decoder may produce.
func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}

func asFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
