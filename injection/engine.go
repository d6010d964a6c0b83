/*
Copyright 2026 PowerCore, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package injection

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/chainguard-dev/clog"

	"github.com/ianmxaof/powercore-agentic-injection/agents/conditions"
	"github.com/ianmxaof/powercore-agentic-injection/agents/executor"
	"github.com/ianmxaof/powercore-agentic-injection/agents/metaagent"
	"github.com/ianmxaof/powercore-agentic-injection/agents/project"
	"github.com/ianmxaof/powercore-agentic-injection/agents/registry"
)

// AgentExecutor runs a single agent against a project request.
// *executor.Executor is the production implementation.
type AgentExecutor interface {
	Execute(ctx context.Context, agent *executor.Agent, req project.Request) executor.Result
}

// Engine evaluates trigger rules against project requests and dispatches
// the agents of every trigger that fires.
type Engine struct {
	registry  *registry.Registry
	evaluator conditions.Evaluator
	executor  AgentExecutor
	meta      *metaagent.MetaAgent

	mu       sync.Mutex
	triggers []*Trigger
}

// NewEngine creates an engine with no triggers loaded.
func NewEngine(reg *registry.Registry, eval conditions.Evaluator, exec AgentExecutor, meta *metaagent.MetaAgent) (*Engine, error) {
	switch {
	case reg == nil:
		return nil, fmt.Errorf("registry is required")
	case eval == nil:
		return nil, fmt.Errorf("condition evaluator is required")
	case exec == nil:
		return nil, fmt.Errorf("agent executor is required")
	case meta == nil:
		return nil, fmt.Errorf("meta-agent is required")
	}
	return &Engine{
		registry:  reg,
		evaluator: eval,
		executor:  exec,
		meta:      meta,
	}, nil
}

// Process evaluates every enabled trigger against req and runs the agents
// of each trigger that fires, in declaration order. It always returns a
// report: agent failures are recorded inside it, and only a panic escaping
// that handling yields an overall status of "error".
func (e *Engine) Process(ctx context.Context, req project.Request) (report Report) {
	e.mu.Lock()
	defer e.mu.Unlock()

	log := clog.FromContext(ctx)
	log.With("description", req.DescriptionOrDefault()).Info("Processing project request")

	projectID := req.ID
	if projectID == "" {
		projectID = "unknown"
	}
	report = Report{
		ProjectID:         projectID,
		Timestamp:         time.Now(),
		AgentsExecuted:    []ExecutedAgent{},
		OverallStatus:     StatusSuccess,
		MetaAgentInsights: []metaagent.Suggestion{},
	}
	defer func() {
		if r := recover(); r != nil {
			log.With("panic", r).Error("Unexpected error processing project request")
			report.OverallStatus = StatusError
			report.Error = fmt.Sprintf("unexpected error: %v", r)
			report.MetaAgentInsights = e.meta.Suggestions()
		}
	}()

	for _, trigger := range e.triggers {
		if !trigger.Enabled {
			continue
		}
		if !e.evaluator.Evaluate(ctx, trigger.Condition, req) {
			continue
		}
		log.With("trigger", trigger.Name).Info("Trigger activated")
		for _, agent := range trigger.Agents {
			result := e.executor.Execute(ctx, agent, req)
			report.AgentsExecuted = append(report.AgentsExecuted, ExecutedAgent{
				AgentName: agent.Name,
				AgentKind: agent.Kind,
				Result:    result,
			})
			e.meta.Record(agent, result)
		}
	}

	report.MetaAgentInsights = e.meta.Suggestions()
	return report
}

// Status reports a snapshot of the engine. Status and Process share a
// lock, so ActiveAgents counts agents left mid-execution rather than a
// live in-flight total.
func (e *Engine) Status() SystemStatus {
	e.mu.Lock()
	defer e.mu.Unlock()

	active, enabled := 0, 0
	for _, trigger := range e.triggers {
		if trigger.Enabled {
			enabled++
		}
		for _, agent := range trigger.Agents {
			if agent.Status == executor.StatusExecuting {
				active++
			}
		}
	}
	return SystemStatus{
		ActiveAgents:        active,
		TotalTriggers:       len(e.triggers),
		EnabledTriggers:     enabled,
		MetaAgentInsights:   e.meta.Suggestions(),
		AvailableAgentKinds: e.registry.Kinds(),
		SystemHealth:        "healthy",
	}
}
