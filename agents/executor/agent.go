/*
Copyright 2026 PowerCore, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package executor

import "time"

// Status is the run state of an agent.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusExecuting Status = "executing"
	StatusCompleted Status = "completed"
	StatusError     Status = "error"
)

// Agent is a single configured invocation of the text-generation service,
// specialized by kind. Agents are owned by the trigger that declares them
// and carry mutable run state; they must not be shared across triggers.
type Agent struct {
	// Name identifies the agent within its trigger.
	Name string
	// Kind references a registry entry, e.g. "code_analysis".
	Kind string
	// Priority is an ordering hint from the rules document. It does not
	// affect scheduling; agents run in declaration order.
	Priority string
	// Config holds per-agent parameter overrides (model, max_tokens,
	// temperature), overlaid on the registry defaults.
	Config map[string]any

	// Status is the current run state.
	Status Status
	// CreatedAt is when the agent was loaded from the rules document.
	CreatedAt time.Time
	// LastExecuted is the completion time of the last successful run.
	LastExecuted time.Time
	// ExecutionCount is the number of successful runs.
	ExecutionCount int
}

// NewAgent creates an idle agent.
func NewAgent(name, kind, priority string, config map[string]any) *Agent {
	if config == nil {
		config = map[string]any{}
	}
	return &Agent{
		Name:      name,
		Kind:      kind,
		Priority:  priority,
		Config:    config,
		Status:    StatusIdle,
		CreatedAt: time.Now(),
	}
}
