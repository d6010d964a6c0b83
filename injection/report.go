/*
Copyright 2026 PowerCore, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package injection

import (
	"time"

	"github.com/ianmxaof/powercore-agentic-injection/agents/executor"
	"github.com/ianmxaof/powercore-agentic-injection/agents/metaagent"
)

// Overall outcome of a Process call.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Trigger binds a condition to the agents that run when it holds. Agents
// are owned by the trigger and carry mutable execution state across runs.
type Trigger struct {
	Name      string
	Condition string
	Enabled   bool
	Agents    []*executor.Agent
}

// ExecutedAgent records one agent run inside a Report, in execution order.
type ExecutedAgent struct {
	AgentName string          `json:"agent_name"`
	AgentKind string          `json:"agent_type"`
	Result    executor.Result `json:"result"`
}

// Report is the outcome of processing a single project request.
type Report struct {
	ProjectID         string                 `json:"project_id"`
	Timestamp         time.Time              `json:"timestamp"`
	AgentsExecuted    []ExecutedAgent        `json:"agents_executed"`
	OverallStatus     string                 `json:"overall_status"`
	MetaAgentInsights []metaagent.Suggestion `json:"meta_agent_insights"`
	Error             string                 `json:"error,omitempty"`
}

// SystemStatus is a point-in-time snapshot of the engine.
type SystemStatus struct {
	ActiveAgents        int                    `json:"active_agents"`
	TotalTriggers       int                    `json:"total_triggers"`
	EnabledTriggers     int                    `json:"enabled_triggers"`
	MetaAgentInsights   []metaagent.Suggestion `json:"meta_agent_insights"`
	AvailableAgentKinds []string               `json:"available_agent_types"`
	SystemHealth        string                 `json:"system_health"`
}
