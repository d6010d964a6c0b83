/*
Copyright 2026 PowerCore, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package injection

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/chainguard-dev/clog"
	"gopkg.in/yaml.v3"

	"github.com/ianmxaof/powercore-agentic-injection/agents/executor"
)

// ConfigError reports a malformed or incomplete rules document. Loading is
// all-or-nothing: when a ConfigError is returned the engine keeps whatever
// rule set it had before.
type ConfigError struct {
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

type rulesDocument struct {
	Triggers []triggerRule `yaml:"triggers"`
}

type triggerRule struct {
	Name      string      `yaml:"name"`
	Condition string      `yaml:"condition"`
	Enabled   *bool       `yaml:"enabled"`
	Agents    []agentRule `yaml:"agents"`
}

type agentRule struct {
	Name     string         `yaml:"name"`
	Type     string         `yaml:"type"`
	Priority string         `yaml:"priority"`
	Config   map[string]any `yaml:"config"`
}

// parseRules decodes and validates a rules document. Either every trigger
// in the document is valid and returned, or nothing is.
func parseRules(data []byte) ([]*Trigger, error) {
	var doc rulesDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ConfigError{Reason: "decoding rules document", Err: err}
	}

	triggers := make([]*Trigger, 0, len(doc.Triggers))
	for i, tr := range doc.Triggers {
		if tr.Name == "" {
			return nil, &ConfigError{Reason: fmt.Sprintf("trigger %d: missing name", i)}
		}
		if tr.Condition == "" {
			return nil, &ConfigError{Reason: fmt.Sprintf("trigger %q: missing condition", tr.Name)}
		}
		enabled := true
		if tr.Enabled != nil {
			enabled = *tr.Enabled
		}
		agents := make([]*executor.Agent, 0, len(tr.Agents))
		for j, ar := range tr.Agents {
			if ar.Name == "" {
				return nil, &ConfigError{Reason: fmt.Sprintf("trigger %q: agent %d: missing name", tr.Name, j)}
			}
			if ar.Type == "" {
				return nil, &ConfigError{Reason: fmt.Sprintf("trigger %q: agent %q: missing type", tr.Name, ar.Name)}
			}
			priority := ar.Priority
			if priority == "" {
				priority = "medium"
			}
			agents = append(agents, executor.NewAgent(ar.Name, ar.Type, priority, ar.Config))
		}
		triggers = append(triggers, &Trigger{
			Name:      tr.Name,
			Condition: tr.Condition,
			Enabled:   enabled,
			Agents:    agents,
		})
	}
	return triggers, nil
}

// LoadRules replaces the engine's rule set with the triggers decoded from r.
// On error the previous rule set is left in place.
func (e *Engine) LoadRules(ctx context.Context, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return &ConfigError{Reason: "reading rules document", Err: err}
	}
	triggers, err := parseRules(data)
	if err != nil {
		return err
	}

	agents := 0
	for _, tr := range triggers {
		agents += len(tr.Agents)
	}

	e.mu.Lock()
	e.triggers = triggers
	e.mu.Unlock()

	clog.FromContext(ctx).With("triggers", len(triggers), "agents", agents).Info("Loaded trigger rules")
	return nil
}

// LoadRulesFile is LoadRules reading from the named file.
func (e *Engine) LoadRulesFile(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &ConfigError{Reason: fmt.Sprintf("opening rules file %s", path), Err: err}
	}
	defer f.Close()
	return e.LoadRules(ctx, f)
}
