/*
Copyright 2026 PowerCore, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package injection_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ianmxaof/powercore-agentic-injection/agents/executor"
	"github.com/ianmxaof/powercore-agentic-injection/agents/metaagent"
	"github.com/ianmxaof/powercore-agentic-injection/agents/project"
	"github.com/ianmxaof/powercore-agentic-injection/agents/registry"
	"github.com/ianmxaof/powercore-agentic-injection/injection"
)

type stubEvaluator struct {
	fn func(condition string, req project.Request) bool
}

func (s stubEvaluator) Evaluate(_ context.Context, condition string, req project.Request) bool {
	return s.fn(condition, req)
}

type stubExecutor struct {
	executed []*executor.Agent
	fn       func(agent *executor.Agent, req project.Request) executor.Result
}

func (s *stubExecutor) Execute(_ context.Context, agent *executor.Agent, req project.Request) executor.Result {
	s.executed = append(s.executed, agent)
	if s.fn != nil {
		return s.fn(agent, req)
	}
	return executor.Result{Success: true, ElapsedSeconds: 1.0}
}

func newTestEngine(t *testing.T, eval stubEvaluator, exec *stubExecutor) *injection.Engine {
	t.Helper()
	meta, err := metaagent.New()
	require.NoError(t, err)
	eng, err := injection.NewEngine(registry.New(), eval, exec, meta)
	require.NoError(t, err)
	return eng
}

func alwaysTrue() stubEvaluator {
	return stubEvaluator{fn: func(string, project.Request) bool { return true }}
}

const validRules = `
triggers:
  - name: web_app_trigger
    condition: web_application
    agents:
      - name: code_analyzer
        type: code_analysis
        priority: high
        config:
          max_tokens: 1500
      - name: test_writer
        type: test_automation
  - name: mobile_trigger
    condition: mobile_app
    enabled: false
    agents:
      - name: deployer
        type: deployment
`

func TestLoadRules(t *testing.T) {
	exec := &stubExecutor{}
	eng := newTestEngine(t, alwaysTrue(), exec)

	err := eng.LoadRules(context.Background(), strings.NewReader(validRules))
	require.NoError(t, err)

	status := eng.Status()
	assert.Equal(t, 2, status.TotalTriggers)
	assert.Equal(t, 1, status.EnabledTriggers)

	// Only the enabled trigger's agents run; defaults apply to fields the
	// document leaves out.
	eng.Process(context.Background(), project.Request{ID: "p1"})
	require.Len(t, exec.executed, 2)

	analyzer := exec.executed[0]
	assert.Equal(t, "code_analyzer", analyzer.Name)
	assert.Equal(t, "code_analysis", analyzer.Kind)
	assert.Equal(t, "high", analyzer.Priority)
	assert.Equal(t, 1500, analyzer.Config["max_tokens"])

	writer := exec.executed[1]
	assert.Equal(t, "test_automation", writer.Kind)
	assert.Equal(t, "medium", writer.Priority)
	assert.NotNil(t, writer.Config)
	assert.Empty(t, writer.Config)
}

func TestLoadRulesInvalid(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{{
		name:    "malformed yaml",
		doc:     "triggers: [",
		wantErr: "decoding rules document",
	}, {
		name: "trigger missing name",
		doc: `
triggers:
  - condition: web_application
`,
		wantErr: "missing name",
	}, {
		name: "trigger missing condition",
		doc: `
triggers:
  - name: web_app_trigger
`,
		wantErr: "missing condition",
	}, {
		name: "agent missing name",
		doc: `
triggers:
  - name: web_app_trigger
    condition: web_application
    agents:
      - type: code_analysis
`,
		wantErr: "agent 0: missing name",
	}, {
		name: "agent missing type",
		doc: `
triggers:
  - name: web_app_trigger
    condition: web_application
    agents:
      - name: code_analyzer
`,
		wantErr: `agent "code_analyzer": missing type`,
	}}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			eng := newTestEngine(t, alwaysTrue(), &stubExecutor{})
			err := eng.LoadRules(context.Background(), strings.NewReader(test.doc))
			require.Error(t, err)
			var cfgErr *injection.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Contains(t, err.Error(), test.wantErr)
		})
	}
}

func TestLoadRulesFailureKeepsPreviousSet(t *testing.T) {
	eng := newTestEngine(t, alwaysTrue(), &stubExecutor{})
	require.NoError(t, eng.LoadRules(context.Background(), strings.NewReader(validRules)))

	badDoc := `
triggers:
  - name: first
    condition: web_application
  - name: second
`
	err := eng.LoadRules(context.Background(), strings.NewReader(badDoc))
	require.Error(t, err)

	status := eng.Status()
	assert.Equal(t, 2, status.TotalTriggers, "rule set should be unchanged after a failed load")
}

func TestLoadRulesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validRules), 0o644))

	eng := newTestEngine(t, alwaysTrue(), &stubExecutor{})
	require.NoError(t, eng.LoadRulesFile(context.Background(), path))
	assert.Equal(t, 2, eng.Status().TotalTriggers)
}

func TestLoadRulesFileMissing(t *testing.T) {
	eng := newTestEngine(t, alwaysTrue(), &stubExecutor{})
	err := eng.LoadRulesFile(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	var cfgErr *injection.ConfigError
	require.ErrorAs(t, err, &cfgErr)
}
