/*
Copyright 2026 PowerCore, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package metaagent_test

import (
	"testing"

	"github.com/ianmxaof/powercore-agentic-injection/agents/executor"
	"github.com/ianmxaof/powercore-agentic-injection/agents/metaagent"
)

func newMetaAgent(t *testing.T, opts ...metaagent.Option) *metaagent.MetaAgent {
	t.Helper()
	m, err := metaagent.New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return m
}

func testAgent(name string) *executor.Agent {
	return executor.NewAgent(name, "code_analysis", "medium", nil)
}

func TestScore(t *testing.T) {
	tests := []struct {
		name   string
		result executor.Result
		want   float64
	}{{
		name: "full marks clamp to one",
		result: executor.Result{
			Success:        true,
			ElapsedSeconds: 2.0,
			Payload:        map[string]any{"quality_score": 1.0},
		},
		want: 1.0,
	}, {
		name:   "failure scores zero",
		result: executor.Result{Success: false},
		want:   0.0,
	}, {
		name: "success with fast execution",
		result: executor.Result{
			Success:        true,
			ElapsedSeconds: 3.0,
		},
		want: 0.7,
	}, {
		name: "success with slow execution",
		result: executor.Result{
			Success:        true,
			ElapsedSeconds: 7.0,
		},
		want: 0.6,
	}, {
		name: "success with very slow execution",
		result: executor.Result{
			Success:        true,
			ElapsedSeconds: 15.0,
		},
		want: 0.5,
	}, {
		name: "quality contributes fractionally",
		result: executor.Result{
			Success:        true,
			ElapsedSeconds: 2.0,
			Payload:        map[string]any{"quality_score": 0.5},
		},
		want: 0.85,
	}}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := metaagent.Score(tc.result)
			if diff := got - tc.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Score(): got = %v, wanted = %v", got, tc.want)
			}
		})
	}
}

func TestRecordAppendsOneSuggestionPerLowScoringRecord(t *testing.T) {
	m := newMetaAgent(t)
	failed := executor.Result{Success: false} // scores 0.0

	// The first ten records never trigger the check
	for i := 0; i < 10; i++ {
		m.Record(testAgent("worker"), failed)
	}
	if got := len(m.Suggestions()); got != 0 {
		t.Fatalf("suggestions after 10 records: got = %d, wanted = 0", got)
	}

	// The 11th record crosses the threshold and appends exactly one
	m.Record(testAgent("worker"), failed)
	if got := len(m.Suggestions()); got != 1 {
		t.Fatalf("suggestions after 11 records: got = %d, wanted = 1", got)
	}

	// One more suggestion per record from then on, no deduplication
	for i := 0; i < 9; i++ {
		m.Record(testAgent("worker"), failed)
	}
	if got := len(m.Suggestions()); got != 10 {
		t.Fatalf("suggestions after 20 records: got = %d, wanted = 10", got)
	}
}

func TestSuggestionNamesCurrentAgent(t *testing.T) {
	m := newMetaAgent(t)
	failed := executor.Result{Success: false}

	for i := 0; i < 10; i++ {
		m.Record(testAgent("steady"), failed)
	}
	// The agent named is the one just recorded, not the worst performer
	m.Record(testAgent("latest"), failed)

	suggestions := m.Suggestions()
	if len(suggestions) != 1 {
		t.Fatalf("suggestions: got = %d, wanted = 1", len(suggestions))
	}
	s := suggestions[0]
	if s.AgentName != "latest" {
		t.Errorf("AgentName: got = %q, wanted = %q", s.AgentName, "latest")
	}
	if s.Kind != "performance_improvement" {
		t.Errorf("Kind: got = %q, wanted = %q", s.Kind, "performance_improvement")
	}
	if s.Priority != "medium" {
		t.Errorf("Priority: got = %q, wanted = %q", s.Priority, "medium")
	}
}

func TestHealthyWindowSuppressesSuggestions(t *testing.T) {
	m := newMetaAgent(t)
	healthy := executor.Result{Success: true, ElapsedSeconds: 1.0} // scores 0.7

	for i := 0; i < 25; i++ {
		m.Record(testAgent("worker"), healthy)
	}
	if got := len(m.Suggestions()); got != 0 {
		t.Errorf("suggestions: got = %d, wanted = 0", got)
	}
}

func TestRecoveryStopsSuggestionGrowth(t *testing.T) {
	m := newMetaAgent(t)
	failed := executor.Result{Success: false}
	healthy := executor.Result{Success: true, ElapsedSeconds: 1.0} // scores 0.7

	for i := 0; i < 11; i++ {
		m.Record(testAgent("worker"), failed)
	}
	// Fill the rolling window with healthy scores
	for i := 0; i < 10; i++ {
		m.Record(testAgent("worker"), healthy)
	}
	before := len(m.Suggestions())

	// With a fully healthy window the count stops growing
	m.Record(testAgent("worker"), healthy)
	if got := len(m.Suggestions()); got != before {
		t.Errorf("suggestions kept growing: got = %d, wanted = %d", got, before)
	}
}

func TestHistoryIsBounded(t *testing.T) {
	m := newMetaAgent(t, metaagent.WithHistoryCapacity(10))
	healthy := executor.Result{Success: true, ElapsedSeconds: 1.0}

	for i := 0; i < 50; i++ {
		m.Record(testAgent("worker"), healthy)
	}
	if got := len(m.History()); got != 10 {
		t.Errorf("history length: got = %d, wanted = 10", got)
	}
}

func TestHistoryOrderOldestFirst(t *testing.T) {
	m := newMetaAgent(t, metaagent.WithHistoryCapacity(10))

	for i := 0; i < 15; i++ {
		score := executor.Result{Success: true, ElapsedSeconds: 1.0}
		name := "early"
		if i >= 10 {
			name = "late"
		}
		m.Record(testAgent(name), score)
	}

	history := m.History()
	if got := history[len(history)-1].AgentName; got != "late" {
		t.Errorf("newest record: got = %q, wanted = %q", got, "late")
	}
	if got := history[0].AgentName; got != "early" {
		t.Errorf("oldest record: got = %q, wanted = %q", got, "early")
	}
}

func TestWithHistoryCapacityValidation(t *testing.T) {
	if _, err := metaagent.New(metaagent.WithHistoryCapacity(5)); err == nil {
		t.Error("New() error = nil, wanted = capacity validation error")
	}
}

// spyObserver records observer notifications.
type spyObserver struct {
	increments int
	grades     []float64
	suggested  []string
}

func (s *spyObserver) Increment()           { s.increments++ }
func (s *spyObserver) Grade(score float64)  { s.grades = append(s.grades, score) }
func (s *spyObserver) Suggest(agent string) { s.suggested = append(s.suggested, agent) }

func TestObserverNotifications(t *testing.T) {
	spy := &spyObserver{}
	m := newMetaAgent(t, metaagent.WithObserver(spy))
	failed := executor.Result{Success: false}

	for i := 0; i < 11; i++ {
		m.Record(testAgent("worker"), failed)
	}

	if spy.increments != 11 {
		t.Errorf("increments: got = %d, wanted = 11", spy.increments)
	}
	if len(spy.grades) != 11 || spy.grades[0] != 0.0 {
		t.Errorf("grades: got = %v, wanted 11 zero scores", spy.grades)
	}
	if len(spy.suggested) != 1 || spy.suggested[0] != "worker" {
		t.Errorf("suggested: got = %v, wanted = [worker]", spy.suggested)
	}
}
