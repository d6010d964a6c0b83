/*
Copyright 2026 PowerCore, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package metaagent

import (
	"fmt"
	"sync"
	"time"

	"github.com/ianmxaof/powercore-agentic-injection/agents/executor"
)

const (
	// recentWindow is the number of most recent records averaged for the
	// degradation check.
	recentWindow = 10
	// lowScoreThreshold triggers a suggestion when the rolling average
	// falls below it.
	lowScoreThreshold = 0.6
	// defaultHistoryCapacity bounds the execution history ring.
	defaultHistoryCapacity = 256
)

// ExecutionRecord is one scored history entry.
type ExecutionRecord struct {
	AgentName  string          `json:"agent_name"`
	AgentKind  string          `json:"agent_type"`
	RecordedAt time.Time       `json:"recorded_at"`
	Result     executor.Result `json:"result"`
	Score      float64         `json:"performance_score"`
}

// Suggestion is an optimization recommendation. Suggestions are appended,
// never removed or deduplicated.
type Suggestion struct {
	Kind       string `json:"type"`
	AgentName  string `json:"agent_name"`
	Suggestion string `json:"suggestion"`
	Priority   string `json:"priority"`
}

// MetaAgent scores executions and accumulates optimization suggestions.
// It is safe for concurrent use, though the engine records sequentially.
type MetaAgent struct {
	mu          sync.Mutex
	history     []ExecutionRecord // ring buffer, capacity fixed at construction
	next        int               // ring write position
	recorded    int64             // total records ever seen
	suggestions []Suggestion
	observer    Observer
}

// Option is a functional option for configuring the MetaAgent.
type Option func(*MetaAgent) error

// WithHistoryCapacity bounds the execution-history ring buffer.
// The capacity must cover the recent-window check.
func WithHistoryCapacity(n int) Option {
	return func(m *MetaAgent) error {
		if n < recentWindow {
			return fmt.Errorf("history capacity must be at least %d, got %d", recentWindow, n)
		}
		m.history = make([]ExecutionRecord, 0, n)
		return nil
	}
}

// WithObserver attaches an Observer notified of records and suggestions.
func WithObserver(obs Observer) Option {
	return func(m *MetaAgent) error {
		if obs == nil {
			return fmt.Errorf("observer cannot be nil")
		}
		m.observer = obs
		return nil
	}
}

// New creates a MetaAgent.
func New(opts ...Option) (*MetaAgent, error) {
	m := &MetaAgent{
		history:  make([]ExecutionRecord, 0, defaultHistoryCapacity),
		observer: nopObserver{},
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return m, nil
}

// Record scores one execution result and appends it to the history.
// Once more than ten executions have been recorded, a rolling average of
// the ten most recent scores below 0.6 appends one suggestion naming the
// agent just recorded.
func (m *MetaAgent) Record(agent *executor.Agent, result executor.Result) {
	score := Score(result)

	m.mu.Lock()
	defer m.mu.Unlock()

	rec := ExecutionRecord{
		AgentName:  agent.Name,
		AgentKind:  agent.Kind,
		RecordedAt: time.Now(),
		Result:     result,
		Score:      score,
	}
	if len(m.history) < cap(m.history) {
		m.history = append(m.history, rec)
	} else {
		m.history[m.next] = rec
	}
	m.next = (m.next + 1) % cap(m.history)
	m.recorded++

	m.observer.Increment()
	m.observer.Grade(score)

	if m.recorded > recentWindow && m.recentAverage() < lowScoreThreshold {
		m.suggestions = append(m.suggestions, Suggestion{
			Kind:       "performance_improvement",
			AgentName:  agent.Name,
			Suggestion: "Consider adjusting agent configuration for better performance",
			Priority:   "medium",
		})
		m.observer.Suggest(agent.Name)
	}
}

// recentAverage averages the scores of the most recent window.
// Callers hold m.mu and guarantee at least recentWindow records exist.
func (m *MetaAgent) recentAverage() float64 {
	var sum float64
	for i := 1; i <= recentWindow; i++ {
		idx := (m.next - i + cap(m.history)) % cap(m.history)
		sum += m.history[idx].Score
	}
	return sum / recentWindow
}

// Suggestions returns the accumulated suggestions in insertion order.
func (m *MetaAgent) Suggestions() []Suggestion {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Suggestion, len(m.suggestions))
	copy(out, m.suggestions)
	return out
}

// History returns the retained records, oldest first.
func (m *MetaAgent) History() []ExecutionRecord {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]ExecutionRecord, 0, len(m.history))
	if len(m.history) < cap(m.history) {
		out = append(out, m.history...)
		return out
	}
	for i := range m.history {
		out = append(out, m.history[(m.next+i)%cap(m.history)])
	}
	return out
}
