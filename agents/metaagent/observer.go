/*
Copyright 2026 PowerCore, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package metaagent

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Observer receives notifications as the MetaAgent records executions.
type Observer interface {
	// Increment is called once per recorded execution.
	Increment()
	// Grade reports the performance score of the latest record.
	Grade(score float64)
	// Suggest is called once per emitted optimization suggestion.
	Suggest(agentName string)
}

// nopObserver is the default Observer.
type nopObserver struct{}

func (nopObserver) Increment()     {}
func (nopObserver) Grade(float64)  {}
func (nopObserver) Suggest(string) {}

var (
	// Global metrics with consistent dimensions
	executionsRecorded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "metaagent_executions_recorded_total",
			Help: "Total number of agent executions recorded",
		},
	)

	performanceScore = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "metaagent_performance_score",
			Help: "Most recent execution performance score (0.0-1.0)",
		},
	)

	suggestionsEmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metaagent_optimization_suggestions_total",
			Help: "Total number of optimization suggestions emitted",
		},
		[]string{"agent"},
	)
)

// MetricsObserver implements Observer with Prometheus metrics.
type MetricsObserver struct{}

// NewMetricsObserver creates an observer publishing Prometheus metrics.
func NewMetricsObserver() *MetricsObserver {
	return &MetricsObserver{}
}

// Increment implements Observer.Increment
func (*MetricsObserver) Increment() {
	executionsRecorded.Inc()
}

// Grade implements Observer.Grade
func (*MetricsObserver) Grade(score float64) {
	performanceScore.Set(score)
}

// Suggest implements Observer.Suggest
func (*MetricsObserver) Suggest(agentName string) {
	suggestionsEmitted.With(prometheus.Labels{"agent": agentName}).Inc()
}
