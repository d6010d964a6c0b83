/*
Copyright 2026 PowerCore, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package injection implements the rule-driven dispatch engine: it loads
// trigger rules, evaluates them against a project request, runs the agents
// of every activated trigger, and assembles a report.
//
// Processing is strictly sequential. Triggers are evaluated in declaration
// order and a fired trigger's agents run one at a time, each result fed to
// the meta-agent before the next agent starts; the meta-agent's rolling
// window and current-agent attribution depend on that ordering. Concurrent
// Process calls on one engine are serialized.
//
// Failures during evaluation or execution are data, not control flow: a
// failed condition check means the trigger does not fire, a failed agent
// yields a failed result inside the report, and only a panic escaping that
// handling turns the whole report's overall status to "error".
package injection
