/*
Copyright 2026 PowerCore, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package textgen provides the text-generation client the engine invokes
// for agent execution and AI-backed condition evaluation.
//
// Two provider implementations are available: OpenAI chat completions and
// Anthropic messages. NewRouter composes them into a single Client that
// dispatches on the model name:
//   - Models starting with "claude-" use Anthropic's SDK
//   - Everything else goes to OpenAI (the default catalog is gpt-* models)
//
// All implementations retry transient provider errors with exponential
// backoff and record token usage through OpenTelemetry counters. Failures
// are returned as plain errors; callers decide how to degrade.
package textgen
