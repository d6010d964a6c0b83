/*
Copyright 2026 PowerCore, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package executor runs a single configured agent against a project
// context and returns a structured result.
//
// Execution merges the registry defaults for the agent's kind with the
// agent's own overrides, builds a kind-specific prompt, and makes one
// completion call. Every failure — an unknown kind, a prompt that cannot
// be built, a provider error — is captured as a failed Result rather than
// returned as an error, so the orchestrator can continue with the
// remaining agents.
package executor
