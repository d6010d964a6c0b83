/*
Copyright 2026 PowerCore, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package metaagent is the feedback component of the engine: it scores
// every agent execution, keeps a bounded history, and emits optimization
// suggestions when recent performance degrades.
//
// Scoring is a fixed linear function of the execution result: success
// contributes 0.5, the payload quality_score contributes up to 0.3, and
// fast executions contribute up to 0.2, clamped to 1.0.
//
// After each recorded execution, once more than ten executions have been
// seen, the average score of the ten most recent records is checked
// against the 0.6 threshold; below it, one suggestion naming the agent
// just recorded is appended. Suggestions accumulate without deduplication:
// a sustained slump produces one suggestion per recorded execution.
package metaagent
