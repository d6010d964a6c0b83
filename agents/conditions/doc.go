/*
Copyright 2026 PowerCore, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package conditions decides whether trigger conditions hold for a project
// context.
//
// Conditions are matched case-insensitively against a fixed vocabulary
// first ("always", "file_changed", "test_files_modified",
// "complexity_high", "platform_web", "platform_mobile"). Only a condition
// outside the vocabulary is sent to the text-generation service for an
// open-ended evaluation. The match is exact: a condition with surrounding
// whitespace is not in the vocabulary and takes the AI path.
//
// Evaluation never fails: any error on the AI path degrades to false, so a
// broken provider disables custom triggers instead of failing the run.
package conditions
