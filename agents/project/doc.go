/*
Copyright 2026 PowerCore, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package project defines the project context that callers submit to the
// injection engine. The context is read-only input: trigger conditions are
// evaluated against it and agent prompts embed it, but nothing in the
// engine mutates it.
package project
