/*
Copyright 2026 PowerCore, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package registry holds the static catalog of agent kinds the engine can
// execute. Each kind carries a description, its capabilities, and the
// default invocation parameters used when an agent declares no overrides.
//
// The catalog is fixed at construction. Unknown kinds are reported as
// absent; callers must handle that branch rather than fall back to a
// default kind.
package registry
