/*
Copyright 2026 PowerCore, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package report renders processing reports and system status snapshots as
// markdown tables for terminal and log output. The canonical machine-facing
// form of a report is its JSON encoding; this package only concerns itself
// with the human-facing one.
package report
