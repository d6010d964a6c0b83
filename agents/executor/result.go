/*
Copyright 2026 PowerCore, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package executor

import "encoding/json"

// Result is the outcome of one agent execution.
//
// The kind-specific payload fields are part of the external report
// contract, so Result marshals flat: payload fields at the top level with
// "success", "execution_time" and (on failure) "error" alongside them.
type Result struct {
	// Success reports whether the execution completed.
	Success bool
	// Err is a human-readable failure message when Success is false.
	Err string
	// ElapsedSeconds is the wall-clock execution time in seconds.
	ElapsedSeconds float64
	// Payload holds the kind-specific result fields.
	Payload map[string]any
}

// QualityScore returns the payload quality_score when present.
func (r Result) QualityScore() (float64, bool) {
	v, ok := r.Payload["quality_score"]
	if !ok {
		return 0, false
	}
	switch s := v.(type) {
	case float64:
		return s, true
	case int:
		return float64(s), true
	default:
		return 0, false
	}
}

// MarshalJSON flattens the payload into the result object.
func (r Result) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Payload)+3)
	for k, v := range r.Payload {
		out[k] = v
	}
	out["success"] = r.Success
	out["execution_time"] = r.ElapsedSeconds
	if r.Err != "" {
		out["error"] = r.Err
	}
	return json.Marshal(out)
}
