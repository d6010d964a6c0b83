/*
Copyright 2026 PowerCore, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package metaagent

import "github.com/ianmxaof/powercore-agentic-injection/agents/executor"

// Score computes the performance score for one execution result.
//
// The function is a fixed linear combination: 0.5 for success, 0.3 times
// the payload quality_score when present, and a speed bonus of 0.2 under
// five seconds or 0.1 under ten. The sum is clamped to 1.0; all terms are
// non-negative so no lower clamp is needed.
func Score(result executor.Result) float64 {
	score := 0.0

	if result.Success {
		score += 0.5
	}

	if quality, ok := result.QualityScore(); ok {
		score += quality * 0.3
	}

	if result.ElapsedSeconds > 0 {
		switch {
		case result.ElapsedSeconds < 5.0:
			score += 0.2
		case result.ElapsedSeconds < 10.0:
			score += 0.1
		}
	}

	return min(score, 1.0)
}
