// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

// RunCondition defines whether a step runs after an earlier step failed fatally.
type RunCondition int

const (
	// RunOnSuccess means the step runs unless an earlier step failed fatally.
	// A batch that is merely unsuccessful still runs these steps.
	RunOnSuccess RunCondition = iota
	// RunOnAlways means the step runs even after a fatal error or cancellation.
	RunOnAlways
)

const (
	runOnSuccessStr = "success"
	runOnAlwaysStr  = "always"
	runOnUnknownStr = "unknown"
)

// String returns the string representation of the RunCondition.
func (r RunCondition) String() string {
	switch r {
	case RunOnSuccess:
		return runOnSuccessStr
	case RunOnAlways:
		return runOnAlwaysStr
	default:
		return runOnUnknownStr
	}
}
