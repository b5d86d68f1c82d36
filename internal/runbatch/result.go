// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"time"
)

// ResultStatus is the outcome of a single step.
type ResultStatus int

const (
	// ResultStatusSuccess means the step ran and returned without a fatal error.
	ResultStatusSuccess ResultStatus = iota
	// ResultStatusError means the step failed fatally.
	ResultStatusError
	// ResultStatusSkipped means the step did not run because of an earlier fatal error.
	ResultStatusSkipped
)

// String implements the Stringer interface for ResultStatus.
func (s ResultStatus) String() string {
	switch s {
	case ResultStatusSuccess:
		return "success"
	case ResultStatusError:
		return "error"
	case ResultStatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Result is the outcome of running a step.
type Result struct {
	Index    int           // Position of the step in the batch
	Label    string        // Label of the step
	Type     string        // Kind of step
	Status   ResultStatus  // Outcome
	ExitCode int           // Exit code of an external process, informational only
	Error    error         // Fatal error, if any
	Output   []byte        // Captured output of an external process
	Duration time.Duration // Wall clock time taken by the step
}

// Results is a slice of step results in batch order.
type Results []*Result

// HasError reports whether any result carries a fatal error.
func (r Results) HasError() bool {
	for _, res := range r {
		if res != nil && res.Error != nil {
			return true
		}
	}

	return false
}

// Count returns the number of results with the given status.
func (r Results) Count(status ResultStatus) int {
	n := 0

	for _, res := range r {
		if res != nil && res.Status == status {
			n++
		}
	}

	return n
}
