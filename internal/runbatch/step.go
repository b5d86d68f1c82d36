// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"context"

	"github.com/matt-FFFFFF/sledgehammer/internal/document"
)

// Step is a single unit of work in a batch.
type Step interface {
	// Run executes the step. A non-nil Result.Error is fatal to the batch.
	// Steps that need to report an unsuccessful but non-fatal outcome call State.Fail.
	Run(ctx context.Context, st *State, doc document.Document) *Result
	// GetLabel returns a description of the step for display.
	GetLabel() string
	// GetType returns the kind of step, e.g. "ProcessStep".
	GetType() string
	// RunsOn returns the condition under which the step runs.
	RunsOn() RunCondition
}
