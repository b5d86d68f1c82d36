// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"context"

	"github.com/matt-FFFFFF/sledgehammer/internal/ctxlog"
	"github.com/matt-FFFFFF/sledgehammer/internal/document"
)

var _ Step = (*CallbackStep)(nil)

// CallbackFunc is the in-process work of a CallbackStep.
// A returned error is fatal to the batch.
type CallbackFunc func(ctx context.Context, st *State, doc document.Document) error

// CallbackStep runs a function in the current process.
// The function returns before the next step starts.
type CallbackStep struct {
	Label     string
	Func      CallbackFunc
	Condition RunCondition
}

// NewCallbackStep creates a new callback step that runs on success.
func NewCallbackStep(label string, fn CallbackFunc) *CallbackStep {
	return &CallbackStep{
		Label: label,
		Func:  fn,
	}
}

// Always makes the step run even after a fatal error.
func (c *CallbackStep) Always() *CallbackStep {
	c.Condition = RunOnAlways
	return c
}

// GetLabel implements Step.
func (c *CallbackStep) GetLabel() string {
	return c.Label
}

// GetType implements Step.
func (c *CallbackStep) GetType() string {
	return "CallbackStep"
}

// RunsOn implements Step.
func (c *CallbackStep) RunsOn() RunCondition {
	return c.Condition
}

// Run implements Step. A panic in the function is recovered and returned as an ErrStepPanic.
func (c *CallbackStep) Run(ctx context.Context, st *State, doc document.Document) (res *Result) {
	res = &Result{}

	if c.Func == nil {
		return res
	}

	defer func() {
		if r := recover(); r != nil {
			ctxlog.Logger(ctx).Error("callback panic", "label", c.Label, "panic", r)
			res.Error = NewErrStepPanic(r)
		}
	}()

	res.Error = c.Func(ctx, st, doc)

	return res
}
