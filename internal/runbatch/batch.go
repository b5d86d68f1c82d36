// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/matt-FFFFFF/sledgehammer/internal/ctxlog"
	"github.com/matt-FFFFFF/sledgehammer/internal/diagnostics"
	"github.com/matt-FFFFFF/sledgehammer/internal/document"
	"github.com/matt-FFFFFF/sledgehammer/internal/vars"
)

// Batch is an ordered list of steps that is run exactly once.
type Batch struct {
	Label string

	steps []Step
	state *State
	runID string

	m   sync.Mutex
	ran bool
}

// Option configures a Batch.
type Option func(*Batch)

// WithLabel sets the label of the batch.
func WithLabel(label string) Option {
	return func(b *Batch) {
		b.Label = label
	}
}

// WithDiagnostics sets the publisher that receives step lifecycle events and step messages.
func WithDiagnostics(pub diagnostics.Publisher) Option {
	return func(b *Batch) {
		b.state = NewState(pub)
	}
}

// New creates a batch from the given steps. The slice is copied.
func New(steps []Step, opts ...Option) *Batch {
	b := &Batch{
		Label: "batch",
		steps: slices.Clone(steps),
		runID: uuid.NewString(),
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.state == nil {
		b.state = NewState(nil)
	}

	return b
}

// Steps returns a copy of the steps in run order.
func (b *Batch) Steps() []Step {
	return slices.Clone(b.steps)
}

// Variables returns the variable store shared by the steps.
func (b *Batch) Variables() *vars.Store {
	return b.state.Variables
}

// Successful reports whether the batch is still successful.
func (b *Batch) Successful() bool {
	return b.state.Successful()
}

// RunID returns the unique identifier of this batch.
func (b *Batch) RunID() string {
	return b.runID
}

// Run executes the steps in order against doc.
// Each step starts only after the previous one has returned.
// After a fatal error or cancellation, only RunOnAlways steps run, with a context that is no longer
// cancellable, and the batch is marked unsuccessful.
func (b *Batch) Run(ctx context.Context, doc document.Document) (Results, error) {
	b.m.Lock()
	if b.ran {
		b.m.Unlock()
		return nil, ErrAlreadyRun
	}

	b.ran = true
	b.m.Unlock()

	logger := ctxlog.Logger(ctx).With("batch", b.Label, "runID", b.runID)
	ctx = ctxlog.New(ctx, logger)

	results := make(Results, 0, len(b.steps))

	var fatal error

	for i, step := range b.steps {
		label := step.GetLabel()

		if fatal == nil && ctx.Err() != nil {
			fatal = errors.Join(ErrCancelled, ctx.Err())
			b.state.Fail()
			logger.Info("batch cancelled", "beforeStep", label)
		}

		if fatal != nil && step.RunsOn() != RunOnAlways {
			logger.Debug("skipping step", "step", label)
			results = append(results, &Result{
				Index:  i,
				Label:  label,
				Type:   step.GetType(),
				Status: ResultStatusSkipped,
				Error:  nil,
			})
			b.state.publishLifecycle(diagnostics.KindStepSkipped, i, label, nil)

			continue
		}

		stepCtx := ctx
		if step.RunsOn() == RunOnAlways {
			stepCtx = context.WithoutCancel(ctx)
		}

		b.state.enter(i, label)
		b.state.publishLifecycle(diagnostics.KindStepStarted, i, label, nil)
		logger.Debug("running step", "step", label, "index", i)

		start := time.Now()
		res := step.Run(stepCtx, b.state, doc)

		if res == nil {
			res = &Result{}
		}

		res.Index = i
		res.Label = label
		res.Type = step.GetType()
		res.Duration = time.Since(start)

		if res.Error != nil {
			res.Status = ResultStatusError
			b.state.Fail()
			b.state.publishLifecycle(diagnostics.KindStepFailed, i, label, res.Error)
			logger.Error("step failed", "step", label, "error", res.Error)

			if fatal == nil {
				fatal = res.Error
			} else {
				fatal = errors.Join(fatal, res.Error)
			}
		} else {
			res.Status = ResultStatusSuccess
			b.state.publishLifecycle(diagnostics.KindStepCompleted, i, label, nil)
		}

		results = append(results, res)
	}

	b.state.enter(-1, "")

	if fatal != nil {
		return results, errors.Join(ErrBatchAborted, fatal)
	}

	logger.Debug("batch finished", "successful", b.state.Successful())

	return results, nil
}
