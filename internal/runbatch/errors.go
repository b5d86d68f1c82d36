// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"errors"
	"fmt"
)

var (
	// ErrBatchAborted is returned from Batch.Run when a step failed fatally.
	ErrBatchAborted = errors.New("batch aborted")
	// ErrAlreadyRun is returned when Run is called on a batch more than once.
	ErrAlreadyRun = errors.New("batch has already been run")
	// ErrCancelled is returned when the context is cancelled while the batch is running.
	ErrCancelled = errors.New("batch cancelled")
	// ErrCouldNotStartProcess is returned when an external process could not be started.
	ErrCouldNotStartProcess = errors.New("could not start process")
	// ErrParseArguments is returned when a resolved argument string cannot be split into arguments.
	ErrParseArguments = errors.New("could not parse process arguments")
	// ErrFailedToCreatePipe is returned when the output pipe for a process could not be created.
	ErrFailedToCreatePipe = errors.New("failed to create pipe")
	// ErrProcessWait is returned when waiting for a started process fails.
	ErrProcessWait = errors.New("failed waiting for process")
)

// ErrStepPanic is returned when a callback step panics.
// It is constructed with the value that caused the panic.
type ErrStepPanic struct {
	v any
}

// NewErrStepPanic creates a new ErrStepPanic with the given value.
func NewErrStepPanic(v any) error {
	return &ErrStepPanic{v: v}
}

// Error implements the error interface for ErrStepPanic.
func (e *ErrStepPanic) Error() string {
	const prefix = "step panic:"

	switch x := e.v.(type) {
	case string:
		return fmt.Sprintf("%s %s", prefix, x)
	case error:
		return fmt.Sprintf("%s %s", prefix, x.Error())
	default:
		return fmt.Sprintf("%s %v", prefix, x)
	}
}

// Unwrap returns the panic value if it was an error.
func (e *ErrStepPanic) Unwrap() error {
	if err, ok := e.v.(error); ok {
		return err
	}

	return nil
}
