// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package runbatch runs an ordered list of steps against a shared variable store and success flag.
//
// A Batch runs its steps strictly one after another. A step that merely marks the batch as
// unsuccessful does not stop the batch: every later step still runs. A step that fails fatally,
// for example because an external tool could not be started, stops every later step except
// those marked RunOnAlways, and the fatal error is returned from Batch.Run.
//
// Two kinds of step are provided. ProcessStep starts an external executable with an argument
// template resolved against the variable store immediately before the process starts, and waits
// for it to exit without interpreting its exit code. CallbackStep runs an in-process function.
package runbatch
