// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tui provides a real-time Terminal User Interface (TUI) for watching a compile.
// It lists the steps of the batch with status indicators, elapsed time, and the last
// output line of the running tool, above a scrolling log of the compile diagnostics.
//
// The Runner is both the diagnostics publisher and the prompter of the batch it runs,
// so the question asked before the game is launched is answered inside the TUI.
package tui
