// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog carries a slog logger on a context.Context.
//
// The default logger uses a pretty console handler. The level is read once, at start-up,
// from an environment variable derived from the executable name: for an executable named
// "sledgehammer" the variable is SLEDGEHAMMER_LOG_LEVEL and accepts DEBUG, INFO, WARN or ERROR.
// Any other value selects WARN.
package ctxlog
