// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/sledgehammer/internal/ctxlog"
)

// Watch reads signals from sigCh until it is closed or force is called.
// The first signal cancels the context so the running batch can stop and clean up.
// A second signal of a type already received calls force.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc, force func(os.Signal)) {
	seen := make(map[os.Signal]struct{})

	for sig := range sigCh {
		if _, ok := seen[sig]; ok {
			ctxlog.Logger(ctx).Warn("watchdog", "detail", "received second signal of type, forcing exit", "signal", sig.String())

			if force != nil {
				force(sig)
			}

			return
		}

		seen[sig] = struct{}{}

		ctxlog.Logger(ctx).Warn("watchdog", "detail", "received signal, cancelling compile", "signal", sig.String())
		cancel()
	}
}
