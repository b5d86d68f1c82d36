// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the sledgehammer command-line interface (CLI).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/sledgehammer"
	"github.com/matt-FFFFFF/sledgehammer/cmd/sledgehammer/compile"
	"github.com/matt-FFFFFF/sledgehammer/cmd/sledgehammer/config"
	"github.com/matt-FFFFFF/sledgehammer/cmd/sledgehammer/plan"
	"github.com/matt-FFFFFF/sledgehammer/cmd/sledgehammer/show"
	"github.com/matt-FFFFFF/sledgehammer/internal/ctxlog"
	"github.com/matt-FFFFFF/sledgehammer/internal/signalbroker"
	"github.com/urfave/cli/v3"
)

const forcedExitCode = 130

// rootCmd is the root command for the CLI.
var rootCmd = &cli.Command{
	Commands: []*cli.Command{
		compile.CompileCmd,
		plan.PlanCmd,
		show.ShowCmd,
		config.ConfigCmd,
	},
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "sledgehammer",
	Description: `Sledgehammer compiles Goldsource maps. It copies a map to a temporary
working directory, runs the configured CSG, BSP, VIS and RAD tools against it,
detects tool failures from the files they leave behind, copies the results back,
and optionally starts the game on the new map.`,
	Usage:     "sledgehammer compile -e env.yaml mymap.map",
	Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors: []any{
		"Matt White (matt-FFFFFF)",
	},
	EnableShellCompletion: true,
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)

	defer cancel()

	sigCh := signalbroker.New(ctx)
	defer signalbroker.Stop(sigCh)

	go signalbroker.Watch(ctx, sigCh, cancel, func(s os.Signal) {
		ctxlog.Error(ctx, "received second signal, exiting immediately", "signal", s.String())
		os.Exit(forcedExitCode)
	})

	rootCmd.Version = fmt.Sprintf("%s (commit: %s)", sledgehammer.Version, sledgehammer.Commit)

	err := rootCmd.Run(ctx, os.Args) // Err is handled by cli framework

	if ctx.Err() != nil {
		ctxlog.Logger(ctx).Error("command terminated due to cancellation", "error", ctx.Err())
		os.Exit(1) //nolint:gocritic
	}

	if err != nil {
		ctxlog.Logger(ctx).Error("command execution failed", "error", err)
		os.Exit(1)
	}
}
