// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package compile contains the command that compiles a map.
package compile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/sledgehammer/cmd/sledgehammer/cmdstate"
	"github.com/matt-FFFFFF/sledgehammer/internal/ctxlog"
	"github.com/matt-FFFFFF/sledgehammer/internal/diagnostics"
	"github.com/matt-FFFFFF/sledgehammer/internal/goldsource"
	"github.com/matt-FFFFFF/sledgehammer/internal/interaction"
	"github.com/matt-FFFFFF/sledgehammer/internal/runbatch"
	"github.com/matt-FFFFFF/sledgehammer/internal/tui"
	"github.com/urfave/cli/v3"
)

const (
	tuiFlag                  = "tui"
	yesFlag                  = "yes"
	noLaunchFlag             = "no-launch"
	reportFlag               = "report"
	noToolOutputFlag         = "no-tool-output"
	outputSuccessDetailsFlag = "output-success-details"
	cliExitStr               = ""
)

// CompileCmd is the command that compiles a map with the environment's tools.
var CompileCmd = NewCommand()

// NewCommand creates the compile command.
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:  "compile",
		Usage: "Compile a map with the CSG, BSP, VIS and RAD tools",
		Description: `Compile a map with the tools configured in a game environment file.
The map is copied to a temporary working directory, the selected tools are run in order,
and the results are copied back next to the map and into the game's maps directory
according to the environment's settings. The working directory is always removed.

Environment and profile URLs use Hashicorp's go-getter syntax, which allows for fetching files from various sources.
See https://github.com/hashicorp/go-getter.
`,
		Arguments: cmdstate.Arguments(),
		Flags: append(cmdstate.Flags(),
			&cli.BoolFlag{
				Name:     tuiFlag,
				Aliases:  []string{"t", "interactive"},
				Usage:    "Run with interactive Terminal User Interface (TUI) showing real-time progress",
				OnlyOnce: true,
			},
			&cli.BoolFlag{
				Name:     yesFlag,
				Aliases:  []string{"y"},
				Usage:    "Answer yes when asked whether to run the game",
				OnlyOnce: true,
			},
			&cli.BoolFlag{
				Name:     noLaunchFlag,
				Usage:    "Never run the game after compiling, whatever the environment says",
				OnlyOnce: true,
			},
			&cli.StringFlag{
				Name:      reportFlag,
				Aliases:   []string{"out"},
				Usage:     "Write the step results to this file as YAML",
				TakesFile: true,
				OnlyOnce:  true,
			},
			&cli.BoolFlag{
				Name:     noToolOutputFlag,
				Usage:    "Do not stream tool output while compiling",
				OnlyOnce: true,
			},
			&cli.BoolFlag{
				Name:     outputSuccessDetailsFlag,
				Aliases:  []string{"success"},
				Usage:    "Include the output of successful steps in the results",
				OnlyOnce: true,
			},
		),
		Action: actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)
	logger.Debug("Running compile command")

	out := cmd.Root().Writer

	in, err := cmdstate.Load(ctx, cmd)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to load compile input: %s", err.Error()))
		return cli.Exit(cliExitStr, 1)
	}

	if cmd.Bool(noLaunchFlag) {
		in.Environment.GameRun = false
	}

	if err := in.Environment.Validate(in.Arguments.Names()...); err != nil {
		logger.Error(err.Error())
		return cli.Exit(cliExitStr, 1)
	}

	var (
		b      *runbatch.Batch
		res    runbatch.Results
		runErr error
	)

	switch cmd.Bool(tuiFlag) {
	case true:
		logger.Info("Starting interactive TUI mode...")

		buf := new(bytes.Buffer)
		tuiCtx := ctxlog.NewForTUI(ctx, buf)

		runner := tui.NewRunner(tui.WithTitle("Compiling " + in.Document.Name()))

		var prompter interaction.Prompter = runner
		if cmd.Bool(yesFlag) {
			prompter = interaction.NewStatic(true, nil)
		}

		b = goldsource.NewAssembler(in.Environment,
			goldsource.WithDiagnostics(runner),
			goldsource.WithPrompter(prompter),
		).CreateBatch(in.Arguments)
		res, runErr = runner.Run(tuiCtx, b, in.Document)

		buf.WriteTo(out) //nolint:errcheck
	default:
		var pubOpts []diagnostics.WriterOption
		if cmd.Bool(noToolOutputFlag) {
			pubOpts = append(pubOpts, diagnostics.WithoutToolOutput())
		}

		var prompter interaction.Prompter = interaction.NewTerminal(out)
		if cmd.Bool(yesFlag) {
			prompter = interaction.NewStatic(true, out)
		}

		b = goldsource.NewAssembler(in.Environment,
			goldsource.WithDiagnostics(diagnostics.NewWriterPublisher(out, pubOpts...)),
			goldsource.WithPrompter(prompter),
		).CreateBatch(in.Arguments)
		res, runErr = b.Run(ctx, in.Document)
	}

	if name := cmd.String(reportFlag); name != "" {
		if err := writeReport(name, b, res, runErr); err != nil {
			logger.Error(fmt.Sprintf("Failed to write report to file %s: %s", name, err.Error()))
			return cli.Exit(cliExitStr, 1)
		}

		logger.Info(fmt.Sprintf("Report written to %s", name))
	}

	opts := runbatch.DefaultOutputOptions()
	opts.ShowSuccessDetails = cmd.Bool(outputSuccessDetailsFlag)

	if err := runbatch.WriteText(out, res, opts); err != nil {
		logger.Error(fmt.Sprintf("Failed to write results: %s", err.Error()))
		return cli.Exit(cliExitStr, 1)
	}

	switch {
	case errors.Is(runErr, runbatch.ErrCancelled):
		logger.Error("Compile cancelled.")
		return cli.Exit(cliExitStr, 1)
	case runErr != nil:
		logger.Error(fmt.Sprintf("Compile aborted: %s", runErr.Error()))
		return cli.Exit(cliExitStr, 1)
	case !b.Successful():
		logger.Error("Compile failed. See above for details.")
		return cli.Exit(cliExitStr, 1)
	}

	logger.Info("Compile completed successfully")

	return nil
}

func writeReport(name string, b *runbatch.Batch, res runbatch.Results, runErr error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}

	defer f.Close() //nolint:errcheck

	return runbatch.NewReport(b, res, runErr).Write(f)
}
