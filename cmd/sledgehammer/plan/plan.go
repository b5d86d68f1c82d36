// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package plan contains the command that shows the steps a compile would run.
package plan

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/matt-FFFFFF/sledgehammer/cmd/sledgehammer/cmdstate"
	"github.com/matt-FFFFFF/sledgehammer/internal/ctxlog"
	"github.com/matt-FFFFFF/sledgehammer/internal/goldsource"
	"github.com/matt-FFFFFF/sledgehammer/internal/runbatch"
	"github.com/urfave/cli/v3"
)

const cliExitStr = ""

var (
	labelStyle  = lipgloss.NewStyle().Bold(true)
	detailStyle = lipgloss.NewStyle().Faint(true)
)

// PlanCmd is the command that prints the steps of a compile without running them.
var PlanCmd = NewCommand()

// NewCommand creates the plan command.
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:  "plan",
		Usage: "Show the steps a compile would run",
		Description: `Show the ordered steps a compile of the map would run,
including the executable and argument template of each compile tool. Nothing is run.`,
		Arguments: cmdstate.Arguments(),
		Flags:     cmdstate.Flags(),
		Action:    actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)

	in, err := cmdstate.Load(ctx, cmd)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to load compile input: %s", err.Error()))
		return cli.Exit(cliExitStr, 1)
	}

	if err := in.Environment.Validate(in.Arguments.Names()...); err != nil {
		logger.Warn(err.Error())
	}

	b := goldsource.NewAssembler(in.Environment).CreateBatch(in.Arguments)

	if err := Write(cmd.Root().Writer, b); err != nil {
		logger.Error(fmt.Sprintf("Failed to write plan: %s", err.Error()))
		return cli.Exit(cliExitStr, 1)
	}

	return nil
}

// Write prints the steps of b, one per line.
func Write(w io.Writer, b *runbatch.Batch) error {
	if _, err := fmt.Fprintf(w, "%s\n", labelStyle.Render(b.Label)); err != nil {
		return err
	}

	for i, s := range b.Steps() {
		line := fmt.Sprintf("%2d. %s", i+1, labelStyle.Render(s.GetLabel()))

		var details []string

		if p, ok := s.(*runbatch.ProcessStep); ok {
			details = append(details, p.Path+" "+strings.TrimSpace(p.Args))
		}

		if s.RunsOn() == runbatch.RunOnAlways {
			details = append(details, "always runs")
		}

		if len(details) > 0 {
			line += "  " + detailStyle.Render(strings.Join(details, ", "))
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}
