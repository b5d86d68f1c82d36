// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package show contains the command that prints a saved compile report.
package show

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/sledgehammer/internal/runbatch"
	"github.com/urfave/cli/v3"
)

const (
	fileArg                  = "file"
	outputSuccessDetailsFlag = "output-success-details"
)

var (
	// ErrReadFile is returned when the file cannot be opened.
	ErrReadFile = errors.New("failed to read file")
	// ErrWriteResults is returned when the results cannot be written.
	ErrWriteResults = errors.New("failed to write results")
)

// ShowCmd is the command that shows a report saved by compile --report.
var ShowCmd = NewCommand()

// NewCommand creates the show command.
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:        "show",
		Usage:       "Show a saved compile report",
		Description: "Show the results of a compile saved with compile --report.",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: fileArg,
			},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:     outputSuccessDetailsFlag,
				Aliases:  []string{"success"},
				Usage:    "Include the output of successful steps",
				OnlyOnce: true,
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			file, err := os.Open(cmd.StringArg(fileArg))
			if err != nil {
				return errors.Join(ErrReadFile, err)
			}
			defer file.Close() //nolint:errcheck

			report, err := runbatch.ReadReport(file)
			if err != nil {
				return err
			}

			w := cmd.Root().Writer

			status := "successful"
			if !report.Successful {
				status = "unsuccessful"
			}

			if _, err := fmt.Fprintf(w, "%s (%s): %s\n", report.Batch, report.RunID, status); err != nil {
				return errors.Join(ErrWriteResults, err)
			}

			if report.Error != "" {
				if _, err := fmt.Fprintf(w, "Error: %s\n", report.Error); err != nil {
					return errors.Join(ErrWriteResults, err)
				}
			}

			opts := runbatch.DefaultOutputOptions()
			opts.ShowSuccessDetails = cmd.Bool(outputSuccessDetailsFlag)

			if err := runbatch.WriteText(w, report.Results(), opts); err != nil {
				return errors.Join(ErrWriteResults, err)
			}

			return nil
		},
	}
}
