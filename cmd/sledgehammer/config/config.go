// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config contains the command that prints example configuration files.
package config

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/sledgehammer/internal/environment"
	"github.com/urfave/cli/v3"
)

const (
	formatFlag = "format"
	kindArg    = "kind"

	kindEnvironment = "environment"
	kindProfile     = "profile"
)

// ConfigCmd prints an example environment or profile file.
var ConfigCmd = NewCommand()

// NewCommand creates the config command.
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Print an example environment or profile file",
		Description: `Print an example configuration file to use as a starting point.
The kind is either "environment" (the default) or "profile".`,
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: kindArg,
			},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    formatFlag,
				Aliases: []string{"f"},
				Usage:   "Output format: yaml or hcl",
				Value:   string(environment.FormatYAML),
			},
		},
		Action: actionFunc,
	}
}

func actionFunc(_ context.Context, cmd *cli.Command) error {
	var v any

	switch kind := cmd.StringArg(kindArg); kind {
	case "", kindEnvironment:
		v = environment.Example()
	case kindProfile:
		v = environment.ExampleProfile()
	default:
		return cli.Exit(fmt.Sprintf("unknown configuration kind %q, want %q or %q", kind, kindEnvironment, kindProfile), 1)
	}

	data, err := environment.Encode(v, environment.Format(cmd.String(formatFlag)))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if _, err := cmd.Root().Writer.Write(data); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	return nil
}
