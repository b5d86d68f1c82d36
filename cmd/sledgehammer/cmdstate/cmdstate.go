// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmdstate builds the compile inputs shared by the compile and plan commands.
// It holds the flags both commands accept and turns them into an environment,
// tool arguments and a document.
package cmdstate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/matt-FFFFFF/sledgehammer/internal/ctxlog"
	"github.com/matt-FFFFFF/sledgehammer/internal/document"
	"github.com/matt-FFFFFF/sledgehammer/internal/environment"
	"github.com/matt-FFFFFF/sledgehammer/internal/fetch"
	"github.com/matt-FFFFFF/sledgehammer/internal/goldsource"
	"github.com/urfave/cli/v3"
)

const (
	// MapFileArg is the name of the positional map file argument.
	MapFileArg = "mapfile"

	environmentFlag = "environment"
	profileFlag     = "profile"
	stageFlag       = "stage"
	stageSeparator  = "="
)

var (
	// ErrNoMapFile is returned when no map file argument is given.
	ErrNoMapFile = errors.New("no map file specified")
	// ErrNoEnvironment is returned when no environment file is given.
	ErrNoEnvironment = errors.New("no environment file specified")
	// ErrStageFlag is returned when a stage flag cannot be parsed.
	ErrStageFlag = errors.New("invalid stage flag")
)

// Arguments returns the positional arguments of commands that compile a map.
func Arguments() []cli.Argument {
	return []cli.Argument{
		&cli.StringArg{
			Name:      MapFileArg,
			UsageText: "path to the .map file to compile",
		},
	}
}

// Flags returns the flags of commands that compile a map.
// New values are returned each time since urfave/cli stores parse state in them.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    environmentFlag,
			Aliases: []string{"e", "env"},
			Usage: "URL of the game environment file (YAML or HCL). " +
				"Supports Hashicorp's go-getter syntax for fetching files from various sources.",
			TakesFile: true,
			OnlyOnce:  true,
		},
		&cli.StringFlag{
			Name:    profileFlag,
			Aliases: []string{"p"},
			Usage: "URL of a compile profile file (YAML or HCL) naming the tools to run and their arguments. " +
				"Without a profile or --stage flags every tool runs with no extra arguments.",
			TakesFile: true,
			OnlyOnce:  true,
		},
		&cli.StringSliceFlag{
			Name:    stageFlag,
			Aliases: []string{"s"},
			Usage: "Run a compile tool, as NAME or NAME=ARGS, e.g. --stage 'RAD=-extra -bounce 4'. " +
				"Takes precedence over the profile. Specify multiple times to run multiple tools.",
		},
	}
}

// Input is everything needed to assemble a compile batch.
type Input struct {
	Environment *environment.Environment
	Arguments   goldsource.Arguments
	Document    document.Document
}

// Load reads the command's arguments and flags, fetches the configuration files they name,
// and returns the compile input.
func Load(ctx context.Context, cmd *cli.Command) (*Input, error) {
	mapFile := cmd.StringArg(MapFileArg)
	if mapFile == "" {
		return nil, ErrNoMapFile
	}

	envURL := cmd.String(environmentFlag)
	if envURL == "" {
		return nil, ErrNoEnvironment
	}

	ctxlog.Debug(ctx, "fetching environment", "url", envURL)

	f, err := fetch.Get(ctx, envURL)
	if err != nil {
		return nil, err
	}

	env, err := environment.ParseEnvironment(f.Name, f.Data)
	if err != nil {
		return nil, err
	}

	named, err := ParseStageFlags(cmd.StringSlice(stageFlag))
	if err != nil {
		return nil, err
	}

	if u := cmd.String(profileFlag); u != "" {
		ctxlog.Debug(ctx, "fetching profile", "url", u)

		pf, err := fetch.Get(ctx, u)
		if err != nil {
			return nil, err
		}

		profile, err := environment.ParseProfile(pf.Name, pf.Data)
		if err != nil {
			return nil, err
		}

		named = append(named, profile.Arguments...)
	}

	if len(named) == 0 {
		named = DefaultArguments()
	}

	args, err := goldsource.NewArguments(named)
	if err != nil {
		return nil, err
	}

	return &Input{
		Environment: env,
		Arguments:   args,
		Document:    document.NewFile(mapFile),
	}, nil
}

// ParseStageFlags parses NAME or NAME=ARGS values. Names are not checked here.
func ParseStageFlags(values []string) ([]environment.BatchArgument, error) {
	out := make([]environment.BatchArgument, 0, len(values))

	for _, v := range values {
		name, args, _ := strings.Cut(v, stageSeparator)

		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("%w: %q", ErrStageFlag, v)
		}

		out = append(out, environment.BatchArgument{Name: name, Arguments: strings.TrimSpace(args)})
	}

	return out, nil
}

// DefaultArguments runs every compile tool without extra arguments.
func DefaultArguments() []environment.BatchArgument {
	stages := goldsource.Stages()
	out := make([]environment.BatchArgument, len(stages))

	for i, s := range stages {
		out[i] = environment.BatchArgument{Name: s.String()}
	}

	return out
}
