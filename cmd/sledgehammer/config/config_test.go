// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"context"
	"testing"

	"github.com/matt-FFFFFF/sledgehammer/internal/environment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func run(t *testing.T, args ...string) ([]byte, error) {
	t.Helper()

	out := new(bytes.Buffer)
	root := &cli.Command{
		Name:           "sledgehammer",
		Writer:         out,
		ErrWriter:      out,
		Commands:       []*cli.Command{NewCommand()},
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}

	err := root.Run(context.Background(), append([]string{"sledgehammer", "config"}, args...))

	return out.Bytes(), err
}

func TestConfig_Environment(t *testing.T) {
	for _, tc := range []struct {
		format   string
		filename string
	}{
		{"yaml", "env.yaml"},
		{"hcl", "env.hcl"},
	} {
		t.Run(tc.format, func(t *testing.T) {
			out, err := run(t, "--format", tc.format)
			require.NoError(t, err)

			env, err := environment.ParseEnvironment(tc.filename, out)
			require.NoError(t, err)
			assert.Equal(t, environment.Example().BaseDirectory, env.BaseDirectory)
			assert.True(t, env.GameRun)
		})
	}
}

func TestConfig_Profile(t *testing.T) {
	out, err := run(t, "-f", "hcl", "profile")
	require.NoError(t, err)

	p, err := environment.ParseProfile("normal.hcl", out)
	require.NoError(t, err)
	assert.Len(t, p.Arguments, 4)
}

func TestConfig_Errors(t *testing.T) {
	_, err := run(t, "widgets")
	require.Error(t, err)

	_, err = run(t, "--format", "toml")
	require.Error(t, err)
}
