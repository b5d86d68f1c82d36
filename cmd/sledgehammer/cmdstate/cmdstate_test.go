// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmdstate

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/matt-FFFFFF/sledgehammer/internal/environment"
	"github.com/matt-FFFFFF/sledgehammer/internal/fetch"
	"github.com/matt-FFFFFF/sledgehammer/internal/goldsource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func TestParseStageFlags(t *testing.T) {
	got, err := ParseStageFlags([]string{"BSP", "rad=-extra -bounce 4", " VIS = -full "})
	require.NoError(t, err)
	assert.Equal(t, []environment.BatchArgument{
		{Name: "BSP"},
		{Name: "rad", Arguments: "-extra -bounce 4"},
		{Name: "VIS", Arguments: "-full"},
	}, got)

	_, err = ParseStageFlags([]string{"=-extra"})
	assert.ErrorIs(t, err, ErrStageFlag)
}

func TestDefaultArguments(t *testing.T) {
	args, err := goldsource.NewArguments(DefaultArguments())
	require.NoError(t, err)
	assert.Equal(t, []string{"CSG", "BSP", "VIS", "RAD"}, args.Names())
}

// load runs Load through a command so flags are parsed the way the CLI parses them.
func load(t *testing.T, argv ...string) (*Input, error) {
	t.Helper()

	var (
		in  *Input
		err error
	)

	cmd := &cli.Command{
		Name:      "test",
		Arguments: Arguments(),
		Flags:     Flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			in, err = Load(ctx, cmd)
			return nil
		},
	}

	require.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, argv...)))

	return in, err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))

	return p
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	env := writeFile(t, dir, "env.yaml", "name: test\nbase_directory: /games/hl\n")
	profile := writeFile(t, dir, "fast.hcl", `
argument "BSP" {
  arguments = "-profile"
}
argument "VIS" {
  arguments = "-fast"
}
`)

	t.Run("defaults to every stage", func(t *testing.T) {
		in, err := load(t, "-e", env, "de_dust.map")
		require.NoError(t, err)
		assert.Equal(t, "test", in.Environment.Name)
		assert.Equal(t, "/games/hl", in.Environment.BaseDirectory)
		assert.Equal(t, []string{"CSG", "BSP", "VIS", "RAD"}, in.Arguments.Names())
		assert.Equal(t, "de_dust.map", in.Document.FileName())
	})

	t.Run("stage flags win over the profile", func(t *testing.T) {
		in, err := load(t, "-e", env, "-p", profile, "-s", "BSP=-flag", "room.map")
		require.NoError(t, err)
		assert.Equal(t, []string{"BSP", "VIS"}, in.Arguments.Names())
		assert.Equal(t, "-flag", in.Arguments[goldsource.StageBSP])
		assert.Equal(t, "-fast", in.Arguments[goldsource.StageVIS])
	})

	t.Run("unknown stage", func(t *testing.T) {
		_, err := load(t, "-e", env, "-s", "LIGHT", "room.map")
		assert.ErrorIs(t, err, goldsource.ErrUnknownStage)
	})

	t.Run("missing map file", func(t *testing.T) {
		_, err := load(t, "-e", env)
		assert.ErrorIs(t, err, ErrNoMapFile)
	})

	t.Run("missing environment", func(t *testing.T) {
		_, err := load(t, "room.map")
		assert.ErrorIs(t, err, ErrNoEnvironment)
	})

	t.Run("environment not found", func(t *testing.T) {
		_, err := load(t, "-e", filepath.Join(dir, "nope.yaml"), "room.map")
		assert.ErrorIs(t, err, fetch.ErrGetFile)
	})
}
