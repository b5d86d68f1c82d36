// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package plan

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

const envYAML = `name: hl
base_directory: /games/hl
mod_directory: valve
tools_directory: /tools
csg_exe: hlcsg
bsp_exe: hlbsp
game_run: true
game_exe: hl.exe
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	out := new(bytes.Buffer)
	root := &cli.Command{
		Name:           "sledgehammer",
		Writer:         out,
		ErrWriter:      out,
		Commands:       []*cli.Command{NewCommand()},
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}

	err := root.Run(context.Background(), append([]string{"sledgehammer", "plan"}, args...))

	return out.String(), err
}

func TestPlan(t *testing.T) {
	env := filepath.Join(t.TempDir(), "env.yaml")
	require.NoError(t, os.WriteFile(env, []byte(envYAML), 0o600))

	out, err := run(t, "-e", env, "-s", "BSP=-chart", "-s", "CSG", "box.map")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 9)
	assert.Contains(t, lines[0], "compile (hl)")
	assert.Contains(t, lines[1], "Setup")
	assert.Contains(t, lines[2], "Export")
	assert.Contains(t, lines[3], "CSG")
	assert.Contains(t, lines[3], filepath.Join("/tools", "hlcsg")+` "{MapFile}"`)
	assert.Contains(t, lines[4], "BSP")
	assert.Contains(t, lines[4], `-chart "{MapFile}"`)
	assert.Contains(t, lines[5], "Validation")
	assert.Contains(t, lines[6], "Copy-back")
	assert.Contains(t, lines[7], "Cleanup")
	assert.Contains(t, lines[7], "always runs")
	assert.Contains(t, lines[8], "Launch")
}

func TestPlan_MissingEnvironment(t *testing.T) {
	_, err := run(t, "box.map")
	require.Error(t, err)
}
