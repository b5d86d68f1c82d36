// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package show

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/matt-FFFFFF/sledgehammer/internal/runbatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

const reportYAML = `batch: compile (hl)
run_id: 1d7a0d1e-0000-4000-8000-000000000000
successful: false
steps:
  - label: Setup
    type: callback
    status: success
    exit_code: 0
    duration: 2ms
  - label: BSP
    type: process
    status: success
    exit_code: 1
    duration: 1.5s
    output: |
      Error: leak found
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

	err := root.Run(context.Background(), append([]string{"sledgehammer", "show"}, args...))

	return out.String(), err
}

func TestShow(t *testing.T) {
	p := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, os.WriteFile(p, []byte(reportYAML), 0o600))

	out, err := run(t, "--success", p)
	require.NoError(t, err)
	assert.Contains(t, out, "compile (hl) (1d7a0d1e-0000-4000-8000-000000000000): unsuccessful")
	assert.Contains(t, out, "Setup")
	assert.Contains(t, out, "leak found")
}

func TestShow_Errors(t *testing.T) {
	_, err := run(t, filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, ErrReadFile)

	p := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(p, []byte("steps: {"), 0o600))

	_, err = run(t, p)
	require.ErrorIs(t, err, runbatch.ErrReadReport)
}
