// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"context"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/matt-FFFFFF/sledgehammer/internal/document"
	"github.com/matt-FFFFFF/sledgehammer/internal/runbatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func headlessRunner() *Runner {
	return NewRunner(
		WithTitle("test"),
		WithExitOnCompletion(),
		WithProgramOptions(tea.WithInput(nil), tea.WithOutput(io.Discard), tea.WithoutRenderer()),
	)
}

func TestRunner_RunsBatchAndAnswersInTUI(t *testing.T) {
	r := headlessRunner()

	var answer bool

	steps := []runbatch.Step{
		runbatch.NewCallbackStep("talk", func(_ context.Context, st *runbatch.State, _ document.Document) error {
			st.Debug("hello from step")
			return nil
		}),
		runbatch.NewCallbackStep("ask", func(ctx context.Context, _ *runbatch.State, _ document.Document) error {
			go func() {
				time.Sleep(50 * time.Millisecond)
				r.program.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
			}()

			var err error
			answer, err = r.Confirm(ctx, "run?")

			return err
		}),
	}

	b := runbatch.New(steps, runbatch.WithDiagnostics(r))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	results, err := r.Run(ctx, b, nil)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, answer)

	steps2 := r.Model().Steps()
	require.Len(t, steps2, 2)
	assert.Equal(t, StatusSuccess, steps2[0].Status)
	assert.Equal(t, StatusSuccess, steps2[1].Status)
	assert.Contains(t, r.Model().Log()[0], "hello from step")
}

func TestRunner_AfterExitPromptsAbort(t *testing.T) {
	r := headlessRunner()

	b := runbatch.New(nil, runbatch.WithDiagnostics(r))

	_, err := r.Run(context.Background(), b, nil)
	require.NoError(t, err)

	_, err = r.Confirm(context.Background(), "still there?")
	require.Error(t, err)

	r.Notify(context.Background(), "ignored")
}
