// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package interaction

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/peterh/liner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scripted(answers ...string) promptFunc {
	return func(_ string) (string, error) {
		if len(answers) == 0 {
			return "", io.EOF
		}

		a := answers[0]
		answers = answers[1:]

		return a, nil
	}
}

func TestTerminal_Confirm(t *testing.T) {
	tests := []struct {
		name    string
		answers []string
		want    bool
		wantErr error
	}{
		{name: "yes", answers: []string{"y"}, want: true},
		{name: "yes long", answers: []string{" YES "}, want: true},
		{name: "no", answers: []string{"n"}, want: false},
		{name: "empty defaults to no", answers: []string{""}, want: false},
		{name: "retry after garbage", answers: []string{"maybe", "y"}, want: true},
		{name: "eof aborts", answers: nil, wantErr: ErrAborted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer

			term := NewTerminal(&out)
			term.prompt = scripted(tt.answers...)

			got, err := term.Confirm(context.Background(), "Run the game?")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Run the game?")
		})
	}
}

func TestTerminal_ConfirmCtrlC(t *testing.T) {
	term := NewTerminal(io.Discard)
	term.prompt = func(string) (string, error) { return "", liner.ErrPromptAborted }

	_, err := term.Confirm(context.Background(), "q")
	require.ErrorIs(t, err, ErrAborted)
}

func TestTerminal_ConfirmPromptError(t *testing.T) {
	boom := errors.New("tty gone")
	term := NewTerminal(io.Discard)
	term.prompt = func(string) (string, error) { return "", boom }

	_, err := term.Confirm(context.Background(), "q")
	require.ErrorIs(t, err, boom)
}

func TestTerminal_ConfirmCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	term := NewTerminal(io.Discard)
	term.prompt = scripted("y")

	ok, err := term.Confirm(ctx, "q")
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, ok)
}

func TestTerminal_Notify(t *testing.T) {
	var out bytes.Buffer

	NewTerminal(&out).Notify(context.Background(), "game not found")
	assert.Contains(t, out.String(), "game not found")
}

func TestStatic(t *testing.T) {
	var out bytes.Buffer

	s := NewStatic(true, &out)

	ok, err := s.Confirm(context.Background(), "q1")
	require.NoError(t, err)
	assert.True(t, ok)

	s.Notify(context.Background(), "n1")

	assert.Equal(t, []string{"q1"}, s.Questions())
	assert.Equal(t, []string{"n1"}, s.Notices())
	assert.Equal(t, "n1\n", out.String())

	no := NewStatic(false, nil)
	ok, err = no.Confirm(context.Background(), "q2")
	require.NoError(t, err)
	assert.False(t, ok)
}
