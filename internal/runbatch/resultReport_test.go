// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/matt-FFFFFF/sledgehammer/internal/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_WriteRead(t *testing.T) {
	var trace []string

	boom := errors.New("boom")
	b := New([]Step{
		okStep("first", &trace),
		NewCallbackStep("second", func(context.Context, *State, document.Document) error { return boom }),
		okStep("third", &trace),
	}, WithLabel("report"))

	res, runErr := b.Run(context.Background(), nil)
	require.Error(t, runErr)

	res[0].Output = []byte("line one\nline two\n")
	res[0].Duration = 1500 * time.Millisecond

	r := NewReport(b, res, runErr)
	assert.False(t, r.Successful)
	assert.Equal(t, "report", r.Batch)
	assert.Equal(t, b.RunID(), r.RunID)

	buf := new(bytes.Buffer)
	require.NoError(t, r.Write(buf))
	assert.Contains(t, buf.String(), "run_id:")

	got, err := ReadReport(buf)
	require.NoError(t, err)
	assert.Equal(t, r, got)

	back := got.Results()
	require.Len(t, back, 3)
	assert.Equal(t, ResultStatusSuccess, back[0].Status)
	assert.Equal(t, "line one\nline two\n", string(back[0].Output))
	assert.Equal(t, 1500*time.Millisecond, back[0].Duration)
	assert.Equal(t, ResultStatusError, back[1].Status)
	assert.ErrorContains(t, back[1].Error, "boom")
	assert.Equal(t, ResultStatusSkipped, back[2].Status)
	assert.Nil(t, back[2].Error)
}

func TestReadReport_Invalid(t *testing.T) {
	_, err := ReadReport(strings.NewReader("steps: {"))
	assert.ErrorIs(t, err, ErrReadReport)
}
