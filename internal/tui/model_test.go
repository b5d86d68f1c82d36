// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/matt-FFFFFF/sledgehammer/internal/diagnostics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel() *Model {
	m := NewModel("test", []string{"Setup", "Export", "BSP", "Validation"})
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return base.Add(5 * time.Second) }

	return m
}

func event(kind diagnostics.Kind, idx int, step, msg string) EventMsg {
	return eventAt(kind, idx, step, msg, 0)
}

func eventAt(kind diagnostics.Kind, idx int, step, msg string, sec int) EventMsg {
	return EventMsg{Event: diagnostics.Event{
		Kind:    kind,
		Index:   idx,
		Step:    step,
		Message: msg,
		Time:    time.Date(2025, 1, 1, 0, 0, sec, 0, time.UTC),
	}}
}

func TestStepStatus_String(t *testing.T) {
	assert.Equal(t, "pending", StatusPending.String())
	assert.Equal(t, "running", StatusRunning.String())
	assert.Equal(t, "success", StatusSuccess.String())
	assert.Equal(t, "failed", StatusFailed.String())
	assert.Equal(t, "skipped", StatusSkipped.String())
	assert.Equal(t, "unknown", StepStatus(99).String())
}

func TestModel_Lifecycle(t *testing.T) {
	m := newTestModel()

	m.Update(event(diagnostics.KindStepStarted, 0, "Setup", ""))
	m.Update(event(diagnostics.KindDebug, 0, "Setup", "Working directory is: /tmp/x"))
	m.Update(eventAt(diagnostics.KindStepCompleted, 0, "Setup", "", 1))
	m.Update(event(diagnostics.KindStepStarted, 2, "BSP", ""))
	m.Update(event(diagnostics.KindOutput, 2, "BSP", "  writing bsp  "))
	m.Update(event(diagnostics.KindStepFailed, 2, "BSP", "could not start process"))
	m.Update(event(diagnostics.KindStepSkipped, 3, "Validation", ""))

	steps := m.Steps()
	assert.Equal(t, StatusSuccess, steps[0].Status)
	assert.Equal(t, time.Second, steps[0].elapsed(m.now()))
	assert.Equal(t, StatusPending, steps[1].Status)
	assert.Equal(t, StatusFailed, steps[2].Status)
	assert.Equal(t, "writing bsp", steps[2].LastOutput)
	assert.Equal(t, "could not start process", steps[2].ErrorMsg)
	assert.Equal(t, StatusSkipped, steps[3].Status)

	require.Len(t, m.Log(), 3)
	assert.Contains(t, m.Log()[0], "Working directory is: /tmp/x")
	assert.Contains(t, m.Log()[1], "writing bsp")
	assert.Contains(t, m.Log()[2], "BSP failed: could not start process")

	view := m.View()
	assert.Contains(t, view, "Setup")
	assert.Contains(t, view, "Error: could not start process")
}

func TestModel_ErrorReportIsSplitIntoLines(t *testing.T) {
	m := newTestModel()
	m.Update(event(diagnostics.KindError, 3, "Validation", "line one\nline two\n"))

	require.Len(t, m.Log(), 2)
	assert.Contains(t, m.Log()[1], "line two")
}

func TestModel_OutOfRangeIndexOnlyLogs(t *testing.T) {
	m := newTestModel()
	m.Update(event(diagnostics.KindOutput, 42, "ghost", "hello"))

	assert.Len(t, m.Log(), 1)

	for _, s := range m.Steps() {
		assert.Empty(t, s.LastOutput)
	}
}

func TestModel_Confirm(t *testing.T) {
	tests := []struct {
		key  tea.KeyMsg
		want bool
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")}, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Y")}, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, false},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			m := newTestModel()
			reply := make(chan bool, 1)

			m.Update(ConfirmMsg{Question: "Would you like to run the game now?", Reply: reply})
			assert.Contains(t, m.View(), "Would you like to run the game now?")

			m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
			assert.Empty(t, reply, "other keys do not answer")

			_, cmd := m.Update(tt.key)
			assert.Nil(t, cmd)
			assert.Equal(t, tt.want, <-reply)
			assert.NotContains(t, m.View(), "Would you like")
		})
	}
}

func TestModel_QuitKeys(t *testing.T) {
	m := newTestModel()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModel_NoticeAndCompletion(t *testing.T) {
	m := newTestModel()

	m.Update(NoticeMsg{Text: "The location of the game executable is incorrect."})
	assert.Contains(t, m.View(), "The location of the game executable is incorrect.")

	m.Update(BatchCompletedMsg{Successful: true})
	assert.Contains(t, m.View(), "Compile completed successfully")

	m.Update(BatchCompletedMsg{Successful: false})
	assert.Contains(t, m.View(), "Compile failed")

	m.Update(BatchCompletedMsg{Err: errors.New("batch aborted")})
	assert.Contains(t, m.View(), "Compile aborted: batch aborted")
}

func TestModel_AutoQuit(t *testing.T) {
	m := newTestModel()
	m.autoQuit = true

	_, cmd := m.Update(BatchCompletedMsg{Successful: true})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_WindowSize(t *testing.T) {
	m := newTestModel()
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 118, m.viewport.Width)
	assert.Equal(t, 40-m.reservedLines(), m.viewport.Height)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}
