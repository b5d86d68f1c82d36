// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/matt-FFFFFF/sledgehammer/internal/diagnostics"
	"github.com/matt-FFFFFF/sledgehammer/internal/runbatch"
)

const (
	stepDurationRounding = 100 * time.Millisecond
	maxOutputWidth       = 60
	ellipsis             = "..."
)

// EventMsg wraps a diagnostics event for the tea framework.
type EventMsg struct {
	Event diagnostics.Event
}

// BatchCompletedMsg indicates that the batch has finished.
type BatchCompletedMsg struct {
	Results    runbatch.Results
	Err        error
	Successful bool
}

// ConfirmMsg asks the user a yes/no question. The answer is sent on Reply.
type ConfirmMsg struct {
	Question string
	Reply    chan<- bool
}

// NoticeMsg shows a message to the user.
type NoticeMsg struct {
	Text string
}

// Init implements bubbletea.Model.Init.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements bubbletea.Model.Update.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case EventMsg:
		m.processEvent(msg.Event)
		return m, nil

	case ConfirmMsg:
		m.question = &question{text: msg.Question, reply: msg.Reply}
		return m, nil

	case NoticeMsg:
		m.notices = append(m.notices, msg.Text)
		m.appendLog(m.styles.Error.Render(msg.Text))

		return m, nil

	case BatchCompletedMsg:
		m.completed = true
		m.results = msg.Results
		m.runErr = msg.Err
		m.successful = msg.Successful

		if m.autoQuit {
			m.quitting = true
			return m, tea.Quit
		}

		return m, nil
	}

	var cmd tea.Cmd

	if _, ok := msg.(spinner.TickMsg); ok {
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

// handleKeyPress processes keyboard input.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.question != nil {
		switch strings.ToLower(key) {
		case "y":
			m.answer(true)
		case "n", "esc", "enter":
			m.answer(false)
		case "ctrl+c":
			m.answer(false)
			m.quitting = true

			return m, tea.Quit
		}

		return m, nil
	}

	switch key {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd

	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

func (m *Model) answer(yes bool) {
	m.question.reply <- yes
	m.question = nil
}

// processEvent applies a diagnostics event to the step list and log.
func (m *Model) processEvent(e diagnostics.Event) {
	var node *StepNode
	if e.Index >= 0 && e.Index < len(m.steps) {
		node = m.steps[e.Index]
	}

	now := e.Time
	if now.IsZero() {
		now = m.now()
	}

	switch e.Kind {
	case diagnostics.KindStepStarted:
		if node != nil {
			node.setStatus(StatusRunning, now)
		}
	case diagnostics.KindStepCompleted:
		if node != nil {
			node.setStatus(StatusSuccess, now)
		}
	case diagnostics.KindStepFailed:
		if node != nil {
			node.setStatus(StatusFailed, now)
			node.ErrorMsg = e.Message
		}

		m.appendLog(m.styles.Error.Render(fmt.Sprintf("%s failed: %s", e.Step, e.Message)))
	case diagnostics.KindStepSkipped:
		if node != nil {
			node.setStatus(StatusSkipped, now)
		}
	case diagnostics.KindOutput:
		if node != nil {
			node.LastOutput = strings.TrimSpace(e.Message)
		}

		m.appendLog(e.Message)
	case diagnostics.KindDebug:
		m.appendLog(m.styles.Debug.Render(e.Message))
	case diagnostics.KindError:
		for _, line := range strings.Split(strings.TrimRight(e.Message, "\n"), "\n") {
			m.appendLog(m.styles.Error.Render(line))
		}
	}
}

// View implements bubbletea.Model.View.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var view strings.Builder

	view.WriteString(m.styles.Title.Render("🔨 " + m.title))
	view.WriteString("\n\n")

	for _, n := range m.steps {
		view.WriteString(m.renderStep(n))
		view.WriteString("\n")
	}

	view.WriteString(m.styles.Border.Render(m.viewport.View()))
	view.WriteString("\n")

	if len(m.notices) > 0 {
		view.WriteString(m.styles.Notice.Render(m.notices[len(m.notices)-1]))
		view.WriteString("\n")
	}

	if m.question != nil {
		view.WriteString(m.styles.Question.Render(m.question.text))
		view.WriteString("\n")
		view.WriteString(m.styles.Help.Render("y: yes • n: no"))

		return view.String()
	}

	if m.completed {
		view.WriteString(m.renderCompletion())
		view.WriteString("\n")
		view.WriteString(m.styles.Help.Render("↑/↓ to scroll • q to quit"))

		return view.String()
	}

	view.WriteString(m.styles.Help.Render("↑/↓ to scroll • q or ctrl+c to cancel"))

	return view.String()
}

func (m *Model) renderCompletion() string {
	switch {
	case m.runErr != nil:
		return m.styles.Failed.Render("⚠️  Compile aborted: " + m.runErr.Error())
	case !m.successful:
		return m.styles.Failed.Render("❌ Compile failed")
	default:
		return m.styles.Success.Render("✅ Compile completed successfully")
	}
}

// renderStep renders a single step with its status, elapsed time, and latest detail.
func (m *Model) renderStep(n *StepNode) string {
	var icon, label string

	switch n.Status {
	case StatusPending:
		icon, label = "⏳", m.styles.Pending.Render(n.Label)
	case StatusRunning:
		icon, label = m.spinner.View(), m.styles.Running.Render(n.Label)
	case StatusSuccess:
		icon, label = "✅", m.styles.Success.Render(n.Label)
	case StatusFailed:
		icon, label = "❌", m.styles.Failed.Render(n.Label)
	case StatusSkipped:
		icon, label = "⏭️", m.styles.Skipped.Render(n.Label)
	default:
		icon, label = "❓", n.Label
	}

	line := fmt.Sprintf("%s %s", icon, label)

	if d := n.elapsed(m.now()); d > 0 {
		line += m.styles.Output.Render(fmt.Sprintf(" (%v)", d.Round(stepDurationRounding)))
	}

	switch {
	case n.Status == StatusFailed && n.ErrorMsg != "":
		line += "  " + m.styles.Error.Render(truncate("Error: "+n.ErrorMsg, maxOutputWidth))
	case n.Status == StatusRunning && n.LastOutput != "":
		line += "  " + m.styles.Output.Render(truncate(n.LastOutput, maxOutputWidth))
	}

	return line
}

// truncate shortens s to at most width runes.
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}

	if width <= len(ellipsis) {
		return string(r[:width])
	}

	return string(r[:width-len(ellipsis)]) + ellipsis
}
