// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/matt-FFFFFF/sledgehammer/internal/runbatch"
)

// StepStatus represents the current state of a step in the TUI.
type StepStatus int

const (
	StatusPending StepStatus = iota
	StatusRunning
	StatusSuccess
	StatusFailed
	StatusSkipped
)

// String returns a string representation of the step status.
func (s StepStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusRunning:
		return "running"
	case StatusSuccess:
		return "success"
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// StepNode is the display state of one step.
type StepNode struct {
	Label      string
	Status     StepStatus
	StartTime  time.Time
	EndTime    time.Time
	LastOutput string
	ErrorMsg   string
}

// setStatus updates the status and records start and end times.
func (n *StepNode) setStatus(status StepStatus, now time.Time) {
	n.Status = status

	switch status {
	case StatusRunning:
		if n.StartTime.IsZero() {
			n.StartTime = now
		}
	case StatusSuccess, StatusFailed:
		if n.EndTime.IsZero() {
			n.EndTime = now
		}
	}
}

// elapsed returns how long the step ran, or has been running.
func (n *StepNode) elapsed(now time.Time) time.Duration {
	if n.StartTime.IsZero() {
		return 0
	}

	if n.EndTime.IsZero() {
		return now.Sub(n.StartTime)
	}

	return n.EndTime.Sub(n.StartTime)
}

// question is a yes/no question waiting for an answer.
type question struct {
	text  string
	reply chan<- bool
}

// Model represents the TUI application state.
// It is only touched by the bubbletea event loop once the program is running.
type Model struct {
	title      string
	steps      []*StepNode
	log        []string
	notices    []string
	question   *question
	completed  bool
	successful bool
	results    runbatch.Results
	runErr     error
	quitting   bool
	autoQuit   bool

	width    int
	height   int
	viewport viewport.Model
	spinner  spinner.Model
	styles   *Styles
	now      func() time.Time
}

// Styles contains all the styling for the TUI.
type Styles struct {
	Title    lipgloss.Style
	Pending  lipgloss.Style
	Running  lipgloss.Style
	Success  lipgloss.Style
	Failed   lipgloss.Style
	Skipped  lipgloss.Style
	Output   lipgloss.Style
	Error    lipgloss.Style
	Debug    lipgloss.Style
	Notice   lipgloss.Style
	Question lipgloss.Style
	Help     lipgloss.Style
	Border   lipgloss.Style
}

// NewStyles creates the default styling for the TUI.
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")),
		Pending: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")),
		Running: lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")),
		Failed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")),
		Skipped: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Strikethrough(true),
		Output: lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")).
			Italic(true),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")),
		Debug: lipgloss.NewStyle().
			Faint(true),
		Notice: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("11")).
			Padding(0, 1),
		Question: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")),
	}
}

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// NewModel creates a model for a batch with the given step labels.
func NewModel(title string, labels []string) *Model {
	m := &Model{
		title:   title,
		styles:  NewStyles(),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		now:     time.Now,
	}

	m.setSteps(labels)
	m.resize(defaultWidth, defaultHeight)

	return m
}

func (m *Model) setSteps(labels []string) {
	m.steps = make([]*StepNode, len(labels))
	for i, l := range labels {
		m.steps[i] = &StepNode{Label: l}
	}
}

// Steps returns the display state of each step.
func (m *Model) Steps() []*StepNode {
	return m.steps
}

// Log returns the diagnostics lines received so far.
func (m *Model) Log() []string {
	return m.log
}

// reservedLines is the height used by everything except the log viewport:
// title, blank line, border, status line, banner, and help.
func (m *Model) reservedLines() int {
	return len(m.steps) + 8 //nolint:mnd
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	vpHeight := max(height-m.reservedLines(), 3) //nolint:mnd
	vpWidth := max(width-2, 10)                  //nolint:mnd

	if m.viewport.Width == 0 {
		m.viewport = viewport.New(vpWidth, vpHeight)
	} else {
		m.viewport.Width = vpWidth
		m.viewport.Height = vpHeight
	}

	m.viewport.SetContent(strings.Join(m.log, "\n"))
}

func (m *Model) appendLog(line string) {
	atBottom := m.viewport.AtBottom()
	m.log = append(m.log, line)
	m.viewport.SetContent(strings.Join(m.log, "\n"))

	if atBottom {
		m.viewport.GotoBottom()
	}
}
