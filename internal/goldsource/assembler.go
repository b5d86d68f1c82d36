// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package goldsource

import (
	"fmt"
	"path/filepath"

	"github.com/matt-FFFFFF/sledgehammer/internal/diagnostics"
	"github.com/matt-FFFFFF/sledgehammer/internal/environment"
	"github.com/matt-FFFFFF/sledgehammer/internal/interaction"
	"github.com/matt-FFFFFF/sledgehammer/internal/runbatch"
	"github.com/spf13/afero"
)

// Variable names set by the batch.
const (
	VarWorkingDirectory = "WorkingDirectory"
	VarMapFileName      = "MapFileName"
	VarMapFile          = "MapFile"
)

// Step labels.
const (
	LabelSetup      = "Setup"
	LabelExport     = "Export"
	LabelValidation = "Validation"
	LabelCopyBack   = "Copy-back"
	LabelCleanup    = "Cleanup"
	LabelLaunch     = "Launch"
)

// FS is the filesystem used by the callback stages.
// Default is the OS filesystem, but can be replaced with a mock for testing.
var FS = afero.NewOsFs()

// Assembler builds compile batches for one environment.
type Assembler struct {
	env         environment.Environment
	prompter    interaction.Prompter
	diagnostics diagnostics.Publisher
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithPrompter sets how the launch stage asks questions and reports problems.
func WithPrompter(p interaction.Prompter) Option {
	return func(a *Assembler) {
		a.prompter = p
	}
}

// WithDiagnostics sets the publisher the batches report to.
func WithDiagnostics(p diagnostics.Publisher) Option {
	return func(a *Assembler) {
		a.diagnostics = p
	}
}

// NewAssembler creates an assembler for env. The environment is copied.
// Without a prompter, the launch stage never starts the game when asked to confirm.
func NewAssembler(env *environment.Environment, opts ...Option) *Assembler {
	a := &Assembler{
		env:         *env,
		prompter:    interaction.NewStatic(false, nil),
		diagnostics: diagnostics.NullPublisher{},
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// CreateBatch returns a batch that compiles a document with the tools named in args.
func (a *Assembler) CreateBatch(args Arguments) *runbatch.Batch {
	steps := []runbatch.Step{
		runbatch.NewCallbackStep(LabelSetup, setupWorkspace),
		runbatch.NewCallbackStep(LabelExport, exportDocument),
	}

	for _, s := range args.Included() {
		steps = append(steps, a.toolStep(s, args[s]))
	}

	steps = append(steps,
		runbatch.NewCallbackStep(LabelValidation, validateOutput),
		runbatch.NewCallbackStep(LabelCopyBack, a.copyBack),
		runbatch.NewCallbackStep(LabelCleanup, cleanupWorkspace).Always(),
	)

	if a.env.GameRun {
		steps = append(steps, runbatch.NewCallbackStep(LabelLaunch, a.launch))
	}

	label := "compile"
	if a.env.Name != "" {
		label = fmt.Sprintf("compile (%s)", a.env.Name)
	}

	return runbatch.New(steps, runbatch.WithLabel(label), runbatch.WithDiagnostics(a.diagnostics))
}

func (a *Assembler) toolStep(s Stage, args string) *runbatch.ProcessStep {
	p := runbatch.NewProcessStep(
		s.String(),
		filepath.Join(a.env.ToolsDirectory, a.env.Executable(s.String())),
		args+` "{`+VarMapFile+`}"`,
	)
	p.Dir = "{" + VarWorkingDirectory + "}"

	return p
}
