// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/matt-FFFFFF/sledgehammer/internal/ctxlog"
	"github.com/matt-FFFFFF/sledgehammer/internal/diagnostics"
	"github.com/matt-FFFFFF/sledgehammer/internal/document"
	"github.com/matt-FFFFFF/sledgehammer/internal/teewriter"
	"github.com/mattn/go-shellwords"
)

const (
	maxOutputSize  = 8 * 1024 * 1024  // 8MB
	tickerInterval = 10 * time.Second // Interval for the still running message
)

var _ Step = (*ProcessStep)(nil)

// ProcessStep starts an external executable and waits for it to exit.
// The exit code is recorded but never interpreted.
type ProcessStep struct {
	Label string
	// Path is the full path to the executable.
	Path string
	// Args is the argument template. Placeholders are resolved against the variable store
	// immediately before the process starts, then split using shell quoting rules.
	// A backslash is literal unless it precedes a double quote, so Windows paths survive.
	Args string
	// Dir is the working directory template. If it resolves to an empty string or still
	// contains an unresolved placeholder, the current working directory is used.
	Dir string
	// Condition controls whether the step runs after a fatal error.
	Condition RunCondition

	tick time.Duration
}

// NewProcessStep creates a new process step that runs on success.
func NewProcessStep(label, path, args string) *ProcessStep {
	return &ProcessStep{
		Label: label,
		Path:  path,
		Args:  args,
	}
}

// GetLabel implements Step.
func (p *ProcessStep) GetLabel() string {
	return p.Label
}

// GetType implements Step.
func (p *ProcessStep) GetType() string {
	return "ProcessStep"
}

// RunsOn implements Step.
func (p *ProcessStep) RunsOn() RunCondition {
	return p.Condition
}

// Argv resolves the argument template against st and splits it into individual arguments.
// The executable is not included.
func (p *ProcessStep) Argv(st *State) ([]string, error) {
	resolved := st.Variables.Substitute(p.Args)

	args, err := shellwords.Parse(literalBackslashes(resolved))
	if err != nil {
		return nil, errors.Join(ErrParseArguments, fmt.Errorf("%q: %w", resolved, err))
	}

	return args, nil
}

// literalBackslashes doubles every backslash that shellwords would otherwise treat as an escape.
// Backslashes inside single quotes and before a double quote are left as they are.
func literalBackslashes(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var (
		sb                         strings.Builder
		singleQuoted, doubleQuoted bool
	)

	sb.Grow(len(s) + strings.Count(s, `\`))

	r := []rune(s)
	for i := 0; i < len(r); i++ {
		switch c := r[i]; {
		case c == '\\' && singleQuoted:
			sb.WriteRune(c)
		case c == '\\' && i+1 < len(r) && r[i+1] == '"':
			sb.WriteString(`\"`)
			i++
		case c == '\\':
			sb.WriteString(`\\`)
		case c == '\'' && !doubleQuoted:
			singleQuoted = !singleQuoted
			sb.WriteRune(c)
		case c == '"' && !singleQuoted:
			doubleQuoted = !doubleQuoted
			sb.WriteRune(c)
		default:
			sb.WriteRune(c)
		}
	}

	return sb.String()
}

func (p *ProcessStep) workingDir(st *State) string {
	if p.Dir == "" {
		return ""
	}

	dir := st.Variables.Substitute(p.Dir)
	if strings.ContainsAny(dir, "{}") {
		return ""
	}

	return dir
}

// Run implements Step.
func (p *ProcessStep) Run(ctx context.Context, st *State, _ document.Document) *Result {
	logger := ctxlog.Logger(ctx).With("stepType", p.GetType(), "label", p.Label)
	res := &Result{}

	args, err := p.Argv(st)
	if err != nil {
		res.Error = err
		res.ExitCode = -1

		return res
	}

	dir := p.workingDir(st)
	logger.Debug("process info", "path", p.Path, "cwd", dir, "args", args)

	stdin, err := os.Open(os.DevNull)
	if err != nil {
		res.Error = errors.Join(ErrCouldNotStartProcess, err)
		res.ExitCode = -1

		return res
	}
	defer stdin.Close() //nolint:errcheck

	rOut, wOut, err := os.Pipe()
	if err != nil {
		res.Error = errors.Join(ErrFailedToCreatePipe, err)
		res.ExitCode = -1

		return res
	}
	defer rOut.Close() //nolint:errcheck

	ps, err := os.StartProcess(p.Path, slices.Concat([]string{filepath.Base(p.Path)}, args), &os.ProcAttr{
		Dir:   dir,
		Env:   os.Environ(),
		Files: []*os.File{stdin, wOut, wOut},
	})

	// The child holds its own copy of the write end.
	_ = wOut.Close()

	if err != nil {
		res.Error = errors.Join(ErrCouldNotStartProcess, err)
		res.ExitCode = -1

		return res
	}

	logger.Debug("process started", "pid", ps.Pid)

	tee := teewriter.New(func(line string) {
		st.Publish(diagnostics.KindOutput, line)
	}, maxOutputSize)

	copyDone := make(chan struct{})

	go func() {
		defer close(copyDone)

		if _, err := io.Copy(tee, rOut); err != nil {
			logger.Debug("output copy finished with error", "error", err)
		}
	}()

	done := make(chan struct{})
	wasKilled := make(chan error, 1)

	tick := p.tick
	if tick <= 0 {
		tick = tickerInterval
	}

	start := time.Now()

	go func() {
		ticker := time.NewTicker(tick)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				st.Debug(fmt.Sprintf("Running %s: [%s]...", p.Label, time.Since(start).Round(time.Second)))

			case <-ctx.Done():
				logger.Info("context done, killing process", "pid", ps.Pid)
				killPs(ctx, ps)

				wasKilled <- errors.Join(ErrCancelled, ctx.Err())

				return

			case <-done:
				return
			}
		}
	}()

	state, psErr := ps.Wait()
	close(done)
	<-copyDone
	tee.Flush()

	res.Output = tee.Bytes()

	if state != nil {
		res.ExitCode = state.ExitCode()
	}

	if psErr != nil {
		res.Error = errors.Join(ErrProcessWait, psErr)
	}

	select {
	case e := <-wasKilled:
		res.Error = errors.Join(res.Error, e)
	default:
	}

	logger.Debug("process finished", "exitCode", res.ExitCode, "outputBytes", len(res.Output))

	return res
}

// killPs kills the process, ignoring processes that have already exited.
func killPs(ctx context.Context, ps *os.Process) {
	if err := ps.Kill(); err != nil {
		if errors.Is(err, os.ErrProcessDone) {
			ctxlog.Logger(ctx).Debug("process already done", "pid", ps.Pid)
			return
		}

		ctxlog.Logger(ctx).Error("process kill error", "pid", ps.Pid, "error", err)

		return
	}

	ctxlog.Logger(ctx).Info("process killed", "pid", ps.Pid)
}
