// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"errors"
	"io"
	"time"

	"github.com/goccy/go-yaml"
)

var (
	// ErrWriteReport is returned when a report cannot be written.
	ErrWriteReport = errors.New("failed to write report")
	// ErrReadReport is returned when a report cannot be read.
	ErrReadReport = errors.New("failed to read report")
)

// Report is a saved summary of a finished batch.
type Report struct {
	Batch      string       `yaml:"batch"`
	RunID      string       `yaml:"run_id"`
	Successful bool         `yaml:"successful"`
	Error      string       `yaml:"error,omitempty"`
	Steps      []StepReport `yaml:"steps"`
}

// StepReport is one step of a Report.
type StepReport struct {
	Label    string        `yaml:"label"`
	Type     string        `yaml:"type"`
	Status   string        `yaml:"status"`
	ExitCode int           `yaml:"exit_code"`
	Duration time.Duration `yaml:"duration"`
	Error    string        `yaml:"error,omitempty"`
	Output   string        `yaml:"output,omitempty"`
}

// NewReport summarises b, which returned res and runErr.
// A batch that returned an error is never reported as successful.
func NewReport(b *Batch, res Results, runErr error) *Report {
	r := &Report{
		Batch:      b.Label,
		RunID:      b.RunID(),
		Successful: b.Successful() && runErr == nil,
		Steps:      make([]StepReport, len(res)),
	}

	if runErr != nil {
		r.Error = runErr.Error()
	}

	for i, s := range res {
		sr := StepReport{
			Label:    s.Label,
			Type:     s.Type,
			Status:   s.Status.String(),
			ExitCode: s.ExitCode,
			Duration: s.Duration,
			Output:   string(s.Output),
		}

		if s.Error != nil {
			sr.Error = s.Error.Error()
		}

		r.Steps[i] = sr
	}

	return r
}

// Write writes the report as YAML.
func (r *Report) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w, yaml.UseLiteralStyleIfMultiline(true))
	if err := enc.Encode(r); err != nil {
		return errors.Join(ErrWriteReport, err)
	}

	return nil
}

// ReadReport reads a report written by Report.Write.
func ReadReport(rd io.Reader) (*Report, error) {
	var r Report

	if err := yaml.NewDecoder(rd).Decode(&r); err != nil {
		return nil, errors.Join(ErrReadReport, err)
	}

	return &r, nil
}

// Results converts the report back to results. Errors keep their message only.
func (r *Report) Results() Results {
	out := make(Results, len(r.Steps))

	for i, s := range r.Steps {
		res := &Result{
			Index:    i,
			Label:    s.Label,
			Type:     s.Type,
			Status:   parseResultStatus(s.Status),
			ExitCode: s.ExitCode,
			Duration: s.Duration,
			Output:   []byte(s.Output),
		}

		if s.Error != "" {
			res.Error = errors.New(s.Error) //nolint:err113
		}

		out[i] = res
	}

	return out
}

func parseResultStatus(s string) ResultStatus {
	switch s {
	case ResultStatusError.String():
		return ResultStatusError
	case ResultStatusSkipped.String():
		return ResultStatusSkipped
	default:
		return ResultStatusSuccess
	}
}
