// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package goldsource

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/sledgehammer/internal/environment"
)

// ErrUnknownStage is returned for a tool argument whose name is not a compile stage.
var ErrUnknownStage = errors.New("unknown compile stage")

// Stage is one of the compile tools.
type Stage int

const (
	// StageCSG builds the BSP tree geometry from brushes.
	StageCSG Stage = iota
	// StageBSP builds the BSP tree and writes the .bsp file.
	StageBSP
	// StageVIS computes visibility.
	StageVIS
	// StageRAD computes lighting.
	StageRAD
)

var stageNames = [...]string{"CSG", "BSP", "VIS", "RAD"}

// Stages returns the compile stages in the order they run.
func Stages() []Stage {
	return []Stage{StageCSG, StageBSP, StageVIS, StageRAD}
}

// String implements the Stringer interface for Stage.
func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}

	return stageNames[s]
}

// ParseStage returns the stage with the given name, ignoring case.
func ParseStage(name string) (Stage, error) {
	for i, n := range stageNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Stage(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStage, name)
}

// Arguments maps each included stage to its argument string.
// A stage with an empty argument string is still included.
type Arguments map[Stage]string

// NewArguments converts named tool arguments to Arguments.
// When a stage is named more than once the first occurrence wins.
// Every unknown name is reported.
func NewArguments(args []environment.BatchArgument) (Arguments, error) {
	out := make(Arguments, len(args))

	var result error

	for _, a := range args {
		s, err := ParseStage(a.Name)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}

		if _, ok := out[s]; ok {
			continue
		}

		out[s] = a.Arguments
	}

	return out, result
}

// Included returns the stages present in a, in run order.
func (a Arguments) Included() []Stage {
	var out []Stage

	for _, s := range Stages() {
		if _, ok := a[s]; ok {
			out = append(out, s)
		}
	}

	return out
}

// Names returns the names of the stages present in a, in run order.
func (a Arguments) Names() []string {
	inc := a.Included()
	out := make([]string, len(inc))

	for i, s := range inc {
		out[i] = s.String()
	}

	return out
}
