// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package goldsource

import (
	"context"
	"errors"

	"github.com/matt-FFFFFF/sledgehammer/internal/ctxlog"
	"github.com/matt-FFFFFF/sledgehammer/internal/diagnostics"
	"github.com/matt-FFFFFF/sledgehammer/internal/document"
	"github.com/matt-FFFFFF/sledgehammer/internal/runbatch"
	"github.com/spf13/afero"
)

// ErrReadErrorReport is returned when a tool error report exists but cannot be read.
var ErrReadErrorReport = errors.New("could not read tool error report")

// validateOutput fails the batch if a tool wrote an error report or no compiled map was produced.
// Both checks always run.
func validateOutput(ctx context.Context, st *runbatch.State, _ document.Document) error {
	mapFile, err := st.Variables.Get(VarMapFile)
	if err != nil {
		return err
	}

	errFile := withExtension(mapFile, "err")

	hasErr, err := afero.Exists(FS, errFile)
	if err != nil {
		return errors.Join(ErrReadErrorReport, err)
	}

	if hasErr {
		body, err := afero.ReadFile(FS, errFile)
		if err != nil {
			return errors.Join(ErrReadErrorReport, err)
		}

		st.Fail()
		st.Publish(diagnostics.KindError, string(body))
		ctxlog.Info(ctx, "tool error report found", "file", errFile)
	}

	bspFile := withExtension(mapFile, "bsp")

	hasBsp, err := afero.Exists(FS, bspFile)
	if err != nil {
		return err
	}

	if !hasBsp {
		st.Fail()
		ctxlog.Info(ctx, "compiled map not found", "file", bspFile)
	}

	return nil
}
