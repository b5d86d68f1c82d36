// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package goldsource

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/matt-FFFFFF/sledgehammer/internal/ctxlog"
	"github.com/matt-FFFFFF/sledgehammer/internal/document"
	"github.com/matt-FFFFFF/sledgehammer/internal/runbatch"
	"github.com/spf13/afero"
)

// DefaultMod is the mod that the game loads without a -game flag.
const DefaultMod = "valve"

const (
	msgBadGameExe   = "The location of the game executable is incorrect. Please ensure that the game configuration has been set up correctly."
	msgLaunchFailed = "Launching game failed: %s"
	msgAskToRun     = "The compile of %s completed successfully.\nWould you like to run the game now?"
)

// StartProcess starts the game without waiting for it to exit.
var StartProcess = func(_ context.Context, path, dir string, args []string) error {
	cmd := exec.Command(path, args...)
	cmd.Dir = dir

	if err := cmd.Start(); err != nil {
		return err
	}

	return cmd.Process.Release()
}

// LaunchArgs returns the game arguments that load mapName in mod.
func LaunchArgs(mod, mapName string) []string {
	var args []string
	if mod != DefaultMod {
		args = append(args, "-game", mod)
	}

	return append(args, "-dev", "-console", "+map", mapName)
}

// launch starts the game on the compiled map. Problems are reported to the user and never fail the batch.
func (a *Assembler) launch(ctx context.Context, st *runbatch.State, doc document.Document) error {
	if !st.Successful() {
		ctxlog.Debug(ctx, "compile unsuccessful, not launching game")
		return nil
	}

	if a.env.GameAsk {
		ok, err := a.prompter.Confirm(ctx, fmt.Sprintf(msgAskToRun, doc.Name()))
		if err != nil {
			ctxlog.Info(ctx, "launch confirmation failed", "error", err)
			return nil
		}

		if !ok {
			return nil
		}
	}

	exe := filepath.Join(a.env.BaseDirectory, a.env.GameExe)

	if ok, _ := afero.Exists(FS, exe); !ok || a.env.GameExe == "" {
		a.prompter.Notify(ctx, msgBadGameExe)
		return nil
	}

	mapFileName, err := st.Variables.Get(VarMapFileName)
	if err != nil {
		return err
	}

	args := LaunchArgs(a.env.ModDirectory, stem(mapFileName))
	ctxlog.Debug(ctx, "launching game", "exe", exe, "args", args)

	if err := StartProcess(ctx, exe, a.env.BaseDirectory, args); err != nil {
		a.prompter.Notify(ctx, fmt.Sprintf(msgLaunchFailed, err.Error()))
	}

	return nil
}
