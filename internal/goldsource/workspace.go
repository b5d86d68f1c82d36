// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package goldsource

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/matt-FFFFFF/sledgehammer/internal/ctxlog"
	"github.com/matt-FFFFFF/sledgehammer/internal/document"
	"github.com/matt-FFFFFF/sledgehammer/internal/runbatch"
	"github.com/spf13/afero"
)

const (
	// sevenFiveFive is the file mode for the working directory.
	sevenFiveFive = 0o755
	// maxWorkspaceAttempts limits how many random names are tried for the working directory.
	maxWorkspaceAttempts = 10
)

var (
	// ErrWorkspace is returned when the working directory cannot be created.
	ErrWorkspace = errors.New("could not create working directory")
	// ErrCleanup is returned when the working directory cannot be removed.
	ErrCleanup = errors.New("could not remove working directory")
)

// TempDirPath returns the directory the working directory is created in.
var TempDirPath = os.TempDir

// RandomName generates a random lower case alphanumeric string with the given prefix and length.
var RandomName = func(prefix string, n int) string {
	const letterBytes = "abcdefghijklmnopqrstuvwxyz0123456789"

	b := make([]byte, n)
	for i := range b {
		b[i] = letterBytes[rand.IntN(len(letterBytes))]
	}

	return prefix + string(b)
}

// RandomFileName returns a random name with an eight character stem and a three character extension.
func RandomFileName() string {
	return RandomName("", 8) + "." + RandomName("", 3)
}

// setupWorkspace creates a new uniquely named working directory.
func setupWorkspace(ctx context.Context, st *runbatch.State, _ document.Document) error {
	base := TempDirPath()

	for range maxWorkspaceAttempts {
		dir := filepath.Join(base, RandomFileName())

		exists, err := afero.DirExists(FS, dir)
		if err != nil {
			return errors.Join(ErrWorkspace, err)
		}

		if exists {
			ctxlog.Debug(ctx, "working directory name collision", "dir", dir)
			continue
		}

		if err := FS.MkdirAll(dir, sevenFiveFive); err != nil {
			return errors.Join(ErrWorkspace, err)
		}

		st.Variables.Set(VarWorkingDirectory, dir)
		st.Debug(fmt.Sprintf("Working directory is: %s", dir))

		return nil
	}

	return errors.Join(ErrWorkspace, fmt.Errorf("no unused name found in %s after %d attempts", base, maxWorkspaceAttempts))
}

// cleanupWorkspace removes the working directory if it was created.
func cleanupWorkspace(ctx context.Context, st *runbatch.State, _ document.Document) error {
	dir, ok := st.Variables.Lookup(VarWorkingDirectory)
	if !ok {
		ctxlog.Debug(ctx, "no working directory to remove")
		return nil
	}

	exists, err := afero.DirExists(FS, dir)
	if err != nil {
		return errors.Join(ErrCleanup, err)
	}

	if !exists {
		return nil
	}

	if err := FS.RemoveAll(dir); err != nil {
		return errors.Join(ErrCleanup, err)
	}

	ctxlog.Debug(ctx, "removed working directory", "dir", dir)

	return nil
}
