// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package goldsource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/matt-FFFFFF/sledgehammer/internal/ctxlog"
	"github.com/matt-FFFFFF/sledgehammer/internal/document"
	"github.com/matt-FFFFFF/sledgehammer/internal/runbatch"
	"github.com/spf13/afero"
)

// sixFourFour is the file mode for copied files.
const sixFourFour = 0o644

// ErrFileCopy is returned when a byproduct cannot be copied.
var ErrFileCopy = errors.New("file copy error")

// copyRule copies the byproduct with extension ext to dir when enabled.
type copyRule struct {
	enabled bool
	ext     string
	dir     string
}

// copyBack copies byproducts next to the source map, and into the game when the compile succeeded.
func (a *Assembler) copyBack(ctx context.Context, st *runbatch.State, doc document.Document) error {
	mapFile, err := st.Variables.Get(VarMapFile)
	if err != nil {
		return err
	}

	// An unsaved document has no directory to copy to.
	mapDir := ""
	if fn := doc.FileName(); fn != "" {
		mapDir = filepath.Dir(fn)
	}

	gameMapDir := filepath.Join(a.env.BaseDirectory, a.env.ModDirectory, "maps")
	toGame := st.Successful() && a.env.GameCopyBsp

	rules := []copyRule{
		{a.env.MapCopyBsp, "bsp", mapDir},
		{a.env.MapCopyMap, "map", mapDir},
		{a.env.MapCopyRes, "res", mapDir},
		{a.env.MapCopyErr, "err", mapDir},
		{a.env.MapCopyLog, "log", mapDir},
		{true, "lin", mapDir},
		{true, "pts", mapDir},
		{toGame, "bsp", gameMapDir},
		{toGame, "res", gameMapDir},
	}

	for _, r := range rules {
		if err := copyByproduct(ctx, r, mapFile); err != nil {
			return err
		}
	}

	return nil
}

func copyByproduct(ctx context.Context, r copyRule, mapFile string) error {
	if !r.enabled || r.dir == "" {
		return nil
	}

	if ok, err := afero.DirExists(FS, r.dir); err != nil || !ok {
		return err
	}

	src := withExtension(mapFile, r.ext)

	if ok, err := afero.Exists(FS, src); err != nil || !ok {
		return err
	}

	dst := filepath.Join(r.dir, filepath.Base(src))
	if err := copyFile(src, dst); err != nil {
		return errors.Join(ErrFileCopy, fmt.Errorf("%s to %s: %w", src, dst, err))
	}

	ctxlog.Debug(ctx, "copied byproduct", "from", src, "to", dst)

	return nil
}

// copyFile copies src to dst, overwriting dst.
func copyFile(src, dst string) error {
	in, err := FS.Open(src)
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck

	out, err := FS.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, sixFourFour)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}

	return out.Close()
}
