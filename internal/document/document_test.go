// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package document

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile_NameAndFileName(t *testing.T) {
	f := NewFile("/maps/de_dust.map", WithFs(afero.NewMemMapFs()))
	assert.Equal(t, "de_dust.map", f.Name())
	assert.Equal(t, "/maps/de_dust.map", f.FileName())

	u := NewFile("", WithFs(afero.NewMemMapFs()))
	assert.Equal(t, "Untitled", u.Name())
	assert.Empty(t, u.FileName())
}

func TestFile_Export(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/maps/a.rmf", []byte("{ \"classname\" \"worldspawn\" }"), 0o644))
	require.NoError(t, fs.MkdirAll("/tmp/work", 0o755))

	f := NewFile("/maps/a.rmf", WithFs(fs))
	require.NoError(t, f.Export(context.Background(), "/tmp/work/a.map"))

	got, err := afero.ReadFile(fs, "/tmp/work/a.map")
	require.NoError(t, err)
	assert.Contains(t, string(got), "worldspawn")
}

func TestFile_ExportWithSource(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/cache/autosave.map", []byte("data"), 0o644))

	f := NewFile("", WithFs(fs), WithSource("/cache/autosave.map"))
	require.NoError(t, f.Export(context.Background(), "/out.map"))

	got, err := afero.ReadFile(fs, "/out.map")
	require.NoError(t, err)
	assert.Equal(t, "data", string(got))
}

func TestFile_ExportErrors(t *testing.T) {
	fs := afero.NewMemMapFs()

	err := NewFile("", WithFs(fs)).Export(context.Background(), "/out.map")
	assert.ErrorIs(t, err, ErrExport)
	assert.ErrorIs(t, err, ErrNoSource)

	err = NewFile("/missing.map", WithFs(fs)).Export(context.Background(), "/out.map")
	assert.ErrorIs(t, err, ErrExport)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, afero.WriteFile(fs, "/a.map", []byte("x"), 0o644))
	err = NewFile("/a.map", WithFs(fs)).Export(ctx, "/out.map")
	assert.ErrorIs(t, err, context.Canceled)
}
