// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package document

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

const untitled = "Untitled"

var (
	// ErrExport is returned when a document cannot be written to the export path.
	ErrExport = errors.New("failed to export document")
	// ErrNoSource is returned when a file document has no source file to read from.
	ErrNoSource = errors.New("document has no source file")
)

// Document is the external document a batch compiles.
type Document interface {
	// Name returns a display name for the document.
	Name() string
	// FileName returns the path the document was loaded from. It may be empty for unsaved documents.
	FileName() string
	// Export writes the document in compiler source format to path.
	Export(ctx context.Context, path string) error
}

// File is a Document backed by a map source file on disk.
// Export copies the source file verbatim.
type File struct {
	fs     afero.Fs
	path   string
	source string
}

// FileOption configures a File.
type FileOption func(*File)

// WithFs overrides the filesystem the document reads from and exports to.
func WithFs(fs afero.Fs) FileOption {
	return func(f *File) {
		f.fs = fs
	}
}

// WithSource reads the document contents from source while reporting path as its file name.
// It is used when the document is known by one name but its data lives elsewhere.
func WithSource(source string) FileOption {
	return func(f *File) {
		f.source = source
	}
}

// NewFile creates a File document for path.
func NewFile(path string, opts ...FileOption) *File {
	f := &File{
		fs:     afero.NewOsFs(),
		path:   path,
		source: path,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Name implements Document.
func (f *File) Name() string {
	if f.path == "" {
		return untitled
	}

	return filepath.Base(f.path)
}

// FileName implements Document.
func (f *File) FileName() string {
	return f.path
}

// Export implements Document.
func (f *File) Export(ctx context.Context, path string) error {
	if strings.TrimSpace(f.source) == "" {
		return errors.Join(ErrExport, ErrNoSource)
	}

	if err := ctx.Err(); err != nil {
		return errors.Join(ErrExport, err)
	}

	src, err := f.fs.Open(f.source)
	if err != nil {
		return errors.Join(ErrExport, err)
	}
	defer src.Close() //nolint:errcheck

	dst, err := f.fs.Create(path)
	if err != nil {
		return errors.Join(ErrExport, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return errors.Join(ErrExport, fmt.Errorf("copy %s to %s: %w", f.source, path, err))
	}

	if err := dst.Close(); err != nil {
		return errors.Join(ErrExport, err)
	}

	return nil
}
