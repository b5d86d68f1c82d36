// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package fetch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-getter/v2"
	"github.com/matt-FFFFFF/sledgehammer/internal/ctxlog"
)

// ErrGetFile is returned when a file cannot be retrieved.
var ErrGetFile = errors.New("failed to get file")

// File is a retrieved file.
type File struct {
	// Name is the base name of the file, used to pick a decoder.
	Name string
	// Data is the file content.
	Data []byte
}

// Get retrieves the file at url. Local paths are read relative to the current directory.
// Remote URLs must name a file below a go-getter source, e.g. git::https://host/repo//env.yaml?ref=main.
func Get(ctx context.Context, url string) (*File, error) {
	if url == "" {
		return nil, ErrGetFile
	}

	tmpDir, err := os.MkdirTemp("", "sledgehammer-getter-*")
	if err != nil {
		return nil, errors.Join(ErrGetFile, err)
	}

	defer os.RemoveAll(tmpDir) //nolint:errcheck

	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Join(ErrGetFile, err)
	}

	client := getter.Client{
		DisableSymlinks: true,
	}

	req := &getter.Request{
		Src:     url,
		Dst:     filepath.Join(tmpDir, "g"),
		Pwd:     wd,
		GetMode: getter.ModeDir,
	}

	var fileName string

	// go-getter fetches directories, so remote URLs are split into a source and a file name.
	// https://github.com/hashicorp/go-getter/issues/98
	if ok, err := getter.Detect(req, &getter.FileGetter{}); !ok || err != nil {
		if err != nil {
			return nil, errors.Join(ErrGetFile, err)
		}

		var newURL string

		newURL, fileName = splitFileNameFromGetterURL(url)
		if newURL == "" || fileName == "" {
			return nil, fmt.Errorf("%w: invalid URL format: %s", ErrGetFile, url)
		}

		req.Src = newURL
	}

	if fileName == "" {
		req.Src = filepath.Dir(url)
		fileName = filepath.Base(url)
	}

	ctxlog.Debug(ctx, "fetching file", "src", req.Src, "file", fileName)

	res, err := client.Get(ctx, req)
	if err != nil {
		return nil, errors.Join(ErrGetFile, err)
	}

	data, err := os.ReadFile(filepath.Join(res.Dst, fileName))
	if err != nil {
		return nil, errors.Join(ErrGetFile, err)
	}

	return &File{Name: fileName, Data: data}, nil
}

const (
	goGetterPathSeparator = "//"
	goGetterRefSeparator  = "?"
	minimumGetterParts    = 3 // Minimum parts in a go-getter URL: scheme, host, and path
)

// splitFileNameFromGetterURL splits the URL into the source and the file name.
// Any query string is kept on the source.
func splitFileNameFromGetterURL(url string) (string, string) {
	var ref string

	parts := strings.Split(url, goGetterPathSeparator)
	if len(parts) < minimumGetterParts {
		return "", ""
	}

	last := parts[len(parts)-1]

	if before, after, ok := strings.Cut(last, goGetterRefSeparator); ok {
		ref = after
		last = before
	}

	if filepath.Clean(last) == filepath.Dir(last) {
		return "", ""
	}

	fileName := filepath.Base(last)

	if dir := filepath.Dir(last); dir == "." {
		parts = parts[:len(parts)-1]
	} else {
		parts[len(parts)-1] = dir
	}

	newURL := strings.Join(parts, goGetterPathSeparator)

	if ref != "" {
		newURL += goGetterRefSeparator + ref
	}

	return newURL, fileName
}
