// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package goldsource

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/matt-FFFFFF/sledgehammer/internal/document"
	"github.com/matt-FFFFFF/sledgehammer/internal/runbatch"
)

const mapExtension = ".map"

// MapFileName returns the name of the exported map for a document file name.
// Names that are blank or contain no dot are replaced by a random name.
func MapFileName(fileName string) string {
	if strings.TrimSpace(fileName) == "" || !strings.Contains(fileName, ".") {
		fileName = RandomFileName()
	}

	return stem(filepath.Base(fileName)) + mapExtension
}

// exportDocument writes the document into the working directory.
func exportDocument(ctx context.Context, st *runbatch.State, doc document.Document) error {
	wd, err := st.Variables.Get(VarWorkingDirectory)
	if err != nil {
		return err
	}

	name := MapFileName(doc.FileName())
	path := filepath.Join(wd, name)

	st.Variables.Set(VarMapFileName, name)
	st.Variables.Set(VarMapFile, path)

	if err := doc.Export(ctx, path); err != nil {
		return err
	}

	st.Debug(fmt.Sprintf("Map file is: %s", path))

	return nil
}

// stem returns name without its extension.
func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// withExtension replaces the extension of path. ext has no leading dot.
func withExtension(path, ext string) string {
	return stem(path) + "." + ext
}
