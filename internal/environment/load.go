// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package environment

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/spf13/afero"
	"github.com/zclconf/go-cty/cty"
)

var (
	// ErrUnknownFormat is returned when a file extension is not a supported format.
	ErrUnknownFormat = errors.New("unknown configuration format")
	// ErrDecode is returned when a file cannot be decoded.
	ErrDecode = errors.New("failed to decode configuration")
	// ErrRead is returned when a file cannot be read.
	ErrRead = errors.New("failed to read configuration")
)

// FsFactory returns the filesystem used to read configuration files.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// Format is a configuration file format.
type Format string

const (
	// FormatYAML is YAML.
	FormatYAML Format = "yaml"
	// FormatHCL is native HCL syntax, or its JSON variant.
	FormatHCL Format = "hcl"
)

// FormatOf returns the format implied by the extension of filename.
func FormatOf(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".hcl", ".json":
		return FormatHCL, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filename)
	}
}

// Decode decodes src into target using the format implied by filename.
func Decode(filename string, src []byte, target any) error {
	format, err := FormatOf(filename)
	if err != nil {
		return err
	}

	switch format {
	case FormatYAML:
		err = yaml.UnmarshalWithOptions(src, target, yaml.Strict())
	case FormatHCL:
		err = hclsimple.Decode(filename, src, evalContext(), target)
	}

	if err != nil {
		return errors.Join(ErrDecode, fmt.Errorf("%s: %w", filename, err))
	}

	return nil
}

// LoadEnvironment reads and decodes an environment file.
func LoadEnvironment(path string) (*Environment, error) {
	src, err := afero.ReadFile(FsFactory(), path)
	if err != nil {
		return nil, errors.Join(ErrRead, err)
	}

	return ParseEnvironment(path, src)
}

// ParseEnvironment decodes an environment from src. The format and default name come from filename.
func ParseEnvironment(filename string, src []byte) (*Environment, error) {
	env := &Environment{}
	if err := Decode(filename, src, env); err != nil {
		return nil, err
	}

	if env.Name == "" {
		env.Name = baseName(filename)
	}

	return env, nil
}

// LoadProfile reads and decodes a tool-argument profile file.
func LoadProfile(path string) (*Profile, error) {
	src, err := afero.ReadFile(FsFactory(), path)
	if err != nil {
		return nil, errors.Join(ErrRead, err)
	}

	return ParseProfile(path, src)
}

// ParseProfile decodes a profile from src. The format and default name come from filename.
func ParseProfile(filename string, src []byte) (*Profile, error) {
	p := &Profile{}
	if err := Decode(filename, src, p); err != nil {
		return nil, err
	}

	if p.Name == "" {
		p.Name = baseName(filename)
	}

	return p, nil
}

func baseName(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// evalContext exposes the process environment to HCL expressions as env.NAME.
func evalContext() *hcl.EvalContext {
	vals := make(map[string]cty.Value)

	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || !hclsyntax.ValidIdentifier(k) {
			continue
		}

		vals[k] = cty.StringVal(v)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vals),
		},
	}
}
