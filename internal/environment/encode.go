// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package environment

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclwrite"
)

// Example returns an environment for a default Half-Life installation.
func Example() *Environment {
	return &Environment{
		Name:           "Half-Life",
		BaseDirectory:  "/games/half-life",
		GameDirectory:  "valve",
		ModDirectory:   "valve",
		GameExe:        "hl.exe",
		ToolsDirectory: "/games/tools",
		CsgExe:         "hlcsg",
		BspExe:         "hlbsp",
		VisExe:         "hlvis",
		RadExe:         "hlrad",
		GameCopyBsp:    true,
		GameRun:        true,
		GameAsk:        true,
		MapCopyBsp:     false,
		MapCopyLog:     true,
		MapCopyErr:     true,
	}
}

// ExampleProfile returns a profile that runs every compile tool with default arguments.
func ExampleProfile() *Profile {
	return &Profile{
		Name: "normal",
		Arguments: []BatchArgument{
			{Name: "CSG", Arguments: ""},
			{Name: "BSP", Arguments: ""},
			{Name: "VIS", Arguments: ""},
			{Name: "RAD", Arguments: "-extra"},
		},
	}
}

// Encode renders v, an *Environment or *Profile, in the given format.
func Encode(v any, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(v)
	case FormatHCL:
		f := hclwrite.NewEmptyFile()
		gohcl.EncodeIntoBody(v, f.Body())

		return f.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
