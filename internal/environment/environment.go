// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package environment

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

var (
	// ErrInvalidEnvironment is returned when an environment fails validation.
	ErrInvalidEnvironment = errors.New("invalid environment")
	// ErrMissingField is returned for each required field that is empty.
	ErrMissingField = errors.New("missing required field")
)

// Environment describes a Goldsource game installation and its compile tools.
type Environment struct {
	Name string `yaml:"name" hcl:"name,optional"`

	// BaseDirectory is the root of the game installation.
	BaseDirectory string `yaml:"base_directory" hcl:"base_directory,optional"`
	// GameDirectory is the base game folder under BaseDirectory, e.g. valve.
	GameDirectory string `yaml:"game_directory" hcl:"game_directory,optional"`
	// ModDirectory is the mod folder under BaseDirectory. Compiled maps are copied to its maps folder.
	ModDirectory string `yaml:"mod_directory" hcl:"mod_directory,optional"`
	// GameExe is the game executable, relative to BaseDirectory.
	GameExe string `yaml:"game_exe" hcl:"game_exe,optional"`

	// ToolsDirectory holds the compile tool executables.
	ToolsDirectory string `yaml:"tools_directory" hcl:"tools_directory,optional"`
	CsgExe         string `yaml:"csg_exe" hcl:"csg_exe,optional"`
	BspExe         string `yaml:"bsp_exe" hcl:"bsp_exe,optional"`
	VisExe         string `yaml:"vis_exe" hcl:"vis_exe,optional"`
	RadExe         string `yaml:"rad_exe" hcl:"rad_exe,optional"`

	// GameCopyBsp copies the compiled map and resource list into the mod's maps folder after a successful compile.
	GameCopyBsp bool `yaml:"game_copy_bsp" hcl:"game_copy_bsp,optional"`
	// GameRun starts the game after a successful compile.
	GameRun bool `yaml:"game_run" hcl:"game_run,optional"`
	// GameAsk asks before starting the game.
	GameAsk bool `yaml:"game_ask" hcl:"game_ask,optional"`

	// MapCopy* copy byproducts from the working directory next to the source map.
	MapCopyBsp bool `yaml:"map_copy_bsp" hcl:"map_copy_bsp,optional"`
	MapCopyMap bool `yaml:"map_copy_map" hcl:"map_copy_map,optional"`
	MapCopyLog bool `yaml:"map_copy_log" hcl:"map_copy_log,optional"`
	MapCopyErr bool `yaml:"map_copy_err" hcl:"map_copy_err,optional"`
	MapCopyRes bool `yaml:"map_copy_res" hcl:"map_copy_res,optional"`
}

type field struct {
	name  string
	value string
}

// Validate reports every missing field needed to run a compile.
// Tool executables are only required for the stages named in stages.
func (e *Environment) Validate(stages ...string) error {
	var result error

	required := []field{
		{"base_directory", e.BaseDirectory},
		{"mod_directory", e.ModDirectory},
		{"tools_directory", e.ToolsDirectory},
	}

	if e.GameRun {
		required = append(required, field{"game_exe", e.GameExe})
	}

	for _, s := range stages {
		if name, value := e.stageField(s); name != "" {
			required = append(required, field{name, value})
		}
	}

	for _, r := range required {
		if r.value == "" {
			result = multierror.Append(result, fmt.Errorf("%w: %s", ErrMissingField, r.name))
		}
	}

	if result != nil {
		return errors.Join(ErrInvalidEnvironment, result)
	}

	return nil
}

// Executable returns the configured executable name for a compile stage, or an empty string.
func (e *Environment) Executable(stage string) string {
	_, v := e.stageField(stage)
	return v
}

func (e *Environment) stageField(stage string) (string, string) {
	switch stage {
	case "CSG":
		return "csg_exe", e.CsgExe
	case "BSP":
		return "bsp_exe", e.BspExe
	case "VIS":
		return "vis_exe", e.VisExe
	case "RAD":
		return "rad_exe", e.RadExe
	default:
		return "", ""
	}
}
