// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package environment loads the game environment that a compile runs against,
// and the named tool-argument profiles that select which compile tools run.
//
// Files ending in .yaml or .yml are decoded as YAML. Files ending in .hcl or .json are
// decoded as HCL, where the env object exposes the process environment, e.g.
//
//	base_directory = "${env.HOME}/games/half-life"
package environment
