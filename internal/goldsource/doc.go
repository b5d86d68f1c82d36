// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package goldsource assembles the batch that compiles a map with the Goldsource compile tools.
//
// The batch always has the same shape:
//
//	Setup → Export → [CSG] → [BSP] → [VIS] → [RAD] → Validation → Copy-back → Cleanup → [Launch]
//
// Tool stages are included only when an argument string is supplied for them.
// The tools report failure by writing a .err file and by not producing a .bsp file,
// so Validation inspects the working directory rather than exit codes.
// Launch is included only when the environment asks for the game to be run.
package goldsource
