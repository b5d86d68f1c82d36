// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package vars provides the variable store shared by the steps of a single batch run.
//
// Values are plain strings. Placeholders of the form {Name} in a command line template
// are replaced with the current value of Name at the moment the template is resolved,
// so a value written by one step is visible to every step that runs after it.
package vars
