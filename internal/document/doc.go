// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package document defines the document a batch compiles and a file-backed implementation of it.
package document
