// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package fetch retrieves single configuration files from local paths or remote locations
// using Hashicorp's go-getter syntax. See https://github.com/hashicorp/go-getter.
package fetch
