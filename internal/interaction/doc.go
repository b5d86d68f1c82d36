// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package interaction asks the user questions and shows them notices while a batch runs.
package interaction
