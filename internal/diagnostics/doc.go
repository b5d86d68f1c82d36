// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package diagnostics provides the publish-only channel a batch uses to surface
// progress text, tool output and error report bodies while it runs.
//
// Publishers are injected into a batch explicitly. Publishing never blocks the
// batch for longer than the publisher's own Publish call.
package diagnostics
