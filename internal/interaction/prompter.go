// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package interaction

import (
	"context"
	"errors"
)

// ErrAborted is returned when the user aborts a question instead of answering it.
var ErrAborted = errors.New("prompt aborted")

// Prompter lets a step ask a yes/no question and show a notice.
type Prompter interface {
	// Confirm asks a yes/no question and blocks until it is answered.
	Confirm(ctx context.Context, question string) (bool, error)
	// Notify shows a message to the user.
	Notify(ctx context.Context, message string)
}
