// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package interaction

import (
	"context"
	"fmt"
	"io"
	"sync"
)

var _ Prompter = (*Static)(nil)

// Static answers every question with the same answer without asking anyone.
// It is used for unattended runs and in tests.
type Static struct {
	answer bool
	out    io.Writer

	m         sync.Mutex
	questions []string
	notices   []string
}

// NewStatic creates a Static prompter. Notices are written to out when it is not nil.
func NewStatic(answer bool, out io.Writer) *Static {
	return &Static{
		answer: answer,
		out:    out,
	}
}

// Confirm implements Prompter.
func (s *Static) Confirm(ctx context.Context, question string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.m.Lock()
	defer s.m.Unlock()

	s.questions = append(s.questions, question)

	return s.answer, nil
}

// Notify implements Prompter.
func (s *Static) Notify(_ context.Context, message string) {
	s.m.Lock()
	defer s.m.Unlock()

	s.notices = append(s.notices, message)

	if s.out != nil {
		fmt.Fprintln(s.out, message) //nolint:errcheck
	}
}

// Questions returns the questions asked so far.
func (s *Static) Questions() []string {
	s.m.Lock()
	defer s.m.Unlock()

	return append([]string(nil), s.questions...)
}

// Notices returns the notices shown so far.
func (s *Static) Notices() []string {
	s.m.Lock()
	defer s.m.Unlock()

	return append([]string(nil), s.notices...)
}
