// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"sync"
	"time"

	"github.com/matt-FFFFFF/sledgehammer/internal/diagnostics"
	"github.com/matt-FFFFFF/sledgehammer/internal/vars"
)

// State is shared by every step of a batch.
type State struct {
	// Variables holds named string values that steps set and argument templates read.
	Variables *vars.Store

	m           sync.Mutex
	failed      bool
	index       int
	label       string
	diagnostics diagnostics.Publisher
}

// NewState creates a successful state with an empty variable store.
// A nil publisher discards all events.
func NewState(pub diagnostics.Publisher) *State {
	if pub == nil {
		pub = diagnostics.NullPublisher{}
	}

	return &State{
		Variables:   vars.New(),
		diagnostics: pub,
		index:       -1,
	}
}

// Successful reports whether no step has marked the batch as failed.
func (s *State) Successful() bool {
	s.m.Lock()
	defer s.m.Unlock()

	return !s.failed
}

// Fail marks the batch as unsuccessful. Once failed, a state cannot become successful again.
func (s *State) Fail() {
	s.m.Lock()
	defer s.m.Unlock()

	s.failed = true
}

// Publish sends a message attributed to the current step.
func (s *State) Publish(kind diagnostics.Kind, msg string) {
	s.m.Lock()
	idx, label := s.index, s.label
	s.m.Unlock()

	s.diagnostics.Publish(diagnostics.Event{
		Kind:    kind,
		Index:   idx,
		Step:    label,
		Message: msg,
		Time:    time.Now(),
	})
}

// Debug publishes a progress message.
func (s *State) Debug(msg string) {
	s.Publish(diagnostics.KindDebug, msg)
}

func (s *State) enter(index int, label string) {
	s.m.Lock()
	defer s.m.Unlock()

	s.index = index
	s.label = label
}

func (s *State) publishLifecycle(kind diagnostics.Kind, index int, label string, err error) {
	e := diagnostics.Event{
		Kind:  kind,
		Index: index,
		Step:  label,
		Err:   err,
		Time:  time.Now(),
	}
	if err != nil {
		e.Message = err.Error()
	}

	s.diagnostics.Publish(e)
}
