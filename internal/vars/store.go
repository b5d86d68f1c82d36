// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package vars

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
	"sync"
)

// ErrMissingVariable is returned when a variable is read before any step has set it.
var ErrMissingVariable = errors.New("missing variable")

// MissingVariableError records the name of the variable that was not set.
type MissingVariableError struct {
	Name string
}

// Error implements the error interface for MissingVariableError.
func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("%s: %q has not been set by an earlier step", ErrMissingVariable.Error(), e.Name)
}

// Is allows errors.Is(err, ErrMissingVariable) to match.
func (e *MissingVariableError) Is(target error) bool {
	return target == ErrMissingVariable
}

// Store is an insertion-ordered map of variable names to string values.
// The zero value is ready to use.
type Store struct {
	mu     sync.RWMutex
	keys   []string
	values map[string]string
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		values: make(map[string]string),
	}
}

// Set creates or overwrites a variable.
func (s *Store) Set(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.values == nil {
		s.values = make(map[string]string)
	}

	if _, ok := s.values[name]; !ok {
		s.keys = append(s.keys, name)
	}

	s.values[name] = value
}

// Get returns the value of a variable, or a *MissingVariableError if it was never set.
func (s *Store) Get(name string) (string, error) {
	v, ok := s.Lookup(name)
	if !ok {
		return "", &MissingVariableError{Name: name}
	}

	return v, nil
}

// Lookup returns the value of a variable and whether it exists.
func (s *Store) Lookup(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[name]

	return v, ok
}

// Len returns the number of variables in the store.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.keys)
}

// All iterates the variables in the order they were first set.
func (s *Store) All() iter.Seq2[string, string] {
	s.mu.RLock()
	keys := slices.Clone(s.keys)
	values := make(map[string]string, len(s.values))

	for k, v := range s.values {
		values[k] = v
	}
	s.mu.RUnlock()

	return func(yield func(string, string) bool) {
		for _, k := range keys {
			if !yield(k, values[k]) {
				return
			}
		}
	}
}

// Substitute replaces every {Name} placeholder in template with the current value of Name.
// Placeholders that do not name a variable in the store are left untouched.
func (s *Store) Substitute(template string) string {
	if !strings.Contains(template, "{") {
		return template
	}

	sb := strings.Builder{}
	sb.Grow(len(template))

	rest := template
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			sb.WriteString(rest)
			break
		}

		end := strings.IndexByte(rest[open+1:], '}')
		if end < 0 {
			sb.WriteString(rest)
			break
		}

		end += open + 1
		name := rest[open+1 : end]

		// A nested brace means this is not a placeholder; emit the brace and rescan from the next byte.
		if strings.IndexByte(name, '{') >= 0 {
			sb.WriteString(rest[:open+1])
			rest = rest[open+1:]

			continue
		}

		sb.WriteString(rest[:open])

		if v, ok := s.Lookup(name); ok {
			sb.WriteString(v)
		} else {
			sb.WriteString(rest[open : end+1])
		}

		rest = rest[end+1:]
	}

	return sb.String()
}
