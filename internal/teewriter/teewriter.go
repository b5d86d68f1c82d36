// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package teewriter

import (
	"bytes"
	"strings"
	"sync"
)

// LineFunc is called for every complete line, without its line terminator.
type LineFunc func(line string)

// LineTeeWriter buffers all written data, tracks the last complete line and
// calls a LineFunc for each complete line. It is safe for concurrent use.
type LineTeeWriter struct {
	onLine   LineFunc
	full     bytes.Buffer
	partial  strings.Builder
	lastLine string
	max      int
	mu       sync.RWMutex
}

// New creates a LineTeeWriter. onLine may be nil.
// If maxBytes is greater than zero the retained buffer stops growing at that size
// and longer lines are cut to that size. Lines are still delivered to onLine.
func New(onLine LineFunc, maxBytes int) *LineTeeWriter {
	return &LineTeeWriter{
		onLine: onLine,
		max:    maxBytes,
	}
}

// Write implements io.Writer.
func (lt *LineTeeWriter) Write(p []byte) (int, error) {
	lt.mu.Lock()

	if lt.max <= 0 || lt.full.Len() < lt.max {
		room := len(p)
		if lt.max > 0 && lt.full.Len()+room > lt.max {
			room = lt.max - lt.full.Len()
		}

		lt.full.Write(p[:room])
	}

	lines := lt.split(string(p))
	lt.mu.Unlock()

	if lt.onLine != nil {
		for _, l := range lines {
			lt.onLine(l)
		}
	}

	return len(p), nil
}

// split appends data to the partial line and returns any lines it completes.
// Only data is scanned for line breaks. Must be called with the write lock held.
func (lt *LineTeeWriter) split(data string) []string {
	var complete []string

	for {
		i := strings.IndexByte(data, '\n')
		if i < 0 {
			break
		}

		lt.appendPartial(data[:i])
		complete = append(complete, strings.TrimSuffix(lt.partial.String(), "\r"))
		lt.partial.Reset()

		data = data[i+1:]
	}

	lt.appendPartial(data)

	if len(complete) > 0 {
		lt.lastLine = complete[len(complete)-1]
	}

	return complete
}

// appendPartial adds s to the current line. If max is set the line is cut at max bytes.
func (lt *LineTeeWriter) appendPartial(s string) {
	if lt.max > 0 {
		room := lt.max - lt.partial.Len()
		if room <= 0 {
			return
		}

		if len(s) > room {
			s = s[:room]
		}
	}

	lt.partial.WriteString(s)
}

// Flush delivers any trailing partial line to the LineFunc.
func (lt *LineTeeWriter) Flush() {
	lt.mu.Lock()
	rest := strings.TrimSuffix(lt.partial.String(), "\r")
	lt.partial.Reset()

	if rest != "" {
		lt.lastLine = rest
	}
	lt.mu.Unlock()

	if rest != "" && lt.onLine != nil {
		lt.onLine(rest)
	}
}

// LastLine returns the last complete line written.
// If maxLength > 3 the line is truncated to that many runes with a trailing "...".
func (lt *LineTeeWriter) LastLine(maxLength int) string {
	lt.mu.RLock()
	defer lt.mu.RUnlock()

	result := lt.lastLine
	if maxLength <= 3 || len(result) <= maxLength {
		return result
	}

	if r := []rune(result); len(r) > maxLength {
		return string(r[:maxLength-3]) + "..."
	}

	return result
}

// Bytes returns a copy of all retained data.
func (lt *LineTeeWriter) Bytes() []byte {
	lt.mu.RLock()
	defer lt.mu.RUnlock()

	return bytes.Clone(lt.full.Bytes())
}
