// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package vars

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SetGet(t *testing.T) {
	s := New()
	s.Set("MapFile", "/tmp/a.map")

	v, err := s.Get("MapFile")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/a.map", v)

	s.Set("MapFile", "/tmp/b.map")
	v, err = s.Get("MapFile")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/b.map", v, "last write wins")
	assert.Equal(t, 1, s.Len())
}

func TestStore_GetMissing(t *testing.T) {
	s := New()

	_, err := s.Get("WorkingDirectory")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingVariable)

	var mve *MissingVariableError

	require.ErrorAs(t, err, &mve)
	assert.Equal(t, "WorkingDirectory", mve.Name)
}

func TestStore_ZeroValue(t *testing.T) {
	var s Store

	s.Set("a", "1")

	v, ok := s.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, "1", v)
}

func TestStore_AllPreservesOrder(t *testing.T) {
	s := New()
	s.Set("WorkingDirectory", "/tmp/x")
	s.Set("MapFileName", "out.map")
	s.Set("MapFile", "/tmp/x/out.map")
	s.Set("WorkingDirectory", "/tmp/y")

	var keys, values []string
	for k, v := range s.All() {
		keys = append(keys, k)
		values = append(values, v)
	}

	assert.Equal(t, []string{"WorkingDirectory", "MapFileName", "MapFile"}, keys)
	assert.Equal(t, []string{"/tmp/y", "out.map", "/tmp/x/out.map"}, values)
}

func TestStore_Substitute(t *testing.T) {
	s := New()
	s.Set("MapFile", "/tmp/x/out.map")
	s.Set("WorkingDirectory", "/tmp/x")

	tests := []struct {
		name     string
		template string
		expected string
	}{
		{
			name:     "quoted placeholder",
			template: `-wadinclude "{MapFile}"`,
			expected: `-wadinclude "/tmp/x/out.map"`,
		},
		{
			name:     "repeated placeholder",
			template: "{MapFile} {MapFile}",
			expected: "/tmp/x/out.map /tmp/x/out.map",
		},
		{
			name:     "unknown placeholder left alone",
			template: "-dir {WorkingDirectory} -x {Unknown}",
			expected: "-dir /tmp/x -x {Unknown}",
		},
		{
			name:     "no placeholder",
			template: "-estimate -chart",
			expected: "-estimate -chart",
		},
		{
			name:     "unterminated brace",
			template: "-a {MapFile",
			expected: "-a {MapFile",
		},
		{
			name:     "nested brace",
			template: "{{MapFile}}",
			expected: "{/tmp/x/out.map}",
		},
		{
			name:     "empty braces",
			template: "{}",
			expected: "{}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, s.Substitute(tt.template))
		})
	}
}

func TestStore_SubstituteIsLazy(t *testing.T) {
	s := New()
	tmpl := `"{MapFile}"`

	assert.Equal(t, `"{MapFile}"`, s.Substitute(tmpl))

	s.Set("MapFile", "first.map")
	assert.Equal(t, `"first.map"`, s.Substitute(tmpl))

	s.Set("MapFile", "second.map")
	assert.Equal(t, `"second.map"`, s.Substitute(tmpl))
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := New()

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)

		go func() {
			defer wg.Done()
			s.Set("k", string(rune('a'+i)))
			_ = s.Substitute("{k}")
		}()
	}

	wg.Wait()
	assert.Equal(t, 1, s.Len())
}
