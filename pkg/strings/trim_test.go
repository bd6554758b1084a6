// Copyright 2025 The Cstring Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package strings

import (
	"testing"

	"github.com/KirilStrezikozin/cstring/pkg/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrim(t *testing.T) {
	tests := []struct {
		name  string
		input string
		start string
		end   string
		both  string
	}{
		{"empty", "", "", "", ""},
		{"single space", " ", "", "", ""},
		{"single byte", "a", "a", "a", "a"},
		{"single nul", "\x00", "", "", ""},
		{"only whitespace", " \t\n\x00 ", "", "", ""},
		{"both sides", " \t foo bar\n\x00", "foo bar\n\x00", " \t foo bar", "foo bar"},
		{"interior kept", "a \t b", "a \t b", "a \t b", "a \t b"},
		{"carriage return kept", "\rfoo\r", "\rfoo\r", "\rfoo\r", "\rfoo\r"},
	}

	run := func(t *testing.T, input string, op func(*String) error) *String {
		s := mustFrom(t, input)
		require.NoError(t, op(s))
		assert.Equal(t, byte(0), s.CString()[s.Len()])
		assert.Len(t, s.CString(), s.Len()+1)
		return s
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.start, run(t, tt.input, (*String).TrimStart).String())
			assert.Equal(t, tt.end, run(t, tt.input, (*String).TrimEnd).String())
			assert.Equal(t, tt.both, run(t, tt.input, (*String).Trim).String())
		})
	}
}

func TestTrim_KeepsCapacity(t *testing.T) {
	s := mustFrom(t, "   padded   ")
	capBefore := s.Cap()

	require.NoError(t, s.Trim())
	assert.Equal(t, "padded", s.String())
	assert.Equal(t, capBefore, s.Cap())

	require.NoError(t, s.AppendString(" more", vector.Strict))
	assert.Equal(t, "padded more", s.String())
}
