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

func mustFrom(t *testing.T, s string, opts ...vector.Option) *String {
	t.Helper()
	str, err := From(s, opts...)
	require.NoError(t, err)
	t.Cleanup(str.Release)
	return str
}

func TestNew(t *testing.T) {
	s, err := New()
	require.NoError(t, err)
	defer s.Release()

	assert.Equal(t, 0, s.Len())
	assert.Equal(t, []byte{0}, s.CString())
	assert.Empty(t, s.Bytes())
}

func TestFromBytes_Limit(t *testing.T) {
	s, err := New(vector.WithLimit(1))
	require.NoError(t, err)
	s.Release()

	_, err = FromBytes([]byte("ab"), vector.WithLimit(2))
	assert.ErrorIs(t, err, vector.ErrAllocation)
}

func TestFromBytes(t *testing.T) {
	s, err := FromBytes([]byte("ab\x00cd\x1b"))
	require.NoError(t, err)
	defer s.Release()

	assert.Equal(t, 6, s.Len())
	assert.Len(t, s.CString(), 7)
	assert.Equal(t, []byte("ab\x00cd\x1b"), s.Bytes())
	assert.Equal(t, byte(0), s.CString()[6])
}

func TestFrom(t *testing.T) {
	s := mustFrom(t, "random string")
	assert.Equal(t, 13, s.Len())
	assert.Len(t, s.CString(), 14)
	assert.Equal(t, "random string", s.String())
}

func TestFromCString(t *testing.T) {
	s, err := FromCString([]byte("null\x00 byte between"))
	require.NoError(t, err)
	defer s.Release()

	assert.Equal(t, "null", s.String())

	s2, err := FromCString([]byte("no nul"))
	require.NoError(t, err)
	defer s2.Release()
	assert.Equal(t, "no nul", s2.String())
}

func TestClone_Independent(t *testing.T) {
	s := mustFrom(t, "another random string")

	c, err := s.Clone()
	require.NoError(t, err)
	defer c.Release()

	assert.True(t, Equal(s, c))

	require.NoError(t, c.AppendString("!", vector.Strict))
	c.Bytes()[0] = 'A'

	assert.Equal(t, "another random string", s.String())
	assert.Equal(t, "Another random string!", c.String())
}

func TestConcat(t *testing.T) {
	a := mustFrom(t, "foo ")
	b := mustFrom(t, "bar")

	s, err := Concat(a, b)
	require.NoError(t, err)
	defer s.Release()

	assert.Equal(t, a.Len()+b.Len(), s.Len())
	assert.Equal(t, "foo bar", s.String())
	assert.Equal(t, byte(0), s.CString()[s.Len()])
	assert.Equal(t, "foo ", a.String())
	assert.Equal(t, "bar", b.String())
}

func TestConcat_Limit(t *testing.T) {
	a := mustFrom(t, "foo ", vector.WithLimit(5))
	b := mustFrom(t, "bar")

	_, err := Concat(a, b)
	assert.ErrorIs(t, err, vector.ErrAllocation)
}

func TestSlice(t *testing.T) {
	s := mustFrom(t, "out of ideas")

	tests := []struct {
		name   string
		from   int
		to     int
		expect string
	}{
		{"prefix", 0, 3, "out"},
		{"negative end", 4, -1, "of ideas"},
		{"both negative", -6, -1, "ideas"},
		{"negative start", -9, 6, "of"},
		{"whole", 0, -1, "out of ideas"},
		{"empty at end", 12, 12, ""},
		{"empty", 3, 3, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slice, err := s.Slice(tt.from, tt.to)
			require.NoError(t, err)
			defer slice.Release()

			assert.Equal(t, tt.expect, slice.String())
			assert.Equal(t, byte(0), slice.CString()[slice.Len()])
		})
	}
}

func TestSlice_InvalidRange(t *testing.T) {
	s := mustFrom(t, "out of ideas")

	tests := []struct {
		name string
		from int
		to   int
	}{
		{"from after to", 5, 4},
		{"to past end", 0, 13},
		{"from past end", 13, 13},
		{"from before start", -14, 3},
		{"to before start", 0, -14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slice, err := s.Slice(tt.from, tt.to)
			assert.ErrorIs(t, err, ErrInvalidRange)
			assert.NotErrorIs(t, err, vector.ErrAllocation)
			assert.Nil(t, slice)
		})
	}
}

func TestAppend(t *testing.T) {
	s, err := New()
	require.NoError(t, err)
	defer s.Release()

	require.NoError(t, s.AppendString("lejs", vector.Strict))
	require.NoError(t, s.Append([]byte(" me"), vector.Strict))
	require.NoError(t, s.AppendString(" limon", vector.Silent))

	assert.Equal(t, "lejs me limon", s.String())
	assert.Equal(t, 13, s.Len())
	assert.Equal(t, byte(0), s.CString()[13])
	assert.LessOrEqual(t, s.Len()+1, s.Cap())
}

func TestAppend_StrictIsAllOrNothing(t *testing.T) {
	s := mustFrom(t, "abc", vector.WithLimit(6))

	err := s.AppendString("defg", vector.Strict)
	assert.ErrorIs(t, err, vector.ErrAllocation)
	assert.Equal(t, "abc", s.String())
	assert.Equal(t, []byte("abc\x00"), s.CString())

	require.NoError(t, s.AppendString("de", vector.Strict))
	assert.Equal(t, "abcde", s.String())
}

func TestAppend_SilentKeepsTerminator(t *testing.T) {
	s := mustFrom(t, "abc", vector.WithLimit(6))

	assert.NoError(t, s.AppendString("defg", vector.Silent))
	assert.Equal(t, "abcde", s.String())
	assert.Equal(t, []byte("abcde\x00"), s.CString())

	assert.NoError(t, s.AppendString("xyz", vector.Silent))
	assert.Equal(t, "abcde", s.String())
}

func TestEqual(t *testing.T) {
	foo := mustFrom(t, "foo")
	bar := mustFrom(t, "bar")
	fooBar := mustFrom(t, "foobar")

	clone, err := foo.Clone()
	require.NoError(t, err)
	defer clone.Release()

	assert.True(t, Equal(foo, clone))
	assert.True(t, foo.Equal(clone))
	assert.False(t, Equal(foo, bar))
	assert.False(t, Equal(foo, fooBar))
	assert.False(t, Equal(fooBar, foo))
}

func TestRelease(t *testing.T) {
	s, err := From("gone")
	require.NoError(t, err)

	s.Release()
	s.Release()

	assert.True(t, s.Released())
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Bytes())

	_, err = s.Clone()
	assert.ErrorIs(t, err, ErrReleased)
	_, err = s.Slice(0, 0)
	assert.ErrorIs(t, err, ErrReleased)
	_, err = s.Split([]byte(" "))
	assert.ErrorIs(t, err, ErrReleased)
	_, err = s.ToFixed()
	assert.ErrorIs(t, err, ErrReleased)
	assert.ErrorIs(t, s.AppendString("x", vector.Silent), ErrReleased)
	assert.ErrorIs(t, s.Trim(), ErrReleased)

	other := mustFrom(t, "x")
	_, err = Concat(other, s)
	assert.ErrorIs(t, err, ErrReleased)
}
