// Copyright 2025 The Cstring Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

// Package strings implements byte strings on top of [vector.Vector]: a
// terminator-free Buffer, a NUL-terminated String and the read-only
// FixedString view. All operations are byte-oriented.
package strings

import (
	"bytes"

	"github.com/KirilStrezikozin/cstring/pkg/vector"
)

// String is a NUL-terminated byte string. The terminator is stored in the
// last slot of the underlying buffer and is never part of the content.
//
// Every String owns its storage; no operation returns a String that shares
// bytes with another. A String must be released with Release once it is no
// longer needed.
//
// XXX: String is not safe for concurrent use.
type String struct {
	buf *vector.Vector[byte]
}

// New returns an empty String.
func New(opts ...vector.Option) (*String, error) {
	buf, err := vector.WithLength[byte](1, opts...)
	if err != nil {
		return nil, &Error{Op: "new", Err: err}
	}
	return &String{buf: buf}, nil
}

// FromBytes returns a String holding a copy of p. p may contain NUL bytes.
func FromBytes(p []byte, opts ...vector.Option) (*String, error) {
	buf, err := vector.WithLength[byte](len(p)+1, opts...)
	if err != nil {
		return nil, &Error{Op: "from bytes", Err: err}
	}
	copy(buf.Slice(), p)
	return &String{buf: buf}, nil
}

func From(s string, opts ...vector.Option) (*String, error) {
	return FromBytes(bytesOf(s), opts...)
}

// FromCString returns a String holding the bytes of p up to, not including,
// the first NUL byte.
func FromCString(p []byte, opts ...vector.Option) (*String, error) {
	if i := bytes.IndexByte(p, 0); i >= 0 {
		p = p[:i]
	}
	return FromBytes(p, opts...)
}

// Len returns the content length.
func (s *String) Len() int {
	if s.buf.Released() {
		return 0
	}
	return s.buf.Len() - 1
}

// Cap returns the capacity of the underlying buffer, terminator slot included.
func (s *String) Cap() int {
	return s.buf.Cap()
}

// Bytes returns the content without the terminator. The result aliases the
// String and is valid until the next mutation.
func (s *String) Bytes() []byte {
	n := s.Len()
	return s.buf.Slice()[:n:n]
}

// CString returns the content followed by the NUL terminator.
func (s *String) CString() []byte {
	return s.buf.Slice()
}

func (s *String) String() string {
	return string(s.Bytes())
}

func (s *String) Released() bool {
	return s.buf.Released()
}

func (s *String) Clone() (*String, error) {
	if s.buf.Released() {
		return nil, &Error{Op: "clone", Err: ErrReleased}
	}
	return FromBytes(s.Bytes(), s.buf.Options())
}

// Concat returns a new String holding the content of a followed by the
// content of b. Neither input is modified.
func Concat(a, b *String) (*String, error) {
	if a.buf.Released() || b.buf.Released() {
		return nil, &Error{Op: "concat", Err: ErrReleased}
	}

	la, lb := a.Len(), b.Len()
	buf, err := vector.WithLength[byte](la+lb+1, a.buf.Options())
	if err != nil {
		return nil, &Error{Op: "concat", Err: err}
	}

	data := buf.Slice()
	copy(data, a.Bytes())
	copy(data[la:], b.Bytes())
	return &String{buf: buf}, nil
}

// Slice returns a new String holding the content bytes in [from, to).
//
// A negative index counts from the end: it is offset by Len()+1, so -1
// denotes Len(). After that adjustment 0 <= from <= to <= Len() must hold,
// otherwise ErrInvalidRange is returned.
func (s *String) Slice(from, to int) (*String, error) {
	if s.buf.Released() {
		return nil, &Error{Op: "slice", Err: ErrReleased}
	}

	n := s.Len()
	if from < 0 {
		from += n + 1
	}
	if to < 0 {
		to += n + 1
	}
	if from < 0 || from > n || to < from || to > n {
		return nil, &Error{Op: "slice", Err: ErrInvalidRange}
	}

	return FromBytes(s.Bytes()[from:to], s.buf.Options())
}

// Append appends p in place.
//
// In vector.Strict mode p is appended entirely or, if the buffer cannot grow
// enough, not at all and the error is returned. In vector.Silent mode the
// longest prefix of p that fits is appended and no error is reported. The
// terminator is kept in both cases.
func (s *String) Append(p []byte, mode vector.Mode) error {
	if s.buf.Released() {
		return &Error{Op: "append", Err: ErrReleased}
	}

	n := s.Len()
	if mode == vector.Silent {
		p = p[:min(len(p), s.buf.Headroom())]
	} else if err := s.buf.Reserve(len(p)); err != nil {
		return &Error{Op: "append", Err: err}
	}

	if err := s.replaceTail(n, p); err != nil {
		return &Error{Op: "append", Err: err}
	}
	return nil
}

func (s *String) AppendString(str string, mode vector.Mode) error {
	return s.Append(bytesOf(str), mode)
}

// Equal reports whether s and other hold the same bytes.
func (s *String) Equal(other *String) bool {
	return Equal(s, other)
}

// Equal reports whether a and b have the same length and the same bytes.
func Equal(a, b *String) bool {
	return bytes.Equal(a.Bytes(), b.Bytes())
}

// ToFixed returns an owned FixedString holding a copy of the content.
// s stays valid and must still be released by its owner.
func (s *String) ToFixed() (FixedString, error) {
	if s.buf.Released() {
		return FixedString{}, &Error{Op: "to fixed", Err: ErrReleased}
	}
	return FixedString{data: string(s.Bytes()), origin: Owned}, nil
}

// Release drops the storage of s. Later operations fail with ErrReleased.
func (s *String) Release() {
	s.buf.Release()
}

// ReleaseAll releases every String in list.
func ReleaseAll(list []*String) {
	for _, s := range list {
		s.Release()
	}
}

// replaceTail drops the terminator at content length n, appends p and
// terminates again. The caller makes sure p fits.
func (s *String) replaceTail(n int, p []byte) error {
	if err := s.buf.Truncate(n); err != nil {
		return err
	}
	if _, err := s.buf.PushAll(p, vector.Strict); err != nil {
		return err
	}
	return s.buf.Push(0)
}
