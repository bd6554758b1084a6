// Copyright 2025 The Cstring Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package strings

import "bytes"

// Split slices s into the segments separated by sep. Matches are found left
// to right and never overlap. Empty segments are kept, so a separator at
// either end yields an empty first or last segment. Each segment is a new
// String owned by the caller.
func (s *String) Split(sep []byte) ([]*String, error) {
	if s.buf.Released() {
		return nil, &Error{Op: "split", Err: ErrReleased}
	}
	if len(sep) == 0 {
		return nil, &Error{Op: "split", Err: ErrInvalidSeparator}
	}

	return s.split("split", len(sep), func(b []byte) int {
		return bytes.Index(b, sep)
	})
}

func (s *String) SplitString(sep string) ([]*String, error) {
	return s.Split(bytesOf(sep))
}

// SplitByte is Split with the single byte c as separator.
func (s *String) SplitByte(c byte) ([]*String, error) {
	if s.buf.Released() {
		return nil, &Error{Op: "split byte", Err: ErrReleased}
	}

	return s.split("split byte", 1, func(b []byte) int {
		return bytes.IndexByte(b, c)
	})
}

func (s *String) split(op string, width int, index func([]byte) int) ([]*String, error) {
	var parts []*String
	rest := s.Bytes()

	for {
		i := index(rest)

		seg := rest
		if i >= 0 {
			seg = rest[:i]
		}

		part, err := FromBytes(seg, s.buf.Options())
		if err != nil {
			ReleaseAll(parts)
			return nil, &Error{Op: op, Err: err}
		}
		parts = append(parts, part)

		if i < 0 {
			return parts, nil
		}
		rest = rest[i+width:]
	}
}
