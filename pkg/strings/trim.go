// Copyright 2025 The Cstring Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package strings

func isTrimmable(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == 0
}

// TrimStart removes leading spaces, tabs, newlines and NUL bytes in place.
func (s *String) TrimStart() error {
	if s.buf.Released() {
		return &Error{Op: "trim start", Err: ErrReleased}
	}

	data := s.buf.Slice()
	n := len(data) - 1

	i := 0
	for i < n && isTrimmable(data[i]) {
		i++
	}
	if i == 0 {
		return nil
	}

	// Moves the terminator along with the content.
	copy(data, data[i:])
	if err := s.buf.Truncate(n - i + 1); err != nil {
		return &Error{Op: "trim start", Err: err}
	}
	return nil
}

// TrimEnd removes trailing spaces, tabs, newlines and NUL bytes in place.
// The scan covers content bytes only, never the terminator.
func (s *String) TrimEnd() error {
	if s.buf.Released() {
		return &Error{Op: "trim end", Err: ErrReleased}
	}

	data := s.buf.Slice()
	end := len(data) - 1
	for end > 0 && isTrimmable(data[end-1]) {
		end--
	}
	if end == len(data)-1 {
		return nil
	}

	data[end] = 0
	if err := s.buf.Truncate(end + 1); err != nil {
		return &Error{Op: "trim end", Err: err}
	}
	return nil
}

// Trim is TrimEnd followed by TrimStart.
func (s *String) Trim() error {
	if err := s.TrimEnd(); err != nil {
		return err
	}
	return s.TrimStart()
}
