// Copyright 2025 The Cstring Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package strings

import "unsafe"

// Origin tells who owns the storage behind a FixedString.
type Origin int

const (
	// Cleared is the origin of the zero FixedString and of a released one.
	Cleared Origin = iota
	// Borrowed storage belongs to someone else and outlives the view.
	Borrowed
	// Owned storage is a private copy held by the FixedString.
	Owned
)

func (o Origin) String() string {
	switch o {
	case Cleared:
		return "cleared"
	case Borrowed:
		return "borrowed"
	case Owned:
		return "owned"
	default:
		return "unknown"
	}
}

// FixedString is an immutable byte string that either borrows its storage
// or owns a private copy of it. The zero value is an empty, cleared
// FixedString.
type FixedString struct {
	data   string
	origin Origin
}

// Literal returns a FixedString borrowing s without copying.
func Literal(s string) FixedString {
	return FixedString{data: s, origin: Borrowed}
}

// Borrow returns a FixedString viewing b without copying. The caller keeps
// ownership of b and must not modify it while the view is in use.
func Borrow(b []byte) FixedString {
	return FixedString{
		data:   unsafe.String(unsafe.SliceData(b), len(b)),
		origin: Borrowed,
	}
}

func (f FixedString) Len() int {
	return len(f.data)
}

// CharAt returns the byte at index i, or -1 if i is out of range.
func (f FixedString) CharAt(i int) int {
	if i < 0 || i >= len(f.data) {
		return -1
	}
	return int(f.data[i])
}

func (f FixedString) String() string {
	return f.data
}

// Bytes returns a copy of the content.
func (f FixedString) Bytes() []byte {
	return []byte(f.data)
}

func (f FixedString) Origin() Origin {
	return f.origin
}

func (f FixedString) IsBorrowed() bool {
	return f.origin == Borrowed
}

// Release resets f to the cleared state. An owned copy is dropped with it;
// borrowed storage is left to its owner. Releasing a cleared FixedString
// does nothing.
func (f *FixedString) Release() {
	*f = FixedString{}
}
