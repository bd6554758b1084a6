// Copyright 2025 The Cstring Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrAllocation reports that the buffer could not grow to the requested size.
	ErrAllocation = errors.New("allocation failed")

	// ErrReleased reports use of a buffer after Release.
	ErrReleased = errors.New("use of released buffer")

	ErrOutOfRange = errors.New("index out of range")
)

type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("vector %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
