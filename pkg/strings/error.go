// Copyright 2025 The Cstring Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package strings

import (
	"errors"
	"fmt"

	"github.com/KirilStrezikozin/cstring/pkg/vector"
)

var (
	ErrInvalidRange     = errors.New("invalid range")
	ErrInvalidSeparator = errors.New("empty separator")
)

// ErrReleased is reported by operations on a released String.
var ErrReleased = vector.ErrReleased

type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("string %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
