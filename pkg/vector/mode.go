// Copyright 2025 The Cstring Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package vector

import "fmt"

// Mode selects how a multi-element push reacts to a failed growth.
type Mode int

const (
	// Strict pushes all elements or none and reports the failure.
	Strict Mode = iota
	// Silent pushes as many elements as fit and suppresses the failure.
	Silent
)

func (m Mode) String() string {
	switch m {
	case Strict:
		return "strict"
	case Silent:
		return "silent"
	default:
		return "unknown"
	}
}

// ParseMode maps "strict" and "silent" to their Mode. An empty string is Strict.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "strict":
		return Strict, nil
	case "silent":
		return Silent, nil
	}
	return Strict, &Error{Op: "parse mode", Err: fmt.Errorf("unknown mode %q", s)}
}
