// Copyright 2025 The Cstring Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package internal

import (
	"errors"
	"fmt"
)

var ErrNilConnection = errors.New("nil connection")
var ErrConnectionAlreadyEstablished = errors.New("connection already established")
var ErrUnknownOp = errors.New("unknown operation")
var ErrInvalidRequest = errors.New("invalid request")

type ProcessError struct {
	Op  string
	Err error
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("process %s: %v", e.Op, e.Err)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}
