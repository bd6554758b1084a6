// Copyright 2025 The Cstring Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package internal

import (
	"encoding/json"
	"fmt"

	"github.com/KirilStrezikozin/cstring/internal/types"
)

// Request asks for one string operation on Input.
type Request struct {
	Op    types.Op `json:"op"`
	Input string   `json:"input"`

	// Second operand of concat, append and equal.
	Other string `json:"other,omitempty"`

	// Separator of split. split_byte takes a single byte.
	Sep string `json:"sep,omitempty"`

	// Bounds of slice. A missing To means the end of Input.
	From int  `json:"from,omitempty"`
	To   *int `json:"to,omitempty"`

	// Index of char_at.
	Index int `json:"index,omitempty"`

	// Growth failure mode of append, "strict" (default) or "silent".
	Mode string `json:"mode,omitempty"`
}

type Response struct {
	Op       types.Op `json:"op"`
	Result   string   `json:"result,omitempty"`
	Segments []string `json:"segments,omitempty"`
	Hash     uint32   `json:"hash,omitempty"`
	Equal    *bool    `json:"equal,omitempty"`
	Char     *int     `json:"char,omitempty"`

	// Number of entries in the literal table after intern.
	Interned int `json:"interned,omitempty"`

	Error string `json:"error,omitempty"`
}

func NewRequest(data []byte) (Request, error) {
	var req Request
	err := json.Unmarshal(data, &req)
	if err != nil {
		return req, fmt.Errorf("error unmarshaling request data: %w", err)
	}

	if req.Op == "" {
		return req, fmt.Errorf("error validating request data: %w", ErrInvalidRequest)
	}

	return req, nil
}

func (r *Response) MarshalJSON() ([]byte, error) {
	type response Response
	data, err := json.Marshal((*response)(r))
	if err != nil {
		return nil, fmt.Errorf("error marshaling response data: %w", err)
	}
	return data, nil
}
