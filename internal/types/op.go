// Copyright 2025 The Cstring Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package types

// Op names a string operation a Request can run.
type Op string

const (
	OpSplit     Op = "split"
	OpSplitByte Op = "split_byte"
	OpTrim      Op = "trim"
	OpTrimStart Op = "trim_start"
	OpTrimEnd   Op = "trim_end"
	OpSlice     Op = "slice"
	OpConcat    Op = "concat"
	OpAppend    Op = "append"
	OpHash      Op = "hash"
	OpEqual     Op = "equal"
	OpCharAt    Op = "char_at"
	OpIntern    Op = "intern"
)
