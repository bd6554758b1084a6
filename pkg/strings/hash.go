// Copyright 2025 The Cstring Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package strings

import "encoding/binary"

const (
	hashMul   = 0x5bd1e995
	hashShift = 24
)

// Hash returns a 32-bit MurmurHash2 of the content seeded with its length.
// It is fast and well distributed but offers no protection against
// deliberately colliding keys.
func (s *String) Hash() uint32 {
	return HashBytes(s.Bytes())
}

// HashBytes is the hash String.Hash computes, over p.
func HashBytes(p []byte) uint32 {
	h := uint32(len(p))

	for ; len(p) >= 4; p = p[4:] {
		k := binary.LittleEndian.Uint32(p)
		k *= hashMul
		k ^= k >> hashShift
		k *= hashMul

		h *= hashMul
		h ^= k
	}

	switch len(p) {
	case 3:
		h ^= uint32(p[2]) << 16
		fallthrough
	case 2:
		h ^= uint32(p[1]) << 8
		fallthrough
	case 1:
		h ^= uint32(p[0])
		h *= hashMul
	}

	h ^= h >> 13
	h *= hashMul
	h ^= h >> 15
	return h
}
