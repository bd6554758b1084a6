// Copyright 2025 The Cstring Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package internal

import (
	"bytes"
	"sync"

	"github.com/KirilStrezikozin/cstring/pkg/strings"
	"github.com/KirilStrezikozin/cstring/pkg/vector"
	"github.com/rs/zerolog"
)

// Store is a literal table. It owns one copy of every distinct string
// interned into it and hands out borrowed FixedStrings viewing those copies.
//
// A view stays valid for as long as the Store is not released. Interned
// strings are never modified.
type Store struct {
	mu sync.Mutex

	strs  *vector.Vector[*strings.String]
	index map[uint32][]int

	logger zerolog.Logger
}

// NewStore returns an empty Store with room for capacity strings. A positive
// limit caps the number of distinct strings it can hold.
func NewStore(capacity int, limit int, parentLogger zerolog.Logger) *Store {
	logger := parentLogger.
		With().
		Str("component", "store").
		Logger()

	strs := vector.New[*strings.String](vector.WithLimit(limit), vector.WithLogger(logger))
	if capacity > 0 {
		_ = strs.Reserve(min(capacity, strs.Headroom()))
	}

	return &Store{
		strs:   strs,
		index:  make(map[uint32][]int),
		logger: logger,
	}
}

// Intern returns a borrowed view of the table's copy of str, adding a copy
// first if the table does not hold one yet.
func (s *Store) Intern(str *strings.String) (strings.FixedString, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := str.Hash()
	if owned, ok := s.find(h, str.Bytes()); ok {
		return strings.Borrow(owned.Bytes()), nil
	}

	owned, err := str.Clone()
	if err != nil {
		return strings.FixedString{}, err
	}

	if err := s.strs.Push(owned); err != nil {
		owned.Release()
		return strings.FixedString{}, err
	}
	s.index[h] = append(s.index[h], s.strs.Len()-1)

	s.logger.Debug().
		Uint32("hash", h).
		Int("len", owned.Len()).
		Msg("string interned")

	return strings.Borrow(owned.Bytes()), nil
}

// Lookup returns a borrowed view of the table's copy of p, if there is one.
func (s *Store) Lookup(p []byte) (strings.FixedString, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	owned, ok := s.find(strings.HashBytes(p), p)
	if !ok {
		return strings.FixedString{}, false
	}
	return strings.Borrow(owned.Bytes()), true
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.strs.Len()
}

// Release releases every interned string. Views handed out earlier must not
// be used afterwards.
func (s *Store) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()

	strings.ReleaseAll(s.strs.Slice())
	s.strs.Release()
	clear(s.index)
}

func (s *Store) find(h uint32, p []byte) (*strings.String, bool) {
	for _, i := range s.index[h] {
		owned, ok := s.strs.At(i)
		if ok && bytes.Equal(owned.Bytes(), p) {
			return owned, true
		}
	}
	return nil, false
}
