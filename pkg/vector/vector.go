// Copyright 2025 The Cstring Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

// Package vector implements a growable array with amortized growth and an
// optional capacity ceiling.
package vector

import "math"

// minCapacity is the capacity of the first allocation of an empty Vector.
const minCapacity = 8

// Vector owns a contiguous array of T. Len() <= Cap() always holds, and when
// a push needs more room the capacity at least doubles.
//
// XXX: Vector is not safe for concurrent use.
type Vector[T any] struct {
	data     []T
	opts     options
	released bool
}

// New returns an empty Vector with no storage allocated.
func New[T any](opts ...Option) *Vector[T] {
	return &Vector[T]{opts: newOptions(opts)}
}

// WithLength returns a Vector holding n zero elements with capacity n.
func WithLength[T any](n int, opts ...Option) (*Vector[T], error) {
	o := newOptions(opts)
	if n < 0 || (o.limit > 0 && n > o.limit) {
		return nil, &Error{Op: "with length", Err: ErrAllocation}
	}
	return &Vector[T]{data: make([]T, n), opts: o}, nil
}

// Options returns an Option that copies the configuration of v, so that
// buffers derived from v share its limit and logger.
func (v *Vector[T]) Options() Option {
	o := v.opts
	return func(dst *options) {
		*dst = o
	}
}

func (v *Vector[T]) Len() int {
	return len(v.data)
}

func (v *Vector[T]) Cap() int {
	return cap(v.data)
}

// Limit returns the capacity ceiling, or 0 if there is none.
func (v *Vector[T]) Limit() int {
	return v.opts.limit
}

func (v *Vector[T]) Released() bool {
	return v.released
}

// Headroom returns how many more elements the Vector can hold before growth
// fails.
func (v *Vector[T]) Headroom() int {
	if v.released {
		return 0
	}
	if v.opts.limit == 0 {
		return math.MaxInt - len(v.data)
	}
	return v.opts.limit - len(v.data)
}

// At returns the element at index i.
func (v *Vector[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(v.data) {
		var zero T
		return zero, false
	}
	return v.data[i], true
}

// Slice returns the live elements. Elements may be modified in place, but
// appending to the returned slice never affects the Vector.
func (v *Vector[T]) Slice() []T {
	return v.data[:len(v.data):len(v.data)]
}

// Reserve makes room for n more elements without changing Len.
func (v *Vector[T]) Reserve(n int) error {
	if v.released {
		return &Error{Op: "reserve", Err: ErrReleased}
	}
	if n < 0 {
		return &Error{Op: "reserve", Err: ErrOutOfRange}
	}
	if err := v.grow(n); err != nil {
		return &Error{Op: "reserve", Err: err}
	}
	return nil
}

// Push appends value. If growth fails the Vector is left unchanged.
func (v *Vector[T]) Push(value T) error {
	if v.released {
		return &Error{Op: "push", Err: ErrReleased}
	}
	if err := v.grow(1); err != nil {
		return &Error{Op: "push", Err: err}
	}
	v.data = append(v.data, value)
	return nil
}

// PushAll appends values and returns how many were appended.
//
// In Strict mode either all values are appended or, if growth fails, none
// are and the error is returned. In Silent mode growth stops at the capacity
// ceiling, the values that fit are appended and no error is reported.
func (v *Vector[T]) PushAll(values []T, mode Mode) (int, error) {
	if v.released {
		return 0, &Error{Op: "push all", Err: ErrReleased}
	}

	n := len(values)
	if err := v.grow(n); err != nil {
		if mode == Strict {
			return 0, &Error{Op: "push all", Err: err}
		}

		n = v.Headroom()
		_ = v.grow(n) // n never exceeds Headroom

		v.opts.logger.Debug().
			Int("requested", len(values)).
			Int("pushed", n).
			Int("limit", v.opts.limit).
			Msg("growth stopped early")
	}

	v.data = append(v.data, values[:n]...)
	return n, nil
}

// Pop removes and returns the last element.
func (v *Vector[T]) Pop() (T, bool) {
	var zero T
	if len(v.data) == 0 {
		return zero, false
	}
	last := v.data[len(v.data)-1]
	v.data[len(v.data)-1] = zero
	v.data = v.data[:len(v.data)-1]
	return last, true
}

// Truncate shrinks the Vector to its first n elements. Capacity is kept.
func (v *Vector[T]) Truncate(n int) error {
	if v.released {
		return &Error{Op: "truncate", Err: ErrReleased}
	}
	if n < 0 || n > len(v.data) {
		return &Error{Op: "truncate", Err: ErrOutOfRange}
	}
	clear(v.data[n:])
	v.data = v.data[:n]
	return nil
}

// Release drops the storage. Every later mutation fails with ErrReleased.
func (v *Vector[T]) Release() {
	v.data = nil
	v.released = true
}

func (v *Vector[T]) grow(n int) error {
	if n > v.Headroom() {
		return ErrAllocation
	}

	need := len(v.data) + n
	if need <= cap(v.data) {
		return nil
	}

	newCap := max(2*cap(v.data), minCapacity, need)
	if v.opts.limit > 0 && newCap > v.opts.limit {
		newCap = v.opts.limit
	}

	grown := make([]T, len(v.data), newCap)
	copy(grown, v.data)
	v.data = grown
	return nil
}
