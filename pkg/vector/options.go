// Copyright 2025 The Cstring Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package vector

import "github.com/rs/zerolog"

type options struct {
	limit  int
	logger zerolog.Logger
}

func defaultOptions() options {
	return options{logger: zerolog.Nop()}
}

// Option configures a Vector.
type Option func(*options)

// WithLimit caps the capacity of the buffer at n elements. Growth past the
// cap fails with ErrAllocation. Zero or a negative n means no cap.
func WithLimit(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.limit = n
	}
}

// WithLogger sets the logger used to report growth that Silent mode suppressed.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
