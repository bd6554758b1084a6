// Copyright 2025 The Cstring Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package internal

import (
	"github.com/KirilStrezikozin/cstring/internal/types"
	"github.com/KirilStrezikozin/cstring/pkg/strings"
	"github.com/KirilStrezikozin/cstring/pkg/vector"
	"github.com/rs/zerolog"
)

type Config struct {
	// Limit caps the capacity of every String built for a request, in bytes.
	// Zero means no cap.
	Limit int
}

type IProcessor interface {
	Process(req Request) (Response, error)
}

// Processor runs Requests. It is safe for concurrent use as long as its
// Store is.
type Processor struct {
	store  *Store
	opts   []vector.Option
	logger zerolog.Logger
}

func NewProcessor(cfg Config, store *Store, parentLogger zerolog.Logger) *Processor {
	logger := parentLogger.
		With().
		Str("component", "processor").
		Logger()

	return &Processor{
		store:  store,
		opts:   []vector.Option{vector.WithLimit(cfg.Limit), vector.WithLogger(logger)},
		logger: logger,
	}
}

// Process runs req. Every String created on the way is released before
// Process returns.
func (p *Processor) Process(req Request) (Response, error) {
	resp := Response{Op: req.Op}

	if err := p.process(req, &resp); err != nil {
		p.logger.Debug().Err(err).Str("op", string(req.Op)).Msg("request failed")
		return resp, &ProcessError{Op: string(req.Op), Err: err}
	}

	p.logger.Debug().Str("op", string(req.Op)).Msg("request processed")
	return resp, nil
}

func (p *Processor) process(req Request, resp *Response) error {
	mode, err := vector.ParseMode(req.Mode)
	if err != nil {
		return err
	}

	input, err := strings.From(req.Input, p.opts...)
	if err != nil {
		return err
	}
	defer input.Release()

	switch req.Op {
	case types.OpSplit:
		return p.split(resp, func() ([]*strings.String, error) {
			return input.SplitString(req.Sep)
		})

	case types.OpSplitByte:
		if len(req.Sep) != 1 {
			return ErrInvalidRequest
		}
		return p.split(resp, func() ([]*strings.String, error) {
			return input.SplitByte(req.Sep[0])
		})

	case types.OpTrim:
		return p.inPlace(input, resp, input.Trim)

	case types.OpTrimStart:
		return p.inPlace(input, resp, input.TrimStart)

	case types.OpTrimEnd:
		return p.inPlace(input, resp, input.TrimEnd)

	case types.OpAppend:
		return p.inPlace(input, resp, func() error {
			return input.AppendString(req.Other, mode)
		})

	case types.OpSlice:
		to := -1
		if req.To != nil {
			to = *req.To
		}
		return p.derive(resp, func() (*strings.String, error) {
			return input.Slice(req.From, to)
		})

	case types.OpConcat:
		other, err := strings.From(req.Other, p.opts...)
		if err != nil {
			return err
		}
		defer other.Release()

		return p.derive(resp, func() (*strings.String, error) {
			return strings.Concat(input, other)
		})

	case types.OpHash:
		resp.Hash = input.Hash()
		return nil

	case types.OpEqual:
		other, err := strings.From(req.Other, p.opts...)
		if err != nil {
			return err
		}
		defer other.Release()

		equal := strings.Equal(input, other)
		resp.Equal = &equal
		return nil

	case types.OpCharAt:
		fixed, err := input.ToFixed()
		if err != nil {
			return err
		}
		defer fixed.Release()

		c := fixed.CharAt(req.Index)
		resp.Char = &c
		return nil

	case types.OpIntern:
		view, err := p.store.Intern(input)
		if err != nil {
			return err
		}
		resp.Result = view.String()
		resp.Interned = p.store.Len()
		return nil
	}

	return ErrUnknownOp
}

func (p *Processor) split(resp *Response, split func() ([]*strings.String, error)) error {
	parts, err := split()
	if err != nil {
		return err
	}
	defer strings.ReleaseAll(parts)

	resp.Segments = make([]string, len(parts))
	for i, part := range parts {
		resp.Segments[i] = part.String()
	}
	return nil
}

func (p *Processor) inPlace(s *strings.String, resp *Response, mutate func() error) error {
	if err := mutate(); err != nil {
		return err
	}
	resp.Result = s.String()
	return nil
}

func (p *Processor) derive(resp *Response, derive func() (*strings.String, error)) error {
	s, err := derive()
	if err != nil {
		return err
	}
	defer s.Release()

	resp.Result = s.String()
	return nil
}
