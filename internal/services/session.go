// Copyright 2025 The Cstring Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package services

import (
	"encoding/json"

	"github.com/KirilStrezikozin/cstring/internal"
	"github.com/rs/zerolog"
)

type ISessionService interface {
	ReadLoop() error
}

// SessionService answers every message of one WebSocket connection with the
// Response of the Request it carries.
type SessionService struct {
	ws        internal.IWebSocketReadWriter
	processor internal.IProcessor
	logger    zerolog.Logger
}

func NewSessionService(
	ws internal.IWebSocketReadWriter,
	processor internal.IProcessor,
	parentLogger zerolog.Logger,
) *SessionService {
	logger := parentLogger.
		With().
		Str("service", "session").
		Logger()

	return &SessionService{
		ws:        ws,
		processor: processor,
		logger:    logger,
	}
}

// ReadLoop serves requests until the connection fails or is closed. A normal
// close by the peer is not an error.
func (s *SessionService) ReadLoop() error {
	var writeErr error

	err := s.ws.Read(func(messageType int, p []byte) {
		if writeErr != nil {
			return
		}

		req, err := internal.NewRequest(p)
		if err != nil {
			s.logger.Error().Err(err).Bytes("data", p).Msg("unparsable request data, skipping")
			writeErr = s.reply(internal.Response{Error: err.Error()})
			return
		}

		resp, err := s.processor.Process(req)
		if err != nil {
			resp.Error = err.Error()
		}
		writeErr = s.reply(resp)
	})

	if writeErr != nil {
		return writeErr
	}
	if internal.IsClosed(err) {
		return nil
	}
	return err
}

func (s *SessionService) reply(resp internal.Response) error {
	data, err := json.Marshal(&resp)
	if err != nil {
		return err
	}
	if err := s.ws.Write(data); err != nil {
		s.logger.Error().Err(err).Msg("failed to write response")
		return err
	}
	return nil
}
