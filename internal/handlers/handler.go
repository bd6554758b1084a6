// Copyright 2025 The Cstring Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/KirilStrezikozin/cstring/internal"
	"github.com/KirilStrezikozin/cstring/internal/services"
	"github.com/rs/zerolog"
)

// MaxRequestSize bounds the body of a process request.
const MaxRequestSize = internal.WebSocketReadLimit

type Handler struct {
	logger    zerolog.Logger
	processor internal.IProcessor
}

func New(logger zerolog.Logger, processor internal.IProcessor) *Handler {
	return &Handler{
		logger:    logger,
		processor: processor,
	}
}

// WebSocket upgrades the connection and serves requests over it until the
// client goes away.
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	conn := internal.NewWebSocketConn(h.logger)
	if err := conn.Accept(w, r); err != nil {
		h.logger.Error().Err(err).Msg("failed to accept websocket connection")
		return
	}
	defer conn.Close()

	session := services.NewSessionService(conn, h.processor, h.logger)
	if err := session.ReadLoop(); err != nil {
		h.logger.Error().Err(err).Msg("websocket session ended")
	}
}

// Process runs the Request in the body and replies with its Response.
func (h *Handler) Process(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxRequestSize))
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to read request body")
		h.writeResponse(w, http.StatusRequestEntityTooLarge, internal.Response{Error: err.Error()})
		return
	}

	req, err := internal.NewRequest(body)
	if err != nil {
		h.writeResponse(w, http.StatusBadRequest, internal.Response{Error: err.Error()})
		return
	}

	resp, err := h.processor.Process(req)
	if err != nil {
		resp.Error = err.Error()
		status := http.StatusUnprocessableEntity
		if errors.Is(err, internal.ErrUnknownOp) || errors.Is(err, internal.ErrInvalidRequest) {
			status = http.StatusBadRequest
		}
		h.writeResponse(w, status, resp)
		return
	}

	h.writeResponse(w, http.StatusOK, resp)
}

func (h *Handler) writeResponse(w http.ResponseWriter, status int, resp internal.Response) {
	data, err := json.Marshal(&resp)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to marshal response")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		h.logger.Error().Err(err).Msg("failed to write response")
	}
}
