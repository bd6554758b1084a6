// Copyright 2025 The Cstring Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package internal

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	WebSocketReadLimit        = 1 << 14 // 16KB
	WebSocketHandshakeTimeout = 10 * time.Second
	WebSocketWriteTimeout     = 10 * time.Second
)

type WebSocketError struct {
	Op  string
	Err error
}

func (e *WebSocketError) Error() string {
	return fmt.Sprintf("websocket %s error: %v", e.Op, e.Err)
}

func (e *WebSocketError) Unwrap() error {
	return e.Err
}

// IsClosed reports whether err ends a read loop because the peer closed the
// connection normally.
func IsClosed(err error) bool {
	var closeErr *websocket.CloseError
	if !errors.As(err, &closeErr) {
		return false
	}
	return closeErr.Code == websocket.CloseNormalClosure ||
		closeErr.Code == websocket.CloseGoingAway
}

type IWebSocketControl interface {
	Dial(urlStr string) error
	Close() error
}

type IWebSocketReader interface {
	Read(onRead func(messageType int, p []byte)) error
}

type IWebSocketWriter interface {
	Write(p []byte) error
}

type IWebSocketReadWriter interface {
	IWebSocketReader
	IWebSocketWriter
}

// XXX: WebSocketConn is not inherently thread-safe.
type WebSocketConn struct {
	conn *websocket.Conn

	logger zerolog.Logger

	HandshakeTimeout time.Duration
	WriteTimeout     time.Duration
	ReadLimit        int64
}

func NewWebSocketConn(parentLogger zerolog.Logger) *WebSocketConn {
	logger := parentLogger.
		With().
		Str("component", "websocket").
		Logger()

	return &WebSocketConn{
		logger: logger,

		HandshakeTimeout: WebSocketHandshakeTimeout,
		WriteTimeout:     WebSocketWriteTimeout,
		ReadLimit:        WebSocketReadLimit,
	}
}

// Dial connects to a server as a client.
func (c *WebSocketConn) Dial(urlStr string) error {
	if c.conn != nil {
		return &WebSocketError{Op: "dial", Err: ErrConnectionAlreadyEstablished}
	}

	dialer := websocket.Dialer{
		HandshakeTimeout: c.HandshakeTimeout,
	}

	conn, _, err := dialer.Dial(urlStr, nil)
	if err != nil {
		return &WebSocketError{Op: "dial", Err: err}
	}
	c.setConn(conn)

	c.logger.Debug().Str("server", urlStr).Msg("connection established")
	return nil
}

// Accept upgrades an HTTP request to a server side connection. On failure
// the upgrader has already replied to the client.
func (c *WebSocketConn) Accept(w http.ResponseWriter, r *http.Request) error {
	if c.conn != nil {
		return &WebSocketError{Op: "accept", Err: ErrConnectionAlreadyEstablished}
	}

	upgrader := websocket.Upgrader{HandshakeTimeout: c.HandshakeTimeout}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return &WebSocketError{Op: "accept", Err: err}
	}
	c.setConn(conn)

	c.logger.Debug().Str("client", r.RemoteAddr).Msg("connection accepted")
	return nil
}

func (c *WebSocketConn) setConn(conn *websocket.Conn) {
	c.conn = conn
	c.conn.SetReadLimit(c.ReadLimit)
	c.conn.SetPingHandler(nil) // enable default ping handler
}

// ReadMessage blocks until the next message arrives.
func (c *WebSocketConn) ReadMessage() (int, []byte, error) {
	if c.conn == nil {
		return 0, nil, &WebSocketError{Op: "read", Err: ErrNilConnection}
	}

	messageType, p, err := c.conn.ReadMessage()
	if err != nil {
		return 0, nil, &WebSocketError{Op: "read", Err: err}
	}
	return messageType, p, nil
}

// Read calls onRead for every message until reading fails.
func (c *WebSocketConn) Read(onRead func(messageType int, p []byte)) error {
	if c.conn == nil {
		return &WebSocketError{Op: "read", Err: ErrNilConnection}
	}

	urlStr := c.conn.RemoteAddr().String()

	for {
		messageType, p, err := c.ReadMessage()
		if err != nil {
			return err
		}

		c.logger.Debug().Str("peer", urlStr).Msg("message received")
		onRead(messageType, p)
	}
}

func (c *WebSocketConn) Write(p []byte) error {
	if c.conn == nil {
		return &WebSocketError{Op: "write", Err: ErrNilConnection}
	}

	c.conn.SetWriteDeadline(time.Now().Add(c.WriteTimeout))
	if err := c.conn.WriteMessage(websocket.TextMessage, p); err != nil {
		return &WebSocketError{Op: "write", Err: err}
	}
	return nil
}

func (c *WebSocketConn) Close() error {
	if c.conn == nil {
		return &WebSocketError{Op: "close", Err: ErrNilConnection}
	}

	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	c.conn.SetWriteDeadline(time.Now().Add(c.WriteTimeout))
	if err := c.conn.WriteMessage(websocket.CloseMessage, msg); err != nil && !errors.Is(err, websocket.ErrCloseSent) {
		c.conn.Close()
		c.conn = nil
		return &WebSocketError{Op: "close", Err: err}
	}

	urlStr := c.conn.RemoteAddr().String()
	if err := c.conn.Close(); err != nil {
		return &WebSocketError{Op: "close", Err: err}
	}

	c.logger.Debug().Str("peer", urlStr).Msg("connection closed")
	c.conn = nil
	return nil
}
