// Copyright 2025 The Cstring Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package services

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/KirilStrezikozin/cstring/internal"
	"github.com/KirilStrezikozin/cstring/internal/types"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	in       [][]byte
	out      [][]byte
	endErr   error
	writeErr error
}

func (c *fakeConn) Read(onRead func(messageType int, p []byte)) error {
	for _, p := range c.in {
		onRead(websocket.TextMessage, p)
	}
	return c.endErr
}

func (c *fakeConn) Write(p []byte) error {
	if c.writeErr != nil {
		return c.writeErr
	}
	c.out = append(c.out, p)
	return nil
}

func newSession(conn *fakeConn) *SessionService {
	store := internal.NewStore(0, 0, zerolog.Nop())
	processor := internal.NewProcessor(internal.Config{}, store, zerolog.Nop())
	return NewSessionService(conn, processor, zerolog.Nop())
}

func decode(t *testing.T, p []byte) internal.Response {
	t.Helper()
	var resp internal.Response
	require.NoError(t, json.Unmarshal(p, &resp))
	return resp
}

func TestSessionService_ReadLoop(t *testing.T) {
	conn := &fakeConn{
		in: [][]byte{
			[]byte(`{"op": "split_byte", "input": "a_b", "sep": "_"}`),
			[]byte(`not json`),
			[]byte(`{"op": "slice", "input": "abc", "from": 2, "to": 1}`),
		},
		endErr: &internal.WebSocketError{
			Op:  "read",
			Err: &websocket.CloseError{Code: websocket.CloseNormalClosure},
		},
	}

	err := newSession(conn).ReadLoop()
	require.NoError(t, err)
	require.Len(t, conn.out, 3)

	first := decode(t, conn.out[0])
	assert.Equal(t, types.OpSplitByte, first.Op)
	assert.Equal(t, []string{"a", "b"}, first.Segments)
	assert.Empty(t, first.Error)

	assert.NotEmpty(t, decode(t, conn.out[1]).Error)

	third := decode(t, conn.out[2])
	assert.Equal(t, types.OpSlice, third.Op)
	assert.Contains(t, third.Error, "invalid range")
}

func TestSessionService_ReadLoopErrors(t *testing.T) {
	t.Run("abnormal close", func(t *testing.T) {
		conn := &fakeConn{endErr: &internal.WebSocketError{
			Op:  "read",
			Err: &websocket.CloseError{Code: websocket.CloseAbnormalClosure},
		}}
		assert.Error(t, newSession(conn).ReadLoop())
	})

	t.Run("write failure", func(t *testing.T) {
		writeErr := errors.New("broken pipe")
		conn := &fakeConn{
			in:       [][]byte{[]byte(`{"op": "hash", "input": "x"}`)},
			writeErr: writeErr,
		}
		assert.ErrorIs(t, newSession(conn).ReadLoop(), writeErr)
	})
}
