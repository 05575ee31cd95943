/************************************************************************************
 *
 * corvus, a lightweight Go client SDK for a hosted chat platform
 *
 * SPDX-License-Identifier: BSD-3-Clause
 *
 * Copyright 2026 corvus contributors
 *
 * Licensed under the BSD 3-Clause License.
 * See the LICENSE file for details.
 *
 ************************************************************************************/

package corvus

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
)

// defaultWebSocketTransport dials gateway connections with gobwas/ws, the
// same library the teacher's shard used directly.
type defaultWebSocketTransport struct {
	dialer ws.Dialer
}

// NewDefaultWebSocketTransport returns the gobwas/ws-backed
// WebSocketTransport corvus uses in production.
func NewDefaultWebSocketTransport() WebSocketTransport {
	return &defaultWebSocketTransport{}
}

func (t *defaultWebSocketTransport) Dial(ctx context.Context, url string) (WebSocketConn, error) {
	conn, _, _, err := t.dialer.Dial(ctx, url)
	if err != nil {
		return nil, err
	}
	return &wsConn{conn: conn}, nil
}

// wsConn adapts a gobwas/ws net.Conn to the corvus WebSocketConn seam.
type wsConn struct {
	conn net.Conn
}

func (c *wsConn) ReadMessage(ctx context.Context) (WebSocketOpcode, []byte, error) {
	if deadline, ok := ctx.Deadline(); ok {
		c.conn.SetReadDeadline(deadline)
	} else {
		c.conn.SetReadDeadline(time.Time{})
	}

	msg, op, err := wsutil.ReadServerData(c.conn)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeoutErr(err) {
			return 0, nil, context.DeadlineExceeded
		}
		return 0, nil, err
	}

	switch op {
	case ws.OpText:
		return WebSocketOpcodeText, msg, nil
	case ws.OpBinary:
		return WebSocketOpcodeBinary, msg, nil
	case ws.OpClose:
		return WebSocketOpcodeClose, msg, nil
	case ws.OpPing:
		_ = wsutil.WriteClientMessage(c.conn, ws.OpPong, msg)
		return WebSocketOpcodePing, msg, nil
	case ws.OpPong:
		return WebSocketOpcodePong, msg, nil
	default:
		return WebSocketOpcodeBinary, msg, nil
	}
}

func (c *wsConn) WriteMessage(ctx context.Context, data []byte) error {
	if deadline, ok := ctx.Deadline(); ok {
		c.conn.SetWriteDeadline(deadline)
	}
	return wsutil.WriteClientMessage(c.conn, ws.OpText, data)
}

func (c *wsConn) Close(code int, reason string) error {
	body := make([]byte, 2+len(reason))
	body[0] = byte(code >> 8)
	body[1] = byte(code)
	copy(body[2:], reason)
	_ = wsutil.WriteClientMessage(c.conn, ws.OpClose, body)
	return c.conn.Close()
}

func isTimeoutErr(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	return false
}
