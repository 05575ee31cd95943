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
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
)

// HTTPRequest is the transport-agnostic shape the REST engine hands to an
// HTTPTransport.
type HTTPRequest struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    []byte
}

// HTTPResponse is what an HTTPTransport returns. Body is read and closed
// by the caller.
type HTTPResponse struct {
	StatusCode int
	Header     http.Header
	Body       io.ReadCloser
}

// HTTPTransport is the seam the REST engine calls through. Tests provide
// fakes; production uses the default net/http-backed implementation.
type HTTPTransport interface {
	Do(ctx context.Context, req HTTPRequest) (*HTTPResponse, error)
}

// defaultHTTPTransport wraps an *http.Client tuned the way a long-lived
// client SDK should be: generous idle-connection reuse, HTTP/2 preferred.
type defaultHTTPTransport struct {
	client *http.Client
}

// NewDefaultHTTPTransport builds the default HTTPTransport. Passing nil
// builds a client tuned for sustained concurrent REST traffic.
func NewDefaultHTTPTransport(client *http.Client) HTTPTransport {
	if client == nil {
		client = &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,

				MaxIdleConns:        500,
				MaxIdleConnsPerHost: 100,
				MaxConnsPerHost:     200,

				IdleConnTimeout:       120 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,

				DisableKeepAlives: false,
				ForceAttemptHTTP2: true,
			},
		}
	}
	return &defaultHTTPTransport{client: client}
}

func (t *defaultHTTPTransport) Do(ctx context.Context, req HTTPRequest) (*HTTPResponse, error) {
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, bytes.NewReader(req.Body))
	if err != nil {
		return nil, err
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	return &HTTPResponse{StatusCode: resp.StatusCode, Header: resp.Header, Body: resp.Body}, nil
}

// WebSocketTransport is the seam the gateway state machine calls through.
type WebSocketTransport interface {
	// Dial opens a connection to url and returns a live WebSocketConn.
	Dial(ctx context.Context, url string) (WebSocketConn, error)
}

// WebSocketConn is a single open gateway connection.
type WebSocketConn interface {
	// ReadMessage blocks until a frame arrives, ctx is done, or the
	// connection closes. opcode reports binary vs text vs close.
	ReadMessage(ctx context.Context) (opcode WebSocketOpcode, data []byte, err error)
	WriteMessage(ctx context.Context, data []byte) error
	Close(code int, reason string) error
}

// WebSocketOpcode classifies an inbound WebSocket frame.
type WebSocketOpcode int

const (
	WebSocketOpcodeText WebSocketOpcode = iota
	WebSocketOpcodeBinary
	WebSocketOpcodeClose
	WebSocketOpcodePing
	WebSocketOpcodePong
)

// JSONCodec abstracts JSON encode/decode so the engine doesn't hardcode a
// single library at every call site. The default implementation is backed
// by sonic.
type JSONCodec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

type sonicCodec struct{}

// NewDefaultJSONCodec returns the sonic-backed JSONCodec. The REST engine
// decodes API error bodies with it; the resource wrappers decode their
// responses with encoding/json.
func NewDefaultJSONCodec() JSONCodec { return sonicCodec{} }

func (sonicCodec) Marshal(v any) ([]byte, error)          { return sonic.Marshal(v) }
func (sonicCodec) Unmarshal(data []byte, v any) error     { return sonic.Unmarshal(data, v) }

// Clock is the wall-clock seam used by the ledger and gateway heartbeat
// scheduling so tests can control time deterministically.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type realClock struct{}

// NewRealClock returns the production Clock backed by time.Now/time.Sleep.
func NewRealClock() Clock { return realClock{} }

func (realClock) Now() time.Time     { return time.Now() }
func (realClock) Sleep(d time.Duration) { time.Sleep(d) }
