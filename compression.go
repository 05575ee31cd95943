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
	"compress/zlib"
	"fmt"
	"io"
)

// CompressionMode selects how a gateway connection decompresses inbound
// binary frames (spec.md §4.G).
type CompressionMode int

const (
	// CompressionNone disables compression; frames are already JSON text.
	CompressionNone CompressionMode = iota
	// CompressionPerPayload treats every binary frame as an independent
	// zlib stream.
	CompressionPerPayload
	// CompressionStream spans a single zlib inflate context across the
	// whole connection, with frames delimited by the `00 00 FF FF`
	// deflate empty-block marker.
	CompressionStream
)

var zlibFlushMarker = []byte{0x00, 0x00, 0xff, 0xff}

// inflater decompresses inbound gateway frames per the configured mode.
type inflater struct {
	mode CompressionMode

	// streamBuf accumulates bytes for CompressionStream until the flush
	// marker is seen.
	streamBuf bytes.Buffer
	streamZR  io.ReadCloser
}

// newInflater builds an inflater for the given mode.
func newInflater(mode CompressionMode) *inflater {
	return &inflater{mode: mode}
}

// Inflate consumes one inbound binary frame and returns a complete
// message, if the frame completed one. ok is false when frame is a
// partial stream chunk awaiting the flush marker.
func (z *inflater) Inflate(frame []byte) (message []byte, ok bool, err error) {
	switch z.mode {
	case CompressionNone:
		return frame, true, nil
	case CompressionPerPayload:
		return z.inflatePerPayload(frame)
	case CompressionStream:
		return z.inflateStream(frame)
	default:
		return nil, false, fmt.Errorf("corvus: unknown compression mode %d", z.mode)
	}
}

func (z *inflater) inflatePerPayload(frame []byte) ([]byte, bool, error) {
	zr, err := zlib.NewReader(bytes.NewReader(frame))
	if err != nil {
		return nil, false, fmt.Errorf("corvus: per-payload zlib inflate failed: %w", err)
	}
	defer zr.Close()
	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, false, fmt.Errorf("corvus: per-payload zlib read failed: %w", err)
	}
	return out, true, nil
}

func (z *inflater) inflateStream(frame []byte) ([]byte, bool, error) {
	z.streamBuf.Write(frame)

	buffered := z.streamBuf.Bytes()
	if len(buffered) < 4 || !bytes.Equal(buffered[len(buffered)-4:], zlibFlushMarker) {
		return nil, false, nil
	}

	if z.streamZR == nil {
		zr, err := zlib.NewReader(&z.streamBuf)
		if err != nil {
			return nil, false, fmt.Errorf("corvus: stream zlib init failed: %w", err)
		}
		z.streamZR = zr
	}

	out, err := io.ReadAll(z.streamZR)
	if err != nil {
		return nil, false, fmt.Errorf("corvus: stream zlib inflate failed: %w", err)
	}
	z.streamBuf.Reset()
	return out, true, nil
}

// Close releases the stream inflate context, if one was opened.
func (z *inflater) Close() error {
	if z.streamZR != nil {
		return z.streamZR.Close()
	}
	return nil
}
