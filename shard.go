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
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/url"
	"time"
)

const (
	gatewayVersion = "10"
)

// GatewayState is the shard's current connection-lifecycle state
// (spec.md §4.H).
type GatewayState int

const (
	GatewayStateDisconnected GatewayState = iota
	GatewayStateConnecting
	GatewayStateAwaitingHello
	GatewayStateIdentifying
	GatewayStateResuming
	GatewayStateReady
	GatewayStateReconnecting
	GatewayStateFatal
)

func (s GatewayState) String() string {
	switch s {
	case GatewayStateDisconnected:
		return "Disconnected"
	case GatewayStateConnecting:
		return "Connecting"
	case GatewayStateAwaitingHello:
		return "AwaitingHello"
	case GatewayStateIdentifying:
		return "Identifying"
	case GatewayStateResuming:
		return "Resuming"
	case GatewayStateReady:
		return "Ready"
	case GatewayStateReconnecting:
		return "Reconnecting"
	case GatewayStateFatal:
		return "Fatal"
	default:
		return "Unknown"
	}
}

// EventCallback is invoked synchronously for every opcode-0 dispatch
// received on a shard's connection, identifying which shard produced it.
type EventCallback func(shardID int, eventType string, raw json.RawMessage)

// StateCallback is invoked synchronously on every gateway state
// transition.
type StateCallback func(newState GatewayState, detail string)

// ShardConfig configures a single gateway connection.
type ShardConfig struct {
	Token          string
	Intents        int
	ShardID        int
	ShardCount     int
	LargeThreshold int
	UserAgent      string
	Properties     IdentifyProperties

	Compression CompressionMode

	HeartbeatTimeout time.Duration
	ConnectTimeout   time.Duration

	IdentifyLimiter ShardsIdentifyRateLimiter

	Transport WebSocketTransport
	Clock     Clock
	Logger    Logger

	OnEvent EventCallback
	OnState StateCallback
}

// Shard is a single cooperative gateway connection. All frame I/O,
// heartbeat scheduling, and callback invocation happen on whichever
// goroutine calls Process — corvus never spawns a reader goroutine per
// shard, unlike a push-model client would.
type Shard struct {
	cfg       ShardConfig
	transport WebSocketTransport
	clock     Clock
	logger    Logger
	inflater  *inflater

	conn  WebSocketConn
	state GatewayState

	sessionID  string
	resumeURL  string
	lastSeq    int64
	gatewayURL string

	heartbeatInterval time.Duration
	nextHeartbeatAt   time.Time
	lastHeartbeatSent time.Time
	awaitingAck       bool
	latency           time.Duration

	reconnectAttempt int
	reconnectWaitTil time.Time
}

// NewShard builds a Shard from cfg, filling unset fields with defaults.
func NewShard(cfg ShardConfig) *Shard {
	if cfg.Transport == nil {
		cfg.Transport = NewDefaultWebSocketTransport()
	}
	if cfg.Clock == nil {
		cfg.Clock = NewRealClock()
	}
	if cfg.Logger == nil {
		cfg.Logger = noopLogger{}
	}
	if cfg.HeartbeatTimeout <= 0 {
		cfg.HeartbeatTimeout = 5 * time.Second
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = 10 * time.Second
	}
	if cfg.IdentifyLimiter == nil {
		cfg.IdentifyLimiter = NewDefaultShardsRateLimiter(1, time.Second)
	}
	return &Shard{
		cfg:       cfg,
		transport: cfg.Transport,
		clock:     cfg.Clock,
		logger:    cfg.Logger.WithField("shard_id", cfg.ShardID),
		inflater:  newInflater(cfg.Compression),
		state:     GatewayStateDisconnected,
	}
}

// State returns the shard's current lifecycle state.
func (s *Shard) State() GatewayState { return s.state }

// Latency returns the last measured heartbeat round-trip time.
func (s *Shard) Latency() time.Duration { return s.latency }

func (s *Shard) setState(state GatewayState, detail string) {
	s.state = state
	if s.cfg.OnState != nil {
		s.cfg.OnState(state, detail)
	}
}

// Connect opens a connection to url, appending the version/encoding/
// compression query parameters. The handshake completes asynchronously
// as subsequent Process calls observe Hello, then READY or RESUMED.
func (s *Shard) Connect(ctx context.Context, gwURL string) error {
	s.setState(GatewayStateConnecting, "")
	s.gatewayURL = gwURL

	connURL := s.buildConnectURL(gwURL)
	dialCtx, cancel := context.WithTimeout(ctx, s.cfg.ConnectTimeout)
	defer cancel()

	conn, err := s.transport.Dial(dialCtx, connURL)
	if err != nil {
		s.setState(GatewayStateDisconnected, err.Error())
		return err
	}
	s.conn = conn
	s.inflater = newInflater(s.cfg.Compression)
	s.setState(GatewayStateAwaitingHello, "")
	return nil
}

// buildConnectURL appends v/encoding/compress query parameters, whether
// rawURL is a fresh gateway endpoint or a session's resume_gateway_url.
func (s *Shard) buildConnectURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := parsed.Query()
	if q.Get("v") == "" {
		q.Set("v", gatewayVersion)
	}
	if q.Get("encoding") == "" {
		q.Set("encoding", "json")
	}
	if s.cfg.Compression == CompressionStream && q.Get("compress") == "" {
		q.Set("compress", "zlib-stream")
	}
	parsed.RawQuery = q.Encode()
	return parsed.String()
}

// Process drives one or more frames up to timeout and never blocks
// longer than that. It must be called again after every return.
func (s *Shard) Process(timeout time.Duration) Status {
	if s.state == GatewayStateFatal {
		return StatusInvalidState
	}
	if !s.reconnectWaitTil.IsZero() && s.clock.Now().Before(s.reconnectWaitTil) {
		return StatusTryAgain
	}
	if s.conn == nil {
		return StatusInvalidState
	}

	if s.heartbeatIntervalKnown() && !s.clock.Now().Before(s.nextHeartbeatAt) {
		return s.tickHeartbeat()
	}

	readTimeout := timeout
	if s.heartbeatIntervalKnown() {
		if untilHB := s.nextHeartbeatAt.Sub(s.clock.Now()); untilHB < readTimeout {
			readTimeout = untilHB
		}
	}
	if readTimeout < 0 {
		readTimeout = 0
	}

	ctx, cancel := context.WithTimeout(context.Background(), readTimeout)
	defer cancel()

	opcode, data, err := s.conn.ReadMessage(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return StatusTimeout
		}
		return s.handleTransportError(err)
	}

	switch opcode {
	case WebSocketOpcodeClose:
		return s.handleClose(parseCloseCode(data))
	case WebSocketOpcodePing, WebSocketOpcodePong:
		return StatusOK
	default:
		message, complete, err := s.inflater.Inflate(data)
		if err != nil {
			s.setState(GatewayStateFatal, err.Error())
			return StatusWebSocket
		}
		if !complete {
			return StatusOK
		}
		return s.handlePayload(message)
	}
}

func (s *Shard) heartbeatIntervalKnown() bool {
	return s.heartbeatInterval > 0 && !s.nextHeartbeatAt.IsZero()
}

func (s *Shard) tickHeartbeat() Status {
	if s.awaitingAck {
		s.logger.Warn("heartbeat ack missed, reconnecting")
		return s.closeForReconnect(CloseSessionTimedOut, true)
	}
	if err := s.sendHeartbeat(); err != nil {
		return s.handleTransportError(err)
	}
	s.lastHeartbeatSent = s.clock.Now()
	s.awaitingAck = true
	s.nextHeartbeatAt = s.clock.Now().Add(s.heartbeatInterval)
	return StatusOK
}

func (s *Shard) handlePayload(raw []byte) Status {
	var payload GatewayPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return StatusBadFormat
	}
	if payload.S != nil {
		s.lastSeq = *payload.S
	}

	switch payload.Op {
	case OpDispatch:
		if payload.T != nil {
			s.handleDispatch(*payload.T, payload.D)
		}
		return StatusOK

	case OpReconnect:
		return s.closeForReconnect(CloseUnknownError, true)

	case OpInvalidSession:
		var resumable bool
		json.Unmarshal(payload.D, &resumable)
		jitter := time.Duration(1000+rand.IntN(4000)) * time.Millisecond
		status := s.closeForReconnect(CloseUnknownError, resumable)
		if until := s.clock.Now().Add(jitter); until.After(s.reconnectWaitTil) {
			s.reconnectWaitTil = until
		}
		return status

	case OpHello:
		var hello helloPayload
		json.Unmarshal(payload.D, &hello)
		s.heartbeatInterval = time.Duration(hello.HeartbeatIntervalMs) * time.Millisecond
		jitter := time.Duration(rand.Float64() * float64(s.heartbeatInterval))
		s.nextHeartbeatAt = s.clock.Now().Add(jitter)

		if s.sessionID != "" && s.lastSeq > 0 {
			s.setState(GatewayStateResuming, "")
			if err := s.sendResume(); err != nil {
				return s.handleTransportError(err)
			}
		} else {
			s.setState(GatewayStateIdentifying, "")
			s.cfg.IdentifyLimiter.Wait()
			if err := s.sendIdentify(); err != nil {
				return s.handleTransportError(err)
			}
		}
		return StatusOK

	case OpHeartbeatAck:
		s.awaitingAck = false
		if !s.lastHeartbeatSent.IsZero() {
			s.latency = s.clock.Now().Sub(s.lastHeartbeatSent)
		}
		return StatusOK

	case OpHeartbeat:
		if err := s.sendHeartbeat(); err != nil {
			return s.handleTransportError(err)
		}
		return StatusOK

	default:
		return StatusOK
	}
}

func (s *Shard) handleDispatch(eventType string, data json.RawMessage) {
	if eventType == "READY" {
		var ready readyPayload
		json.Unmarshal(data, &ready)
		s.sessionID = ready.SessionID
		s.resumeURL = ready.ResumeGatewayURL
		s.setState(GatewayStateReady, "READY")
	} else if eventType == "RESUMED" {
		s.setState(GatewayStateReady, "RESUMED")
	}
	if s.cfg.OnEvent != nil {
		s.cfg.OnEvent(s.cfg.ShardID, eventType, data)
	}
}

func (s *Shard) sendIdentify() error {
	payload := buildIdentifyPayload(s.cfg.Token, s.cfg.Intents, s.cfg.ShardID, s.cfg.ShardCount,
		s.cfg.LargeThreshold, s.cfg.Properties, s.cfg.Compression != CompressionNone)
	return s.conn.WriteMessage(context.Background(), payload)
}

func (s *Shard) sendResume() error {
	payload := buildResumePayload(s.cfg.Token, s.sessionID, s.lastSeq)
	return s.conn.WriteMessage(context.Background(), payload)
}

func (s *Shard) sendHeartbeat() error {
	payload := buildHeartbeatPayload(s.lastSeq)
	return s.conn.WriteMessage(context.Background(), payload)
}

// UpdatePresence sends an outbound presence update. Only valid in Ready.
func (s *Shard) UpdatePresence(p PresenceUpdate) error {
	if s.state != GatewayStateReady {
		return fmt.Errorf("corvus: UpdatePresence requires Ready state, got %s", s.state)
	}
	return s.conn.WriteMessage(context.Background(), buildPresenceUpdatePayload(p))
}

// UpdateVoiceState sends an outbound voice state update. Only valid in
// Ready.
func (s *Shard) UpdateVoiceState(v VoiceStateUpdateRequest) error {
	if s.state != GatewayStateReady {
		return fmt.Errorf("corvus: UpdateVoiceState requires Ready state, got %s", s.state)
	}
	return s.conn.WriteMessage(context.Background(), buildVoiceStateUpdatePayload(v))
}

// RequestGuildMembers sends an outbound guild member request. Only valid
// in Ready.
func (s *Shard) RequestGuildMembers(req RequestGuildMembersRequest) error {
	if s.state != GatewayStateReady {
		return fmt.Errorf("corvus: RequestGuildMembers requires Ready state, got %s", s.state)
	}
	return s.conn.WriteMessage(context.Background(), buildRequestGuildMembersPayload(req))
}

// RequestSoundboardSounds sends an outbound soundboard-sounds request.
// Only valid in Ready.
func (s *Shard) RequestSoundboardSounds(req RequestSoundboardSoundsRequest) error {
	if s.state != GatewayStateReady {
		return fmt.Errorf("corvus: RequestSoundboardSounds requires Ready state, got %s", s.state)
	}
	return s.conn.WriteMessage(context.Background(), buildRequestSoundboardSoundsPayload(req))
}

func (s *Shard) handleTransportError(err error) Status {
	s.logger.Warn("transport error: " + err.Error())
	return s.closeForReconnect(CloseUnknownError, true)
}

// handleClose classifies an observed close code and transitions state
// accordingly.
func (s *Shard) handleClose(code int) Status {
	switch classifyCloseCode(code) {
	case CloseClassFatal:
		s.setState(GatewayStateFatal, fmt.Sprintf("fatal close code %d", code))
		return StatusInvalidState
	case CloseClassReconnectFresh:
		return s.closeForReconnect(code, false)
	default:
		return s.closeForReconnect(code, true)
	}
}

// closeForReconnect tears down the current connection and schedules a
// reconnect attempt with exponential backoff, preserving or dropping
// session state per keepSession.
func (s *Shard) closeForReconnect(code int, keepSession bool) Status {
	if !keepSession {
		s.sessionID = ""
		s.lastSeq = 0
	}
	if s.conn != nil {
		s.conn.Close(code, "")
		s.conn = nil
	}
	s.awaitingAck = false
	s.heartbeatInterval = 0
	s.nextHeartbeatAt = time.Time{}

	wait := backoffDuration(s.reconnectAttempt)
	s.reconnectAttempt++
	s.reconnectWaitTil = s.clock.Now().Add(wait)
	s.setState(GatewayStateReconnecting, fmt.Sprintf("reconnecting in %s", wait))
	return StatusTryAgain
}

// ReconnectReady reports whether enough backoff time has elapsed to
// attempt Connect again, and the URL to connect to (resume URL if one
// survived, else the original gateway URL).
func (s *Shard) ReconnectReady() (ready bool, gwURL string) {
	if s.clock.Now().Before(s.reconnectWaitTil) {
		return false, ""
	}
	s.reconnectAttempt = 0
	if s.resumeURL != "" && s.sessionID != "" {
		return true, s.resumeURL
	}
	return true, s.gatewayURL
}

func backoffDuration(attempt int) time.Duration {
	base := time.Second
	maxWait := 60 * time.Second
	d := base << attempt
	if d <= 0 || time.Duration(d) > maxWait {
		return maxWait
	}
	return time.Duration(d)
}

func parseCloseCode(data []byte) int {
	if len(data) < 2 {
		return CloseUnknownError
	}
	return int(data[0])<<8 | int(data[1])
}

// Shutdown closes the shard's connection without scheduling a reconnect.
func (s *Shard) Shutdown() error {
	s.setState(GatewayStateDisconnected, "shutdown")
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close(1000, "shutdown")
	s.conn = nil
	return err
}
