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
	"io"
	"runtime"
	"strings"
	"time"
)

// ClientConfig configures a Client. Zero values pick the same defaults
// NewRestEngine and NewShardManager already apply.
type ClientConfig struct {
	Token      string
	AuthScheme AuthScheme
	Intents    GatewayIntent

	// TotalShards forces a specific shard count; 0 uses the platform's
	// recommended count from GET /gateway/bot.
	TotalShards int
	// ShardIDs restricts this process to a subset of shards (clustering).
	// Empty manages every shard in [0, TotalShards).
	ShardIDs []int

	Compression     CompressionMode
	Properties      IdentifyProperties
	IdentifyLimiter ShardsIdentifyRateLimiter

	HTTPTransport    HTTPTransport
	WSTransport      WebSocketTransport
	Clock            Clock
	Logger           Logger
	RestEngineConfig RestEngineConfig

	OnEvent EventCallback
	OnState func(shardID int, state GatewayState, detail string)
}

// Client is the facade spec.md §4.J describes: it owns exactly one REST
// engine and one gateway (here, a ShardManager fronting one or more
// shards), and wires startup discovery between them.
type Client struct {
	cfg        ClientConfig
	logger     Logger
	rest       *RestEngine
	dispatcher *Dispatcher
	shards     *ShardManager
}

// NewClient builds a Client. It performs no I/O; call Start to connect.
func NewClient(cfg ClientConfig) *Client {
	cfg.Token = strings.TrimPrefix(cfg.Token, "Bot ")
	cfg.Token = strings.TrimPrefix(cfg.Token, "Bearer ")

	if cfg.Logger == nil {
		cfg.Logger = noopLogger{}
	}
	if cfg.Properties.OS == "" {
		cfg.Properties.OS = runtime.GOOS
	}
	if cfg.Properties.Browser == "" {
		cfg.Properties.Browser = "corvus"
	}
	if cfg.Properties.Device == "" {
		cfg.Properties.Device = "corvus"
	}

	rcfg := cfg.RestEngineConfig
	rcfg.Token = cfg.Token
	rcfg.AuthScheme = cfg.AuthScheme
	rcfg.Logger = cfg.Logger
	if cfg.HTTPTransport != nil {
		rcfg.Transport = cfg.HTTPTransport
	}
	if cfg.Clock != nil {
		rcfg.Clock = cfg.Clock
	}

	return &Client{
		cfg:        cfg,
		logger:     cfg.Logger,
		rest:       NewRestEngine(rcfg),
		dispatcher: NewDispatcher(cfg.Logger),
	}
}

// Dispatcher returns the event dispatcher handlers register against.
func (c *Client) Dispatcher() *Dispatcher {
	return c.dispatcher
}

// REST returns the REST engine backing this Client. Every typed resource
// wrapper in component K (FetchChannel, CreateMessage, FetchCurrentUser,
// and the rest of spec.md §6's families) is a method on *RestEngine, so
// this is how an embedder reaches them: client.REST().CreateMessage(...).
func (c *Client) REST() *RestEngine {
	return c.rest
}

// Rest issues a raw request through the REST engine, bypassing typed
// resource wrappers. Prefer REST()'s typed methods; this exists for
// endpoints component K does not yet wrap.
func (c *Client) Rest(req Request) Result[[]byte] {
	res := c.rest.Execute(req)
	if res.IsErr() {
		return Err[[]byte](res.Err())
	}
	body := res.Value()
	defer body.Close()
	data, err := io.ReadAll(body)
	if err != nil {
		return Err[[]byte](&APIError{Status: StatusNetwork, Message: err.Error()})
	}
	return Ok(data)
}

// Start fetches gateway connection info, builds the shard set, and
// connects every shard this process owns (spec.md §4.J). It does not
// block; call Process in a loop afterward to drive the connection.
func (c *Client) Start(ctx context.Context) error {
	endpoint := "/gateway/bot"
	if c.cfg.AuthScheme == AuthSchemeBearer {
		endpoint = "/gateway"
	}

	res := c.rest.Execute(Request{Method: "GET", URL: endpoint})
	if res.IsErr() {
		return res.Err()
	}
	body := res.Value()
	defer body.Close()
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}

	var gwURL string
	totalShards := c.cfg.TotalShards
	var maxConcurrency int

	if c.cfg.AuthScheme == AuthSchemeBearer {
		var info gatewayInfo
		if err := info.fillFromJSON(data); err != nil {
			return err
		}
		gwURL = info.URL
		if totalShards <= 0 {
			totalShards = 1
		}
	} else {
		var info gatewayBotInfo
		if err := info.fillFromJSON(data); err != nil {
			return err
		}
		gwURL = info.URL
		if totalShards <= 0 {
			totalShards = info.Shards
		}
		maxConcurrency = info.SessionStartLimit.MaxConcurrency
	}

	limiter := c.cfg.IdentifyLimiter
	if limiter == nil {
		if maxConcurrency <= 0 {
			maxConcurrency = 1
		}
		limiter = NewDefaultShardsRateLimiter(maxConcurrency, 5*time.Second)
	}

	c.shards = NewShardManager(ShardManagerConfig{
		TotalShards:     totalShards,
		ShardIDs:        c.cfg.ShardIDs,
		Token:           c.cfg.Token,
		Intents:         int(c.cfg.Intents),
		Properties:      c.cfg.Properties,
		Compression:     c.cfg.Compression,
		IdentifyLimiter: limiter,
		Transport:       c.cfg.WSTransport,
		Clock:           c.cfg.Clock,
		Logger:          c.cfg.Logger,
		OnEvent:         c.wrapOnEvent(),
		OnState:         c.cfg.OnState,
	})

	return c.shards.Start(ctx, gwURL)
}

// wrapOnEvent routes every raw dispatch through the Client's Dispatcher
// in addition to any caller-supplied OnEvent callback.
func (c *Client) wrapOnEvent() EventCallback {
	return func(shardID int, eventType string, raw json.RawMessage) {
		c.dispatcher.Dispatch(shardID, eventType, raw)
		if c.cfg.OnEvent != nil {
			c.cfg.OnEvent(shardID, eventType, raw)
		}
	}
}

// Process cooperatively drives every owned shard once, per spec.md
// §4.J ("Process(timeout): delegates to the gateway").
func (c *Client) Process(timeout time.Duration) Status {
	if c.shards == nil {
		return StatusInvalidState
	}
	return c.shards.ProcessAll(context.Background(), timeout)
}

// Stop disconnects the gateway by shutting down every shard. The REST
// engine and its transport are left open.
func (c *Client) Stop() {
	if c.shards != nil {
		c.shards.Shutdown()
		c.shards = nil
	}
}

