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
	"time"
)

// ShardsIdentifyRateLimiter paces Identify payloads across every shard a
// process manages, since the platform rate-limits Identify independently
// of ordinary REST traffic.
type ShardsIdentifyRateLimiter interface {
	// Wait blocks until the caller is allowed to send an Identify payload.
	Wait()
}

// DefaultShardsRateLimiter is a token-bucket ShardsIdentifyRateLimiter
// backed by a buffered channel refilled on a ticker.
type DefaultShardsRateLimiter struct {
	tokens chan struct{}
	stop   chan struct{}
}

var _ ShardsIdentifyRateLimiter = (*DefaultShardsRateLimiter)(nil)

// NewDefaultShardsRateLimiter builds a limiter allowing burst Identify
// sends up to capacity, refilled one token every interval.
func NewDefaultShardsRateLimiter(capacity int, interval time.Duration) *DefaultShardsRateLimiter {
	if capacity <= 0 {
		capacity = 1
	}
	rl := &DefaultShardsRateLimiter{
		tokens: make(chan struct{}, capacity),
		stop:   make(chan struct{}),
	}
	for range capacity {
		rl.tokens <- struct{}{}
	}
	go rl.refill(interval)
	return rl
}

func (rl *DefaultShardsRateLimiter) refill(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			select {
			case rl.tokens <- struct{}{}:
			default:
			}
		case <-rl.stop:
			return
		}
	}
}

// Wait blocks until an Identify token is available.
func (rl *DefaultShardsRateLimiter) Wait() {
	<-rl.tokens
}

// Close stops the limiter's refill goroutine.
func (rl *DefaultShardsRateLimiter) Close() {
	close(rl.stop)
}

// ShardManagerConfig configures a ShardManager.
type ShardManagerConfig struct {
	TotalShards int
	ShardIDs    []int // if empty, manages [0, TotalShards)

	Token       string
	Intents     int
	Properties  IdentifyProperties
	Compression CompressionMode

	IdentifyLimiter ShardsIdentifyRateLimiter
	Transport       WebSocketTransport
	Clock           Clock
	Logger          Logger

	OnEvent EventCallback
	OnState func(shardID int, state GatewayState, detail string)
}

// ShardManager owns every Shard a process runs, for both full-sharding
// (one process, many shards) and clustering (specific shard IDs per
// process) deployments.
type ShardManager struct {
	cfg    ShardManagerConfig
	shards []*Shard
}

// NewShardManager builds a ShardManager. It does not connect anything;
// call Start for that.
func NewShardManager(cfg ShardManagerConfig) *ShardManager {
	if cfg.IdentifyLimiter == nil {
		cfg.IdentifyLimiter = NewDefaultShardsRateLimiter(1, 5*time.Second)
	}
	return &ShardManager{cfg: cfg}
}

// Start builds and connects every configured shard against gatewayURL.
func (sm *ShardManager) Start(ctx context.Context, gatewayURL string) error {
	shardIDs := sm.cfg.ShardIDs
	if len(shardIDs) == 0 {
		shardIDs = make([]int, sm.cfg.TotalShards)
		for i := range shardIDs {
			shardIDs[i] = i
		}
	}

	for _, id := range shardIDs {
		shardID := id
		shard := NewShard(ShardConfig{
			Token:           sm.cfg.Token,
			Intents:         sm.cfg.Intents,
			ShardID:         shardID,
			ShardCount:      sm.cfg.TotalShards,
			Properties:      sm.cfg.Properties,
			Compression:     sm.cfg.Compression,
			IdentifyLimiter: sm.cfg.IdentifyLimiter,
			Transport:       sm.cfg.Transport,
			Clock:           sm.cfg.Clock,
			Logger:          sm.cfg.Logger,
			OnEvent:         sm.cfg.OnEvent,
			OnState: func(state GatewayState, detail string) {
				if sm.cfg.OnState != nil {
					sm.cfg.OnState(shardID, state, detail)
				}
			},
		})
		if err := shard.Connect(ctx, gatewayURL); err != nil {
			return err
		}
		sm.shards = append(sm.shards, shard)
	}
	return nil
}

// Shards returns every managed shard.
func (sm *ShardManager) Shards() []*Shard {
	return sm.shards
}

// ShardCount returns the number of shards this manager manages.
func (sm *ShardManager) ShardCount() int {
	return len(sm.shards)
}

// ProcessAll cooperatively drives every managed shard once, budgeting
// timeout across all of them, and reconnects any shard whose backoff has
// elapsed. It is the multi-shard analogue of Shard.Process.
func (sm *ShardManager) ProcessAll(ctx context.Context, timeout time.Duration) Status {
	if len(sm.shards) == 0 {
		return StatusInvalidState
	}
	perShard := timeout / time.Duration(len(sm.shards))
	if perShard <= 0 {
		perShard = time.Millisecond
	}

	worst := StatusTimeout
	for _, shard := range sm.shards {
		if shard.State() == GatewayStateReconnecting {
			if ready, url := shard.ReconnectReady(); ready {
				if err := shard.Connect(ctx, url); err != nil {
					worst = StatusNetwork
				}
			}
			continue
		}
		status := shard.Process(perShard)
		if status != StatusOK && status != StatusTimeout {
			worst = status
		} else if status == StatusOK && worst == StatusTimeout {
			worst = StatusOK
		}
	}
	return worst
}

// Shutdown closes every managed shard.
func (sm *ShardManager) Shutdown() {
	for _, shard := range sm.shards {
		shard.Shutdown()
	}
	sm.shards = nil
}
