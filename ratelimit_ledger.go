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
	"sync"
	"time"
)

// bucketState is the per-route-bucket rate limit state tracked by the
// ledger.
type bucketState struct {
	remaining int
	resetAt   time.Time
}

// window is a fixed-capacity counter that resets at a deadline, used for
// both the global request window and the invalid-request window.
type window struct {
	capacity int
	length   time.Duration
	count    int
	resetAt  time.Time
}

func (w *window) saturated(now time.Time) bool {
	if now.After(w.resetAt) {
		return false
	}
	return w.count >= w.capacity
}

func (w *window) increment(now time.Time) {
	if now.After(w.resetAt) {
		w.count = 0
		w.resetAt = now.Add(w.length)
	}
	w.count++
}

// extendTo saturates the window immediately and pushes its reset instant
// out to at least until.
func (w *window) extendTo(now time.Time, until time.Time) {
	w.count = w.capacity
	if until.After(w.resetAt) {
		w.resetAt = until
	}
	if w.resetAt.Before(now) {
		w.resetAt = now
	}
}

// rateLimitLedger is the single piece of shared mutable state inside the
// REST engine. All its operations are O(1) map/counter manipulations
// guarded by one mutex; no I/O or sleep ever happens while the mutex is
// held (spec.md §5).
type rateLimitLedger struct {
	mu sync.Mutex

	clock Clock

	global  window
	invalid window

	buckets map[string]*bucketState // keyed by bucket string (X-RateLimit-Bucket)
	routes  map[string]string       // route-key -> bucket string
}

// newRateLimitLedger builds a ledger with the given global-window and
// invalid-request-window capacity/length, timed by clock.
func newRateLimitLedger(clock Clock, globalCapacity int, globalLength time.Duration, invalidCapacity int, invalidLength time.Duration) *rateLimitLedger {
	now := clock.Now()
	return &rateLimitLedger{
		clock:   clock,
		global:  window{capacity: globalCapacity, length: globalLength, resetAt: now.Add(globalLength)},
		invalid: window{capacity: invalidCapacity, length: invalidLength, resetAt: now.Add(invalidLength)},
		buckets: make(map[string]*bucketState),
		routes:  make(map[string]string),
	}
}

// PreFlight reports how long the caller must wait before issuing a
// request on route, and why. isInteraction exempts the request from the
// global window per spec.md's interaction exemption.
func (l *rateLimitLedger) PreFlight(route string, isInteraction bool) (time.Duration, Status) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()

	if !isInteraction && l.global.saturated(now) {
		return l.global.resetAt.Sub(now), StatusRateLimited
	}
	if l.invalid.saturated(now) {
		return l.invalid.resetAt.Sub(now), StatusRateLimited
	}
	if bucket, ok := l.routes[route]; ok {
		if b, ok := l.buckets[bucket]; ok {
			if b.remaining == 0 && now.Before(b.resetAt) {
				return b.resetAt.Sub(now), StatusRateLimited
			}
		}
	}
	return 0, StatusOK
}

// PostFlight updates ledger state from a completed request's outcome.
func (l *rateLimitLedger) PostFlight(route string, status int, headers RateLimitHeaders, body429 *rateLimitBody429) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()

	if headers.Scope == RateLimitScopeGlobal || headers.Global {
		wait := headers.ResetAfter
		if body429 != nil && body429.RetryAfter > wait {
			wait = body429.RetryAfter
		}
		if headers.RetryAfter > wait {
			wait = headers.RetryAfter
		}
		l.global.extendTo(now, now.Add(time.Duration(wait*float64(time.Second))))
	}

	if headers.Bucket != "" {
		b, ok := l.buckets[headers.Bucket]
		if !ok {
			b = &bucketState{}
			l.buckets[headers.Bucket] = b
		}
		b.remaining = headers.Remaining
		b.resetAt = now.Add(time.Duration(headers.ResetAfter * float64(time.Second)))
		l.routes[route] = headers.Bucket
	}

	if !isInteractionRoute(route) {
		l.global.increment(now)
	}

	if status == 401 || status == 403 || status == 429 {
		l.invalid.increment(now)
	}
}

// SleepBudget reports whether a wait of the given duration can complete
// before deadline.
func (l *rateLimitLedger) SleepBudget(wait time.Duration, deadline time.Time) bool {
	if deadline.IsZero() {
		return true
	}
	now := l.clock.Now()
	return now.Add(wait).Before(deadline) || now.Add(wait).Equal(deadline)
}

func isInteractionRoute(route string) bool {
	return len(route) > 0 && (route == "POST:/interactions/:id/:token/callback" ||
		hasInteractionCallbackSuffix(route))
}

func hasInteractionCallbackSuffix(route string) bool {
	const suffix = "/interactions/:id/:token/callback"
	if len(route) < len(suffix) {
		return false
	}
	return route[len(route)-len(suffix):] == suffix
}
