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
	"strconv"

	"github.com/bytedance/sonic"
)

const (
	headerRateLimitLimit      = "X-RateLimit-Limit"
	headerRateLimitRemaining  = "X-RateLimit-Remaining"
	headerRateLimitReset      = "X-RateLimit-Reset"
	headerRateLimitResetAfter = "X-RateLimit-Reset-After"
	headerRateLimitBucket     = "X-RateLimit-Bucket"
	headerRateLimitGlobal     = "X-RateLimit-Global"
	headerRateLimitScope      = "X-RateLimit-Scope"
	headerRetryAfter          = "Retry-After"
)

// RateLimitScope is the `X-RateLimit-Scope` value on a response.
type RateLimitScope int

const (
	RateLimitScopeUnspecified RateLimitScope = iota
	RateLimitScopeUser
	RateLimitScopeGlobal
	RateLimitScopeShared
)

func parseRateLimitScope(s string) RateLimitScope {
	switch s {
	case "user":
		return RateLimitScopeUser
	case "global":
		return RateLimitScopeGlobal
	case "shared":
		return RateLimitScopeShared
	default:
		return RateLimitScopeUnspecified
	}
}

// RateLimitHeaders is the parsed form of the rate-limit response headers.
// Every field is tolerant: a missing or malformed header decodes to its
// zero value rather than an error.
type RateLimitHeaders struct {
	Limit      int
	Remaining  int
	Reset      float64
	ResetAfter float64
	RetryAfter float64
	Bucket     string
	Global     bool
	Scope      RateLimitScope
}

// headerLookup abstracts over http.Header / gateway fixtures for header
// parsing, so ratelimit parsing has no net/http dependency.
type headerLookup func(key string) string

func parseNonNegativeInt(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func parseNonNegativeFloat(s string) float64 {
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}

// parseRateLimitHeaders parses the rate-limit response headers via the
// given lookup callback, per spec.md §4.D.
func parseRateLimitHeaders(h headerLookup) RateLimitHeaders {
	return RateLimitHeaders{
		Limit:      parseNonNegativeInt(h(headerRateLimitLimit)),
		Remaining:  parseNonNegativeInt(h(headerRateLimitRemaining)),
		Reset:      parseNonNegativeFloat(h(headerRateLimitReset)),
		ResetAfter: parseNonNegativeFloat(h(headerRateLimitResetAfter)),
		RetryAfter: parseNonNegativeFloat(h(headerRetryAfter)),
		Bucket:     h(headerRateLimitBucket),
		Global:     h(headerRateLimitGlobal) == "true",
		Scope:      parseRateLimitScope(h(headerRateLimitScope)),
	}
}

// rateLimitBody429 is the structured body of a 429 response.
type rateLimitBody429 struct {
	Message    string  `json:"message"`
	RetryAfter float64 `json:"retry_after"`
	Global     bool    `json:"global"`
	Code       int     `json:"code"`
}

// parseRateLimitBody429 decodes a 429 response body. The body must be a
// JSON object with a string `message`; any other shape is BadFormat.
func parseRateLimitBody429(body []byte) (rateLimitBody429, Status) {
	var parsed rateLimitBody429
	if len(body) == 0 {
		return rateLimitBody429{}, StatusBadFormat
	}
	if err := sonic.Unmarshal(body, &parsed); err != nil {
		return rateLimitBody429{}, StatusBadFormat
	}
	if parsed.Message == "" {
		return rateLimitBody429{}, StatusBadFormat
	}
	return parsed, StatusOK
}
