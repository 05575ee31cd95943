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

import "github.com/bytedance/sonic"

// gatewayInfo is the response body of GET /gateway.
type gatewayInfo struct {
	// URL is the WSS URL clients should connect to.
	URL string `json:"url"`
}

func (g *gatewayInfo) fillFromJSON(data []byte) error {
	return sonic.Unmarshal(data, g)
}

// sessionStartLimit is the `session_start_limit` object on /gateway/bot.
type sessionStartLimit struct {
	Total          int `json:"total"`
	Remaining      int `json:"remaining"`
	ResetAfter     int `json:"reset_after"`
	MaxConcurrency int `json:"max_concurrency"`
}

// gatewayBotInfo is the response body of GET /gateway/bot.
type gatewayBotInfo struct {
	// URL is the WSS URL clients should connect to.
	URL string `json:"url"`
	// Shards is the platform's recommended shard count.
	Shards int `json:"shards"`
	// SessionStartLimit describes the Identify budget for this token.
	SessionStartLimit sessionStartLimit `json:"session_start_limit"`
}

func (g *gatewayBotInfo) fillFromJSON(data []byte) error {
	return sonic.Unmarshal(data, g)
}
