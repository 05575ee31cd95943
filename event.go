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

import "encoding/json"

// ReadyEvent Shard is ready
type ReadyEvent struct {
	ShardsID int // shard that dispatched this event
}

// MessageCreateEvent Message was created
type MessageCreateEvent struct {
	ShardsID int // shard that dispatched this event
	Message  Message
}

// MessageDeleteEvent Message was deleted
type MessageDeleteEvent struct {
	ShardsID  int // shard that dispatched this event
	ID        Snowflake `json:"id"`
	ChannelID Snowflake `json:"channel_id"`
	GuildID   *Snowflake `json:"guild_id,omitempty"`
}

// ResumedEvent Session was resumed after a reconnect
type ResumedEvent struct {
	ShardsID int // shard that dispatched this event
}

// GuildCreateEvent Guild became available, or bot joined a guild
type GuildCreateEvent struct {
	ShardsID int             // shard that dispatched this event
	Raw      json.RawMessage // raw guild payload, decode into a GatewayGuild as needed
}

// InteractionCreateEvent An interaction (command, component, modal) was received
type InteractionCreateEvent struct {
	ShardsID    int // shard that dispatched this event
	Interaction Interaction
}

// VoiceStateUpdateEvent A user's voice state changed
type VoiceStateUpdateEvent struct {
	ShardsID int             // shard that dispatched this event
	Raw      json.RawMessage // raw voice state payload
}
