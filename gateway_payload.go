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

// Gateway opcodes.
const (
	OpDispatch              = 0
	OpHeartbeat             = 1
	OpIdentify              = 2
	OpPresenceUpdate        = 3
	OpVoiceStateUpdate      = 4
	OpResume                = 6
	OpReconnect             = 7
	OpRequestGuildMembers   = 8
	OpInvalidSession        = 9
	OpHello                 = 10
	OpHeartbeatAck          = 11
	OpRequestSoundboardSounds = 31
)

// GatewayPayload is the wire envelope for every inbound and outbound
// gateway frame.
type GatewayPayload struct {
	Op int             `json:"op"`
	D  json.RawMessage `json:"d,omitempty"`
	S  *int64          `json:"s,omitempty"`
	T  *string         `json:"t,omitempty"`
}

// helloPayload is the `d` body of an opcode-10 Hello.
type helloPayload struct {
	HeartbeatIntervalMs float64 `json:"heartbeat_interval"`
}

// readyPayload is the `d` body of the READY dispatch.
type readyPayload struct {
	SessionID        string `json:"session_id"`
	ResumeGatewayURL string `json:"resume_gateway_url"`
}

// IdentifyProperties is the `properties` object of an Identify payload.
type IdentifyProperties struct {
	OS      string `json:"os"`
	Browser string `json:"browser"`
	Device  string `json:"device"`
}

func buildIdentifyPayload(token string, intents int, shardID, shardCount int, largeThreshold int, props IdentifyProperties, compress bool) []byte {
	d := map[string]any{
		"token":      token,
		"properties": props,
		"intents":    intents,
		"shard":      [2]int{shardID, shardCount},
	}
	if largeThreshold > 0 {
		d["large_threshold"] = largeThreshold
	}
	if compress {
		d["compress"] = true
	}
	payload, _ := json.Marshal(GatewayPayload{
		Op: OpIdentify,
		D:  marshalRaw(d),
	})
	return payload
}

func buildResumePayload(token, sessionID string, seq int64) []byte {
	d := map[string]any{
		"token":      token,
		"session_id": sessionID,
		"seq":        seq,
	}
	payload, _ := json.Marshal(GatewayPayload{
		Op: OpResume,
		D:  marshalRaw(d),
	})
	return payload
}

func buildHeartbeatPayload(seq int64) []byte {
	var d json.RawMessage
	if seq > 0 {
		d = marshalRaw(seq)
	} else {
		d = json.RawMessage("null")
	}
	payload, _ := json.Marshal(GatewayPayload{Op: OpHeartbeat, D: d})
	return payload
}

// PresenceUpdate is the outbound UpdatePresence payload body.
type PresenceUpdate struct {
	Since      *int64      `json:"since"`
	Activities []Activity  `json:"activities"`
	Status     string      `json:"status"`
	AFK        bool        `json:"afk"`
}

// Activity is a single entry of PresenceUpdate.Activities.
type Activity struct {
	Name string `json:"name"`
	Type int    `json:"type"`
	URL  string `json:"url,omitempty"`
}

func buildPresenceUpdatePayload(p PresenceUpdate) []byte {
	payload, _ := json.Marshal(GatewayPayload{Op: OpPresenceUpdate, D: marshalRaw(p)})
	return payload
}

// VoiceStateUpdateRequest is the outbound UpdateVoiceState payload body.
type VoiceStateUpdateRequest struct {
	GuildID   Snowflake  `json:"guild_id"`
	ChannelID *Snowflake `json:"channel_id"`
	SelfMute  bool       `json:"self_mute"`
	SelfDeaf  bool       `json:"self_deaf"`
}

func buildVoiceStateUpdatePayload(v VoiceStateUpdateRequest) []byte {
	payload, _ := json.Marshal(GatewayPayload{Op: OpVoiceStateUpdate, D: marshalRaw(v)})
	return payload
}

// RequestGuildMembersRequest is the outbound RequestGuildMembers payload
// body. Either Query or UserIDs must be set.
type RequestGuildMembersRequest struct {
	GuildID   Snowflake   `json:"guild_id"`
	Query     *string     `json:"query,omitempty"`
	Limit     int         `json:"limit"`
	UserIDs   []Snowflake `json:"user_ids,omitempty"`
	Presences bool        `json:"presences,omitempty"`
	Nonce     string      `json:"nonce,omitempty"`
}

func buildRequestGuildMembersPayload(req RequestGuildMembersRequest) []byte {
	payload, _ := json.Marshal(GatewayPayload{Op: OpRequestGuildMembers, D: marshalRaw(req)})
	return payload
}

// RequestSoundboardSoundsRequest is the outbound opcode-31 payload body.
type RequestSoundboardSoundsRequest struct {
	GuildIDs []Snowflake `json:"guild_ids"`
}

func buildRequestSoundboardSoundsPayload(req RequestSoundboardSoundsRequest) []byte {
	payload, _ := json.Marshal(GatewayPayload{Op: OpRequestSoundboardSounds, D: marshalRaw(req)})
	return payload
}

func marshalRaw(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		return json.RawMessage("null")
	}
	return json.RawMessage(b)
}
