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

// GatewayIntent is a bitfield flag selecting which event categories the
// gateway delivers to a connection. Referenced throughout shard.go and
// client.go but never itself defined anywhere in the retrieved teacher
// snapshot (the same reconstruction-from-call-sites gap as Snowflake,
// Logger, and Request were in earlier passes); the bit values below
// match the platform's documented Identify intent flags.
type GatewayIntent uint32

const (
	GatewayIntentGuilds                 GatewayIntent = 1 << 0
	GatewayIntentGuildMembers           GatewayIntent = 1 << 1
	GatewayIntentGuildModeration        GatewayIntent = 1 << 2
	GatewayIntentGuildExpressions       GatewayIntent = 1 << 3
	GatewayIntentGuildIntegrations      GatewayIntent = 1 << 4
	GatewayIntentGuildWebhooks          GatewayIntent = 1 << 5
	GatewayIntentGuildInvites           GatewayIntent = 1 << 6
	GatewayIntentGuildVoiceStates       GatewayIntent = 1 << 7
	GatewayIntentGuildPresences         GatewayIntent = 1 << 8
	GatewayIntentGuildMessages          GatewayIntent = 1 << 9
	GatewayIntentGuildMessageReactions  GatewayIntent = 1 << 10
	GatewayIntentGuildMessageTyping     GatewayIntent = 1 << 11
	GatewayIntentDirectMessages         GatewayIntent = 1 << 12
	GatewayIntentDirectMessageReactions GatewayIntent = 1 << 13
	GatewayIntentDirectMessageTyping    GatewayIntent = 1 << 14
	GatewayIntentMessageContent         GatewayIntent = 1 << 15
	GatewayIntentGuildScheduledEvents   GatewayIntent = 1 << 16
	GatewayIntentAutoModConfiguration   GatewayIntent = 1 << 20
	GatewayIntentAutoModExecution       GatewayIntent = 1 << 21
	GatewayIntentGuildMessagePolls      GatewayIntent = 1 << 24
	GatewayIntentDirectMessagePolls     GatewayIntent = 1 << 25
)

// Has reports whether every intent in mask is set.
func (i GatewayIntent) Has(mask GatewayIntent) bool {
	return BitFieldHas(i, mask)
}
