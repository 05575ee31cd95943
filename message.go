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
	"encoding/json"
	"time"
)

// MessageType represents the kind of content a message carries.
//
// Reference: https://discord.com/developers/docs/resources/message#message-object-message-types
type MessageType int

const (
	MessageTypeDefault MessageType = iota
	MessageTypeRecipientAdd
	MessageTypeRecipientRemove
	MessageTypeCall
	MessageTypeChannelNameChange
	MessageTypeChannelIconChange
	MessageTypeChannelPinnedMessage
	MessageTypeUserJoin
	MessageTypeGuildBoost
	MessageTypeGuildBoostTier1
	MessageTypeGuildBoostTier2
	MessageTypeGuildBoostTier3
	MessageTypeChannelFollowAdd
	_
	MessageTypeGuildDiscoveryDisqualified
	MessageTypeGuildDiscoveryRequalified
	MessageTypeGuildDiscoveryGracePeriodInitialWarning
	MessageTypeGuildDiscoveryGracePeriodFinalWarning
	MessageTypeThreadCreated
	MessageTypeReply
	MessageTypeChatInputCommand
	MessageTypeThreadStarterMessage
	MessageTypeGuildInviteReminder
	MessageTypeContextMenuCommand
	MessageTypeAutoModerationAction
	MessageTypeRoleSubscriptionPurchase
	MessageTypeInteractionPremiumUpsell
	MessageTypeStageStart
	MessageTypeStageEnd
	MessageTypeStageSpeaker
	_
	MessageTypeStageTopic
	MessageTypeGuildApplicationPremiumSubscription
)

// MessageFlags is a bitfield of message-level behavior toggles.
//
// Reference: https://discord.com/developers/docs/resources/message#message-object-message-flags
type MessageFlags int

const (
	MessageFlagCrossposted MessageFlags = 1 << iota
	MessageFlagIsCrosspost
	MessageFlagSuppressEmbeds
	MessageFlagSourceMessageDeleted
	MessageFlagUrgent
	MessageFlagHasThread
	MessageFlagEphemeral
	MessageFlagLoading
	MessageFlagFailedToMentionSomeRolesInThread
	_
	_
	_
	MessageFlagSuppressNotifications
	MessageFlagIsVoiceMessage
)

// AllowedMentionType selects which mention categories a message is
// permitted to ping.
type AllowedMentionType string

const (
	AllowedMentionRoles    AllowedMentionType = "roles"
	AllowedMentionUsers    AllowedMentionType = "users"
	AllowedMentionEveryone AllowedMentionType = "everyone"
)

// AllowedMentions controls which mentions in a message's content are
// allowed to actually notify, independent of the raw text.
//
// Reference: https://discord.com/developers/docs/resources/message#allowed-mentions-object
type AllowedMentions struct {
	Parse       []AllowedMentionType `json:"parse,omitempty"`
	Roles       []Snowflake          `json:"roles,omitempty"`
	Users       []Snowflake          `json:"users,omitempty"`
	RepliedUser bool                 `json:"replied_user,omitempty"`
}

// MessageReferenceType distinguishes a reply from a forward.
type MessageReferenceType int

const (
	MessageReferenceTypeDefault MessageReferenceType = iota
	MessageReferenceTypeForward
)

// MessageReference points a message at another message, channel, or
// guild, for replies, forwards, and pin-crossposts.
type MessageReference struct {
	Type            MessageReferenceType `json:"type,omitempty"`
	MessageID       *Snowflake            `json:"message_id,omitempty"`
	ChannelID       *Snowflake            `json:"channel_id,omitempty"`
	GuildID         *Snowflake            `json:"guild_id,omitempty"`
	FailIfNotExists *bool                 `json:"fail_if_not_exists,omitempty"`
}

// ComponentType enumerates the message component kinds.
//
// Reference: https://discord.com/developers/docs/interactions/message-components#component-object-component-types
type ComponentType int

const (
	ComponentTypeActionRow ComponentType = iota + 1
	ComponentTypeButton
	ComponentTypeStringSelect
	ComponentTypeTextInput
	ComponentTypeUserSelect
	ComponentTypeRoleSelect
	ComponentTypeMentionableSelect
	ComponentTypeChannelSelect
)

// Component is a single interactive element or container attached to a
// message (buttons, select menus, action rows). Only the fields common
// across component types are modeled; fields specific to other
// component types are dropped when decoding.
type Component struct {
	Type       ComponentType     `json:"type"`
	CustomID   string            `json:"custom_id,omitempty"`
	Disabled   bool              `json:"disabled,omitempty"`
	Style      int               `json:"style,omitempty"`
	Label      string            `json:"label,omitempty"`
	Emoji      *Emoji            `json:"emoji,omitempty"`
	URL        string            `json:"url,omitempty"`
	Options    []json.RawMessage `json:"options,omitempty"`
	Placeholder string           `json:"placeholder,omitempty"`
	MinValues  *int              `json:"min_values,omitempty"`
	MaxValues  *int              `json:"max_values,omitempty"`
	Components []Component       `json:"components,omitempty"`
}

// Message is a message sent in a text-based channel.
//
// Reference: https://discord.com/developers/docs/resources/message#message-object
type Message struct {
	ID              Snowflake          `json:"id"`
	ChannelID       Snowflake          `json:"channel_id"`
	GuildID         *Snowflake         `json:"guild_id,omitempty"`
	Author          User               `json:"author"`
	Member          *ResolvedMember    `json:"member,omitempty"`
	Content         string             `json:"content"`
	Timestamp       time.Time          `json:"timestamp"`
	EditedTimestamp *time.Time         `json:"edited_timestamp"`
	TTS             bool               `json:"tts"`
	MentionEveryone bool               `json:"mention_everyone"`
	Mentions        []User             `json:"mentions"`
	MentionRoles    []Snowflake        `json:"mention_roles"`
	Attachments     []Attachment       `json:"attachments"`
	Embeds          []Embed            `json:"embeds"`
	Pinned          bool               `json:"pinned"`
	Type            MessageType        `json:"type"`
	Flags           MessageFlags       `json:"flags,omitempty"`
	Components      []Component        `json:"components,omitempty"`
	MessageReference *MessageReference `json:"message_reference,omitempty"`
	WebhookID       *Snowflake         `json:"webhook_id,omitempty"`
	Interaction     *MessageInteractionMetadata `json:"interaction_metadata,omitempty"`
}

// MessageInteractionMetadata identifies the interaction that produced a
// message, when applicable.
type MessageInteractionMetadata struct {
	ID            Snowflake       `json:"id"`
	Type          InteractionType `json:"type"`
	User          User            `json:"user"`
}

