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
	"net/url"
	"strconv"
)

// FetchChannelMessagesOptions paginates a channel's message history.
//
// Reference: https://discord.com/developers/docs/resources/message#get-channel-messages
type FetchChannelMessagesOptions struct {
	Around Snowflake
	Before Snowflake
	After  Snowflake
	Limit  int
}

// FetchChannelMessages lists messages in a channel.
func (r *RestEngine) FetchChannelMessages(channelID Snowflake, opts FetchChannelMessagesOptions) Result[[]Message] {
	q := url.Values{}
	if !opts.Around.IsZero() {
		q.Set("around", opts.Around.String())
	}
	if !opts.Before.IsZero() {
		q.Set("before", opts.Before.String())
	}
	if !opts.After.IsZero() {
		q.Set("after", opts.After.String())
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	endpoint := "/channels/" + channelID.String() + "/messages"
	if encoded := q.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	res := r.Execute(Request{Method: "GET", URL: endpoint})
	if res.IsErr() {
		return Err[[]Message](res.Err())
	}
	body := res.Value()
	defer body.Close()

	var messages []Message
	if err := json.NewDecoder(body).Decode(&messages); err != nil {
		r.logger.WithFields(map[string]any{"method": "GET", "url": "/channels/{id}/messages", "error": err.Error()}).Error("failed parsing response")
		return Err[[]Message](err)
	}
	return Ok(messages)
}

// FetchChannelMessage retrieves a single message by ID.
func (r *RestEngine) FetchChannelMessage(channelID, messageID Snowflake) Result[Message] {
	res := r.Execute(Request{Method: "GET", URL: "/channels/" + channelID.String() + "/messages/" + messageID.String()})
	if res.IsErr() {
		return Err[Message](res.Err())
	}
	body := res.Value()
	defer body.Close()

	var message Message
	if err := json.NewDecoder(body).Decode(&message); err != nil {
		r.logger.WithFields(map[string]any{"method": "GET", "url": "/channels/{id}/messages/{id}", "error": err.Error()}).Error("failed parsing response")
		return Err[Message](err)
	}
	return Ok(message)
}

// CreateMessageOptions contains parameters for sending a channel message.
//
// Reference: https://discord.com/developers/docs/resources/message#create-message-jsonform-params
type CreateMessageOptions struct {
	Content          string            `json:"content,omitempty"`
	TTS              bool              `json:"tts,omitempty"`
	Embeds           []Embed           `json:"embeds,omitempty"`
	AllowedMentions  *AllowedMentions  `json:"allowed_mentions,omitempty"`
	MessageReference *MessageReference `json:"message_reference,omitempty"`
	Components       []Component       `json:"components,omitempty"`
	StickerIDs       []Snowflake       `json:"sticker_ids,omitempty"`
	Flags            MessageFlags      `json:"flags,omitempty"`
}

// CreateMessage sends a new message to a channel.
func (r *RestEngine) CreateMessage(channelID Snowflake, opts CreateMessageOptions) Result[Message] {
	reqBody, _ := json.Marshal(opts)
	res := r.Execute(Request{Method: "POST", URL: "/channels/" + channelID.String() + "/messages", Body: reqBody})
	if res.IsErr() {
		return Err[Message](res.Err())
	}
	body := res.Value()
	defer body.Close()

	var message Message
	if err := json.NewDecoder(body).Decode(&message); err != nil {
		r.logger.WithFields(map[string]any{"method": "POST", "url": "/channels/{id}/messages", "error": err.Error()}).Error("failed parsing response")
		return Err[Message](err)
	}
	return Ok(message)
}

// EditMessageOptions contains parameters for patching an existing message.
// Every field is an Option so the caller can distinguish "leave alone"
// from "clear this field" (sent as JSON null).
type EditMessageOptions struct {
	Content         Option[string]          `json:"content,omitzero"`
	Embeds          Option[[]Embed]         `json:"embeds,omitzero"`
	Components      Option[[]Component]     `json:"components,omitzero"`
	AllowedMentions Option[AllowedMentions]  `json:"allowed_mentions,omitzero"`
	Flags           Option[MessageFlags]    `json:"flags,omitzero"`
}

// EditMessage patches a message the current user authored.
func (r *RestEngine) EditMessage(channelID, messageID Snowflake, opts EditMessageOptions) Result[Message] {
	reqBody, _ := json.Marshal(opts)
	res := r.Execute(Request{Method: "PATCH", URL: "/channels/" + channelID.String() + "/messages/" + messageID.String(), Body: reqBody})
	if res.IsErr() {
		return Err[Message](res.Err())
	}
	body := res.Value()
	defer body.Close()

	var message Message
	if err := json.NewDecoder(body).Decode(&message); err != nil {
		r.logger.WithFields(map[string]any{"method": "PATCH", "url": "/channels/{id}/messages/{id}", "error": err.Error()}).Error("failed parsing response")
		return Err[Message](err)
	}
	return Ok(message)
}

// DeleteMessage deletes a message.
func (r *RestEngine) DeleteMessage(channelID, messageID Snowflake, reason string) Void {
	res := r.Execute(Request{Method: "DELETE", URL: "/channels/" + channelID.String() + "/messages/" + messageID.String(), Reason: reason})
	if res.IsErr() {
		return ErrVoid(res.Err())
	}
	res.Value().Close()
	return OkVoid()
}

// BulkDeleteMessages deletes 2-100 messages in a single call. Messages
// older than two weeks cannot be bulk deleted (per the platform's own
// old-message restriction, distinct from this engine's rate-limit
// bucket quirk for the same boundary).
func (r *RestEngine) BulkDeleteMessages(channelID Snowflake, messageIDs []Snowflake, reason string) Void {
	reqBody, _ := json.Marshal(struct {
		Messages []Snowflake `json:"messages"`
	}{Messages: messageIDs})
	res := r.Execute(Request{Method: "POST", URL: "/channels/" + channelID.String() + "/messages/bulk-delete", Body: reqBody, Reason: reason})
	if res.IsErr() {
		return ErrVoid(res.Err())
	}
	res.Value().Close()
	return OkVoid()
}

// PinMessage pins a message to its channel.
func (r *RestEngine) PinMessage(channelID, messageID Snowflake, reason string) Void {
	res := r.Execute(Request{Method: "PUT", URL: "/channels/" + channelID.String() + "/pins/" + messageID.String(), Reason: reason})
	if res.IsErr() {
		return ErrVoid(res.Err())
	}
	res.Value().Close()
	return OkVoid()
}

// UnpinMessage unpins a message from its channel.
func (r *RestEngine) UnpinMessage(channelID, messageID Snowflake, reason string) Void {
	res := r.Execute(Request{Method: "DELETE", URL: "/channels/" + channelID.String() + "/pins/" + messageID.String(), Reason: reason})
	if res.IsErr() {
		return ErrVoid(res.Err())
	}
	res.Value().Close()
	return OkVoid()
}

// FetchPinnedMessages lists every pinned message in a channel.
func (r *RestEngine) FetchPinnedMessages(channelID Snowflake) Result[[]Message] {
	res := r.Execute(Request{Method: "GET", URL: "/channels/" + channelID.String() + "/pins"})
	if res.IsErr() {
		return Err[[]Message](res.Err())
	}
	body := res.Value()
	defer body.Close()

	var messages []Message
	if err := json.NewDecoder(body).Decode(&messages); err != nil {
		r.logger.WithFields(map[string]any{"method": "GET", "url": "/channels/{id}/pins", "error": err.Error()}).Error("failed parsing response")
		return Err[[]Message](err)
	}
	return Ok(messages)
}

// CreateReaction adds the current user's reaction to a message. emoji is
// either a unicode emoji or "name:id" for a custom emoji.
func (r *RestEngine) CreateReaction(channelID, messageID Snowflake, emoji string) Void {
	res := r.Execute(Request{Method: "PUT", URL: "/channels/" + channelID.String() + "/messages/" + messageID.String() + "/reactions/" + url.PathEscape(emoji) + "/@me"})
	if res.IsErr() {
		return ErrVoid(res.Err())
	}
	res.Value().Close()
	return OkVoid()
}

// DeleteOwnReaction removes the current user's reaction from a message.
func (r *RestEngine) DeleteOwnReaction(channelID, messageID Snowflake, emoji string) Void {
	res := r.Execute(Request{Method: "DELETE", URL: "/channels/" + channelID.String() + "/messages/" + messageID.String() + "/reactions/" + url.PathEscape(emoji) + "/@me"})
	if res.IsErr() {
		return ErrVoid(res.Err())
	}
	res.Value().Close()
	return OkVoid()
}

// DeleteUserReaction removes another user's reaction from a message.
func (r *RestEngine) DeleteUserReaction(channelID, messageID, userID Snowflake, emoji string) Void {
	res := r.Execute(Request{Method: "DELETE", URL: "/channels/" + channelID.String() + "/messages/" + messageID.String() + "/reactions/" + url.PathEscape(emoji) + "/" + userID.String()})
	if res.IsErr() {
		return ErrVoid(res.Err())
	}
	res.Value().Close()
	return OkVoid()
}

// DeleteAllReactions removes every reaction from a message.
func (r *RestEngine) DeleteAllReactions(channelID, messageID Snowflake) Void {
	res := r.Execute(Request{Method: "DELETE", URL: "/channels/" + channelID.String() + "/messages/" + messageID.String() + "/reactions"})
	if res.IsErr() {
		return ErrVoid(res.Err())
	}
	res.Value().Close()
	return OkVoid()
}

// DeleteAllReactionsForEmoji removes every reaction of one emoji from a
// message.
func (r *RestEngine) DeleteAllReactionsForEmoji(channelID, messageID Snowflake, emoji string) Void {
	res := r.Execute(Request{Method: "DELETE", URL: "/channels/" + channelID.String() + "/messages/" + messageID.String() + "/reactions/" + url.PathEscape(emoji)})
	if res.IsErr() {
		return ErrVoid(res.Err())
	}
	res.Value().Close()
	return OkVoid()
}
