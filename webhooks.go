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
	"time"
)

// WebhookType distinguishes an incoming webhook from a channel-follower
// webhook or an application's own interaction-response webhook.
//
// Reference: https://discord.com/developers/docs/resources/webhook#webhook-object-webhook-types
type WebhookType int

const (
	WebhookTypeIncoming WebhookType = iota + 1
	WebhookTypeChannelFollower
	WebhookTypeApplication
)

// Webhook is a low-effort way to post messages to a channel without a
// full bot connection.
//
// Reference: https://discord.com/developers/docs/resources/webhook#webhook-object
type Webhook struct {
	ID            Snowflake   `json:"id"`
	Type          WebhookType `json:"type"`
	GuildID       *Snowflake  `json:"guild_id,omitempty"`
	ChannelID     *Snowflake  `json:"channel_id"`
	User          *User       `json:"user,omitempty"`
	Name          *string     `json:"name"`
	Avatar        *string     `json:"avatar"`
	Token         string      `json:"token,omitempty"`
	ApplicationID *Snowflake  `json:"application_id"`
}

func (w Webhook) Timestamp() time.Time {
	return w.ID.Timestamp()
}

// CreateWebhookOptions names and optionally avatars a new webhook.
type CreateWebhookOptions struct {
	Name   string  `json:"name"`
	Avatar *string `json:"avatar,omitempty"`
}

// CreateWebhook creates a new webhook in a channel. Requires the
// PermissionManageWebhooks permission in the target channel.
func (r *RestEngine) CreateWebhook(channelID Snowflake, opts CreateWebhookOptions, reason string) Result[Webhook] {
	reqBody, _ := json.Marshal(opts)
	endpoint := "/channels/" + channelID.String() + "/webhooks"
	res := r.Execute(Request{Method: "POST", URL: endpoint, Body: reqBody, Reason: reason})
	if res.IsErr() {
		return Err[Webhook](res.Err())
	}
	body := res.Value()
	defer body.Close()

	var hook Webhook
	if err := json.NewDecoder(body).Decode(&hook); err != nil {
		r.logger.WithFields(map[string]any{"method": "POST", "url": endpoint, "error": err.Error()}).Error("failed parsing response")
		return Err[Webhook](err)
	}
	return Ok(hook)
}

// FetchChannelWebhooks lists every webhook registered on a channel.
func (r *RestEngine) FetchChannelWebhooks(channelID Snowflake) Result[[]Webhook] {
	endpoint := "/channels/" + channelID.String() + "/webhooks"
	res := r.Execute(Request{Method: "GET", URL: endpoint})
	if res.IsErr() {
		return Err[[]Webhook](res.Err())
	}
	body := res.Value()
	defer body.Close()

	var hooks []Webhook
	if err := json.NewDecoder(body).Decode(&hooks); err != nil {
		r.logger.WithFields(map[string]any{"method": "GET", "url": endpoint, "error": err.Error()}).Error("failed parsing response")
		return Err[[]Webhook](err)
	}
	return Ok(hooks)
}

// FetchWebhook retrieves a webhook by ID, using the bot token.
func (r *RestEngine) FetchWebhook(webhookID Snowflake) Result[Webhook] {
	endpoint := "/webhooks/" + webhookID.String()
	res := r.Execute(Request{Method: "GET", URL: endpoint})
	if res.IsErr() {
		return Err[Webhook](res.Err())
	}
	body := res.Value()
	defer body.Close()

	var hook Webhook
	if err := json.NewDecoder(body).Decode(&hook); err != nil {
		r.logger.WithFields(map[string]any{"method": "GET", "url": endpoint, "error": err.Error()}).Error("failed parsing response")
		return Err[Webhook](err)
	}
	return Ok(hook)
}

// FetchWebhookWithToken retrieves a webhook using its token, requiring
// no authentication.
func (r *RestEngine) FetchWebhookWithToken(webhookID Snowflake, token string) Result[Webhook] {
	endpoint := "/webhooks/" + webhookID.String() + "/" + token
	res := r.Execute(Request{Method: "GET", URL: endpoint})
	if res.IsErr() {
		return Err[Webhook](res.Err())
	}
	body := res.Value()
	defer body.Close()

	var hook Webhook
	if err := json.NewDecoder(body).Decode(&hook); err != nil {
		r.logger.WithFields(map[string]any{"method": "GET", "url": endpoint, "error": err.Error()}).Error("failed parsing response")
		return Err[Webhook](err)
	}
	return Ok(hook)
}

// ModifyWebhookOptions patches a webhook's name, avatar, or channel.
type ModifyWebhookOptions struct {
	Name      Option[string]    `json:"name,omitzero"`
	Avatar    Option[string]    `json:"avatar,omitzero"`
	ChannelID Option[Snowflake] `json:"channel_id,omitzero"`
}

// ModifyWebhook patches a webhook using the bot token.
func (r *RestEngine) ModifyWebhook(webhookID Snowflake, opts ModifyWebhookOptions, reason string) Result[Webhook] {
	reqBody, _ := json.Marshal(opts)
	endpoint := "/webhooks/" + webhookID.String()
	res := r.Execute(Request{Method: "PATCH", URL: endpoint, Body: reqBody, Reason: reason})
	if res.IsErr() {
		return Err[Webhook](res.Err())
	}
	body := res.Value()
	defer body.Close()

	var hook Webhook
	if err := json.NewDecoder(body).Decode(&hook); err != nil {
		r.logger.WithFields(map[string]any{"method": "PATCH", "url": endpoint, "error": err.Error()}).Error("failed parsing response")
		return Err[Webhook](err)
	}
	return Ok(hook)
}

// DeleteWebhook deletes a webhook using the bot token.
func (r *RestEngine) DeleteWebhook(webhookID Snowflake, reason string) Void {
	res := r.Execute(Request{Method: "DELETE", URL: "/webhooks/" + webhookID.String(), Reason: reason})
	if res.IsErr() {
		return ErrVoid(res.Err())
	}
	res.Value().Close()
	return OkVoid()
}

// DeleteWebhookWithToken deletes a webhook using its token, requiring no
// authentication.
func (r *RestEngine) DeleteWebhookWithToken(webhookID Snowflake, token string) Void {
	res := r.Execute(Request{Method: "DELETE", URL: "/webhooks/" + webhookID.String() + "/" + token})
	if res.IsErr() {
		return ErrVoid(res.Err())
	}
	res.Value().Close()
	return OkVoid()
}

// ExecuteWebhookOptions is the body for posting a message through a
// webhook.
type ExecuteWebhookOptions struct {
	Content         string           `json:"content,omitempty"`
	Username        string           `json:"username,omitempty"`
	AvatarURL       string           `json:"avatar_url,omitempty"`
	TTS             bool             `json:"tts,omitempty"`
	Embeds          []Embed          `json:"embeds,omitempty"`
	AllowedMentions *AllowedMentions `json:"allowed_mentions,omitempty"`
	Components      []Component      `json:"components,omitempty"`
	Flags           MessageFlags     `json:"flags,omitempty"`
	ThreadName      string           `json:"thread_name,omitempty"`
}

// ExecuteWebhookParams controls the query parameters of an execute-webhook
// call: whether to wait for and return the created message, and which
// thread (if any) to post it into.
type ExecuteWebhookParams struct {
	Wait     bool
	ThreadID Snowflake
}

// ExecuteWebhook posts a message through a webhook. When params.Wait is
// false the returned Message is the zero value and should be ignored:
// the platform sends no body in that case.
func (r *RestEngine) ExecuteWebhook(webhookID Snowflake, token string, opts ExecuteWebhookOptions, params ExecuteWebhookParams) Result[Message] {
	reqBody, _ := json.Marshal(opts)
	endpoint := "/webhooks/" + webhookID.String() + "/" + token

	q := url.Values{}
	if params.Wait {
		q.Set("wait", "true")
	}
	if !params.ThreadID.IsZero() {
		q.Set("thread_id", params.ThreadID.String())
	}
	if encoded := q.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	res := r.Execute(Request{Method: "POST", URL: endpoint, Body: reqBody})
	if res.IsErr() {
		return Err[Message](res.Err())
	}
	body := res.Value()
	defer body.Close()

	if !params.Wait {
		return Ok(Message{})
	}

	var message Message
	if err := json.NewDecoder(body).Decode(&message); err != nil {
		r.logger.WithFields(map[string]any{"method": "POST", "url": endpoint, "error": err.Error()}).Error("failed parsing response")
		return Err[Message](err)
	}
	return Ok(message)
}

// FetchWebhookMessage retrieves a previously sent webhook message.
func (r *RestEngine) FetchWebhookMessage(webhookID Snowflake, token string, messageID Snowflake, threadID Snowflake) Result[Message] {
	endpoint := "/webhooks/" + webhookID.String() + "/" + token + "/messages/" + messageID.String()
	if !threadID.IsZero() {
		endpoint += "?thread_id=" + threadID.String()
	}
	res := r.Execute(Request{Method: "GET", URL: endpoint})
	if res.IsErr() {
		return Err[Message](res.Err())
	}
	body := res.Value()
	defer body.Close()

	var message Message
	if err := json.NewDecoder(body).Decode(&message); err != nil {
		r.logger.WithFields(map[string]any{"method": "GET", "url": endpoint, "error": err.Error()}).Error("failed parsing response")
		return Err[Message](err)
	}
	return Ok(message)
}

// EditWebhookMessage patches a previously sent webhook message.
func (r *RestEngine) EditWebhookMessage(webhookID Snowflake, token string, messageID Snowflake, opts EditMessageOptions, threadID Snowflake) Result[Message] {
	reqBody, _ := json.Marshal(opts)
	endpoint := "/webhooks/" + webhookID.String() + "/" + token + "/messages/" + messageID.String()
	if !threadID.IsZero() {
		endpoint += "?thread_id=" + threadID.String()
	}
	res := r.Execute(Request{Method: "PATCH", URL: endpoint, Body: reqBody})
	if res.IsErr() {
		return Err[Message](res.Err())
	}
	body := res.Value()
	defer body.Close()

	var message Message
	if err := json.NewDecoder(body).Decode(&message); err != nil {
		r.logger.WithFields(map[string]any{"method": "PATCH", "url": endpoint, "error": err.Error()}).Error("failed parsing response")
		return Err[Message](err)
	}
	return Ok(message)
}

// DeleteWebhookMessage deletes a previously sent webhook message.
func (r *RestEngine) DeleteWebhookMessage(webhookID Snowflake, token string, messageID Snowflake, threadID Snowflake) Void {
	endpoint := "/webhooks/" + webhookID.String() + "/" + token + "/messages/" + messageID.String()
	if !threadID.IsZero() {
		endpoint += "?thread_id=" + threadID.String()
	}
	res := r.Execute(Request{Method: "DELETE", URL: endpoint})
	if res.IsErr() {
		return ErrVoid(res.Err())
	}
	res.Value().Close()
	return OkVoid()
}
