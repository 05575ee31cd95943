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

// InteractionCallbackType selects how an interaction is answered.
//
// Reference: https://discord.com/developers/docs/interactions/receiving-and-responding#interaction-response-object-interaction-callback-type
type InteractionCallbackType int

const (
	InteractionCallbackTypePong InteractionCallbackType = iota + 1
	_
	_
	InteractionCallbackTypeChannelMessageWithSource
	InteractionCallbackTypeDeferredChannelMessageWithSource
	InteractionCallbackTypeDeferredUpdateMessage
	InteractionCallbackTypeUpdateMessage
	InteractionCallbackTypeApplicationCommandAutocompleteResult
	InteractionCallbackTypeModal
	_
	InteractionCallbackTypePremiumRequired
	InteractionCallbackTypeLaunchActivity
)

// InteractionCallbackData is the payload accompanying most callback
// types: a message body, an autocomplete choice list, or a modal
// definition, depending on the enclosing InteractionCallbackType.
type InteractionCallbackData struct {
	TTS             bool              `json:"tts,omitempty"`
	Content         string            `json:"content,omitempty"`
	Embeds          []Embed           `json:"embeds,omitempty"`
	AllowedMentions *AllowedMentions  `json:"allowed_mentions,omitempty"`
	Flags           MessageFlags      `json:"flags,omitempty"`
	Components      []Component       `json:"components,omitempty"`

	// Autocomplete
	Choices []ApplicationCommandOptionChoice `json:"choices,omitempty"`

	// Modal
	CustomID string `json:"custom_id,omitempty"`
	Title    string `json:"title,omitempty"`
}

// InteractionResponse is the body posted to the interaction-callback
// endpoint. That endpoint is exempt from the REST engine's global
// rate-limit window (RequestKindInteraction) but not from the per-bucket
// or invalid-request limits.
type InteractionResponse struct {
	Type InteractionCallbackType   `json:"type"`
	Data *InteractionCallbackData `json:"data,omitempty"`
}

// CreateInteractionResponse answers an interaction within the platform's
// short response window. withResponse requests the created message (or
// null for deferred/autocomplete/modal responses) back in the body.
//
// Reference: https://discord.com/developers/docs/interactions/receiving-and-responding#create-interaction-response
func (r *RestEngine) CreateInteractionResponse(interactionID Snowflake, token string, resp InteractionResponse, withResponse bool) Void {
	reqBody, _ := json.Marshal(resp)
	endpoint := "/interactions/" + interactionID.String() + "/" + token + "/callback"
	if withResponse {
		endpoint += "?with_response=true"
	}
	res := r.Execute(Request{Method: "POST", URL: endpoint, Body: reqBody, Kind: RequestKindInteraction})
	if res.IsErr() {
		return ErrVoid(res.Err())
	}
	res.Value().Close()
	return OkVoid()
}

// FetchOriginalInteractionResponse retrieves the initial response
// message for an interaction.
//
// Reference: https://discord.com/developers/docs/interactions/receiving-and-responding#get-original-interaction-response
func (r *RestEngine) FetchOriginalInteractionResponse(applicationID Snowflake, token string) Result[Message] {
	res := r.Execute(Request{
		Method: "GET",
		URL:    "/webhooks/" + applicationID.String() + "/" + token + "/messages/@original",
		Kind:   RequestKindInteraction,
	})
	if res.IsErr() {
		return Err[Message](res.Err())
	}
	body := res.Value()
	defer body.Close()

	var message Message
	if err := json.NewDecoder(body).Decode(&message); err != nil {
		r.logger.WithFields(map[string]any{"method": "GET", "url": "/webhooks/{id}/{token}/messages/@original", "error": err.Error()}).Error("failed parsing response")
		return Err[Message](err)
	}
	return Ok(message)
}

// EditOriginalInteractionResponse patches the initial response message.
//
// Reference: https://discord.com/developers/docs/interactions/receiving-and-responding#edit-original-interaction-response
func (r *RestEngine) EditOriginalInteractionResponse(applicationID Snowflake, token string, opts EditMessageOptions) Result[Message] {
	reqBody, _ := json.Marshal(opts)
	res := r.Execute(Request{
		Method: "PATCH",
		URL:    "/webhooks/" + applicationID.String() + "/" + token + "/messages/@original",
		Body:   reqBody,
		Kind:   RequestKindInteraction,
	})
	if res.IsErr() {
		return Err[Message](res.Err())
	}
	body := res.Value()
	defer body.Close()

	var message Message
	if err := json.NewDecoder(body).Decode(&message); err != nil {
		r.logger.WithFields(map[string]any{"method": "PATCH", "url": "/webhooks/{id}/{token}/messages/@original", "error": err.Error()}).Error("failed parsing response")
		return Err[Message](err)
	}
	return Ok(message)
}

// DeleteOriginalInteractionResponse deletes the initial response message.
//
// Reference: https://discord.com/developers/docs/interactions/receiving-and-responding#delete-original-interaction-response
func (r *RestEngine) DeleteOriginalInteractionResponse(applicationID Snowflake, token string) Void {
	res := r.Execute(Request{
		Method: "DELETE",
		URL:    "/webhooks/" + applicationID.String() + "/" + token + "/messages/@original",
		Kind:   RequestKindInteraction,
	})
	if res.IsErr() {
		return ErrVoid(res.Err())
	}
	res.Value().Close()
	return OkVoid()
}

// CreateFollowupMessageOptions contains parameters for a followup
// message to an interaction.
type CreateFollowupMessageOptions struct {
	Content         string           `json:"content,omitempty"`
	TTS             bool             `json:"tts,omitempty"`
	Embeds          []Embed          `json:"embeds,omitempty"`
	AllowedMentions *AllowedMentions `json:"allowed_mentions,omitempty"`
	Components      []Component      `json:"components,omitempty"`
	Flags           MessageFlags     `json:"flags,omitempty"`
}

// CreateFollowupMessage sends a followup message for an interaction,
// usable after the initial response (and repeatedly, unlike the
// original response).
//
// Reference: https://discord.com/developers/docs/interactions/receiving-and-responding#create-followup-message
func (r *RestEngine) CreateFollowupMessage(applicationID Snowflake, token string, opts CreateFollowupMessageOptions) Result[Message] {
	reqBody, _ := json.Marshal(opts)
	res := r.Execute(Request{
		Method: "POST",
		URL:    "/webhooks/" + applicationID.String() + "/" + token,
		Body:   reqBody,
		Kind:   RequestKindInteraction,
	})
	if res.IsErr() {
		return Err[Message](res.Err())
	}
	body := res.Value()
	defer body.Close()

	var message Message
	if err := json.NewDecoder(body).Decode(&message); err != nil {
		r.logger.WithFields(map[string]any{"method": "POST", "url": "/webhooks/{id}/{token}", "error": err.Error()}).Error("failed parsing response")
		return Err[Message](err)
	}
	return Ok(message)
}

// EditFollowupMessage patches a followup message.
//
// Reference: https://discord.com/developers/docs/interactions/receiving-and-responding#edit-followup-message
func (r *RestEngine) EditFollowupMessage(applicationID Snowflake, token string, messageID Snowflake, opts EditMessageOptions) Result[Message] {
	reqBody, _ := json.Marshal(opts)
	res := r.Execute(Request{
		Method: "PATCH",
		URL:    "/webhooks/" + applicationID.String() + "/" + token + "/messages/" + messageID.String(),
		Body:   reqBody,
		Kind:   RequestKindInteraction,
	})
	if res.IsErr() {
		return Err[Message](res.Err())
	}
	body := res.Value()
	defer body.Close()

	var message Message
	if err := json.NewDecoder(body).Decode(&message); err != nil {
		r.logger.WithFields(map[string]any{"method": "PATCH", "url": "/webhooks/{id}/{token}/messages/{id}", "error": err.Error()}).Error("failed parsing response")
		return Err[Message](err)
	}
	return Ok(message)
}

// DeleteFollowupMessage deletes a followup message.
//
// Reference: https://discord.com/developers/docs/interactions/receiving-and-responding#delete-followup-message
func (r *RestEngine) DeleteFollowupMessage(applicationID Snowflake, token string, messageID Snowflake) Void {
	res := r.Execute(Request{
		Method: "DELETE",
		URL:    "/webhooks/" + applicationID.String() + "/" + token + "/messages/" + messageID.String(),
		Kind:   RequestKindInteraction,
	})
	if res.IsErr() {
		return ErrVoid(res.Err())
	}
	res.Value().Close()
	return OkVoid()
}
