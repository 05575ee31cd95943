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
	"strconv"
)

// FetchCurrentUser retrieves the user belonging to the configured token.
//
// Reference: https://discord.com/developers/docs/resources/user#get-current-user
func (r *RestEngine) FetchCurrentUser() Result[User] {
	res := r.Execute(Request{Method: "GET", URL: "/users/@me"})
	if res.IsErr() {
		return Err[User](res.Err())
	}
	body := res.Value()
	defer body.Close()

	var user User
	if err := json.NewDecoder(body).Decode(&user); err != nil {
		r.logger.WithFields(map[string]any{"method": "GET", "url": "/users/@me", "error": err.Error()}).Error("failed parsing response")
		return Err[User](err)
	}
	return Ok(user)
}

// FetchUser retrieves a user by ID.
//
// Reference: https://discord.com/developers/docs/resources/user#get-user
func (r *RestEngine) FetchUser(userID Snowflake) Result[User] {
	res := r.Execute(Request{Method: "GET", URL: "/users/" + userID.String()})
	if res.IsErr() {
		return Err[User](res.Err())
	}
	body := res.Value()
	defer body.Close()

	var user User
	if err := json.NewDecoder(body).Decode(&user); err != nil {
		r.logger.WithFields(map[string]any{"method": "GET", "url": "/users/{id}", "error": err.Error()}).Error("failed parsing response")
		return Err[User](err)
	}
	return Ok(user)
}

// ModifyCurrentUserOptions contains parameters for patching the current user.
//
// Reference: https://discord.com/developers/docs/resources/user#modify-current-user-json-params
type ModifyCurrentUserOptions struct {
	Username Option[string]      `json:"username,omitzero"`
	Avatar   Option[Base64Image] `json:"avatar,omitzero"`
	Banner   Option[Base64Image] `json:"banner,omitzero"`
}

// ModifyCurrentUser patches the current user's profile.
//
// Reference: https://discord.com/developers/docs/resources/user#modify-current-user
func (r *RestEngine) ModifyCurrentUser(opts ModifyCurrentUserOptions) Result[User] {
	reqBody, _ := json.Marshal(opts)
	res := r.Execute(Request{Method: "PATCH", URL: "/users/@me", Body: reqBody})
	if res.IsErr() {
		return Err[User](res.Err())
	}
	body := res.Value()
	defer body.Close()

	var user User
	if err := json.NewDecoder(body).Decode(&user); err != nil {
		r.logger.WithFields(map[string]any{"method": "PATCH", "url": "/users/@me", "error": err.Error()}).Error("failed parsing response")
		return Err[User](err)
	}
	return Ok(user)
}

// FetchCurrentUserGuildsOptions paginates the current user's guild list.
type FetchCurrentUserGuildsOptions struct {
	Before     Snowflake
	After      Snowflake
	Limit      int
	WithCounts bool
}

// FetchCurrentUserGuilds lists the guilds the current user is a member of.
//
// Reference: https://discord.com/developers/docs/resources/user#get-current-user-guilds
func (r *RestEngine) FetchCurrentUserGuilds(opts FetchCurrentUserGuildsOptions) Result[[]PartialGuild] {
	endpoint := "/users/@me/guilds?" + buildPaginationQuery(opts.Before, opts.After, opts.Limit)
	if opts.WithCounts {
		endpoint += "&with_counts=true"
	}
	res := r.Execute(Request{Method: "GET", URL: endpoint})
	if res.IsErr() {
		return Err[[]PartialGuild](res.Err())
	}
	body := res.Value()
	defer body.Close()

	var guilds []PartialGuild
	if err := json.NewDecoder(body).Decode(&guilds); err != nil {
		r.logger.WithFields(map[string]any{"method": "GET", "url": "/users/@me/guilds", "error": err.Error()}).Error("failed parsing response")
		return Err[[]PartialGuild](err)
	}
	return Ok(guilds)
}

// LeaveGuild removes the current user from a guild.
//
// Reference: https://discord.com/developers/docs/resources/user#leave-guild
func (r *RestEngine) LeaveGuild(guildID Snowflake) Void {
	res := r.Execute(Request{Method: "DELETE", URL: "/users/@me/guilds/" + guildID.String()})
	if res.IsErr() {
		return ErrVoid(res.Err())
	}
	res.Value().Close()
	return OkVoid()
}

// CreateDM opens (or retrieves an existing) DM channel with a user.
//
// Reference: https://discord.com/developers/docs/resources/user#create-dm
func (r *RestEngine) CreateDM(recipientID Snowflake) Result[*DMChannel] {
	reqBody, _ := json.Marshal(struct {
		RecipientID Snowflake `json:"recipient_id"`
	}{RecipientID: recipientID})

	res := r.Execute(Request{Method: "POST", URL: "/users/@me/channels", Body: reqBody})
	if res.IsErr() {
		return Err[*DMChannel](res.Err())
	}
	body := res.Value()
	defer body.Close()

	var dm DMChannel
	if err := json.NewDecoder(body).Decode(&dm); err != nil {
		r.logger.WithFields(map[string]any{"method": "POST", "url": "/users/@me/channels", "error": err.Error()}).Error("failed parsing response")
		return Err[*DMChannel](err)
	}
	return Ok(&dm)
}

// CreateGroupDMOptions contains parameters for opening a group DM.
type CreateGroupDMOptions struct {
	AccessTokens []string             `json:"access_tokens"`
	Nicks        map[Snowflake]string `json:"nicks,omitempty"`
}

// CreateGroupDM opens a group DM channel using OAuth2 access tokens of the
// participants (besides the current user).
//
// Reference: https://discord.com/developers/docs/resources/user#create-group-dm
func (r *RestEngine) CreateGroupDM(opts CreateGroupDMOptions) Result[*GroupDMChannel] {
	reqBody, _ := json.Marshal(opts)
	res := r.Execute(Request{Method: "POST", URL: "/users/@me/channels", Body: reqBody})
	if res.IsErr() {
		return Err[*GroupDMChannel](res.Err())
	}
	body := res.Value()
	defer body.Close()

	var dm GroupDMChannel
	if err := json.NewDecoder(body).Decode(&dm); err != nil {
		r.logger.WithFields(map[string]any{"method": "POST", "url": "/users/@me/channels", "error": err.Error()}).Error("failed parsing response")
		return Err[*GroupDMChannel](err)
	}
	return Ok(&dm)
}

// buildPaginationQuery renders the common before/after/limit triad shared
// by most list endpoints, omitting zero-value fields.
func buildPaginationQuery(before, after Snowflake, limit int) string {
	q := ""
	if !before.IsZero() {
		q += "before=" + before.String() + "&"
	}
	if !after.IsZero() {
		q += "after=" + after.String() + "&"
	}
	if limit > 0 {
		q += "limit=" + strconv.Itoa(limit)
	}
	return q
}
