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
	"io"
)

// ApplicationCommandType distinguishes a slash command from a
// context-menu command.
//
// Reference: https://discord.com/developers/docs/interactions/application-commands#application-command-object-application-command-types
type ApplicationCommandType int

const (
	ApplicationCommandTypeChatInput ApplicationCommandType = iota + 1
	ApplicationCommandTypeUser
	ApplicationCommandTypeMessage
	ApplicationCommandTypePrimaryEntryPoint
)

// ApplicationCommandOptionChoice is a single name/value pair offered to
// the user for a string, integer, or float option. Value is left as
// json.RawMessage since its concrete type depends on the enclosing
// option's type.
type ApplicationCommandOptionChoice struct {
	Name              string            `json:"name"`
	NameLocalizations map[Locale]string `json:"name_localizations,omitempty"`
	Value             json.RawMessage   `json:"value"`
}

// ApplicationCommand is a registered slash or context-menu command, as
// returned by the command-management endpoints.
//
// Reference: https://discord.com/developers/docs/interactions/application-commands#application-command-object
type ApplicationCommand struct {
	ID                       Snowflake                  `json:"id"`
	Type                     ApplicationCommandType      `json:"type,omitempty"`
	ApplicationID            Snowflake                  `json:"application_id"`
	GuildID                  *Snowflake                 `json:"guild_id,omitempty"`
	Name                     string                     `json:"name"`
	NameLocalizations        map[Locale]string          `json:"name_localizations,omitempty"`
	Description              string                     `json:"description"`
	DescriptionLocalizations map[Locale]string          `json:"description_localizations,omitempty"`
	Options                  []json.RawMessage          `json:"options,omitempty"`
	DefaultMemberPermissions *string                    `json:"default_member_permissions"`
	DMPermission             *bool                      `json:"dm_permission,omitempty"`
	NSFW                     bool                       `json:"nsfw,omitempty"`
	IntegrationTypes         []ApplicationIntegrationType `json:"integration_types,omitempty"`
	Contexts                 []InteractionContextType   `json:"contexts,omitempty"`
	Version                  Snowflake                  `json:"version"`
}

// CreateApplicationCommandOptions describes a command to register.
// Options holds values of the concrete ApplicationCommandOption* types
// defined alongside the option model.
type CreateApplicationCommandOptions struct {
	Name                     string                       `json:"name"`
	NameLocalizations        map[Locale]string            `json:"name_localizations,omitempty"`
	Description              string                       `json:"description,omitempty"`
	DescriptionLocalizations map[Locale]string            `json:"description_localizations,omitempty"`
	Options                  []ApplicationCommandOption   `json:"options,omitempty"`
	DefaultMemberPermissions *string                      `json:"default_member_permissions,omitempty"`
	DMPermission             *bool                        `json:"dm_permission,omitempty"`
	Type                     ApplicationCommandType       `json:"type,omitempty"`
	NSFW                     bool                         `json:"nsfw,omitempty"`
	IntegrationTypes         []ApplicationIntegrationType `json:"integration_types,omitempty"`
	Contexts                 []InteractionContextType     `json:"contexts,omitempty"`
}

func globalCommandsEndpoint(applicationID Snowflake) string {
	return "/applications/" + applicationID.String() + "/commands"
}

func guildCommandsEndpoint(applicationID, guildID Snowflake) string {
	return "/applications/" + applicationID.String() + "/guilds/" + guildID.String() + "/commands"
}

func decodeCommand(r *RestEngine, method, url string, body io.ReadCloser) Result[ApplicationCommand] {
	defer body.Close()
	var cmd ApplicationCommand
	if err := json.NewDecoder(body).Decode(&cmd); err != nil {
		r.logger.WithFields(map[string]any{"method": method, "url": url, "error": err.Error()}).Error("failed parsing response")
		return Err[ApplicationCommand](err)
	}
	return Ok(cmd)
}

// FetchGlobalApplicationCommands lists every global command registered
// for the application.
func (r *RestEngine) FetchGlobalApplicationCommands(applicationID Snowflake) Result[[]ApplicationCommand] {
	endpoint := globalCommandsEndpoint(applicationID)
	res := r.Execute(Request{Method: "GET", URL: endpoint})
	if res.IsErr() {
		return Err[[]ApplicationCommand](res.Err())
	}
	body := res.Value()
	defer body.Close()

	var commands []ApplicationCommand
	if err := json.NewDecoder(body).Decode(&commands); err != nil {
		r.logger.WithFields(map[string]any{"method": "GET", "url": endpoint, "error": err.Error()}).Error("failed parsing response")
		return Err[[]ApplicationCommand](err)
	}
	return Ok(commands)
}

// CreateGlobalApplicationCommand registers a new global command, or
// updates an existing one matching by name.
func (r *RestEngine) CreateGlobalApplicationCommand(applicationID Snowflake, opts CreateApplicationCommandOptions) Result[ApplicationCommand] {
	reqBody, _ := json.Marshal(opts)
	endpoint := globalCommandsEndpoint(applicationID)
	res := r.Execute(Request{Method: "POST", URL: endpoint, Body: reqBody})
	if res.IsErr() {
		return Err[ApplicationCommand](res.Err())
	}
	return decodeCommand(r, "POST", endpoint, res.Value())
}

// EditGlobalApplicationCommand patches an existing global command.
func (r *RestEngine) EditGlobalApplicationCommand(applicationID, commandID Snowflake, opts CreateApplicationCommandOptions) Result[ApplicationCommand] {
	reqBody, _ := json.Marshal(opts)
	endpoint := globalCommandsEndpoint(applicationID) + "/" + commandID.String()
	res := r.Execute(Request{Method: "PATCH", URL: endpoint, Body: reqBody})
	if res.IsErr() {
		return Err[ApplicationCommand](res.Err())
	}
	return decodeCommand(r, "PATCH", endpoint, res.Value())
}

// DeleteGlobalApplicationCommand unregisters a global command.
func (r *RestEngine) DeleteGlobalApplicationCommand(applicationID, commandID Snowflake) Void {
	res := r.Execute(Request{Method: "DELETE", URL: globalCommandsEndpoint(applicationID) + "/" + commandID.String()})
	if res.IsErr() {
		return ErrVoid(res.Err())
	}
	res.Value().Close()
	return OkVoid()
}

// BulkOverwriteGlobalApplicationCommands replaces every global command
// in one call; commands missing from the list are deleted.
func (r *RestEngine) BulkOverwriteGlobalApplicationCommands(applicationID Snowflake, commands []CreateApplicationCommandOptions) Result[[]ApplicationCommand] {
	reqBody, _ := json.Marshal(commands)
	endpoint := globalCommandsEndpoint(applicationID)
	res := r.Execute(Request{Method: "PUT", URL: endpoint, Body: reqBody})
	if res.IsErr() {
		return Err[[]ApplicationCommand](res.Err())
	}
	body := res.Value()
	defer body.Close()

	var out []ApplicationCommand
	if err := json.NewDecoder(body).Decode(&out); err != nil {
		r.logger.WithFields(map[string]any{"method": "PUT", "url": endpoint, "error": err.Error()}).Error("failed parsing response")
		return Err[[]ApplicationCommand](err)
	}
	return Ok(out)
}

// FetchGuildApplicationCommands lists the commands scoped to one guild.
func (r *RestEngine) FetchGuildApplicationCommands(applicationID, guildID Snowflake) Result[[]ApplicationCommand] {
	endpoint := guildCommandsEndpoint(applicationID, guildID)
	res := r.Execute(Request{Method: "GET", URL: endpoint})
	if res.IsErr() {
		return Err[[]ApplicationCommand](res.Err())
	}
	body := res.Value()
	defer body.Close()

	var commands []ApplicationCommand
	if err := json.NewDecoder(body).Decode(&commands); err != nil {
		r.logger.WithFields(map[string]any{"method": "GET", "url": endpoint, "error": err.Error()}).Error("failed parsing response")
		return Err[[]ApplicationCommand](err)
	}
	return Ok(commands)
}

// CreateGuildApplicationCommand registers (or updates, matching by
// name) a guild-scoped command.
func (r *RestEngine) CreateGuildApplicationCommand(applicationID, guildID Snowflake, opts CreateApplicationCommandOptions) Result[ApplicationCommand] {
	reqBody, _ := json.Marshal(opts)
	endpoint := guildCommandsEndpoint(applicationID, guildID)
	res := r.Execute(Request{Method: "POST", URL: endpoint, Body: reqBody})
	if res.IsErr() {
		return Err[ApplicationCommand](res.Err())
	}
	return decodeCommand(r, "POST", endpoint, res.Value())
}

// EditGuildApplicationCommand patches a guild-scoped command.
func (r *RestEngine) EditGuildApplicationCommand(applicationID, guildID, commandID Snowflake, opts CreateApplicationCommandOptions) Result[ApplicationCommand] {
	reqBody, _ := json.Marshal(opts)
	endpoint := guildCommandsEndpoint(applicationID, guildID) + "/" + commandID.String()
	res := r.Execute(Request{Method: "PATCH", URL: endpoint, Body: reqBody})
	if res.IsErr() {
		return Err[ApplicationCommand](res.Err())
	}
	return decodeCommand(r, "PATCH", endpoint, res.Value())
}

// DeleteGuildApplicationCommand unregisters a guild-scoped command.
func (r *RestEngine) DeleteGuildApplicationCommand(applicationID, guildID, commandID Snowflake) Void {
	res := r.Execute(Request{Method: "DELETE", URL: guildCommandsEndpoint(applicationID, guildID) + "/" + commandID.String()})
	if res.IsErr() {
		return ErrVoid(res.Err())
	}
	res.Value().Close()
	return OkVoid()
}

// BulkOverwriteGuildApplicationCommands replaces every command scoped to
// one guild in a single call.
func (r *RestEngine) BulkOverwriteGuildApplicationCommands(applicationID, guildID Snowflake, commands []CreateApplicationCommandOptions) Result[[]ApplicationCommand] {
	reqBody, _ := json.Marshal(commands)
	endpoint := guildCommandsEndpoint(applicationID, guildID)
	res := r.Execute(Request{Method: "PUT", URL: endpoint, Body: reqBody})
	if res.IsErr() {
		return Err[[]ApplicationCommand](res.Err())
	}
	body := res.Value()
	defer body.Close()

	var out []ApplicationCommand
	if err := json.NewDecoder(body).Decode(&out); err != nil {
		r.logger.WithFields(map[string]any{"method": "PUT", "url": endpoint, "error": err.Error()}).Error("failed parsing response")
		return Err[[]ApplicationCommand](err)
	}
	return Ok(out)
}

// ApplicationCommandPermission grants or denies a command's usability
// for a role, user, or channel within a guild.
type ApplicationCommandPermission struct {
	ID         Snowflake `json:"id"`
	Type       int       `json:"type"`
	Permission bool      `json:"permission"`
}

// GuildApplicationCommandPermissions is the full permission overwrite
// set for one command in one guild.
type GuildApplicationCommandPermissions struct {
	ID            Snowflake                      `json:"id"`
	ApplicationID Snowflake                      `json:"application_id"`
	GuildID       Snowflake                      `json:"guild_id"`
	Permissions   []ApplicationCommandPermission `json:"permissions"`
}

// FetchGuildApplicationCommandPermissions lists the permission
// overwrites for every command in a guild.
func (r *RestEngine) FetchGuildApplicationCommandPermissions(applicationID, guildID Snowflake) Result[[]GuildApplicationCommandPermissions] {
	endpoint := guildCommandsEndpoint(applicationID, guildID) + "/permissions"
	res := r.Execute(Request{Method: "GET", URL: endpoint})
	if res.IsErr() {
		return Err[[]GuildApplicationCommandPermissions](res.Err())
	}
	body := res.Value()
	defer body.Close()

	var out []GuildApplicationCommandPermissions
	if err := json.NewDecoder(body).Decode(&out); err != nil {
		r.logger.WithFields(map[string]any{"method": "GET", "url": endpoint, "error": err.Error()}).Error("failed parsing response")
		return Err[[]GuildApplicationCommandPermissions](err)
	}
	return Ok(out)
}

// EditGuildApplicationCommandPermissions overwrites the permissions for
// a single command in a guild. Requires a Bearer token obtained through
// OAuth2, not the bot token.
func (r *RestEngine) EditGuildApplicationCommandPermissions(applicationID, guildID, commandID Snowflake, permissions []ApplicationCommandPermission) Result[GuildApplicationCommandPermissions] {
	reqBody, _ := json.Marshal(struct {
		Permissions []ApplicationCommandPermission `json:"permissions"`
	}{Permissions: permissions})
	endpoint := guildCommandsEndpoint(applicationID, guildID) + "/" + commandID.String() + "/permissions"
	res := r.Execute(Request{Method: "PUT", URL: endpoint, Body: reqBody})
	if res.IsErr() {
		return Err[GuildApplicationCommandPermissions](res.Err())
	}
	body := res.Value()
	defer body.Close()

	var out GuildApplicationCommandPermissions
	if err := json.NewDecoder(body).Decode(&out); err != nil {
		r.logger.WithFields(map[string]any{"method": "PUT", "url": endpoint, "error": err.Error()}).Error("failed parsing response")
		return Err[GuildApplicationCommandPermissions](err)
	}
	return Ok(out)
}
