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

// RoleConnectionMetadataType selects the comparison operator a linked-role
// requirement uses against the metadata value the application sets for a
// user.
//
// Reference: https://discord.com/developers/docs/resources/application-role-connection-metadata#application-role-connection-metadata-object-application-role-connection-metadata-type
type RoleConnectionMetadataType int

const (
	RoleConnectionMetadataTypeIntegerLessThanOrEqual RoleConnectionMetadataType = iota + 1
	RoleConnectionMetadataTypeIntegerGreaterThanOrEqual
	RoleConnectionMetadataTypeIntegerEqual
	RoleConnectionMetadataTypeIntegerNotEqual
	RoleConnectionMetadataTypeDatetimeLessThanOrEqual
	RoleConnectionMetadataTypeDatetimeGreaterThanOrEqual
	RoleConnectionMetadataTypeBooleanEqual
	RoleConnectionMetadataTypeBooleanNotEqual
)

// RoleConnectionMetadata describes one linked-role requirement an
// application exposes for guild administrators to gate a role on.
type RoleConnectionMetadata struct {
	Type                     RoleConnectionMetadataType `json:"type"`
	Key                      string                     `json:"key"`
	Name                     string                     `json:"name"`
	NameLocalizations        map[Locale]string          `json:"name_localizations,omitempty"`
	Description              string                     `json:"description"`
	DescriptionLocalizations map[Locale]string          `json:"description_localizations,omitempty"`
}

// FetchApplicationRoleConnectionMetadataRecords lists the role
// connection metadata records registered for the application.
func (r *RestEngine) FetchApplicationRoleConnectionMetadataRecords(applicationID Snowflake) Result[[]RoleConnectionMetadata] {
	endpoint := "/applications/" + applicationID.String() + "/role-connections/metadata"
	res := r.Execute(Request{Method: "GET", URL: endpoint})
	if res.IsErr() {
		return Err[[]RoleConnectionMetadata](res.Err())
	}
	body := res.Value()
	defer body.Close()

	var records []RoleConnectionMetadata
	if err := json.NewDecoder(body).Decode(&records); err != nil {
		r.logger.WithFields(map[string]any{"method": "GET", "url": endpoint, "error": err.Error()}).Error("failed parsing response")
		return Err[[]RoleConnectionMetadata](err)
	}
	return Ok(records)
}

// UpdateApplicationRoleConnectionMetadataRecords replaces the entire set
// of role connection metadata records for the application.
func (r *RestEngine) UpdateApplicationRoleConnectionMetadataRecords(applicationID Snowflake, records []RoleConnectionMetadata) Result[[]RoleConnectionMetadata] {
	reqBody, _ := json.Marshal(records)
	endpoint := "/applications/" + applicationID.String() + "/role-connections/metadata"
	res := r.Execute(Request{Method: "PUT", URL: endpoint, Body: reqBody})
	if res.IsErr() {
		return Err[[]RoleConnectionMetadata](res.Err())
	}
	body := res.Value()
	defer body.Close()

	var out []RoleConnectionMetadata
	if err := json.NewDecoder(body).Decode(&out); err != nil {
		r.logger.WithFields(map[string]any{"method": "PUT", "url": endpoint, "error": err.Error()}).Error("failed parsing response")
		return Err[[]RoleConnectionMetadata](err)
	}
	return Ok(out)
}

// ApplicationRoleConnection is the metadata one user has set for an
// application's linked role, obtained via an authorized OAuth2 Bearer
// token (role_connections.write scope).
type ApplicationRoleConnection struct {
	PlatformName     *string           `json:"platform_name"`
	PlatformUsername *string           `json:"platform_username"`
	Metadata         map[string]string `json:"metadata"`
}

// FetchUserApplicationRoleConnection retrieves the current user's role
// connection for an application. Requires a Bearer token, not the bot
// token.
func (r *RestEngine) FetchUserApplicationRoleConnection(applicationID Snowflake) Result[ApplicationRoleConnection] {
	endpoint := "/users/@me/applications/" + applicationID.String() + "/role-connection"
	res := r.Execute(Request{Method: "GET", URL: endpoint})
	if res.IsErr() {
		return Err[ApplicationRoleConnection](res.Err())
	}
	body := res.Value()
	defer body.Close()

	var conn ApplicationRoleConnection
	if err := json.NewDecoder(body).Decode(&conn); err != nil {
		r.logger.WithFields(map[string]any{"method": "GET", "url": endpoint, "error": err.Error()}).Error("failed parsing response")
		return Err[ApplicationRoleConnection](err)
	}
	return Ok(conn)
}

// UpdateUserApplicationRoleConnection updates the current user's role
// connection for an application. Requires a Bearer token, not the bot
// token.
func (r *RestEngine) UpdateUserApplicationRoleConnection(applicationID Snowflake, conn ApplicationRoleConnection) Result[ApplicationRoleConnection] {
	reqBody, _ := json.Marshal(conn)
	endpoint := "/users/@me/applications/" + applicationID.String() + "/role-connection"
	res := r.Execute(Request{Method: "PUT", URL: endpoint, Body: reqBody})
	if res.IsErr() {
		return Err[ApplicationRoleConnection](res.Err())
	}
	body := res.Value()
	defer body.Close()

	var out ApplicationRoleConnection
	if err := json.NewDecoder(body).Decode(&out); err != nil {
		r.logger.WithFields(map[string]any{"method": "PUT", "url": endpoint, "error": err.Error()}).Error("failed parsing response")
		return Err[ApplicationRoleConnection](err)
	}
	return Ok(out)
}
