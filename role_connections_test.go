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
	"net/http"
	"testing"
)

func TestUpdateApplicationRoleConnectionMetadataRecords(t *testing.T) {
	var gotRecords []RoleConnectionMetadata
	r, server := newTestRestEngine(func(w http.ResponseWriter, req *http.Request) {
		if req.Method != "PUT" {
			t.Errorf("method = %s, want PUT", req.Method)
		}
		if req.URL.Path != "/applications/1/role-connections/metadata" {
			t.Errorf("path = %s, want /applications/1/role-connections/metadata", req.URL.Path)
		}
		_ = json.NewDecoder(req.Body).Decode(&gotRecords)
		_ = json.NewEncoder(w).Encode(gotRecords)
	})
	defer server.Close()

	records := []RoleConnectionMetadata{
		{Type: RoleConnectionMetadataTypeIntegerGreaterThanOrEqual, Key: "rank", Name: "Rank", Description: "minimum rank"},
	}
	res := r.UpdateApplicationRoleConnectionMetadataRecords(Snowflake(1), records)
	if res.IsErr() {
		t.Fatalf("UpdateApplicationRoleConnectionMetadataRecords() error: %v", res.Err())
	}
	if len(gotRecords) != 1 || gotRecords[0].Key != "rank" {
		t.Errorf("sent records = %+v, want one record with key %q", gotRecords, "rank")
	}
	if len(res.Value()) != 1 || res.Value()[0].Type != RoleConnectionMetadataTypeIntegerGreaterThanOrEqual {
		t.Errorf("returned records = %+v", res.Value())
	}
}

func TestFetchUserApplicationRoleConnection(t *testing.T) {
	r, server := newTestRestEngine(func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path != "/users/@me/applications/1/role-connection" {
			t.Errorf("path = %s, want /users/@me/applications/1/role-connection", req.URL.Path)
		}
		name := "acme"
		_ = json.NewEncoder(w).Encode(ApplicationRoleConnection{PlatformName: &name, Metadata: map[string]string{"rank": "5"}})
	})
	defer server.Close()

	res := r.FetchUserApplicationRoleConnection(Snowflake(1))
	if res.IsErr() {
		t.Fatalf("FetchUserApplicationRoleConnection() error: %v", res.Err())
	}
	if res.Value().PlatformName == nil || *res.Value().PlatformName != "acme" {
		t.Errorf("PlatformName = %v, want %q", res.Value().PlatformName, "acme")
	}
	if res.Value().Metadata["rank"] != "5" {
		t.Errorf("Metadata[rank] = %q, want %q", res.Value().Metadata["rank"], "5")
	}
}

func TestUpdateUserApplicationRoleConnection(t *testing.T) {
	var gotBody ApplicationRoleConnection
	r, server := newTestRestEngine(func(w http.ResponseWriter, req *http.Request) {
		if req.Method != "PUT" {
			t.Errorf("method = %s, want PUT", req.Method)
		}
		_ = json.NewDecoder(req.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(gotBody)
	})
	defer server.Close()

	username := "acme-user"
	res := r.UpdateUserApplicationRoleConnection(Snowflake(1), ApplicationRoleConnection{
		PlatformUsername: &username,
		Metadata:         map[string]string{"rank": "9"},
	})
	if res.IsErr() {
		t.Fatalf("UpdateUserApplicationRoleConnection() error: %v", res.Err())
	}
	if gotBody.PlatformUsername == nil || *gotBody.PlatformUsername != "acme-user" {
		t.Errorf("sent PlatformUsername = %v, want %q", gotBody.PlatformUsername, "acme-user")
	}
}
