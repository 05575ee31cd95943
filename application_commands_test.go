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

func TestCreateGlobalApplicationCommand(t *testing.T) {
	var gotBody CreateApplicationCommandOptions
	r, server := newTestRestEngine(func(w http.ResponseWriter, req *http.Request) {
		if req.Method != "POST" {
			t.Errorf("method = %s, want POST", req.Method)
		}
		if req.URL.Path != "/applications/1/commands" {
			t.Errorf("path = %s, want /applications/1/commands", req.URL.Path)
		}
		_ = json.NewDecoder(req.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(ApplicationCommand{ID: 9, ApplicationID: 1, Name: gotBody.Name})
	})
	defer server.Close()

	res := r.CreateGlobalApplicationCommand(Snowflake(1), CreateApplicationCommandOptions{Name: "ping", Description: "pong"})
	if res.IsErr() {
		t.Fatalf("CreateGlobalApplicationCommand() error: %v", res.Err())
	}
	if res.Value().Name != "ping" {
		t.Errorf("Name = %q, want %q", res.Value().Name, "ping")
	}
	if gotBody.Description != "pong" {
		t.Errorf("sent Description = %q, want %q", gotBody.Description, "pong")
	}
}

func TestBulkOverwriteGuildApplicationCommands(t *testing.T) {
	r, server := newTestRestEngine(func(w http.ResponseWriter, req *http.Request) {
		if req.Method != "PUT" {
			t.Errorf("method = %s, want PUT", req.Method)
		}
		if req.URL.Path != "/applications/1/guilds/2/commands" {
			t.Errorf("path = %s, want /applications/1/guilds/2/commands", req.URL.Path)
		}
		_ = json.NewEncoder(w).Encode([]ApplicationCommand{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}})
	})
	defer server.Close()

	res := r.BulkOverwriteGuildApplicationCommands(Snowflake(1), Snowflake(2), []CreateApplicationCommandOptions{
		{Name: "a"}, {Name: "b"},
	})
	if res.IsErr() {
		t.Fatalf("BulkOverwriteGuildApplicationCommands() error: %v", res.Err())
	}
	if len(res.Value()) != 2 {
		t.Errorf("len = %d, want 2", len(res.Value()))
	}
}

func TestDeleteGlobalApplicationCommand(t *testing.T) {
	r, server := newTestRestEngine(func(w http.ResponseWriter, req *http.Request) {
		if req.Method != "DELETE" {
			t.Errorf("method = %s, want DELETE", req.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	})
	defer server.Close()

	result := r.DeleteGlobalApplicationCommand(Snowflake(1), Snowflake(2))
	if result.IsErr() {
		t.Fatalf("DeleteGlobalApplicationCommand() error: %v", result.Err())
	}
}
