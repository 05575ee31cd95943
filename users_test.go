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

func TestFetchCurrentUser(t *testing.T) {
	r, server := newTestRestEngine(func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path != "/users/@me" {
			t.Errorf("path = %s, want /users/@me", req.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(User{ID: 42, Username: "someone"})
	})
	defer server.Close()

	res := r.FetchCurrentUser()
	if res.IsErr() {
		t.Fatalf("FetchCurrentUser() error: %v", res.Err())
	}
	if res.Value().Username != "someone" {
		t.Errorf("Username = %q, want %q", res.Value().Username, "someone")
	}
}

func TestCreateDM(t *testing.T) {
	var gotRecipient Snowflake
	r, server := newTestRestEngine(func(w http.ResponseWriter, req *http.Request) {
		var body struct {
			RecipientID Snowflake `json:"recipient_id"`
		}
		_ = json.NewDecoder(req.Body).Decode(&body)
		gotRecipient = body.RecipientID
		_ = json.NewEncoder(w).Encode(DMChannel{})
	})
	defer server.Close()

	res := r.CreateDM(Snowflake(7))
	if res.IsErr() {
		t.Fatalf("CreateDM() error: %v", res.Err())
	}
	if gotRecipient != Snowflake(7) {
		t.Errorf("recipient_id = %v, want 7", gotRecipient)
	}
}

func TestFetchCurrentUserGuildsQuery(t *testing.T) {
	var gotQuery string
	r, server := newTestRestEngine(func(w http.ResponseWriter, req *http.Request) {
		gotQuery = req.URL.RawQuery
		_ = json.NewEncoder(w).Encode([]PartialGuild{})
	})
	defer server.Close()

	r.FetchCurrentUserGuilds(FetchCurrentUserGuildsOptions{Limit: 10, WithCounts: true})
	if gotQuery != "limit=10&with_counts=true" {
		t.Errorf("query = %q, want %q", gotQuery, "limit=10&with_counts=true")
	}
}
