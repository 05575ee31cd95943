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
	"net/http/httptest"
	"testing"
)

func newTestRestEngine(handler http.HandlerFunc) (*RestEngine, *httptest.Server) {
	server := httptest.NewServer(handler)
	r := NewRestEngine(RestEngineConfig{
		BaseURL: server.URL,
		Token:   "test-token",
	})
	return r, server
}

func TestFetchChannelMessage(t *testing.T) {
	r, server := newTestRestEngine(func(w http.ResponseWriter, req *http.Request) {
		if req.Method != "GET" {
			t.Errorf("method = %s, want GET", req.Method)
		}
		if req.URL.Path != "/channels/1/messages/2" {
			t.Errorf("path = %s, want /channels/1/messages/2", req.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(Message{ID: 2, ChannelID: 1, Content: "hi"})
	})
	defer server.Close()

	res := r.FetchChannelMessage(Snowflake(1), Snowflake(2))
	if res.IsErr() {
		t.Fatalf("FetchChannelMessage() error: %v", res.Err())
	}
	if res.Value().Content != "hi" {
		t.Errorf("Content = %q, want %q", res.Value().Content, "hi")
	}
}

func TestCreateMessage(t *testing.T) {
	r, server := newTestRestEngine(func(w http.ResponseWriter, req *http.Request) {
		if req.Method != "POST" {
			t.Errorf("method = %s, want POST", req.Method)
		}
		var body CreateMessageOptions
		_ = json.NewDecoder(req.Body).Decode(&body)
		if body.Content != "hello" {
			t.Errorf("Content = %q, want %q", body.Content, "hello")
		}
		_ = json.NewEncoder(w).Encode(Message{ID: 5, ChannelID: 1, Content: body.Content})
	})
	defer server.Close()

	res := r.CreateMessage(Snowflake(1), CreateMessageOptions{Content: "hello"})
	if res.IsErr() {
		t.Fatalf("CreateMessage() error: %v", res.Err())
	}
	if res.Value().ID != Snowflake(5) {
		t.Errorf("ID = %v, want 5", res.Value().ID)
	}
}

func TestDeleteMessage(t *testing.T) {
	var gotReason string
	r, server := newTestRestEngine(func(w http.ResponseWriter, req *http.Request) {
		if req.Method != "DELETE" {
			t.Errorf("method = %s, want DELETE", req.Method)
		}
		gotReason = req.Header.Get("X-Audit-Log-Reason")
		w.WriteHeader(http.StatusNoContent)
	})
	defer server.Close()

	result := r.DeleteMessage(Snowflake(1), Snowflake(2), "cleanup")
	if result.IsErr() {
		t.Fatalf("DeleteMessage() error: %v", result.Err())
	}
	if gotReason != "cleanup" {
		t.Errorf("X-Audit-Log-Reason = %q, want %q", gotReason, "cleanup")
	}
}

func TestEditMessageOmitsUntouchedFields(t *testing.T) {
	var raw map[string]json.RawMessage
	r, server := newTestRestEngine(func(w http.ResponseWriter, req *http.Request) {
		_ = json.NewDecoder(req.Body).Decode(&raw)
		_ = json.NewEncoder(w).Encode(Message{ID: 2, ChannelID: 1})
	})
	defer server.Close()

	opts := EditMessageOptions{Content: Some("updated")}
	res := r.EditMessage(Snowflake(1), Snowflake(2), opts)
	if res.IsErr() {
		t.Fatalf("EditMessage() error: %v", res.Err())
	}
	if _, ok := raw["content"]; !ok {
		t.Error("expected content field to be present")
	}
	if _, ok := raw["embeds"]; ok {
		t.Error("expected untouched embeds field to be omitted, not sent as null")
	}
}
