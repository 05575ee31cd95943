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

func TestExecuteWebhookNoWaitReturnsEmptyMessage(t *testing.T) {
	called := false
	r, server := newTestRestEngine(func(w http.ResponseWriter, req *http.Request) {
		called = true
		if req.URL.RawQuery != "" {
			t.Errorf("query = %q, want empty when Wait is false", req.URL.RawQuery)
		}
		w.WriteHeader(http.StatusNoContent)
	})
	defer server.Close()

	res := r.ExecuteWebhook(Snowflake(1), "tok", ExecuteWebhookOptions{Content: "hi"}, ExecuteWebhookParams{})
	if res.IsErr() {
		t.Fatalf("ExecuteWebhook() error: %v", res.Err())
	}
	if !called {
		t.Fatal("expected the webhook endpoint to be called")
	}
	if res.Value().ID != 0 {
		t.Errorf("ID = %v, want zero value when Wait is false", res.Value().ID)
	}
}

func TestExecuteWebhookWaitDecodesMessage(t *testing.T) {
	r, server := newTestRestEngine(func(w http.ResponseWriter, req *http.Request) {
		if req.URL.RawQuery != "wait=true" {
			t.Errorf("query = %q, want %q", req.URL.RawQuery, "wait=true")
		}
		_ = json.NewEncoder(w).Encode(Message{ID: 3, ChannelID: 1, Content: "hi"})
	})
	defer server.Close()

	res := r.ExecuteWebhook(Snowflake(1), "tok", ExecuteWebhookOptions{Content: "hi"}, ExecuteWebhookParams{Wait: true})
	if res.IsErr() {
		t.Fatalf("ExecuteWebhook() error: %v", res.Err())
	}
	if res.Value().ID != Snowflake(3) {
		t.Errorf("ID = %v, want 3", res.Value().ID)
	}
}

func TestExecuteWebhookThreadIDQuery(t *testing.T) {
	var gotQuery string
	r, server := newTestRestEngine(func(w http.ResponseWriter, req *http.Request) {
		gotQuery = req.URL.RawQuery
		w.WriteHeader(http.StatusNoContent)
	})
	defer server.Close()

	r.ExecuteWebhook(Snowflake(1), "tok", ExecuteWebhookOptions{Content: "hi"}, ExecuteWebhookParams{ThreadID: Snowflake(42)})
	if gotQuery != "thread_id=42" {
		t.Errorf("query = %q, want %q", gotQuery, "thread_id=42")
	}
}
