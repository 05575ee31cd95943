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

func TestCreateInteractionResponse(t *testing.T) {
	var gotBody InteractionResponse
	r, server := newTestRestEngine(func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path != "/interactions/1/tok/callback" {
			t.Errorf("path = %s, want /interactions/1/tok/callback", req.URL.Path)
		}
		_ = json.NewDecoder(req.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusNoContent)
	})
	defer server.Close()

	result := r.CreateInteractionResponse(Snowflake(1), "tok", InteractionResponse{
		Type: InteractionCallbackTypeChannelMessageWithSource,
		Data: &InteractionCallbackData{Content: "pong"},
	}, false)
	if result.IsErr() {
		t.Fatalf("CreateInteractionResponse() error: %v", result.Err())
	}
	if gotBody.Type != InteractionCallbackTypeChannelMessageWithSource {
		t.Errorf("Type = %v, want InteractionCallbackTypeChannelMessageWithSource", gotBody.Type)
	}
	if gotBody.Data == nil || gotBody.Data.Content != "pong" {
		t.Errorf("Data.Content = %+v, want \"pong\"", gotBody.Data)
	}
}

func TestCreateInteractionResponseWithResponseQuery(t *testing.T) {
	var gotQuery string
	r, server := newTestRestEngine(func(w http.ResponseWriter, req *http.Request) {
		gotQuery = req.URL.RawQuery
		w.WriteHeader(http.StatusNoContent)
	})
	defer server.Close()

	r.CreateInteractionResponse(Snowflake(1), "tok", InteractionResponse{Type: InteractionCallbackTypePong}, true)
	if gotQuery != "with_response=true" {
		t.Errorf("query = %q, want %q", gotQuery, "with_response=true")
	}
}

func TestCreateFollowupMessage(t *testing.T) {
	r, server := newTestRestEngine(func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path != "/webhooks/1/tok" {
			t.Errorf("path = %s, want /webhooks/1/tok", req.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(Message{ID: 7, ChannelID: 1, Content: "followup"})
	})
	defer server.Close()

	res := r.CreateFollowupMessage(Snowflake(1), "tok", CreateFollowupMessageOptions{Content: "followup"})
	if res.IsErr() {
		t.Fatalf("CreateFollowupMessage() error: %v", res.Err())
	}
	if res.Value().Content != "followup" {
		t.Errorf("Content = %q, want %q", res.Value().Content, "followup")
	}
}
