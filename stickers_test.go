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
	"strings"
	"testing"
)

func TestCreateGuildStickerSendsMultipart(t *testing.T) {
	var gotName, gotTags string
	var gotFileBytes []byte
	r, server := newTestRestEngine(func(w http.ResponseWriter, req *http.Request) {
		if !strings.HasPrefix(req.Header.Get("Content-Type"), "multipart/form-data") {
			t.Fatalf("Content-Type = %q, want multipart/form-data prefix", req.Header.Get("Content-Type"))
		}
		if err := req.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("ParseMultipartForm() error: %v", err)
		}
		gotName = req.FormValue("name")
		gotTags = req.FormValue("tags")
		file, _, err := req.FormFile("file")
		if err != nil {
			t.Fatalf("FormFile() error: %v", err)
		}
		defer file.Close()
		buf := make([]byte, 16)
		n, _ := file.Read(buf)
		gotFileBytes = buf[:n]

		_ = json.NewEncoder(w).Encode(Sticker{ID: 1, Name: gotName})
	})
	defer server.Close()

	res := r.CreateGuildSticker(Snowflake(1), CreateGuildStickerOptions{
		Name:            "wave",
		Description:     "a waving hand",
		Tags:            "wave,hello",
		FileName:        "wave.png",
		FileData:        []byte("fake-png-bytes"),
		FileContentType: "image/png",
	}, "")
	if res.IsErr() {
		t.Fatalf("CreateGuildSticker() error: %v", res.Err())
	}
	if gotName != "wave" {
		t.Errorf("name field = %q, want %q", gotName, "wave")
	}
	if gotTags != "wave,hello" {
		t.Errorf("tags field = %q, want %q", gotTags, "wave,hello")
	}
	if string(gotFileBytes) != "fake-png-bytes" {
		t.Errorf("file contents = %q, want %q", gotFileBytes, "fake-png-bytes")
	}
}
