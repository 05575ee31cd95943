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
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/textproto"
)

// StickerType distinguishes a sticker pack's standard sticker from a
// guild's custom upload.
//
// Reference: https://discord.com/developers/docs/resources/sticker#sticker-object-sticker-types
type StickerType int

const (
	StickerTypeStandard StickerType = iota + 1
	StickerTypeGuild
)

// Sticker is a small image that can be attached to a message in place
// of (or alongside) an emoji.
//
// Reference: https://discord.com/developers/docs/resources/sticker#sticker-object
type Sticker struct {
	ID          Snowflake      `json:"id"`
	PackID      *Snowflake     `json:"pack_id,omitempty"`
	Name        string         `json:"name"`
	Description *string        `json:"description"`
	Tags        string         `json:"tags"`
	Type        StickerType    `json:"type"`
	FormatType  StickerFormatType `json:"format_type"`
	Available   bool           `json:"available,omitempty"`
	GuildID     *Snowflake     `json:"guild_id,omitempty"`
	User        *User          `json:"user,omitempty"`
	SortValue   int            `json:"sort_value,omitempty"`
}

// StickerFormatType is the encoding a sticker's image asset uses,
// distinct from image.go's StickerFormat file-extension helper, which
// derives the CDN/media URL suffix from this value.
type StickerFormatType int

const (
	StickerFormatTypePNG StickerFormatType = iota + 1
	StickerFormatTypeAPNG
	StickerFormatTypeLottie
	StickerFormatTypeGIF
)

// StickerPack is a curated, first-party collection of standard
// stickers.
type StickerPack struct {
	ID             Snowflake  `json:"id"`
	Stickers       []Sticker  `json:"stickers"`
	Name           string     `json:"name"`
	SKUID          Snowflake  `json:"sku_id"`
	CoverStickerID *Snowflake `json:"cover_sticker_id,omitempty"`
	Description    string     `json:"description"`
	BannerAssetID  *Snowflake `json:"banner_asset_id,omitempty"`
}

// FetchStickerPacks lists every standard sticker pack available.
func (r *RestEngine) FetchStickerPacks() Result[[]StickerPack] {
	res := r.Execute(Request{Method: "GET", URL: "/sticker-packs"})
	if res.IsErr() {
		return Err[[]StickerPack](res.Err())
	}
	body := res.Value()
	defer body.Close()

	var payload struct {
		StickerPacks []StickerPack `json:"sticker_packs"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		r.logger.WithFields(map[string]any{"method": "GET", "url": "/sticker-packs", "error": err.Error()}).Error("failed parsing response")
		return Err[[]StickerPack](err)
	}
	return Ok(payload.StickerPacks)
}

// FetchSticker retrieves a single sticker by ID.
func (r *RestEngine) FetchSticker(stickerID Snowflake) Result[Sticker] {
	endpoint := "/stickers/" + stickerID.String()
	res := r.Execute(Request{Method: "GET", URL: endpoint})
	if res.IsErr() {
		return Err[Sticker](res.Err())
	}
	body := res.Value()
	defer body.Close()

	var sticker Sticker
	if err := json.NewDecoder(body).Decode(&sticker); err != nil {
		r.logger.WithFields(map[string]any{"method": "GET", "url": endpoint, "error": err.Error()}).Error("failed parsing response")
		return Err[Sticker](err)
	}
	return Ok(sticker)
}

// FetchGuildStickers lists every custom sticker uploaded to a guild.
func (r *RestEngine) FetchGuildStickers(guildID Snowflake) Result[[]Sticker] {
	endpoint := "/guilds/" + guildID.String() + "/stickers"
	res := r.Execute(Request{Method: "GET", URL: endpoint})
	if res.IsErr() {
		return Err[[]Sticker](res.Err())
	}
	body := res.Value()
	defer body.Close()

	var stickers []Sticker
	if err := json.NewDecoder(body).Decode(&stickers); err != nil {
		r.logger.WithFields(map[string]any{"method": "GET", "url": endpoint, "error": err.Error()}).Error("failed parsing response")
		return Err[[]Sticker](err)
	}
	return Ok(stickers)
}

// FetchGuildSticker retrieves a single custom sticker from a guild.
func (r *RestEngine) FetchGuildSticker(guildID, stickerID Snowflake) Result[Sticker] {
	endpoint := "/guilds/" + guildID.String() + "/stickers/" + stickerID.String()
	res := r.Execute(Request{Method: "GET", URL: endpoint})
	if res.IsErr() {
		return Err[Sticker](res.Err())
	}
	body := res.Value()
	defer body.Close()

	var sticker Sticker
	if err := json.NewDecoder(body).Decode(&sticker); err != nil {
		r.logger.WithFields(map[string]any{"method": "GET", "url": endpoint, "error": err.Error()}).Error("failed parsing response")
		return Err[Sticker](err)
	}
	return Ok(sticker)
}

// CreateGuildStickerOptions describes a new custom sticker upload.
// FileName/FileData/FileContentType carry the raw sticker image, sent
// as multipart/form-data — the one endpoint in this family that cannot
// take a JSON body.
type CreateGuildStickerOptions struct {
	Name            string
	Description     string
	Tags            string
	FileName        string
	FileData        []byte
	FileContentType string
}

// CreateGuildSticker uploads a new custom sticker to a guild. Unlike
// every other call in this package, the request body is
// multipart/form-data rather than JSON.
func (r *RestEngine) CreateGuildSticker(guildID Snowflake, opts CreateGuildStickerOptions, reason string) Result[Sticker] {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for field, value := range map[string]string{"name": opts.Name, "description": opts.Description, "tags": opts.Tags} {
		if err := w.WriteField(field, value); err != nil {
			return Err[Sticker](err)
		}
	}
	part, err := w.CreatePart(multipartFileHeader(opts.FileName, opts.FileContentType))
	if err != nil {
		return Err[Sticker](err)
	}
	if _, err := part.Write(opts.FileData); err != nil {
		return Err[Sticker](err)
	}
	if err := w.Close(); err != nil {
		return Err[Sticker](err)
	}

	endpoint := "/guilds/" + guildID.String() + "/stickers"
	res := r.Execute(Request{
		Method:     "POST",
		URL:        endpoint,
		Body:       buf.Bytes(),
		BodyIsJSON: false,
		Headers:    map[string]string{"Content-Type": w.FormDataContentType()},
		Reason:     reason,
	})
	if res.IsErr() {
		return Err[Sticker](res.Err())
	}
	respBody := res.Value()
	defer respBody.Close()

	var sticker Sticker
	if err := json.NewDecoder(respBody).Decode(&sticker); err != nil {
		r.logger.WithFields(map[string]any{"method": "POST", "url": endpoint, "error": err.Error()}).Error("failed parsing response")
		return Err[Sticker](err)
	}
	return Ok(sticker)
}

func multipartFileHeader(fileName, contentType string) textproto.MIMEHeader {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+fileName+`"`)
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	return h
}

// ModifyGuildStickerOptions patches a custom sticker's metadata.
type ModifyGuildStickerOptions struct {
	Name        Option[string] `json:"name,omitzero"`
	Description Option[string] `json:"description,omitzero"`
	Tags        Option[string] `json:"tags,omitzero"`
}

// ModifyGuildSticker patches a custom sticker's metadata.
func (r *RestEngine) ModifyGuildSticker(guildID, stickerID Snowflake, opts ModifyGuildStickerOptions, reason string) Result[Sticker] {
	reqBody, _ := json.Marshal(opts)
	endpoint := "/guilds/" + guildID.String() + "/stickers/" + stickerID.String()
	res := r.Execute(Request{Method: "PATCH", URL: endpoint, Body: reqBody, Reason: reason})
	if res.IsErr() {
		return Err[Sticker](res.Err())
	}
	body := res.Value()
	defer body.Close()

	var sticker Sticker
	if err := json.NewDecoder(body).Decode(&sticker); err != nil {
		r.logger.WithFields(map[string]any{"method": "PATCH", "url": endpoint, "error": err.Error()}).Error("failed parsing response")
		return Err[Sticker](err)
	}
	return Ok(sticker)
}

// DeleteGuildSticker deletes a custom sticker from a guild.
func (r *RestEngine) DeleteGuildSticker(guildID, stickerID Snowflake, reason string) Void {
	endpoint := "/guilds/" + guildID.String() + "/stickers/" + stickerID.String()
	res := r.Execute(Request{Method: "DELETE", URL: endpoint, Reason: reason})
	if res.IsErr() {
		return ErrVoid(res.Err())
	}
	res.Value().Close()
	return OkVoid()
}
