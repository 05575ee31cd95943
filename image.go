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
	"strconv"
	"strings"
)

const (
	ImageBaseURL = "https://cdn.discordapp.com/"
	MediaBaseURL = "https://media.discordapp.net/"
)

type ImageSize int

const (
	ImageSizeDefault ImageSize = 0
	ImageSize16      ImageSize = 16
	ImageSize32      ImageSize = 32
	ImageSize64      ImageSize = 64
	ImageSize128     ImageSize = 128
	ImageSize256     ImageSize = 256
	ImageSize512     ImageSize = 512
	ImageSize1024    ImageSize = 1024
	ImageSize2048    ImageSize = 2048
	ImageSize4096    ImageSize = 4096
)

// ImageFormat is the file extension a CDN asset URL is rendered with.
// Every asset-URL helper in this file shares the one type: ImageFormatDefault
// lets the helper pick GIF-if-animated-else-PNG itself from the asset hash,
// which is what the plain accessors (IconURL, AvatarURL, ...) pass;
// *With accessors let the caller force a specific format.
type ImageFormat string

const (
	ImageFormatDefault ImageFormat = ""
	ImageFormatPNG     ImageFormat = ".png"
	ImageFormatJPEG    ImageFormat = ".jpeg"
	ImageFormatWebP    ImageFormat = ".webp"
	ImageFormatGIF     ImageFormat = ".gif"
	ImageFormatAVIF    ImageFormat = ".avif"
)

// isAnimatedHash reports whether a CDN asset hash is Discord's "animated"
// convention: prefixed with "a_".
func isAnimatedHash(hash string) bool {
	return strings.HasPrefix(hash, "a_")
}

// resolveFormat applies the shared default/animated-fallback rule a
// majority of the platform's asset endpoints follow: ImageFormatDefault
// becomes GIF for an animated hash and PNG otherwise, and an explicit GIF
// request on a non-animated hash is downgraded to PNG (the CDN 415s
// otherwise). allowAnimated is false for endpoints (splashes, role icons,
// application assets) the platform never serves as GIF.
func resolveFormat(format ImageFormat, hash string, allowAnimated bool) ImageFormat {
	animated := allowAnimated && isAnimatedHash(hash)
	if format == ImageFormatDefault {
		if animated {
			return ImageFormatGIF
		}
		return ImageFormatPNG
	}
	if format == ImageFormatGIF && !animated {
		return ImageFormatPNG
	}
	return format
}

func sizeQuery(size ImageSize) string {
	if size == ImageSizeDefault {
		return ""
	}
	return "?size=" + strconv.Itoa(int(size))
}

// animatedQuery appends Discord's &animated=true marker WebP CDN URLs need
// to actually serve the animated frame of an animated WebP asset.
func animatedQuery(size ImageSize, animated bool) string {
	q := sizeQuery(size)
	if !animated {
		return q
	}
	sep := "?"
	if q != "" {
		sep = "&"
	}
	return q + sep + "animated=true"
}

/***********************
 *        Emoji        *
 ***********************/

// EmojiURL builds a custom emoji's CDN URL.
func EmojiURL(emojiID Snowflake, format ImageFormat, size ImageSize) string {
	if format == ImageFormatDefault {
		format = ImageFormatPNG
	}
	return ImageBaseURL + "emojis/" + emojiID.String() + string(format) + sizeQuery(size)
}

/***********************
 *        Guild        *
 ***********************/

// GuildIconURL builds a guild icon's CDN URL, following the GIF-if-animated
// default rule.
func GuildIconURL(guildID Snowflake, iconHash string, format ImageFormat, size ImageSize) string {
	format = resolveFormat(format, iconHash, true)
	url := ImageBaseURL + "icons/" + guildID.String() + "/" + iconHash + string(format)
	if format == ImageFormatWebP {
		return url + animatedQuery(size, isAnimatedHash(iconHash))
	}
	return url + sizeQuery(size)
}

// GuildSplashURL builds a guild invite splash's CDN URL. Splashes are never
// animated.
func GuildSplashURL(guildID Snowflake, splashHash string, format ImageFormat, size ImageSize) string {
	format = resolveFormat(format, splashHash, false)
	return ImageBaseURL + "splashes/" + guildID.String() + "/" + splashHash + string(format) + sizeQuery(size)
}

// GuildDiscoverySplashURL builds a guild discovery splash's CDN URL.
// Discovery splashes are never animated.
func GuildDiscoverySplashURL(guildID Snowflake, splashHash string, format ImageFormat, size ImageSize) string {
	format = resolveFormat(format, splashHash, false)
	return ImageBaseURL + "discovery-splashes/" + guildID.String() + "/" + splashHash + string(format) + sizeQuery(size)
}

// GuildBannerURL builds a guild banner's CDN URL, following the
// GIF-if-animated default rule.
func GuildBannerURL(guildID Snowflake, bannerHash string, format ImageFormat, size ImageSize) string {
	format = resolveFormat(format, bannerHash, true)
	url := ImageBaseURL + "banners/" + guildID.String() + "/" + bannerHash + string(format)
	if format == ImageFormatWebP {
		return url + animatedQuery(size, isAnimatedHash(bannerHash))
	}
	return url + sizeQuery(size)
}

/***********************
 *        User         *
 ***********************/

// DefaultUserAvatarURL returns the CDN URL for one of the platform's
// index-selected placeholder avatars; these have no format or size option.
func DefaultUserAvatarURL(index int) string {
	return ImageBaseURL + "embed/avatars/" + strconv.Itoa(index) + ".png"
}

// UserAvatarURL builds a user avatar's CDN URL, following the
// GIF-if-animated default rule.
func UserAvatarURL(userID Snowflake, avatarHash string, format ImageFormat, size ImageSize) string {
	format = resolveFormat(format, avatarHash, true)
	url := ImageBaseURL + "avatars/" + userID.String() + "/" + avatarHash + string(format)
	if format == ImageFormatWebP {
		return url + animatedQuery(size, isAnimatedHash(avatarHash))
	}
	return url + sizeQuery(size)
}

// UserBannerURL builds a user banner's CDN URL, following the
// GIF-if-animated default rule.
func UserBannerURL(userID Snowflake, bannerHash string, format ImageFormat, size ImageSize) string {
	format = resolveFormat(format, bannerHash, true)
	url := ImageBaseURL + "banners/" + userID.String() + "/" + bannerHash + string(format)
	if format == ImageFormatWebP {
		return url + animatedQuery(size, isAnimatedHash(bannerHash))
	}
	return url + sizeQuery(size)
}

// AvatarDecorationURL builds the CDN URL for an avatar decoration asset.
// Decorations are always served as PNG.
func AvatarDecorationURL(asset string, size ImageSize) string {
	return ImageBaseURL + "avatar-decoration-presets/" + asset + ".png" + sizeQuery(size)
}

/***********************
 *     Application     *
 ***********************/

// ApplicationIconURL builds an application icon's CDN URL. Application
// icons are never animated.
func ApplicationIconURL(appID Snowflake, iconHash string, format ImageFormat, size ImageSize) string {
	format = resolveFormat(format, iconHash, false)
	return ImageBaseURL + "app-icons/" + appID.String() + "/" + iconHash + string(format) + sizeQuery(size)
}

// ApplicationCoverURL builds an application cover's CDN URL. Covers are
// never animated.
func ApplicationCoverURL(appID Snowflake, coverHash string, format ImageFormat, size ImageSize) string {
	format = resolveFormat(format, coverHash, false)
	return ImageBaseURL + "app-icons/" + appID.String() + "/" + coverHash + string(format) + sizeQuery(size)
}

/***********************
 *       Sticker       *
 ***********************/

type StickerFormat string

const (
	StickerFormatPNG    StickerFormat = ".png"
	StickerFormatGIF    StickerFormat = ".gif"
	StickerFormatLottie StickerFormat = ".json"
)

// StickerURL builds a sticker's CDN URL. GIF stickers are served from
// MediaBaseURL rather than the regular CDN base.
func StickerURL(stickerID Snowflake, format StickerFormat) string {
	base := ImageBaseURL + "stickers/" + stickerID.String()
	if format == StickerFormatGIF {
		base = MediaBaseURL + "stickers/" + stickerID.String()
	}
	return base + string(format)
}

// StickerPackBannerURL builds a sticker pack banner's CDN URL.
func StickerPackBannerURL(stickerPackBannerAssetID Snowflake, format ImageFormat, size ImageSize) string {
	format = resolveFormat(format, "", false)
	return ImageBaseURL + "app-assets/710982414301790216/store/" + stickerPackBannerAssetID.String() + "/" + string(format) + sizeQuery(size)
}

/***********************
 *     Guild Member    *
 ***********************/

// GuildMemberAvatarURL builds a per-guild member avatar override's CDN
// URL, following the GIF-if-animated default rule.
func GuildMemberAvatarURL(guildID, userID Snowflake, avatarHash string, format ImageFormat, size ImageSize) string {
	format = resolveFormat(format, avatarHash, true)
	url := ImageBaseURL + "guilds/" + guildID.String() + "/users/" + userID.String() + "/avatars/" + avatarHash + string(format)
	if format == ImageFormatWebP {
		return url + animatedQuery(size, isAnimatedHash(avatarHash))
	}
	return url + sizeQuery(size)
}

// GuildMemberBannerURL builds a per-guild member banner override's CDN
// URL, following the GIF-if-animated default rule.
func GuildMemberBannerURL(guildID, userID Snowflake, bannerHash string, format ImageFormat, size ImageSize) string {
	format = resolveFormat(format, bannerHash, true)
	url := ImageBaseURL + "guilds/" + guildID.String() + "/users/" + userID.String() + "/banners/" + bannerHash + string(format)
	if format == ImageFormatWebP {
		return url + animatedQuery(size, isAnimatedHash(bannerHash))
	}
	return url + sizeQuery(size)
}

/***********************
 *      Guild Role     *
 ***********************/

// RoleIconURL builds a role icon's CDN URL. Role icons are never animated.
func RoleIconURL(roleID Snowflake, iconHash string, format ImageFormat, size ImageSize) string {
	format = resolveFormat(format, iconHash, false)
	return ImageBaseURL + "role-icons/" + roleID.String() + "/" + iconHash + string(format) + sizeQuery(size)
}
