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
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	snowflakeSegmentRe = regexp.MustCompile(`\d{17,19}`)
	reactionSegmentRe  = regexp.MustCompile(`/reactions/.*`)
	webhookTokenRe     = regexp.MustCompile(`/webhooks/:id/[^/?]+`)
)

// RouteKey is the normalized bucket key corvus groups requests by: the
// method plus a path template with numeric IDs collapsed to `:id`, except
// that the channel/guild/webhook ID appearing as the route's major
// parameter keeps its literal value so distinct channels/guilds/webhooks
// never share a bucket.
//
// Exported as a pure function so the route-grouping rule can be unit
// tested without a live transport.
func RouteKey(method, path string, kind RequestKind) string {
	if kind == RequestKindInteraction && strings.HasPrefix(path, "/interactions/") && strings.HasSuffix(path, "/callback") {
		return method + ":/interactions/:id/:token/callback"
	}

	major := snowflakeSegmentRe.FindString(path)
	template := snowflakeSegmentRe.ReplaceAllString(path, ":id")
	template = reactionSegmentRe.ReplaceAllString(template, "/reactions/:reaction")
	template = webhookTokenRe.ReplaceAllString(template, "/webhooks/:id/:token")

	if major != "" && isMajorParamSegment(path, major) {
		template = reinsertMajorParam(template, major)
	}

	if method == "DELETE" && strings.HasPrefix(template, "/channels/") && strings.Contains(template, "/messages/") {
		if isOldMessageDelete(path) {
			template += "/DELETE_OLD_MESSAGE"
		}
	}

	return method + ":" + template
}

// isMajorParamSegment reports whether the first snowflake in path sits
// immediately after /channels/, /guilds/, or /webhooks/ — the platform's
// documented major-parameter positions.
func isMajorParamSegment(path, id string) bool {
	for _, prefix := range []string{"/channels/", "/guilds/", "/webhooks/"} {
		if idx := strings.Index(path, prefix+id); idx >= 0 {
			return true
		}
	}
	return false
}

// reinsertMajorParam restores the literal major-parameter ID into the
// first :id slot of an otherwise-templated route.
func reinsertMajorParam(template, major string) string {
	return strings.Replace(template, ":id", major, 1)
}

// isOldMessageDelete reports whether a DELETE /channels/{id}/messages/{id}
// path targets a message older than 14 days, which the platform buckets
// separately from recent-message deletes.
func isOldMessageDelete(path string) bool {
	segs := strings.Split(path, "/")
	if len(segs) == 0 {
		return false
	}
	last := segs[len(segs)-1]
	id, err := strconv.ParseUint(last, 10, 64)
	if err != nil {
		return false
	}
	age := time.Since(Snowflake(id).Timestamp())
	return age > 14*24*time.Hour
}
