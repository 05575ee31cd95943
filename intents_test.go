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

import "testing"

func TestGatewayIntent_Has(t *testing.T) {
	combined := GatewayIntentGuilds | GatewayIntentGuildMessages | GatewayIntentMessageContent

	if !combined.Has(GatewayIntentGuilds) {
		t.Error("expected combined to have GatewayIntentGuilds")
	}
	if !combined.Has(GatewayIntentGuildMessages | GatewayIntentMessageContent) {
		t.Error("expected combined to have both GatewayIntentGuildMessages and GatewayIntentMessageContent")
	}
	if combined.Has(GatewayIntentGuildPresences) {
		t.Error("expected combined not to have GatewayIntentGuildPresences")
	}
	if combined.Has(GatewayIntentGuilds | GatewayIntentGuildPresences) {
		t.Error("expected Has to require every bit in the mask, not just one")
	}
}
