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
	"runtime/debug"
)

// rawHandler is what Dispatcher stores per event name: a callback given
// the shard that produced the event and its undecoded JSON body.
type rawHandler func(shardID int, data json.RawMessage)

// Dispatcher delivers every opcode-0 dispatch synchronously, in receipt
// order, on whichever goroutine calls Shard.Process (spec.md §4.I). It
// does not spawn a goroutine per event the way the teacher's dispatcher
// does: gateway dispatches for a single connection must be totally
// ordered, and a detached goroutine per event can reorder delivery.
//
// A panicking handler is recovered and logged; dispatch continues to the
// next registered handler for that event.
type Dispatcher struct {
	logger   Logger
	handlers map[string][]rawHandler
}

// NewDispatcher builds an empty Dispatcher.
func NewDispatcher(logger Logger) *Dispatcher {
	if logger == nil {
		logger = noopLogger{}
	}
	return &Dispatcher{
		logger:   logger,
		handlers: make(map[string][]rawHandler, 16),
	}
}

// On registers a raw handler for the given event name (e.g.
// "MESSAGE_CREATE"). Multiple handlers for the same event run in
// registration order.
func (d *Dispatcher) On(eventName string, handler rawHandler) {
	d.handlers[eventName] = append(d.handlers[eventName], handler)
}

// Dispatch delivers data to every handler registered for eventName.
func (d *Dispatcher) Dispatch(shardID int, eventName string, data json.RawMessage) {
	handlers := d.handlers[eventName]
	if len(handlers) == 0 {
		return
	}
	for _, h := range handlers {
		d.invoke(shardID, eventName, data, h)
	}
}

func (d *Dispatcher) invoke(shardID int, eventName string, data json.RawMessage, h rawHandler) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.WithFields(map[string]any{
				"event":    eventName,
				"shard_id": shardID,
				"panic":    r,
				"stack":    string(debug.Stack()),
			}).Error("recovered from panic in event handler")
		}
	}()
	h(shardID, data)
}

// OnReady registers a typed handler for the READY dispatch.
func (d *Dispatcher) OnReady(h func(ReadyEvent)) {
	d.On("READY", func(shardID int, data json.RawMessage) {
		h(ReadyEvent{ShardsID: shardID})
	})
}

// OnResumed registers a typed handler for the RESUMED dispatch.
func (d *Dispatcher) OnResumed(h func(ResumedEvent)) {
	d.On("RESUMED", func(shardID int, data json.RawMessage) {
		h(ResumedEvent{ShardsID: shardID})
	})
}

// OnMessageCreate registers a typed handler for MESSAGE_CREATE. A
// malformed payload is dropped with a logged warning.
func (d *Dispatcher) OnMessageCreate(h func(MessageCreateEvent)) {
	d.On("MESSAGE_CREATE", func(shardID int, data json.RawMessage) {
		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			d.logger.WithField("error", err.Error()).Warn("failed to parse MESSAGE_CREATE payload")
			return
		}
		h(MessageCreateEvent{ShardsID: shardID, Message: msg})
	})
}

// OnMessageDelete registers a typed handler for MESSAGE_DELETE. A
// malformed payload is dropped with a logged warning.
func (d *Dispatcher) OnMessageDelete(h func(MessageDeleteEvent)) {
	d.On("MESSAGE_DELETE", func(shardID int, data json.RawMessage) {
		var evt MessageDeleteEvent
		if err := json.Unmarshal(data, &evt); err != nil {
			d.logger.WithField("error", err.Error()).Warn("failed to parse MESSAGE_DELETE payload")
			return
		}
		evt.ShardsID = shardID
		h(evt)
	})
}

// OnGuildCreate registers a typed handler for GUILD_CREATE.
func (d *Dispatcher) OnGuildCreate(h func(GuildCreateEvent)) {
	d.On("GUILD_CREATE", func(shardID int, data json.RawMessage) {
		h(GuildCreateEvent{ShardsID: shardID, Raw: data})
	})
}

// OnInteractionCreate registers a typed handler for INTERACTION_CREATE.
// Malformed interaction payloads are dropped with a logged warning
// rather than panicking the dispatch loop.
func (d *Dispatcher) OnInteractionCreate(h func(InteractionCreateEvent)) {
	d.On("INTERACTION_CREATE", func(shardID int, data json.RawMessage) {
		interaction, err := UnmarshalInteraction(data)
		if err != nil {
			d.logger.WithField("error", err.Error()).Warn("failed to parse interaction payload")
			return
		}
		h(InteractionCreateEvent{ShardsID: shardID, Interaction: interaction})
	})
}

// OnVoiceStateUpdate registers a typed handler for VOICE_STATE_UPDATE.
func (d *Dispatcher) OnVoiceStateUpdate(h func(VoiceStateUpdateEvent)) {
	d.On("VOICE_STATE_UPDATE", func(shardID int, data json.RawMessage) {
		h(VoiceStateUpdateEvent{ShardsID: shardID, Raw: data})
	})
}
