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
	"strings"

	"github.com/bytedance/sonic"
)

// RoutedMessage is the tolerant subset of a MESSAGE_CREATE payload the
// router needs (spec.md §4.L step 1). Fields missing from the wire
// payload default to their zero value rather than failing the parse.
type RoutedMessage struct {
	ChannelID Snowflake `json:"channel_id"`
	Content   string    `json:"content"`
	Author    struct {
		Bot      bool   `json:"bot"`
		Username string `json:"username"`
	} `json:"author"`
}

// CommandHandler handles a matched command invocation. args is the
// remainder of the message content after the command name and a single
// run of whitespace; userData is whatever the caller passed to Register.
type CommandHandler func(client *Client, message RoutedMessage, args string, userData any) Status

type routedCommand struct {
	handler  CommandHandler
	userData any
}

// Router is a thin matcher over MESSAGE_CREATE events (spec.md §4.L). It
// is entirely optional: a Client does not need one, and an embedder free
// to parse MESSAGE_CREATE dispatches itself instead.
type Router struct {
	client     *Client
	prefix     string
	ignoreBots bool
	caseFold   bool
	commands   map[string]routedCommand
}

// RouterConfig configures a Router.
type RouterConfig struct {
	Prefix     string
	IgnoreBots bool
	// CaseSensitive disables the default case-insensitive command lookup.
	CaseSensitive bool
}

// NewRouter builds a Router bound to client and wires it to receive every
// MESSAGE_CREATE dispatch the client's Dispatcher delivers.
func NewRouter(client *Client, cfg RouterConfig) *Router {
	r := &Router{
		client:     client,
		prefix:     cfg.Prefix,
		ignoreBots: cfg.IgnoreBots,
		caseFold:   !cfg.CaseSensitive,
		commands:   make(map[string]routedCommand, 16),
	}
	client.Dispatcher().On("MESSAGE_CREATE", func(shardID int, data json.RawMessage) {
		r.handle(data)
	})
	return r
}

// Register adds a named command. Names must be non-empty and contain no
// control characters (<= 0x20) or 0x7f; re-registering an existing name
// (after case-folding, unless CaseSensitive) reports Conflict.
func (r *Router) Register(name string, handler CommandHandler, userData any) Status {
	if name == "" {
		return StatusInvalidArg
	}
	for _, b := range []byte(name) {
		if b <= 0x20 || b == 0x7f {
			return StatusInvalidArg
		}
	}
	key := r.normalizeName(name)
	if _, exists := r.commands[key]; exists {
		return StatusConflict
	}
	r.commands[key] = routedCommand{handler: handler, userData: userData}
	return StatusOK
}

// Unregister removes a previously registered command.
func (r *Router) Unregister(name string) {
	delete(r.commands, r.normalizeName(name))
}

func (r *Router) normalizeName(name string) string {
	if r.caseFold {
		return strings.ToLower(name)
	}
	return name
}

// handle runs the full match-and-dispatch algorithm of spec.md §4.L
// against one raw MESSAGE_CREATE payload.
func (r *Router) handle(data []byte) {
	var msg RoutedMessage
	if err := sonic.Unmarshal(data, &msg); err != nil {
		return
	}
	if r.ignoreBots && msg.Author.Bot {
		return
	}

	content := strings.TrimLeft(msg.Content, " \t\n\r")
	if !strings.HasPrefix(content, r.prefix) {
		return
	}
	rest := content[len(r.prefix):]

	name, args := splitCommand(rest)
	if name == "" {
		return
	}

	cmd, ok := r.commands[r.normalizeName(name)]
	if !ok {
		return
	}
	cmd.handler(r.client, msg, args, cmd.userData)
}

// splitCommand extracts the first whitespace-delimited token as the
// command name; the remainder, after a single run of whitespace, is the
// args string.
func splitCommand(s string) (name, args string) {
	i := strings.IndexAny(s, " \t\n\r")
	if i < 0 {
		return s, ""
	}
	name = s[:i]
	rest := s[i:]
	rest = strings.TrimLeft(rest, " \t\n\r")
	return name, rest
}
