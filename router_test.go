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

func TestSplitCommand(t *testing.T) {
	cases := []struct {
		in       string
		wantName string
		wantArgs string
	}{
		{"ping", "ping", ""},
		{"echo hello world", "echo", "hello world"},
		{"echo   hello", "echo", "hello"},
		{"", "", ""},
	}
	for _, c := range cases {
		name, args := splitCommand(c.in)
		if name != c.wantName || args != c.wantArgs {
			t.Errorf("splitCommand(%q) = (%q, %q), want (%q, %q)", c.in, name, args, c.wantName, c.wantArgs)
		}
	}
}

func newTestRouter(cfg RouterConfig) *Router {
	return &Router{
		prefix:     cfg.Prefix,
		ignoreBots: cfg.IgnoreBots,
		caseFold:   !cfg.CaseSensitive,
		commands:   make(map[string]routedCommand, 16),
	}
}

func TestRouter_RegisterRejectsEmptyAndControlChars(t *testing.T) {
	r := newTestRouter(RouterConfig{Prefix: "!"})
	if status := r.Register("", func(*Client, RoutedMessage, string, any) Status { return StatusOK }, nil); status != StatusInvalidArg {
		t.Fatalf("Register(\"\") = %v, want StatusInvalidArg", status)
	}
	if status := r.Register("bad\tname", func(*Client, RoutedMessage, string, any) Status { return StatusOK }, nil); status != StatusInvalidArg {
		t.Fatalf("Register with control char = %v, want StatusInvalidArg", status)
	}
}

func TestRouter_RegisterConflict(t *testing.T) {
	r := newTestRouter(RouterConfig{Prefix: "!"})
	noop := func(*Client, RoutedMessage, string, any) Status { return StatusOK }
	if status := r.Register("ping", noop, nil); status != StatusOK {
		t.Fatalf("first Register = %v, want StatusOK", status)
	}
	if status := r.Register("PING", noop, nil); status != StatusConflict {
		t.Fatalf("case-folded re-register = %v, want StatusConflict", status)
	}
}

func TestRouter_RegisterConflictCaseSensitive(t *testing.T) {
	r := newTestRouter(RouterConfig{Prefix: "!", CaseSensitive: true})
	noop := func(*Client, RoutedMessage, string, any) Status { return StatusOK }
	if status := r.Register("ping", noop, nil); status != StatusOK {
		t.Fatalf("first Register = %v, want StatusOK", status)
	}
	if status := r.Register("PING", noop, nil); status != StatusOK {
		t.Fatalf("case-sensitive re-register with different case = %v, want StatusOK", status)
	}
}

func TestRouter_HandleMatchesPrefixAndDispatches(t *testing.T) {
	r := newTestRouter(RouterConfig{Prefix: "!"})
	var gotArgs string
	called := false
	r.Register("echo", func(_ *Client, _ RoutedMessage, args string, _ any) Status {
		called = true
		gotArgs = args
		return StatusOK
	}, nil)

	r.handle([]byte(`{"channel_id":"1","content":"!echo hello world","author":{"bot":false}}`))

	if !called {
		t.Fatal("expected handler to be called")
	}
	if gotArgs != "hello world" {
		t.Fatalf("args = %q, want %q", gotArgs, "hello world")
	}
}

func TestRouter_HandleIgnoresBotsWhenConfigured(t *testing.T) {
	r := newTestRouter(RouterConfig{Prefix: "!", IgnoreBots: true})
	called := false
	r.Register("echo", func(*Client, RoutedMessage, string, any) Status {
		called = true
		return StatusOK
	}, nil)

	r.handle([]byte(`{"channel_id":"1","content":"!echo hi","author":{"bot":true}}`))

	if called {
		t.Fatal("expected handler not to be called for bot author")
	}
}

func TestRouter_HandleIgnoresWrongPrefix(t *testing.T) {
	r := newTestRouter(RouterConfig{Prefix: "!"})
	called := false
	r.Register("echo", func(*Client, RoutedMessage, string, any) Status {
		called = true
		return StatusOK
	}, nil)

	r.handle([]byte(`{"channel_id":"1","content":"?echo hi","author":{"bot":false}}`))

	if called {
		t.Fatal("expected handler not to be called when prefix does not match")
	}
}

func TestRouter_HandleIgnoresUnknownCommand(t *testing.T) {
	r := newTestRouter(RouterConfig{Prefix: "!"})
	called := false
	r.Register("echo", func(*Client, RoutedMessage, string, any) Status {
		called = true
		return StatusOK
	}, nil)

	r.handle([]byte(`{"channel_id":"1","content":"!unknown hi","author":{"bot":false}}`))

	if called {
		t.Fatal("expected handler not to be called for unregistered command")
	}
}

func TestRouter_Unregister(t *testing.T) {
	r := newTestRouter(RouterConfig{Prefix: "!"})
	called := false
	r.Register("echo", func(*Client, RoutedMessage, string, any) Status {
		called = true
		return StatusOK
	}, nil)
	r.Unregister("echo")

	r.handle([]byte(`{"channel_id":"1","content":"!echo hi","author":{"bot":false}}`))

	if called {
		t.Fatal("expected handler not to be called after Unregister")
	}
}
