// Copyright (c) 2026 the slackweb authors
//
// Use of this source code is governed by the MIT License that can be found in
// the LICENSE file at the root of this repository.

package slackweb

import "testing"

const channelFixture = `{
	"id": "C024BE91L",
	"name": "fun",
	"is_channel": true,
	"created": 1360782804,
	"creator": "U024BE7LH",
	"is_archived": false,
	"is_general": false,
	"is_member": true,
	"members": ["U024BE7LH", "U024BE7LI"],
	"topic": {
		"value": "Fun times",
		"creator": "U024BE7LV",
		"last_set": 1369677212
	},
	"purpose": {
		"value": "This channel is for fun",
		"creator": "U024BE7LH",
		"last_set": 1360782804
	},
	"num_members": 2
}`

func TestChannelsList(t *testing.T) {
	t.Run("ok_response", func(t *testing.T) {
		s := respondWith(`{"ok": true, "channels": [` + channelFixture + `]}`)

		resp, err := ChannelsList(s, "TEST_TOKEN", false)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}

		if s.method != "channels.list" {
			t.Errorf("sent method = %q, want %q", s.method, "channels.list")
		}

		if len(s.params) != 0 {
			t.Errorf("sent params = %v, want none", s.params)
		}

		if len(resp.Channels) != 1 {
			t.Fatalf("len(resp.Channels) = %d, want 1", len(resp.Channels))
		}

		ch := resp.Channels[0]

		if ch.ID != "C024BE91L" {
			t.Errorf("ch.ID = %q, want %q", ch.ID, "C024BE91L")
		}

		if ch.Topic.Value != "Fun times" {
			t.Errorf("ch.Topic.Value = %q, want %q", ch.Topic.Value, "Fun times")
		}

		if len(ch.Members) != 2 {
			t.Errorf("len(ch.Members) = %d, want 2", len(ch.Members))
		}
	})

	t.Run("exclude_archived_sent", func(t *testing.T) {
		s := respondWith(`{"ok": true, "channels": []}`)

		if _, err := ChannelsList(s, "TEST_TOKEN", true); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}

		if got := s.params["exclude_archived"]; got != "1" {
			t.Errorf(`params["exclude_archived"] = %q, want %q`, got, "1")
		}
	})

	t.Run("channel_missing_id", func(t *testing.T) {
		s := respondWith(`{"ok": true, "channels": [{"name": "fun"}]}`)

		_, err := ChannelsList(s, "TEST_TOKEN", false)
		if _, ok := err.(*DecodeError); !ok {
			t.Fatalf("error = %v (%T), want *DecodeError", err, err)
		}
	})
}

func TestChannelsInfo(t *testing.T) {
	s := respondWith(`{"ok": true, "channel": ` + channelFixture + `}`)

	resp, err := ChannelsInfo(s, "TEST_TOKEN", "C024BE91L")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if got := s.params["channel"]; got != "C024BE91L" {
		t.Errorf(`params["channel"] = %q, want %q`, got, "C024BE91L")
	}

	if resp.Channel.Name != "fun" {
		t.Errorf("resp.Channel.Name = %q, want %q", resp.Channel.Name, "fun")
	}
}

func TestChannelsHistory(t *testing.T) {
	histBody := `{
		"ok": true,
		"latest": "1358547726.000003",
		"messages": [
			{"type": "message", "ts": "1358546515.000008", "user": "U2147483896", "text": "hello"},
			{"type": "message", "ts": "1358546515.000007", "user": "U2147483896", "text": "world", "is_starred": true}
		],
		"has_more": false
	}`

	t.Run("ok_response", func(t *testing.T) {
		s := respondWith(histBody)

		resp, err := ChannelsHistory(s, "TEST_TOKEN", "C024BE91L", nil)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}

		if len(resp.Messages) != 2 {
			t.Fatalf("len(resp.Messages) = %d, want 2", len(resp.Messages))
		}

		// server order must be preserved exactly
		if resp.Messages[0].Text != "hello" || resp.Messages[1].Text != "world" {
			t.Errorf("messages out of order: %+v", resp.Messages)
		}

		if !resp.Messages[1].IsStarred {
			t.Error("resp.Messages[1].IsStarred = false, want true")
		}

		if resp.HasMore {
			t.Error("resp.HasMore = true, want false")
		}
	})

	t.Run("params_built", func(t *testing.T) {
		s := respondWith(histBody)

		params := &HistoryParams{
			Latest:    "1358547726.000003",
			Oldest:    "1358546515.000007",
			Inclusive: true,
			Count:     50,
		}

		if _, err := ChannelsHistory(s, "TEST_TOKEN", "C024BE91L", params); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}

		want := map[string]string{
			"channel":   "C024BE91L",
			"latest":    "1358547726.000003",
			"oldest":    "1358546515.000007",
			"inclusive": "1",
			"count":     "50",
		}

		if len(s.params) != len(want) {
			t.Fatalf("sent params = %v, want %v", s.params, want)
		}

		for k, v := range want {
			if s.params[k] != v {
				t.Errorf("params[%q] = %q, want %q", k, s.params[k], v)
			}
		}
	})
}

func TestChannelsSetPurpose(t *testing.T) {
	s := respondWith(`{"ok": true, "purpose": "My special purpose"}`)

	resp, err := ChannelsSetPurpose(s, "TEST_TOKEN", "C024BE91L", "My special purpose")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if got := s.params["purpose"]; got != "My special purpose" {
		t.Errorf(`params["purpose"] = %q, want %q`, got, "My special purpose")
	}

	if resp.Purpose != "My special purpose" {
		t.Errorf("resp.Purpose = %q, want %q", resp.Purpose, "My special purpose")
	}
}

func TestChannelsMark(t *testing.T) {
	t.Run("ok_response", func(t *testing.T) {
		s := respondWith(`{"ok": true}`)

		if err := ChannelsMark(s, "TEST_TOKEN", "C024BE91L", "1358546515.000008"); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}

		if got := s.params["ts"]; got != "1358546515.000008" {
			t.Errorf(`params["ts"] = %q, want %q`, got, "1358546515.000008")
		}
	})

	t.Run("api_error", func(t *testing.T) {
		s := respondWith(`{"ok": false, "err": "channel_not_found"}`)

		err := ChannelsMark(s, "TEST_TOKEN", "C999", "1358546515.000008")

		apiErr, ok := err.(*APIError)
		if !ok {
			t.Fatalf("error = %v (%T), want *APIError", err, err)
		}

		if apiErr.Code != "channel_not_found" {
			t.Fatalf("apiErr.Code = %q, want %q", apiErr.Code, "channel_not_found")
		}
	})
}

func TestChannelsJoin(t *testing.T) {
	s := respondWith(`{"ok": true, "channel": ` + channelFixture + `, "already_in_channel": true}`)

	resp, err := ChannelsJoin(s, "TEST_TOKEN", "fun")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if got := s.params["name"]; got != "fun" {
		t.Errorf(`params["name"] = %q, want %q`, got, "fun")
	}

	if !resp.AlreadyInChannel {
		t.Error("resp.AlreadyInChannel = false, want true")
	}
}
