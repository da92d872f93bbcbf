// Copyright (c) 2026 the slackweb authors
//
// Use of this source code is governed by the MIT License that can be found in
// the LICENSE file at the root of this repository.

package slackweb

import "testing"

func TestImList(t *testing.T) {
	s := respondWith(`{
		"ok": true,
		"ims": [
			{"id": "D024BFF1M", "is_im": true, "user": "USLACKBOT", "created": 1372105335},
			{"id": "D024BE7RE", "is_im": true, "user": "U024BE7LH", "created": 1356250715, "is_user_deleted": true}
		]
	}`)

	resp, err := ImList(s, "TEST_TOKEN")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if len(resp.Ims) != 2 {
		t.Fatalf("len(resp.Ims) = %d, want 2", len(resp.Ims))
	}

	// server order must be preserved exactly
	if resp.Ims[0].User != "USLACKBOT" || resp.Ims[1].User != "U024BE7LH" {
		t.Errorf("ims out of order: %+v", resp.Ims)
	}

	if !resp.Ims[1].IsUserDeleted {
		t.Error("resp.Ims[1].IsUserDeleted = false, want true")
	}
}

func TestImOpen(t *testing.T) {
	t.Run("channel_as_object", func(t *testing.T) {
		s := respondWith(`{"ok": true, "channel": {"id": "D024BFF1M"}}`)

		resp, err := ImOpen(s, "TEST_TOKEN", "U024BE7LH")
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}

		if got := s.params["user"]; got != "U024BE7LH" {
			t.Errorf(`params["user"] = %q, want %q`, got, "U024BE7LH")
		}

		if resp.Channel != "D024BFF1M" {
			t.Errorf("resp.Channel = %q, want %q", resp.Channel, "D024BFF1M")
		}
	})

	t.Run("already_open", func(t *testing.T) {
		s := respondWith(`{"ok": true, "no_op": true, "already_open": true, "channel": {"id": "D024BFF1M"}}`)

		resp, err := ImOpen(s, "TEST_TOKEN", "U024BE7LH")
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}

		if !resp.NoOp || !resp.AlreadyOpen {
			t.Errorf("resp = %+v, want no_op and already_open", resp)
		}
	})
}

func TestImClose(t *testing.T) {
	s := respondWith(`{"ok": true, "already_closed": true}`)

	resp, err := ImClose(s, "TEST_TOKEN", "D024BFF1M")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if !resp.AlreadyClosed {
		t.Error("resp.AlreadyClosed = false, want true")
	}
}

func TestImMark(t *testing.T) {
	s := respondWith(`{"ok": true}`)

	if err := ImMark(s, "TEST_TOKEN", "D024BFF1M", "1358546515.000008"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if s.method != "im.mark" {
		t.Errorf("sent method = %q, want %q", s.method, "im.mark")
	}
}

func TestImHistory(t *testing.T) {
	s := respondWith(`{
		"ok": true,
		"latest": "1358547726.000003",
		"messages": [{"type": "message", "ts": "1358546515.000008", "user": "U2147483896", "text": "hello"}],
		"has_more": true
	}`)

	resp, err := ImHistory(s, "TEST_TOKEN", "D024BFF1M", &HistoryParams{Count: 1})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if got := s.params["count"]; got != "1" {
		t.Errorf(`params["count"] = %q, want %q`, got, "1")
	}

	if !resp.HasMore {
		t.Error("resp.HasMore = false, want true")
	}
}
