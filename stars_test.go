// Copyright (c) 2026 the slackweb authors
//
// Use of this source code is governed by the MIT License that can be found in
// the LICENSE file at the root of this repository.

package slackweb

import "testing"

func TestStarsList(t *testing.T) {
	body := `{
		"ok": true,
		"items": [
			{
				"type": "message",
				"channel": "C024BE91L",
				"message": {"type": "message", "ts": "1358546515.000008", "user": "U2147483896", "text": "hello", "is_starred": true}
			},
			{
				"type": "file",
				"file": {"id": "F12345", "name": "notes.txt", "user": "U2147483896"}
			},
			{
				"type": "channel",
				"channel": "C024BE91L"
			}
		],
		"paging": {"count": 100, "total": 3, "page": 1, "pages": 1}
	}`

	t.Run("ok_response", func(t *testing.T) {
		s := respondWith(body)

		resp, err := StarsList(s, "TEST_TOKEN", nil)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}

		if len(s.params) != 0 {
			t.Errorf("sent params = %v, want none", s.params)
		}

		if len(resp.Items) != 3 {
			t.Fatalf("len(resp.Items) = %d, want 3", len(resp.Items))
		}

		if resp.Items[0].Type != "message" || resp.Items[0].Message == nil {
			t.Fatalf("resp.Items[0] = %+v, want a message item", resp.Items[0])
		}

		// channel reference decodes from a bare string here
		if resp.Items[0].Channel != "C024BE91L" {
			t.Errorf("resp.Items[0].Channel = %q, want %q", resp.Items[0].Channel, "C024BE91L")
		}

		if resp.Items[1].File == nil || resp.Items[1].File.Name != "notes.txt" {
			t.Fatalf("resp.Items[1] = %+v, want a file item named notes.txt", resp.Items[1])
		}

		if resp.Items[2].Message != nil || resp.Items[2].File != nil {
			t.Errorf("resp.Items[2] = %+v, want only a channel reference", resp.Items[2])
		}
	})

	t.Run("params_built", func(t *testing.T) {
		s := respondWith(body)

		if _, err := StarsList(s, "TEST_TOKEN", &StarsListParams{User: "U2147483896", Count: 50, Page: 3}); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}

		want := map[string]string{
			"user":  "U2147483896",
			"count": "50",
			"page":  "3",
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
