// Copyright (c) 2026 the slackweb authors
//
// Use of this source code is governed by the MIT License that can be found in
// the LICENSE file at the root of this repository.

package slackweb

import "testing"

func TestAPITest(t *testing.T) {
	t.Run("echoes_args", func(t *testing.T) {
		s := respondWith(`{"ok": true, "args": {"foo": "bar"}}`)

		resp, err := APITest(s, &APITestParams{Foo: "bar"})
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}

		if s.method != "api.test" {
			t.Errorf("sent method = %q, want %q", s.method, "api.test")
		}

		// api.test needs no auth
		if s.token != "" {
			t.Errorf("sent token = %q, want none", s.token)
		}

		if got := s.params["foo"]; got != "bar" {
			t.Errorf(`params["foo"] = %q, want %q`, got, "bar")
		}

		if got := resp.Args["foo"]; got != "bar" {
			t.Errorf(`resp.Args["foo"] = %q, want %q`, got, "bar")
		}
	})

	t.Run("requested_error", func(t *testing.T) {
		s := respondWith(`{"ok": false, "err": "my_error"}`)

		_, err := APITest(s, &APITestParams{Error: "my_error"})

		apiErr, ok := err.(*APIError)
		if !ok {
			t.Fatalf("error = %v (%T), want *APIError", err, err)
		}

		if apiErr.Code != "my_error" {
			t.Fatalf("apiErr.Code = %q, want %q", apiErr.Code, "my_error")
		}

		if got := s.params["error"]; got != "my_error" {
			t.Errorf(`params["error"] = %q, want %q`, got, "my_error")
		}
	})

	t.Run("nil_params_sends_nothing", func(t *testing.T) {
		s := respondWith(`{"ok": true, "args": {}}`)

		if _, err := APITest(s, nil); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}

		if len(s.params) != 0 {
			t.Errorf("sent params = %v, want none", s.params)
		}
	})
}
