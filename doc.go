// Copyright (c) 2026 the slackweb authors
//
// Use of this source code is governed by the MIT License that can be found in
// the LICENSE file at the root of this repository.

// Package slackweb is a typed client binding for the Slack Web API. It
// exposes one function per API method, each of which builds the parameter
// set for the call, hands it to a RequestSender, and decodes the JSON
// response envelope into a typed result.
//
// The package is deliberately thin. A call is one HTTP round trip: there is
// no retrying, no caching, and no rate-limit bookkeeping. If you need any of
// those, wrap the RequestSender interface. That interface is also the seam
// used for testing, and for things like request logging.
//
// The default RequestSender is Client, which needs nothing more than
// something that can act like an *http.Client:
//
//	c, err := slackweb.New(&http.Client{Timeout: 10 * time.Second}, "")
//	if err != nil {
//		// ...
//	}
//
//	resp, err := slackweb.TeamInfo(c, token)
//
// Every call returns exactly one of a typed result or an error, and the
// error is one of three kinds: an *APIError when the server answered the
// request but rejected it (the "ok": false envelope), a *DecodeError when
// the response body did not match the expected shape, or a transport error
// propagated from the underlying HTTP client. The three are distinct types,
// so callers can tell "the token is bad" apart from "the network is down".
//
// Calls are stateless; a single Client is safe for concurrent use because
// nothing on it is mutated after construction.
package slackweb
