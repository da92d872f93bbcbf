// Copyright (c) 2026 the slackweb authors
//
// Use of this source code is governed by the MIT License that can be found in
// the LICENSE file at the root of this repository.

package slackweb

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

// APIError is returned when the server answered the request but rejected it:
// the response envelope carried "ok": false. Code holds the server-supplied
// "err" string verbatim.
type APIError struct {
	Code string
}

// Error satisfies the error interface.
func (e *APIError) Error() string {
	return "slack API request failed: " + e.Code
}

// DecodeError is returned when the response body was not a JSON object, or
// did not match the expected schema for the requested method. Reason holds
// the underlying parse or validation error.
type DecodeError struct {
	Reason error
}

// Error satisfies the error interface.
func (e *DecodeError) Error() string {
	return "failed to decode slack API response: " + e.Reason.Error()
}

// Cause returns the underlying error, for use with pkg/errors.
func (e *DecodeError) Cause() error { return e.Reason }

// Unwrap returns the underlying error, for use with the errors package.
func (e *DecodeError) Unwrap() error { return e.Reason }

// envelope is the part of every Web API response that is shared between all
// methods: the "ok" flag, plus the error string when "ok" is false.
type envelope struct {
	Ok  bool   `json:"ok"`
	Err string `json:"err"`
}

// validate checks decoded payloads against their schema tags. A success
// envelope must carry the complete field set of its target type; we reject
// responses that would otherwise decode into half-populated records.
var validate = validator.New()

// ParseResponse decodes a raw Web API response body. When result is non-nil
// it must be a pointer to the method's response struct, and the top-level
// fields of the body are decoded into it after the envelope check; when
// result is nil the method is expected to return nothing beyond "ok".
//
// The return value is nil on success, an *APIError when the envelope carried
// "ok": false, or a *DecodeError when the body was malformed or failed
// schema validation. Exported so callers can cover API methods this package
// does not bind yet, on top of their own RequestSender.
func ParseResponse(body []byte, result interface{}) error {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return &DecodeError{Reason: err}
	}

	if !env.Ok {
		return &APIError{Code: env.Err}
	}

	if result == nil {
		return nil
	}

	if err := json.Unmarshal(body, result); err != nil {
		return &DecodeError{Reason: err}
	}

	if err := validate.Struct(result); err != nil {
		return &DecodeError{Reason: err}
	}

	return nil
}
