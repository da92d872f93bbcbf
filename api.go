// Copyright (c) 2026 the slackweb authors
//
// Use of this source code is governed by the MIT License that can be found in
// the LICENSE file at the root of this repository.

package slackweb

// APITestParams are the optional arguments to APITest. Error, when set, asks
// the server to respond with that error string; Foo is echoed back in the
// response args.
type APITestParams struct {
	Error string
	Foo   string
}

// APITestResponse is the payload of the api.test method.
type APITestResponse struct {
	Args map[string]string `json:"args"`
}

// APITest checks that the API is reachable and echoes the arguments sent to
// it. This method needs no authentication, so there is no token argument.
//
// Wraps https://api.slack.com/methods/api.test
func APITest(s RequestSender, params *APITestParams) (*APITestResponse, error) {
	p := make(map[string]string)

	if params != nil {
		if len(params.Error) > 0 {
			p["error"] = params.Error
		}

		if len(params.Foo) > 0 {
			p["foo"] = params.Foo
		}
	}

	body, err := s.SendAuthed("api.test", "", p)
	if err != nil {
		return nil, err
	}

	resp := &APITestResponse{}
	if err := ParseResponse(body, resp); err != nil {
		return nil, err
	}

	return resp, nil
}
