// Copyright (c) 2026 the slackweb authors
//
// Use of this source code is governed by the MIT License that can be found in
// the LICENSE file at the root of this repository.

package slackweb

// AuthTestResponse is the payload of the auth.test method: the identity the
// token authenticates as.
type AuthTestResponse struct {
	URL    string `json:"url"`
	Team   string `json:"team"`
	User   string `json:"user"`
	TeamID string `json:"team_id" validate:"required"`
	UserID string `json:"user_id" validate:"required"`
}

// AuthTest checks authentication and tells you who you are.
//
// Wraps https://api.slack.com/methods/auth.test
func AuthTest(s RequestSender, token string) (*AuthTestResponse, error) {
	body, err := s.SendAuthed("auth.test", token, nil)
	if err != nil {
		return nil, err
	}

	resp := &AuthTestResponse{}
	if err := ParseResponse(body, resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// AuthRevokeResponse is the payload of the auth.revoke method.
type AuthRevokeResponse struct {
	Revoked bool `json:"revoked"`
}

// AuthRevoke revokes the provided token. When test is true the server runs
// the call without actually revoking anything, which is the only way to
// safely exercise this method.
//
// Wraps https://api.slack.com/methods/auth.revoke
func AuthRevoke(s RequestSender, token string, test bool) (*AuthRevokeResponse, error) {
	p := make(map[string]string)

	if test {
		p["test"] = "1"
	}

	body, err := s.SendAuthed("auth.revoke", token, p)
	if err != nil {
		return nil, err
	}

	resp := &AuthRevokeResponse{}
	if err := ParseResponse(body, resp); err != nil {
		return nil, err
	}

	return resp, nil
}
