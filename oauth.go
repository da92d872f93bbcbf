// Copyright (c) 2026 the slackweb authors
//
// Use of this source code is governed by the MIT License that can be found in
// the LICENSE file at the root of this repository.

package slackweb

// OAuthAccessResponse is the payload of the oauth.access method.
type OAuthAccessResponse struct {
	AccessToken string `json:"access_token" validate:"required"`
	Scope       string `json:"scope"`
}

// OAuthAccess exchanges a temporary OAuth code for an API access token. This
// method authenticates with the application's client credentials instead of
// a token, so there is no token argument. redirectURI is optional and
// omitted when empty; when set it must match the one used during
// authorization.
//
// Wraps https://api.slack.com/methods/oauth.access
func OAuthAccess(s RequestSender, clientID, clientSecret, code, redirectURI string) (*OAuthAccessResponse, error) {
	p := map[string]string{
		"client_id":     clientID,
		"client_secret": clientSecret,
		"code":          code,
	}

	if len(redirectURI) > 0 {
		p["redirect_uri"] = redirectURI
	}

	body, err := s.SendAuthed("oauth.access", "", p)
	if err != nil {
		return nil, err
	}

	resp := &OAuthAccessResponse{}
	if err := ParseResponse(body, resp); err != nil {
		return nil, err
	}

	return resp, nil
}
