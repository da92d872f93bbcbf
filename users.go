// Copyright (c) 2026 the slackweb authors
//
// Use of this source code is governed by the MIT License that can be found in
// the LICENSE file at the root of this repository.

package slackweb

// UsersGetPresenceResponse is the payload of the users.getPresence method.
// Only Presence is filled in for other users; the remaining fields are
// returned solely when asking about the authed user.
type UsersGetPresenceResponse struct {
	Presence        string `json:"presence" validate:"required"`
	Online          bool   `json:"online"`
	AutoAway        bool   `json:"auto_away"`
	ManualAway      bool   `json:"manual_away"`
	ConnectionCount int    `json:"connection_count"`
	LastActivity    int64  `json:"last_activity"`
}

// UsersGetPresence gets a user's current presence.
//
// Wraps https://api.slack.com/methods/users.getPresence
func UsersGetPresence(s RequestSender, token, user string) (*UsersGetPresenceResponse, error) {
	body, err := s.SendAuthed("users.getPresence", token, map[string]string{"user": user})
	if err != nil {
		return nil, err
	}

	resp := &UsersGetPresenceResponse{}
	if err := ParseResponse(body, resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// UsersInfoResponse is the payload of the users.info method.
type UsersInfoResponse struct {
	User User `json:"user"`
}

// UsersInfo gets information about a team member.
//
// Wraps https://api.slack.com/methods/users.info
func UsersInfo(s RequestSender, token, user string) (*UsersInfoResponse, error) {
	body, err := s.SendAuthed("users.info", token, map[string]string{"user": user})
	if err != nil {
		return nil, err
	}

	resp := &UsersInfoResponse{}
	if err := ParseResponse(body, resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// UsersListResponse is the payload of the users.list method. The order of
// Members is the order the server returned them in.
type UsersListResponse struct {
	Members []User `json:"members" validate:"dive"`
}

// UsersList lists all members of the team, including deleted and deactivated
// ones.
//
// Wraps https://api.slack.com/methods/users.list
func UsersList(s RequestSender, token string) (*UsersListResponse, error) {
	body, err := s.SendAuthed("users.list", token, nil)
	if err != nil {
		return nil, err
	}

	resp := &UsersListResponse{}
	if err := ParseResponse(body, resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// UsersSetActive marks the calling user as active.
//
// Wraps https://api.slack.com/methods/users.setActive
func UsersSetActive(s RequestSender, token string) error {
	body, err := s.SendAuthed("users.setActive", token, nil)
	if err != nil {
		return err
	}

	return ParseResponse(body, nil)
}

// UsersSetPresence manually sets the calling user's presence. Valid values
// for presence are "auto" and "away".
//
// Wraps https://api.slack.com/methods/users.setPresence
func UsersSetPresence(s RequestSender, token, presence string) error {
	body, err := s.SendAuthed("users.setPresence", token, map[string]string{"presence": presence})
	if err != nil {
		return err
	}

	return ParseResponse(body, nil)
}
