// Copyright (c) 2026 the slackweb authors
//
// Use of this source code is governed by the MIT License that can be found in
// the LICENSE file at the root of this repository.

package slackweb

import "strconv"

// StarsListParams are the optional arguments to StarsList. Zero values are
// omitted from the request entirely.
type StarsListParams struct {
	User  string
	Count int
	Page  int
}

// StarredItem is one starred thing. Type says which of the other fields is
// populated: "message" carries Message and Channel, "file" carries File,
// and the channel/im/group kinds carry only Channel.
type StarredItem struct {
	Type    string    `json:"type"`
	Channel ChannelID `json:"channel"`
	Message *Message  `json:"message"`
	File    *File     `json:"file"`
}

// StarsListResponse is the payload of the stars.list method. The order of
// Items is the order the server returned them in.
type StarsListResponse struct {
	Items  []StarredItem `json:"items" validate:"dive"`
	Paging Pagination    `json:"paging"`
}

// StarsList lists the items starred by a user, defaulting to the calling
// user when params carries no User. A nil params is the same as a zero one.
//
// Wraps https://api.slack.com/methods/stars.list
func StarsList(s RequestSender, token string, params *StarsListParams) (*StarsListResponse, error) {
	p := make(map[string]string)

	if params != nil {
		if len(params.User) > 0 {
			p["user"] = params.User
		}

		if params.Count > 0 {
			p["count"] = strconv.Itoa(params.Count)
		}

		if params.Page > 0 {
			p["page"] = strconv.Itoa(params.Page)
		}
	}

	body, err := s.SendAuthed("stars.list", token, p)
	if err != nil {
		return nil, err
	}

	resp := &StarsListResponse{}
	if err := ParseResponse(body, resp); err != nil {
		return nil, err
	}

	return resp, nil
}
