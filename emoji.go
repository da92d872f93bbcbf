// Copyright (c) 2026 the slackweb authors
//
// Use of this source code is governed by the MIT License that can be found in
// the LICENSE file at the root of this repository.

package slackweb

// EmojiListResponse is the payload of the emoji.list method. Emoji maps
// emoji names to image URLs; an aliased emoji maps to a string of the form
// "alias:name" instead of a URL.
type EmojiListResponse struct {
	Emoji map[string]string `json:"emoji"`
}

// EmojiList lists the custom emoji for the current team.
//
// Wraps https://api.slack.com/methods/emoji.list
func EmojiList(s RequestSender, token string) (*EmojiListResponse, error) {
	body, err := s.SendAuthed("emoji.list", token, nil)
	if err != nil {
		return nil, err
	}

	resp := &EmojiListResponse{}
	if err := ParseResponse(body, resp); err != nil {
		return nil, err
	}

	return resp, nil
}
