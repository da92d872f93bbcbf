// Copyright (c) 2026 the slackweb authors
//
// Use of this source code is governed by the MIT License that can be found in
// the LICENSE file at the root of this repository.

package slackweb

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// AttachmentField is one short field inside an Attachment, rendered in a
// table-ish layout by Slack clients.
type AttachmentField struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short,omitempty"`
}

// Attachment is a rich message attachment. On the wire attachments travel as
// a JSON array serialized into a single form parameter, which
// ChatPostMessageParams handles for you.
type Attachment struct {
	Fallback string            `json:"fallback"`
	Text     string            `json:"text,omitempty"`
	Pretext  string            `json:"pretext,omitempty"`
	Color    string            `json:"color,omitempty"`
	Fields   []AttachmentField `json:"fields,omitempty"`
}

// ChatPostMessageParams are the optional arguments to ChatPostMessage. Zero
// values are omitted from the request entirely.
type ChatPostMessageParams struct {
	Username    string
	Parse       string
	LinkNames   bool
	Attachments []Attachment
	UnfurlLinks bool
	UnfurlMedia bool
	IconURL     string
	IconEmoji   string
}

// ChatPostMessageResponse is the payload of the chat.postMessage method.
type ChatPostMessageResponse struct {
	TS      string `json:"ts" validate:"required"`
	Channel string `json:"channel"`
}

// ChatPostMessage posts a message to a channel. A nil params is the same as
// a zero one.
//
// Wraps https://api.slack.com/methods/chat.postMessage
func ChatPostMessage(s RequestSender, token, channel, text string, params *ChatPostMessageParams) (*ChatPostMessageResponse, error) {
	p := map[string]string{
		"channel": channel,
		"text":    text,
	}

	if params != nil {
		if len(params.Username) > 0 {
			p["username"] = params.Username
		}

		if len(params.Parse) > 0 {
			p["parse"] = params.Parse
		}

		if params.LinkNames {
			p["link_names"] = "1"
		}

		if len(params.Attachments) > 0 {
			j, err := json.Marshal(params.Attachments)
			if err != nil {
				return nil, errors.Wrap(err, "failed to marshal attachments")
			}

			p["attachments"] = string(j)
		}

		if params.UnfurlLinks {
			p["unfurl_links"] = "1"
		}

		if params.UnfurlMedia {
			p["unfurl_media"] = "1"
		}

		if len(params.IconURL) > 0 {
			p["icon_url"] = params.IconURL
		}

		if len(params.IconEmoji) > 0 {
			p["icon_emoji"] = params.IconEmoji
		}
	}

	body, err := s.SendAuthed("chat.postMessage", token, p)
	if err != nil {
		return nil, err
	}

	resp := &ChatPostMessageResponse{}
	if err := ParseResponse(body, resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// ChatDeleteResponse is the payload of the chat.delete method.
type ChatDeleteResponse struct {
	TS      string `json:"ts"`
	Channel string `json:"channel"`
}

// ChatDelete deletes the message at the given timestamp from a channel.
//
// Wraps https://api.slack.com/methods/chat.delete
func ChatDelete(s RequestSender, token, channel, ts string) (*ChatDeleteResponse, error) {
	p := map[string]string{
		"channel": channel,
		"ts":      ts,
	}

	body, err := s.SendAuthed("chat.delete", token, p)
	if err != nil {
		return nil, err
	}

	resp := &ChatDeleteResponse{}
	if err := ParseResponse(body, resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// ChatUpdateResponse is the payload of the chat.update method.
type ChatUpdateResponse struct {
	TS      string `json:"ts"`
	Channel string `json:"channel"`
	Text    string `json:"text"`
}

// ChatUpdate changes the text of the message at the given timestamp.
//
// Wraps https://api.slack.com/methods/chat.update
func ChatUpdate(s RequestSender, token, channel, ts, text string) (*ChatUpdateResponse, error) {
	p := map[string]string{
		"channel": channel,
		"ts":      ts,
		"text":    text,
	}

	body, err := s.SendAuthed("chat.update", token, p)
	if err != nil {
		return nil, err
	}

	resp := &ChatUpdateResponse{}
	if err := ParseResponse(body, resp); err != nil {
		return nil, err
	}

	return resp, nil
}
