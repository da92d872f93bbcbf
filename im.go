// Copyright (c) 2026 the slackweb authors
//
// Use of this source code is governed by the MIT License that can be found in
// the LICENSE file at the root of this repository.

package slackweb

// ImCloseResponse is the payload of the im.close method.
type ImCloseResponse struct {
	NoOp          bool `json:"no_op"`
	AlreadyClosed bool `json:"already_closed"`
}

// ImClose closes a direct message channel.
//
// Wraps https://api.slack.com/methods/im.close
func ImClose(s RequestSender, token, channel string) (*ImCloseResponse, error) {
	body, err := s.SendAuthed("im.close", token, map[string]string{"channel": channel})
	if err != nil {
		return nil, err
	}

	resp := &ImCloseResponse{}
	if err := ParseResponse(body, resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// ImHistory fetches history of messages and events from a direct message
// channel. A nil params is the same as a zero one.
//
// Wraps https://api.slack.com/methods/im.history
func ImHistory(s RequestSender, token, channel string, params *HistoryParams) (*HistoryResponse, error) {
	body, err := s.SendAuthed("im.history", token, historyParams(channel, params))
	if err != nil {
		return nil, err
	}

	resp := &HistoryResponse{}
	if err := ParseResponse(body, resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// ImListResponse is the payload of the im.list method. The order of Ims is
// the order the server returned them in.
type ImListResponse struct {
	Ims []Im `json:"ims" validate:"dive"`
}

// ImList lists the direct message channels for the calling user.
//
// Wraps https://api.slack.com/methods/im.list
func ImList(s RequestSender, token string) (*ImListResponse, error) {
	body, err := s.SendAuthed("im.list", token, nil)
	if err != nil {
		return nil, err
	}

	resp := &ImListResponse{}
	if err := ParseResponse(body, resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// ImMark moves the read cursor in a direct message channel to the given
// timestamp.
//
// Wraps https://api.slack.com/methods/im.mark
func ImMark(s RequestSender, token, channel, ts string) error {
	p := map[string]string{
		"channel": channel,
		"ts":      ts,
	}

	body, err := s.SendAuthed("im.mark", token, p)
	if err != nil {
		return err
	}

	return ParseResponse(body, nil)
}

// ImOpenResponse is the payload of the im.open method. Channel decodes from
// the {"id": "..."} object the server sends here, even though other methods
// return channel references as bare strings.
type ImOpenResponse struct {
	NoOp        bool      `json:"no_op"`
	AlreadyOpen bool      `json:"already_open"`
	Channel     ChannelID `json:"channel"`
}

// ImOpen opens a direct message channel with the given user.
//
// Wraps https://api.slack.com/methods/im.open
func ImOpen(s RequestSender, token, user string) (*ImOpenResponse, error) {
	body, err := s.SendAuthed("im.open", token, map[string]string{"user": user})
	if err != nil {
		return nil, err
	}

	resp := &ImOpenResponse{}
	if err := ParseResponse(body, resp); err != nil {
		return nil, err
	}

	return resp, nil
}
