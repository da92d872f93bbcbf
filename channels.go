// Copyright (c) 2026 the slackweb authors
//
// Use of this source code is governed by the MIT License that can be found in
// the LICENSE file at the root of this repository.

package slackweb

// ChannelsArchive archives a channel.
//
// Wraps https://api.slack.com/methods/channels.archive
func ChannelsArchive(s RequestSender, token, channel string) error {
	body, err := s.SendAuthed("channels.archive", token, map[string]string{"channel": channel})
	if err != nil {
		return err
	}

	return ParseResponse(body, nil)
}

// ChannelsCreateResponse is the payload of the channels.create method.
type ChannelsCreateResponse struct {
	Channel Channel `json:"channel"`
}

// ChannelsCreate creates a channel with the given name.
//
// Wraps https://api.slack.com/methods/channels.create
func ChannelsCreate(s RequestSender, token, name string) (*ChannelsCreateResponse, error) {
	body, err := s.SendAuthed("channels.create", token, map[string]string{"name": name})
	if err != nil {
		return nil, err
	}

	resp := &ChannelsCreateResponse{}
	if err := ParseResponse(body, resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// ChannelsHistory fetches history of messages and events from a channel. A
// nil params is the same as a zero one.
//
// Wraps https://api.slack.com/methods/channels.history
func ChannelsHistory(s RequestSender, token, channel string, params *HistoryParams) (*HistoryResponse, error) {
	body, err := s.SendAuthed("channels.history", token, historyParams(channel, params))
	if err != nil {
		return nil, err
	}

	resp := &HistoryResponse{}
	if err := ParseResponse(body, resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// ChannelsInfoResponse is the payload of the channels.info method.
type ChannelsInfoResponse struct {
	Channel Channel `json:"channel"`
}

// ChannelsInfo gets information about a channel.
//
// Wraps https://api.slack.com/methods/channels.info
func ChannelsInfo(s RequestSender, token, channel string) (*ChannelsInfoResponse, error) {
	body, err := s.SendAuthed("channels.info", token, map[string]string{"channel": channel})
	if err != nil {
		return nil, err
	}

	resp := &ChannelsInfoResponse{}
	if err := ParseResponse(body, resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// ChannelsInviteResponse is the payload of the channels.invite method.
type ChannelsInviteResponse struct {
	Channel Channel `json:"channel"`
}

// ChannelsInvite invites a user to a channel.
//
// Wraps https://api.slack.com/methods/channels.invite
func ChannelsInvite(s RequestSender, token, channel, user string) (*ChannelsInviteResponse, error) {
	p := map[string]string{
		"channel": channel,
		"user":    user,
	}

	body, err := s.SendAuthed("channels.invite", token, p)
	if err != nil {
		return nil, err
	}

	resp := &ChannelsInviteResponse{}
	if err := ParseResponse(body, resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// ChannelsJoinResponse is the payload of the channels.join method.
type ChannelsJoinResponse struct {
	Channel          Channel `json:"channel"`
	AlreadyInChannel bool    `json:"already_in_channel"`
}

// ChannelsJoin joins a channel, creating it if needed. The name argument is
// a channel name, not an ID.
//
// Wraps https://api.slack.com/methods/channels.join
func ChannelsJoin(s RequestSender, token, name string) (*ChannelsJoinResponse, error) {
	body, err := s.SendAuthed("channels.join", token, map[string]string{"name": name})
	if err != nil {
		return nil, err
	}

	resp := &ChannelsJoinResponse{}
	if err := ParseResponse(body, resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// ChannelsKick removes a user from a channel.
//
// Wraps https://api.slack.com/methods/channels.kick
func ChannelsKick(s RequestSender, token, channel, user string) error {
	p := map[string]string{
		"channel": channel,
		"user":    user,
	}

	body, err := s.SendAuthed("channels.kick", token, p)
	if err != nil {
		return err
	}

	return ParseResponse(body, nil)
}

// ChannelsLeaveResponse is the payload of the channels.leave method.
type ChannelsLeaveResponse struct {
	NotInChannel bool `json:"not_in_channel"`
}

// ChannelsLeave leaves a channel.
//
// Wraps https://api.slack.com/methods/channels.leave
func ChannelsLeave(s RequestSender, token, channel string) (*ChannelsLeaveResponse, error) {
	body, err := s.SendAuthed("channels.leave", token, map[string]string{"channel": channel})
	if err != nil {
		return nil, err
	}

	resp := &ChannelsLeaveResponse{}
	if err := ParseResponse(body, resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// ChannelsListResponse is the payload of the channels.list method. The order
// of Channels is the order the server returned them in.
type ChannelsListResponse struct {
	Channels []Channel `json:"channels" validate:"dive"`
}

// ChannelsList lists all channels in the team. When excludeArchived is true,
// archived channels are left out of the listing.
//
// Wraps https://api.slack.com/methods/channels.list
func ChannelsList(s RequestSender, token string, excludeArchived bool) (*ChannelsListResponse, error) {
	p := make(map[string]string)

	if excludeArchived {
		p["exclude_archived"] = "1"
	}

	body, err := s.SendAuthed("channels.list", token, p)
	if err != nil {
		return nil, err
	}

	resp := &ChannelsListResponse{}
	if err := ParseResponse(body, resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// ChannelsMark moves the read cursor in a channel to the given timestamp.
//
// Wraps https://api.slack.com/methods/channels.mark
func ChannelsMark(s RequestSender, token, channel, ts string) error {
	p := map[string]string{
		"channel": channel,
		"ts":      ts,
	}

	body, err := s.SendAuthed("channels.mark", token, p)
	if err != nil {
		return err
	}

	return ParseResponse(body, nil)
}

// ChannelsRenameResponse is the payload of the channels.rename method. The
// server returns a trimmed channel record under the "channel" key.
type ChannelsRenameResponse struct {
	Channel Channel `json:"channel"`
}

// ChannelsRename renames a channel.
//
// Wraps https://api.slack.com/methods/channels.rename
func ChannelsRename(s RequestSender, token, channel, name string) (*ChannelsRenameResponse, error) {
	p := map[string]string{
		"channel": channel,
		"name":    name,
	}

	body, err := s.SendAuthed("channels.rename", token, p)
	if err != nil {
		return nil, err
	}

	resp := &ChannelsRenameResponse{}
	if err := ParseResponse(body, resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// ChannelsSetPurposeResponse is the payload of the channels.setPurpose
// method: the purpose as the server recorded it.
type ChannelsSetPurposeResponse struct {
	Purpose string `json:"purpose"`
}

// ChannelsSetPurpose sets the purpose of a channel.
//
// Wraps https://api.slack.com/methods/channels.setPurpose
func ChannelsSetPurpose(s RequestSender, token, channel, purpose string) (*ChannelsSetPurposeResponse, error) {
	p := map[string]string{
		"channel": channel,
		"purpose": purpose,
	}

	body, err := s.SendAuthed("channels.setPurpose", token, p)
	if err != nil {
		return nil, err
	}

	resp := &ChannelsSetPurposeResponse{}
	if err := ParseResponse(body, resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// ChannelsSetTopicResponse is the payload of the channels.setTopic method:
// the topic as the server recorded it.
type ChannelsSetTopicResponse struct {
	Topic string `json:"topic"`
}

// ChannelsSetTopic sets the topic of a channel.
//
// Wraps https://api.slack.com/methods/channels.setTopic
func ChannelsSetTopic(s RequestSender, token, channel, topic string) (*ChannelsSetTopicResponse, error) {
	p := map[string]string{
		"channel": channel,
		"topic":   topic,
	}

	body, err := s.SendAuthed("channels.setTopic", token, p)
	if err != nil {
		return nil, err
	}

	resp := &ChannelsSetTopicResponse{}
	if err := ParseResponse(body, resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// ChannelsUnarchive unarchives a channel.
//
// Wraps https://api.slack.com/methods/channels.unarchive
func ChannelsUnarchive(s RequestSender, token, channel string) error {
	body, err := s.SendAuthed("channels.unarchive", token, map[string]string{"channel": channel})
	if err != nil {
		return err
	}

	return ParseResponse(body, nil)
}
