// Copyright (c) 2026 the slackweb authors
//
// Use of this source code is governed by the MIT License that can be found in
// the LICENSE file at the root of this repository.

package slackweb

// GroupsCloseResponse is the payload of the groups.close method.
type GroupsCloseResponse struct {
	NoOp          bool `json:"no_op"`
	AlreadyClosed bool `json:"already_closed"`
}

// GroupsClose closes a private group.
//
// Wraps https://api.slack.com/methods/groups.close
func GroupsClose(s RequestSender, token, group string) (*GroupsCloseResponse, error) {
	body, err := s.SendAuthed("groups.close", token, map[string]string{"channel": group})
	if err != nil {
		return nil, err
	}

	resp := &GroupsCloseResponse{}
	if err := ParseResponse(body, resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// GroupsCreateResponse is the payload of the groups.create method.
type GroupsCreateResponse struct {
	Group Group `json:"group"`
}

// GroupsCreate creates a private group with the given name.
//
// Wraps https://api.slack.com/methods/groups.create
func GroupsCreate(s RequestSender, token, name string) (*GroupsCreateResponse, error) {
	body, err := s.SendAuthed("groups.create", token, map[string]string{"name": name})
	if err != nil {
		return nil, err
	}

	resp := &GroupsCreateResponse{}
	if err := ParseResponse(body, resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// GroupsHistory fetches history of messages and events from a private
// group. A nil params is the same as a zero one.
//
// Wraps https://api.slack.com/methods/groups.history
func GroupsHistory(s RequestSender, token, group string, params *HistoryParams) (*HistoryResponse, error) {
	body, err := s.SendAuthed("groups.history", token, historyParams(group, params))
	if err != nil {
		return nil, err
	}

	resp := &HistoryResponse{}
	if err := ParseResponse(body, resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// GroupsInviteResponse is the payload of the groups.invite method.
type GroupsInviteResponse struct {
	Group          Group `json:"group"`
	AlreadyInGroup bool  `json:"already_in_group"`
}

// GroupsInvite invites a user to a private group.
//
// Wraps https://api.slack.com/methods/groups.invite
func GroupsInvite(s RequestSender, token, group, user string) (*GroupsInviteResponse, error) {
	p := map[string]string{
		"channel": group,
		"user":    user,
	}

	body, err := s.SendAuthed("groups.invite", token, p)
	if err != nil {
		return nil, err
	}

	resp := &GroupsInviteResponse{}
	if err := ParseResponse(body, resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// GroupsKick removes a user from a private group.
//
// Wraps https://api.slack.com/methods/groups.kick
func GroupsKick(s RequestSender, token, group, user string) error {
	p := map[string]string{
		"channel": group,
		"user":    user,
	}

	body, err := s.SendAuthed("groups.kick", token, p)
	if err != nil {
		return err
	}

	return ParseResponse(body, nil)
}

// GroupsLeave leaves a private group.
//
// Wraps https://api.slack.com/methods/groups.leave
func GroupsLeave(s RequestSender, token, group string) error {
	body, err := s.SendAuthed("groups.leave", token, map[string]string{"channel": group})
	if err != nil {
		return err
	}

	return ParseResponse(body, nil)
}

// GroupsListResponse is the payload of the groups.list method. The order of
// Groups is the order the server returned them in.
type GroupsListResponse struct {
	Groups []Group `json:"groups" validate:"dive"`
}

// GroupsList lists the private groups the calling user has access to. When
// excludeArchived is true, archived groups are left out of the listing.
//
// Wraps https://api.slack.com/methods/groups.list
func GroupsList(s RequestSender, token string, excludeArchived bool) (*GroupsListResponse, error) {
	p := make(map[string]string)

	if excludeArchived {
		p["exclude_archived"] = "1"
	}

	body, err := s.SendAuthed("groups.list", token, p)
	if err != nil {
		return nil, err
	}

	resp := &GroupsListResponse{}
	if err := ParseResponse(body, resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// GroupsMark moves the read cursor in a private group to the given
// timestamp.
//
// Wraps https://api.slack.com/methods/groups.mark
func GroupsMark(s RequestSender, token, group, ts string) error {
	p := map[string]string{
		"channel": group,
		"ts":      ts,
	}

	body, err := s.SendAuthed("groups.mark", token, p)
	if err != nil {
		return err
	}

	return ParseResponse(body, nil)
}

// GroupsOpenResponse is the payload of the groups.open method.
type GroupsOpenResponse struct {
	NoOp        bool `json:"no_op"`
	AlreadyOpen bool `json:"already_open"`
}

// GroupsOpen opens a private group.
//
// Wraps https://api.slack.com/methods/groups.open
func GroupsOpen(s RequestSender, token, group string) (*GroupsOpenResponse, error) {
	body, err := s.SendAuthed("groups.open", token, map[string]string{"channel": group})
	if err != nil {
		return nil, err
	}

	resp := &GroupsOpenResponse{}
	if err := ParseResponse(body, resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// GroupsRenameResponse is the payload of the groups.rename method. The
// server returns the trimmed group record under the "channel" key, not
// "group".
type GroupsRenameResponse struct {
	Channel Group `json:"channel"`
}

// GroupsRename renames a private group.
//
// Wraps https://api.slack.com/methods/groups.rename
func GroupsRename(s RequestSender, token, group, name string) (*GroupsRenameResponse, error) {
	p := map[string]string{
		"channel": group,
		"name":    name,
	}

	body, err := s.SendAuthed("groups.rename", token, p)
	if err != nil {
		return nil, err
	}

	resp := &GroupsRenameResponse{}
	if err := ParseResponse(body, resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// GroupsSetPurposeResponse is the payload of the groups.setPurpose method:
// the purpose as the server recorded it.
type GroupsSetPurposeResponse struct {
	Purpose string `json:"purpose"`
}

// GroupsSetPurpose sets the purpose of a private group.
//
// Wraps https://api.slack.com/methods/groups.setPurpose
func GroupsSetPurpose(s RequestSender, token, group, purpose string) (*GroupsSetPurposeResponse, error) {
	p := map[string]string{
		"channel": group,
		"purpose": purpose,
	}

	body, err := s.SendAuthed("groups.setPurpose", token, p)
	if err != nil {
		return nil, err
	}

	resp := &GroupsSetPurposeResponse{}
	if err := ParseResponse(body, resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// GroupsSetTopicResponse is the payload of the groups.setTopic method: the
// topic as the server recorded it.
type GroupsSetTopicResponse struct {
	Topic string `json:"topic"`
}

// GroupsSetTopic sets the topic of a private group.
//
// Wraps https://api.slack.com/methods/groups.setTopic
func GroupsSetTopic(s RequestSender, token, group, topic string) (*GroupsSetTopicResponse, error) {
	p := map[string]string{
		"channel": group,
		"topic":   topic,
	}

	body, err := s.SendAuthed("groups.setTopic", token, p)
	if err != nil {
		return nil, err
	}

	resp := &GroupsSetTopicResponse{}
	if err := ParseResponse(body, resp); err != nil {
		return nil, err
	}

	return resp, nil
}
