// Copyright (c) 2026 the slackweb authors
//
// Use of this source code is governed by the MIT License that can be found in
// the LICENSE file at the root of this repository.

package slackweb

import (
	"encoding/json"
	"strconv"
)

// Pagination describes one page of a paged listing.
type Pagination struct {
	Count int `json:"count"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Pages int `json:"pages"`
}

// Topic is a channel or group topic, also reused for purposes since the two
// share a wire shape.
type Topic struct {
	Value   string `json:"value"`
	Creator string `json:"creator"`
	LastSet int64  `json:"last_set"`
}

// Message is a single message as it appears in histories, search matches,
// and starred items.
type Message struct {
	Type      string `json:"type"`
	Subtype   string `json:"subtype"`
	TS        string `json:"ts" validate:"required"`
	User      string `json:"user"`
	Username  string `json:"username"`
	BotID     string `json:"bot_id"`
	Text      string `json:"text"`
	IsStarred bool   `json:"is_starred"`
}

// Channel is a public channel record.
type Channel struct {
	ID          string   `json:"id" validate:"required"`
	Name        string   `json:"name"`
	IsChannel   bool     `json:"is_channel"`
	Created     int64    `json:"created"`
	Creator     string   `json:"creator"`
	IsArchived  bool     `json:"is_archived"`
	IsGeneral   bool     `json:"is_general"`
	IsMember    bool     `json:"is_member"`
	Members     []string `json:"members"`
	Topic       Topic    `json:"topic"`
	Purpose     Topic    `json:"purpose"`
	NumMembers  int      `json:"num_members"`
	LastRead    string   `json:"last_read"`
	UnreadCount int      `json:"unread_count"`
	Latest      *Message `json:"latest"`
}

// Group is a private group record.
type Group struct {
	ID          string   `json:"id" validate:"required"`
	Name        string   `json:"name"`
	IsGroup     bool     `json:"is_group"`
	Created     int64    `json:"created"`
	Creator     string   `json:"creator"`
	IsArchived  bool     `json:"is_archived"`
	IsOpen      bool     `json:"is_open"`
	Members     []string `json:"members"`
	Topic       Topic    `json:"topic"`
	Purpose     Topic    `json:"purpose"`
	LastRead    string   `json:"last_read"`
	UnreadCount int      `json:"unread_count"`
	Latest      *Message `json:"latest"`
}

// Im is a direct message channel record.
type Im struct {
	ID            string `json:"id" validate:"required"`
	IsIm          bool   `json:"is_im"`
	User          string `json:"user"`
	Created       int64  `json:"created"`
	IsUserDeleted bool   `json:"is_user_deleted"`
}

// User is a team member record.
type User struct {
	ID                string  `json:"id" validate:"required"`
	Name              string  `json:"name"`
	Deleted           bool    `json:"deleted"`
	Color             string  `json:"color"`
	Profile           Profile `json:"profile"`
	IsAdmin           bool    `json:"is_admin"`
	IsOwner           bool    `json:"is_owner"`
	IsPrimaryOwner    bool    `json:"is_primary_owner"`
	IsRestricted      bool    `json:"is_restricted"`
	IsUltraRestricted bool    `json:"is_ultra_restricted"`
	HasFiles          bool    `json:"has_files"`
}

// Profile holds the free-form profile fields of a User.
type Profile struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	RealName  string `json:"real_name"`
	Email     string `json:"email"`
	Skype     string `json:"skype"`
	Phone     string `json:"phone"`
	Image24   string `json:"image_24"`
	Image32   string `json:"image_32"`
	Image48   string `json:"image_48"`
	Image72   string `json:"image_72"`
	Image192  string `json:"image_192"`
}

// File is a file record as it appears in search matches and starred items.
type File struct {
	ID        string `json:"id" validate:"required"`
	Created   int64  `json:"created"`
	Timestamp int64  `json:"timestamp"`
	Name      string `json:"name"`
	Title     string `json:"title"`
	Mimetype  string `json:"mimetype"`
	Filetype  string `json:"filetype"`
	User      string `json:"user"`
	Size      int64  `json:"size"`
	URL       string `json:"url"`
	IsPublic  bool   `json:"is_public"`
}

// ChannelID is a channel reference in a response. Depending on the method,
// Slack returns either a bare ID string or an object with an "id" field for
// the same conceptual value (compare im.open with stars.list). This type
// gracefully decodes either case.
type ChannelID string

// UnmarshalJSON satisfies the json.Unmarshaler interface.
func (c *ChannelID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*c = ChannelID(s)
		return nil
	}

	var obj struct {
		ID string `json:"id"`
	}

	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}

	*c = ChannelID(obj.ID)

	return nil
}

// HistoryParams are the optional arguments shared by the channels.history,
// groups.history, and im.history methods. Zero values are omitted from the
// request entirely.
type HistoryParams struct {
	Latest    string
	Oldest    string
	Inclusive bool
	Count     int
}

// HistoryResponse is the shared payload shape of the history methods.
type HistoryResponse struct {
	Latest   string    `json:"latest"`
	Messages []Message `json:"messages" validate:"dive"`
	HasMore  bool      `json:"has_more"`
}

// historyParams builds the parameter mapping for a history call against the
// named channel, group, or im.
func historyParams(channel string, params *HistoryParams) map[string]string {
	p := map[string]string{"channel": channel}

	if params == nil {
		return p
	}

	if len(params.Latest) > 0 {
		p["latest"] = params.Latest
	}

	if len(params.Oldest) > 0 {
		p["oldest"] = params.Oldest
	}

	if params.Inclusive {
		p["inclusive"] = "1"
	}

	if params.Count > 0 {
		p["count"] = strconv.Itoa(params.Count)
	}

	return p
}
