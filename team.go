// Copyright (c) 2026 the slackweb authors
//
// Use of this source code is governed by the MIT License that can be found in
// the LICENSE file at the root of this repository.

package slackweb

import "strconv"

// TeamAccessLogsParams are the optional arguments to TeamAccessLogs. Zero
// values are omitted from the request entirely.
type TeamAccessLogsParams struct {
	Count int
	Page  int
}

// LoginInfo is a single login event from the team access logs.
type LoginInfo struct {
	UserID    string `json:"user_id" validate:"required"`
	Username  string `json:"username" validate:"required"`
	DateFirst int64  `json:"date_first"`
	DateLast  int64  `json:"date_last"`
	Count     int    `json:"count"`
	IP        string `json:"ip"`
	UserAgent string `json:"user_agent"`
	ISP       string `json:"isp"`
	Country   string `json:"country"`
	Region    string `json:"region"`
}

// TeamAccessLogsResponse is the payload of the team.accessLogs method. The
// order of Logins is the order the server returned them in.
type TeamAccessLogsResponse struct {
	Logins []LoginInfo `json:"logins" validate:"dive"`
	Paging Pagination  `json:"paging"`
}

// TeamAccessLogs gets the access logs for the current team. A nil params is
// the same as a zero one.
//
// Wraps https://api.slack.com/methods/team.accessLogs
func TeamAccessLogs(s RequestSender, token string, params *TeamAccessLogsParams) (*TeamAccessLogsResponse, error) {
	p := make(map[string]string)

	if params != nil {
		if params.Count > 0 {
			p["count"] = strconv.Itoa(params.Count)
		}

		if params.Page > 0 {
			p["page"] = strconv.Itoa(params.Page)
		}
	}

	body, err := s.SendAuthed("team.accessLogs", token, p)
	if err != nil {
		return nil, err
	}

	resp := &TeamAccessLogsResponse{}
	if err := ParseResponse(body, resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// IconInfo is the set of icon URLs attached to a team record. ImageDefault
// reports whether the team is still using a default icon.
type IconInfo struct {
	Image34      string `json:"image_34"`
	Image44      string `json:"image_44"`
	Image68      string `json:"image_68"`
	Image88      string `json:"image_88"`
	Image102     string `json:"image_102"`
	Image132     string `json:"image_132"`
	ImageDefault bool   `json:"image_default"`
}

// Team describes the current team.
type Team struct {
	ID          string   `json:"id" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Domain      string   `json:"domain"`
	EmailDomain string   `json:"email_domain"`
	Icon        IconInfo `json:"icon"`
}

// TeamInfoResponse is the payload of the team.info method.
type TeamInfoResponse struct {
	Team Team `json:"team"`
}

// TeamInfo gets information about the current team.
//
// Wraps https://api.slack.com/methods/team.info
func TeamInfo(s RequestSender, token string) (*TeamInfoResponse, error) {
	body, err := s.SendAuthed("team.info", token, nil)
	if err != nil {
		return nil, err
	}

	resp := &TeamInfoResponse{}
	if err := ParseResponse(body, resp); err != nil {
		return nil, err
	}

	return resp, nil
}
