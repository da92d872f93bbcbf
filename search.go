// Copyright (c) 2026 the slackweb authors
//
// Use of this source code is governed by the MIT License that can be found in
// the LICENSE file at the root of this repository.

package slackweb

import "strconv"

// SearchParams are the optional arguments shared by the search methods.
// Zero values are omitted from the request entirely.
type SearchParams struct {
	Sort      string
	SortDir   string
	Highlight bool
	Count     int
	Page      int
}

// MessageMatches is one paged group of message results.
type MessageMatches struct {
	Total   int        `json:"total"`
	Paging  Pagination `json:"paging"`
	Matches []Message  `json:"matches" validate:"dive"`
}

// FileMatches is one paged group of file results.
type FileMatches struct {
	Total   int        `json:"total"`
	Paging  Pagination `json:"paging"`
	Matches []File     `json:"matches" validate:"dive"`
}

// SearchAllResponse is the payload of the search.all method.
type SearchAllResponse struct {
	Query    string         `json:"query"`
	Messages MessageMatches `json:"messages"`
	Files    FileMatches    `json:"files"`
}

// SearchMessagesResponse is the payload of the search.messages method.
type SearchMessagesResponse struct {
	Query    string         `json:"query"`
	Messages MessageMatches `json:"messages"`
}

// SearchFilesResponse is the payload of the search.files method.
type SearchFilesResponse struct {
	Query string      `json:"query"`
	Files FileMatches `json:"files"`
}

func searchParams(query string, params *SearchParams) map[string]string {
	p := map[string]string{"query": query}

	if params == nil {
		return p
	}

	if len(params.Sort) > 0 {
		p["sort"] = params.Sort
	}

	if len(params.SortDir) > 0 {
		p["sort_dir"] = params.SortDir
	}

	if params.Highlight {
		p["highlight"] = "1"
	}

	if params.Count > 0 {
		p["count"] = strconv.Itoa(params.Count)
	}

	if params.Page > 0 {
		p["page"] = strconv.Itoa(params.Page)
	}

	return p
}

// SearchAll searches both messages and files for the given query. A nil
// params is the same as a zero one.
//
// Wraps https://api.slack.com/methods/search.all
func SearchAll(s RequestSender, token, query string, params *SearchParams) (*SearchAllResponse, error) {
	body, err := s.SendAuthed("search.all", token, searchParams(query, params))
	if err != nil {
		return nil, err
	}

	resp := &SearchAllResponse{}
	if err := ParseResponse(body, resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// SearchMessages searches messages for the given query. A nil params is the
// same as a zero one.
//
// Wraps https://api.slack.com/methods/search.messages
func SearchMessages(s RequestSender, token, query string, params *SearchParams) (*SearchMessagesResponse, error) {
	body, err := s.SendAuthed("search.messages", token, searchParams(query, params))
	if err != nil {
		return nil, err
	}

	resp := &SearchMessagesResponse{}
	if err := ParseResponse(body, resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// SearchFiles searches files for the given query. A nil params is the same
// as a zero one.
//
// Wraps https://api.slack.com/methods/search.files
func SearchFiles(s RequestSender, token, query string, params *SearchParams) (*SearchFilesResponse, error) {
	body, err := s.SendAuthed("search.files", token, searchParams(query, params))
	if err != nil {
		return nil, err
	}

	resp := &SearchFilesResponse{}
	if err := ParseResponse(body, resp); err != nil {
		return nil, err
	}

	return resp, nil
}
