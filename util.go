// Copyright (c) 2026 the slackweb authors
//
// Use of this source code is governed by the MIT License that can be found in
// the LICENSE file at the root of this repository.

package slackweb

import (
	"net/http"
	"net/url"
	"strings"
)

func setUA(req *http.Request) {
	req.Header.Set("User-Agent", "slackweb/"+Version+" (+https://github.com/opsmode/slackweb)")
}

func postFormReq(url string, val url.Values) (*http.Request, error) {
	req, err := http.NewRequest(http.MethodPost, url, strings.NewReader(val.Encode()))
	if err != nil {
		return nil, err
	}

	setUA(req)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return req, nil
}
