// Copyright (c) 2026 the slackweb authors
//
// Use of this source code is governed by the MIT License that can be found in
// the LICENSE file at the root of this repository.

package slackweb

import (
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// Version is the version of this package.
const Version = "0.1.0"

// DefaultEndpoint is the base URL API methods are appended to when no other
// endpoint is given to New.
const DefaultEndpoint = "https://slack.com/api/"

// HTTPClient represents the functionality we need from an *http.Client, or
// similar.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// RequestSender is the transport seam of this package. It sends one named
// Web API method with an auth token and a set of string parameters, and
// returns the raw response body.
//
// Every endpoint function in this package takes a RequestSender as its first
// argument. Client is the default implementation; substitute your own to
// mock calls in tests, or to wrap the real one with logging, retries, or
// rate limiting.
type RequestSender interface {
	SendAuthed(method, token string, params map[string]string) ([]byte, error)
}

// Client is the default RequestSender. It performs one form-encoded HTTP
// POST per call against a Slack Web API endpoint and hands back the raw
// response body. It holds no per-call state, so a single Client may be
// shared freely between goroutines.
type Client struct {
	c        HTTPClient
	endpoint string
}

// New returns a new *Client using the provided HTTP client. If endpoint is
// empty, DefaultEndpoint is used; passing another value is mostly useful for
// pointing the client at a test server. A non-empty endpoint must end in a
// "/" so method names can be appended to it.
func New(c HTTPClient, endpoint string) (*Client, error) {
	if c == nil {
		return nil, errors.New("must provide an http client")
	}

	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	if !strings.HasSuffix(endpoint, "/") {
		return nil, errors.Errorf("endpoint %q must end in a trailing slash", endpoint)
	}

	if _, err := url.Parse(endpoint); err != nil {
		return nil, errors.Wrapf(err, "invalid endpoint %q", endpoint)
	}

	client := &Client{
		c:        c,
		endpoint: endpoint,
	}

	return client, nil
}

// SendAuthed satisfies the RequestSender interface. The token is sent as the
// "token" form parameter; an empty token is omitted entirely, which is what
// the few unauthenticated methods (api.test, oauth.access) rely on.
func (c *Client) SendAuthed(method, token string, params map[string]string) ([]byte, error) {
	if len(method) == 0 {
		return nil, errors.New("must provide an API method name")
	}

	v := make(url.Values, len(params)+1)

	if len(token) > 0 {
		v.Set("token", token)
	}

	for key, val := range params {
		v.Set(key, val)
	}

	resp, err := c.postForm(c.endpoint+method, v)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to send %q request", method)
	}

	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("%q unexpected HTTP response status: %s", method, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %q response body", method)
	}

	return body, nil
}

func (c *Client) postForm(url string, val url.Values) (*http.Response, error) {
	req, err := postFormReq(url, val)
	if err != nil {
		return nil, err
	}

	return c.c.Do(req)
}
