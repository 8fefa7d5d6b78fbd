// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package backend talks to the remote weather and region API.
package backend

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/wneessen/weatherdash/internal/http"
	"github.com/wneessen/weatherdash/internal/schema"
)

var (
	// ErrRequestFailed is returned when the API could not be reached or answered with a
	// non-2xx status code.
	ErrRequestFailed = errors.New("request failed")

	// ErrMalformedResponse is returned when the API response could not be decoded or does
	// not match the expected schema.
	ErrMalformedResponse = errors.New("malformed response")
)

// Client performs requests against the API below a base URL.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
}

func New(client *http.Client, baseURL string, timeout time.Duration) (*Client, error) {
	if client == nil {
		return nil, fmt.Errorf("http client is required")
	}
	if baseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if timeout <= 0 {
		timeout = http.DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    client,
		timeout: timeout,
	}, nil
}

// BaseURL returns the base URL all endpoints are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Endpoint joins the path-escaped segments to the base URL.
func (c *Client) Endpoint(segments ...string) string {
	var sb strings.Builder
	sb.WriteString(c.baseURL)
	for _, segment := range segments {
		sb.WriteString("/")
		sb.WriteString(url.PathEscape(segment))
	}
	return sb.String()
}

// Get fetches the endpoint made up of segments, decodes the JSON response into target and
// validates it. The returned error wraps either ErrRequestFailed or ErrMalformedResponse.
func (c *Client) Get(ctx context.Context, target any, query url.Values, segments ...string) error {
	endpoint := c.Endpoint(segments...)
	code, err := c.http.GetWithTimeout(ctx, endpoint, target, query, nil, c.timeout)
	switch {
	case errors.Is(err, http.ErrDecode):
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	case err != nil:
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	case code < 200 || code > 299:
		return fmt.Errorf("%w: %s returned status code %d", ErrRequestFailed, endpoint, code)
	}

	if err = schema.Validate(target); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return nil
}
