// Copyright (c) 2025 Conduit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

// HTTP implements API over the Conduit REST endpoints.
type HTTP struct {
	// baseURL is the base URL for all requests (e.g., "https://api.realworld.io/api")
	baseURL string
	// client is the underlying HTTP client with configured timeout
	client *http.Client
}

// newHTTP creates a new HTTP client with the given base URL.
// It configures a 10-second timeout for all requests and an authTransport
// that attaches the bearer token from the TokenSource.
func newHTTP(baseURL string, tokens TokenSource) *HTTP {
	return &HTTP{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout:   10 * time.Second,
			Transport: &authTransport{tokens: tokens, base: http.DefaultTransport},
		},
	}
}

// authTransport injects the "Authorization: Token <token>" header on every
// outgoing request when a token is available. Absent token means no header.
type authTransport struct {
	tokens TokenSource
	base   http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.tokens != nil {
		if token, err := t.tokens.Get(); err == nil && token != "" {
			// Clone before mutating; RoundTrippers must not modify the
			// caller's request.
			req = req.Clone(req.Context())
			req.Header.Set("Authorization", "Token "+token)
		}
	}
	return t.base.RoundTrip(req)
}

// do issues a JSON request and decodes a 2xx response body into out.
// Non-2xx responses are converted by decodeError; out may be nil when no
// response body is expected.
func (h *HTTP) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
