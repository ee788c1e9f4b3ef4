// Copyright (c) 2025 Conduit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

// New creates a backend API implementation for the given base URL.
// Outgoing requests carry "Authorization: Token <token>" whenever the
// TokenSource holds a token. A nil TokenSource disables attachment.
func New(baseURL string, tokens TokenSource) API {
	return newHTTP(baseURL, tokens)
}
