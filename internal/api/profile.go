// Copyright (c) 2025 Conduit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"context"
	"net/http"
	"net/url"
)

// Profile is the public view of an account. Following reflects the relation
// from the currently authenticated user, false when anonymous.
type Profile struct {
	Username  string `json:"username"`
	Bio       string `json:"bio"`
	Image     string `json:"image"`
	Following bool   `json:"following"`
}

type profileEnvelope struct {
	Profile Profile `json:"profile"`
}

// Profile calls GET /profiles/:username.
func (h *HTTP) Profile(ctx context.Context, username string) (*Profile, error) {
	var out profileEnvelope
	if err := h.do(ctx, http.MethodGet, "/profiles/"+url.PathEscape(username), nil, &out); err != nil {
		return nil, err
	}
	return &out.Profile, nil
}

// Follow calls POST /profiles/:username/follow and returns the updated profile.
func (h *HTTP) Follow(ctx context.Context, username string) (*Profile, error) {
	var out profileEnvelope
	if err := h.do(ctx, http.MethodPost, "/profiles/"+url.PathEscape(username)+"/follow", nil, &out); err != nil {
		return nil, err
	}
	return &out.Profile, nil
}

// Unfollow calls DELETE /profiles/:username/follow and returns the updated profile.
func (h *HTTP) Unfollow(ctx context.Context, username string) (*Profile, error) {
	var out profileEnvelope
	if err := h.do(ctx, http.MethodDelete, "/profiles/"+url.PathEscape(username)+"/follow", nil, &out); err != nil {
		return nil, err
	}
	return &out.Profile, nil
}
