// Copyright (c) 2025 Conduit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"context"
	"net/http"
)

// User is the account payload the backend returns from every user endpoint.
// Token is the bearer token for subsequent requests; it is never shown in UI.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
}

// UserUpdate is a partial account update. Nil fields are omitted from the
// request body and left unchanged by the server.
type UserUpdate struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Image    *string `json:"image,omitempty"`
}

// userEnvelope wraps the {"user": ...} body used by all user endpoints.
type userEnvelope struct {
	User User `json:"user"`
}

// CurrentUser calls GET /user with the attached token and returns the
// account it belongs to.
func (h *HTTP) CurrentUser(ctx context.Context) (*User, error) {
	var out userEnvelope
	if err := h.do(ctx, http.MethodGet, "/user", nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// UpdateUser calls PUT /user with a partial payload and returns the full
// updated account. The server may omit a fresh token.
func (h *HTTP) UpdateUser(ctx context.Context, update UserUpdate) (*User, error) {
	body := struct {
		User UserUpdate `json:"user"`
	}{User: update}
	var out userEnvelope
	if err := h.do(ctx, http.MethodPut, "/user", body, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}
