package api

import (
	"context"
	"net/http"
)

// Login calls POST /users/login with {user: {email, password}}.
// Invalid credentials come back as a *ValidationError with the backend's
// field map (e.g. {"email or password": ["is invalid"]}).
func (h *HTTP) Login(ctx context.Context, email, password string) (*User, error) {
	body := struct {
		User struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		} `json:"user"`
	}{}
	body.User.Email = email
	body.User.Password = password

	var out userEnvelope
	if err := h.do(ctx, http.MethodPost, "/users/login", body, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// Register calls POST /users with {user: {username, email, password}}.
// Same contract as Login, different endpoint.
func (h *HTTP) Register(ctx context.Context, username, email, password string) (*User, error) {
	body := struct {
		User struct {
			Username string `json:"username"`
			Email    string `json:"email"`
			Password string `json:"password"`
		} `json:"user"`
	}{}
	body.User.Username = username
	body.User.Email = email
	body.User.Password = password

	var out userEnvelope
	if err := h.do(ctx, http.MethodPost, "/users", body, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}
