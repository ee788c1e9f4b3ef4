// Copyright (c) 2025 Conduit
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package guard provides the authorization predicates consulted before a
// gated command runs. Both predicates wait for session restoration to settle
// before reading the authenticated value, so a guard can never observe a
// half-restored session. On denial the caller performs the redirect; the gate
// only names the reason.
package guard

import (
	"context"
	"errors"

	"conduit/cli/internal/session"
)

// ErrLoginRequired denies an anonymous user a protected command.
var ErrLoginRequired = errors.New("login required")

// ErrAlreadyLoggedIn denies an authenticated user a guest-only command.
var ErrAlreadyLoggedIn = errors.New("already logged in")

// Gate evaluates auth predicates against the session manager.
type Gate struct {
	sessions *session.Manager
}

// New constructs a Gate over the given manager.
func New(sessions *session.Manager) *Gate {
	return &Gate{sessions: sessions}
}

// AuthRequired allows only authenticated users. It reads the settled
// authenticated value exactly once per evaluation.
func (g *Gate) AuthRequired(ctx context.Context) error {
	if err := g.sessions.AwaitReady(ctx); err != nil {
		return err
	}
	if !g.sessions.IsAuthenticated() {
		return ErrLoginRequired
	}
	return nil
}

// GuestOnly allows only anonymous users. It keeps authenticated users out of
// login and registration.
func (g *Gate) GuestOnly(ctx context.Context) error {
	if err := g.sessions.AwaitReady(ctx); err != nil {
		return err
	}
	if g.sessions.IsAuthenticated() {
		return ErrAlreadyLoggedIn
	}
	return nil
}
