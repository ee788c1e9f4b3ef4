// Copyright (c) 2025 Conduit
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package controls implements the authenticated-action toggle controls
// (favorite and follow) with at-most-one-in-flight semantics per control.
// An activation snapshots the authentication state exactly once, redirects
// anonymous users to login or registration without issuing a request, and
// otherwise performs exactly one of the two toggle calls.
package controls

import (
	"context"
	"sync"

	"conduit/cli/internal/navigation"
)

// Config wires a Toggle to its collaborators. On and Off perform the two
// directions of the mutation and return the server's updated payload; State
// extracts the new toggle state from it; Notify propagates the payload to the
// owning view so aggregating state stays consistent.
type Config[T any] struct {
	Authenticated func() bool
	Navigator     navigation.Navigator
	// Redirect is where anonymous activations are sent (login or register,
	// context-dependent).
	Redirect navigation.Route
	Initial  bool
	On       func(ctx context.Context) (T, error)
	Off      func(ctx context.Context) (T, error)
	State    func(T) bool
	Notify   func(T)
}

// Toggle is a re-entrancy-locked toggle control. The busy flag blocks
// overlapping activations from the same control while a request is
// outstanding; it is always cleared before Activate returns or resolves.
type Toggle[T any] struct {
	cfg Config[T]

	mu   sync.Mutex
	on   bool
	busy bool
}

// NewToggle constructs a toggle with the configured initial state.
func NewToggle[T any](cfg Config[T]) *Toggle[T] {
	return &Toggle[T]{cfg: cfg, on: cfg.Initial}
}

// On reports the current toggle state.
func (t *Toggle[T]) On() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.on
}

// Busy reports whether a request is outstanding.
func (t *Toggle[T]) Busy() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.busy
}

// Activate runs one toggle cycle:
//
//   - already busy: no effect, no duplicate request;
//   - anonymous: navigate to the redirect route and abort; no request is
//     made and busy is cleared synchronously on this branch;
//   - authenticated: issue the call matching the current state, then apply
//     the result and notify, or leave the state untouched on failure so the
//     user can retry.
//
// The authentication value is read once per activation and never re-evaluated
// after the request starts.
func (t *Toggle[T]) Activate(ctx context.Context) error {
	t.mu.Lock()
	if t.busy {
		t.mu.Unlock()
		return nil
	}
	t.busy = true

	if !t.cfg.Authenticated() {
		t.busy = false
		t.mu.Unlock()
		if t.cfg.Navigator != nil {
			t.cfg.Navigator.NavigateTo(t.cfg.Redirect)
		}
		return nil
	}
	on := t.on
	t.mu.Unlock()

	var (
		result T
		err    error
	)
	if on {
		result, err = t.cfg.Off(ctx)
	} else {
		result, err = t.cfg.On(ctx)
	}

	t.mu.Lock()
	t.busy = false
	if err != nil {
		t.mu.Unlock()
		return err
	}
	t.on = t.cfg.State(result)
	t.mu.Unlock()

	if t.cfg.Notify != nil {
		t.cfg.Notify(result)
	}
	return nil
}
