// Copyright (c) 2025 Conduit
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package ui provides terminal UI building blocks keyed off the session
// signals. The Visibility controller tracks the authenticated signal and
// keeps a fragment mounted exactly when the state matches the desired one,
// the CLI shape of a structural show-when-authenticated directive.
package ui

import (
	"sync"

	"conduit/cli/internal/signal"
)

// Fragment is a piece of UI the controller mounts and unmounts. Unmount must
// fully dispose the fragment, not merely hide it.
type Fragment interface {
	Mount()
	Unmount()
}

// Visibility keeps a fragment mounted while authenticated == want.
// Reconciliation performs at most one mount or unmount per change and is
// idempotent against repeated equal emissions.
type Visibility struct {
	want     bool
	fragment Fragment

	mu      sync.Mutex
	mounted bool
	sub     *signal.Subscription
}

// NewVisibility builds a controller for the desired state: want == true shows
// the fragment only when authenticated, want == false only when anonymous.
func NewVisibility(want bool, fragment Fragment) *Visibility {
	return &Visibility{want: want, fragment: fragment}
}

// Attach subscribes to the authenticated signal. The fragment is reconciled
// against the current value before Attach returns.
func (v *Visibility) Attach(authenticated *signal.Signal[bool]) {
	v.mu.Lock()
	if v.sub != nil {
		v.mu.Unlock()
		return
	}
	v.mu.Unlock()

	sub := authenticated.Subscribe(v.reconcile)

	v.mu.Lock()
	v.sub = sub
	v.mu.Unlock()
}

// Detach unsubscribes unconditionally. The fragment keeps its current mounted
// state; callers that also want it gone unmount through a final reconcile.
func (v *Visibility) Detach() {
	v.mu.Lock()
	sub := v.sub
	v.sub = nil
	v.mu.Unlock()

	if sub != nil {
		sub.Unsubscribe()
	}
}

// Mounted reports whether the fragment is currently mounted.
func (v *Visibility) Mounted() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.mounted
}

func (v *Visibility) reconcile(authenticated bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	shouldShow := authenticated == v.want
	switch {
	case shouldShow && !v.mounted:
		v.fragment.Mount()
		v.mounted = true
	case !shouldShow && v.mounted:
		v.fragment.Unmount()
		v.mounted = false
	}
}
