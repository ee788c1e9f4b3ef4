// Copyright (c) 2025 Conduit
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package tokenstore persists the session bearer token across CLI invocations.
// It provides a single named string slot with get/set/clear semantics, no
// validation and no expiry tracking. The OS keychain is used when available,
// with a private file in the XDG config directory as fallback.
//
// The session layer is the only writer; everything else reads through it.
package tokenstore

import "errors"

// TokenKey names the stored entry in every backend.
const TokenKey = "jwtToken"

// ErrNoToken is returned by Get when no token was ever stored.
var ErrNoToken = errors.New("no token stored")

// Store holds exactly one bearer token.
type Store interface {
	// Get returns the stored token, or ErrNoToken when absent.
	Get() (string, error)
	// Set overwrites the stored token unconditionally.
	Set(token string) error
	// Clear removes the token; safe to call when already absent.
	Clear() error
}
