// Copyright (c) 2025 Conduit
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging provides utilities for secure logging and error presentation.
// It includes functions for masking sensitive information in messages and
// formatting errors for user-friendly display while protecting credentials.
//
// The session token is the crown jewel here: it must never reach the terminal,
// debug output, or error text, even when a payload or header leaks into an
// error message.
package logging

import (
	"regexp"
	"strings"
)

var (
	rePassword  = regexp.MustCompile(`(?i)(password=)([^\s;",]+)`)
	reAuthToken = regexp.MustCompile(`(?i)(authorization:\s*token\s+|bearer\s+|token=)([A-Za-z0-9._-]+)`)
	reJSONField = regexp.MustCompile(`(?i)("(?:token|password)"\s*:\s*")([^"]*)(")`)
)

// Mask replaces sensitive values in the input string with "***".
// It covers the Authorization header scheme, token/password query pairs, and
// JSON bodies carrying token or password fields.
func Mask(s string) string {
	out := s
	out = reAuthToken.ReplaceAllString(out, "$1***")
	out = rePassword.ReplaceAllString(out, "$1***")
	out = reJSONField.ReplaceAllString(out, "$1***$3")
	// Env-style pairs; mask common secret keys wholesale.
	for _, k := range []string{"CONDUIT_TOKEN", "ACCESS_TOKEN"} {
		out = strings.ReplaceAll(out, k+"=", k+"=***")
	}
	return out
}
