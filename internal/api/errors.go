// Copyright (c) 2025 Conduit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
)

// ErrUnauthorized reports that the backend rejected the attached token.
// Use errors.Is to match it; structured 401 responses also match.
var ErrUnauthorized = errors.New("unauthorized")

// ValidationError carries the field-level error map the backend returns for
// rejected input, shape {"errors": {"field": ["message", ...]}}. The map is
// surfaced verbatim: callers render it and the client never reshapes it.
type ValidationError struct {
	Status int
	Errors map[string][]string
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("request rejected with status %d", e.Status)
	}
	fields := make([]string, 0, len(e.Errors))
	for f := range e.Errors {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s %s", f, strings.Join(e.Errors[f], ", ")))
	}
	return strings.Join(parts, "; ")
}

// Is lets a structured 401 match ErrUnauthorized.
func (e *ValidationError) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}

// decodeError converts a non-2xx response into an error. Bodies carrying the
// standard errors map become a *ValidationError; bare 401s map to
// ErrUnauthorized; anything else keeps the status and trimmed body text.
func decodeError(resp *http.Response) error {
	b, _ := io.ReadAll(resp.Body)

	var payload struct {
		Errors map[string][]string `json:"errors"`
	}
	if err := json.Unmarshal(b, &payload); err == nil && len(payload.Errors) > 0 {
		return &ValidationError{Status: resp.StatusCode, Errors: payload.Errors}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return fmt.Errorf("request failed: %d %s", resp.StatusCode, strings.TrimSpace(string(b)))
}
