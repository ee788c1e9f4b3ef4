// Copyright (c) 2025 Conduit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"testing"

	"conduit/cli/internal/api"
)

func TestProfilePanel(t *testing.T) {
	tests := []struct {
		name      string
		profile   *api.Profile
		wantTitle string
		wantBody  string
	}{
		{
			name:      "followed author with bio",
			profile:   &api.Profile{Username: "celeb", Bio: "I write things.", Following: true},
			wantTitle: "celeb  (following)",
			wantBody:  "I write things.",
		},
		{
			name:      "unfollowed author without bio",
			profile:   &api.Profile{Username: "jake"},
			wantTitle: "jake",
			wantBody:  "This author has not written a bio.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, body := profilePanel(tt.profile)
			if title != tt.wantTitle {
				t.Errorf("title = %v, want %v", title, tt.wantTitle)
			}
			if body != tt.wantBody {
				t.Errorf("body = %v, want %v", body, tt.wantBody)
			}
		})
	}
}
