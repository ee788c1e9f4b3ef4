// Copyright (c) 2025 Conduit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"conduit/cli/internal/api"
)

// profileCmd shows one author's public profile. Open to everyone; the
// following flag is only meaningful when signed in.
var profileCmd = &cobra.Command{
	Use:   "profile <username>",
	Short: "Show an author's public profile",
	Args:  cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		username := args[0]

		var p *api.Profile
		err := withSpinner("Fetching profile", func() error {
			var err error
			p, err = app.client.Profile(ctx, username)
			return err
		})
		if err != nil {
			return renderAPIError(err, "fetching profile")
		}

		title, body := profilePanel(p)
		pterm.DefaultBox.WithTitle(title).Println(body)
		return nil
	},
}

// profilePanel builds the box title and body for a profile view.
func profilePanel(p *api.Profile) (title, body string) {
	title = p.Username
	if p.Following {
		title += "  (following)"
	}
	body = p.Bio
	if body == "" {
		body = "This author has not written a bio."
	}
	return title, body
}

func init() {
	rootCmd.AddCommand(profileCmd)
}
