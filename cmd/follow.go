// Copyright (c) 2025 Conduit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"conduit/cli/internal/api"
	"conduit/cli/internal/controls"
)

// followCmd toggles the follow relation on one author. Like favorite, the
// toggle control handles anonymous users by printing the login redirect.
var followCmd = &cobra.Command{
	Use:   "follow <username>",
	Short: "Follow or unfollow an author",
	Long: `The follow command toggles whether you follow an author. Following an
author adds their articles to your personal feed; following someone you
already follow unfollows them.

Anonymous users are pointed at login instead of issuing a request.`,
	Args: cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		username := args[0]

		var profile *api.Profile
		err := withSpinner("Fetching profile", func() error {
			var err error
			profile, err = app.client.Profile(ctx, username)
			return err
		})
		if err != nil {
			return renderAPIError(err, "fetching profile")
		}

		var updated *api.Profile
		toggle := controls.NewFollow(app.sessions, app.client, profile, app.nav, func(p *api.Profile) {
			updated = p
		})

		action := "Following"
		if toggle.On() {
			action = "Unfollowing"
		}
		err = withSpinner(action+" "+username, func() error {
			return toggle.Activate(ctx)
		})
		if err != nil {
			return renderAPIError(err, "updating follow")
		}
		if updated == nil {
			// Anonymous branch: the control already printed the redirect.
			return nil
		}

		if updated.Following {
			pterm.Success.Printf("Now following %s\n", updated.Username)
		} else {
			pterm.Success.Printf("No longer following %s\n", updated.Username)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(followCmd)
}
