// Copyright (c) 2025 Conduit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"conduit/cli/internal/api"
)

var (
	settingsUsername string
	settingsEmail    string
	settingsPassword string
	settingsBio      string
	settingsImage    string
)

// settingsCmd updates the signed-in account. Only the flags the user passed
// are sent; everything else is left unchanged server-side.
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Update your account settings",
	Long: `The settings command updates your account. Pass only the fields you want
to change; omitted fields keep their current value.

Examples:
  conduit settings --bio "Gopher at large"
  conduit settings --email new@example.com --password hunter2`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if err := requireAuth(ctx); err != nil {
			return err
		}

		var update api.UserUpdate
		if cmd.Flags().Changed("username") {
			update.Username = &settingsUsername
		}
		if cmd.Flags().Changed("email") {
			update.Email = &settingsEmail
		}
		if cmd.Flags().Changed("password") {
			update.Password = &settingsPassword
		}
		if cmd.Flags().Changed("bio") {
			update.Bio = &settingsBio
		}
		if cmd.Flags().Changed("image") {
			update.Image = &settingsImage
		}
		if update == (api.UserUpdate{}) {
			pterm.Info.Println("Nothing to update. Pass at least one of --username, --email, --password, --bio, --image.")
			return nil
		}

		var u *api.User
		err := withSpinner("Saving settings", func() error {
			var err error
			u, err = app.sessions.UpdateProfile(ctx, update)
			return err
		})
		if err != nil {
			return renderAPIError(err, "updating settings")
		}

		pterm.Success.Printf("Settings saved for %s\n", u.Username)
		return nil
	},
}

func init() {
	settingsCmd.Flags().StringVar(&settingsUsername, "username", "", "New username")
	settingsCmd.Flags().StringVar(&settingsEmail, "email", "", "New email address")
	settingsCmd.Flags().StringVar(&settingsPassword, "password", "", "New password")
	settingsCmd.Flags().StringVar(&settingsBio, "bio", "", "New profile bio")
	settingsCmd.Flags().StringVar(&settingsImage, "image", "", "New profile image URL")
	rootCmd.AddCommand(settingsCmd)
}
