// Copyright (c) 2025 Conduit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"conduit/cli/internal/api"
	"conduit/cli/internal/guard"
)

// registerCmd creates a new account. Same contract as login against a
// different endpoint: success establishes the session and stores the token.
var registerCmd = &cobra.Command{
	Use:     "register",
	Aliases: []string{"signup"},
	Short:   "Create a new account",
	Long: `The register command creates a new account on the Conduit backend. On
success you are signed in immediately and the session token is stored
securely, exactly as with login.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := app.gate.GuestOnly(ctx); err != nil {
			if errors.Is(err, guard.ErrAlreadyLoggedIn) {
				u := app.sessions.CurrentUser().Get()
				pterm.Info.Printf("Already logged in as %s. Log out first to register a new account.\n", u.Username)
				return nil
			}
			return err
		}

		username, err := promptLine("Username")
		if err != nil {
			return err
		}
		email, err := promptLine("Email")
		if err != nil {
			return err
		}
		password, err := promptPassword("Password")
		if err != nil {
			return err
		}

		var user *api.User
		err = withSpinner("Creating account", func() error {
			var err error
			user, err = app.sessions.Register(ctx, username, email, password)
			return err
		})
		if err != nil {
			return renderAPIError(err, "creating the account")
		}

		pterm.Success.Printf("Welcome aboard, %s!\n", user.Username)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
}
