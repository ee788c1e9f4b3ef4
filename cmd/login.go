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

// loginCmd represents the login command for email/password authentication.
// It prompts for credentials, exchanges them for a session token, and
// persists the token so the session survives across CLI invocations.
var loginCmd = &cobra.Command{
	Use:     "login",
	Aliases: []string{"signin"},
	Short:   "Sign in with your email and password",
	Long: `The login command authenticates against the Conduit backend with your email
and password. On success the session token is stored securely (OS keychain
when available) and all subsequent commands run as your account.

If already logged in, the command short-circuits without contacting the server.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := app.gate.GuestOnly(ctx); err != nil {
			if errors.Is(err, guard.ErrAlreadyLoggedIn) {
				u := app.sessions.CurrentUser().Get()
				pterm.Info.Printf("Already logged in as %s\n", u.Username)
				return nil
			}
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
		err = withSpinner("Signing in", func() error {
			var err error
			user, err = app.sessions.Login(ctx, email, password)
			return err
		})
		if err != nil {
			return renderAPIError(err, "signing in")
		}

		pterm.Success.Printf("Welcome back, %s!\n", user.Username)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
