// Copyright (c) 2025 Conduit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// logoutCmd clears the session. Tokens are stateless server-side, so there is
// no remote call: the local session flips to anonymous and the stored token
// is wiped in the same step.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and remove the stored session token",
	Long: `The logout command ends the current session. It removes the stored token
from the OS keychain (or its file fallback) and resets the in-memory session
to anonymous. No server round trip is made.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		app.sessions.Logout(cmd.Context())
		pterm.Success.Println("Signed out")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
