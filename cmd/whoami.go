package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// whoamiCmd displays the current session state. The session cell is already
// settled by the time commands run, so this reads the cached user without a
// network round trip.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the currently signed-in account",
	Long: `The whoami command displays the account the current session belongs to.
The stored token is validated once at startup; whoami reports the outcome
of that validation without another server round trip.

If no valid session exists, it will indicate that you are not signed in.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		u := app.sessions.CurrentUser().Get()
		if u == nil {
			fmt.Println("🔒 You're not signed in yet!")
			fmt.Println("   Run 'conduit login' to get started.")
			return nil
		}

		fmt.Printf("👤 Current user: %s <%s>\n", u.Username, u.Email)
		if u.Bio != "" {
			fmt.Printf("   %s\n", u.Bio)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
