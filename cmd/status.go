package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"conduit/cli/internal/api"
	"conduit/cli/internal/httperrors"
	"conduit/cli/internal/ui"
)

// accountPanel renders the signed-in header fragment: username, email, bio.
type accountPanel struct {
	user func() *api.User
}

func (p accountPanel) Mount() {
	u := p.user()
	if u == nil {
		return
	}
	body := u.Email
	if u.Bio != "" {
		body += "\n" + u.Bio
	}
	_ = pterm.DefaultBox.WithTitle("Signed in as " + u.Username).Println(body)
}

func (p accountPanel) Unmount() {}

// guestPanel renders the anonymous header fragment with the sign-in prompt.
type guestPanel struct{}

func (guestPanel) Mount() {
	_ = pterm.DefaultBox.WithTitle("Guest").Println("Sign in to favorite articles and follow authors.\nRun 'conduit login' or 'conduit register'.")
}

func (guestPanel) Unmount() {}

// statusCmd renders the session header: exactly one of the two panels is
// shown, chosen by the authenticated signal at its settled value.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session status",
	Long: `The status command renders the session header. Signed-in users see their
account panel; anonymous users see the guest panel with sign-in guidance.
The two never appear together.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		account := ui.NewVisibility(true, accountPanel{user: app.sessions.CurrentUser().Get})
		guest := ui.NewVisibility(false, guestPanel{})

		authed := app.sessions.Authenticated()
		account.Attach(authed)
		guest.Attach(authed)
		defer account.Detach()
		defer guest.Detach()

		pterm.Printf("API: %s\n", httperrors.ExtractHostFromURL(app.cfg.APIBaseURL))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
