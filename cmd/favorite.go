// Copyright (c) 2025 Conduit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"conduit/cli/internal/api"
	"conduit/cli/internal/controls"
)

// favoriteCmd toggles the favorite relation on one article. The toggle
// control itself handles anonymous users by printing the sign-up redirect
// and skipping the request, so the command is not gated up front.
var favoriteCmd = &cobra.Command{
	Use:   "favorite <slug>",
	Short: "Favorite or unfavorite an article",
	Long: `The favorite command toggles your favorite on an article, identified by its
slug. Favoriting an already-favorited article removes the favorite.

Anonymous users are pointed at registration instead of issuing a request.`,
	Args: cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		slug := args[0]

		var article *api.Article
		err := withSpinner("Fetching article", func() error {
			var err error
			article, err = app.client.Article(ctx, slug)
			return err
		})
		if err != nil {
			return renderAPIError(err, "fetching article")
		}

		var updated *api.Article
		toggle := controls.NewFavorite(app.sessions, app.client, article, app.nav, func(a *api.Article) {
			updated = a
		})

		action := "Favoriting"
		if toggle.On() {
			action = "Unfavoriting"
		}
		err = withSpinner(action+" article", func() error {
			return toggle.Activate(ctx)
		})
		if err != nil {
			return renderAPIError(err, "updating favorite")
		}
		if updated == nil {
			// Anonymous branch: the control already printed the redirect.
			return nil
		}

		if updated.Favorited {
			pterm.Success.Printf("Favorited %q (%d favorites)\n", updated.Title, updated.FavoritesCount)
		} else {
			pterm.Success.Printf("Unfavorited %q (%d favorites)\n", updated.Title, updated.FavoritesCount)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(favoriteCmd)
}
