// Copyright (c) 2025 Conduit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"conduit/cli/internal/api"
)

var (
	articlesFeed      bool
	articlesTag       string
	articlesAuthor    string
	articlesFavorited string
	articlesLimit     int
	articlesOffset    int
)

// articlesCmd lists articles. The global listing is open to everyone; the
// personal feed requires a session and is gated accordingly.
var articlesCmd = &cobra.Command{
	Use:   "articles",
	Short: "List articles from the global feed or your personal feed",
	Long: `The articles command lists articles. By default it shows the global feed,
optionally narrowed by tag, author, or favoriting user. With --feed it shows
your personal feed of followed authors, which requires being signed in.

Examples:
  conduit articles --tag go --limit 5
  conduit articles --feed`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		q := api.ArticleQuery{
			Tag:       articlesTag,
			Author:    articlesAuthor,
			Favorited: articlesFavorited,
			Limit:     articlesLimit,
			Offset:    articlesOffset,
		}
		if q.Limit <= 0 {
			q.Limit = app.cfg.PageSize
		}

		var list *api.ArticleList
		err := withSpinner("Fetching articles", func() error {
			var err error
			if articlesFeed {
				list, err = app.client.Feed(ctx, q)
			} else {
				list, err = app.client.Articles(ctx, q)
			}
			return err
		})
		if err != nil {
			return renderAPIError(err, "fetching articles")
		}

		if len(list.Articles) == 0 {
			pterm.Info.Println("No articles are here... yet.")
			return nil
		}

		rows := pterm.TableData{{"Slug", "Title", "Author", "Favorites", "Tags"}}
		for _, a := range list.Articles {
			fav := fmt.Sprintf("%d", a.FavoritesCount)
			if a.Favorited {
				fav = "★ " + fav
			}
			rows = append(rows, []string{
				a.Slug,
				a.Title,
				a.Author.Username,
				fav,
				strings.Join(a.TagList, ", "),
			})
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
			return err
		}
		pterm.Info.Printf("Showing %d of %d articles\n", len(list.Articles), list.ArticlesCount)
		return nil
	},

	PreRunE: func(cmd *cobra.Command, args []string) error {
		if !articlesFeed {
			return nil
		}
		return requireAuth(cmd.Context())
	},
}

func init() {
	articlesCmd.Flags().BoolVar(&articlesFeed, "feed", false, "Show your personal feed instead of the global one")
	articlesCmd.Flags().StringVar(&articlesTag, "tag", "", "Only articles with this tag")
	articlesCmd.Flags().StringVar(&articlesAuthor, "author", "", "Only articles by this author")
	articlesCmd.Flags().StringVar(&articlesFavorited, "favorited", "", "Only articles favorited by this user")
	articlesCmd.Flags().IntVar(&articlesLimit, "limit", 0, "Page size (default from config)")
	articlesCmd.Flags().IntVar(&articlesOffset, "offset", 0, "Page offset")
	rootCmd.AddCommand(articlesCmd)
}
