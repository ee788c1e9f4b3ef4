// Copyright (c) 2025 Conduit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"conduit/cli/internal/config"
)

var (
	configureAPIBaseURL string
	configurePageSize   int
)

// configureCmd persists CLI settings. Without flags it prints the current
// configuration; with flags it updates and saves.
var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Show or change persistent CLI settings",
	Long: `The configure command manages the settings stored in the config file:
the API base URL and the default page size for article listings.

Run without flags to see current values; pass flags to change them.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := app.cfg

		changed := false
		if cmd.Flags().Changed("api-url") {
			cfg.APIBaseURL = configureAPIBaseURL
			changed = true
		}
		if cmd.Flags().Changed("page-size") {
			cfg.PageSize = configurePageSize
			changed = true
		}

		if changed {
			if err := config.Save(cfg); err != nil {
				return err
			}
			pterm.Success.Println("Configuration saved")
		}

		pterm.Printf("API base URL: %s\n", cfg.APIBaseURL)
		pterm.Printf("Page size:    %d\n", cfg.PageSize)
		return nil
	},
}

func init() {
	configureCmd.Flags().StringVar(&configureAPIBaseURL, "api-url", "", "API base URL to store")
	configureCmd.Flags().IntVar(&configurePageSize, "page-size", 0, "Default article page size to store")
	rootCmd.AddCommand(configureCmd)
}
