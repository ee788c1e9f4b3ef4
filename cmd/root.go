// Copyright (c) 2025 Conduit
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the Conduit CLI.
// It implements subcommands for authentication, account settings, profiles,
// and article browsing against a Conduit REST backend, using the Cobra CLI
// framework with a pterm terminal UI.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"conduit/cli/internal/api"
	"conduit/cli/internal/config"
	"conduit/cli/internal/guard"
	"conduit/cli/internal/logging"
	"conduit/cli/internal/navigation"
	"conduit/cli/internal/session"
	"conduit/cli/internal/tokenstore"
)

var (
	apiBaseURL  string
	showVersion bool
)

// app holds the wired application services shared by all commands.
// It is built once per invocation in the root PersistentPreRunE.
type appContext struct {
	cfg      config.Config
	client   api.API
	sessions *session.Manager
	gate     *guard.Gate
	nav      navigation.Navigator
}

var app *appContext

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "conduit",
	Short:         "Conduit CLI for the RealWorld blogging platform",
	Long:          `Conduit is a command-line client for a Conduit (RealWorld) backend: browse articles, manage your account, follow authors, and favorite articles.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initApp(cmd.Context())
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("conduit %s\n", Version)
			return nil
		}
		return cmd.Help()
	},
}

// initApp wires config, token store, API client, and session manager, then
// runs the one-time session restoration. Restoration settles before any
// command logic or guard runs, so the first gated decision never races it.
func initApp(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if apiBaseURL != "" {
		cfg.APIBaseURL = apiBaseURL
	}

	store, err := tokenstore.Open()
	if err != nil {
		return err
	}

	nav := navigation.Console{}
	client := api.New(cfg.APIBaseURL, store)
	sessions := session.NewManager(client, store, session.WithNavigator(nav))

	app = &appContext{
		cfg:      cfg,
		client:   client,
		sessions: sessions,
		gate:     guard.New(sessions),
		nav:      nav,
	}

	sessions.Restore(ctx)
	return nil
}

// requireAuth evaluates the auth-required gate and renders the login redirect
// on denial. The returned error keeps the non-zero exit code.
func requireAuth(ctx context.Context) error {
	err := app.gate.AuthRequired(ctx)
	if errors.Is(err, guard.ErrLoginRequired) {
		app.nav.NavigateTo(navigation.RouteLogin)
	}
	return err
}

// Execute runs the CLI application. Errors are masked before printing so a
// token or password can never reach the terminal through an error message.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, logging.PresentError("conduit", err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI version information")
	rootCmd.PersistentFlags().StringVar(&apiBaseURL, "api", "", "Override the API base URL for this invocation")
}
