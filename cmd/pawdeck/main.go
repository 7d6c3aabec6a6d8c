// Package main provides the pawdeck binary entry point. Pawdeck is a
// terminal client for the PawHaven marketplace backend.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pawhaven/pawdeck/internal/app"
	"github.com/pawhaven/pawdeck/internal/config"
	"github.com/pawhaven/pawdeck/internal/ui"
)

const (
	Version = "0.1.0"
	appName = "pawdeck"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Terminal client for the PawHaven marketplace",
		Long: `Pawdeck is a terminal client for the PawHaven pet adoption and
pet supplies marketplace. It talks to the PawHaven REST backend and keeps
adoption listings, the shop, your cart, orders, veterinary appointments
and messages in sync while you browse.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			return app.Run(ctx, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "config file path (default "+config.DefaultPath()+")")
	cmd.Flags().StringVar(&opts.APIURL, "api", "", "backend origin, overrides the configured api_url")
	cmd.Flags().IntVar(&opts.PollEvery, "poll", 0, "background refresh interval in seconds")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, Version)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "themes",
		Short: "List available color themes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range ui.ThemeNames() {
				fmt.Println(name)
			}
		},
	})

	return cmd
}
