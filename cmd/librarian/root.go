package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	configPath string
	headless   bool
)

var rootCmd = &cobra.Command{
	Use:   "librarian",
	Short: "Asset reconciliation for Plex media libraries",
	Long: `librarian - asset reconciliation for Plex media libraries

Scans the movie and TV show libraries Plex knows about, identifies
each item against TMDB, and fills in the posters, backdrops and
trailers that are missing on disk.

Run without a subcommand for the interactive menu.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: search standard locations)")
	rootCmd.PersistentFlags().BoolVar(&headless, "headless", false, "Disable progress bars, log instead")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("librarian {{.Version}}\n")
}
