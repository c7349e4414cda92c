package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xriskon/librarian/internal/library"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show Plex connection and per-library asset coverage",
	Long: `Connect to Plex, list the known library sections and count how many
items are still missing posters, backdrops or trailers.

Examples:
  librarian status`,
	Args: cobra.NoArgs,
	RunE: runStatusCmd,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatusCmd(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	return a.printStatus(cmd.Context())
}

func (a *app) printStatus(ctx context.Context) error {
	identity, err := a.plex.Identity(ctx)
	if err != nil {
		return fmt.Errorf("plex unreachable: %w", err)
	}
	fmt.Printf("Plex:  %s (%s)\n", identity.Name, identity.Version)

	sections, err := a.plex.Sections(ctx)
	if err != nil {
		return err
	}
	if len(sections) == 0 {
		fmt.Println("No movie or show sections found.")
		return nil
	}

	scanner := library.NewScanner(a.log)
	media := scanner.Scan(sections)

	for _, s := range sections {
		items := media[s.Kind]
		var posters, backdrops, trailers int
		for _, item := range items {
			if !library.HasPoster(item) {
				posters++
			}
			if !library.HasBackdrop(item) {
				backdrops++
			}
			if !library.HasTrailer(item) {
				trailers++
			}
		}

		fmt.Printf("\n%s (section %s)\n", s.Kind, s.ID)
		for _, root := range s.Roots {
			fmt.Printf("  root: %s\n", root)
		}
		fmt.Printf("  items: %d  missing posters: %d  backdrops: %d  trailers: %d\n",
			len(items), posters, backdrops, trailers)
	}
	return nil
}
