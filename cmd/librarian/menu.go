package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xriskon/librarian/internal/reconcile"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive action menu (the default when no subcommand is given)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu()
	},
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

// runMenu is the interactive front-end: a numbered action loop that
// keeps running until the user quits.
func runMenu() error {
	a, err := newApp()
	if err != nil {
		return err
	}

	ctx := context.Background()
	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(`
librarian
  1) Download missing posters
  2) Download missing backdrops
  3) Download missing trailers
  4) Clear images
  5) Clear trailers
  6) Rename folders
  7) Status
  0) Quit
> `)
		if !in.Scan() {
			return in.Err()
		}

		var err error
		switch strings.TrimSpace(in.Text()) {
		case "1":
			err = a.runPass(ctx, reconcile.AssetPoster, false)
		case "2":
			err = a.runPass(ctx, reconcile.AssetBackdrop, false)
		case "3":
			err = a.runPass(ctx, reconcile.AssetTrailer, false)
		case "4":
			err = a.driver.ClearImages(ctx)
		case "5":
			err = a.driver.ClearTrailers(ctx)
		case "6":
			var report *reconcile.Report
			if report, err = a.driver.Rename(ctx, false); err == nil {
				report.Render(os.Stdout)
			}
		case "7":
			err = a.printStatus(ctx)
		case "0", "q", "quit":
			return nil
		default:
			continue
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
}
