package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xriskon/librarian/pkg/medianame"
)

var parseCmd = &cobra.Command{
	Use:   "parse <name>",
	Short: "Parse a media folder name (local, no config needed)",
	Long: `Parse a media folder or file name to show what librarian extracts
from it.

Examples:
  librarian parse "The.Matrix.1999.1080p"
  librarian parse --show "Breaking.Bad.S01E02.720p"`,
	Args: cobra.ExactArgs(1),
	RunE: runParseCmd,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().Bool("show", false, "Parse as a TV show name instead of a movie")
}

func runParseCmd(cmd *cobra.Command, args []string) error {
	asShow, _ := cmd.Flags().GetBool("show")

	var (
		info *medianame.Info
		err  error
	)
	if asShow {
		info, err = medianame.ParseShow(args[0])
	} else {
		info, err = medianame.ParseMovie(args[0])
	}
	if err != nil {
		return fmt.Errorf("%q: %w", args[0], err)
	}

	printInfo(info)
	return nil
}

func printInfo(info *medianame.Info) {
	fmt.Printf("Title:       %s\n", info.Title)
	if info.Year > 0 {
		fmt.Printf("Year:        %d\n", info.Year)
	}
	if info.Season > 0 {
		fmt.Printf("Season:      %d\n", info.Season)
	}
	if info.Episode > 0 {
		fmt.Printf("Episode:     %d\n", info.Episode)
	}
	if info.Month > 0 {
		fmt.Printf("Date:        %04d-%02d-%02d\n", info.Year, info.Month, info.Day)
	}
	if info.Resolution != "" {
		fmt.Printf("Resolution:  %s\n", info.Resolution)
	}
	if info.Codec != "" {
		fmt.Printf("Codec:       %s\n", info.Codec)
	}
	if info.Language != "" {
		fmt.Printf("Language:    %s\n", info.Language)
	}
	if info.TMDBID != 0 {
		fmt.Printf("TMDB ID:     %d\n", info.TMDBID)
	}
	if info.Complete {
		fmt.Printf("Complete:    yes\n")
	}
	fmt.Printf("CleanTitle:  %s\n", medianame.CleanTitle(info.Title))
}
