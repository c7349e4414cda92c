package main

import (
	"github.com/spf13/cobra"

	"github.com/xriskon/librarian/internal/reconcile"
)

var postersCmd = &cobra.Command{
	Use:   "posters",
	Short: "Download missing posters",
	Long: `Download a poster for every library item that has none.

Examples:
  librarian posters
  librarian posters --refresh   # tell Plex to rescan afterwards`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPassCmd(cmd, reconcile.AssetPoster)
	},
}

var backdropsCmd = &cobra.Command{
	Use:   "backdrops",
	Short: "Download missing backdrops",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPassCmd(cmd, reconcile.AssetBackdrop)
	},
}

var trailersCmd = &cobra.Command{
	Use:   "trailers",
	Short: "Download missing trailers",
	Long: `Download the official trailer for every library item that has none.

Trailers are fetched from YouTube via yt-dlp and placed in a Trailers
subdirectory next to the media files, where Plex picks them up as extras.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPassCmd(cmd, reconcile.AssetTrailer)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{postersCmd, backdropsCmd, trailersCmd} {
		cmd.Flags().Bool("refresh", false, "Refresh Plex sections after the pass")
		rootCmd.AddCommand(cmd)
	}
}

func runPassCmd(cmd *cobra.Command, asset reconcile.AssetKind) error {
	refresh, _ := cmd.Flags().GetBool("refresh")
	a, err := newApp()
	if err != nil {
		return err
	}
	return a.runPass(cmd.Context(), asset, refresh)
}
