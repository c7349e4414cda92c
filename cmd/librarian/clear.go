package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear {images|trailers}",
	Short: "Delete downloaded assets from the library",
	Long: `Delete previously placed assets so the next pass re-downloads them.

  clear images     removes poster and backdrop files from every item
  clear trailers   removes every item's Trailers directory`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"images", "trailers"},
	RunE:      runClearCmd,
}

func init() {
	rootCmd.AddCommand(clearCmd)
}

func runClearCmd(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	switch args[0] {
	case "images":
		return a.driver.ClearImages(cmd.Context())
	case "trailers":
		return a.driver.ClearTrailers(cmd.Context())
	}
	return fmt.Errorf("unknown asset class %q, want images or trailers", args[0])
}
