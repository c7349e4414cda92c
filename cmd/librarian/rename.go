package main

import (
	"os"

	"github.com/spf13/cobra"
)

var renameCmd = &cobra.Command{
	Use:   "rename",
	Short: "Rename item folders to the canonical naming convention",
	Long: `Rename media folders to "Title (Year) {tmdb-id}".

The embedded TMDB id makes later identification exact, so renamed
folders never need a catalog search again. Folders whose catalog match
is doubtful are reported and left alone.

Examples:
  librarian rename --dry-run   # show planned renames without moving anything
  librarian rename`,
	Args: cobra.NoArgs,
	RunE: runRenameCmd,
}

func init() {
	rootCmd.AddCommand(renameCmd)
	renameCmd.Flags().Bool("dry-run", false, "Log planned renames without moving anything")
}

func runRenameCmd(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	a, err := newApp()
	if err != nil {
		return err
	}

	report, err := a.driver.Rename(cmd.Context(), dryRun)
	if err != nil {
		return err
	}
	report.Render(os.Stdout)
	return nil
}
