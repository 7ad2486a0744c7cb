package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"vincode/internal/export"
)

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("output", "o", export.ArchiveName, `archive path, "-" for stdout`)
}

var exportCmd = &cobra.Command{
	Use:     "export",
	Aliases: []string{"zip"},
	Short:   "Write the project as a zip archive",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newStore(loadConfig())
		if err != nil {
			return err
		}
		tree := store.Snapshot().Tree
		out, _ := cmd.Flags().GetString("output")
		if out == "-" {
			return export.WriteZip(cmd.OutOrStdout(), tree)
		}
		if err := export.WriteZipFile(out, tree); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ exported %s\n", out)
		return nil
	},
}
