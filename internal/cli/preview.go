package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vincode/internal/preview"
	"vincode/internal/workspace"
)

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringP("output", "o", "", "write the document to this file instead of stdout")
	previewCmd.Flags().String("main", "", "path of the HTML file to render, e.g. project/about.html")
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the assembled preview document",
	Long:  "Assemble the preview document: the main HTML file with every CSS file inlined before </head> and every JS file before </body>.",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newStore(loadConfig())
		if err != nil {
			return err
		}
		if p, _ := cmd.Flags().GetString("main"); p != "" {
			n, ok := workspace.Resolve(store.Snapshot().Tree, p)
			if !ok || n == nil {
				return fmt.Errorf("%s: %w", p, workspace.ErrNotFound)
			}
			if err := store.SetMainHTMLFile(n.ID); err != nil {
				return fmt.Errorf("%s: %w", p, err)
			}
		}
		doc := preview.FromState(store.Snapshot())
		out, _ := cmd.Flags().GetString("output")
		if out == "" {
			_, err := fmt.Fprint(cmd.OutOrStdout(), doc)
			return err
		}
		if err := os.WriteFile(out, []byte(doc), 0o644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ wrote %s\n", out)
		return nil
	},
}
