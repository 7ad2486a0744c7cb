package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"vincode/internal/workspace"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().StringP("kind", "k", "state", "schema to print: state or settings")
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the workspace state",
	Long:  "Print the JSON Schema of the workspace state (GET /api/state) or of the editor settings (GET /api/settings) to stdout.",
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, _ := cmd.Flags().GetString("kind")
		sch := workspace.StateSchema()
		switch kind {
		case "state":
		case "settings":
			sch = workspace.SettingsSchema()
		default:
			return fmt.Errorf("unknown schema kind %q (want state or settings)", kind)
		}
		b, err := workspace.MarshalSchema(sch)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return nil
	},
}
