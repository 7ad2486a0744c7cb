package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	cfg "vincode/internal/config"
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().BoolP("init", "i", false, "write the defaults to config.yaml when it is missing")
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the config location and the effective settings",
	Long:  "Print the path of config.yaml followed by the effective configuration (file values merged over the defaults).",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := cfg.File()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if initFile, _ := cmd.Flags().GetBool("init"); initFile {
			created, err := writeDefaultConfig(path)
			if err != nil {
				return err
			}
			if created {
				fmt.Fprintf(out, "✓ created %s\n", path)
			} else {
				fmt.Fprintf(out, "• keeping existing %s\n", path)
			}
		}
		c, err := cfg.Load()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		b, err := yaml.Marshal(c)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "# %s\n%s", path, b)
		return nil
	},
}

// writeDefaultConfig creates path with the built-in defaults unless a file
// already exists there.
func writeDefaultConfig(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	dir, err := cfg.Dir()
	if err != nil {
		return false, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, err
	}
	b, err := yaml.Marshal(cfg.Default())
	if err != nil {
		return false, err
	}
	return true, os.WriteFile(path, b, 0o644)
}
