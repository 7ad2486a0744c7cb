package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/spf13/cobra"

	"vincode/internal/workspace"
)

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().StringP("query", "q", "", "only show nodes whose name contains this text")
}

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the project tree",
	Long:  "Print the project tree (the starter project, or the --from directory) the way the explorer shows it, filtered by --query.",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newStore(loadConfig())
		if err != nil {
			return err
		}
		q, _ := cmd.Flags().GetString("query")
		st := store.Snapshot()
		nodes := workspace.Filter(st.Tree, q)
		if len(nodes) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "(no matches)")
			return nil
		}
		root := tree.Root(".")
		for _, n := range nodes {
			root.Child(buildTree(n, st.MainHTMLFileID))
		}
		fmt.Fprintln(cmd.OutOrStdout(), root.String())
		return nil
	},
}

var (
	folderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("147"))
	fileStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	markStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// buildTree returns a styled leaf for files and a subtree for folders.
func buildTree(n *workspace.Node, mainID string) any {
	if n.IsFile() {
		name := fileStyle.Render(n.Name)
		if n.ID == mainID {
			name += markStyle.Render(" (main)")
		}
		return name
	}
	t := tree.Root(folderStyle.Render(n.Name + "/"))
	for _, c := range n.Children {
		t.Child(buildTree(c, mainID))
	}
	return t
}
