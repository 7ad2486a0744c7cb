package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"vincode/internal/workspace"
)

// treeRow is one visible line of the explorer.
type treeRow struct {
	Node   *workspace.Node
	Depth  int
	Prefix string // connector glyphs, e.g. "│ ├╴"
}

// visibleRows flattens the filtered tree into explorer lines. Collapsed
// folders hide their children, except while a search filter is active.
func visibleRows(st workspace.State) []treeRow {
	tree := workspace.Filter(st.Tree, st.SearchQuery)
	filtering := strings.TrimSpace(st.SearchQuery) != ""
	var rows []treeRow
	var walk func(nodes workspace.Tree, depth int, indent string)
	walk = func(nodes workspace.Tree, depth int, indent string) {
		for i, n := range nodes {
			last := i == len(nodes)-1
			prefix, childIndent := "", ""
			if depth > 0 {
				if last {
					prefix, childIndent = indent+"└╴", indent+"  "
				} else {
					prefix, childIndent = indent+"├╴", indent+"│ "
				}
			}
			rows = append(rows, treeRow{Node: n, Depth: depth, Prefix: prefix})
			if n.IsFolder() && (filtering || st.IsExpanded(n.ID)) {
				walk(n.Children, depth+1, childIndent)
			}
		}
	}
	walk(tree, 0, "")
	return rows
}

func treeZoneID(id string) string { return "tree." + id }
func tabZoneID(id string) string  { return "tab." + id }

// renderTreeLines renders explorer rows for a pane of inner width w and
// at most h lines, keeping the cursor visible.
func (m model) renderTreeLines(w, h int) []string {
	t := m.theme
	var lines []string
	if m.focus == focusSearch || m.st.SearchQuery != "" {
		m.search.Width = maxInt(4, w-3)
		lines = append(lines, clipToWidth(m.search.View(), w), "")
		h -= 2
	}
	if len(m.rows) == 0 {
		msg := "No files"
		if m.st.SearchQuery != "" {
			msg = "No matches for " + m.st.SearchQuery
		}
		return append(lines, t.Dim(" "+msg))
	}
	start := 0
	if h > 0 && m.cursor >= h {
		start = m.cursor - h + 1
	}
	end := minInt(len(m.rows), start+maxInt(h, 0))

	prefixStyle := lipgloss.NewStyle().Foreground(t.Border)
	for i := start; i < end; i++ {
		r := m.rows[i]
		n := r.Node
		icon := fileIcon(n.Name, n.IsFolder(), m.st.IsExpanded(n.ID))
		iconStyle := lipgloss.NewStyle().Foreground(iconColor(t, n))
		nameStyle := lipgloss.NewStyle().Foreground(t.Text)
		if n.ID == m.st.ActiveFileID {
			nameStyle = nameStyle.Foreground(t.Primary).Bold(true)
		}
		var marks []string
		if n.ID == m.st.MainHTMLFileID {
			marks = append(marks, lipgloss.NewStyle().Foreground(t.Yellow).Render(IconMain()))
		}
		if n.IsModified {
			marks = append(marks, lipgloss.NewStyle().Foreground(t.Magenta).Render(IconModified()))
		}
		line := " " + prefixStyle.Render(r.Prefix) + iconStyle.Render(icon) + " " + nameStyle.Render(n.Name)
		if len(marks) > 0 {
			line += " " + strings.Join(marks, " ")
		}
		line = padRight(line, w)
		if i == m.cursor {
			// rows start with a space, the cursor mark takes its cell
			plain := stripANSI(line)
			sel := lipgloss.NewStyle().Background(t.BgSoft).Foreground(t.Text)
			if m.focus == focusTree {
				plain = "›" + plain[1:]
				sel = sel.Foreground(t.Primary).Bold(true)
			}
			line = sel.Render(plain)
		}
		lines = append(lines, zone.Mark(treeZoneID(n.ID), line))
	}
	return lines
}

func iconColor(t designTheme, n *workspace.Node) lipgloss.Color {
	if n.IsFolder() {
		return t.Yellow
	}
	switch n.Language {
	case "html":
		return t.Red
	case "css":
		return t.Blue
	case "javascript", "typescript":
		return t.Yellow
	case "markdown":
		return t.Cyan
	case "json":
		return t.Magenta
	}
	return t.Secondary
}
