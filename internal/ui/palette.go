package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vincode/internal/workspace"
)

type paletteCmd struct {
	Name    string
	Aliases []string
	Args    string
	Desc    string
}

var paletteCmds = []paletteCmd{
	{Name: "/new-file", Aliases: []string{"/touch"}, Desc: "Create a file in the selected folder"},
	{Name: "/new-folder", Aliases: []string{"/mkdir"}, Desc: "Create a folder in the selected folder"},
	{Name: "/rename", Desc: "Rename the selected node"},
	{Name: "/delete", Aliases: []string{"/rm"}, Desc: "Delete the selected node"},
	{Name: "/duplicate", Desc: "Duplicate the selected file"},
	{Name: "/move", Aliases: []string{"/mv"}, Desc: "Move the selected node to another folder"},
	{Name: "/main", Desc: "Use the selected HTML file for the preview"},
	{Name: "/close", Desc: "Close the active tab"},
	{Name: "/search", Args: "<query>", Desc: "Filter the explorer"},
	{Name: "/zoom", Args: "<50-200>", Desc: "Set the zoom level"},
	{Name: "/zoom-in", Desc: "Zoom in"},
	{Name: "/zoom-out", Desc: "Zoom out"},
	{Name: "/zoom-reset", Desc: "Reset zoom to 100%"},
	{Name: "/theme", Args: "dark|light|neon", Desc: "Switch color theme"},
	{Name: "/device", Args: "desktop|tablet|mobile", Desc: "Switch preview device"},
	{Name: "/mode", Args: "practice|expert", Desc: "Switch editor mode"},
	{Name: "/preview", Desc: "Toggle the preview pane"},
	{Name: "/sidebar", Desc: "Toggle the explorer"},
	{Name: "/terminal", Aliases: []string{"/term"}, Desc: "Toggle the terminal"},
	{Name: "/export", Aliases: []string{"/zip"}, Desc: "Download the project as a zip"},
	{Name: "/browser", Aliases: []string{"/open"}, Desc: "Open the preview in the browser"},
	{Name: "/settings", Aliases: []string{"/config"}, Desc: "Edit editor settings"},
	{Name: "/reset", Desc: "Replace the project with the starter files"},
	{Name: "/quit", Aliases: []string{"/exit"}, Desc: "Exit vincode"},
}

func (m *model) refreshPalette() {
	q := strings.TrimSpace(m.paletteIn.Value())
	if sp := strings.IndexAny(q, " \t"); sp >= 0 {
		q = q[:sp]
	}
	if q != "" && !strings.HasPrefix(q, "/") {
		q = "/" + q
	}
	m.paletteFiltered = filterPaletteCommands(q)
	if m.paletteIndex >= len(m.paletteFiltered) {
		m.paletteIndex = 0
	}
}

// filterPaletteCommands matches names and aliases by prefix. An empty or
// bare "/" prefix lists everything; no match yields an empty slice.
func filterPaletteCommands(prefix string) []paletteCmd {
	if prefix == "" || prefix == "/" {
		return paletteCmds
	}
	p := strings.ToLower(prefix)
	res := make([]paletteCmd, 0, len(paletteCmds))
	for _, c := range paletteCmds {
		if strings.HasPrefix(c.Name, p) {
			res = append(res, c)
			continue
		}
		for _, a := range c.Aliases {
			if strings.HasPrefix(a, p) {
				res = append(res, c)
				break
			}
		}
	}
	return res
}

// canonicalCommand resolves aliases.
func canonicalCommand(name string) string {
	n := strings.ToLower(name)
	if !strings.HasPrefix(n, "/") {
		n = "/" + n
	}
	for _, c := range paletteCmds {
		if c.Name == n {
			return c.Name
		}
		for _, a := range c.Aliases {
			if a == n {
				return c.Name
			}
		}
	}
	return n
}

// execPaletteLine runs a typed line such as "/theme neon".
func (m *model) execPaletteLine(line string) tea.Cmd {
	parts := strings.Fields(strings.TrimSpace(line))
	if len(parts) == 0 {
		return nil
	}
	return m.execCommand(parts[0], strings.Join(parts[1:], " "))
}

// execCommand runs a palette command against the selected node.
func (m *model) execCommand(name, args string) tea.Cmd {
	sel := m.selected()
	s := m.store
	switch canonicalCommand(name) {
	case "/quit":
		m.quitting = true
		return tea.Quit
	case "/new-file":
		return m.openDialog(newFileDialog(m.theme, m.targetFolder()))
	case "/new-folder":
		return m.openDialog(newFolderDialog(m.theme, m.targetFolder()))
	case "/rename":
		if sel == nil {
			return notice("Nothing selected")
		}
		return m.openDialog(renameDialog(m.theme, sel))
	case "/delete":
		if sel == nil {
			return notice("Nothing selected")
		}
		return m.openDialog(deleteDialog(m.theme, sel))
	case "/move":
		if sel == nil {
			return notice("Nothing selected")
		}
		return m.openDialog(moveDialog(m.theme, m.st.Tree, sel))
	case "/settings":
		return m.openDialog(settingsDialog(m.theme, m.st.Settings))
	case "/duplicate":
		if sel == nil || !sel.IsFile() {
			return notice("Select a file to duplicate")
		}
		id, err := s.DuplicateFile(sel.ID)
		if err != nil {
			return errNotice(err)
		}
		_ = s.OpenFile(id)
		return notice("Duplicated " + sel.Name)
	case "/main":
		if sel == nil {
			return notice("Select an HTML file")
		}
		if err := s.SetMainHTMLFile(sel.ID); err != nil {
			return errNotice(err)
		}
		return notice("Preview uses " + sel.Name)
	case "/close":
		if m.st.ActiveFileID == "" {
			return nil
		}
		return errNotice(s.CloseFile(m.st.ActiveFileID))
	case "/search":
		s.SetSearchQuery(args)
		m.search.SetValue(args)
		return nil
	case "/zoom":
		n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(args), "%"))
		if err != nil {
			return notice("Usage: /zoom <50-200>")
		}
		s.SetZoomLevel(n)
		return nil
	case "/zoom-in":
		s.ZoomIn()
		return nil
	case "/zoom-out":
		s.ZoomOut()
		return nil
	case "/zoom-reset":
		s.ResetZoom()
		return nil
	case "/theme":
		if args == "" {
			args = string(nextTheme(m.st.Settings.Theme))
		}
		return errNotice(s.SetTheme(args))
	case "/device":
		if args == "" {
			args = string(nextDevice(m.st.Settings.DeviceView))
		}
		return errNotice(s.SetDeviceView(args))
	case "/mode":
		if args == "" {
			args = string(workspace.ModePractice)
			if m.st.Settings.EditorMode == workspace.ModePractice {
				args = string(workspace.ModeExpert)
			}
		}
		return errNotice(s.SetEditorMode(args))
	case "/preview":
		s.TogglePreview()
		return nil
	case "/sidebar":
		s.ToggleSidebar()
		return nil
	case "/terminal":
		return m.toggleTerminal()
	case "/export":
		return exportCmd(m.st.Tree, m.exportDir)
	case "/browser":
		return openPreviewCmd(m.st)
	case "/reset":
		s.ResetFiles()
		return notice("Project reset")
	}
	return notice(fmt.Sprintf("Unknown command %s", name))
}

func nextTheme(t workspace.Theme) workspace.Theme {
	switch t {
	case workspace.ThemeDark:
		return workspace.ThemeLight
	case workspace.ThemeLight:
		return workspace.ThemeNeon
	default:
		return workspace.ThemeDark
	}
}

func nextDevice(d workspace.Device) workspace.Device {
	switch d {
	case workspace.DeviceDesktop:
		return workspace.DeviceTablet
	case workspace.DeviceTablet:
		return workspace.DeviceMobile
	default:
		return workspace.DeviceDesktop
	}
}

// renderPalette draws the command palette box: an input echo line and
// the filtered commands.
func renderPalette(t designTheme, width int, input string, cmds []paletteCmd, sel int) string {
	inner := width - 2
	if inner < 20 {
		inner = 20
	}
	const nameWidth = 14
	const maxItems = 12
	border := t.FocusBorderStyle()
	hl := lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Render
	dim := lipgloss.NewStyle().Foreground(t.Muted).Render

	if len(cmds) > maxItems {
		// keep the selection on screen
		start := 0
		if sel >= maxItems {
			start = sel - maxItems + 1
		}
		cmds = cmds[start : start+maxItems]
		sel -= start
	}

	var b strings.Builder
	row := func(s string) {
		b.WriteString(border.Render("│"))
		b.WriteString(padRight(s, inner))
		b.WriteString(border.Render("│") + "\n")
	}
	b.WriteString(renderTopBorder(border, inner, "Commands") + "\n")
	row(input)
	row(dim(strings.Repeat("─", inner)))
	if len(cmds) == 0 {
		row(dim("  no matches"))
	}
	for i, c := range cmds {
		desc := c.Desc
		if c.Args != "" {
			desc = c.Args + "  " + desc
		}
		name := fmt.Sprintf("  %-*s  ", nameWidth, c.Name)
		if i == sel {
			name = hl(fmt.Sprintf("› %-*s  ", nameWidth, c.Name))
		}
		row(name + dim(desc))
	}
	b.WriteString(border.Render("╰" + strings.Repeat("─", inner) + "╯") + "\n")
	b.WriteString(dim("  ↑/↓ select · Tab complete · Enter run · Esc close"))
	return b.String()
}
