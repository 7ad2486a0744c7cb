package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"vincode/internal/preview"
	appver "vincode/internal/version"
	"vincode/internal/workspace"
)

const terminalHeight = 10

// paneSizes is the computed layout for the current window.
type paneSizes struct {
	sidebarW, editorW, previewW int
	mainH, termH                int
}

func (m model) sizes() paneSizes {
	w, h := m.width, m.height
	if w <= 0 {
		w = 100
	}
	if h <= 0 {
		h = 30
	}
	var p paneSizes
	if m.termOpen {
		p.termH = minInt(terminalHeight, h/2)
	}
	p.mainH = maxInt(4, h-1-p.termH)
	if m.st.Settings.SidebarOpen {
		p.sidebarW = w / 4
		if p.sidebarW < 24 {
			p.sidebarW = 24
		}
		if p.sidebarW > 36 {
			p.sidebarW = 36
		}
		if p.sidebarW > w-20 {
			p.sidebarW = maxInt(0, w-20)
		}
	}
	rest := w - p.sidebarW
	if m.st.Settings.PreviewOpen {
		p.previewW = rest / 2
	}
	p.editorW = rest - p.previewW
	return p
}

// layout resizes the components to the current window.
func (m *model) layout() {
	p := m.sizes()
	// borders plus the tab line
	m.editor.SetWidth(maxInt(4, p.editorW-2))
	m.editor.SetHeight(maxInt(1, p.mainH-3))
	m.preview.Width = maxInt(4, p.previewW-2)
	m.preview.Height = maxInt(1, p.mainH-2)
	m.termIn.Width = maxInt(4, m.width-4-len(m.termIn.Prompt))
	m.quickList.SetSize(quickWidth(maxInt(m.width, 40))-2, minInt(16, maxInt(4, p.mainH-6)))
	m.refreshPreview()
}

// refreshPreview re-renders the preview pane when the project, the
// active file or the pane width changed.
func (m *model) refreshPreview() {
	key := fmt.Sprintf("%d|%s|%d|%s", m.st.Version, m.st.ActiveFileID, m.preview.Width, m.st.Settings.Theme)
	if key == m.previewKey {
		return
	}
	m.previewKey = key
	if n := workspace.Find(m.st.Tree, m.st.ActiveFileID); n != nil && n.Language == "markdown" {
		m.previewText = renderMarkdown(n.Content, m.preview.Width, m.theme)
	} else {
		m.previewText = expandTabs(preview.FromState(m.st))
	}
	m.preview.SetContent(m.previewText)
}

func (m model) previewTitle() string {
	title := IconPreview() + " Preview"
	if n := workspace.Find(m.st.Tree, m.st.ActiveFileID); n != nil && n.Language == "markdown" {
		return title + " · " + n.Name
	}
	if n := workspace.Find(m.st.Tree, m.st.MainHTMLFileID); n != nil {
		title += " · " + n.Name
	}
	f := preview.DeviceFrame(m.st.Settings.DeviceView)
	if !f.Fluid() {
		title += fmt.Sprintf(" · %s %dx%d", deviceIcon(f.Device), f.Width, f.Height)
	} else {
		title += " · " + deviceIcon(f.Device)
	}
	return title
}

func deviceIcon(d workspace.Device) string {
	switch d {
	case workspace.DeviceMobile:
		return IconMobile()
	case workspace.DeviceTablet:
		return IconTablet()
	}
	return IconDesktop()
}

func (m model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}
	p := m.sizes()
	t := m.theme

	var main string
	switch {
	case m.dlg != nil:
		main = lipgloss.Place(maxInt(m.width, 40), p.mainH, lipgloss.Center, lipgloss.Center, m.renderDialog())
	case m.paletteOpen:
		box := renderPalette(t, quickWidth(maxInt(m.width, 40)), m.paletteIn.View(), m.paletteFiltered, m.paletteIndex)
		main = lipgloss.Place(maxInt(m.width, 40), p.mainH, lipgloss.Center, lipgloss.Top, box)
	case m.quickOpen:
		main = lipgloss.Place(maxInt(m.width, 40), p.mainH, lipgloss.Center, lipgloss.Top, m.renderQuickOpen())
	default:
		var cols []string
		if p.sidebarW > 0 {
			title := IconExplorer() + " Explorer"
			if m.st.SearchQuery != "" {
				title = IconFilter() + " " + m.st.SearchQuery
			}
			lines := m.renderTreeLines(p.sidebarW-2, p.mainH-2)
			cols = append(cols, renderPane(t, p.sidebarW, p.mainH, title, lines, m.focus == focusTree || m.focus == focusSearch))
		}
		cols = append(cols, m.renderEditorPane(p.editorW, p.mainH))
		if p.previewW > 0 {
			lines := strings.Split(m.preview.View(), "\n")
			cols = append(cols, renderPane(t, p.previewW, p.mainH, m.previewTitle(), lines, m.focus == focusPreview))
		}
		main = lipgloss.JoinHorizontal(lipgloss.Top, cols...)
	}

	b := &strings.Builder{}
	b.WriteString(main)
	if p.termH > 0 {
		b.WriteString("\n")
		b.WriteString(m.renderTerminal(maxInt(m.width, 40), p.termH))
	}
	b.WriteString("\n")
	b.WriteString(m.renderStatusBarLine())
	return zone.Scan(b.String())
}

func (m model) renderEditorPane(w, h int) string {
	t := m.theme
	if m.editorID == "" {
		lines := []string{
			"",
			t.AccentBold().Render("  vincode"),
			"",
			t.Dim("  enter   open file        ctrl+p  go to file"),
			t.Dim("  n / N   new file/folder  ctrl+k  commands"),
			t.Dim("  r / d   rename/delete    ctrl+t  terminal"),
			t.Dim("  +/-/0   zoom             ctrl+e  export zip"),
		}
		return renderPane(t, w, h, "Editor", lines, false)
	}
	lines := []string{m.renderTabs(w - 2)}
	lines = append(lines, strings.Split(m.editor.View(), "\n")...)
	title := "Editor"
	if n := workspace.Find(m.st.Tree, m.editorID); n != nil {
		title = workspace.PathOf(m.st.Tree, n.ID) + " · " + workspace.EditorLanguage(n.Language)
	}
	return renderPane(t, w, h, title, lines, m.focus == focusEditor)
}

// renderTabs draws the open files; every tab is a click zone.
func (m model) renderTabs(w int) string {
	t := m.theme
	var parts []string
	for _, id := range m.st.OpenFiles {
		n := workspace.Find(m.st.Tree, id)
		if n == nil {
			continue
		}
		label := " " + n.Name
		if n.IsModified {
			label += " " + IconModified()
		}
		label += " "
		style := lipgloss.NewStyle().Foreground(t.Secondary)
		if id == m.st.ActiveFileID {
			style = lipgloss.NewStyle().Foreground(t.OnAccent).Background(t.Primary).Bold(true)
		}
		parts = append(parts, zone.Mark(tabZoneID(id), style.Render(label)))
	}
	return clipToWidth(strings.Join(parts, t.Dim("│")), w)
}

func (m model) renderQuickOpen() string {
	w := quickWidth(maxInt(m.width, 40))
	lines := []string{m.quickIn.View(), m.theme.Dim(strings.Repeat("─", w-2))}
	lines = append(lines, strings.Split(m.quickList.View(), "\n")...)
	lines = append(lines, m.theme.Dim(" ↑/↓ select · enter open · esc close"))
	return renderPane(m.theme, w, len(lines)+2, "Go to File", lines, true)
}

func (m model) renderTerminal(w, h int) string {
	out := m.term.Output()
	// keep the tail; the last line is the input
	room := maxInt(0, h-3)
	if len(out) > room {
		out = out[len(out)-room:]
	}
	lines := append([]string{}, out...)
	lines = append(lines, m.termIn.View())
	return renderPane(m.theme, w, h, IconTerminal()+" Terminal", lines, m.focus == focusTerminal)
}

// renderStatusBarLine builds the bottom status bar.
func (m model) renderStatusBarLine() string {
	st := m.st.Settings
	left := []string{m.focus.String()}
	if m.notice != "" {
		left = append(left, m.notice)
	} else if n := workspace.Find(m.st.Tree, m.st.ActiveFileID); n != nil {
		left = append(left, workspace.PathOf(m.st.Tree, n.ID))
	}
	right := []string{
		fmt.Sprintf("%s %d%% %dpx", IconZoom(), st.ZoomLevel, st.FontSize),
		deviceIcon(st.DeviceView) + " " + string(st.DeviceView),
		string(st.Theme) + " · " + string(st.EditorMode),
		IconVersion() + " " + appver.AppVersion,
	}
	return renderStatusBarStyled(m.theme, m.width, left, right)
}
