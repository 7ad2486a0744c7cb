package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"vincode/internal/system"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// modal dialog owns all input except resize and store events
	if m.dlg != nil {
		switch msg.(type) {
		case tea.WindowSizeMsg, storeEventMsg, storeClosedMsg, noticeMsg, exportDoneMsg:
		default:
			cmd := m.updateDialog(msg)
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case storeEventMsg:
		m.sync()
		return m, waitForEvent(m.events)

	case storeClosedMsg:
		m.events = nil
		return m, nil

	case noticeMsg:
		m.notice = string(msg)
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.notice = fmt.Sprintf("export failed: %v", msg.err)
		} else {
			m.notice = "Exported " + msg.path
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// blink and other component messages
	var cmd tea.Cmd
	switch m.focus {
	case focusEditor:
		m.editor, cmd = m.editor.Update(msg)
	case focusTerminal:
		m.termIn, cmd = m.termIn.Update(msg)
	case focusSearch:
		m.search, cmd = m.search.Update(msg)
	}
	return m, cmd
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		if m.focus == focusPreview {
			var cmd tea.Cmd
			m.preview, cmd = m.preview.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	for _, id := range m.st.OpenFiles {
		if zone.Get(tabZoneID(id)).InBounds(msg) {
			return m, errNotice(m.store.SetActiveFile(id))
		}
	}
	for i, r := range m.rows {
		if zone.Get(treeZoneID(r.Node.ID)).InBounds(msg) {
			m.cursor = i
			m.setFocus(focusTree)
			cmd := m.activateSelected()
			return m, cmd
		}
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	m.notice = ""
	if key == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}
	if m.paletteOpen {
		return m.handlePaletteKey(msg)
	}
	if m.quickOpen {
		return m.handleQuickKey(msg)
	}

	// global shortcuts, available in every pane
	switch key {
	case "ctrl+p":
		m.quickOpen = true
		m.quickIn.SetValue("")
		m.refreshQuickOpen()
		cmd := m.quickIn.Focus()
		return m, cmd
	case "ctrl+k":
		m.paletteOpen = true
		m.paletteIn.SetValue("")
		m.paletteIndex = 0
		m.refreshPalette()
		cmd := m.paletteIn.Focus()
		return m, cmd
	case "ctrl+t":
		cmd := m.toggleTerminal()
		return m, cmd
	case "ctrl+b":
		m.store.ToggleSidebar()
		return m, nil
	case "ctrl+e":
		return m, exportCmd(m.st.Tree, m.exportDir)
	case "ctrl+o":
		return m, openPreviewCmd(m.st)
	case "ctrl+w":
		if m.st.ActiveFileID != "" {
			return m, errNotice(m.store.CloseFile(m.st.ActiveFileID))
		}
		return m, nil
	case "tab":
		if m.focus != focusEditor {
			cmd := m.cycleFocus(1)
			return m, cmd
		}
	case "shift+tab":
		cmd := m.cycleFocus(-1)
		return m, cmd
	case "alt+]":
		cmd := m.switchTab(1)
		return m, cmd
	case "alt+[":
		cmd := m.switchTab(-1)
		return m, cmd
	}

	switch m.focus {
	case focusEditor:
		return m.handleEditorKey(msg)
	case focusTerminal:
		return m.handleTerminalKey(msg)
	case focusSearch:
		return m.handleSearchKey(msg)
	case focusPreview:
		return m.handlePreviewKey(msg)
	}
	return m.handleTreeKey(msg)
}

func (m model) handleTreeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.store
	sel := m.selected()
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case ":":
		m.paletteOpen = true
		m.paletteIn.SetValue("/")
		m.paletteIn.CursorEnd()
		m.paletteIndex = 0
		m.refreshPalette()
		cmd := m.paletteIn.Focus()
		return m, cmd
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = maxInt(0, len(m.rows)-1)
	case "enter", "right", "l", " ":
		cmd := m.activateSelected()
		return m, cmd
	case "left", "h":
		if sel == nil {
			return m, nil
		}
		if sel.IsFolder() && m.st.IsExpanded(sel.ID) {
			return m, errNotice(s.ToggleFolder(sel.ID))
		}
		if sel.ParentID != "" {
			m.moveCursorTo(sel.ParentID)
		}
	case "/":
		cmd := m.setFocus(focusSearch)
		return m, cmd
	case "esc":
		if m.st.SearchQuery != "" {
			m.search.SetValue("")
			s.SetSearchQuery("")
		}
	case "n", "a":
		cmd := m.execCommand("/new-file", "")
		return m, cmd
	case "N", "A":
		cmd := m.execCommand("/new-folder", "")
		return m, cmd
	case "r", "f2":
		cmd := m.execCommand("/rename", "")
		return m, cmd
	case "d", "delete":
		cmd := m.execCommand("/delete", "")
		return m, cmd
	case "y":
		cmd := m.execCommand("/duplicate", "")
		return m, cmd
	case "M":
		cmd := m.execCommand("/move", "")
		return m, cmd
	case "*":
		cmd := m.execCommand("/main", "")
		return m, cmd
	case "+", "=":
		s.ZoomIn()
	case "-", "_":
		s.ZoomOut()
	case "0":
		s.ResetZoom()
	case "T":
		cmd := m.execCommand("/theme", "")
		return m, cmd
	case "D":
		cmd := m.execCommand("/device", "")
		return m, cmd
	case "E":
		cmd := m.execCommand("/mode", "")
		return m, cmd
	case "p":
		s.TogglePreview()
	case ",":
		cmd := m.execCommand("/settings", "")
		return m, cmd
	case "R":
		cmd := m.execCommand("/reset", "")
		return m, cmd
	}
	return m, nil
}

// activateSelected opens the file under the cursor or toggles the folder.
func (m *model) activateSelected() tea.Cmd {
	sel := m.selected()
	if sel == nil {
		return nil
	}
	if sel.IsFolder() {
		return errNotice(m.store.ToggleFolder(sel.ID))
	}
	if err := m.store.OpenFile(sel.ID); err != nil {
		return errNotice(err)
	}
	m.sync()
	return m.setFocus(focusEditor)
}

func (m model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		cmd := m.setFocus(focusTree)
		return m, cmd
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if m.editorID != "" {
		if n := m.store.FileByID(m.editorID); n != nil && n.Content != m.editor.Value() {
			if err := m.store.UpdateFileContent(m.editorID, m.editor.Value()); err != nil {
				system.Logger.Warn("update content", "id", m.editorID, "err", err)
			}
		}
	}
	return m, cmd
}

func (m model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.search.SetValue("")
		m.store.SetSearchQuery("")
		cmd := m.setFocus(focusTree)
		return m, cmd
	case "enter", "down":
		m.cursor = 0
		cmd := m.setFocus(focusTree)
		return m, cmd
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.st.SearchQuery {
		m.store.SetSearchQuery(m.search.Value())
	}
	return m, cmd
}

func (m model) handlePreviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		cmd := m.setFocus(focusTree)
		return m, cmd
	case "q":
		m.quitting = true
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(msg)
	return m, cmd
}

func (m model) handleTerminalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		cmd := m.setFocus(focusTree)
		return m, cmd
	case "enter":
		line := m.termIn.Value()
		m.termIn.SetValue("")
		m.term.Execute(line)
		return m, nil
	case "up":
		if v, ok := m.term.HistoryPrev(); ok {
			m.termIn.SetValue(v)
			m.termIn.CursorEnd()
		}
		return m, nil
	case "down":
		if v, ok := m.term.HistoryNext(); ok {
			m.termIn.SetValue(v)
			m.termIn.CursorEnd()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.termIn, cmd = m.termIn.Update(msg)
	return m, cmd
}

func (m model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.paletteOpen = false
		m.paletteIn.Blur()
		return m, nil
	case "up", "ctrl+k":
		if n := len(m.paletteFiltered); n > 0 {
			m.paletteIndex = (m.paletteIndex - 1 + n) % n
		}
		return m, nil
	case "down", "ctrl+j":
		if n := len(m.paletteFiltered); n > 0 {
			m.paletteIndex = (m.paletteIndex + 1) % n
		}
		return m, nil
	case "tab":
		if len(m.paletteFiltered) > 0 {
			c := m.paletteFiltered[m.paletteIndex]
			v := c.Name
			if c.Args != "" {
				v += " "
			}
			m.paletteIn.SetValue(v)
			m.paletteIn.CursorEnd()
			m.refreshPalette()
		}
		return m, nil
	case "enter":
		line := strings.TrimSpace(m.paletteIn.Value())
		fields := strings.Fields(line)
		// a bare prefix runs the highlighted command
		if len(fields) <= 1 && len(m.paletteFiltered) > 0 {
			line = m.paletteFiltered[m.paletteIndex].Name
		}
		m.paletteOpen = false
		m.paletteIn.Blur()
		if line == "" || line == "/" {
			return m, nil
		}
		cmd := m.execPaletteLine(line)
		return m, cmd
	}
	var cmd tea.Cmd
	m.paletteIn, cmd = m.paletteIn.Update(msg)
	m.refreshPalette()
	return m, cmd
}

func (m model) handleQuickKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.quickOpen = false
		m.quickIn.Blur()
		return m, nil
	case "up", "down", "ctrl+n", "pgup", "pgdown":
		k := msg
		if msg.String() == "ctrl+n" {
			k = tea.KeyMsg{Type: tea.KeyDown}
		}
		var cmd tea.Cmd
		m.quickList, cmd = m.quickList.Update(k)
		return m, cmd
	case "enter":
		m.quickOpen = false
		m.quickIn.Blur()
		it, ok := m.selectedQuick()
		if !ok {
			return m, nil
		}
		if err := m.openQuick(it.id); err != nil {
			return m, errNotice(err)
		}
		cmd := m.setFocus(focusEditor)
		return m, cmd
	}
	var cmd tea.Cmd
	m.quickIn, cmd = m.quickIn.Update(msg)
	m.refreshQuickOpen()
	return m, cmd
}

func (m *model) toggleTerminal() tea.Cmd {
	m.termOpen = !m.termOpen
	m.layout()
	if m.termOpen {
		return m.setFocus(focusTerminal)
	}
	if m.focus == focusTerminal {
		return m.setFocus(focusTree)
	}
	return nil
}

// switchTab activates the next or previous open tab.
func (m *model) switchTab(dir int) tea.Cmd {
	open := m.st.OpenFiles
	if len(open) < 2 {
		return nil
	}
	cur := 0
	for i, id := range open {
		if id == m.st.ActiveFileID {
			cur = i
		}
	}
	next := open[(cur+dir+len(open))%len(open)]
	return errNotice(m.store.SetActiveFile(next))
}
