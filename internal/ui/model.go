package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"vincode/internal/terminal"
	"vincode/internal/workspace"
)

type focusArea int

const (
	focusTree focusArea = iota
	focusEditor
	focusPreview
	focusTerminal
	focusSearch
)

func (f focusArea) String() string {
	switch f {
	case focusEditor:
		return "EDIT"
	case focusPreview:
		return "PREVIEW"
	case focusTerminal:
		return "TERM"
	case focusSearch:
		return "SEARCH"
	default:
		return "FILES"
	}
}

// Model for TUI
type model struct {
	store  *workspace.Store
	events <-chan workspace.Event
	unsub  func()

	// last snapshot and derived rows
	st     workspace.State
	rows   []treeRow
	cursor int
	theme  designTheme

	focus    focusArea
	width    int
	height   int
	quitting bool

	// editor bound to editorID; empty when no file is active
	editor   textarea.Model
	editorID string

	preview     viewport.Model
	previewKey  string
	previewText string

	search textinput.Model

	// terminal simulator pane
	term     *terminal.Session
	termIn   textinput.Model
	termOpen bool

	// command palette
	paletteOpen     bool
	paletteIn       textinput.Model
	paletteFiltered []paletteCmd
	paletteIndex    int

	// quick open
	quickOpen bool
	quickIn   textinput.Model
	quickList list.Model

	dlg *dialog

	notice    string
	exportDir string
}

// Option customizes the TUI model.
type Option func(*model)

// WithExportDir sets where ctrl+e writes the project archive.
func WithExportDir(dir string) Option { return func(m *model) { m.exportDir = dir } }

func newModel(store *workspace.Store, opts ...Option) model {
	m := model{store: store, exportDir: "."}
	for _, o := range opts {
		o(&m)
	}
	m.events, m.unsub = store.Subscribe()

	ta := textarea.New()
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Prompt = ""
	ta.Placeholder = "Open a file from the explorer"
	m.editor = ta

	m.preview = viewport.New(40, 10)

	si := textinput.New()
	si.Prompt = IconSearch() + " "
	si.Placeholder = "Search files"
	si.CharLimit = 256
	m.search = si

	m.term = terminal.New(store.Snapshot)
	ti := textinput.New()
	ti.Prompt = terminal.Prompt
	ti.CharLimit = 1024
	m.termIn = ti

	pi := textinput.New()
	pi.Prompt = " › "
	pi.CharLimit = 128
	m.paletteIn = pi

	qi := textinput.New()
	qi.Prompt = " " + IconSearch() + " "
	qi.Placeholder = "Go to file"
	qi.CharLimit = 256
	m.quickIn = qi
	m.quickList = newQuickList(Vitesse)

	m.sync()
	return m
}

// New returns the TUI model bound to store. Call Close on the returned
// model once the program exits to release the store subscription.
func New(store *workspace.Store, opts ...Option) *Program {
	m := newModel(store, opts...)
	return &Program{model: m}
}

// Program wraps the bubbletea model with its lifecycle.
type Program struct{ model model }

// Model exposes the bubbletea model.
func (p *Program) Model() tea.Model { return p.model }

// Close releases the store subscription.
func (p *Program) Close() {
	if p.model.unsub != nil {
		p.model.unsub()
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(waitForEvent(m.events), textarea.Blink)
}

// sync reloads the snapshot and refreshes everything derived from it.
func (m *model) sync() {
	m.st = m.store.Snapshot()
	if th := themeFor(m.st.Settings.Theme); th != m.theme {
		m.theme = th
		d := list.NewDefaultDelegate()
		d.Styles = quickItemStyles(th)
		m.quickList.SetDelegate(d)
	}
	m.rows = visibleRows(m.st)
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.editor.ShowLineNumbers = m.st.Settings.EditorMode == workspace.ModeExpert

	active := workspace.Find(m.st.Tree, m.st.ActiveFileID)
	switch {
	case active == nil:
		m.editorID = ""
		m.editor.SetValue("")
		if m.focus == focusEditor {
			m.setFocus(focusTree)
		}
	case active.ID != m.editorID:
		m.editorID = active.ID
		m.editor.SetValue(active.Content)
	case active.Content != m.editor.Value() && !m.editor.Focused():
		m.editor.SetValue(active.Content)
	}
	m.layout()
}

func (m *model) setFocus(f focusArea) tea.Cmd {
	m.editor.Blur()
	m.search.Blur()
	m.termIn.Blur()
	m.focus = f
	switch f {
	case focusEditor:
		if m.editorID == "" {
			m.focus = focusTree
			return nil
		}
		return m.editor.Focus()
	case focusSearch:
		return m.search.Focus()
	case focusTerminal:
		return m.termIn.Focus()
	}
	return nil
}

// cycleFocus moves between the visible panes.
func (m *model) cycleFocus(dir int) tea.Cmd {
	order := []focusArea{}
	if m.st.Settings.SidebarOpen {
		order = append(order, focusTree)
	}
	if m.editorID != "" {
		order = append(order, focusEditor)
	}
	if m.st.Settings.PreviewOpen {
		order = append(order, focusPreview)
	}
	if m.termOpen {
		order = append(order, focusTerminal)
	}
	if len(order) == 0 {
		return m.setFocus(focusTree)
	}
	cur := 0
	for i, f := range order {
		if f == m.focus {
			cur = i
		}
	}
	next := (cur + dir + len(order)) % len(order)
	return m.setFocus(order[next])
}

// selected returns the tree node under the cursor.
func (m model) selected() *workspace.Node {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return m.rows[m.cursor].Node
}

// targetFolder is where new nodes go: the folder under the cursor, the
// parent of the file under the cursor, or the root.
func (m model) targetFolder() string {
	n := m.selected()
	switch {
	case n == nil:
		return ""
	case n.IsFolder():
		return n.ID
	default:
		return n.ParentID
	}
}

func (m *model) moveCursorTo(id string) {
	for i, r := range m.rows {
		if r.Node.ID == id {
			m.cursor = i
			return
		}
	}
}
