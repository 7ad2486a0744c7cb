package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"vincode/internal/export"
	"vincode/internal/workspace"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

func newTestModel(t *testing.T) (model, *workspace.Store) {
	t.Helper()
	s := workspace.New()
	m := newModel(s)
	t.Cleanup(m.unsub)
	m = send(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, s
}

func send(m model, msgs ...tea.Msg) model {
	for _, msg := range msgs {
		nm, _ := m.Update(msg)
		m = nm.(model)
	}
	return m
}

func typeText(s string) []tea.Msg {
	out := make([]tea.Msg, 0, len(s))
	for _, r := range s {
		out = append(out, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return out
}

func keyMsg(t tea.KeyType) tea.Msg { return tea.KeyMsg{Type: t} }

func nodeByName(t *testing.T, s *workspace.Store, name string) *workspace.Node {
	t.Helper()
	var found *workspace.Node
	workspace.Walk(s.Snapshot().Tree, func(n *workspace.Node, _ int) bool {
		if n.Name == name {
			found = n
		}
		return true
	})
	if found == nil {
		t.Fatalf("node %q not found", name)
	}
	return found
}

func TestVisibleRows_Connectors(t *testing.T) {
	s := workspace.New()
	rows := visibleRows(s.Snapshot())
	want := []struct{ name, prefix string }{
		{"project", ""},
		{"index.html", "├╴"},
		{"style.css", "├╴"},
		{"script.js", "├╴"},
		{"README.md", "└╴"},
	}
	if len(rows) != len(want) {
		t.Fatalf("rows=%d want %d", len(rows), len(want))
	}
	for i, w := range want {
		if rows[i].Node.Name != w.name || rows[i].Prefix != w.prefix {
			t.Fatalf("row %d = %q %q, want %q %q", i, rows[i].Node.Name, rows[i].Prefix, w.name, w.prefix)
		}
	}
}

func TestVisibleRows_NestedIndent(t *testing.T) {
	s := workspace.New()
	root := nodeByName(t, s, "project")
	sub, err := s.CreateFolder("components", root.ID)
	if err != nil {
		t.Fatalf("create folder: %v", err)
	}
	if _, err := s.CreateFile("button.js", "javascript", sub); err != nil {
		t.Fatalf("create file: %v", err)
	}
	rows := visibleRows(s.Snapshot())
	last := rows[len(rows)-1]
	if last.Node.Name != "button.js" || last.Prefix != "  └╴" || last.Depth != 2 {
		t.Fatalf("nested row = %q %q depth %d", last.Node.Name, last.Prefix, last.Depth)
	}
}

func TestVisibleRows_CollapsedAndFiltered(t *testing.T) {
	s := workspace.New()
	root := nodeByName(t, s, "project")
	if err := s.ToggleFolder(root.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if rows := visibleRows(s.Snapshot()); len(rows) != 1 {
		t.Fatalf("collapsed rows=%d want 1", len(rows))
	}
	// a search shows matches even inside collapsed folders
	s.SetSearchQuery("style")
	rows := visibleRows(s.Snapshot())
	if len(rows) != 2 || rows[1].Node.Name != "style.css" {
		t.Fatalf("filtered rows=%+v", rows)
	}
}

func TestFilterPaletteCommands(t *testing.T) {
	if got := filterPaletteCommands("/"); len(got) != len(paletteCmds) {
		t.Fatalf("bare slash listed %d commands", len(got))
	}
	got := filterPaletteCommands("/zoom")
	if len(got) != 4 {
		t.Fatalf("/zoom matched %d commands", len(got))
	}
	if got := filterPaletteCommands("/rm"); len(got) != 1 || got[0].Name != "/delete" {
		t.Fatalf("alias match = %+v", got)
	}
	if got := filterPaletteCommands("/nope"); len(got) != 0 {
		t.Fatalf("expected no matches, got %+v", got)
	}
}

func TestCanonicalCommand(t *testing.T) {
	cases := map[string]string{
		"/mv":    "/move",
		"zip":    "/export",
		"/EXIT":  "/quit",
		"/theme": "/theme",
		"/xyz":   "/xyz",
	}
	for in, want := range cases {
		if got := canonicalCommand(in); got != want {
			t.Fatalf("canonicalCommand(%q)=%q want %q", in, got, want)
		}
	}
}

func TestOpenFileAndEdit(t *testing.T) {
	m, s := newTestModel(t)
	// project, index.html, style.css
	m = send(m, keyMsg(tea.KeyDown), keyMsg(tea.KeyDown), keyMsg(tea.KeyEnter))
	css := nodeByName(t, s, "style.css")
	if got := s.Snapshot().ActiveFileID; got != css.ID {
		t.Fatalf("active=%q want style.css", got)
	}
	if m.focus != focusEditor || m.editorID != css.ID {
		t.Fatalf("focus=%v editor=%q", m.focus, m.editorID)
	}
	m = send(m, typeText("x")...)
	n := s.FileByID(css.ID)
	if !strings.HasSuffix(n.Content, "x") || !n.IsModified {
		t.Fatalf("content not synced: modified=%v suffix=%q", n.IsModified, n.Content[len(n.Content)-5:])
	}
	// the store event must not clobber what is in the editor
	m = send(m, storeEventMsg{})
	if m.editor.Value() != n.Content {
		t.Fatalf("editor value diverged after sync")
	}
	m = send(m, keyMsg(tea.KeyEsc))
	if m.focus != focusTree {
		t.Fatalf("esc should return to the explorer, focus=%v", m.focus)
	}
}

func TestFolderToggleFromTree(t *testing.T) {
	m, s := newTestModel(t)
	root := nodeByName(t, s, "project")
	m = send(m, keyMsg(tea.KeyEnter), storeEventMsg{})
	if s.Snapshot().IsExpanded(root.ID) {
		t.Fatalf("enter on expanded folder should collapse it")
	}
	if len(m.rows) != 1 {
		t.Fatalf("rows=%d after collapse", len(m.rows))
	}
	m = send(m, typeText("l")...)
	if !s.Snapshot().IsExpanded(root.ID) {
		t.Fatalf("l should expand the folder")
	}
}

func TestZoomKeys(t *testing.T) {
	m, s := newTestModel(t)
	m = send(m, typeText("++")...)
	if z := s.Snapshot().Settings.ZoomLevel; z != 120 {
		t.Fatalf("zoom=%d want 120", z)
	}
	m = send(m, typeText("0")...)
	if z := s.Snapshot().Settings.ZoomLevel; z != 100 {
		t.Fatalf("zoom=%d want 100", z)
	}
	send(m, typeText(strings.Repeat("-", 10))...)
	if z := s.Snapshot().Settings.ZoomLevel; z != workspace.MinZoom {
		t.Fatalf("zoom=%d want %d", z, workspace.MinZoom)
	}
}

func TestPaletteThemeCommand(t *testing.T) {
	m, s := newTestModel(t)
	m = send(m, typeText(":")...)
	if !m.paletteOpen {
		t.Fatalf("palette should open on ':'")
	}
	m = send(m, typeText("theme neon")...)
	m = send(m, keyMsg(tea.KeyEnter), storeEventMsg{})
	if m.paletteOpen {
		t.Fatalf("palette should close after running a command")
	}
	if got := s.Snapshot().Settings.Theme; got != workspace.ThemeNeon {
		t.Fatalf("theme=%q want neon", got)
	}
	if m.theme != Neon {
		t.Fatalf("model palette not switched to neon")
	}
}

func TestPaletteRunsHighlightedCommand(t *testing.T) {
	m, s := newTestModel(t)
	m = send(m, keyMsg(tea.KeyCtrlK))
	m = send(m, typeText("/zoom-i")...)
	m = send(m, keyMsg(tea.KeyEnter))
	if z := s.Snapshot().Settings.ZoomLevel; z != 110 {
		t.Fatalf("zoom=%d want 110", z)
	}
	if m.paletteOpen {
		t.Fatalf("palette still open")
	}
}

func TestQuickOpen(t *testing.T) {
	m, s := newTestModel(t)
	m = send(m, keyMsg(tea.KeyCtrlP))
	if !m.quickOpen {
		t.Fatalf("ctrl+p should open quick open")
	}
	m = send(m, typeText("readme")...)
	m = send(m, keyMsg(tea.KeyEnter))
	readme := nodeByName(t, s, "README.md")
	if got := s.Snapshot().ActiveFileID; got != readme.ID {
		t.Fatalf("active=%q want README.md", got)
	}
	if sel := m.selected(); sel == nil || sel.ID != readme.ID {
		t.Fatalf("cursor not moved to the opened file")
	}
	if m.previewText == "" || !strings.Contains(m.previewTitle(), "README.md") {
		t.Fatalf("markdown preview not rendered")
	}
}

func TestTerminalPane(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(m, keyMsg(tea.KeyCtrlT))
	if !m.termOpen || m.focus != focusTerminal {
		t.Fatalf("ctrl+t should open and focus the terminal")
	}
	m = send(m, typeText("pwd")...)
	m = send(m, keyMsg(tea.KeyEnter))
	out := m.term.Output()
	// output lines end with a blank separator
	if out[len(out)-2] != "/project" {
		t.Fatalf("pwd output=%q", out[len(out)-2])
	}
	m = send(m, keyMsg(tea.KeyUp))
	if m.termIn.Value() != "pwd" {
		t.Fatalf("history prev=%q", m.termIn.Value())
	}
}

func TestDeleteActiveFileClearsEditor(t *testing.T) {
	m, s := newTestModel(t)
	index := nodeByName(t, s, "index.html")
	if m.editorID != index.ID {
		t.Fatalf("default editor should show index.html")
	}
	if err := s.DeleteNode(index.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	m = send(m, storeEventMsg{})
	if m.editorID != "" || m.editor.Value() != "" {
		t.Fatalf("editor still bound to deleted file")
	}
}

func TestDialogSubmit(t *testing.T) {
	s := workspace.New()
	root := nodeByName(t, s, "project")

	d := newFolderDialog(Vitesse, root.ID)
	d.name = "  assets "
	if _, err := d.submit(d, s); err != nil {
		t.Fatalf("new folder: %v", err)
	}
	assets := nodeByName(t, s, "assets")

	d = newFileDialog(Vitesse, assets.ID)
	d.name, d.choice = "app", "typescript"
	if _, err := d.submit(d, s); err != nil {
		t.Fatalf("new file: %v", err)
	}
	app := nodeByName(t, s, "app.ts")
	if app.ParentID != assets.ID || s.Snapshot().ActiveFileID != app.ID {
		t.Fatalf("new file not created in place or not opened")
	}

	d = renameDialog(Vitesse, app)
	d.name = "main.js"
	if _, err := d.submit(d, s); err != nil {
		t.Fatalf("rename: %v", err)
	}
	if n := s.FileByID(app.ID); n.Language != "javascript" {
		t.Fatalf("language=%q after rename", n.Language)
	}

	d = moveDialog(Vitesse, s.Snapshot().Tree, s.FileByID(app.ID))
	d.choice = ""
	if _, err := d.submit(d, s); err != nil {
		t.Fatalf("move: %v", err)
	}
	if n := s.FileByID(app.ID); n.ParentID != "" {
		t.Fatalf("parent=%q after move to root", n.ParentID)
	}

	d = deleteDialog(Vitesse, assets)
	if _, err := d.submit(d, s); err != nil {
		t.Fatalf("declined delete: %v", err)
	}
	if s.FileByID(app.ID) == nil || workspace.Find(s.Snapshot().Tree, assets.ID) == nil {
		t.Fatalf("declined delete removed nodes")
	}
	d.confirm = true
	if _, err := d.submit(d, s); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if workspace.Find(s.Snapshot().Tree, assets.ID) != nil {
		t.Fatalf("folder still present")
	}
}

func TestDialogSubmitSurfacesDuplicate(t *testing.T) {
	s := workspace.New()
	root := nodeByName(t, s, "project")
	d := newFileDialog(Vitesse, root.ID)
	d.name, d.choice = "index", "html"
	if _, err := d.submit(d, s); err == nil {
		t.Fatalf("expected duplicate name error")
	}
}

func TestSettingsDialog(t *testing.T) {
	s := workspace.New()
	d := settingsDialog(Vitesse, s.Snapshot().Settings)
	d.theme, d.device, d.mode = "light", "mobile", "practice"
	if _, err := d.submit(d, s); err != nil {
		t.Fatalf("settings: %v", err)
	}
	got := s.Snapshot().Settings
	if got.Theme != workspace.ThemeLight || got.DeviceView != workspace.DeviceMobile || got.EditorMode != workspace.ModePractice {
		t.Fatalf("settings not applied: %+v", got)
	}
}

func TestExportCmd(t *testing.T) {
	s := workspace.New()
	dir := t.TempDir()
	msg := exportCmd(s.Snapshot().Tree, dir)()
	done, ok := msg.(exportDoneMsg)
	if !ok || done.err != nil {
		t.Fatalf("export msg=%#v", msg)
	}
	if done.path != filepath.Join(dir, export.ArchiveName) {
		t.Fatalf("path=%q", done.path)
	}
	if fi, err := os.Stat(done.path); err != nil || fi.Size() == 0 {
		t.Fatalf("archive missing: %v", err)
	}
}

func TestViewRendersPanes(t *testing.T) {
	m, _ := newTestModel(t)
	out := stripANSI(m.View())
	for _, want := range []string{"Explorer", "index.html", "Preview", "FILES"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q", want)
		}
	}
	for i, ln := range strings.Split(out, "\n") {
		if w := cellWidth(ln); w > 120 {
			t.Fatalf("line %d is %d cells wide", i, w)
		}
	}
}

func TestFileIconFallback(t *testing.T) {
	t.Setenv("NERDFONT", "0")
	if got := fileIcon("app.js", false, false); got != "·" {
		t.Fatalf("file fallback=%q", got)
	}
	if got := fileIcon("src", true, true); got != "▾" {
		t.Fatalf("open folder fallback=%q", got)
	}
}
