package ui

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"vincode/internal/export"
	"vincode/internal/preview"
	"vincode/internal/system"
	"vincode/internal/workspace"
)

// Commands

// waitForEvent blocks on the next store event.
func waitForEvent(ch <-chan workspace.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return storeClosedMsg{}
		}
		return storeEventMsg(ev)
	}
}

func notice(s string) tea.Cmd {
	return func() tea.Msg { return noticeMsg(s) }
}

// errNotice surfaces err in the status bar; nil is a no-op.
func errNotice(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	return notice(err.Error())
}

// exportCmd writes the project archive into dir.
func exportCmd(tree workspace.Tree, dir string) tea.Cmd {
	return func() tea.Msg {
		path := filepath.Join(dir, export.ArchiveName)
		err := export.WriteZipFile(path, tree)
		if err != nil {
			system.Logger.Error("export failed", "path", path, "err", err)
		}
		return exportDoneMsg{path: path, err: err}
	}
}

// openPreviewCmd writes the assembled preview to a temp file and opens it
// in the system browser.
func openPreviewCmd(st workspace.State) tea.Cmd {
	return func() tea.Msg {
		f, err := os.CreateTemp("", "vincode-preview-*.html")
		if err != nil {
			return noticeMsg(fmt.Sprintf("preview failed: %v", err))
		}
		defer f.Close()
		if _, err := f.WriteString(preview.FromState(st)); err != nil {
			return noticeMsg(fmt.Sprintf("preview failed: %v", err))
		}
		if err := system.OpenBrowser("file://" + f.Name()); err != nil {
			return noticeMsg(fmt.Sprintf("open browser failed: %v", err))
		}
		return noticeMsg("Preview opened in browser")
	}
}
