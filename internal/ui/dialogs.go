package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"vincode/internal/workspace"
)

// dialog is a modal huh form plus the values it binds and the store
// command it runs on submit.
type dialog struct {
	title string
	form  *huh.Form

	name     string
	choice   string
	confirm  bool
	theme    string
	device   string
	mode     string
	parentID string
	node     *workspace.Node

	submit func(d *dialog, s *workspace.Store) (string, error)
}

const dialogWidth = 52

// dialogTheme adapts huh's Charm theme to the palette.
func dialogTheme(t designTheme) *huh.Theme {
	theme := huh.ThemeCharm()
	theme.FieldSeparator = lipgloss.NewStyle()
	theme.Blurred.Title = theme.Blurred.Title.Foreground(t.Secondary)
	theme.Focused.Title = theme.Focused.Title.Foreground(t.Primary).Bold(true)
	theme.Blurred.SelectedOption = theme.Blurred.SelectedOption.Foreground(t.Muted)
	theme.Focused.SelectedOption = lipgloss.NewStyle().Foreground(t.Primary)
	theme.Focused.SelectSelector = theme.Focused.SelectSelector.Foreground(t.Primary)
	theme.Focused.Base = theme.Focused.Base.BorderForeground(t.Primary)
	theme.Focused.ErrorMessage = theme.Focused.ErrorMessage.Foreground(t.Red)
	theme.Focused.ErrorIndicator = theme.Focused.ErrorIndicator.Foreground(t.Red)
	theme.Focused.FocusedButton = theme.Focused.FocusedButton.Foreground(t.OnAccent).Background(t.Primary)
	return theme
}

func dialogKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel"))
	return km
}

func newForm(t designTheme, groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).
		WithTheme(dialogTheme(t)).
		WithKeyMap(dialogKeyMap()).
		WithWidth(dialogWidth - 4).
		WithShowHelp(false)
}

func newFileDialog(t designTheme, parentID string) *dialog {
	d := &dialog{title: "New File", parentID: parentID, choice: workspace.FileTypes[0].Value}
	opts := make([]huh.Option[string], 0, len(workspace.FileTypes))
	for _, ft := range workspace.FileTypes {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s (%s)", ft.Label, ft.Ext), ft.Value))
	}
	d.form = newForm(t, huh.NewGroup(
		huh.NewInput().
			Title("Name").
			Placeholder("my-file").
			Value(&d.name).
			Validate(workspace.ValidateFileBaseName),
		huh.NewSelect[string]().
			Title("Type").
			Options(opts...).
			Height(6).
			Value(&d.choice),
	))
	d.submit = func(d *dialog, s *workspace.Store) (string, error) {
		ft, ok := workspace.LookupFileType(d.choice)
		if !ok {
			return "", fmt.Errorf("unknown file type %q", d.choice)
		}
		name := d.name + ft.Ext
		id, err := s.CreateFile(name, ft.Value, d.parentID)
		if err != nil {
			return "", err
		}
		return "Created " + name, s.OpenFile(id)
	}
	return d
}

func newFolderDialog(t designTheme, parentID string) *dialog {
	d := &dialog{title: "New Folder", parentID: parentID}
	d.form = newForm(t, huh.NewGroup(
		huh.NewInput().
			Title("Name").
			Placeholder("components").
			Value(&d.name).
			Validate(workspace.ValidateFolderName),
	))
	d.submit = func(d *dialog, s *workspace.Store) (string, error) {
		name := strings.TrimSpace(d.name)
		if _, err := s.CreateFolder(name, d.parentID); err != nil {
			return "", err
		}
		return "Created " + name + "/", nil
	}
	return d
}

func renameDialog(t designTheme, n *workspace.Node) *dialog {
	d := &dialog{title: "Rename " + n.Name, node: n, name: n.Name}
	d.form = newForm(t, huh.NewGroup(
		huh.NewInput().
			Title("New name").
			Value(&d.name).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("Name is required")
				}
				return nil
			}),
	))
	d.submit = func(d *dialog, s *workspace.Store) (string, error) {
		if err := s.RenameNode(d.node.ID, d.name); err != nil {
			return "", err
		}
		return "Renamed to " + strings.TrimSpace(d.name), nil
	}
	return d
}

func deleteDialog(t designTheme, n *workspace.Node) *dialog {
	d := &dialog{title: "Delete", node: n}
	desc := "This file will be removed from the project."
	if n.IsFolder() {
		desc = fmt.Sprintf("The folder and its %d nested item(s) will be removed.", len(workspace.SubtreeIDs(n))-1)
	}
	d.form = newForm(t, huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("Delete %s?", n.Name)).
			Description(desc).
			Affirmative("Delete").
			Negative("Cancel").
			Value(&d.confirm),
	))
	d.submit = func(d *dialog, s *workspace.Store) (string, error) {
		if !d.confirm {
			return "", nil
		}
		if err := s.DeleteNode(d.node.ID); err != nil {
			return "", err
		}
		return "Deleted " + d.node.Name, nil
	}
	return d
}

// moveDialog offers the root and every folder outside n's own subtree.
func moveDialog(t designTheme, tree workspace.Tree, n *workspace.Node) *dialog {
	d := &dialog{title: "Move " + n.Name, node: n, choice: n.ParentID}
	opts := []huh.Option[string]{huh.NewOption("/ (project root)", "")}
	workspace.Walk(tree, func(f *workspace.Node, _ int) bool {
		if f.ID == n.ID {
			return false
		}
		if f.IsFolder() {
			opts = append(opts, huh.NewOption("/"+workspace.PathOf(tree, f.ID), f.ID))
		}
		return true
	})
	d.form = newForm(t, huh.NewGroup(
		huh.NewSelect[string]().
			Title("Destination").
			Options(opts...).
			Height(minInt(len(opts)+1, 10)).
			Value(&d.choice),
	))
	d.submit = func(d *dialog, s *workspace.Store) (string, error) {
		if d.choice == d.node.ParentID {
			return "", nil
		}
		if err := s.MoveNode(d.node.ID, d.choice); err != nil {
			return "", err
		}
		return "Moved " + d.node.Name, nil
	}
	return d
}

func settingsDialog(t designTheme, cur workspace.Settings) *dialog {
	d := &dialog{
		title:  "Settings",
		theme:  string(cur.Theme),
		device: string(cur.DeviceView),
		mode:   string(cur.EditorMode),
	}
	d.form = newForm(t, huh.NewGroup(
		huh.NewSelect[string]().
			Title("Theme").
			Options(huh.NewOptions("dark", "light", "neon")...).
			Value(&d.theme),
		huh.NewSelect[string]().
			Title("Preview device").
			Options(huh.NewOptions("desktop", "tablet", "mobile")...).
			Value(&d.device),
		huh.NewSelect[string]().
			Title("Editor mode").
			Options(huh.NewOptions("expert", "practice")...).
			Value(&d.mode),
	))
	d.submit = func(d *dialog, s *workspace.Store) (string, error) {
		if err := s.SetTheme(d.theme); err != nil {
			return "", err
		}
		if err := s.SetDeviceView(d.device); err != nil {
			return "", err
		}
		if err := s.SetEditorMode(d.mode); err != nil {
			return "", err
		}
		return "Settings saved", nil
	}
	return d
}

func (m *model) openDialog(d *dialog) tea.Cmd {
	m.dlg = d
	m.paletteOpen = false
	m.quickOpen = false
	return d.form.Init()
}

// updateDialog routes msg to the open form and runs the submit hook once
// the form completes.
func (m *model) updateDialog(msg tea.Msg) tea.Cmd {
	fm, cmd := m.dlg.form.Update(msg)
	if f, ok := fm.(*huh.Form); ok {
		m.dlg.form = f
	}
	switch m.dlg.form.State {
	case huh.StateAborted:
		m.dlg = nil
		return nil
	case huh.StateCompleted:
		d := m.dlg
		m.dlg = nil
		msg, err := d.submit(d, m.store)
		m.sync()
		if d.node != nil {
			m.moveCursorTo(d.node.ID)
		}
		if err != nil {
			return errNotice(err)
		}
		if msg != "" {
			return notice(msg)
		}
		return nil
	}
	return cmd
}

// renderDialog frames the form with a titled border.
func (m model) renderDialog() string {
	body := strings.Split(strings.TrimRight(m.dlg.form.View(), "\n"), "\n")
	body = append([]string{""}, body...)
	body = append(body, "", m.theme.Dim(" enter confirm · esc cancel"))
	return renderPane(m.theme, dialogWidth, len(body)+2, m.dlg.title, body, true)
}
