package ui

import (
	"path"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"

	"vincode/internal/workspace"
)

// quickItem is a file hit in the quick-open list.
type quickItem struct {
	id   string
	name string
	path string
}

func (i quickItem) Title() string       { return i.name }
func (i quickItem) Description() string { return i.path }
func (i quickItem) FilterValue() string { return i.path }

const quickOpenLimit = 50

// newQuickList constructs the quick-open list styled with the palette.
func newQuickList(t designTheme) list.Model {
	d := list.NewDefaultDelegate()
	d.Styles = quickItemStyles(t)
	l := list.New(nil, d, 48, 12)
	ls := list.DefaultStyles()
	ls.Title = ls.Title.Foreground(t.Text)
	ls.PaginationStyle = ls.PaginationStyle.Foreground(t.Secondary)
	ls.HelpStyle = ls.HelpStyle.Foreground(t.Muted)
	ls.StatusBar = ls.StatusBar.Foreground(t.Secondary)
	ls.NoItems = ls.NoItems.Foreground(t.Muted)
	l.Styles = ls
	// the overlay draws its own caption and input
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowFilter(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(false)
	return l
}

func quickItemStyles(t designTheme) list.DefaultItemStyles {
	s := list.NewDefaultItemStyles()
	s.NormalTitle = s.NormalTitle.Foreground(t.Text)
	s.NormalDesc = s.NormalDesc.Foreground(t.Secondary)
	s.SelectedTitle = s.SelectedTitle.
		BorderForeground(t.Primary).
		Foreground(t.Primary)
	s.SelectedDesc = s.SelectedDesc.
		BorderForeground(t.Primary).
		Foreground(t.Primary)
	s.DimmedTitle = s.DimmedTitle.Foreground(t.Secondary)
	s.DimmedDesc = s.DimmedDesc.Foreground(t.Muted)
	s.FilterMatch = lipgloss.NewStyle().Foreground(t.Yellow).Underline(true)
	return s
}

// refreshQuickOpen reruns the fuzzy match for the current input.
func (m *model) refreshQuickOpen() {
	matches := m.store.QuickOpen(m.quickIn.Value(), quickOpenLimit)
	items := make([]list.Item, 0, len(matches))
	for _, mt := range matches {
		items = append(items, quickItem{id: mt.ID, name: path.Base(mt.Path), path: mt.Path})
	}
	m.quickList.SetItems(items)
	m.quickList.Select(0)
}

// selectedQuick returns the highlighted hit, or ok=false.
func (m *model) selectedQuick() (quickItem, bool) {
	it := m.quickList.SelectedItem()
	if it == nil {
		return quickItem{}, false
	}
	qi, ok := it.(quickItem)
	return qi, ok
}

// openQuick opens the chosen file, expands its folders and moves the
// explorer cursor onto it.
func (m *model) openQuick(id string) error {
	st := m.store.Snapshot()
	for _, a := range workspace.Ancestors(st.Tree, id) {
		if !st.IsExpanded(a.ID) {
			if err := m.store.ToggleFolder(a.ID); err != nil {
				return err
			}
		}
	}
	if err := m.store.OpenFile(id); err != nil {
		return err
	}
	m.sync()
	m.moveCursorTo(id)
	return nil
}

// quickWidth returns the overlay width for the quick-open box.
func quickWidth(total int) int {
	w := total * 3 / 5
	if w < 30 {
		w = 30
	}
	if w > 72 {
		w = 72
	}
	if w > total-2 {
		w = total - 2
	}
	return w
}
