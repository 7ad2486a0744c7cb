package workspace

// Settings commands. Zoom changes all funnel through Settings.WithZoom so
// the level never leaves [MinZoom, MaxZoom].

func (s *Store) updateSettings(command string, fn func(Settings) (Settings, error)) error {
	return s.apply(command, func(st *State) error {
		next, err := fn(st.Settings)
		if err != nil {
			return err
		}
		st.Settings = next
		return nil
	})
}

func (s *Store) SetZoomLevel(level int) {
	_ = s.updateSettings("setZoomLevel", func(cur Settings) (Settings, error) {
		return cur.WithZoom(level), nil
	})
}

func (s *Store) ZoomIn() {
	_ = s.updateSettings("zoomIn", func(cur Settings) (Settings, error) {
		return cur.WithZoom(cur.ZoomLevel + ZoomStep), nil
	})
}

func (s *Store) ZoomOut() {
	_ = s.updateSettings("zoomOut", func(cur Settings) (Settings, error) {
		return cur.WithZoom(cur.ZoomLevel - ZoomStep), nil
	})
}

func (s *Store) ResetZoom() {
	_ = s.updateSettings("resetZoom", func(cur Settings) (Settings, error) {
		return cur.WithZoom(DefaultZoom), nil
	})
}

func (s *Store) SetEditorMode(mode string) error {
	return s.updateSettings("setEditorMode", func(cur Settings) (Settings, error) {
		m, err := ParseEditorMode(mode)
		cur.EditorMode = m
		return cur, err
	})
}

func (s *Store) SetTheme(theme string) error {
	return s.updateSettings("setTheme", func(cur Settings) (Settings, error) {
		t, err := ParseTheme(theme)
		cur.Theme = t
		return cur, err
	})
}

func (s *Store) SetDeviceView(device string) error {
	return s.updateSettings("setDeviceView", func(cur Settings) (Settings, error) {
		d, err := ParseDevice(device)
		cur.DeviceView = d
		return cur, err
	})
}

func (s *Store) TogglePreview() {
	_ = s.updateSettings("togglePreview", func(cur Settings) (Settings, error) {
		cur.PreviewOpen = !cur.PreviewOpen
		return cur, nil
	})
}

func (s *Store) ToggleSidebar() {
	_ = s.updateSettings("toggleSidebar", func(cur Settings) (Settings, error) {
		cur.SidebarOpen = !cur.SidebarOpen
		return cur, nil
	})
}
