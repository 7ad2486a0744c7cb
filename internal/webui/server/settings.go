package server

import (
	"errors"
	"net/http"
)

// settingsPatch carries the fields a PATCH /api/settings may change. Nil
// fields are left alone.
type settingsPatch struct {
	ZoomLevel   *int    `json:"zoomLevel"`
	EditorMode  *string `json:"editorMode"`
	Theme       *string `json:"theme"`
	DeviceView  *string `json:"deviceView"`
	PreviewOpen *bool   `json:"previewOpen"`
	SidebarOpen *bool   `json:"sidebarOpen"`
}

type zoomRequest struct {
	Action string `json:"action"`
}

func (s *Server) settingsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Store.Snapshot().Settings)
}

// settingsPatchHandler applies each present field as its own store command.
// Enum fields are applied first so an invalid value leaves the other
// presets untouched.
func (s *Server) settingsPatchHandler(w http.ResponseWriter, r *http.Request) {
	var p settingsPatch
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, err)
		return
	}
	if p.EditorMode != nil {
		if err := s.Store.SetEditorMode(*p.EditorMode); err != nil {
			writeError(w, err)
			return
		}
	}
	if p.Theme != nil {
		if err := s.Store.SetTheme(*p.Theme); err != nil {
			writeError(w, err)
			return
		}
	}
	if p.DeviceView != nil {
		if err := s.Store.SetDeviceView(*p.DeviceView); err != nil {
			writeError(w, err)
			return
		}
	}
	if p.ZoomLevel != nil {
		s.Store.SetZoomLevel(*p.ZoomLevel)
	}
	cur := s.Store.Snapshot().Settings
	if p.PreviewOpen != nil && *p.PreviewOpen != cur.PreviewOpen {
		s.Store.TogglePreview()
	}
	if p.SidebarOpen != nil && *p.SidebarOpen != cur.SidebarOpen {
		s.Store.ToggleSidebar()
	}
	writeJSON(w, http.StatusOK, s.Store.Snapshot().Settings)
}

func (s *Server) zoomHandler(w http.ResponseWriter, r *http.Request) {
	var req zoomRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	switch req.Action {
	case "in":
		s.Store.ZoomIn()
	case "out":
		s.Store.ZoomOut()
	case "reset":
		s.Store.ResetZoom()
	default:
		writeError(w, errors.New("action must be one of in, out, reset"))
		return
	}
	writeJSON(w, http.StatusOK, s.Store.Snapshot().Settings)
}
