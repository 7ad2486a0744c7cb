package workspace

import (
	"fmt"
	"math"
	"strings"
)

type EditorMode string

const (
	ModePractice EditorMode = "practice"
	ModeExpert   EditorMode = "expert"
)

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
	ThemeNeon  Theme = "neon"
)

type Device string

const (
	DeviceDesktop Device = "desktop"
	DeviceTablet  Device = "tablet"
	DeviceMobile  Device = "mobile"
)

const (
	MinZoom      = 50
	MaxZoom      = 200
	DefaultZoom  = 100
	ZoomStep     = 10
	BaseFontSize = 14
)

// Settings are the editor presets. They share the store lifecycle but never
// reference tree nodes.
type Settings struct {
	EditorMode  EditorMode `json:"editorMode" jsonschema:"enum=practice,enum=expert"`
	ZoomLevel   int        `json:"zoomLevel" jsonschema:"minimum=50,maximum=200"`
	FontSize    int        `json:"fontSize"`
	Theme       Theme      `json:"theme" jsonschema:"enum=dark,enum=light,enum=neon"`
	DeviceView  Device     `json:"deviceView" jsonschema:"enum=desktop,enum=tablet,enum=mobile"`
	PreviewOpen bool       `json:"previewOpen"`
	SidebarOpen bool       `json:"sidebarOpen"`
}

func DefaultSettings() Settings {
	return Settings{
		EditorMode:  ModeExpert,
		ZoomLevel:   DefaultZoom,
		FontSize:    BaseFontSize,
		Theme:       ThemeDark,
		DeviceView:  DeviceDesktop,
		PreviewOpen: true,
		SidebarOpen: true,
	}
}

// FontSizeFor is the editor font size at a zoom level.
func FontSizeFor(zoom int) int {
	return int(math.Round(BaseFontSize * float64(zoom) / 100))
}

func ClampZoom(level int) int {
	if level < MinZoom {
		return MinZoom
	}
	if level > MaxZoom {
		return MaxZoom
	}
	return level
}

// WithZoom is the only way zoom changes: it clamps and recomputes FontSize.
func (s Settings) WithZoom(level int) Settings {
	s.ZoomLevel = ClampZoom(level)
	s.FontSize = FontSizeFor(s.ZoomLevel)
	return s
}

func ParseEditorMode(v string) (EditorMode, error) {
	switch m := EditorMode(strings.ToLower(strings.TrimSpace(v))); m {
	case ModePractice, ModeExpert:
		return m, nil
	}
	return "", fmt.Errorf("editor mode %q: %w", v, ErrInvalidSetting)
}

func ParseTheme(v string) (Theme, error) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(v))); t {
	case ThemeDark, ThemeLight, ThemeNeon:
		return t, nil
	}
	return "", fmt.Errorf("theme %q: %w", v, ErrInvalidSetting)
}

func ParseDevice(v string) (Device, error) {
	switch d := Device(strings.ToLower(strings.TrimSpace(v))); d {
	case DeviceDesktop, DeviceTablet, DeviceMobile:
		return d, nil
	}
	return "", fmt.Errorf("device %q: %w", v, ErrInvalidSetting)
}
