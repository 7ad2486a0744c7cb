package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"vincode/internal/workspace"
)

// Config is the read-only config.yaml under Dir(). Every field is optional;
// cobra flags override whatever the file sets.
type Config struct {
	Server Server `yaml:"server"`
	Editor Editor `yaml:"editor"`
	Log    Log    `yaml:"log"`
	// DropDir is watched for files to upload into the workspace root.
	DropDir string `yaml:"drop_dir"`
}

type Server struct {
	Addr string `yaml:"addr"`
	Open bool   `yaml:"open"`
}

type Editor struct {
	Mode   string `yaml:"mode"`
	Theme  string `yaml:"theme"`
	Zoom   int    `yaml:"zoom"`
	Device string `yaml:"device"`
}

type Log struct {
	Level string `yaml:"level"`
}

// defaultConfig holds the built-in fallback.
var defaultConfig = Config{
	Server: Server{Addr: "127.0.0.1:8787", Open: true},
	Editor: Editor{
		Mode:   string(workspace.ModeExpert),
		Theme:  string(workspace.ThemeDark),
		Zoom:   workspace.DefaultZoom,
		Device: string(workspace.DeviceDesktop),
	},
	Log: Log{Level: "info"},
}

// Default returns the built-in configuration.
func Default() Config { return defaultConfig }

// Load reads config.yaml. A missing file yields Default() and no error;
// empty sections of an existing file fall back to the defaults.
func Load() (Config, error) {
	p, err := File()
	if err != nil {
		return defaultConfig, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultConfig, nil
		}
		return defaultConfig, err
	}
	return Parse(b)
}

// Parse decodes YAML and fills unset fields from the defaults.
func Parse(b []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return defaultConfig, err
	}
	cfg.Server.Addr = or(cfg.Server.Addr, defaultConfig.Server.Addr)
	cfg.Editor.Mode = or(cfg.Editor.Mode, defaultConfig.Editor.Mode)
	cfg.Editor.Theme = or(cfg.Editor.Theme, defaultConfig.Editor.Theme)
	cfg.Editor.Device = or(cfg.Editor.Device, defaultConfig.Editor.Device)
	cfg.Log.Level = or(cfg.Log.Level, defaultConfig.Log.Level)
	if cfg.Editor.Zoom == 0 {
		cfg.Editor.Zoom = defaultConfig.Editor.Zoom
	}
	cfg.DropDir = strings.TrimSpace(cfg.DropDir)
	return cfg, nil
}

// Settings turns the editor section into workspace presets. Invalid enum
// values are reported; zoom is clamped by the workspace.
func (c Config) Settings() (workspace.Settings, error) {
	s := workspace.DefaultSettings()
	var err error
	if s.EditorMode, err = workspace.ParseEditorMode(c.Editor.Mode); err != nil {
		return workspace.DefaultSettings(), err
	}
	if s.Theme, err = workspace.ParseTheme(c.Editor.Theme); err != nil {
		return workspace.DefaultSettings(), err
	}
	if s.DeviceView, err = workspace.ParseDevice(c.Editor.Device); err != nil {
		return workspace.DefaultSettings(), err
	}
	return s.WithZoom(c.Editor.Zoom), nil
}

func or(v, def string) string {
	if v = strings.TrimSpace(v); v == "" {
		return def
	}
	return v
}
