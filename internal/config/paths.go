package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Dir returns the vincode config directory under the user config base.
// On Linux, this typically resolves to $XDG_CONFIG_HOME/vincode; on macOS
// to ~/Library/Application Support/vincode; and on Windows to %AppData%/vincode.
// Falls back to HOME when UserConfigDir is unavailable.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(base) == "" {
		if home, herr := os.UserHomeDir(); herr == nil {
			base = home
		} else {
			return "", errors.New("cannot determine config directory")
		}
	}
	return filepath.Join(base, "vincode"), nil
}

// File returns the path of config.yaml inside Dir.
func File() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}
