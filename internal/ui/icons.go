package ui

import (
	"os"
	"strings"
)

// nfEnabled reports whether Nerd Font icons should be rendered.
// Enabled by default; NERDFONT=0 falls back to plain ASCII.
func nfEnabled() bool {
	return os.Getenv("NERDFONT") != "0"
}

func nf(icon, fallback string) string {
	if nfEnabled() {
		return icon
	}
	return fallback
}

// Pane and status bar icons
func IconExplorer() string { return nf("", "#") }  // fa-list-alt
func IconConfig() string   { return nf("", "*") }  // fa-gear
func IconTerminal() string { return nf("", ">") }  // fa-terminal
func IconSearch() string   { return nf("", "/") }  // fa-search
func IconFilter() string   { return nf("", "f") }  // fa-filter
func IconVersion() string  { return nf("", "v") }  // fa-tag
func IconPreview() string  { return nf("", "@") }  // fa-eye
func IconZoom() string     { return nf("", "z") }  // fa-search-plus
func IconMain() string     { return nf("", "*") }  // fa-star
func IconModified() string { return nf("", "●") } // fa-circle
func IconExport() string   { return nf("", "zip") }
func IconRefresh() string  { return nf("", "~") }

// Device icons
func IconDesktop() string { return nf("", "D") }
func IconTablet() string  { return nf("", "T") }
func IconMobile() string  { return nf("", "M") }

// fileIcon picks a glyph by extension. Folders switch between open and
// closed. Raw glyphs only; styling happens at the call site so width
// calculation stays correct.
func fileIcon(name string, isDir, expanded bool) string {
	if !nfEnabled() {
		switch {
		case isDir && expanded:
			return "▾"
		case isDir:
			return "▸"
		default:
			return "·"
		}
	}
	if isDir {
		if expanded {
			return "" // nf-custom-folder_open
		}
		return "" // nf-custom-folder
	}
	lower := strings.ToLower(name)
	switch {
	case hasAnySuffix(lower, ".md", ".mdx", ".markdown"):
		return ""
	case hasAnySuffix(lower, ".json"):
		return ""
	case hasAnySuffix(lower, ".yml", ".yaml", ".toml"):
		return ""
	case hasAnySuffix(lower, ".sh", ".bash", ".zsh"):
		return ""
	case hasAnySuffix(lower, ".js", ".cjs", ".mjs", ".jsx"):
		return ""
	case hasAnySuffix(lower, ".ts", ".tsx"):
		return ""
	case hasAnySuffix(lower, ".py"):
		return ""
	case hasAnySuffix(lower, ".html", ".htm"):
		return ""
	case hasAnySuffix(lower, ".css", ".scss", ".less"):
		return ""
	case hasAnySuffix(lower, ".png", ".jpg", ".jpeg", ".gif", ".svg", ".ico"):
		return ""
	}
	return "" // fa-file
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, x := range suffixes {
		if strings.HasSuffix(s, x) {
			return true
		}
	}
	return false
}
