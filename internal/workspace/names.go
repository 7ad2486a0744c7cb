package workspace

import (
	"path"
	"regexp"
	"strings"
)

var (
	fileBaseRe   = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	folderNameRe = regexp.MustCompile(`^[a-zA-Z0-9_\-\s]+$`)
)

// ValidateFileBaseName checks a file name as typed into the "new file"
// dialog, before the extension of the chosen file type is appended.
func ValidateFileBaseName(s string) error {
	if strings.TrimSpace(s) == "" {
		return &NameError{Msg: "File name is required"}
	}
	if !fileBaseRe.MatchString(s) {
		return &NameError{Msg: "File name can only contain letters, numbers, hyphens, and underscores"}
	}
	return nil
}

// ValidateFolderName checks a folder name as typed into the "new folder"
// dialog. Callers trim the value before creating the folder.
func ValidateFolderName(s string) error {
	if strings.TrimSpace(s) == "" {
		return &NameError{Msg: "Folder name is required"}
	}
	if !folderNameRe.MatchString(s) {
		return &NameError{Msg: "Folder name can only contain letters, numbers, spaces, hyphens, and underscores"}
	}
	return nil
}

// cleanName applies the structural rules every stored name obeys,
// independent of which dialog produced it.
func cleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return "", &NameError{Msg: "name is required"}
	case name == "." || name == "..":
		return "", &NameError{Msg: "name cannot be . or .."}
	case strings.ContainsAny(name, `/\`):
		return "", &NameError{Msg: "name cannot contain path separators"}
	}
	return name, nil
}

// splitExt splits "a.min.js" into "a.min" and ".js". Names without a dot
// have an empty extension.
func splitExt(name string) (base, ext string) {
	ext = path.Ext(name)
	return strings.TrimSuffix(name, ext), ext
}
