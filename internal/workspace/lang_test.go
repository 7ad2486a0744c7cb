package workspace

import (
	"errors"
	"strings"
	"testing"
)

func TestLanguageFromName(t *testing.T) {
	cases := map[string]string{
		"index.html":  "html",
		"a.HTM":       "html",
		"app.jsx":     "javascript",
		"app.tsx":     "typescript",
		"notes.md":    "markdown",
		"data.json":   "json",
		"Makefile":    PlainText,
		"html":        PlainText,
		"archive.zip": PlainText,
		"main.go":     "go",
	}
	for name, want := range cases {
		if got := LanguageFromName(name); got != want {
			t.Fatalf("LanguageFromName(%q) = %q want %q", name, got, want)
		}
	}
}

func TestEditorLanguage(t *testing.T) {
	if got := EditorLanguage("typescript"); got != "typescript" {
		t.Fatalf("got %s", got)
	}
	if got := EditorLanguage("cobol"); got != PlainText {
		t.Fatalf("got %s", got)
	}
}

func TestTemplate(t *testing.T) {
	if !strings.Contains(Template("html"), "<!DOCTYPE html>") {
		t.Fatalf("html template missing doctype")
	}
	if !strings.Contains(Template("markdown"), "```") {
		t.Fatalf("markdown template missing code fence")
	}
	if Template("txt") != "" || Template("unknown") != "" {
		t.Fatalf("text and unknown templates should be empty")
	}
	for _, ft := range FileTypes {
		if ft.Value == "txt" {
			continue
		}
		if Template(ft.Value) == "" {
			t.Fatalf("no template for %s", ft.Value)
		}
	}
}

func TestLookupFileType(t *testing.T) {
	ft, ok := LookupFileType("JavaScript")
	if !ok || ft.Ext != ".js" {
		t.Fatalf("LookupFileType = %+v %v", ft, ok)
	}
	if _, ok := LookupFileType("cobol"); ok {
		t.Fatalf("unexpected file type")
	}
}

func TestValidateNames(t *testing.T) {
	for _, ok := range []string{"index", "my-file_2"} {
		if err := ValidateFileBaseName(ok); err != nil {
			t.Fatalf("%q rejected: %v", ok, err)
		}
	}
	for _, bad := range []string{"", "  ", "my file", "a.b", "x/y"} {
		if err := ValidateFileBaseName(bad); !errors.Is(err, ErrInvalidName) {
			t.Fatalf("%q accepted: %v", bad, err)
		}
	}
	if err := ValidateFolderName("my folder"); err != nil {
		t.Fatalf("folder with space rejected: %v", err)
	}
	err := ValidateFolderName("a.b")
	var ne *NameError
	if !errors.As(err, &ne) || !strings.Contains(ne.Msg, "spaces") {
		t.Fatalf("unexpected folder error: %v", err)
	}
}
