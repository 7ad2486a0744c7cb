package export

import (
	"archive/zip"
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"vincode/internal/workspace"
)

func readZip(t *testing.T, b []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		t.Fatalf("zip.NewReader: %v", err)
	}
	out := map[string]string{}
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		data, _ := io.ReadAll(rc)
		_ = rc.Close()
		out[f.Name] = string(data)
	}
	return out
}

func TestWriteZip_PreservesStructure(t *testing.T) {
	s := workspace.New()
	root := s.Snapshot().Tree[0].ID
	src, err := s.CreateFolder("src", root)
	if err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}
	if _, err := s.UploadFile("a.js", "let a = 1", src); err != nil {
		t.Fatalf("UploadFile: %v", err)
	}
	if _, err := s.CreateFolder("empty", ""); err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteZip(&buf, s.Snapshot().Tree); err != nil {
		t.Fatalf("WriteZip: %v", err)
	}
	files := readZip(t, buf.Bytes())
	for _, name := range []string{"project/", "project/index.html", "project/README.md", "project/src/", "empty/"} {
		if _, ok := files[name]; !ok {
			t.Fatalf("missing entry %s in %v", name, keys(files))
		}
	}
	if got := files["project/src/a.js"]; got != "let a = 1" {
		t.Fatalf("a.js content = %q", got)
	}
	if len(files) != 8 {
		t.Fatalf("unexpected entries: %v", keys(files))
	}
}

func TestWriteZipFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out", ArchiveName)
	tree := workspace.Tree{{ID: "x", Name: "notes.txt", Kind: workspace.KindFile, Content: "hi"}}
	if err := WriteZipFile(p, tree); err != nil {
		t.Fatalf("WriteZipFile: %v", err)
	}
	zr, err := zip.OpenReader(p)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer zr.Close()
	if len(zr.File) != 1 || zr.File[0].Name != "notes.txt" {
		t.Fatalf("unexpected archive: %+v", zr.File)
	}
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
