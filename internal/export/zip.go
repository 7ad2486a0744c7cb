// Package export packs a workspace tree into a downloadable archive.
package export

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"vincode/internal/workspace"
)

// ArchiveName is the file name offered for downloads.
const ArchiveName = "vin-code-project.zip"

// WriteZip writes tree to w as a zip archive. Folders become directory
// entries, so empty folders survive the round trip; files keep their text
// content and modification time.
func WriteZip(w io.Writer, tree workspace.Tree) error {
	zw := zip.NewWriter(w)
	if err := addNodes(zw, tree, ""); err != nil {
		_ = zw.Close()
		return err
	}
	return zw.Close()
}

func addNodes(zw *zip.Writer, nodes workspace.Tree, prefix string) error {
	for _, n := range nodes {
		name := prefix + n.Name
		hdr := &zip.FileHeader{Name: name, Method: zip.Deflate, Modified: stamp(n.ModifiedAt)}
		if n.IsFolder() {
			hdr.Name += "/"
			hdr.Method = zip.Store
			if _, err := zw.CreateHeader(hdr); err != nil {
				return fmt.Errorf("zip %s: %w", hdr.Name, err)
			}
			if err := addNodes(zw, n.Children, hdr.Name); err != nil {
				return err
			}
			continue
		}
		fw, err := zw.CreateHeader(hdr)
		if err != nil {
			return fmt.Errorf("zip %s: %w", name, err)
		}
		if _, err := io.WriteString(fw, n.Content); err != nil {
			return fmt.Errorf("zip %s: %w", name, err)
		}
	}
	return nil
}

func stamp(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}

// WriteZipFile writes the archive to path, creating parent directories.
func WriteZipFile(path string, tree workspace.Tree) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteZip(f, tree); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
