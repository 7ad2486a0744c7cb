// Package dropzone turns a local directory into an upload tray: text files
// dropped there are copied into the workspace, one store command per file.
package dropzone

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	clog "github.com/charmbracelet/log"
	fsnotify "github.com/fsnotify/fsnotify"

	"vincode/internal/system"
	"vincode/internal/workspace"
)

// MaxFileSize caps what a single drop may upload.
const MaxFileSize = 1 << 20

// ErrSkipped marks files the drop zone ignores: directories, hidden or
// temporary files, oversized or binary content.
var ErrSkipped = errors.New("dropzone: skipped")

// Watcher mirrors files from Dir into the workspace folder at Target.
type Watcher struct {
	Dir string
	// Target is a workspace path ("project/assets"); "" or an unresolvable
	// path uploads to the workspace root.
	Target string
	Store  *workspace.Store
	Logger *clog.Logger
	// Debounce coalesces bursts of write events for the same file.
	Debounce time.Duration
}

func New(dir, target string, store *workspace.Store) *Watcher {
	return &Watcher{
		Dir:      dir,
		Target:   target,
		Store:    store,
		Logger:   system.Logger,
		Debounce: 120 * time.Millisecond,
	}
}

// Sync ingests every file already sitting in Dir. It returns the number of
// files uploaded or updated.
func (w *Watcher) Sync() (int, error) {
	entries, err := os.ReadDir(w.Dir)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, e := range entries {
		if _, err := w.Ingest(filepath.Join(w.Dir, e.Name())); err == nil {
			n++
		} else if !errors.Is(err, ErrSkipped) {
			w.Logger.Warn("dropzone ingest failed", "file", e.Name(), "err", err)
		}
	}
	return n, nil
}

// Ingest copies one file into the workspace. A file of the same name in
// the target folder gets its content replaced; otherwise the file is
// uploaded in a single create-with-content step. It returns the node id.
func (w *Watcher) Ingest(path string) (string, error) {
	name := filepath.Base(path)
	if strings.HasPrefix(name, ".") || strings.HasSuffix(name, "~") {
		return "", ErrSkipped
	}
	fi, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if !fi.Mode().IsRegular() || fi.Size() > MaxFileSize {
		return "", ErrSkipped
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", ErrSkipped
	}

	parentID := w.parentID()
	siblings, err := workspace.Siblings(w.Store.Snapshot().Tree, parentID)
	if err != nil {
		return "", err
	}
	for _, n := range siblings {
		if n.Name != name {
			continue
		}
		if !n.IsFile() {
			return "", fmt.Errorf("%s: %w", name, workspace.ErrNotFile)
		}
		if n.Content == string(b) {
			return n.ID, nil
		}
		return n.ID, w.Store.UpdateFileContent(n.ID, string(b))
	}
	return w.Store.UploadFile(name, string(b), parentID)
}

func (w *Watcher) parentID() string {
	n, ok := workspace.Resolve(w.Store.Snapshot().Tree, w.Target)
	if !ok || n == nil || !n.IsFolder() {
		return ""
	}
	return n.ID
}

// Run syncs Dir and then watches it until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()
	if err := fw.Add(w.Dir); err != nil {
		return err
	}
	if n, err := w.Sync(); err != nil {
		return err
	} else if n > 0 {
		w.Logger.Info("dropzone synced", "dir", w.Dir, "files", n)
	}

	pending := map[string]bool{}
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			pending[ev.Name] = true
			timer.Reset(w.Debounce)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.Logger.Warn("dropzone watch error", "err", err)
		case <-timer.C:
			for p := range pending {
				id, err := w.Ingest(p)
				switch {
				case err == nil:
					w.Logger.Info("dropzone uploaded", "file", filepath.Base(p), "id", id)
				case !errors.Is(err, ErrSkipped):
					w.Logger.Warn("dropzone ingest failed", "file", filepath.Base(p), "err", err)
				}
			}
			pending = map[string]bool{}
		}
	}
}
