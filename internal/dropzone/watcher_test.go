package dropzone

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"vincode/internal/testutil"
	"vincode/internal/workspace"
)

func TestIngest_UploadsThenUpdates(t *testing.T) {
	dir := t.TempDir()
	store := workspace.New()
	w := New(dir, "project", store)

	testutil.WriteFiles(t, dir, map[string]string{"data.json": `{"a":1}`})
	id, err := w.Ingest(filepath.Join(dir, "data.json"))
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	n := store.FileByID(id)
	if n == nil || n.ParentID != store.Snapshot().Tree[0].ID || n.Language != "json" || n.IsModified {
		t.Fatalf("unexpected node: %+v", n)
	}

	testutil.WriteFiles(t, dir, map[string]string{"data.json": `{"a":2}`})
	again, err := w.Ingest(filepath.Join(dir, "data.json"))
	if err != nil || again != id {
		t.Fatalf("second ingest: %v %s", err, again)
	}
	if n := store.FileByID(id); n.Content != `{"a":2}` || !n.IsModified {
		t.Fatalf("content not updated: %+v", n)
	}
}

func TestIngest_Skips(t *testing.T) {
	dir := t.TempDir()
	w := New(dir, "", workspace.New())
	testutil.WriteFiles(t, dir, map[string]string{
		".hidden":   "x",
		"notes.md~": "x",
		"bin.dat":   string([]byte{0xff, 0xfe, 0x00}),
	})
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{".hidden", "notes.md~", "bin.dat", "sub"} {
		if _, err := w.Ingest(filepath.Join(dir, name)); !errors.Is(err, ErrSkipped) {
			t.Fatalf("%s: expected ErrSkipped, got %v", name, err)
		}
	}
}

func TestSync_UnknownTargetUsesRoot(t *testing.T) {
	dir := t.TempDir()
	store := workspace.New()
	w := New(dir, "missing/folder", store)
	testutil.WriteFiles(t, dir, map[string]string{"a.txt": "a", "b.css": "p{}", ".skip": ""})

	n, err := w.Sync()
	if err != nil || n != 2 {
		t.Fatalf("Sync = %d, %v", n, err)
	}
	if len(store.Snapshot().Tree) != 3 {
		t.Fatalf("expected uploads at the root: %+v", store.Snapshot().Tree)
	}
}

func TestIngest_FolderNameClash(t *testing.T) {
	dir := t.TempDir()
	store := workspace.New()
	w := New(dir, "", store)
	testutil.WriteFiles(t, dir, map[string]string{"project": "x"})
	if _, err := w.Ingest(filepath.Join(dir, "project")); !errors.Is(err, workspace.ErrNotFile) {
		t.Fatalf("expected ErrNotFile, got %v", err)
	}
}

func TestRun_PicksUpNewFiles(t *testing.T) {
	dir := t.TempDir()
	store := workspace.New()
	w := New(dir, "", store)
	w.Debounce = 10 * time.Millisecond

	events, cancelSub := store.Subscribe()
	defer cancelSub()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// give the watcher a moment to register the directory
	time.Sleep(100 * time.Millisecond)
	testutil.WriteFiles(t, dir, map[string]string{"drop.js": "console.log(1)"})

	select {
	case ev := <-events:
		if ev.Command != "uploadFile" {
			t.Fatalf("unexpected event %+v", ev)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for upload")
	}
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Run: %v", err)
	}
}
