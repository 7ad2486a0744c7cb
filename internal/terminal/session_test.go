package terminal

import (
	"strings"
	"testing"
	"time"

	"vincode/internal/workspace"
)

func TestSession_Welcome(t *testing.T) {
	s := New(nil)
	out := s.Output()
	if len(out) != 3 || !strings.HasPrefix(out[0], "Welcome to Vin Code Terminal!") {
		t.Fatalf("unexpected banner: %q", out)
	}
}

func TestSession_Builtins(t *testing.T) {
	s := New(nil)
	s.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	if res := s.Execute("   "); len(res.Lines) != 0 || len(s.History()) != 0 {
		t.Fatalf("blank input should do nothing")
	}
	res := s.Execute("echo  hello world")
	if res.Lines[0] != "$ echo  hello world" || res.Lines[1] != " hello world" {
		t.Fatalf("echo = %q", res.Lines)
	}
	if res := s.Execute("PWD"); res.Lines[1] != "/project" {
		t.Fatalf("pwd = %q", res.Lines)
	}
	if res := s.Execute("date"); res.Lines[1] != "Wed, 01 May 2024 12:00:00 UTC" {
		t.Fatalf("date = %q", res.Lines)
	}
	if res := s.Execute("help"); res.Lines[1] != "Available commands:" {
		t.Fatalf("help = %q", res.Lines)
	}
	res = s.Execute("rm -rf /")
	if res.Lines[1] != "Command not found: rm" || res.Lines[2] != "Type 'help' for available commands" {
		t.Fatalf("unknown = %q", res.Lines)
	}

	res = s.Execute("clear")
	if !res.Clear || len(s.Output()) != 0 {
		t.Fatalf("clear should wipe output, got %q", s.Output())
	}
	if len(s.History()) != 6 {
		t.Fatalf("history = %q", s.History())
	}
}

func TestSession_History(t *testing.T) {
	s := New(nil)
	if _, ok := s.HistoryPrev(); ok {
		t.Fatalf("empty history should not navigate")
	}
	s.Execute("echo a")
	s.Execute("echo b")
	s.Execute("echo c")

	if _, ok := s.HistoryNext(); ok {
		t.Fatalf("down without navigating should do nothing")
	}
	steps := []string{"echo c", "echo b", "echo a", "echo a"}
	for _, want := range steps {
		if got, _ := s.HistoryPrev(); got != want {
			t.Fatalf("prev = %q want %q", got, want)
		}
	}
	if got, _ := s.HistoryNext(); got != "echo b" {
		t.Fatalf("next = %q", got)
	}
	s.HistoryNext()
	if got, ok := s.HistoryNext(); !ok || got != "" {
		t.Fatalf("past the end should clear input, got %q %v", got, ok)
	}
	if _, ok := s.HistoryNext(); ok {
		t.Fatalf("navigation should have ended")
	}
}

func TestSession_LsAndCat(t *testing.T) {
	store := workspace.New()
	s := New(store.Snapshot)

	if res := s.Execute("ls"); res.Lines[1] != "project/" {
		t.Fatalf("ls = %q", res.Lines)
	}
	res := s.Execute("ls /project")
	if got := strings.Join(res.Lines[1:5], ","); got != "README.md,index.html,script.js,style.css" {
		t.Fatalf("ls project = %s", got)
	}
	if res := s.Execute("ls nope"); !strings.Contains(res.Lines[1], "No such file") {
		t.Fatalf("ls nope = %q", res.Lines)
	}

	id := store.Snapshot().Tree[0].Children[2].ID
	if err := store.UpdateFileContent(id, "line1\nline2"); err != nil {
		t.Fatalf("UpdateFileContent: %v", err)
	}
	res = s.Execute("cat project/script.js")
	if len(res.Lines) != 4 || res.Lines[1] != "line1" || res.Lines[2] != "line2" {
		t.Fatalf("cat = %q", res.Lines)
	}
	if res := s.Execute("cat project"); !strings.HasSuffix(res.Lines[1], "Is a directory") {
		t.Fatalf("cat dir = %q", res.Lines)
	}
	if res := s.Execute("cat"); res.Lines[1] != "cat: missing file operand" {
		t.Fatalf("cat = %q", res.Lines)
	}
}
