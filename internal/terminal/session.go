// Package terminal is the playground's pretend shell. It never runs
// processes; commands read the workspace snapshot or print canned output.
package terminal

import (
	"sort"
	"strings"
	"sync"
	"time"

	"vincode/internal/workspace"
)

// Welcome is the banner a fresh session starts with.
var Welcome = []string{
	"Welcome to Vin Code Terminal! 🚀",
	"Type your commands below...",
	"",
}

// Prompt prefixes echoed command lines.
const Prompt = "$ "

// WorkingDir is what pwd reports.
const WorkingDir = "/project"

var helpText = []string{
	"Available commands:",
	"  clear    - Clear terminal",
	"  help     - Show this help",
	"  echo     - Print text",
	"  date     - Show current date/time",
	"  pwd      - Show current directory",
	"  ls       - List files (ls [path])",
	"  cat      - Print a file (cat <path>)",
	"",
}

// Result is what one Execute call produced. Clear means the output buffer
// was wiped before Lines were appended.
type Result struct {
	Lines []string `json:"lines"`
	Clear bool     `json:"clear,omitempty"`
}

// Session holds the scrollback and command history of one terminal.
type Session struct {
	mu      sync.Mutex
	output  []string
	history []string
	index   int

	snapshot func() workspace.State
	now      func() time.Time
}

// New starts a session. snapshot may be nil, in which case ls and cat see
// an empty workspace.
func New(snapshot func() workspace.State) *Session {
	return &Session{
		output:   append([]string(nil), Welcome...),
		index:    -1,
		snapshot: snapshot,
		now:      time.Now,
	}
}

// Output returns a copy of the scrollback.
func (s *Session) Output() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.output...)
}

// History returns the executed commands, oldest first.
func (s *Session) History() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.history...)
}

// Execute runs one input line. Blank input does nothing.
func (s *Session) Execute(line string) Result {
	cmd := strings.TrimSpace(line)
	if cmd == "" {
		return Result{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history, cmd)
	s.index = -1

	parts := strings.Split(cmd, " ")
	name := strings.ToLower(parts[0])
	args := parts[1:]

	var res Result
	switch name {
	case "clear":
		s.output = nil
		return Result{Clear: true}
	case "help":
		res.Lines = helpText
	case "echo":
		res.Lines = []string{strings.Join(args, " "), ""}
	case "date":
		res.Lines = []string{s.now().Format(time.RFC1123), ""}
	case "pwd":
		res.Lines = []string{WorkingDir, ""}
	case "ls":
		res.Lines = s.ls(firstArg(args))
	case "cat":
		res.Lines = s.cat(firstArg(args))
	default:
		res.Lines = []string{
			"Command not found: " + name,
			"Type 'help' for available commands",
			"",
		}
	}
	res.Lines = append([]string{Prompt + cmd}, res.Lines...)
	s.output = append(s.output, res.Lines...)
	return res
}

func firstArg(args []string) string {
	for _, a := range args {
		if a != "" {
			return a
		}
	}
	return ""
}

func (s *Session) tree() workspace.Tree {
	if s.snapshot == nil {
		return nil
	}
	return s.snapshot().Tree
}

func (s *Session) ls(p string) []string {
	n, ok := workspace.Resolve(s.tree(), p)
	if !ok {
		return []string{"ls: " + p + ": No such file or directory", ""}
	}
	nodes := s.tree()
	if n != nil {
		if n.IsFile() {
			return []string{n.Name, ""}
		}
		nodes = n.Children
	}
	names := make([]string, 0, len(nodes))
	for _, c := range nodes {
		if c.IsFolder() {
			names = append(names, c.Name+"/")
		} else {
			names = append(names, c.Name)
		}
	}
	sort.Strings(names)
	return append(names, "")
}

func (s *Session) cat(p string) []string {
	if p == "" {
		return []string{"cat: missing file operand", ""}
	}
	n, ok := workspace.Resolve(s.tree(), p)
	switch {
	case !ok || n == nil:
		return []string{"cat: " + p + ": No such file or directory", ""}
	case n.IsFolder():
		return []string{"cat: " + p + ": Is a directory", ""}
	}
	return append(strings.Split(n.Content, "\n"), "")
}

// HistoryPrev moves one step back in history and returns the entry to put
// in the input line. ok is false when there is no history.
func (s *Session) HistoryPrev() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.history) == 0 {
		return "", false
	}
	if s.index == -1 {
		s.index = len(s.history) - 1
	} else if s.index > 0 {
		s.index--
	}
	return s.history[s.index], true
}

// HistoryNext moves forward. Stepping past the newest entry leaves history
// navigation and returns an empty input. ok is false when not navigating.
func (s *Session) HistoryNext() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index == -1 {
		return "", false
	}
	s.index++
	if s.index >= len(s.history) {
		s.index = -1
		return "", true
	}
	return s.history[s.index], true
}
