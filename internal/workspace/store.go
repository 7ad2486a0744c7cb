package workspace

import (
	"fmt"
	"sort"
	"sync"

	clog "github.com/charmbracelet/log"

	"vincode/internal/system"
)

// State is an immutable snapshot of the workspace. Slices and maps inside a
// published State are never written again; commands build replacements.
type State struct {
	Version         uint64          `json:"version"`
	Tree            Tree            `json:"fileTree"`
	OpenFiles       []string        `json:"openFiles"`
	ActiveFileID    string          `json:"activeFileId"`
	ExpandedFolders map[string]bool `json:"expandedFolders"`
	SearchQuery     string          `json:"searchQuery"`
	MainHTMLFileID  string          `json:"mainHtmlFileId"`
	Settings        Settings        `json:"settings"`
}

// IsOpen reports whether id is in the open-tab list.
func (s State) IsOpen(id string) bool { return indexOf(s.OpenFiles, id) >= 0 }

// IsExpanded reports whether the folder id is expanded in the sidebar.
func (s State) IsExpanded(id string) bool { return s.ExpandedFolders[id] }

// Expanded returns the expanded folder ids, sorted.
func (s State) Expanded() []string {
	out := make([]string, 0, len(s.ExpandedFolders))
	for id := range s.ExpandedFolders {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Event tells subscribers that a command produced a new snapshot.
type Event struct {
	Command string `json:"command"`
	Version uint64 `json:"version"`
}

// Store is the single writer of workspace state. Every command runs under
// one write lock and publishes a fresh State; readers work on snapshots.
type Store struct {
	mu    sync.RWMutex
	state State

	newID    func() string
	logger   *clog.Logger
	observer func(command string, err error)

	subMu sync.RWMutex
	subs  map[chan Event]struct{}
}

type Option func(*Store)

// WithIDGenerator replaces the uuid based id source.
func WithIDGenerator(fn func() string) Option { return func(s *Store) { s.newID = fn } }

func WithLogger(l *clog.Logger) Option { return func(s *Store) { s.logger = l } }

// WithObserver registers a hook called after every command with its result.
func WithObserver(fn func(command string, err error)) Option {
	return func(s *Store) { s.observer = fn }
}

// WithSettings seeds the editor presets. Zoom is clamped.
func WithSettings(st Settings) Option {
	return func(s *Store) { s.state.Settings = st.WithZoom(st.ZoomLevel) }
}

// New returns a store holding the default project.
func New(opts ...Option) *Store {
	s := &Store{
		newID:  NewID,
		logger: system.Logger,
		subs:   map[chan Event]struct{}{},
		state:  State{Settings: DefaultSettings()},
	}
	for _, o := range opts {
		o(s)
	}
	resetView(&s.state, s.newID)
	return s
}

// Snapshot returns the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe returns a channel of command events and a cancel func. Events
// are dropped for subscribers that fall behind.
func (s *Store) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 32)
	s.subMu.Lock()
	s.subs[ch] = struct{}{}
	s.subMu.Unlock()
	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, ch)
			close(ch)
			s.subMu.Unlock()
		})
	}
}

func (s *Store) publish(ev Event) {
	s.subMu.RLock()
	defer s.subMu.RUnlock()
	for ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// apply runs fn on a copy of the current state and publishes it when fn
// succeeds. A failing fn leaves the store untouched.
func (s *Store) apply(command string, fn func(st *State) error) error {
	s.mu.Lock()
	next := s.state
	err := fn(&next)
	if err == nil {
		next.Version = s.state.Version + 1
		s.state = next
	}
	version := s.state.Version
	if err == nil {
		// under the write lock so subscribers see versions in order
		s.publish(Event{Command: command, Version: version})
	}
	s.mu.Unlock()

	if s.observer != nil {
		s.observer(command, err)
	}
	if err != nil {
		s.logger.Debug("workspace command rejected", "cmd", command, "err", err)
		return err
	}
	s.logger.Debug("workspace command", "cmd", command, "version", version)
	return nil
}

// freshID draws ids until one is unused in tree.
func (s *Store) freshID(tree Tree) string {
	for {
		id := s.newID()
		if id != "" && Find(tree, id) == nil {
			return id
		}
	}
}

func checkUnique(siblings Tree, name, parentID, exceptID string) error {
	for _, n := range siblings {
		if n.ID != exceptID && n.Name == name {
			return &DuplicateNameError{Name: name, ParentID: parentID}
		}
	}
	return nil
}

func lookupFile(tree Tree, id string) (*Node, error) {
	n := Find(tree, id)
	if n == nil {
		return nil, fmt.Errorf("file %s: %w", id, ErrNotFound)
	}
	if !n.IsFile() {
		return nil, fmt.Errorf("node %s: %w", id, ErrNotFile)
	}
	return n, nil
}

// CreateFile adds a file seeded with the template of fileType and returns
// its id. parentID "" creates it at the root.
func (s *Store) CreateFile(name, fileType, parentID string) (string, error) {
	return s.createFile("createFile", name, Template(fileType), false, parentID)
}

// UploadFile adds a file with the given content in one step, so the new
// node is never observable without its content.
func (s *Store) UploadFile(name, content, parentID string) (string, error) {
	return s.createFile("uploadFile", name, content, false, parentID)
}

func (s *Store) createFile(command, name, content string, modified bool, parentID string) (string, error) {
	var id string
	err := s.apply(command, func(st *State) error {
		clean, err := cleanName(name)
		if err != nil {
			return err
		}
		siblings, err := Siblings(st.Tree, parentID)
		if err != nil {
			return err
		}
		if err := checkUnique(siblings, clean, parentID, ""); err != nil {
			return err
		}
		now := clock()
		n := &Node{
			ID:         s.freshID(st.Tree),
			Name:       clean,
			Kind:       KindFile,
			ParentID:   parentID,
			CreatedAt:  now,
			ModifiedAt: now,
			Content:    content,
			Language:   LanguageFromName(clean),
			IsModified: modified,
		}
		tree, err := Insert(st.Tree, n, parentID)
		if err != nil {
			return err
		}
		st.Tree = tree
		id = n.ID
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// CreateFolder adds an empty, expanded folder and returns its id.
func (s *Store) CreateFolder(name, parentID string) (string, error) {
	var id string
	err := s.apply("createFolder", func(st *State) error {
		clean, err := cleanName(name)
		if err != nil {
			return err
		}
		siblings, err := Siblings(st.Tree, parentID)
		if err != nil {
			return err
		}
		if err := checkUnique(siblings, clean, parentID, ""); err != nil {
			return err
		}
		now := clock()
		n := &Node{
			ID:         s.freshID(st.Tree),
			Name:       clean,
			Kind:       KindFolder,
			ParentID:   parentID,
			CreatedAt:  now,
			ModifiedAt: now,
		}
		tree, err := Insert(st.Tree, n, parentID)
		if err != nil {
			return err
		}
		st.Tree = tree
		st.ExpandedFolders = withKey(st.ExpandedFolders, n.ID, true)
		id = n.ID
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// DeleteNode removes id and its subtree, then drops every view reference
// into the removed subtree: open tabs, the active file, the main HTML
// pointer and expanded folders.
func (s *Store) DeleteNode(id string) error {
	return s.apply("deleteNode", func(st *State) error {
		n := Find(st.Tree, id)
		if n == nil {
			return fmt.Errorf("node %s: %w", id, ErrNotFound)
		}
		gone := map[string]bool{}
		for _, x := range SubtreeIDs(n) {
			gone[x] = true
		}
		st.Tree = Remove(st.Tree, id)

		open := make([]string, 0, len(st.OpenFiles))
		for _, f := range st.OpenFiles {
			if !gone[f] {
				open = append(open, f)
			}
		}
		st.OpenFiles = open
		if gone[st.ActiveFileID] {
			st.ActiveFileID = lastOrEmpty(open)
		}
		if gone[st.MainHTMLFileID] {
			st.MainHTMLFileID = ""
		}
		expanded := make(map[string]bool, len(st.ExpandedFolders))
		for f, v := range st.ExpandedFolders {
			if !gone[f] {
				expanded[f] = v
			}
		}
		st.ExpandedFolders = expanded
		return nil
	})
}

// RenameNode renames id; files get their language recomputed.
func (s *Store) RenameNode(id, newName string) error {
	return s.apply("renameNode", func(st *State) error {
		n := Find(st.Tree, id)
		if n == nil {
			return fmt.Errorf("node %s: %w", id, ErrNotFound)
		}
		clean, err := cleanName(newName)
		if err != nil {
			return err
		}
		siblings, err := Siblings(st.Tree, n.ParentID)
		if err != nil {
			return err
		}
		if err := checkUnique(siblings, clean, n.ParentID, id); err != nil {
			return err
		}
		p := Patch{Name: &clean}
		if n.IsFile() {
			lang := LanguageFromName(clean)
			p.Language = &lang
		}
		st.Tree = Update(st.Tree, id, p)
		return nil
	})
}

// MoveNode detaches id with its subtree and appends it under newParentID
// ("" for the root). Moving a folder into itself or a descendant fails with
// a *CyclicMoveError.
func (s *Store) MoveNode(id, newParentID string) error {
	return s.apply("moveNode", func(st *State) error {
		n := Find(st.Tree, id)
		if n == nil {
			return fmt.Errorf("node %s: %w", id, ErrNotFound)
		}
		if newParentID == id || IsDescendant(n, newParentID) {
			return &CyclicMoveError{NodeID: id, TargetID: newParentID}
		}
		siblings, err := Siblings(st.Tree, newParentID)
		if err != nil {
			return err
		}
		if err := checkUnique(siblings, n.Name, newParentID, id); err != nil {
			return err
		}
		moved := *n
		moved.ModifiedAt = clock()
		tree, err := Insert(Remove(st.Tree, id), &moved, newParentID)
		if err != nil {
			return err
		}
		st.Tree = tree
		return nil
	})
}

// DuplicateFile clones a file next to the original under "<base>-copy<ext>"
// (then "-copy-2", "-copy-3", ... if taken) and returns the clone's id.
func (s *Store) DuplicateFile(id string) (string, error) {
	var newID string
	err := s.apply("duplicateFile", func(st *State) error {
		n, err := lookupFile(st.Tree, id)
		if err != nil {
			return err
		}
		siblings, err := Siblings(st.Tree, n.ParentID)
		if err != nil {
			return err
		}
		now := clock()
		clone := &Node{
			ID:         s.freshID(st.Tree),
			Name:       copyName(siblings, n.Name),
			Kind:       KindFile,
			ParentID:   n.ParentID,
			CreatedAt:  now,
			ModifiedAt: now,
			Content:    n.Content,
		}
		clone.Language = LanguageFromName(clone.Name)
		tree, err := Insert(st.Tree, clone, n.ParentID)
		if err != nil {
			return err
		}
		st.Tree = tree
		newID = clone.ID
		return nil
	})
	if err != nil {
		return "", err
	}
	return newID, nil
}

func copyName(siblings Tree, name string) string {
	base, ext := splitExt(name)
	taken := func(candidate string) bool {
		for _, n := range siblings {
			if n.Name == candidate {
				return true
			}
		}
		return false
	}
	candidate := base + "-copy" + ext
	for i := 2; taken(candidate); i++ {
		candidate = fmt.Sprintf("%s-copy-%d%s", base, i, ext)
	}
	return candidate
}

// UpdateFileContent replaces a file's text and marks it modified.
func (s *Store) UpdateFileContent(id, content string) error {
	return s.apply("updateFileContent", func(st *State) error {
		if _, err := lookupFile(st.Tree, id); err != nil {
			return err
		}
		modified := true
		st.Tree = Update(st.Tree, id, Patch{Content: &content, IsModified: &modified})
		return nil
	})
}

// OpenFile adds id to the open tabs (once) and makes it active.
func (s *Store) OpenFile(id string) error {
	return s.apply("openFile", func(st *State) error {
		if _, err := lookupFile(st.Tree, id); err != nil {
			return err
		}
		if indexOf(st.OpenFiles, id) < 0 {
			st.OpenFiles = appendCopy(st.OpenFiles, id)
		}
		st.ActiveFileID = id
		return nil
	})
}

// CloseFile removes id from the open tabs. Closing the active tab activates
// the most recently opened remaining tab, or nothing.
func (s *Store) CloseFile(id string) error {
	return s.apply("closeFile", func(st *State) error {
		i := indexOf(st.OpenFiles, id)
		if i < 0 {
			return fmt.Errorf("file %s: %w", id, ErrNotOpen)
		}
		open := make([]string, 0, len(st.OpenFiles)-1)
		open = append(open, st.OpenFiles[:i]...)
		open = append(open, st.OpenFiles[i+1:]...)
		st.OpenFiles = open
		if st.ActiveFileID == id {
			st.ActiveFileID = lastOrEmpty(open)
		}
		return nil
	})
}

// SetActiveFile switches to an already open tab.
func (s *Store) SetActiveFile(id string) error {
	return s.apply("setActiveFile", func(st *State) error {
		if indexOf(st.OpenFiles, id) < 0 {
			return fmt.Errorf("file %s: %w", id, ErrNotOpen)
		}
		st.ActiveFileID = id
		return nil
	})
}

// ToggleFolder flips the expanded state of a folder.
func (s *Store) ToggleFolder(id string) error {
	return s.apply("toggleFolder", func(st *State) error {
		n := Find(st.Tree, id)
		if n == nil {
			return fmt.Errorf("folder %s: %w", id, ErrNotFound)
		}
		if !n.IsFolder() {
			return fmt.Errorf("node %s: %w", id, ErrNotFolder)
		}
		st.ExpandedFolders = withKey(st.ExpandedFolders, id, !st.ExpandedFolders[id])
		return nil
	})
}

// SetMainHTMLFile selects the document the preview is assembled around.
func (s *Store) SetMainHTMLFile(id string) error {
	return s.apply("setMainHtmlFile", func(st *State) error {
		n, err := lookupFile(st.Tree, id)
		if err != nil {
			return err
		}
		if n.Language != "html" {
			return fmt.Errorf("file %s: %w", n.Name, ErrNotHTML)
		}
		st.MainHTMLFileID = id
		return nil
	})
}

func (s *Store) SetSearchQuery(q string) {
	_ = s.apply("setSearchQuery", func(st *State) error {
		st.SearchQuery = q
		return nil
	})
}

// ResetFiles restores the default project and its view state. Settings and
// the search query are kept.
func (s *Store) ResetFiles() {
	_ = s.apply("resetFiles", func(st *State) error {
		resetView(st, s.newID)
		return nil
	})
}

// FileByID looks a node up in the current tree. The result is a copy;
// writing to it does not touch the store.
func (s *Store) FileByID(id string) *Node {
	return detach(Find(s.Snapshot().Tree, id))
}

// detach deep-copies a published node.
func detach(n *Node) *Node {
	if n == nil {
		return nil
	}
	return Clone(Tree{n})[0]
}

// FilteredTree is the sidebar view of the tree under the stored query.
func (s *Store) FilteredTree() Tree {
	st := s.Snapshot()
	return Filter(st.Tree, st.SearchQuery)
}

// OpenFileNodes resolves the open tabs to copies of their nodes, in tab
// order.
func (s *Store) OpenFileNodes() []*Node {
	st := s.Snapshot()
	out := make([]*Node, 0, len(st.OpenFiles))
	for _, id := range st.OpenFiles {
		if n := Find(st.Tree, id); n != nil {
			out = append(out, detach(n))
		}
	}
	return out
}

// ActiveFile returns the active file node, or nil.
func (s *Store) ActiveFile() *Node {
	st := s.Snapshot()
	if st.ActiveFileID == "" {
		return nil
	}
	return detach(Find(st.Tree, st.ActiveFileID))
}

// QuickOpen fuzzy-searches file paths of the current tree.
func (s *Store) QuickOpen(query string, limit int) []Match {
	return QuickOpen(s.Snapshot().Tree, query, limit)
}

func indexOf(list []string, id string) int {
	for i, v := range list {
		if v == id {
			return i
		}
	}
	return -1
}

func appendCopy(list []string, id string) []string {
	out := make([]string, len(list), len(list)+1)
	copy(out, list)
	return append(out, id)
}

func lastOrEmpty(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[len(list)-1]
}

func withKey(m map[string]bool, key string, on bool) map[string]bool {
	out := make(map[string]bool, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	if on {
		out[key] = true
	} else {
		delete(out, key)
	}
	return out
}
