package workspace

import "github.com/google/uuid"

// NewID returns a fresh opaque node id.
func NewID() string { return uuid.NewString() }

// defaultProject builds the starter project: one folder holding an
// HTML/CSS/JS/README quartet. It returns the tree, the folder id and the
// index.html id.
func defaultProject(newID func() string) (tree Tree, rootID, indexID string) {
	now := clock()
	rootID = newID()
	file := func(name, fileType string) *Node {
		return &Node{
			ID:         newID(),
			Name:       name,
			Kind:       KindFile,
			ParentID:   rootID,
			CreatedAt:  now,
			ModifiedAt: now,
			Content:    Template(fileType),
			Language:   LanguageFromName(name),
		}
	}
	index := file("index.html", "html")
	root := &Node{
		ID:         rootID,
		Name:       "project",
		Kind:       KindFolder,
		CreatedAt:  now,
		ModifiedAt: now,
		Children: []*Node{
			index,
			file("style.css", "css"),
			file("script.js", "javascript"),
			file("README.md", "markdown"),
		},
	}
	return Tree{root}, rootID, index.ID
}

// resetView points the view state at a freshly built default project.
func resetView(st *State, newID func() string) {
	tree, rootID, indexID := defaultProject(newID)
	st.Tree = tree
	st.OpenFiles = []string{indexID}
	st.ActiveFileID = indexID
	st.ExpandedFolders = map[string]bool{rootID: true}
	st.MainHTMLFileID = indexID
}
