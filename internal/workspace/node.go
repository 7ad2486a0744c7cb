// Package workspace holds the in-memory file tree of a playground project and
// the view state that hangs off it (open tabs, active file, expanded folders,
// search filter, main HTML document, editor presets).
//
// Trees are persistent values: a published *Node is never mutated again, so
// any snapshot handed to a view stays valid while newer snapshots are built.
package workspace

import "time"

// Kind tags a Node as a file or a folder.
type Kind string

const (
	KindFile   Kind = "file"
	KindFolder Kind = "folder"
)

// Node is a File or Folder entry of the workspace tree.
type Node struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Kind       Kind      `json:"type" jsonschema:"enum=file,enum=folder"`
	ParentID   string    `json:"parentId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	ModifiedAt time.Time `json:"modifiedAt"`

	// file only
	Content    string `json:"content,omitempty"`
	Language   string `json:"language,omitempty"`
	IsModified bool   `json:"isModified,omitempty"`

	// folder only; insertion order is display order
	Children []*Node `json:"children,omitempty"`
}

func (n *Node) IsFile() bool   { return n != nil && n.Kind == KindFile }
func (n *Node) IsFolder() bool { return n != nil && n.Kind == KindFolder }

// Tree is the ordered root sequence of the workspace.
type Tree []*Node
