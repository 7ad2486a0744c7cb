package workspace

import (
	"fmt"
	"strings"
	"time"
)

// clock stamps CreatedAt/ModifiedAt; tests pin it.
var clock = time.Now

// Patch names the fields Update merges into a node. Nil fields are left
// untouched.
type Patch struct {
	Name       *string
	Content    *string
	Language   *string
	IsModified *bool
}

func (p Patch) apply(n *Node) {
	if p.Name != nil {
		n.Name = *p.Name
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.Language != nil {
		n.Language = *p.Language
	}
	if p.IsModified != nil {
		n.IsModified = *p.IsModified
	}
}

// Find returns the first node with id in depth-first order, or nil.
func Find(tree Tree, id string) *Node {
	for _, n := range tree {
		if n.ID == id {
			return n
		}
		if found := Find(n.Children, id); found != nil {
			return found
		}
	}
	return nil
}

// Insert appends node to the root sequence (parentID == "") or to the
// children of the folder parentID. The node's ParentID is set to match.
func Insert(tree Tree, node *Node, parentID string) (Tree, error) {
	if node.ParentID != parentID {
		cp := *node
		cp.ParentID = parentID
		node = &cp
	}
	if parentID == "" {
		out := make(Tree, len(tree), len(tree)+1)
		copy(out, tree)
		return append(out, node), nil
	}
	out, found, err := insert(tree, node, parentID)
	if !found {
		return tree, fmt.Errorf("parent %s: %w", parentID, ErrNotFound)
	}
	if err != nil {
		return tree, err
	}
	return out, nil
}

func insert(nodes Tree, node *Node, parentID string) (Tree, bool, error) {
	for i, n := range nodes {
		if n.ID == parentID {
			if !n.IsFolder() {
				return nodes, true, fmt.Errorf("parent %s: %w", parentID, ErrNotFolder)
			}
			cp := *n
			kids := make(Tree, len(n.Children), len(n.Children)+1)
			copy(kids, n.Children)
			cp.Children = append(kids, node)
			return replaceAt(nodes, i, &cp), true, nil
		}
		if len(n.Children) == 0 {
			continue
		}
		kids, found, err := insert(n.Children, node, parentID)
		if !found {
			continue
		}
		if err != nil {
			return nodes, true, err
		}
		cp := *n
		cp.Children = kids
		return replaceAt(nodes, i, &cp), true, nil
	}
	return nodes, false, nil
}

// Remove drops the node with id together with its whole subtree.
func Remove(tree Tree, id string) Tree {
	out, _ := remove(tree, id)
	return out
}

func remove(nodes Tree, id string) (Tree, bool) {
	for i, n := range nodes {
		if n.ID == id {
			out := make(Tree, 0, len(nodes)-1)
			out = append(out, nodes[:i]...)
			return append(out, nodes[i+1:]...), true
		}
		if len(n.Children) == 0 {
			continue
		}
		if kids, ok := remove(n.Children, id); ok {
			cp := *n
			cp.Children = kids
			return replaceAt(nodes, i, &cp), true
		}
	}
	return nodes, false
}

// Update merges p into the node with id and stamps ModifiedAt. Only the
// path from the root to that node is copied.
func Update(tree Tree, id string, p Patch) Tree {
	out, _ := update(tree, id, p)
	return out
}

func update(nodes Tree, id string, p Patch) (Tree, bool) {
	for i, n := range nodes {
		if n.ID == id {
			cp := *n
			p.apply(&cp)
			cp.ModifiedAt = clock()
			return replaceAt(nodes, i, &cp), true
		}
		if len(n.Children) == 0 {
			continue
		}
		if kids, ok := update(n.Children, id, p); ok {
			cp := *n
			cp.Children = kids
			return replaceAt(nodes, i, &cp), true
		}
	}
	return nodes, false
}

func replaceAt(nodes Tree, i int, n *Node) Tree {
	out := make(Tree, len(nodes))
	copy(out, nodes)
	out[i] = n
	return out
}

// Walk visits every node depth-first in display order. Returning false from
// fn skips the node's children.
func Walk(tree Tree, fn func(n *Node, depth int) bool) {
	walk(tree, 0, fn)
}

func walk(nodes Tree, depth int, fn func(*Node, int) bool) {
	for _, n := range nodes {
		if fn(n, depth) && len(n.Children) > 0 {
			walk(n.Children, depth+1, fn)
		}
	}
}

// Files returns every file node in project order.
func Files(tree Tree) []*Node {
	var out []*Node
	Walk(tree, func(n *Node, _ int) bool {
		if n.IsFile() {
			out = append(out, n)
		}
		return true
	})
	return out
}

// SubtreeIDs returns n's id followed by the ids of all its descendants.
func SubtreeIDs(n *Node) []string {
	if n == nil {
		return nil
	}
	out := []string{n.ID}
	Walk(n.Children, func(c *Node, _ int) bool {
		out = append(out, c.ID)
		return true
	})
	return out
}

// IsDescendant reports whether id lies strictly below ancestor.
func IsDescendant(ancestor *Node, id string) bool {
	if ancestor == nil {
		return false
	}
	return Find(ancestor.Children, id) != nil
}

// Siblings returns the sequence a node with parentID would live in.
func Siblings(tree Tree, parentID string) (Tree, error) {
	if parentID == "" {
		return tree, nil
	}
	p := Find(tree, parentID)
	if p == nil {
		return nil, fmt.Errorf("parent %s: %w", parentID, ErrNotFound)
	}
	if !p.IsFolder() {
		return nil, fmt.Errorf("parent %s: %w", parentID, ErrNotFolder)
	}
	return p.Children, nil
}

// PathOf returns the slash separated path of id from the root, or "".
func PathOf(tree Tree, id string) string {
	var parts []string
	var find func(nodes Tree) bool
	find = func(nodes Tree) bool {
		for _, n := range nodes {
			parts = append(parts, n.Name)
			if n.ID == id || find(n.Children) {
				return true
			}
			parts = parts[:len(parts)-1]
		}
		return false
	}
	if !find(tree) {
		return ""
	}
	return strings.Join(parts, "/")
}

// Count returns the number of nodes in the tree.
func Count(tree Tree) int {
	n := 0
	Walk(tree, func(*Node, int) bool { n++; return true })
	return n
}

// Ancestors returns the folders from the root down to id's parent.
func Ancestors(tree Tree, id string) []*Node {
	chain := []*Node{}
	var find func(nodes Tree) bool
	find = func(nodes Tree) bool {
		for _, n := range nodes {
			if n.ID == id {
				return true
			}
			chain = append(chain, n)
			if find(n.Children) {
				return true
			}
			chain = chain[:len(chain)-1]
		}
		return false
	}
	if !find(tree) {
		return nil
	}
	return chain
}

// Clone deep-copies tree so the caller may mutate the result.
func Clone(tree Tree) Tree {
	if tree == nil {
		return nil
	}
	out := make(Tree, len(tree))
	for i, n := range tree {
		cp := *n
		cp.Children = Clone(n.Children)
		out[i] = &cp
	}
	return out
}

// Resolve looks up a slash separated path ("project/src/app.js"). Leading
// and trailing slashes are ignored; "" and "/" resolve to nil with ok true,
// meaning the workspace root.
func Resolve(tree Tree, p string) (n *Node, ok bool) {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil, true
	}
	nodes := tree
	for _, part := range strings.Split(p, "/") {
		if part == "" || part == "." {
			continue
		}
		var next *Node
		for _, c := range nodes {
			if c.Name == part {
				next = c
				break
			}
		}
		if next == nil {
			return nil, false
		}
		n = next
		nodes = next.Children
	}
	return n, true
}
