package workspace

import (
	"errors"
	"testing"
)

func sampleTree() Tree {
	return Tree{
		{ID: "root", Name: "project", Kind: KindFolder, Children: Tree{
			{ID: "idx", Name: "index.html", Kind: KindFile, ParentID: "root"},
			{ID: "src", Name: "src", Kind: KindFolder, ParentID: "root", Children: Tree{
				{ID: "app", Name: "app.js", Kind: KindFile, ParentID: "src"},
			}},
		}},
		{ID: "notes", Name: "notes.txt", Kind: KindFile},
	}
}

func TestFind(t *testing.T) {
	tree := sampleTree()
	if n := Find(tree, "app"); n == nil || n.Name != "app.js" {
		t.Fatalf("Find(app) = %+v", n)
	}
	if Find(tree, "nope") != nil {
		t.Fatalf("Find(nope) should be nil")
	}
}

func TestInsertIsPersistent(t *testing.T) {
	tree := sampleTree()
	out, err := Insert(tree, &Node{ID: "b", Name: "b.js", Kind: KindFile}, "src")
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if len(Find(tree, "src").Children) != 1 {
		t.Fatalf("input tree was mutated")
	}
	b := Find(out, "b")
	if b == nil || b.ParentID != "src" {
		t.Fatalf("inserted node = %+v", b)
	}
	if out[1] != tree[1] {
		t.Fatalf("untouched subtrees should be shared")
	}

	root, err := Insert(tree, &Node{ID: "c", Name: "c", Kind: KindFolder, ParentID: "x"}, "")
	if err != nil || len(root) != 3 || root[2].ParentID != "" {
		t.Fatalf("root insert: %v %+v", err, root)
	}

	if _, err := Insert(tree, &Node{ID: "d"}, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing parent: %v", err)
	}
	if _, err := Insert(tree, &Node{ID: "d"}, "app"); !errors.Is(err, ErrNotFolder) {
		t.Fatalf("file parent: %v", err)
	}
}

func TestRemove(t *testing.T) {
	tree := sampleTree()
	out := Remove(tree, "src")
	if Find(out, "src") != nil || Find(out, "app") != nil {
		t.Fatalf("subtree still present")
	}
	if Find(tree, "app") == nil {
		t.Fatalf("input tree was mutated")
	}
	if got := Remove(tree, "missing"); Count(got) != Count(tree) {
		t.Fatalf("removing a missing id changed the tree")
	}
}

func TestUpdate(t *testing.T) {
	tree := sampleTree()
	name := "main.js"
	out := Update(tree, "app", Patch{Name: &name})
	if Find(out, "app").Name != "main.js" || Find(tree, "app").Name != "app.js" {
		t.Fatalf("update not persistent")
	}
	if Find(out, "app").ModifiedAt.IsZero() {
		t.Fatalf("ModifiedAt not stamped")
	}
	if out[0].Children[0] != tree[0].Children[0] {
		t.Fatalf("siblings off the path should be shared")
	}
}

func TestWalkHelpers(t *testing.T) {
	tree := sampleTree()
	if got := Count(tree); got != 5 {
		t.Fatalf("Count = %d", got)
	}
	var names []string
	for _, f := range Files(tree) {
		names = append(names, f.Name)
	}
	if len(names) != 3 || names[0] != "index.html" || names[1] != "app.js" || names[2] != "notes.txt" {
		t.Fatalf("Files order = %v", names)
	}
	if got := PathOf(tree, "app"); got != "project/src/app.js" {
		t.Fatalf("PathOf = %s", got)
	}
	if PathOf(tree, "missing") != "" {
		t.Fatalf("PathOf(missing) should be empty")
	}
	ids := SubtreeIDs(Find(tree, "root"))
	if len(ids) != 4 || ids[0] != "root" {
		t.Fatalf("SubtreeIDs = %v", ids)
	}
	if !IsDescendant(Find(tree, "root"), "app") || IsDescendant(Find(tree, "src"), "idx") {
		t.Fatalf("IsDescendant wrong")
	}
	anc := Ancestors(tree, "app")
	if len(anc) != 2 || anc[0].ID != "root" || anc[1].ID != "src" {
		t.Fatalf("Ancestors = %+v", anc)
	}
	if Ancestors(tree, "notes") == nil || len(Ancestors(tree, "notes")) != 0 {
		t.Fatalf("root-level node should have an empty ancestor chain")
	}
}

func TestClone(t *testing.T) {
	tree := sampleTree()
	cp := Clone(tree)
	cp[0].Children[1].Children[0].Name = "changed"
	if Find(tree, "app").Name != "app.js" {
		t.Fatalf("Clone shares nodes with its input")
	}
}

func TestSiblings(t *testing.T) {
	tree := sampleTree()
	if sib, err := Siblings(tree, ""); err != nil || len(sib) != 2 {
		t.Fatalf("root siblings: %v %d", err, len(sib))
	}
	if _, err := Siblings(tree, "idx"); !errors.Is(err, ErrNotFolder) {
		t.Fatalf("file parent: %v", err)
	}
}

func TestResolve(t *testing.T) {
	tree := sampleTree()
	if n, ok := Resolve(tree, "/project/src/app.js"); !ok || n.ID != "app" {
		t.Fatalf("Resolve app = %+v %v", n, ok)
	}
	if n, ok := Resolve(tree, "project/"); !ok || n.ID != "root" {
		t.Fatalf("Resolve project = %+v %v", n, ok)
	}
	if n, ok := Resolve(tree, "/"); !ok || n != nil {
		t.Fatalf("Resolve root = %+v %v", n, ok)
	}
	if _, ok := Resolve(tree, "project/nope"); ok {
		t.Fatalf("missing path resolved")
	}
}
