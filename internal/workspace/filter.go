package workspace

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Filter prunes tree to the nodes whose name contains query
// (case-insensitive) and the folders leading to them. A matching folder
// keeps only its matching descendants. The empty query returns tree as is.
func Filter(tree Tree, query string) Tree {
	if query == "" {
		return tree
	}
	return filter(tree, strings.ToLower(query))
}

func filter(nodes Tree, q string) Tree {
	out := Tree{}
	for _, n := range nodes {
		var kids Tree
		if n.IsFolder() {
			kids = filter(n.Children, q)
		}
		if len(kids) == 0 && !strings.Contains(strings.ToLower(n.Name), q) {
			continue
		}
		if n.IsFolder() {
			cp := *n
			cp.Children = kids
			n = &cp
		}
		out = append(out, n)
	}
	return out
}

// Match is a quick-open hit.
type Match struct {
	ID      string `json:"id"`
	Path    string `json:"path"`
	Score   int    `json:"score"`
	Matched []int  `json:"matched,omitempty"`
}

// QuickOpen fuzzy-matches query against the full paths of all files and
// returns the best hits first. An empty query lists files in project order.
// limit <= 0 means no limit.
func QuickOpen(tree Tree, query string, limit int) []Match {
	var ids, paths []string
	var walkPaths func(nodes Tree, prefix string)
	walkPaths = func(nodes Tree, prefix string) {
		for _, n := range nodes {
			p := prefix + n.Name
			if n.IsFile() {
				ids = append(ids, n.ID)
				paths = append(paths, p)
			}
			walkPaths(n.Children, p+"/")
		}
	}
	walkPaths(tree, "")

	var out []Match
	if strings.TrimSpace(query) == "" {
		for i := range paths {
			out = append(out, Match{ID: ids[i], Path: paths[i]})
		}
	} else {
		for _, m := range fuzzy.Find(query, paths) {
			out = append(out, Match{ID: ids[m.Index], Path: m.Str, Score: m.Score, Matched: m.MatchedIndexes})
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
