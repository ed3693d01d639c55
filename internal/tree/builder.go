package tree

import (
	"sort"
	"strings"

	"size-explorer/internal/entry"
	"size-explorer/internal/logging"
)

// Build turns flat report entries into a forest:
// 1. Sort entries by path
// 2. Insert each entry as a leaf, creating missing ancestor directories
// 3. Prune chains of single-child directories into one node
// 4. Sort every sibling group by descending size
// 5. Enable the roots and put them on the chart
func Build(entries []entry.Entry) *Forest {
	sorted := make([]entry.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Path < sorted[j].Path
	})

	cache := make(map[string]*Node)
	seen := make(map[string]bool)
	var roots []*Node

	for _, e := range sorted {
		if !wellFormed(e.Path) {
			logging.Warn("skipping malformed entry path", logging.String("path", e.Path))
			continue
		}
		if seen[e.Path] {
			logging.Warn("skipping duplicate entry", logging.String("path", e.Path),
				logging.Float64("size_mb", e.SizeMB))
			continue
		}
		seen[e.Path] = true

		parts := strings.Split(e.Path, Separator)

		leaf, ok := cache[e.Path]
		if ok {
			leaf.selfSize = e.SizeMB
		} else {
			leaf = newNode(e.Path, parts[len(parts)-1], e.SizeMB)
			cache[e.Path] = leaf
			if len(parts) == 1 {
				roots = append(roots, leaf)
			}
		}

		child := leaf
		for j := len(parts) - 2; j >= 0; j-- {
			ancestorID := child.id[:strings.LastIndex(child.id, Separator)]
			ancestor, ok := cache[ancestorID]
			if !ok {
				ancestor = newNode(ancestorID, parts[j], 0)
				cache[ancestorID] = ancestor
				if j == 0 {
					roots = append(roots, ancestor)
				}
			}

			if child.parent != ancestor {
				child.parent = ancestor
				ancestor.children = append(ancestor.children, child)
			}
			child = ancestor
		}
	}

	for _, r := range roots {
		prune(r)
		sortChildren(r)
	}
	sortNodes(roots)

	f := &Forest{roots: roots}
	f.reindex()

	for _, r := range roots {
		setEnabled(r, true, nil)
		r.visible = true
		r.chartVisible = true
	}
	f.original = f.currentSize()

	logging.Debug("built size tree",
		logging.Int("entries", len(entries)),
		logging.Int("nodes", f.Len()),
		logging.Int("roots", len(roots)))

	return f
}

func wellFormed(path string) bool {
	if path == "" {
		return false
	}
	for _, seg := range strings.Split(path, Separator) {
		if seg == "" {
			return false
		}
	}
	return true
}

// prune folds a directory with exactly one child into that child, joining
// their names, until the node branches or carries its own size.
func prune(n *Node) {
	for len(n.children) == 1 && n.selfSize == 0 {
		only := n.children[0]
		n.name = n.name + Separator + only.name
		n.id = only.id
		n.selfSize = only.selfSize
		n.children = only.children
		for _, c := range n.children {
			c.parent = n
		}
	}
	for _, c := range n.children {
		prune(c)
	}
}

func sortChildren(n *Node) {
	sortNodes(n.children)
	for _, c := range n.children {
		sortChildren(c)
	}
}

// sortNodes orders by descending size; equal sizes fall back to the id so
// the result does not depend on insertion order.
func sortNodes(nodes []*Node) {
	sort.SliceStable(nodes, func(i, j int) bool {
		si, sj := nodes[i].Size(), nodes[j].Size()
		if si != sj {
			return si > sj
		}
		return nodes[i].id < nodes[j].id
	})
}
