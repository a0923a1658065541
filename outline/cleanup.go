package outline

import "strings"

// Cleanup runs the language-agnostic passes over the subtree of root:
// headline whitespace normalization followed by empty leaf deletion.
func Cleanup(root *Node) {
	CleanHeadlines(root)
	DeleteEmptyNodes(root)
}

// CleanHeadlines trims every headline below root and collapses inner runs
// of whitespace to a single space.
func CleanHeadlines(root *Node) {
	for _, n := range root.Subtree() {
		n.Title = strings.Join(strings.Fields(n.Title), " ")
	}
}

// DeleteEmptyNodes removes descendants of root that have no children and
// a whitespace-only body. Parents emptied by a removal are removed in
// turn; root itself is kept.
func DeleteEmptyNodes(root *Node) int {
	removed := 0
	for {
		var empty []*Node
		for _, n := range root.Subtree() {
			if len(n.Children) == 0 && strings.TrimSpace(n.Body()) == "" {
				empty = append(empty, n)
			}
		}
		if len(empty) == 0 {
			return removed
		}
		for _, n := range empty {
			n.Remove()
		}
		removed += len(empty)
	}
}
