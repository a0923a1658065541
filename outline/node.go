// Package outline holds the tree an import produces: headed nodes with
// accumulated body text, nested in document order.
package outline

import (
	"fmt"
	"strings"
)

// Span is the 1-based, inclusive range of source lines a node was built
// from. The zero Span means the node has no source position.
type Span struct {
	Start int
	End   int
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

type Node struct {
	Title    string
	Lines    []string
	Children []*Node
	Span     Span
	parent   *Node
}

func New(title string) *Node {
	return &Node{Title: title}
}

// CreateChild allocates a node under n and returns it.
func (n *Node) CreateChild(title string) *Node {
	child := &Node{Title: title}
	n.AddChild(child)
	return child
}

func (n *Node) AddChild(child *Node) {
	if child != nil {
		child.parent = n
		n.Children = append(n.Children, child)
	}
}

// AppendLine appends one line, terminator included, to the body.
func (n *Node) AppendLine(line string) {
	n.Lines = append(n.Lines, line)
}

// PrependLines inserts lines ahead of the current body.
func (n *Node) PrependLines(lines []string) {
	body := make([]string, 0, len(lines)+len(n.Lines))
	body = append(body, lines...)
	n.Lines = append(body, n.Lines...)
}

func (n *Node) SetLines(lines []string) {
	n.Lines = lines
}

func (n *Node) Body() string {
	return strings.Join(n.Lines, "")
}

func (n *Node) Parent() *Node {
	return n.parent
}

func (n *Node) IsRoot() bool {
	return n.parent == nil
}

// Index returns the position of n among its siblings, or -1 for a root.
func (n *Node) Index() int {
	if n.parent == nil {
		return -1
	}
	for i, c := range n.parent.Children {
		if c == n {
			return i
		}
	}
	return -1
}

func (n *Node) NextSibling() *Node {
	i := n.Index()
	if i < 0 || i+1 >= len(n.parent.Children) {
		return nil
	}
	return n.parent.Children[i+1]
}

// Remove detaches n from its parent. Removing a root is a no-op.
func (n *Node) Remove() {
	i := n.Index()
	if i < 0 {
		return
	}
	siblings := n.parent.Children
	n.parent.Children = append(siblings[:i:i], siblings[i+1:]...)
	n.parent = nil
}

// Walk visits n and its descendants in document order. Returning false
// from fn skips the children of the visited node.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// Subtree returns the descendants of n in document order, n excluded.
func (n *Node) Subtree() []*Node {
	var result []*Node
	for _, child := range n.Children {
		child.Walk(func(d *Node) bool {
			result = append(result, d)
			return true
		})
	}
	return result
}

// Depth is 0 for a root.
func (n *Node) Depth() int {
	depth := 0
	for p := n.parent; p != nil; p = p.parent {
		depth++
	}
	return depth
}

// IsSectionRef reports whether the title is a << section reference >>.
func (n *Node) IsSectionRef() bool {
	t := strings.TrimSpace(n.Title)
	return strings.HasPrefix(t, "<<") && strings.HasSuffix(t, ">>")
}

func (n *Node) String() string {
	return n.stringIndent(0, false)
}

func (n *Node) StringWithBodies() string {
	return n.stringIndent(0, true)
}

func (n *Node) stringIndent(indent int, showBodies bool) string {
	prefix := strings.Repeat("  ", indent)

	var sb strings.Builder
	sb.WriteString(prefix)
	sb.WriteString(n.Title)
	if n.Span != (Span{}) {
		sb.WriteString(" [" + n.Span.String() + "]")
	}
	sb.WriteString("\n")

	if showBodies {
		for _, line := range n.Lines {
			sb.WriteString(prefix + "| " + strings.TrimRight(line, "\r\n") + "\n")
		}
	}

	for _, child := range n.Children {
		sb.WriteString(child.stringIndent(indent+1, showBodies))
	}
	return sb.String()
}
