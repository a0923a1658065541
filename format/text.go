package format

import (
	"io"
	"strings"

	"github.com/dhamidi/coffeeline/outline"
)

// TextEncoder renders an outline for reading: each node is a "- title"
// heading indented by its depth, followed by its body with every line
// prefixed by "| ".
type TextEncoder struct {
	w    io.Writer
	root *outline.Node
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(root *outline.Node) error {
	e.root = root
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	e.writeNode(&sb, e.root, 0)
	return []byte(sb.String()), nil
}

func (e *TextEncoder) writeNode(sb *strings.Builder, n *outline.Node, depth int) {
	prefix := strings.Repeat("  ", depth)
	sb.WriteString(prefix)
	sb.WriteString("- ")
	sb.WriteString(n.Title)
	sb.WriteString("\n")

	for _, line := range n.Lines {
		sb.WriteString(prefix)
		sb.WriteString("| ")
		sb.WriteString(strings.TrimRight(line, "\r\n"))
		sb.WriteString("\n")
	}

	for _, c := range n.Children {
		e.writeNode(sb, c, depth+1)
	}
}
