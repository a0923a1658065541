package format

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/dhamidi/coffeeline/outline"
)

type JSONEncoder struct {
	w    io.Writer
	root *outline.Node
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(root *outline.Node) error {
	e.root = root
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	if _, err = e.w.Write(text); err != nil {
		return err
	}
	_, err = io.WriteString(e.w, "\n")
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(nodeToJSON(e.root), "", "  ")
}

type jsonNode struct {
	Title    string      `json:"title"`
	Line     int         `json:"line,omitempty"`
	EndLine  int         `json:"end_line,omitempty"`
	Body     []string    `json:"body"`
	Children []*jsonNode `json:"children,omitempty"`
}

func nodeToJSON(n *outline.Node) *jsonNode {
	jn := &jsonNode{
		Title:   n.Title,
		Line:    n.Span.Start,
		EndLine: n.Span.End,
		Body:    make([]string, 0, len(n.Lines)),
	}
	for _, line := range n.Lines {
		jn.Body = append(jn.Body, strings.TrimRight(line, "\r\n"))
	}
	for _, c := range n.Children {
		jn.Children = append(jn.Children, nodeToJSON(c))
	}
	return jn
}
