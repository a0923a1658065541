package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/coffeeline/outline"
)

// LineEncoder writes one tab-separated record per node below the root:
// depth, headline, source span and body line count.
type LineEncoder struct {
	w    io.Writer
	root *outline.Node
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(root *outline.Node) error {
	e.root = root
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	for _, n := range e.root.Subtree() {
		fmt.Fprintf(&sb, "%d\t%s\t%s\t%d\n",
			n.Depth(),
			n.Title,
			n.Span,
			len(n.Lines),
		)
	}
	return []byte(sb.String()), nil
}
