package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/coffeeline/outline"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(root *outline.Node) error
}

// New returns the encoder registered under name: text, json or lines.
func New(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "", "text":
		return NewTextEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	case "lines":
		return NewLineEncoder(w), nil
	}
	return nil, fmt.Errorf("unknown format %q", name)
}
