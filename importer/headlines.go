package importer

import (
	"fmt"

	"github.com/dhamidi/coffeeline/outline"
)

// Headlines returns the default title hook for one build.
//
// Without directives the headline is the language's title for the
// starter line. With directives the parent body also records where its
// children go: the first child of a block writes an @others line, and
// once the block has text after its children (GenRefs) each further
// child writes a << title >> reference instead and takes the reference
// as its headline. Repeated reference titles are numbered.
func Headlines(lang Language, directives bool) TitleFunc {
	refs := make(map[string]int)

	return func(line string, parent *outline.Node, frame *Target) string {
		h := lang.Title(line)
		if !directives {
			return h
		}

		ws := leadingWhitespace(line)
		if frame.GenRefs {
			n := refs[h]
			refs[h] = n + 1
			if n > 0 {
				h = fmt.Sprintf("%d: %s", n, h)
			}
			ref := "<< " + h + " >>"
			parent.AppendLine(ws + ref + "\n")
			return ref
		}

		if !frame.AtOthers {
			parent.AppendLine(ws + "@others\n")
			frame.AtOthers = true
		}
		return h
	}
}

func leadingWhitespace(line string) string {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' {
			return line[:i]
		}
	}
	return line
}
