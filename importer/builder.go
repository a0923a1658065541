package importer

import (
	"fmt"
	"strings"

	"github.com/dhamidi/coffeeline/outline"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("coffeeline.importer")

// Target is an open block: the node that owns its lines and the state of
// the line that opened it.
type Target struct {
	Node  *outline.Node
	State ScanState

	// AtOthers is set once an @others directive for this block's children
	// has been written to Node.
	AtOthers bool
	// GenRefs is set when a line was appended to Node after its children;
	// later children are then placed with section references.
	GenRefs bool

	started bool
}

// Started reports whether the block's starter line was the last
// classified line.
func (t Target) Started() bool {
	return t.started
}

// TitleFunc derives the headline of a block started by line under parent.
// frame is the open block that will own the new node.
type TitleFunc func(line string, parent *outline.Node, frame *Target) string

// Builder turns lines into a node tree with an explicit stack of open
// blocks. A Builder serves one source unit.
type Builder struct {
	lang   Language
	title  TitleFunc
	stack  []*Target
	prev   ScanState
	lineNo int
}

func NewBuilder(lang Language, root *outline.Node, title TitleFunc) *Builder {
	if title == nil {
		title = func(line string, parent *outline.Node, frame *Target) string {
			return lang.Title(line)
		}
	}
	sentinel := &Target{Node: root, State: ScanState{Indent: rootIndent}}
	return &Builder{
		lang:  lang,
		title: title,
		stack: []*Target{sentinel, sentinel},
	}
}

// Build feeds every line of src to the builder.
func (b *Builder) Build(src string) {
	for _, line := range SplitLines(src) {
		b.Feed(line)
	}
}

// Feed processes the next source line. line keeps its terminator.
func (b *Builder) Feed(line string) {
	b.lineNo++
	cur := b.lang.Scan(line, b.prev)
	top := b.top()
	kind := KindOf(cur, b.prev, b.lang.IsBlockStarter(cur))
	decision := Classify(kind, cur, *top)
	if kind == LineCode || kind == LineStarter {
		top.started = false
	}

	log.Debugf("line %d: %s %s %s", b.lineNo, kind, decision, cur)

	switch decision {
	case Append:
		b.appendLine(top, line)
	case CutBackThenAppend:
		b.cut(cur)
		top = b.top()
		b.appendLine(top, line)
		if top.AtOthers {
			top.GenRefs = true
		}
	case Open:
		b.open(line, cur)
	case CutBackThenOpen:
		b.cut(cur)
		b.open(line, cur)
	}
	b.prev = cur
}

// Stack returns a copy of the open blocks, bottom first.
func (b *Builder) Stack() []Target {
	result := make([]Target, len(b.stack))
	for i, t := range b.stack {
		result[i] = *t
	}
	return result
}

func (b *Builder) top() *Target {
	if len(b.stack) == 0 {
		panic("importer: block stack is empty")
	}
	return b.stack[len(b.stack)-1]
}

func (b *Builder) appendLine(t *Target, line string) {
	n := t.Node
	n.AppendLine(line)
	if n.Span.Start == 0 {
		n.Span.Start = b.lineNo
	}
	n.Span.End = b.lineNo
}

// cut pops the blocks cur closes: every block opened deeper than cur and
// at most one opened at exactly cur's indent.
func (b *Builder) cut(cur ScanState) {
	if len(b.stack) < 2 {
		panic(fmt.Sprintf("importer: cut entered with %d frames", len(b.stack)))
	}
	for len(b.stack) > 1 {
		topIndent := b.top().State.Indent
		if cur.Indent < topIndent {
			b.pop()
		} else if cur.Indent == topIndent {
			b.pop()
			break
		} else {
			break
		}
	}
	if len(b.stack) == 1 {
		b.stack = append(b.stack, b.stack[0])
	}
}

func (b *Builder) pop() {
	if len(b.stack) < 2 {
		panic("importer: popped the root frame")
	}
	b.stack = b.stack[:len(b.stack)-1]
}

func (b *Builder) open(line string, cur ScanState) {
	top := b.top()
	parent := top.Node
	title := b.title(line, parent, top)
	child := parent.CreateChild(title)
	child.Span = outline.Span{Start: b.lineNo, End: b.lineNo}
	child.AppendLine(line)
	b.stack = append(b.stack, &Target{Node: child, State: cur, started: true})
}

// SplitLines splits src after every newline. The last line keeps no
// terminator when src does not end with one.
func SplitLines(src string) []string {
	if src == "" {
		return nil
	}
	lines := strings.SplitAfter(src, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
