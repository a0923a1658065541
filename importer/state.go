package importer

import "fmt"

// rootIndent sits below every real indentation so the root frame is
// never cut.
const rootIndent = -1

// ScanState is the scanner's verdict on one line.
//
// Context is the context in effect at the end of the line. Indent is the
// leading whitespace width, or the previous line's Indent when the line
// continues a backslash continuation. Starter is only set for code lines
// that begin outside any context. Blank marks whitespace-only and comment-only
// lines that do not continue a multi-line context.
type ScanState struct {
	Context  Context
	Indent   int
	Starter  bool
	Blank    bool
	Brackets Brackets
}

func (s ScanState) InContext() bool {
	return s.Context != ContextNone
}

// Continues reports whether s stays in the block prev belongs to.
// started is the one-shot flag of a frame whose starter line was the
// previous line: the first line after a starter always continues.
func (s ScanState) Continues(prev ScanState, started bool) bool {
	return started || s.Indent == prev.Indent || s.Blank
}

// Exits reports whether s closes at least one block opened at prev.
func (s ScanState) Exits(prev ScanState) bool {
	return !s.InContext() && s.Indent < prev.Indent
}

// Enters reports whether s opens a block nested in (or beside) prev.
func (s ScanState) Enters(prev ScanState) bool {
	return !s.InContext() && s.Starter && s.Indent >= prev.Indent
}

func (s ScanState) String() string {
	return fmt.Sprintf("<ScanState %s indent: %d starter: %t blank: %t>",
		s.Context, s.Indent, s.Starter, s.Blank)
}
