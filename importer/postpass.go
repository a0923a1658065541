package importer

import (
	"strings"

	"github.com/dhamidi/coffeeline/outline"
)

// PostPass normalizes the bodies of a built tree: every body is
// de-indented, then trailing comments are handed to the declaration that
// follows them.
func PostPass(root *outline.Node, lang Language) {
	root.Walk(func(n *outline.Node) bool {
		n.SetLines(Unindent(n.Lines, lang))
		return true
	})
	PromoteTrailingLines(root, lang)
}

// Unindent strips the indentation common to a body.
//
// Blank and comment lines ahead of the first code line are stripped one
// by one. The rest lose the smallest indentation among their code lines;
// comment lines indented less than that lose all of theirs. Lines holding
// only whitespace keep only their terminator. Unindent(Unindent(x)) equals
// Unindent(x).
//
// The starter line is not exempt: it counts toward the common indent, so
// a nested block's headline line ends up flush left like its siblings.
func Unindent(lines []string, lang Language) []string {
	tabWidth := lang.TabWidth()
	result := make([]string, 0, len(lines))

	i := 0
	for ; i < len(lines); i++ {
		line := lines[i]
		if isBlankLine(line) {
			result = append(result, lineEnding(line))
		} else if lang.IsCommentLine(line) {
			result = append(result, strings.TrimLeft(line, " \t"))
		} else {
			break
		}
	}
	tail := lines[i:]

	common := -1
	for _, line := range tail {
		if isBlankLine(line) || lang.IsCommentLine(line) {
			continue
		}
		if w := indentWidth(line, tabWidth); common < 0 || w < common {
			common = w
		}
	}
	if common < 0 {
		common = 0
	}

	for _, line := range tail {
		switch {
		case isBlankLine(line):
			result = append(result, lineEnding(line))
		case indentWidth(line, tabWidth) < common:
			result = append(result, strings.TrimLeft(line, " \t"))
		default:
			result = append(result, removeIndent(line, common, tabWidth))
		}
	}
	return result
}

// PromoteTrailingLines moves the comment lines that end a node's body to
// the start of the node's next sibling, where they read as the sibling's
// leading comment. Tails that are blank only stay put, and nothing moves
// into a section reference, whose place is fixed by its << >> line.
//
// Moved lines are stripped the way Unindent strips leading lines, and the
// spans of both nodes follow the lines.
func PromoteTrailingLines(root *outline.Node, lang Language) {
	for _, n := range root.Subtree() {
		next := n.NextSibling()
		if next == nil || next.IsSectionRef() {
			continue
		}
		body, tail := splitTrailing(n.Lines, lang)
		if len(tail) == 0 {
			continue
		}
		log.Debugf("moving %d trailing lines from %q to %q", len(tail), n.Title, next.Title)
		n.SetLines(body)
		next.PrependLines(stripLeading(tail))
		if n.Span.End > 0 {
			end := n.Span.End - len(tail)
			if end < n.Span.Start {
				end = n.Span.Start
			}
			next.Span.Start = end + 1
			n.Span.End = end
		}
	}
}

// splitTrailing separates the run of blank and comment lines at the end
// of lines. The run is returned empty when it has no comment.
func splitTrailing(lines []string, lang Language) ([]string, []string) {
	cut := len(lines)
	for cut > 0 {
		line := lines[cut-1]
		if !isBlankLine(line) && !lang.IsCommentLine(line) {
			break
		}
		cut--
	}
	tail := lines[cut:]
	for _, line := range tail {
		if !isBlankLine(line) {
			return lines[:cut:cut], tail
		}
	}
	return lines, nil
}

// stripLeading reduces blank lines to their terminator and removes the
// indentation of every other line.
func stripLeading(lines []string) []string {
	result := make([]string, len(lines))
	for i, line := range lines {
		if isBlankLine(line) {
			result[i] = lineEnding(line)
		} else {
			result[i] = strings.TrimLeft(line, " \t")
		}
	}
	return result
}

func isBlankLine(line string) bool {
	return strings.TrimSpace(line) == ""
}

func lineEnding(line string) string {
	switch {
	case strings.HasSuffix(line, "\r\n"):
		return "\r\n"
	case strings.HasSuffix(line, "\n"):
		return "\n"
	}
	return ""
}

// removeIndent drops width columns of leading whitespace. A tab that
// straddles the boundary is replaced by the spaces left over.
func removeIndent(line string, width, tabWidth int) string {
	col := 0
	i := 0
	for i < len(line) && col < width {
		switch line[i] {
		case ' ':
			col++
		case '\t':
			col += tabWidth
		default:
			return line[i:]
		}
		i++
	}
	if col > width {
		return strings.Repeat(" ", col-width) + line[i:]
	}
	return line[i:]
}
