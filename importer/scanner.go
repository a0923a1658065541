package importer

import (
	"fmt"
	"regexp"
)

// Scanner folds a Table over lines, one ScanState per line.
type Scanner struct {
	Table    Table
	Starters []*regexp.Regexp
	TabWidth int
}

// Scan scans line starting from the state of the previous line.
func (s *Scanner) Scan(line string, prev ScanState) ScanState {
	ctx := prev.Context
	indent := prev.Indent
	continued := ctx == ContextContinuation
	if continued {
		ctx = ContextNone
	} else {
		indent = s.IndentOf(line)
	}
	if !ctx.Multiline() {
		ctx = ContextNone
	}
	startCtx := ctx
	brackets := prev.Brackets
	code := false

	for i := 0; i < len(line); {
		rule, n := s.Table.Match(ctx, line, i)
		if rule == nil {
			if ctx == ContextNone && !isSpace(line[i]) {
				code = true
			}
			i++
			continue
		}
		if n <= 0 {
			panic(fmt.Sprintf("importer: rule %s %q matched without advancing at offset %d of %q",
				rule.Kind, rule.Pattern, i, line))
		}
		if ctx == ContextNone {
			brackets = brackets.Add(rule.Delta)
			if !rule.next(ctx).IsComment() {
				code = true
			}
		}
		ctx = rule.next(ctx)
		i += n
	}

	if !ctx.Multiline() {
		ctx = ContextNone
	}

	fresh := startCtx == ContextNone && !continued
	return ScanState{
		Context:  ctx,
		Indent:   indent,
		Starter:  fresh && code && s.MatchesStarter(line),
		Blank:    fresh && !code,
		Brackets: brackets,
	}
}

// IndentOf returns the width of the leading whitespace of line, counting
// a tab as TabWidth columns.
func (s *Scanner) IndentOf(line string) int {
	return indentWidth(line, s.tabWidth())
}

func (s *Scanner) MatchesStarter(line string) bool {
	for _, pattern := range s.Starters {
		if pattern.MatchString(line) {
			return true
		}
	}
	return false
}

func (s *Scanner) tabWidth() int {
	if s.TabWidth <= 0 {
		return DefaultTabWidth
	}
	return s.TabWidth
}

const DefaultTabWidth = 4

func indentWidth(line string, tabWidth int) int {
	n := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ':
			n++
		case '\t':
			n += tabWidth
		default:
			return n
		}
	}
	return n
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\f' || ch == '\v'
}
