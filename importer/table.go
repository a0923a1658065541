package importer

import (
	"regexp"
	"strings"
)

type MatchKind int

const (
	// MatchLiteral matches Pattern and advances past it.
	MatchLiteral MatchKind = iota
	// MatchEscape matches Pattern plus the byte that follows it.
	MatchEscape
	// MatchRest matches Pattern and consumes the rest of the line.
	MatchRest
	// MatchTrailing matches Pattern only when nothing but the line
	// terminator follows it.
	MatchTrailing
	// MatchRegexp matches Regexp anchored at the current offset.
	MatchRegexp
)

var matchKindNames = map[MatchKind]string{
	MatchLiteral:  "Literal",
	MatchEscape:   "Escape",
	MatchRest:     "Rest",
	MatchTrailing: "Trailing",
	MatchRegexp:   "Regexp",
}

func (k MatchKind) String() string {
	if name, ok := matchKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Brackets counts open {}, () and [] pairs seen outside any context.
// The counts are carried from line to line but no block decision reads
// them.
type Brackets struct {
	Curly  int
	Paren  int
	Square int
}

func (b Brackets) Add(d Brackets) Brackets {
	return Brackets{
		Curly:  b.Curly + d.Curly,
		Paren:  b.Paren + d.Paren,
		Square: b.Square + d.Square,
	}
}

// Rule is one row of a lexical context table.
//
// Outside any context every rule applies: a match moves the scanner to
// Enter and adds Delta to the bracket counts. Inside context c only rules
// with Exit == c (which return to ContextNone) and rules marked Anywhere
// (which leave c unchanged) apply.
type Rule struct {
	Kind     MatchKind
	Pattern  string
	Regexp   *regexp.Regexp
	Enter    Context
	Exit     Context
	Anywhere bool
	Delta    Brackets
}

func (r Rule) appliesIn(ctx Context) bool {
	if ctx == ContextNone {
		return true
	}
	return r.Anywhere || r.Exit == ctx
}

func (r Rule) next(ctx Context) Context {
	switch {
	case ctx == ContextNone:
		return r.Enter
	case r.Exit == ctx:
		return ContextNone
	default:
		return ctx
	}
}

// match returns the number of bytes the rule consumes at offset i of
// line, or -1 when it does not match there.
func (r Rule) match(line string, i int) int {
	rest := line[i:]
	if r.Kind == MatchRegexp {
		loc := r.Regexp.FindStringIndex(rest)
		if loc == nil || loc[0] != 0 {
			return -1
		}
		return loc[1]
	}

	if !strings.HasPrefix(rest, r.Pattern) {
		return -1
	}
	n := len(r.Pattern)

	switch r.Kind {
	case MatchLiteral:
		return n
	case MatchEscape:
		if n >= len(rest) {
			return -1
		}
		return n + 1
	case MatchRest:
		return len(rest)
	case MatchTrailing:
		switch rest[n:] {
		case "", "\n", "\r\n":
			return len(rest)
		}
		return -1
	}
	return -1
}

// Table is an ordered rule list. Earlier rules win ties at the same
// offset.
type Table []Rule

// Match finds the first rule applicable in ctx that matches at offset i.
func (t Table) Match(ctx Context, line string, i int) (*Rule, int) {
	for k := range t {
		r := &t[k]
		if !r.appliesIn(ctx) {
			continue
		}
		if n := r.match(line, i); n >= 0 {
			return r, n
		}
	}
	return nil, 0
}
