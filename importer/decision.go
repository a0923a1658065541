package importer

// LineKind classifies a line for the block decision.
type LineKind int

const (
	LineCode LineKind = iota
	LineBlank
	LineInContext
	LineStarter
)

var lineKindNames = map[LineKind]string{
	LineCode:      "Code",
	LineBlank:     "Blank",
	LineInContext: "InContext",
	LineStarter:   "Starter",
}

func (k LineKind) String() string {
	if name, ok := lineKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Decision is what the builder does with a line.
type Decision int

const (
	Append Decision = iota
	Open
	CutBackThenAppend
	CutBackThenOpen
)

var decisionNames = map[Decision]string{
	Append:            "Append",
	Open:              "Open",
	CutBackThenAppend: "CutBackThenAppend",
	CutBackThenOpen:   "CutBackThenOpen",
}

func (d Decision) String() string {
	if name, ok := decisionNames[d]; ok {
		return name
	}
	return "Unknown"
}

// KindOf classifies the line scanned into cur. prev is the state of the
// line before it; starter is the language's block-starter verdict for cur.
func KindOf(cur, prev ScanState, starter bool) LineKind {
	switch {
	case prev.InContext():
		return LineInContext
	case cur.Blank:
		return LineBlank
	case starter:
		return LineStarter
	default:
		return LineCode
	}
}

// Classify decides how a line of the given kind and state relates to the
// top open block. It has no side effects; the caller clears the top
// frame's one-shot flag once a Code or Starter line has been classified.
//
// A block's body is indented deeper than its starter line. The line right
// after a starter is the exception and always joins the block.
func Classify(kind LineKind, cur ScanState, top Target) Decision {
	if kind == LineBlank || kind == LineInContext {
		return Append
	}

	// Code and starter lines begin outside any context, whatever context
	// they end in.
	head := cur
	head.Context = ContextNone
	head.Blank = false
	head.Starter = kind == LineStarter

	if kind == LineStarter {
		if head.Enters(top.State) && !head.Continues(top.State, false) {
			return Open
		}
		return CutBackThenOpen
	}
	if !top.started && (head.Exits(top.State) || head.Continues(top.State, false)) {
		return CutBackThenAppend
	}
	return Append
}
