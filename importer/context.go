package importer

// Context is the lexical state a scan position is in.
type Context int

const (
	ContextNone Context = iota
	ContextLineComment
	ContextBlockComment
	ContextSingleQuote
	ContextDoubleQuote
	ContextContinuation
)

var contextNames = map[Context]string{
	ContextNone:         "None",
	ContextLineComment:  "LineComment",
	ContextBlockComment: "BlockComment",
	ContextSingleQuote:  "SingleQuote",
	ContextDoubleQuote:  "DoubleQuote",
	ContextContinuation: "Continuation",
}

func (c Context) String() string {
	if name, ok := contextNames[c]; ok {
		return name
	}
	return "Unknown"
}

// IsComment reports whether text scanned in c belongs to a comment.
func (c Context) IsComment() bool {
	return c == ContextLineComment || c == ContextBlockComment
}

// Multiline reports whether c survives the end of the line it was
// entered on. Line comments end with their line.
func (c Context) Multiline() bool {
	return c != ContextNone && c != ContextLineComment
}
