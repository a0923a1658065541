// Package coffeescript teaches the importer the structure of CoffeeScript
// sources: its strings and comments, and the lines that declare classes
// and functions.
package coffeescript

import (
	"regexp"
	"strings"

	"github.com/dhamidi/coffeeline/importer"
)

const Name = "coffeescript"

// Table is the CoffeeScript context table, highest priority first.
var Table = importer.Table{
	{Kind: importer.MatchTrailing, Pattern: `\`, Enter: importer.ContextContinuation, Anywhere: true},
	{Kind: importer.MatchEscape, Pattern: `\`, Anywhere: true},
	// ### opens and closes block comments (and docstrings).
	{Kind: importer.MatchLiteral, Pattern: "###", Enter: importer.ContextBlockComment, Exit: importer.ContextBlockComment},
	{Kind: importer.MatchRest, Pattern: "#", Enter: importer.ContextLineComment},
	{Kind: importer.MatchLiteral, Pattern: `"`, Enter: importer.ContextDoubleQuote, Exit: importer.ContextDoubleQuote},
	{Kind: importer.MatchLiteral, Pattern: `'`, Enter: importer.ContextSingleQuote, Exit: importer.ContextSingleQuote},
	{Kind: importer.MatchLiteral, Pattern: "{", Delta: importer.Brackets{Curly: 1}},
	{Kind: importer.MatchLiteral, Pattern: "}", Delta: importer.Brackets{Curly: -1}},
	{Kind: importer.MatchLiteral, Pattern: "(", Delta: importer.Brackets{Paren: 1}},
	{Kind: importer.MatchLiteral, Pattern: ")", Delta: importer.Brackets{Paren: -1}},
	{Kind: importer.MatchLiteral, Pattern: "[", Delta: importer.Brackets{Square: 1}},
	{Kind: importer.MatchLiteral, Pattern: "]", Delta: importer.Brackets{Square: -1}},
}

var (
	classPattern      = regexp.MustCompile(`^\s*class`)
	colonFuncPattern  = regexp.MustCompile(`^\s*(.+?)\s*:(.*)[-=]>`)
	assignFuncPattern = regexp.MustCompile(`^\s*(.+?)\s*=(.*)[-=]>`)

	classNamePattern = regexp.MustCompile(`^\s*class\s+([A-Za-z_$@][\w$.@]*)`)
)

// Starters are the block-starter patterns in match order: class
// declarations, then functions assigned with ':' and with '='. Bound
// functions (=>) start blocks like plain ones.
var Starters = []*regexp.Regexp{
	classPattern,
	colonFuncPattern,
	assignFuncPattern,
}

func init() {
	importer.Register(New(importer.DefaultTabWidth))
}

type Language struct {
	scanner importer.Scanner
}

func New(tabWidth int) *Language {
	if tabWidth <= 0 {
		tabWidth = importer.DefaultTabWidth
	}
	return &Language{
		scanner: importer.Scanner{
			Table:    Table,
			Starters: Starters,
			TabWidth: tabWidth,
		},
	}
}

func (l *Language) Name() string {
	return Name
}

func (l *Language) Extensions() []string {
	return []string{".coffee"}
}

func (l *Language) Scan(line string, prev importer.ScanState) importer.ScanState {
	return l.scanner.Scan(line, prev)
}

func (l *Language) IsBlockStarter(state importer.ScanState) bool {
	return state.Starter
}

func (l *Language) IsCommentLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "#")
}

// Title names a class by its class name and a function by the name it is
// assigned to. Other lines are used as they are.
func (l *Language) Title(line string) string {
	if classPattern.MatchString(line) {
		if m := classNamePattern.FindStringSubmatch(line); m != nil {
			return m[1]
		}
		if strings.TrimSpace(line) == "class" {
			return "class"
		}
	}
	// The name ends at whichever of ':' and '=' comes first.
	var name string
	for _, pattern := range []*regexp.Regexp{colonFuncPattern, assignFuncPattern} {
		if m := pattern.FindStringSubmatch(line); m != nil {
			if n := strings.TrimSpace(m[1]); name == "" || len(n) < len(name) {
				name = n
			}
		}
	}
	if name != "" {
		return name
	}
	return strings.TrimSpace(line)
}

func (l *Language) TabWidth() int {
	return l.scanner.TabWidth
}
