package importer

import (
	"regexp"
	"strings"
)

// testLang is a small hash-commented language used to exercise the
// generic machinery without a real language package.
type testLang struct {
	scanner Scanner
}

var testTable = Table{
	{Kind: MatchTrailing, Pattern: `\`, Enter: ContextContinuation, Anywhere: true},
	{Kind: MatchEscape, Pattern: `\`, Anywhere: true},
	{Kind: MatchLiteral, Pattern: "###", Enter: ContextBlockComment, Exit: ContextBlockComment},
	{Kind: MatchRest, Pattern: "#", Enter: ContextLineComment},
	{Kind: MatchLiteral, Pattern: `"`, Enter: ContextDoubleQuote, Exit: ContextDoubleQuote},
	{Kind: MatchLiteral, Pattern: `'`, Enter: ContextSingleQuote, Exit: ContextSingleQuote},
	{Kind: MatchLiteral, Pattern: "{", Delta: Brackets{Curly: 1}},
	{Kind: MatchLiteral, Pattern: "}", Delta: Brackets{Curly: -1}},
	{Kind: MatchLiteral, Pattern: "(", Delta: Brackets{Paren: 1}},
	{Kind: MatchLiteral, Pattern: ")", Delta: Brackets{Paren: -1}},
	{Kind: MatchLiteral, Pattern: "[", Delta: Brackets{Square: 1}},
	{Kind: MatchLiteral, Pattern: "]", Delta: Brackets{Square: -1}},
}

var (
	testClass = regexp.MustCompile(`^\s*class\s+(\w+)`)
	testFunc  = regexp.MustCompile(`^\s*(\w+)\s*[:=].*->`)
)

func newTestLang() *testLang {
	return &testLang{
		scanner: Scanner{
			Table:    testTable,
			Starters: []*regexp.Regexp{testClass, testFunc},
			TabWidth: 4,
		},
	}
}

func (l *testLang) Name() string         { return "test" }
func (l *testLang) Extensions() []string { return []string{".tst"} }
func (l *testLang) TabWidth() int        { return l.scanner.TabWidth }

func (l *testLang) Scan(line string, prev ScanState) ScanState {
	return l.scanner.Scan(line, prev)
}

func (l *testLang) IsBlockStarter(state ScanState) bool {
	return state.Starter
}

func (l *testLang) IsCommentLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "#")
}

func (l *testLang) Title(line string) string {
	if m := testClass.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	if m := testFunc.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	return strings.TrimSpace(line)
}

// scanAll folds the scanner over src and returns one state per line.
func scanAll(lang Language, src string) []ScanState {
	var states []ScanState
	prev := ScanState{}
	for _, line := range SplitLines(src) {
		prev = lang.Scan(line, prev)
		states = append(states, prev)
	}
	return states
}
