package importer

import (
	"regexp"
	"testing"
)

func TestRuleMatch(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
		line string
		at   int
		want int
	}{
		{"literal", Rule{Kind: MatchLiteral, Pattern: "###"}, "x ###", 2, 3},
		{"literal miss", Rule{Kind: MatchLiteral, Pattern: "###"}, "x ##", 2, -1},
		{"escape", Rule{Kind: MatchEscape, Pattern: `\`}, `a\"b`, 1, 2},
		{"escape at end", Rule{Kind: MatchEscape, Pattern: `\`}, `a\`, 1, -1},
		{"rest", Rule{Kind: MatchRest, Pattern: "#"}, "x # c\n", 2, 4},
		{"trailing newline", Rule{Kind: MatchTrailing, Pattern: `\`}, "x \\\n", 2, 2},
		{"trailing crlf", Rule{Kind: MatchTrailing, Pattern: `\`}, "x \\\r\n", 2, 3},
		{"trailing eof", Rule{Kind: MatchTrailing, Pattern: `\`}, "x \\", 2, 1},
		{"trailing not at end", Rule{Kind: MatchTrailing, Pattern: `\`}, "x \\n", 2, -1},
		{"regexp", Rule{Kind: MatchRegexp, Regexp: regexp.MustCompile(`[0-9]+`)}, "x 123;", 2, 3},
		{"regexp anchored", Rule{Kind: MatchRegexp, Regexp: regexp.MustCompile(`[0-9]+`)}, "x a1", 2, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rule.match(tt.line, tt.at); got != tt.want {
				t.Errorf("match(%q, %d) = %d, want %d", tt.line, tt.at, got, tt.want)
			}
		})
	}
}

func TestTableFirstMatchWins(t *testing.T) {
	rule, n := testTable.Match(ContextNone, "###x", 0)
	if rule == nil || rule.Enter != ContextBlockComment || n != 3 {
		t.Errorf("Match(###x) = %+v, %d; want the block comment rule", rule, n)
	}

	rule, _ = testTable.Match(ContextNone, "#x", 0)
	if rule == nil || rule.Enter != ContextLineComment {
		t.Errorf("Match(#x) = %+v; want the line comment rule", rule)
	}
}

func TestTableRespectsContext(t *testing.T) {
	if rule, _ := testTable.Match(ContextDoubleQuote, "'", 0); rule != nil {
		t.Errorf("a single quote inside a double-quoted string matched %+v", rule)
	}
	if rule, _ := testTable.Match(ContextDoubleQuote, `"`, 0); rule == nil || rule.Exit != ContextDoubleQuote {
		t.Errorf("closing quote matched %+v", rule)
	}
	if rule, _ := testTable.Match(ContextBlockComment, `\x`, 0); rule == nil || rule.Kind != MatchEscape {
		t.Errorf("escape inside a block comment matched %+v", rule)
	}
}
