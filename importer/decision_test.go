package importer

import (
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		kind      LineKind
		indent    int
		topIndent int
		started   bool
		want      Decision
	}{
		{"blank under-indented", LineBlank, 0, 4, false, Append},
		{"in context under-indented", LineInContext, 0, 4, false, Append},
		{"starter deeper", LineStarter, 4, 2, false, Open},
		{"starter at root", LineStarter, 0, rootIndent, false, Open},
		{"starter same indent", LineStarter, 2, 2, false, CutBackThenOpen},
		{"starter shallower", LineStarter, 0, 4, false, CutBackThenOpen},
		{"starter right after starter", LineStarter, 2, 2, true, CutBackThenOpen},
		{"code deeper", LineCode, 4, 2, false, Append},
		{"code at root", LineCode, 0, rootIndent, false, Append},
		{"code same indent", LineCode, 2, 2, false, CutBackThenAppend},
		{"code shallower", LineCode, 0, 2, false, CutBackThenAppend},
		{"first line at starter indent", LineCode, 2, 2, true, Append},
		{"first line shallower", LineCode, 0, 2, true, Append},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			top := Target{State: ScanState{Indent: tt.topIndent}, started: tt.started}
			cur := ScanState{Indent: tt.indent}
			if got := Classify(tt.kind, cur, top); got != tt.want {
				t.Errorf("Classify(%v, %d, %d) = %v, want %v", tt.kind, tt.indent, tt.topIndent, got, tt.want)
			}
		})
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name    string
		cur     ScanState
		prev    ScanState
		starter bool
		want    LineKind
	}{
		{"plain", ScanState{}, ScanState{}, false, LineCode},
		{"blank", ScanState{Blank: true}, ScanState{}, false, LineBlank},
		{"starter", ScanState{Starter: true}, ScanState{}, true, LineStarter},
		{"inside string", ScanState{}, ScanState{Context: ContextDoubleQuote}, true, LineInContext},
		{"continued", ScanState{}, ScanState{Context: ContextContinuation}, false, LineInContext},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.cur, tt.prev, tt.starter); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScanStatePredicates(t *testing.T) {
	prev := ScanState{Indent: 2}

	if !(ScanState{Indent: 2}).Continues(prev, false) {
		t.Error("same indent continues")
	}
	if !(ScanState{Indent: 0, Blank: true}).Continues(prev, false) {
		t.Error("blank line continues")
	}
	if !(ScanState{Indent: 0}).Continues(prev, true) {
		t.Error("first line after a starter continues")
	}
	if (ScanState{Indent: 0}).Continues(prev, false) {
		t.Error("shallower line does not continue")
	}

	if !(ScanState{Indent: 0}).Exits(prev) {
		t.Error("shallower line exits")
	}
	if (ScanState{Indent: 0, Context: ContextDoubleQuote}).Exits(prev) {
		t.Error("line in context never exits")
	}

	if !(ScanState{Indent: 2, Starter: true}).Enters(prev) {
		t.Error("starter at same indent enters")
	}
	if (ScanState{Indent: 4}).Enters(prev) {
		t.Error("non-starter never enters")
	}
	if (ScanState{Indent: 4, Starter: true, Context: ContextSingleQuote}).Enters(prev) {
		t.Error("line in context never enters")
	}
}

func TestKindStrings(t *testing.T) {
	if got := CutBackThenOpen.String(); got != "CutBackThenOpen" {
		t.Errorf("String() = %q", got)
	}
	if got := Decision(99).String(); got != "Unknown" {
		t.Errorf("String() = %q", got)
	}
	if got := LineInContext.String(); got != "InContext" {
		t.Errorf("String() = %q", got)
	}
	if got := ContextBlockComment.String(); got != "BlockComment" {
		t.Errorf("String() = %q", got)
	}
	if got := MatchTrailing.String(); got != "Trailing" {
		t.Errorf("String() = %q", got)
	}
}

func TestClassifyIgnoresEndContext(t *testing.T) {
	top := Target{State: ScanState{Indent: 2}}

	cur := ScanState{Indent: 0, Context: ContextDoubleQuote}
	if got := Classify(LineCode, cur, top); got != CutBackThenAppend {
		t.Errorf("code opening a string = %v, want %v", got, CutBackThenAppend)
	}

	cur = ScanState{Indent: 4, Context: ContextBlockComment}
	if got := Classify(LineStarter, cur, top); got != Open {
		t.Errorf("starter opening a comment = %v, want %v", got, Open)
	}
}
