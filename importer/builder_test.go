package importer

import (
	"strings"
	"testing"

	"github.com/dhamidi/coffeeline/outline"
)

func build(src string) *outline.Node {
	root := outline.New("root")
	lang := newTestLang()
	NewBuilder(lang, root, nil).Build(src)
	return root
}

func childTitles(n *outline.Node) []string {
	var titles []string
	for _, c := range n.Children {
		titles = append(titles, c.Title)
	}
	return titles
}

func TestBuildNesting(t *testing.T) {
	root := build("class Foo\n  bar = ->\n    1\n")

	if got := childTitles(root); len(got) != 1 || got[0] != "Foo" {
		t.Fatalf("root children = %v, want [Foo]", got)
	}
	foo := root.Children[0]
	if got := childTitles(foo); len(got) != 1 || got[0] != "bar" {
		t.Fatalf("Foo children = %v, want [bar]", got)
	}
	bar := foo.Children[0]
	if got, want := bar.Body(), "  bar = ->\n    1\n"; got != want {
		t.Errorf("bar body = %q, want %q", got, want)
	}
	if bar.Span != (outline.Span{Start: 2, End: 3}) {
		t.Errorf("bar span = %v, want 2-3", bar.Span)
	}
}

func TestBuildUnderIndentedLineClosesBlock(t *testing.T) {
	root := build("foo = ->\n  1\n2\n")

	foo := root.Children[0]
	if got, want := foo.Body(), "foo = ->\n  1\n"; got != want {
		t.Errorf("foo body = %q, want %q", got, want)
	}
	if got, want := root.Body(), "2\n"; got != want {
		t.Errorf("root body = %q, want %q", got, want)
	}
}

func TestBuildFirstLineAfterStarterJoinsBlock(t *testing.T) {
	root := build("  foo = (x) ->\nx + 1\ny\n")

	foo := root.Children[0]
	if got, want := foo.Body(), "  foo = (x) ->\nx + 1\n"; got != want {
		t.Errorf("foo body = %q, want %q", got, want)
	}
	if got, want := root.Body(), "y\n"; got != want {
		t.Errorf("root body = %q, want %q", got, want)
	}
}

func TestBuildMultiLevelCutThenOpen(t *testing.T) {
	src := strings.Join([]string{
		"class A",
		"  class B",
		"    f = ->",
		"      1",
		"  g = ->",
		"    2",
		"h = ->",
		"  3",
		"",
	}, "\n")
	root := build(src)

	if got := strings.Join(childTitles(root), ","); got != "A,h" {
		t.Fatalf("root children = %s, want A,h", got)
	}
	a := root.Children[0]
	if got := strings.Join(childTitles(a), ","); got != "B,g" {
		t.Fatalf("A children = %s, want B,g", got)
	}
	if got := strings.Join(childTitles(a.Children[0]), ","); got != "f" {
		t.Fatalf("B children = %s, want f", got)
	}
}

func TestBuildBlankLinesStayWithTopBlock(t *testing.T) {
	root := build("foo = ->\n  1\n\n# note\nbar = ->\n")

	foo := root.Children[0]
	if got, want := foo.Body(), "foo = ->\n  1\n\n# note\n"; got != want {
		t.Errorf("foo body = %q, want %q", got, want)
	}
}

func TestBuildStarterInsideBlockComment(t *testing.T) {
	root := build("###\nclass Foo\n  x = ->\n###\n")

	if len(root.Children) != 0 {
		t.Errorf("children = %v, want none", childTitles(root))
	}
	if got, want := root.Body(), "###\nclass Foo\n  x = ->\n###\n"; got != want {
		t.Errorf("root body = %q, want %q", got, want)
	}
}

func TestBuildContinuationLineIsNeverAStarter(t *testing.T) {
	root := build("x = 1 + \\\nfoo = ->\n")

	if len(root.Children) != 0 {
		t.Errorf("children = %v, want none", childTitles(root))
	}
}

func TestBuildOnlyBlankLines(t *testing.T) {
	src := "\n# one\n   \n### two\n"
	root := build(src)

	if len(root.Children) != 0 {
		t.Errorf("children = %v, want none", childTitles(root))
	}
	if root.Body() != src {
		t.Errorf("root body = %q, want %q", root.Body(), src)
	}
}

func TestBuildStackInvariant(t *testing.T) {
	src := strings.Join([]string{
		"class A",
		"      deep = ->",
		"  x",
		"        y = ->",
		"    \"open",
		"class Z",
		"  still string\"",
		"  q = ->",
		" r",
		"t",
		"    u = ->",
		"  v = ->",
		"\tw = ->",
		"",
		"# c",
		"end",
	}, "\n")

	lang := newTestLang()
	b := NewBuilder(lang, outline.New("root"), nil)
	for i, line := range SplitLines(src) {
		b.Feed(line)
		stack := b.Stack()
		if len(stack) < 2 {
			t.Fatalf("after line %d: stack has %d frames", i+1, len(stack))
		}
		if stack[0].State.Indent != rootIndent {
			t.Fatalf("after line %d: bottom frame indent = %d", i+1, stack[0].State.Indent)
		}
		for k := 1; k < len(stack); k++ {
			if stack[k].State.Indent < stack[k-1].State.Indent {
				t.Fatalf("after line %d: frame %d indent %d below frame %d indent %d",
					i+1, k, stack[k].State.Indent, k-1, stack[k-1].State.Indent)
			}
		}
	}
}

func TestBuildEveryLineLandsOnce(t *testing.T) {
	src := "class A\n  f = ->\n    1\n  # c\n\n  g = ->\n2\n"
	root := build(src)

	var sb strings.Builder
	root.Walk(func(n *outline.Node) bool {
		sb.WriteString(n.Body())
		return true
	})
	got := sb.String()
	for _, line := range SplitLines(src) {
		if !strings.Contains(got, line) {
			t.Errorf("line %q missing from the tree", line)
		}
	}
	if len(got) != len(src) {
		t.Errorf("tree holds %d bytes, source has %d", len(got), len(src))
	}
}

func TestBuildGeneratedTitles(t *testing.T) {
	root := outline.New("")
	lang := newTestLang()
	var parents []string
	title := func(line string, parent *outline.Node, frame *Target) string {
		parents = append(parents, parent.Title)
		return "T:" + lang.Title(line)
	}
	NewBuilder(lang, root, title).Build("class A\n  f = ->\n")

	if got := strings.Join(parents, ","); got != ",T:A" {
		t.Errorf("parents = %q, want %q", got, ",T:A")
	}
	if root.Children[0].Children[0].Title != "T:f" {
		t.Errorf("title = %q, want T:f", root.Children[0].Children[0].Title)
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		src  string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a\n", []string{"a\n"}},
		{"a\r\nb", []string{"a\r\n", "b"}},
		{"\n\n", []string{"\n", "\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got := SplitLines(tt.src)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") || len(got) != len(tt.want) {
				t.Errorf("SplitLines(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestBuildUnderIndentedLineOpeningString(t *testing.T) {
	root := build("foo = ->\n  1\nx = \"abc\ndef\"\n")

	if got, want := root.Children[0].Body(), "foo = ->\n  1\n"; got != want {
		t.Errorf("foo body = %q, want %q", got, want)
	}
	if got, want := root.Body(), "x = \"abc\ndef\"\n"; got != want {
		t.Errorf("root body = %q, want %q", got, want)
	}
}
