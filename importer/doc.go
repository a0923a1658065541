// Package importer builds outlines of indentation-significant source text
// line by line, without a lexer or a grammar.
//
// # Overview
//
// Each line is scanned for the lexical context it ends in (string, block
// comment, backslash continuation) and for its indentation. A block
// starter line (a class or a function assignment in CoffeeScript) opens
// a child node; lines indented at or left of an open block's starter
// close that block. Everything else is body text of the innermost open
// block.
//
// # Architecture
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Lines     │────▶│   Scanner   │────▶│   Builder   │────▶│  PostPass   │
//	│  (string)   │     │ (ScanState) │     │   (stack)   │     │  (bodies)   │
//	└─────────────┘     └─────────────┘     └─────────────┘     └─────────────┘
//	                           │                   │
//	                           ▼                   ▼
//	                    ┌─────────────┐     ┌─────────────┐
//	                    │    Table    │     │  Classify   │
//	                    │   (rules)   │     │ (Decision)  │
//	                    └─────────────┘     └─────────────┘
//
// # Scanning
//
// A Table is an ordered list of Rules. At each offset of a line the first
// rule that applies in the current Context and matches there is taken;
// otherwise the offset advances by one byte. Outside any context a rule
// may enter one and adjust the bracket counts; inside a context only the
// rule that closes it and rules marked Anywhere (escapes, continuations)
// apply. Line comments end with their line, every other context carries
// over to the next line.
//
// # Building
//
// The Builder keeps a stack of Targets. The bottom frame owns the root
// node and sits at indent -1, so it is never popped; it starts out pushed
// twice and is pushed again whenever a cut leaves it alone.
//
// For every line, Classify maps (LineKind, ScanState, top Target) to one
// of four decisions:
//
//	Blank, InContext           Append
//	Starter  indent >  top     Open
//	Starter  indent <= top     CutBackThenOpen
//	Code     indent >  top     Append
//	Code     first after open  Append
//	Code     otherwise         CutBackThenAppend
//
// A cut pops every frame opened deeper than the line and at most one frame
// opened at the same indent.
//
// # Directives
//
// With directives on (the default), a parent's body records where its
// children go. The first child writes "@others" at the child's indent.
// If the parent later receives a line after its children, each further
// child is placed by a "<< title >>" section reference instead.
//
// # Post-pass
//
// After the build every body is de-indented, trailing comments move to
// the start of the following sibling, and the cleanup hook (by default
// outline.Cleanup) normalizes headlines and drops empty leaves.
//
// # Usage
//
//	lang, _ := importer.ForFile("app.coffee")
//	root := importer.Import(lang, src, importer.WithTitle("app.coffee"))
//	fmt.Print(root.StringWithBodies())
//
// The importer never rejects input. Broken invariants of the builder
// itself (an empty stack, a scan step that does not advance) panic.
package importer
