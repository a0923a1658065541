package importer

import (
	"github.com/dhamidi/coffeeline/outline"
)

type options struct {
	title      string
	directives bool
	titleFunc  TitleFunc
	cleanup    func(*outline.Node)
}

type Option func(*options)

// WithTitle sets the headline of the root node.
func WithTitle(title string) Option {
	return func(o *options) {
		o.title = title
	}
}

// WithDirectives controls whether parent bodies receive @others and
// section reference lines for their children. It is on by default.
func WithDirectives(on bool) Option {
	return func(o *options) {
		o.directives = on
	}
}

// WithTitleFunc replaces the default headline hook.
func WithTitleFunc(fn TitleFunc) Option {
	return func(o *options) {
		o.titleFunc = fn
	}
}

// WithCleanup replaces the generic cleanup run after the post-pass.
func WithCleanup(fn func(*outline.Node)) Option {
	return func(o *options) {
		o.cleanup = fn
	}
}

func WithoutCleanup() Option {
	return func(o *options) {
		o.cleanup = nil
	}
}

// Import builds the outline of src. It accepts any input.
func Import(lang Language, src string, opts ...Option) *outline.Node {
	o := options{
		directives: true,
		cleanup:    outline.Cleanup,
	}
	for _, opt := range opts {
		opt(&o)
	}

	title := o.titleFunc
	if title == nil {
		title = Headlines(lang, o.directives)
	}

	root := outline.New(o.title)
	lines := SplitLines(src)
	b := NewBuilder(lang, root, title)
	for _, line := range lines {
		b.Feed(line)
	}
	PostPass(root, lang)
	if o.cleanup != nil {
		o.cleanup(root)
	}

	log.Debugf("imported %d lines into %d nodes", len(lines), len(root.Subtree())+1)
	return root
}
