package codebase

import (
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/coffeeline/importer"
	_ "github.com/dhamidi/coffeeline/importer/coffeescript"
	"github.com/dhamidi/coffeeline/outline"
)

const lsName = "coffeeline"

// LSPServer serves document and workspace symbols built from outlines.
type LSPServer struct {
	codebase     *Codebase
	watcher      *FileWatcher
	handler      protocol.Handler
	server       *server.Server
	version      string
	pollInterval time.Duration
	importOpts   []importer.Option
}

type LSPOption func(*LSPServer)

// WithPollInterval sets how often the workspace is polled for changes.
// Zero disables polling.
func WithPollInterval(d time.Duration) LSPOption {
	return func(ls *LSPServer) {
		ls.pollInterval = d
	}
}

func WithLSPImportOptions(opts ...importer.Option) LSPOption {
	return func(ls *LSPServer) {
		ls.importOpts = append(ls.importOpts, opts...)
	}
}

func NewLSPServer(version string, opts ...LSPOption) *LSPServer {
	ls := &LSPServer{
		version:      version,
		pollInterval: DefaultPollInterval,
	}
	for _, opt := range opts {
		opt(ls)
	}

	ls.handler = protocol.Handler{
		Initialize:                 ls.initialize,
		Initialized:                ls.initialized,
		Shutdown:                   ls.shutdown,
		SetTrace:                   ls.setTrace,
		TextDocumentDidOpen:        ls.textDocumentDidOpen,
		TextDocumentDidChange:      ls.textDocumentDidChange,
		TextDocumentDidClose:       ls.textDocumentDidClose,
		TextDocumentDidSave:        ls.textDocumentDidSave,
		TextDocumentDocumentSymbol: ls.textDocumentDocumentSymbol,
		WorkspaceSymbol:            ls.workspaceSymbol,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	rootDir := "."
	if params.RootPath != nil && *params.RootPath != "" {
		rootDir = *params.RootPath
	} else if params.RootURI != nil && *params.RootURI != "" {
		if path, err := uriToPath(*params.RootURI); err == nil {
			rootDir = path
		}
	}

	ls.codebase = New(rootDir, WithImportOptions(ls.importOpts...))
	log.Infof("workspace root %s", rootDir)

	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	if ls.pollInterval > 0 {
		ls.watcher = NewFileWatcher(ls.codebase, ls.pollInterval)
		ls.watcher.Start()
		return nil
	}
	return ls.codebase.ScanAll()
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	if ls.watcher != nil {
		ls.watcher.Stop()
		ls.watcher = nil
	}
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	ls.update(path, []byte(params.TextDocument.Text))
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			ls.update(path, []byte(textChange.Text))
		}
	}
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if params.Text != nil {
		ls.update(path, []byte(*params.Text))
	} else if err := ls.codebase.ScanFile(path); err != nil {
		log.Warningf("%s", err)
	}
	return nil
}

func (ls *LSPServer) update(path string, content []byte) {
	if err := ls.codebase.UpdateFile(path, content); err != nil {
		log.Debugf("%s", err)
	}
}

func (ls *LSPServer) textDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	file := ls.codebase.GetFile(path)
	if file == nil {
		return []protocol.DocumentSymbol{}, nil
	}
	log.Debugf("documentSymbol %s", path)
	return DocumentSymbols(file), nil
}

func (ls *LSPServer) workspaceSymbol(ctx *glsp.Context, params *protocol.WorkspaceSymbolParams) ([]protocol.SymbolInformation, error) {
	log.Debugf("workspace/symbol %q", params.Query)
	var result []protocol.SymbolInformation
	for _, path := range ls.codebase.Paths() {
		if file := ls.codebase.GetFile(path); file != nil {
			result = append(result, WorkspaceSymbols(file, params.Query)...)
		}
	}
	return result, nil
}

// DocumentSymbols maps the outline of file onto LSP document symbols.
func DocumentSymbols(file *FileInfo) []protocol.DocumentSymbol {
	lines := strings.Split(string(file.Content), "\n")
	return childSymbols(file.Outline, lines)
}

func childSymbols(parent *outline.Node, lines []string) []protocol.DocumentSymbol {
	symbols := make([]protocol.DocumentSymbol, 0, len(parent.Children))
	for _, n := range parent.Children {
		symbols = append(symbols, protocol.DocumentSymbol{
			Name:           symbolName(n),
			Kind:           symbolKind(n),
			Range:          nodeRange(n, lines),
			SelectionRange: selectionRange(n, lines),
			Children:       childSymbols(n, lines),
		})
	}
	return symbols
}

// WorkspaceSymbols lists the nodes of file whose name contains query,
// ignoring case.
func WorkspaceSymbols(file *FileInfo, query string) []protocol.SymbolInformation {
	lines := strings.Split(string(file.Content), "\n")
	uri := pathToURI(file.Path)
	query = strings.ToLower(query)

	var result []protocol.SymbolInformation
	for _, n := range file.Outline.Subtree() {
		name := symbolName(n)
		if !strings.Contains(strings.ToLower(name), query) {
			continue
		}
		info := protocol.SymbolInformation{
			Name:     name,
			Kind:     symbolKind(n),
			Location: protocol.Location{URI: uri, Range: nodeRange(n, lines)},
		}
		if p := n.Parent(); p != nil && !p.IsRoot() {
			container := symbolName(p)
			info.ContainerName = &container
		}
		result = append(result, info)
	}
	return result
}

func symbolName(n *outline.Node) string {
	if n.IsSectionRef() {
		title := strings.TrimSpace(n.Title)
		return strings.TrimSpace(title[2 : len(title)-2])
	}
	return n.Title
}

func symbolKind(n *outline.Node) protocol.SymbolKind {
	if isClass(n) {
		return protocol.SymbolKindClass
	}
	if p := n.Parent(); p != nil && isClass(p) {
		return protocol.SymbolKindMethod
	}
	return protocol.SymbolKindFunction
}

// isClass reports whether the first code line of n declares a class.
func isClass(n *outline.Node) bool {
	for _, line := range n.Lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		return trimmed == "class" || strings.HasPrefix(trimmed, "class ") || strings.HasPrefix(trimmed, "class\t")
	}
	return false
}

// nodeRange covers the lines of n and all of its descendants.
func nodeRange(n *outline.Node, lines []string) protocol.Range {
	start, end := n.Span.Start, n.Span.End
	for _, d := range n.Subtree() {
		if d.Span.End > end {
			end = d.Span.End
		}
	}
	if start < 1 {
		start = 1
	}
	if end < start {
		end = start
	}
	return protocol.Range{
		Start: protocol.Position{Line: protocol.UInteger(start - 1)},
		End:   protocol.Position{Line: protocol.UInteger(end - 1), Character: lineLength(lines, end)},
	}
}

func selectionRange(n *outline.Node, lines []string) protocol.Range {
	start := n.Span.Start
	if start < 1 {
		start = 1
	}
	return protocol.Range{
		Start: protocol.Position{Line: protocol.UInteger(start - 1)},
		End:   protocol.Position{Line: protocol.UInteger(start - 1), Character: lineLength(lines, start)},
	}
}

func lineLength(lines []string, line int) protocol.UInteger {
	if line < 1 || line > len(lines) {
		return 0
	}
	return protocol.UInteger(len(strings.TrimRight(lines[line-1], "\r")))
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func pathToURI(path string) protocol.DocumentUri {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return protocol.DocumentUri((&url.URL{Scheme: "file", Path: filepath.ToSlash(path)}).String())
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
