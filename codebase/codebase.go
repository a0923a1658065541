package codebase

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/coffeeline/importer"
	"github.com/dhamidi/coffeeline/outline"
)

var log = commonlog.GetLogger("coffeeline.codebase")

// Codebase keeps the outline of every source file below a root directory
// that has a registered language.
type Codebase struct {
	mu      sync.RWMutex
	rootDir string
	files   map[string]*FileInfo
	opts    []importer.Option
}

type FileInfo struct {
	Path     string
	Content  []byte
	Language string
	Outline  *outline.Node
}

type Option func(*Codebase)

// WithImportOptions sets the options every file is imported with.
func WithImportOptions(opts ...importer.Option) Option {
	return func(c *Codebase) {
		c.opts = append(c.opts, opts...)
	}
}

func New(rootDir string, opts ...Option) *Codebase {
	c := &Codebase{
		rootDir: rootDir,
		files:   make(map[string]*FileInfo),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Codebase) RootDir() string {
	return c.rootDir
}

// ScanAll imports every file with a known language below the root.
// Hidden directories are skipped.
func (c *Codebase) ScanAll() error {
	return filepath.Walk(c.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path != c.rootDir && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if _, ok := importer.ForFile(path); ok {
			if err := c.ScanFile(path); err != nil {
				log.Warningf("%s", err)
			}
		}
		return nil
	})
}

func (c *Codebase) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("scan %s: %w", path, err)
	}
	return c.UpdateFile(path, content)
}

// UpdateFile replaces the outline of path with the outline of content.
func (c *Codebase) UpdateFile(path string, content []byte) error {
	lang, ok := importer.ForFile(path)
	if !ok {
		return fmt.Errorf("update %s: no language for %q", path, filepath.Ext(path))
	}

	opts := append([]importer.Option{importer.WithTitle(filepath.Base(path))}, c.opts...)
	root := importer.Import(lang, string(content), opts...)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.files[path] = &FileInfo{
		Path:     path,
		Content:  content,
		Language: lang.Name(),
		Outline:  root,
	}
	log.Debugf("outlined %s: %d nodes", path, len(root.Subtree()))
	return nil
}

func (c *Codebase) RemoveFile(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.files[path]; ok {
		log.Infof("removed %s", path)
	}
	delete(c.files, path)
}

func (c *Codebase) GetFile(path string) *FileInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.files[path]
}

// Outline returns the outline of path, or nil if the file is unknown.
func (c *Codebase) Outline(path string) *outline.Node {
	if f := c.GetFile(path); f != nil {
		return f.Outline
	}
	return nil
}

// Paths returns the known file paths in sorted order.
func (c *Codebase) Paths() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	paths := make([]string, 0, len(c.files))
	for path := range c.files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
