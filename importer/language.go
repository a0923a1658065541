package importer

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Language is what the builder needs to know about one source language.
type Language interface {
	Name() string
	Extensions() []string
	// Scan returns the state of line given the state of the line before.
	Scan(line string, prev ScanState) ScanState
	// IsBlockStarter reports whether a scanned line opens a block.
	IsBlockStarter(state ScanState) bool
	// IsCommentLine reports whether line holds nothing but a comment.
	IsCommentLine(line string) bool
	// Title names the block opened by a starter line.
	Title(line string) string
	TabWidth() int
}

var (
	registryMu sync.RWMutex
	languages  = map[string]Language{}
	extensions = map[string]string{}
)

// Register makes lang available by name and by its extensions. It
// replaces a language registered under the same name.
func Register(lang Language) {
	registryMu.Lock()
	defer registryMu.Unlock()

	languages[lang.Name()] = lang
	for _, ext := range lang.Extensions() {
		extensions[strings.ToLower(ext)] = lang.Name()
	}
}

// RegisterExtension maps ext to the language registered as name.
func RegisterExtension(ext, name string) error {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, ok := languages[name]; !ok {
		return fmt.Errorf("register extension %s: unknown language %q", ext, name)
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	extensions[strings.ToLower(ext)] = name
	return nil
}

func Lookup(name string) (Language, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	lang, ok := languages[name]
	return lang, ok
}

// ForFile picks the language registered for the extension of path.
func ForFile(path string) (Language, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	name, ok := extensions[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, false
	}
	lang, ok := languages[name]
	return lang, ok
}

// Languages returns the registered language names in sorted order.
func Languages() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	var names []string
	for name := range languages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
