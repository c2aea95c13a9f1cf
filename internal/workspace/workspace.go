// Package workspace owns every concern a bare *analyzer.Analyzer stays free
// of (§5, §B of SPEC_FULL.md): reading source off disk, resolving a module
// name to a file, and memoizing both in-process (so `import cycle` is
// detected rather than recursing forever) and on disk (§6 of the cache
// scheme lives in cache.go). It is the analyzer.Importer cmd/orcinuscc and
// the analyzer itself are wired against.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/orcinuscc/orcinus/internal/analyzer"
	"github.com/orcinuscc/orcinus/internal/builtins"
	"github.com/orcinuscc/orcinus/internal/config"
	"github.com/orcinuscc/orcinus/internal/diagnostics"
	"github.com/orcinuscc/orcinus/internal/pipeline"
	"github.com/orcinuscc/orcinus/internal/symbols"
	"github.com/orcinuscc/orcinus/internal/utils"
)

// Document is one source file's load state: its raw text plus whatever the
// pipeline produced for it, kept around so the CLI can report diagnostics
// against the file that caused them (§7).
type Document struct {
	URI     string
	Source  string
	Module  *symbols.Module
	Context *pipeline.Context
}

// loadState distinguishes "never touched" from "currently being loaded"
// (an import cycle) from "loaded, here's the result".
type loadState int

const (
	notLoaded loadState = iota
	loading
	loaded
)

// Workspace resolves module names to files rooted at a single entry
// directory, and is the one analyzer.Importer shared across every module
// analyzed in a run (§5): a module imported from two different files is
// analyzed exactly once.
type Workspace struct {
	root     string
	cache    *treeCache
	builtins *symbols.Module

	diags *diagnostics.Manager

	states    map[string]loadState
	documents map[string]*Document
}

// New creates a Workspace rooted at root (the entry file's directory),
// backed by a sqlite tree cache at cachePath ("" disables the disk tier).
// The builtins module is loaded once here, so every subsequent Analyze call
// shares the identical *symbols.Module (§B.3 of SPEC_FULL.md).
func New(root, cachePath string, diags *diagnostics.Manager) (*Workspace, error) {
	cache, err := openCache(cachePath)
	if err != nil {
		return nil, fmt.Errorf("workspace: opening tree cache: %w", err)
	}
	return &Workspace{
		root:      root,
		cache:     cache,
		builtins:  builtins.Load(),
		diags:     diags,
		states:    make(map[string]loadState),
		documents: make(map[string]*Document),
	}, nil
}

// Close releases the disk cache.
func (w *Workspace) Close() error {
	return w.cache.close()
}

// Load implements analyzer.Importer: resolves moduleName to a file under
// root, analyzes it (reusing a cached tree when the source is unchanged),
// and memoizes the result so a module imported from several files is only
// ever analyzed once per run.
func (w *Workspace) Load(moduleName string) (*symbols.Module, error) {
	path := w.resolvePath(moduleName)

	switch w.states[path] {
	case loaded:
		return w.documents[path].Module, nil
	case loading:
		return nil, fmt.Errorf("import cycle detected loading %q", moduleName)
	}

	w.states[path] = loading
	doc, err := w.analyzeFile(path, moduleName)
	if err != nil {
		delete(w.states, path)
		return nil, err
	}
	w.states[path] = loaded
	w.documents[path] = doc
	return doc.Module, nil
}

// LoadEntry analyzes the workspace's entry file directly (the file named on
// the command line, as opposed to one reached via an import).
func (w *Workspace) LoadEntry(path string) (*Document, error) {
	moduleName := utils.ExtractModuleName(path)
	doc, err := w.analyzeFile(path, moduleName)
	if err != nil {
		return nil, err
	}
	w.states[path] = loaded
	w.documents[path] = doc
	return doc, nil
}

func (w *Workspace) resolvePath(moduleName string) string {
	resolved := utils.ResolveImportPath(w.root, moduleName)
	for _, ext := range config.SourceFileExtensions {
		candidate := filepath.Join(w.root, resolved+ext)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return filepath.Join(w.root, resolved+config.SourceFileExtensions[0])
}

func (w *Workspace) analyzeFile(path, moduleName string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("workspace: reading %q: %w", path, err)
	}
	source := string(data)

	ctx := &pipeline.Context{Filename: path, ModuleName: moduleName, Source: source, Diagnostics: w.diags}

	if tree, ok := w.cache.lookup(source); ok {
		ctx.Tree = tree
	} else {
		ctx = pipeline.New(pipeline.LexStage{}, pipeline.ParseStage{}).Run(ctx)
		w.cache.store(source, ctx.Tree)
	}

	analyze := pipeline.AnalyzeStage{Importer: w, Builtins: w.builtins}
	ctx = pipeline.New(analyze).Run(ctx)

	return &Document{URI: path, Source: source, Module: ctx.Module, Context: ctx}, nil
}

var _ analyzer.Importer = (*Workspace)(nil)
