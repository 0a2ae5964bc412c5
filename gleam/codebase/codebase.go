// Package codebase maintains the set of parsed Gleam source files for a
// project and serves syntax-level queries over them.
package codebase

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/orvitpng/glas/gleam/ast"
	"github.com/orvitpng/glas/gleam/parser"
)

type Codebase struct {
	mu      sync.RWMutex
	rootDir string
	files   map[string]*FileInfo
}

// FileInfo is the cached parse of one source file. All fields are
// immutable once stored; updates replace the whole entry.
type FileInfo struct {
	Path    string
	Content []byte
	Parse   *parser.Parse
	Module  *ast.SourceFile
	Lines   *LineIndex
}

func New(rootDir string) *Codebase {
	return &Codebase{
		rootDir: rootDir,
		files:   make(map[string]*FileInfo),
	}
}

func (c *Codebase) RootDir() string {
	return c.rootDir
}

// ScanAll parses every .gleam file under the root directory.
func (c *Codebase) ScanAll() error {
	return filepath.Walk(c.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if filepath.Ext(path) == ".gleam" {
			c.ScanFile(path)
		}
		return nil
	})
}

func (c *Codebase) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	c.UpdateFile(path, content)
	return nil
}

// UpdateFile reparses content and replaces the cached entry for path.
func (c *Codebase) UpdateFile(path string, content []byte) {
	src := string(content)
	parse := parser.ParseModule(src)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.files[path] = &FileInfo{
		Path:    path,
		Content: content,
		Parse:   parse,
		Module:  ast.SourceFileFromNode(parse.Root()),
		Lines:   NewLineIndex(src),
	}
}

func (c *Codebase) RemoveFile(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.files, path)
}

func (c *Codebase) GetFile(path string) *FileInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.files[path]
}

func (c *Codebase) Files() []*FileInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*FileInfo, 0, len(c.files))
	for _, f := range c.files {
		out = append(out, f)
	}
	return out
}

// Diagnostic is one syntax error located by line and column.
type Diagnostic struct {
	Path    string
	Range   parser.TextRange
	Start   Position
	End     Position
	Message string
}

// Diagnostics returns the syntax errors of one file, in source order.
func (c *Codebase) Diagnostics(path string) []Diagnostic {
	f := c.GetFile(path)
	if f == nil {
		return nil
	}
	return fileDiagnostics(f)
}

func fileDiagnostics(f *FileInfo) []Diagnostic {
	var out []Diagnostic
	for _, err := range f.Parse.Errors() {
		out = append(out, Diagnostic{
			Path:    f.Path,
			Range:   err.Range,
			Start:   f.Lines.PositionFor(err.Range.Start),
			End:     f.Lines.PositionFor(err.Range.End),
			Message: err.Message(),
		})
	}
	return out
}

// Symbol is a top-level declaration for outline and navigation queries.
type Symbol struct {
	Name  string
	Kind  SymbolKind
	Range parser.TextRange
	// NameRange covers just the declared name.
	NameRange parser.TextRange
	Doc       string
}

type SymbolKind int

const (
	SymbolFunction SymbolKind = iota
	SymbolConstant
	SymbolType
	SymbolTypeAlias
	SymbolImport
)

// Symbols returns the top-level declarations of one file, in source order.
func (c *Codebase) Symbols(path string) []Symbol {
	f := c.GetFile(path)
	if f == nil || f.Module == nil {
		return nil
	}

	var out []Symbol
	for _, stmt := range f.Module.Statements() {
		if sym, ok := symbolFor(stmt); ok {
			out = append(out, sym)
		}
	}
	return out
}

func symbolFor(stmt ast.ModuleStatement) (Symbol, bool) {
	switch s := stmt.(type) {
	case *ast.Function:
		name := s.Name()
		if name == nil {
			return Symbol{}, false
		}
		return Symbol{
			Name:      name.Text(),
			Kind:      SymbolFunction,
			Range:     s.Syntax().Range(),
			NameRange: name.Syntax().Range(),
			Doc:       s.DocComment(),
		}, true
	case *ast.ModuleConstant:
		name := s.Name()
		if name == nil {
			return Symbol{}, false
		}
		return Symbol{
			Name:      name.Text(),
			Kind:      SymbolConstant,
			Range:     s.Syntax().Range(),
			NameRange: name.Syntax().Range(),
			Doc:       s.DocComment(),
		}, true
	case *ast.Adt:
		name := s.Name()
		if name == nil {
			return Symbol{}, false
		}
		return Symbol{
			Name:      name.Text(),
			Kind:      SymbolType,
			Range:     s.Syntax().Range(),
			NameRange: name.Syntax().Range(),
			Doc:       s.DocComment(),
		}, true
	case *ast.CustomTypeAlias:
		name := s.Name()
		if name == nil {
			return Symbol{}, false
		}
		return Symbol{
			Name:      name.Text(),
			Kind:      SymbolTypeAlias,
			Range:     s.Syntax().Range(),
			NameRange: name.Syntax().Range(),
		}, true
	}
	return Symbol{}, false
}

// SymbolAt returns the top-level symbol whose name covers the offset.
func (c *Codebase) SymbolAt(path string, offset uint32) (Symbol, bool) {
	for _, sym := range c.Symbols(path) {
		if sym.NameRange.Contains(offset) {
			return sym, true
		}
	}
	return Symbol{}, false
}
