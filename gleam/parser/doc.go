// Package parser provides a lossless, error-tolerant parser for Gleam
// source code.
//
// # Overview
//
// The parser turns source text into a concrete syntax tree that preserves
// every byte of the input, including whitespace and comments. It is
// designed for IDE-like tooling where incomplete or malformed input is
// the common case: parsing is total, every input produces a tree plus a
// list of errors.
//
// # Architecture
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Input     │────▶│   Lexer     │────▶│   Parser    │
//	│  (string)   │     │  (tokens)   │     │  (events)   │
//	└─────────────┘     └─────────────┘     └─────────────┘
//	                                               │
//	                                               ▼
//	                                        ┌─────────────┐
//	                                        │ treeBuilder │
//	                                        │ (green tree)│
//	                                        └─────────────┘
//
// The grammar rules never build tree nodes directly. They emit a flat log
// of open/close/advance events over the trivia-free token stream; the
// tree builder then replays the log against the raw token stream,
// weaving whitespace and comments back in so that the tree renders the
// input byte for byte.
//
// # Trees
//
// The tree comes in two layers. GreenNode and GreenToken are immutable
// and position-independent, storing only widths; they can be shared
// between trees. SyntaxNode and SyntaxToken are lightweight cursors over
// the green layer that carry absolute offsets and parent links.
//
// # Error Recovery
//
// The parser never fails. Unexpected tokens are wrapped in Error nodes
// and skipped, and each grammar rule stops at tokens that start the
// constructs its callers know how to parse, so a malformed declaration
// does not swallow the ones that follow it.
//
// # Entry Point
//
//	parse := parser.ParseModule(src)
//	root := parse.Root()
//	for _, err := range parse.Errors() { ... }
//
// A Parse and the trees it exposes are immutable and safe for concurrent
// readers.
package parser
