// Package ast provides typed views over the untyped syntax tree produced
// by the parser. Every view is a thin wrapper around a SyntaxNode; the
// wrappers add no state of their own and can be recreated freely.
package ast

import "github.com/orvitpng/glas/gleam/parser"

// Node is implemented by every typed wrapper.
type Node interface {
	Syntax() *parser.SyntaxNode
}

// SourceFile is the root of a parsed module.
type SourceFile struct {
	node *parser.SyntaxNode
}

func SourceFileFromNode(n *parser.SyntaxNode) *SourceFile {
	if n == nil || n.Kind() != parser.NodeSourceFile {
		return nil
	}
	return &SourceFile{node: n}
}

func (f *SourceFile) Syntax() *parser.SyntaxNode { return f.node }

func (f *SourceFile) Statements() []ModuleStatement {
	var out []ModuleStatement
	for _, child := range f.node.Children() {
		if stmt := ModuleStatementFromNode(child); stmt != nil {
			out = append(out, stmt)
		}
	}
	return out
}

// Name is a lower-case identifier introduction.
type Name struct {
	node *parser.SyntaxNode
}

func NameFromNode(n *parser.SyntaxNode) *Name {
	if n == nil || n.Kind() != parser.NodeName {
		return nil
	}
	return &Name{node: n}
}

func (n *Name) Syntax() *parser.SyntaxNode { return n.node }

// Text returns the identifier itself, without surrounding trivia.
func (n *Name) Text() string {
	if tok := n.node.FirstToken(false); tok != nil {
		return tok.Text()
	}
	return ""
}

// TypeName is an upper-case type or constructor name introduction.
type TypeName struct {
	node *parser.SyntaxNode
}

func TypeNameFromNode(n *parser.SyntaxNode) *TypeName {
	if n == nil || n.Kind() != parser.NodeTypeName {
		return nil
	}
	return &TypeName{node: n}
}

func (n *TypeName) Syntax() *parser.SyntaxNode { return n.node }

func (n *TypeName) Text() string {
	if tok := n.node.FirstToken(false); tok != nil {
		return tok.Text()
	}
	return ""
}

// NameRef is a use of an existing name.
type NameRef struct {
	node *parser.SyntaxNode
}

func NameRefFromNode(n *parser.SyntaxNode) *NameRef {
	if n == nil || n.Kind() != parser.NodeNameRef {
		return nil
	}
	return &NameRef{node: n}
}

func (n *NameRef) Syntax() *parser.SyntaxNode { return n.node }

func (n *NameRef) Text() string {
	if tok := n.node.FirstToken(false); tok != nil {
		return tok.Text()
	}
	return ""
}

// Label is an argument or field label.
type Label struct {
	node *parser.SyntaxNode
}

func LabelFromNode(n *parser.SyntaxNode) *Label {
	if n == nil || n.Kind() != parser.NodeLabel {
		return nil
	}
	return &Label{node: n}
}

func (l *Label) Syntax() *parser.SyntaxNode { return l.node }

func (l *Label) Text() string {
	if tok := l.node.FirstToken(false); tok != nil {
		return tok.Text()
	}
	return ""
}

func firstChild(n *parser.SyntaxNode, kind parser.SyntaxKind) *parser.SyntaxNode {
	return n.FirstChildOfKind(kind)
}

func nameOf(n *parser.SyntaxNode) *Name {
	return NameFromNode(firstChild(n, parser.NodeName))
}

func typeNameOf(n *parser.SyntaxNode) *TypeName {
	return TypeNameFromNode(firstChild(n, parser.NodeTypeName))
}
