package ast

import "github.com/orvitpng/glas/gleam/parser"

// ConstantExpr is the restricted expression grammar of module constants.
type ConstantExpr interface {
	Node
	constantExpr()
}

func CanCastConstantExpr(kind parser.SyntaxKind) bool {
	switch kind {
	case parser.NodeLiteral, parser.NodeConstantTuple,
		parser.NodeConstantList, parser.NodeNameRef:
		return true
	}
	return false
}

func ConstantExprFromNode(n *parser.SyntaxNode) ConstantExpr {
	if n == nil {
		return nil
	}
	switch n.Kind() {
	case parser.NodeLiteral:
		return &Literal{node: n}
	case parser.NodeConstantTuple:
		return &ConstantTuple{node: n}
	case parser.NodeConstantList:
		return &ConstantList{node: n}
	case parser.NodeNameRef:
		return &ConstantRef{node: n}
	}
	return nil
}

func childConstantExprs(n *parser.SyntaxNode) []ConstantExpr {
	var out []ConstantExpr
	for _, child := range n.Children() {
		if c := ConstantExprFromNode(child); c != nil {
			out = append(out, c)
		}
	}
	return out
}

// ConstantTuple is a `#( ... )` constant.
type ConstantTuple struct {
	node *parser.SyntaxNode
}

func (t *ConstantTuple) Syntax() *parser.SyntaxNode { return t.node }
func (t *ConstantTuple) constantExpr()              {}

func (t *ConstantTuple) Elements() []ConstantExpr { return childConstantExprs(t.node) }

// ConstantList is a `[ ... ]` constant.
type ConstantList struct {
	node *parser.SyntaxNode
}

func (l *ConstantList) Syntax() *parser.SyntaxNode { return l.node }
func (l *ConstantList) constantExpr()              {}

func (l *ConstantList) Elements() []ConstantExpr { return childConstantExprs(l.node) }

// ConstantRef is a reference to another constant or constructor.
type ConstantRef struct {
	node *parser.SyntaxNode
}

func (r *ConstantRef) Syntax() *parser.SyntaxNode { return r.node }
func (r *ConstantRef) constantExpr()              {}

func (r *ConstantRef) Text() string {
	if tok := r.node.FirstToken(false); tok != nil {
		return tok.Text()
	}
	return ""
}
