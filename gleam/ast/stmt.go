package ast

import "github.com/orvitpng/glas/gleam/parser"

// StatementExpr is one statement inside a block.
type StatementExpr interface {
	Node
	statementExpr()
}

func CanCastStatementExpr(kind parser.SyntaxKind) bool {
	switch kind {
	case parser.NodeStmtLet, parser.NodeStmtExpr, parser.NodeStmtUse:
		return true
	}
	return false
}

func StatementExprFromNode(n *parser.SyntaxNode) StatementExpr {
	if n == nil {
		return nil
	}
	switch n.Kind() {
	case parser.NodeStmtLet:
		return &StmtLet{node: n}
	case parser.NodeStmtExpr:
		return &StmtExpr{node: n}
	case parser.NodeStmtUse:
		return &StmtUse{node: n}
	}
	return nil
}

// StmtLet is a `let pattern = value` binding.
type StmtLet struct {
	node *parser.SyntaxNode
}

func (s *StmtLet) Syntax() *parser.SyntaxNode { return s.node }
func (s *StmtLet) statementExpr()             {}

func (s *StmtLet) IsAssert() bool {
	return s.node.NthTokenOfKind(parser.TokenAssert, 0) != nil
}

func (s *StmtLet) Pattern() *AsPattern {
	return AsPatternFromNode(firstChild(s.node, parser.NodeAsPattern))
}

func (s *StmtLet) Annotation() TypeExpr {
	for _, child := range s.node.Children() {
		if t := TypeExprFromNode(child); t != nil {
			return t
		}
	}
	return nil
}

func (s *StmtLet) Value() Expr { return nthChildExpr(s.node, 0) }

// StmtExpr is a bare expression statement.
type StmtExpr struct {
	node *parser.SyntaxNode
}

func (s *StmtExpr) Syntax() *parser.SyntaxNode { return s.node }
func (s *StmtExpr) statementExpr()             {}

func (s *StmtExpr) Expr() Expr { return nthChildExpr(s.node, 0) }

// StmtUse is a `use bindings <- callee` statement.
type StmtUse struct {
	node *parser.SyntaxNode
}

func (s *StmtUse) Syntax() *parser.SyntaxNode { return s.node }
func (s *StmtUse) statementExpr()             {}

func (s *StmtUse) Assignments() []*UseAssignment {
	var out []*UseAssignment
	for _, child := range s.node.Children() {
		if child.Kind() == parser.NodeUseAssignment {
			out = append(out, &UseAssignment{node: child})
		}
	}
	return out
}

func (s *StmtUse) Callee() Expr { return nthChildExpr(s.node, 0) }

// UseAssignment is one binding on the left of a use arrow.
type UseAssignment struct {
	node *parser.SyntaxNode
}

func (u *UseAssignment) Syntax() *parser.SyntaxNode { return u.node }

func (u *UseAssignment) Pattern() *AsPattern {
	return AsPatternFromNode(firstChild(u.node, parser.NodeAsPattern))
}

func (u *UseAssignment) Annotation() TypeExpr {
	for _, child := range u.node.Children() {
		if t := TypeExprFromNode(child); t != nil {
			return t
		}
	}
	return nil
}
