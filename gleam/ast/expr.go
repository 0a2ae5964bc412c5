package ast

import "github.com/orvitpng/glas/gleam/parser"

// Expr is any expression form.
type Expr interface {
	Node
	expr()
}

func CanCastExpr(kind parser.SyntaxKind) bool {
	switch kind {
	case parser.NodeLiteral, parser.NodeVariable, parser.NodeHole,
		parser.NodeTuple, parser.NodeList, parser.NodeExprSpread,
		parser.NodeBitString, parser.NodeBlock, parser.NodeCase,
		parser.NodeLambda, parser.NodeBinaryOp, parser.NodeUnaryOp,
		parser.NodePipe, parser.NodeExprCall, parser.NodeVariantConstructor,
		parser.NodeFieldAccess, parser.NodeTupleIndex,
		parser.NodeTodo, parser.NodePanic:
		return true
	}
	return false
}

func ExprFromNode(n *parser.SyntaxNode) Expr {
	if n == nil {
		return nil
	}
	switch n.Kind() {
	case parser.NodeLiteral:
		return &Literal{node: n}
	case parser.NodeVariable:
		return &Variable{node: n}
	case parser.NodeHole:
		return &Hole{node: n}
	case parser.NodeTuple:
		return &Tuple{node: n}
	case parser.NodeList:
		return &List{node: n}
	case parser.NodeExprSpread:
		return &ExprSpread{node: n}
	case parser.NodeBitString:
		return &BitString{node: n}
	case parser.NodeBlock:
		return &Block{node: n}
	case parser.NodeCase:
		return &Case{node: n}
	case parser.NodeLambda:
		return &Lambda{node: n}
	case parser.NodeBinaryOp:
		return &BinaryOp{node: n}
	case parser.NodeUnaryOp:
		return &UnaryOp{node: n}
	case parser.NodePipe:
		return &Pipe{node: n}
	case parser.NodeExprCall:
		return &ExprCall{node: n}
	case parser.NodeVariantConstructor:
		return &VariantConstructor{node: n}
	case parser.NodeFieldAccess:
		return &FieldAccess{node: n}
	case parser.NodeTupleIndex:
		return &TupleIndex{node: n}
	case parser.NodeTodo:
		return &Todo{node: n}
	case parser.NodePanic:
		return &Panic{node: n}
	}
	return nil
}

// childExprs collects the direct expression children of a node in order.
func childExprs(n *parser.SyntaxNode) []Expr {
	var out []Expr
	for _, child := range n.Children() {
		if e := ExprFromNode(child); e != nil {
			out = append(out, e)
		}
	}
	return out
}

func nthChildExpr(n *parser.SyntaxNode, nth int) Expr {
	for _, child := range n.Children() {
		if e := ExprFromNode(child); e != nil {
			if nth == 0 {
				return e
			}
			nth--
		}
	}
	return nil
}

// Literal is an int, float, string, or boolean literal.
type Literal struct {
	node *parser.SyntaxNode
}

func (l *Literal) Syntax() *parser.SyntaxNode { return l.node }
func (l *Literal) expr()                      {}
func (l *Literal) pattern()                   {}
func (l *Literal) constantExpr()              {}

// Token returns the literal's token.
func (l *Literal) Token() *parser.SyntaxToken {
	return l.node.FirstToken(false)
}

// Variable is a reference to a bound name.
type Variable struct {
	node *parser.SyntaxNode
}

func (v *Variable) Syntax() *parser.SyntaxNode { return v.node }
func (v *Variable) expr()                      {}

func (v *Variable) NameRef() *NameRef {
	return NameRefFromNode(firstChild(v.node, parser.NodeNameRef))
}

// Hole is a discard `_name` in expression position.
type Hole struct {
	node *parser.SyntaxNode
}

func (h *Hole) Syntax() *parser.SyntaxNode { return h.node }
func (h *Hole) expr()                      {}
func (h *Hole) pattern()                   {}

// Tuple is a `#( ... )` expression.
type Tuple struct {
	node *parser.SyntaxNode
}

func (t *Tuple) Syntax() *parser.SyntaxNode { return t.node }
func (t *Tuple) expr()                      {}

func (t *Tuple) Elements() []Expr { return childExprs(t.node) }

// List is a `[ ... ]` expression, possibly ending in a spread.
type List struct {
	node *parser.SyntaxNode
}

func (l *List) Syntax() *parser.SyntaxNode { return l.node }
func (l *List) expr()                      {}

func (l *List) Elements() []Expr { return childExprs(l.node) }

func (l *List) Spread() *ExprSpread {
	if n := firstChild(l.node, parser.NodeExprSpread); n != nil {
		return &ExprSpread{node: n}
	}
	return nil
}

// ExprSpread is the `..rest` tail of a list expression.
type ExprSpread struct {
	node *parser.SyntaxNode
}

func (s *ExprSpread) Syntax() *parser.SyntaxNode { return s.node }
func (s *ExprSpread) expr()                      {}

func (s *ExprSpread) Expr() Expr { return nthChildExpr(s.node, 0) }

// BitString is a `<< ... >>` expression.
type BitString struct {
	node *parser.SyntaxNode
}

func (b *BitString) Syntax() *parser.SyntaxNode { return b.node }
func (b *BitString) expr()                      {}

func (b *BitString) Segments() []*BitStringSegment {
	var out []*BitStringSegment
	for _, child := range b.node.Children() {
		if child.Kind() == parser.NodeBitStringSegment {
			out = append(out, &BitStringSegment{node: child})
		}
	}
	return out
}

type BitStringSegment struct {
	node *parser.SyntaxNode
}

func (s *BitStringSegment) Syntax() *parser.SyntaxNode { return s.node }

func (s *BitStringSegment) Value() Expr { return nthChildExpr(s.node, 0) }

// Block is a brace-delimited statement sequence.
type Block struct {
	node *parser.SyntaxNode
}

func (b *Block) Syntax() *parser.SyntaxNode { return b.node }
func (b *Block) expr()                      {}

func (b *Block) Statements() []StatementExpr {
	var out []StatementExpr
	for _, child := range b.node.Children() {
		if s := StatementExprFromNode(child); s != nil {
			out = append(out, s)
		}
	}
	return out
}

// Case is a `case subjects { clauses }` expression.
type Case struct {
	node *parser.SyntaxNode
}

func (c *Case) Syntax() *parser.SyntaxNode { return c.node }
func (c *Case) expr()                      {}

func (c *Case) Subjects() []Expr { return childExprs(c.node) }

func (c *Case) Clauses() []*Clause {
	var out []*Clause
	for _, child := range c.node.Children() {
		if child.Kind() == parser.NodeClause {
			out = append(out, &Clause{node: child})
		}
	}
	return out
}

// Clause is one arm of a case expression.
type Clause struct {
	node *parser.SyntaxNode
}

func (c *Clause) Syntax() *parser.SyntaxNode { return c.node }

func (c *Clause) Patterns() []*AlternativePattern {
	var out []*AlternativePattern
	for _, child := range c.node.Children() {
		if child.Kind() == parser.NodeAlternativePattern {
			out = append(out, &AlternativePattern{node: child})
		}
	}
	return out
}

func (c *Clause) Guard() *PatternGuard {
	if n := firstChild(c.node, parser.NodePatternGuard); n != nil {
		return &PatternGuard{node: n}
	}
	return nil
}

func (c *Clause) Body() Expr { return nthChildExpr(c.node, 0) }

type PatternGuard struct {
	node *parser.SyntaxNode
}

func (g *PatternGuard) Syntax() *parser.SyntaxNode { return g.node }

func (g *PatternGuard) Expr() Expr { return nthChildExpr(g.node, 0) }

// Lambda is an anonymous `fn(...) { ... }` expression.
type Lambda struct {
	node *parser.SyntaxNode
}

func (l *Lambda) Syntax() *parser.SyntaxNode { return l.node }
func (l *Lambda) expr()                      {}

func (l *Lambda) Params() []*Param {
	list := firstChild(l.node, parser.NodeParamList)
	if list == nil {
		return nil
	}
	var out []*Param
	for _, child := range list.Children() {
		if child.Kind() == parser.NodeParam {
			out = append(out, &Param{node: child})
		}
	}
	return out
}

func (l *Lambda) Body() *Block {
	if b := firstChild(l.node, parser.NodeBlock); b != nil {
		return &Block{node: b}
	}
	return nil
}

// BinaryOp is an infix operator application.
type BinaryOp struct {
	node *parser.SyntaxNode
}

func (b *BinaryOp) Syntax() *parser.SyntaxNode { return b.node }
func (b *BinaryOp) expr()                      {}

func (b *BinaryOp) Lhs() Expr { return nthChildExpr(b.node, 0) }
func (b *BinaryOp) Rhs() Expr { return nthChildExpr(b.node, 1) }

// OpToken returns the operator token between the operands.
func (b *BinaryOp) OpToken() *parser.SyntaxToken {
	for _, tok := range b.node.Tokens() {
		if _, _, ok := parser.InfixBindingPower(tok.Kind()); ok {
			return tok
		}
	}
	return nil
}

// UnaryOp is a prefix `-` or `!` application.
type UnaryOp struct {
	node *parser.SyntaxNode
}

func (u *UnaryOp) Syntax() *parser.SyntaxNode { return u.node }
func (u *UnaryOp) expr()                      {}

func (u *UnaryOp) Operand() Expr { return nthChildExpr(u.node, 0) }

func (u *UnaryOp) OpToken() *parser.SyntaxToken {
	return u.node.FirstToken(false)
}

// Pipe is a `lhs |> rhs` expression.
type Pipe struct {
	node *parser.SyntaxNode
}

func (p *Pipe) Syntax() *parser.SyntaxNode { return p.node }
func (p *Pipe) expr()                      {}

func (p *Pipe) Lhs() Expr { return nthChildExpr(p.node, 0) }
func (p *Pipe) Rhs() Expr { return nthChildExpr(p.node, 1) }

// ExprCall is a call `callee(args)`.
type ExprCall struct {
	node *parser.SyntaxNode
}

func (c *ExprCall) Syntax() *parser.SyntaxNode { return c.node }
func (c *ExprCall) expr()                      {}

func (c *ExprCall) Callee() Expr { return nthChildExpr(c.node, 0) }

func (c *ExprCall) Args() []*Arg {
	list := firstChild(c.node, parser.NodeArgList)
	if list == nil {
		return nil
	}
	var out []*Arg
	for _, child := range list.Children() {
		if child.Kind() == parser.NodeArg {
			out = append(out, &Arg{node: child})
		}
	}
	return out
}

// Arg is one call argument, optionally labeled.
type Arg struct {
	node *parser.SyntaxNode
}

func (a *Arg) Syntax() *parser.SyntaxNode { return a.node }

func (a *Arg) Label() *Label {
	return LabelFromNode(firstChild(a.node, parser.NodeLabel))
}

func (a *Arg) Value() Expr { return nthChildExpr(a.node, 0) }

// VariantConstructor is a bare or applied constructor like `Ok(1)`.
type VariantConstructor struct {
	node *parser.SyntaxNode
}

func (v *VariantConstructor) Syntax() *parser.SyntaxNode { return v.node }
func (v *VariantConstructor) expr()                      {}

func (v *VariantConstructor) NameRef() *NameRef {
	return NameRefFromNode(firstChild(v.node, parser.NodeNameRef))
}

func (v *VariantConstructor) Args() []*Arg {
	list := firstChild(v.node, parser.NodeArgList)
	if list == nil {
		return nil
	}
	var out []*Arg
	for _, child := range list.Children() {
		if child.Kind() == parser.NodeArg {
			out = append(out, &Arg{node: child})
		}
	}
	return out
}

// FieldAccess is a `base.field` expression.
type FieldAccess struct {
	node *parser.SyntaxNode
}

func (f *FieldAccess) Syntax() *parser.SyntaxNode { return f.node }
func (f *FieldAccess) expr()                      {}

func (f *FieldAccess) Base() Expr { return nthChildExpr(f.node, 0) }

func (f *FieldAccess) Field() *NameRef {
	return NameRefFromNode(firstChild(f.node, parser.NodeNameRef))
}

// TupleIndex is a `base.0` expression.
type TupleIndex struct {
	node *parser.SyntaxNode
}

func (t *TupleIndex) Syntax() *parser.SyntaxNode { return t.node }
func (t *TupleIndex) expr()                      {}

func (t *TupleIndex) Base() Expr { return nthChildExpr(t.node, 0) }

func (t *TupleIndex) Index() *Literal {
	if n := firstChild(t.node, parser.NodeLiteral); n != nil {
		return &Literal{node: n}
	}
	return nil
}

// Todo is a `todo` expression with an optional `as "message"`.
type Todo struct {
	node *parser.SyntaxNode
}

func (t *Todo) Syntax() *parser.SyntaxNode { return t.node }
func (t *Todo) expr()                      {}

func (t *Todo) Message() *Literal {
	if n := firstChild(t.node, parser.NodeLiteral); n != nil {
		return &Literal{node: n}
	}
	return nil
}

// Panic is a `panic` expression with an optional `as "message"`.
type Panic struct {
	node *parser.SyntaxNode
}

func (p *Panic) Syntax() *parser.SyntaxNode { return p.node }
func (p *Panic) expr()                      {}

func (p *Panic) Message() *Literal {
	if n := firstChild(p.node, parser.NodeLiteral); n != nil {
		return &Literal{node: n}
	}
	return nil
}
