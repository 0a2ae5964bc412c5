package ast

import "github.com/orvitpng/glas/gleam/parser"

// TypeExpr is any type annotation form.
type TypeExpr interface {
	Node
	typeExpr()
}

func CanCastTypeExpr(kind parser.SyntaxKind) bool {
	switch kind {
	case parser.NodeFnType, parser.NodeTupleType,
		parser.NodeTypeNameRef, parser.NodeTypeApplication:
		return true
	}
	return false
}

func TypeExprFromNode(n *parser.SyntaxNode) TypeExpr {
	if n == nil {
		return nil
	}
	switch n.Kind() {
	case parser.NodeFnType:
		return &FnType{node: n}
	case parser.NodeTupleType:
		return &TupleType{node: n}
	case parser.NodeTypeNameRef:
		return &TypeNameRef{node: n}
	case parser.NodeTypeApplication:
		return &TypeApplication{node: n}
	}
	return nil
}

func childTypeExprs(n *parser.SyntaxNode) []TypeExpr {
	var out []TypeExpr
	for _, child := range n.Children() {
		if t := TypeExprFromNode(child); t != nil {
			out = append(out, t)
		}
	}
	return out
}

// FnType is a `fn(params) -> ret` type.
type FnType struct {
	node *parser.SyntaxNode
}

func (f *FnType) Syntax() *parser.SyntaxNode { return f.node }
func (f *FnType) typeExpr()                  {}

func (f *FnType) ParamTypes() []TypeExpr {
	list := firstChild(f.node, parser.NodeParamTypeList)
	if list == nil {
		return nil
	}
	return childTypeExprs(list)
}

func (f *FnType) ReturnType() TypeExpr {
	return nthTypeExpr(f.node, 0)
}

func nthTypeExpr(n *parser.SyntaxNode, nth int) TypeExpr {
	for _, child := range n.Children() {
		if t := TypeExprFromNode(child); t != nil {
			if nth == 0 {
				return t
			}
			nth--
		}
	}
	return nil
}

// TupleType is a `#(a, b)` type.
type TupleType struct {
	node *parser.SyntaxNode
}

func (t *TupleType) Syntax() *parser.SyntaxNode { return t.node }
func (t *TupleType) typeExpr()                  {}

func (t *TupleType) Elements() []TypeExpr { return childTypeExprs(t.node) }

// TypeNameRef names a type, a type variable, or a qualified type.
type TypeNameRef struct {
	node *parser.SyntaxNode
}

func (r *TypeNameRef) Syntax() *parser.SyntaxNode { return r.node }
func (r *TypeNameRef) typeExpr()                  {}

// Module returns the qualifier, or nil when the name is unqualified.
func (r *TypeNameRef) Module() *parser.SyntaxNode {
	return firstChild(r.node, parser.NodeModuleName)
}

// TypeName returns the referenced type name, or nil when the reference
// is a lower-case type variable.
func (r *TypeNameRef) TypeName() *TypeName { return typeNameOf(r.node) }

// Variable returns the type-variable name, or nil for upper-case names.
func (r *TypeNameRef) Variable() *Name { return nameOf(r.node) }

// TypeApplication is a parameterized type like `List(Int)`.
type TypeApplication struct {
	node *parser.SyntaxNode
}

func (a *TypeApplication) Syntax() *parser.SyntaxNode { return a.node }
func (a *TypeApplication) typeExpr()                  {}

func (a *TypeApplication) Constructor() *TypeNameRef {
	if n := firstChild(a.node, parser.NodeTypeNameRef); n != nil {
		return &TypeNameRef{node: n}
	}
	return nil
}

func (a *TypeApplication) Args() []TypeExpr {
	list := firstChild(a.node, parser.NodeTypeArgList)
	if list == nil {
		return nil
	}
	var out []TypeExpr
	for _, child := range list.Children() {
		if child.Kind() == parser.NodeTypeArg {
			out = append(out, childTypeExprs(child)...)
		}
	}
	return out
}
