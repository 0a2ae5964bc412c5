package ast

import "github.com/orvitpng/glas/gleam/parser"

// Pattern is any pattern form that can appear inside an AsPattern.
type Pattern interface {
	Node
	pattern()
}

func CanCastPattern(kind parser.SyntaxKind) bool {
	switch kind {
	case parser.NodePatternVariable, parser.NodeVariantRef,
		parser.NodePatternTuple, parser.NodePatternList, parser.NodeLiteral,
		parser.NodeHole, parser.NodePatternSpread, parser.NodePatternConcat,
		parser.NodeUnaryPattern:
		return true
	}
	return false
}

func PatternFromNode(n *parser.SyntaxNode) Pattern {
	if n == nil {
		return nil
	}
	switch n.Kind() {
	case parser.NodePatternVariable:
		return &PatternVariable{node: n}
	case parser.NodeVariantRef:
		return &VariantRef{node: n}
	case parser.NodePatternTuple:
		return &PatternTuple{node: n}
	case parser.NodePatternList:
		return &PatternList{node: n}
	case parser.NodeLiteral:
		return &Literal{node: n}
	case parser.NodeHole:
		return &Hole{node: n}
	case parser.NodePatternSpread:
		return &PatternSpread{node: n}
	case parser.NodePatternConcat:
		return &PatternConcat{node: n}
	case parser.NodeUnaryPattern:
		return &UnaryPattern{node: n}
	}
	return nil
}

// AsPattern wraps any pattern together with an optional `as name` binding.
type AsPattern struct {
	node *parser.SyntaxNode
}

func AsPatternFromNode(n *parser.SyntaxNode) *AsPattern {
	if n == nil || n.Kind() != parser.NodeAsPattern {
		return nil
	}
	return &AsPattern{node: n}
}

func (a *AsPattern) Syntax() *parser.SyntaxNode { return a.node }

func (a *AsPattern) Pattern() Pattern {
	for _, child := range a.node.Children() {
		if p := PatternFromNode(child); p != nil {
			return p
		}
	}
	return nil
}

// AsName returns the trailing `as` binding, or nil.
func (a *AsPattern) AsName() *PatternVariable {
	var last *parser.SyntaxNode
	for _, child := range a.node.Children() {
		if child.Kind() == parser.NodePatternVariable {
			last = child
		}
	}
	if last == nil || a.node.NthTokenOfKind(parser.TokenAs, 0) == nil {
		return nil
	}
	return &PatternVariable{node: last}
}

// AlternativePattern is a `|`-joined run of patterns in a case clause.
type AlternativePattern struct {
	node *parser.SyntaxNode
}

func (a *AlternativePattern) Syntax() *parser.SyntaxNode { return a.node }

func (a *AlternativePattern) Patterns() []*AsPattern {
	var out []*AsPattern
	for _, child := range a.node.Children() {
		if child.Kind() == parser.NodeAsPattern {
			out = append(out, &AsPattern{node: child})
		}
	}
	return out
}

// PatternVariable binds a fresh name.
type PatternVariable struct {
	node *parser.SyntaxNode
}

func (v *PatternVariable) Syntax() *parser.SyntaxNode { return v.node }
func (v *PatternVariable) pattern()                   {}

func (v *PatternVariable) Text() string {
	if tok := v.node.FirstToken(false); tok != nil {
		return tok.Text()
	}
	return ""
}

// VariantRef matches a constructor, optionally qualified and with fields.
type VariantRef struct {
	node *parser.SyntaxNode
}

func (v *VariantRef) Syntax() *parser.SyntaxNode { return v.node }
func (v *VariantRef) pattern()                   {}

// Module returns the qualifier, or nil for an unqualified constructor.
func (v *VariantRef) Module() *parser.SyntaxNode {
	return firstChild(v.node, parser.NodeModuleName)
}

func (v *VariantRef) NameRef() *NameRef {
	return NameRefFromNode(firstChild(v.node, parser.NodeNameRef))
}

func (v *VariantRef) Fields() []*VariantRefField {
	list := firstChild(v.node, parser.NodeVariantRefFieldList)
	if list == nil {
		return nil
	}
	var out []*VariantRefField
	for _, child := range list.Children() {
		if child.Kind() == parser.NodeVariantRefField {
			out = append(out, &VariantRefField{node: child})
		}
	}
	return out
}

// VariantRefField is one field pattern inside a constructor pattern.
type VariantRefField struct {
	node *parser.SyntaxNode
}

func (f *VariantRefField) Syntax() *parser.SyntaxNode { return f.node }

func (f *VariantRefField) Label() *Label {
	return LabelFromNode(firstChild(f.node, parser.NodeLabel))
}

func (f *VariantRefField) Pattern() *AsPattern {
	return AsPatternFromNode(firstChild(f.node, parser.NodeAsPattern))
}

// PatternTuple matches a `#( ... )` of sub-patterns.
type PatternTuple struct {
	node *parser.SyntaxNode
}

func (t *PatternTuple) Syntax() *parser.SyntaxNode { return t.node }
func (t *PatternTuple) pattern()                   {}

func (t *PatternTuple) Elements() []*AsPattern {
	var out []*AsPattern
	for _, child := range t.node.Children() {
		if child.Kind() == parser.NodeAsPattern {
			out = append(out, &AsPattern{node: child})
		}
	}
	return out
}

// PatternList matches a `[ ... ]` of sub-patterns with an optional spread.
type PatternList struct {
	node *parser.SyntaxNode
}

func (l *PatternList) Syntax() *parser.SyntaxNode { return l.node }
func (l *PatternList) pattern()                   {}

func (l *PatternList) Elements() []*AsPattern {
	var out []*AsPattern
	for _, child := range l.node.Children() {
		if child.Kind() == parser.NodeAsPattern {
			out = append(out, &AsPattern{node: child})
		}
	}
	return out
}

// PatternSpread is a `..rest` inside a list or constructor pattern.
type PatternSpread struct {
	node *parser.SyntaxNode
}

func (s *PatternSpread) Syntax() *parser.SyntaxNode { return s.node }
func (s *PatternSpread) pattern()                   {}

// Name returns the bound rest name, or nil for a bare `..`.
func (s *PatternSpread) Name() *Name { return nameOf(s.node) }

// PatternConcat is a string-prefix pattern `"prefix" <> rest`.
type PatternConcat struct {
	node *parser.SyntaxNode
}

func (c *PatternConcat) Syntax() *parser.SyntaxNode { return c.node }
func (c *PatternConcat) pattern()                   {}

func (c *PatternConcat) Prefix() *Literal {
	if n := firstChild(c.node, parser.NodeLiteral); n != nil {
		return &Literal{node: n}
	}
	return nil
}

func (c *PatternConcat) Rest() *PatternVariable {
	if n := firstChild(c.node, parser.NodePatternVariable); n != nil {
		return &PatternVariable{node: n}
	}
	return nil
}

// UnaryPattern is a negated numeric literal pattern.
type UnaryPattern struct {
	node *parser.SyntaxNode
}

func (u *UnaryPattern) Syntax() *parser.SyntaxNode { return u.node }
func (u *UnaryPattern) pattern()                   {}

func (u *UnaryPattern) Literal() *Literal {
	if n := firstChild(u.node, parser.NodeLiteral); n != nil {
		return &Literal{node: n}
	}
	return nil
}
