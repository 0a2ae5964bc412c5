package ast

import (
	"strings"

	"github.com/orvitpng/glas/gleam/parser"
)

// ModuleStatement is a top-level declaration: a function, constant,
// import, custom type, or type alias.
type ModuleStatement interface {
	Node
	moduleStatement()
}

func CanCastModuleStatement(kind parser.SyntaxKind) bool {
	switch kind {
	case parser.NodeFunction, parser.NodeModuleConstant, parser.NodeImport,
		parser.NodeAdt, parser.NodeCustomTypeAlias:
		return true
	}
	return false
}

func ModuleStatementFromNode(n *parser.SyntaxNode) ModuleStatement {
	if n == nil {
		return nil
	}
	switch n.Kind() {
	case parser.NodeFunction:
		return &Function{node: n}
	case parser.NodeModuleConstant:
		return &ModuleConstant{node: n}
	case parser.NodeImport:
		return &Import{node: n}
	case parser.NodeAdt:
		return &Adt{node: n}
	case parser.NodeCustomTypeAlias:
		return &CustomTypeAlias{node: n}
	}
	return nil
}

// Function is a named top-level function declaration.
type Function struct {
	node *parser.SyntaxNode
}

func (f *Function) Syntax() *parser.SyntaxNode { return f.node }
func (f *Function) moduleStatement()           {}

func (f *Function) Name() *Name { return nameOf(f.node) }

func (f *Function) IsPublic() bool {
	return f.node.NthTokenOfKind(parser.TokenPub, 0) != nil
}

func (f *Function) Attributes() []*Attribute {
	var out []*Attribute
	for _, child := range f.node.Children() {
		if child.Kind() == parser.NodeAttribute {
			out = append(out, &Attribute{node: child})
		}
	}
	return out
}

func (f *Function) Params() []*Param {
	list := firstChild(f.node, parser.NodeParamList)
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

func (f *Function) ReturnType() TypeExpr {
	for _, child := range f.node.Children() {
		if t := TypeExprFromNode(child); t != nil {
			return t
		}
	}
	return nil
}

func (f *Function) Body() *Block {
	if b := firstChild(f.node, parser.NodeBlock); b != nil {
		return &Block{node: b}
	}
	return nil
}

// DocComment returns the text of the doc comment run attached to the
// declaration, with the comment markers stripped.
func (f *Function) DocComment() string { return docComment(f.node) }

func docComment(n *parser.SyntaxNode) string {
	var lines []string
	for _, tok := range n.Tokens() {
		switch tok.Kind() {
		case parser.TokenDocComment:
			line := strings.TrimPrefix(tok.Text(), "///")
			lines = append(lines, strings.TrimPrefix(line, " "))
		case parser.TokenWhitespace, parser.TokenComment, parser.TokenAt:
		default:
			return strings.TrimSpace(strings.Join(lines, "\n"))
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// Attribute is a `@name(...)` annotation on a declaration.
type Attribute struct {
	node *parser.SyntaxNode
}

func (a *Attribute) Syntax() *parser.SyntaxNode { return a.node }

func (a *Attribute) Name() *Name { return nameOf(a.node) }

func (a *Attribute) Args() []*parser.SyntaxNode {
	var out []*parser.SyntaxNode
	for _, child := range a.node.Children() {
		if child.Kind() == parser.NodeAttributeArg {
			out = append(out, child)
		}
	}
	return out
}

// Param is one function parameter: optional label, binding pattern,
// optional type annotation.
type Param struct {
	node *parser.SyntaxNode
}

func (p *Param) Syntax() *parser.SyntaxNode { return p.node }

func (p *Param) Label() *Label {
	return LabelFromNode(firstChild(p.node, parser.NodeLabel))
}

func (p *Param) Pattern() *AsPattern {
	if n := firstChild(p.node, parser.NodeAsPattern); n != nil {
		return &AsPattern{node: n}
	}
	return nil
}

func (p *Param) Type() TypeExpr {
	for _, child := range p.node.Children() {
		if t := TypeExprFromNode(child); t != nil {
			return t
		}
	}
	return nil
}

// ModuleConstant is a `const name = value` declaration.
type ModuleConstant struct {
	node *parser.SyntaxNode
}

func (c *ModuleConstant) Syntax() *parser.SyntaxNode { return c.node }
func (c *ModuleConstant) moduleStatement()           {}

func (c *ModuleConstant) Name() *Name { return nameOf(c.node) }

func (c *ModuleConstant) Type() TypeExpr {
	for _, child := range c.node.Children() {
		if t := TypeExprFromNode(child); t != nil {
			return t
		}
	}
	return nil
}

func (c *ModuleConstant) Value() ConstantExpr {
	for _, child := range c.node.Children() {
		if v := ConstantExprFromNode(child); v != nil {
			return v
		}
	}
	return nil
}

func (c *ModuleConstant) DocComment() string { return docComment(c.node) }

// Import is an `import a/b.{x} as c` declaration.
type Import struct {
	node *parser.SyntaxNode
}

func (i *Import) Syntax() *parser.SyntaxNode { return i.node }
func (i *Import) moduleStatement()           {}

// ModulePath returns the slash-separated path segments.
func (i *Import) ModulePath() []string {
	path := firstChild(i.node, parser.NodeModulePath)
	if path == nil {
		return nil
	}
	var out []string
	for _, seg := range path.Children() {
		if seg.Kind() == parser.NodePath {
			if tok := seg.FirstToken(false); tok != nil {
				out = append(out, tok.Text())
			}
		}
	}
	return out
}

func (i *Import) UnqualifiedImports() []*UnqualifiedImport {
	var out []*UnqualifiedImport
	for _, child := range i.node.Children() {
		if child.Kind() == parser.NodeUnqualifiedImport {
			out = append(out, &UnqualifiedImport{node: child})
		}
	}
	return out
}

// Alias returns the name after `as`, or nil.
func (i *Import) Alias() *Name { return nameOf(i.node) }

// UnqualifiedImport is one entry of an import's `{...}` list.
type UnqualifiedImport struct {
	node *parser.SyntaxNode
}

func (u *UnqualifiedImport) Syntax() *parser.SyntaxNode { return u.node }

// Imported returns the name as it exists in the imported module.
func (u *UnqualifiedImport) Imported() string {
	if n := u.node.NthChildOfKind(parser.NodeName, 0); n != nil {
		return (&Name{node: n}).Text()
	}
	if n := u.node.NthChildOfKind(parser.NodeTypeName, 0); n != nil {
		return (&TypeName{node: n}).Text()
	}
	return ""
}

// Alias returns the local name after `as`, or "" when not renamed.
func (u *UnqualifiedImport) Alias() string {
	if n := u.node.NthChildOfKind(parser.NodeName, 1); n != nil {
		return (&Name{node: n}).Text()
	}
	if n := u.node.NthChildOfKind(parser.NodeTypeName, 1); n != nil {
		return (&TypeName{node: n}).Text()
	}
	return ""
}

// IsType reports whether the entry imports a type rather than a value.
func (u *UnqualifiedImport) IsType() bool {
	return firstChild(u.node, parser.NodeTypeName) != nil
}

// Adt is a custom type declaration with variants.
type Adt struct {
	node *parser.SyntaxNode
}

func (a *Adt) Syntax() *parser.SyntaxNode { return a.node }
func (a *Adt) moduleStatement()           {}

func (a *Adt) Name() *TypeName { return typeNameOf(a.node) }

func (a *Adt) IsOpaque() bool {
	return a.node.NthTokenOfKind(parser.TokenOpaque, 0) != nil
}

func (a *Adt) GenericParams() []*Name {
	list := firstChild(a.node, parser.NodeGenericParamList)
	if list == nil {
		return nil
	}
	var out []*Name
	for _, child := range list.Children() {
		if child.Kind() == parser.NodeName {
			out = append(out, &Name{node: child})
		}
	}
	return out
}

func (a *Adt) Variants() []*Variant {
	var out []*Variant
	for _, child := range a.node.Children() {
		if child.Kind() == parser.NodeVariant {
			out = append(out, &Variant{node: child})
		}
	}
	return out
}

func (a *Adt) DocComment() string { return docComment(a.node) }

// Variant is one constructor of a custom type.
type Variant struct {
	node *parser.SyntaxNode
}

func (v *Variant) Syntax() *parser.SyntaxNode { return v.node }

func (v *Variant) Name() *Name { return nameOf(v.node) }

func (v *Variant) Fields() []*ConstructorField {
	list := firstChild(v.node, parser.NodeConstructorFieldList)
	if list == nil {
		return nil
	}
	var out []*ConstructorField
	for _, child := range list.Children() {
		if child.Kind() == parser.NodeConstructorField {
			out = append(out, &ConstructorField{node: child})
		}
	}
	return out
}

// ConstructorField is one field of a variant, optionally labeled.
type ConstructorField struct {
	node *parser.SyntaxNode
}

func (f *ConstructorField) Syntax() *parser.SyntaxNode { return f.node }

func (f *ConstructorField) Label() *Label {
	return LabelFromNode(firstChild(f.node, parser.NodeLabel))
}

func (f *ConstructorField) Type() TypeExpr {
	for _, child := range f.node.Children() {
		if t := TypeExprFromNode(child); t != nil {
			return t
		}
	}
	return nil
}

// CustomTypeAlias is a `type Name = TypeExpr` declaration.
type CustomTypeAlias struct {
	node *parser.SyntaxNode
}

func (a *CustomTypeAlias) Syntax() *parser.SyntaxNode { return a.node }
func (a *CustomTypeAlias) moduleStatement()           {}

func (a *CustomTypeAlias) Name() *TypeName { return typeNameOf(a.node) }

func (a *CustomTypeAlias) Aliased() TypeExpr {
	for _, child := range a.node.Children() {
		if t := TypeExprFromNode(child); t != nil {
			return t
		}
	}
	return nil
}
