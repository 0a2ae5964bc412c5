package parser

import (
	"strings"
)

// GreenChild is a child slot of a green node: either a nested node or a
// token. Green trees are immutable and position-independent; widths are
// stored so that absolute ranges can be derived by a red cursor.
type GreenChild interface {
	Kind() SyntaxKind
	Width() uint32
}

type GreenToken struct {
	kind SyntaxKind
	text string
}

func (t *GreenToken) Kind() SyntaxKind { return t.kind }
func (t *GreenToken) Width() uint32    { return uint32(len(t.text)) }
func (t *GreenToken) Text() string     { return t.text }

type GreenNode struct {
	kind     SyntaxKind
	children []GreenChild
	width    uint32
}

func (n *GreenNode) Kind() SyntaxKind       { return n.kind }
func (n *GreenNode) Width() uint32          { return n.width }
func (n *GreenNode) Children() []GreenChild { return n.children }

// Text renders the subtree back to source text. For the root this is
// byte-for-byte the parsed input.
func (n *GreenNode) Text() string {
	var sb strings.Builder
	sb.Grow(int(n.width))
	n.writeText(&sb)
	return sb.String()
}

func (n *GreenNode) writeText(sb *strings.Builder) {
	for _, child := range n.children {
		switch c := child.(type) {
		case *GreenToken:
			sb.WriteString(c.text)
		case *GreenNode:
			c.writeText(sb)
		}
	}
}

// SyntaxNode is a red cursor into a green tree: a green node paired with
// an absolute offset and a parent link. Cursors are cheap to create and
// safe to share; the underlying green tree is never mutated.
type SyntaxNode struct {
	green  *GreenNode
	parent *SyntaxNode
	offset uint32
}

// SyntaxToken is the red cursor for a leaf.
type SyntaxToken struct {
	green  *GreenToken
	parent *SyntaxNode
	offset uint32
}

func NewRootNode(green *GreenNode) *SyntaxNode {
	return &SyntaxNode{green: green}
}

func (n *SyntaxNode) Kind() SyntaxKind  { return n.green.kind }
func (n *SyntaxNode) Green() *GreenNode { return n.green }

func (n *SyntaxNode) Range() TextRange {
	return NewTextRange(n.offset, n.offset+n.green.width)
}

func (n *SyntaxNode) Parent() *SyntaxNode { return n.parent }

func (n *SyntaxNode) Text() string { return n.green.Text() }

// Children returns the direct child nodes, skipping tokens.
func (n *SyntaxNode) Children() []*SyntaxNode {
	var result []*SyntaxNode
	offset := n.offset
	for _, child := range n.green.children {
		if g, ok := child.(*GreenNode); ok {
			result = append(result, &SyntaxNode{green: g, parent: n, offset: offset})
		}
		offset += child.Width()
	}
	return result
}

// Tokens returns the direct child tokens, skipping nodes.
func (n *SyntaxNode) Tokens() []*SyntaxToken {
	var result []*SyntaxToken
	offset := n.offset
	for _, child := range n.green.children {
		if g, ok := child.(*GreenToken); ok {
			result = append(result, &SyntaxToken{green: g, parent: n, offset: offset})
		}
		offset += child.Width()
	}
	return result
}

func (n *SyntaxNode) FirstChildOfKind(kind SyntaxKind) *SyntaxNode {
	return n.NthChildOfKind(kind, 0)
}

func (n *SyntaxNode) NthChildOfKind(kind SyntaxKind, nth int) *SyntaxNode {
	seen := 0
	offset := n.offset
	for _, child := range n.green.children {
		if g, ok := child.(*GreenNode); ok && g.kind == kind {
			if seen == nth {
				return &SyntaxNode{green: g, parent: n, offset: offset}
			}
			seen++
		}
		offset += child.Width()
	}
	return nil
}

// NthTokenOfKind locates the nth direct child token of the given kind,
// counting from zero. Used by the typed layer for operator tokens.
func (n *SyntaxNode) NthTokenOfKind(kind SyntaxKind, nth int) *SyntaxToken {
	seen := 0
	offset := n.offset
	for _, child := range n.green.children {
		if g, ok := child.(*GreenToken); ok && g.kind == kind {
			if seen == nth {
				return &SyntaxToken{green: g, parent: n, offset: offset}
			}
			seen++
		}
		offset += child.Width()
	}
	return nil
}

// FirstToken returns the leftmost significant token of the subtree, or the
// leftmost token of any kind if includeTrivia is set.
func (n *SyntaxNode) FirstToken(includeTrivia bool) *SyntaxToken {
	offset := n.offset
	for _, child := range n.green.children {
		switch c := child.(type) {
		case *GreenToken:
			if includeTrivia || !c.kind.IsTrivia() {
				return &SyntaxToken{green: c, parent: n, offset: offset}
			}
		case *GreenNode:
			red := &SyntaxNode{green: c, parent: n, offset: offset}
			if tok := red.FirstToken(includeTrivia); tok != nil {
				return tok
			}
		}
		offset += child.Width()
	}
	return nil
}

// TokenAt returns the token whose range contains the byte offset.
func (n *SyntaxNode) TokenAt(pos uint32) *SyntaxToken {
	offset := n.offset
	for _, child := range n.green.children {
		end := offset + child.Width()
		if pos >= offset && pos < end {
			switch c := child.(type) {
			case *GreenToken:
				return &SyntaxToken{green: c, parent: n, offset: offset}
			case *GreenNode:
				red := &SyntaxNode{green: c, parent: n, offset: offset}
				return red.TokenAt(pos)
			}
		}
		offset = end
	}
	return nil
}

// CoveringNode returns the innermost node whose range fully contains r.
func (n *SyntaxNode) CoveringNode(r TextRange) *SyntaxNode {
	if !n.Range().ContainsRange(r) {
		return nil
	}
	node := n
outer:
	for {
		for _, child := range node.Children() {
			if child.Range().ContainsRange(r) {
				node = child
				continue outer
			}
		}
		return node
	}
}

func (n *SyntaxNode) String() string {
	var sb strings.Builder
	n.stringIndent(&sb, 0)
	return sb.String()
}

func (n *SyntaxNode) stringIndent(sb *strings.Builder, indent int) {
	for i := 0; i < indent; i++ {
		sb.WriteString("  ")
	}
	sb.WriteString(n.Kind().String())
	sb.WriteString(" [")
	sb.WriteString(n.Range().String())
	sb.WriteString("]\n")

	offset := n.offset
	for _, child := range n.green.children {
		switch c := child.(type) {
		case *GreenToken:
			if !c.kind.IsTrivia() {
				for i := 0; i < indent+1; i++ {
					sb.WriteString("  ")
				}
				sb.WriteString(c.kind.String())
				sb.WriteString(" ")
				sb.WriteString(strings.TrimSpace(c.text))
				sb.WriteString("\n")
			}
		case *GreenNode:
			red := &SyntaxNode{green: c, parent: n, offset: offset}
			red.stringIndent(sb, indent+1)
		}
		offset += child.Width()
	}
}

func (t *SyntaxToken) Kind() SyntaxKind    { return t.green.kind }
func (t *SyntaxToken) Text() string        { return t.green.text }
func (t *SyntaxToken) Parent() *SyntaxNode { return t.parent }

func (t *SyntaxToken) Range() TextRange {
	return NewTextRange(t.offset, t.offset+t.green.Width())
}

// treeBuilder replays the parser's event log against the raw token
// sequence, re-interleaving trivia so the finished tree is lossless.
type treeBuilder struct {
	raw   []Token
	pos   int
	stack []builderFrame
	root  *GreenNode
}

type builderFrame struct {
	kind     SyntaxKind
	children []GreenChild
}

func buildTree(events []event, raw []Token) *GreenNode {
	b := &treeBuilder{raw: raw}

	// The root's Close is replayed by hand after trailing trivia.
	if len(events) > 0 {
		events = events[:len(events)-1]
	}

	for _, ev := range events {
		switch ev.kind {
		case eventOpen:
			switch {
			case ev.node == NodeSourceFile:
				b.startNode(ev.node)
				b.eatModuleDoc()
			case ev.node.isDeclaration():
				// Whitespace and comments separated from the
				// declaration by a blank line stay with the
				// enclosing file; the immediately preceding
				// comment run goes inside the declaration.
				attached := b.attachedTriviaStart()
				b.eatUntil(attached)
				b.startNode(ev.node)
				b.eatTrivia()
			default:
				b.eatTrivia()
				b.startNode(ev.node)
			}
		case eventClose:
			b.finishNode()
		case eventAdvance:
			b.eatTrivia()
			b.eatToken()
		}
	}

	b.eatTrivia()
	b.finishNode()
	return b.root
}

func (b *treeBuilder) startNode(kind SyntaxKind) {
	b.stack = append(b.stack, builderFrame{kind: kind})
}

func (b *treeBuilder) finishNode() {
	frame := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]

	var width uint32
	for _, c := range frame.children {
		width += c.Width()
	}
	node := &GreenNode{kind: frame.kind, children: frame.children, width: width}

	if len(b.stack) == 0 {
		b.root = node
		return
	}
	top := &b.stack[len(b.stack)-1]
	top.children = append(top.children, node)
}

func (b *treeBuilder) eatToken() {
	tok := b.raw[b.pos]
	b.pos++
	top := &b.stack[len(b.stack)-1]
	top.children = append(top.children, &GreenToken{kind: tok.Kind, text: tok.Text})
}

func (b *treeBuilder) eatTrivia() {
	for b.pos < len(b.raw) && b.raw[b.pos].Kind.IsTrivia() {
		b.eatToken()
	}
}

func (b *treeBuilder) eatModuleDoc() {
	for b.pos < len(b.raw) && b.raw[b.pos].Kind.IsModuleDoc() {
		b.eatToken()
	}
}

func (b *treeBuilder) eatUntil(end int) {
	for b.pos < end {
		b.eatToken()
	}
}

// attachedTriviaStart finds where the trivia run in front of a declaration
// splits: everything from the returned index up to the next significant
// token attaches inside the declaration node.
func (b *treeBuilder) attachedTriviaStart() int {
	end := b.pos
	for end < len(b.raw) && b.raw[end].Kind.IsTrivia() {
		end++
	}

	attach := end
	for attach > b.pos {
		tok := b.raw[attach-1]
		if tok.Kind == TokenModuleComment {
			break
		}
		if tok.Kind == TokenWhitespace && strings.Count(tok.Text, "\n") >= 2 {
			break
		}
		attach--
	}

	// The attached run begins at its first comment; leading whitespace
	// stays with the enclosing node.
	for attach < end && b.raw[attach].Kind == TokenWhitespace {
		attach++
	}
	return attach
}
