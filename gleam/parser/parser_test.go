package parser

import (
	"strings"
	"testing"
)

// findNode returns the first descendant of n with the given kind, in
// depth-first order, including n itself.
func findNode(n *SyntaxNode, kind SyntaxKind) *SyntaxNode {
	if n.Kind() == kind {
		return n
	}
	for _, child := range n.Children() {
		if found := findNode(child, kind); found != nil {
			return found
		}
	}
	return nil
}

func findAllNodes(n *SyntaxNode, kind SyntaxKind) []*SyntaxNode {
	var out []*SyntaxNode
	if n.Kind() == kind {
		out = append(out, n)
	}
	for _, child := range n.Children() {
		out = append(out, findAllNodes(child, kind)...)
	}
	return out
}

func TestParseLossless(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace only", "  \n\t\n"},
		{"comments only", "// one\n/// two\n//// three\n"},
		{"module doc", "//// The module.\n\npub fn main() {}\n"},
		{"function", "pub fn add(a: Int, b: Int) -> Int {\n  a + b\n}\n"},
		{"import", "import gleam/io.{println, Type as T} as io2\n"},
		{"constant", "const pi: Float = 3.14\n"},
		{"custom type", "pub opaque type Box(a) {\n  Box(inner: a)\n}\n"},
		{"alias", "type Names = List(String)\n"},
		{"case", "fn f(x) {\n  case x {\n    1 | 2 -> True\n    _ if x > 9 -> False\n    _ -> False\n  }\n}\n"},
		{"use", "fn f() {\n  use a, b <- zip(xs, ys)\n  a\n}\n"},
		{"bit string", "fn f() {\n  <<1:8, rest:bit_string>>\n}\n"},
		{"attributes", "@external(erlang, \"io\", \"put_chars\")\npub fn print(s: String) -> Nil\n"},
		{"garbage", "fn $$ let ??? ]] 12..3"},
		{"truncated", "pub fn main("},
		{"unterminated string", "const s = \"never"},
		{"stray bytes", "\x00\x01\x02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parse := ParseModule(tt.input)
			root := parse.Root()
			if got := root.Text(); got != tt.input {
				t.Errorf("rendered text = %q, want %q", got, tt.input)
			}
			if root.Kind() != NodeSourceFile {
				t.Errorf("root kind = %v, want NodeSourceFile", root.Kind())
			}
			want := NewTextRange(0, uint32(len(tt.input)))
			if root.Range() != want {
				t.Errorf("root range = %v, want %v", root.Range(), want)
			}
		})
	}
}

func TestParseRelexRoundTrip(t *testing.T) {
	input := "//// Mod.\n\nimport a/b\n\n/// Doc.\npub fn main() {\n  io.println(\"hi\")\n}\n"

	parse := ParseModule(input)
	rendered := parse.Root().Text()

	first := Lex(input)
	second := Lex(rendered)
	if len(first) != len(second) {
		t.Fatalf("token counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("token %d differs: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestParsePrecedence(t *testing.T) {
	t.Run("multiplication binds right", func(t *testing.T) {
		parse := ParseModule("fn b() { 1 + 2 * 3 }")
		if len(parse.Errors()) != 0 {
			t.Fatalf("errors = %v, want none", parse.Errors())
		}
		outer := findNode(parse.Root(), NodeBinaryOp)
		if outer == nil {
			t.Fatal("no binary op node")
		}
		if got := outer.Text(); got != "1 + 2 * 3" {
			t.Errorf("outer text = %q, want %q", got, "1 + 2 * 3")
		}
		inner := outer.FirstChildOfKind(NodeBinaryOp)
		if inner == nil {
			t.Fatal("no nested binary op")
		}
		if got := inner.Text(); got != "2 * 3" {
			t.Errorf("inner text = %q, want %q", got, "2 * 3")
		}
	})

	t.Run("multiplication binds left", func(t *testing.T) {
		parse := ParseModule("fn b() { 1 * 2 + 3 }")
		if len(parse.Errors()) != 0 {
			t.Fatalf("errors = %v, want none", parse.Errors())
		}
		outer := findNode(parse.Root(), NodeBinaryOp)
		inner := outer.FirstChildOfKind(NodeBinaryOp)
		if inner == nil {
			t.Fatal("no nested binary op")
		}
		if got := inner.Text(); got != "1 * 2" {
			t.Errorf("inner text = %q, want %q", got, "1 * 2")
		}
	})

	t.Run("pipe binds loosest", func(t *testing.T) {
		parse := ParseModule("fn b() { 1 + 2 |> f }")
		pipe := findNode(parse.Root(), NodePipe)
		if pipe == nil {
			t.Fatal("no pipe node")
		}
		lhs := pipe.FirstChildOfKind(NodeBinaryOp)
		if lhs == nil || lhs.Text() != "1 + 2" {
			t.Errorf("pipe lhs = %v, want binary op over %q", lhs, "1 + 2")
		}
	})
}

func TestParseNonAssociativeClash(t *testing.T) {
	tests := []string{
		"fn f() { a == b == c }",
		"fn f() { a < b < c }",
		"fn f() { a >=. b <. c }",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			parse := ParseModule(input)
			count := 0
			for _, err := range parse.Errors() {
				if err.Kind == ErrMultipleNoAssoc {
					count++
				}
			}
			if count != 1 {
				t.Errorf("ErrMultipleNoAssoc count = %d, want 1 (errors: %v)", count, parse.Errors())
			}
		})
	}
}

func TestParseNonAssociativeMixedPrecedenceOK(t *testing.T) {
	parse := ParseModule("fn f() { a + b == c * d }")
	if len(parse.Errors()) != 0 {
		t.Errorf("errors = %v, want none", parse.Errors())
	}
}

func TestParseRecoveryLocality(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty parens", "fn a( ) fn b() { 1 }"},
		{"bad parameter", "fn a(1) fn b() { 1 }"},
		{"stray token", "fn a($) fn b() { 1 }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parse := ParseModule(tt.input)
			root := parse.Root()
			if got := root.Text(); got != tt.input {
				t.Fatalf("rendered text = %q, want %q", got, tt.input)
			}

			funcs := findAllNodes(root, NodeFunction)
			var fnB *SyntaxNode
			for _, fn := range funcs {
				name := fn.FirstChildOfKind(NodeName)
				if name != nil && strings.TrimSpace(name.Text()) == "b" {
					fnB = fn
				}
			}
			if fnB == nil {
				t.Fatalf("no function b in tree:\n%s", root.String())
			}
			if fnB.FirstChildOfKind(NodeBlock) == nil {
				t.Errorf("function b has no body:\n%s", fnB.String())
			}
			for _, err := range parse.Errors() {
				if err.Range.Start >= fnB.Range().Start {
					t.Errorf("diagnostic %v inside function b (%v)", err, fnB.Range())
				}
			}
		})
	}
}

func TestParseDocCommentAttachment(t *testing.T) {
	input := "// stray note\n\n/// Doc line.\nfn main() {}"

	parse := ParseModule(input)
	root := parse.Root()
	if got := root.Text(); got != input {
		t.Fatalf("rendered text = %q, want %q", got, input)
	}

	fn := findNode(root, NodeFunction)
	if fn == nil {
		t.Fatal("no function node")
	}
	if got := fn.Text(); got != "/// Doc line.\nfn main() {}" {
		t.Errorf("function text = %q, doc comment not attached", got)
	}

	first := fn.FirstToken(true)
	if first == nil || first.Kind() != TokenDocComment {
		t.Errorf("first token = %v, want doc comment", first)
	}
	if strings.Contains(fn.Text(), "stray") {
		t.Errorf("blank-line-separated comment leaked into function: %q", fn.Text())
	}
}

func TestParseModuleDocAttachment(t *testing.T) {
	input := "//// The module.\n\nfn main() {}"

	parse := ParseModule(input)
	root := parse.Root()
	fn := findNode(root, NodeFunction)
	if fn == nil {
		t.Fatal("no function node")
	}
	if strings.Contains(fn.Text(), "The module") {
		t.Errorf("module doc leaked into function: %q", fn.Text())
	}
	if !strings.HasPrefix(root.Text(), "//// The module.") {
		t.Errorf("module doc missing from file: %q", root.Text())
	}
}

func TestParsePostfixChaining(t *testing.T) {
	parse := ParseModule("fn f() { a.b(c).0 }")
	if len(parse.Errors()) != 0 {
		t.Fatalf("errors = %v, want none", parse.Errors())
	}
	root := parse.Root()

	index := findNode(root, NodeTupleIndex)
	if index == nil {
		t.Fatalf("no tuple index node:\n%s", root.String())
	}
	call := index.FirstChildOfKind(NodeExprCall)
	if call == nil {
		t.Fatalf("tuple index base is not a call:\n%s", index.String())
	}
	access := call.FirstChildOfKind(NodeFieldAccess)
	if access == nil {
		t.Fatalf("call base is not a field access:\n%s", call.String())
	}
	variable := access.FirstChildOfKind(NodeVariable)
	if variable == nil || strings.TrimSpace(variable.Text()) != "a" {
		t.Errorf("field access base = %v, want variable a", variable)
	}
}

func TestParseTotality(t *testing.T) {
	// None of these may panic, and all must round-trip.
	tests := []string{
		"",
		"}}}}",
		"((((((((",
		"fn fn fn fn",
		"case case case",
		"pub pub pub",
		"@@@@",
		"let x =",
		"type = {",
		"import {",
		"<<<<<<>>>>>>",
		"1 2 3 4 5",
		"\"\\",
		strings.Repeat("[", 50) + strings.Repeat("]", 50),
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			parse := ParseModule(input)
			if got := parse.Root().Text(); got != input {
				t.Errorf("rendered text = %q, want %q", got, input)
			}
		})
	}
}

func TestParseStatements(t *testing.T) {
	t.Run("let with annotation", func(t *testing.T) {
		parse := ParseModule("fn f() { let assert Ok(x): Result = g() }")
		if len(parse.Errors()) != 0 {
			t.Fatalf("errors = %v, want none", parse.Errors())
		}
		let := findNode(parse.Root(), NodeStmtLet)
		if let == nil {
			t.Fatal("no let statement")
		}
		if findNode(let, NodeVariantRef) == nil {
			t.Error("let pattern is not a variant ref")
		}
	})

	t.Run("use", func(t *testing.T) {
		parse := ParseModule("fn f() { use a, b <- each(xs) }")
		if len(parse.Errors()) != 0 {
			t.Fatalf("errors = %v, want none", parse.Errors())
		}
		use := findNode(parse.Root(), NodeStmtUse)
		if use == nil {
			t.Fatal("no use statement")
		}
		if got := len(findAllNodes(use, NodeUseAssignment)); got != 2 {
			t.Errorf("use assignments = %d, want 2", got)
		}
	})
}

func TestParsePatterns(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  SyntaxKind
	}{
		{"string prefix", `fn f() { case x { "a" <> rest -> rest } }`, NodePatternConcat},
		{"list spread", "fn f() { case x { [a, ..rest] -> a } }", NodePatternSpread},
		{"tuple", "fn f() { case x { #(a, b) -> a } }", NodePatternTuple},
		{"qualified variant", "fn f() { case x { option.Some(v) -> v } }", NodeVariantRef},
		{"labeled field", "fn f() { case x { Point(x: a, ..) -> a } }", NodeVariantRefField},
		{"negative literal", "fn f() { case x { -1 -> x } }", NodeUnaryPattern},
		{"as binding", "fn f() { case x { [_] as xs -> xs } }", NodeAsPattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parse := ParseModule(tt.input)
			if len(parse.Errors()) != 0 {
				t.Fatalf("errors = %v, want none", parse.Errors())
			}
			if findNode(parse.Root(), tt.kind) == nil {
				t.Errorf("no %v node:\n%s", tt.kind, parse.Root().String())
			}
		})
	}
}

func TestParseClauseAlternatives(t *testing.T) {
	parse := ParseModule("fn f() { case x { 1 | 2 | 3, _ -> True } }")
	if len(parse.Errors()) != 0 {
		t.Fatalf("errors = %v, want none", parse.Errors())
	}
	clause := findNode(parse.Root(), NodeClause)
	if clause == nil {
		t.Fatal("no clause node")
	}
	alts := findAllNodes(clause, NodeAlternativePattern)
	if len(alts) != 2 {
		t.Fatalf("alternative patterns = %d, want 2", len(alts))
	}
	if got := len(findAllNodes(alts[0], NodeAsPattern)); got != 3 {
		t.Errorf("patterns in first alternative = %d, want 3", got)
	}
}

func TestParseTypes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  SyntaxKind
	}{
		{"fn type", "type F = fn(Int, String) -> Bool", NodeFnType},
		{"tuple type", "type P = #(Int, Int)", NodeTupleType},
		{"application", "type L = List(Int)", NodeTypeApplication},
		{"qualified", "type O = option.Option(Int)", NodeTypeNameRef},
		{"variable", "type I(a) = a", NodeGenericParamList},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parse := ParseModule(tt.input)
			if len(parse.Errors()) != 0 {
				t.Fatalf("errors = %v, want none", parse.Errors())
			}
			if findNode(parse.Root(), tt.kind) == nil {
				t.Errorf("no %v node:\n%s", tt.kind, parse.Root().String())
			}
		})
	}
}

func TestParseCustomType(t *testing.T) {
	parse := ParseModule("pub type Shape {\n  Circle(radius: Float)\n  Point\n}")
	if len(parse.Errors()) != 0 {
		t.Fatalf("errors = %v, want none", parse.Errors())
	}
	adt := findNode(parse.Root(), NodeAdt)
	if adt == nil {
		t.Fatal("no adt node")
	}
	variants := findAllNodes(adt, NodeVariant)
	if len(variants) != 2 {
		t.Fatalf("variants = %d, want 2", len(variants))
	}
	if findNode(variants[0], NodeConstructorFieldList) == nil {
		t.Error("first variant has no field list")
	}
}

func TestParseOpaqueAliasRejected(t *testing.T) {
	parse := ParseModule("pub opaque type T = Int")
	found := false
	for _, err := range parse.Errors() {
		if err.Kind == ErrOpaqueAlias {
			found = true
		}
	}
	if !found {
		t.Errorf("errors = %v, want ErrOpaqueAlias", parse.Errors())
	}
}

func TestParsePubImportRejected(t *testing.T) {
	parse := ParseModule("pub import gleam/io")
	found := false
	for _, err := range parse.Errors() {
		if err.Kind == ErrUnexpectedImport {
			found = true
		}
	}
	if !found {
		t.Errorf("errors = %v, want ErrUnexpectedImport", parse.Errors())
	}
	// The import still makes it into the tree.
	if findNode(parse.Root(), NodeImport) == nil {
		t.Error("no import node")
	}
}

func TestParseImportShapes(t *testing.T) {
	parse := ParseModule("import gleam/option.{Some, None as N, unwrap} as opt")
	if len(parse.Errors()) != 0 {
		t.Fatalf("errors = %v, want none", parse.Errors())
	}
	imp := findNode(parse.Root(), NodeImport)
	if imp == nil {
		t.Fatal("no import node")
	}
	if got := len(findAllNodes(imp, NodePath)); got != 2 {
		t.Errorf("path segments = %d, want 2", got)
	}
	if got := len(findAllNodes(imp, NodeUnqualifiedImport)); got != 3 {
		t.Errorf("unqualified imports = %d, want 3", got)
	}
}

func TestParseExpressions(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  SyntaxKind
	}{
		{"tuple", "fn f() { #(1, 2.0) }", NodeTuple},
		{"list", "fn f() { [1, 2, ..rest] }", NodeExprSpread},
		{"lambda", "fn f() { fn(a) { a } }", NodeLambda},
		{"block", "fn f() { { 1 } }", NodeBlock},
		{"todo", `fn f() { todo as "later" }`, NodeTodo},
		{"panic", "fn f() { panic }", NodePanic},
		{"hole", "fn f() { g(_) }", NodeHole},
		{"negate", "fn f() { -x }", NodeUnaryOp},
		{"not", "fn f() { !x }", NodeUnaryOp},
		{"constructor", "fn f() { Some(1) }", NodeVariantConstructor},
		{"labeled arg", "fn f() { g(count: 1) }", NodeLabel},
		{"bit string", "fn f() { <<x:size(8)-unit(1), y>> }", NodeBitStringSegment},
		{"case", "fn f() { case a, b { _, _ -> 1 } }", NodeCase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parse := ParseModule(tt.input)
			if len(parse.Errors()) != 0 {
				t.Fatalf("errors = %v, want none", parse.Errors())
			}
			if findNode(parse.Root(), tt.kind) == nil {
				t.Errorf("no %v node:\n%s", tt.kind, parse.Root().String())
			}
		})
	}
}

func TestParseConstants(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  SyntaxKind
	}{
		{"int", "const n = 1", NodeLiteral},
		{"negative", "const n = -1", NodeLiteral},
		{"tuple", "const p = #(1, 2)", NodeConstantTuple},
		{"list", "const xs = [1, 2]", NodeConstantList},
		{"reference", "const m = n", NodeNameRef},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parse := ParseModule(tt.input)
			if len(parse.Errors()) != 0 {
				t.Fatalf("errors = %v, want none", parse.Errors())
			}
			constant := findNode(parse.Root(), NodeModuleConstant)
			if constant == nil {
				t.Fatal("no constant node")
			}
			if findNode(constant, tt.kind) == nil {
				t.Errorf("no %v under constant:\n%s", tt.kind, constant.String())
			}
		})
	}
}

func TestParseAttributes(t *testing.T) {
	parse := ParseModule("@external(erlang, \"mod\", \"fun\")\n@deprecated(\"use other\")\npub fn f() -> Nil")
	if len(parse.Errors()) != 0 {
		t.Fatalf("errors = %v, want none", parse.Errors())
	}
	fn := findNode(parse.Root(), NodeFunction)
	if fn == nil {
		t.Fatal("no function node")
	}
	attrs := findAllNodes(fn, NodeAttribute)
	if len(attrs) != 2 {
		t.Fatalf("attributes = %d, want 2", len(attrs))
	}
	if got := len(findAllNodes(attrs[0], NodeAttributeArg)); got != 3 {
		t.Errorf("args on first attribute = %d, want 3", got)
	}
}

func TestParseExpectedTokenError(t *testing.T) {
	parse := ParseModule("fn f( { 1 }")
	if len(parse.Errors()) == 0 {
		t.Fatal("want at least one error")
	}
	for _, err := range parse.Errors() {
		if err.Message() == "" {
			t.Errorf("empty message for %v", err)
		}
	}
}

func TestParseErrorAtEOF(t *testing.T) {
	input := "fn f() { let x ="
	parse := ParseModule(input)
	if len(parse.Errors()) == 0 {
		t.Fatal("want at least one error")
	}
	last := parse.Errors()[len(parse.Errors())-1]
	if last.Range.Start > uint32(len(input)) {
		t.Errorf("error range %v past end of input", last.Range)
	}
}

func TestCoveringNode(t *testing.T) {
	input := "fn main() { wibble }"
	parse := ParseModule(input)
	root := parse.Root()

	offset := uint32(strings.Index(input, "wibble"))
	r := NewTextRange(offset, offset+6)
	node := root.CoveringNode(r)
	if node == nil {
		t.Fatal("no covering node")
	}
	if node.Kind() != NodeNameRef {
		t.Errorf("covering node kind = %v, want NodeNameRef", node.Kind())
	}

	tok := root.TokenAt(offset)
	if tok == nil || tok.Text() != "wibble" {
		t.Errorf("TokenAt = %v, want wibble token", tok)
	}
}
