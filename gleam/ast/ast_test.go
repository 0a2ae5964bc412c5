package ast

import (
	"testing"

	"github.com/orvitpng/glas/gleam/parser"
)

func parseFile(t *testing.T, src string) *SourceFile {
	t.Helper()
	parse := parser.ParseModule(src)
	file := SourceFileFromNode(parse.Root())
	if file == nil {
		t.Fatalf("no source file for %q", src)
	}
	return file
}

func TestFunctionAccessors(t *testing.T) {
	file := parseFile(t, "/// Adds numbers.\n/// Carefully.\npub fn add(in count: Int, _extra: Float) -> Int {\n  count\n}\n")

	stmts := file.Statements()
	if len(stmts) != 1 {
		t.Fatalf("statements = %d, want 1", len(stmts))
	}
	fn, ok := stmts[0].(*Function)
	if !ok {
		t.Fatalf("statement is %T, want *Function", stmts[0])
	}

	if got := fn.Name().Text(); got != "add" {
		t.Errorf("Name = %q, want %q", got, "add")
	}
	if !fn.IsPublic() {
		t.Error("IsPublic = false, want true")
	}
	if got := fn.DocComment(); got != "Adds numbers.\nCarefully." {
		t.Errorf("DocComment = %q", got)
	}

	params := fn.Params()
	if len(params) != 2 {
		t.Fatalf("params = %d, want 2", len(params))
	}
	if got := params[0].Label().Text(); got != "in" {
		t.Errorf("param 0 label = %q, want %q", got, "in")
	}
	pv, ok := params[0].Pattern().Pattern().(*PatternVariable)
	if !ok || pv.Text() != "count" {
		t.Errorf("param 0 binding = %v, want count", params[0].Pattern().Pattern())
	}
	if params[1].Label() != nil {
		t.Error("param 1 label is set, want nil")
	}
	if pv, ok := params[1].Pattern().Pattern().(*PatternVariable); !ok || pv.Text() != "_extra" {
		t.Errorf("param 1 binding = %v, want _extra", params[1].Pattern().Pattern())
	}
	ref, ok := params[0].Type().(*TypeNameRef)
	if !ok || ref.TypeName().Text() != "Int" {
		t.Errorf("param 0 type = %v, want Int", params[0].Type())
	}

	ret, ok := fn.ReturnType().(*TypeNameRef)
	if !ok || ret.TypeName().Text() != "Int" {
		t.Errorf("return type = %v, want Int", fn.ReturnType())
	}

	body := fn.Body()
	if body == nil {
		t.Fatal("no body")
	}
	if got := len(body.Statements()); got != 1 {
		t.Errorf("body statements = %d, want 1", got)
	}
}

func TestFunctionAttributes(t *testing.T) {
	file := parseFile(t, "@external(erlang, \"m\", \"f\")\npub fn f() -> Nil\n")
	fn := file.Statements()[0].(*Function)

	attrs := fn.Attributes()
	if len(attrs) != 1 {
		t.Fatalf("attributes = %d, want 1", len(attrs))
	}
	if got := attrs[0].Name().Text(); got != "external" {
		t.Errorf("attribute name = %q, want %q", got, "external")
	}
	if got := len(attrs[0].Args()); got != 3 {
		t.Errorf("attribute args = %d, want 3", got)
	}
}

func TestImportAccessors(t *testing.T) {
	file := parseFile(t, "import gleam/option.{Some, unwrap as get} as opt\n")
	imp := file.Statements()[0].(*Import)

	path := imp.ModulePath()
	if len(path) != 2 || path[0] != "gleam" || path[1] != "option" {
		t.Errorf("ModulePath = %v, want [gleam option]", path)
	}

	unq := imp.UnqualifiedImports()
	if len(unq) != 2 {
		t.Fatalf("unqualified = %d, want 2", len(unq))
	}
	if got := unq[0].Imported(); got != "Some" {
		t.Errorf("Imported = %q, want Some", got)
	}
	if !unq[0].IsType() {
		t.Error("Some IsType = false, want true")
	}
	if got := unq[0].Alias(); got != "" {
		t.Errorf("Some alias = %q, want empty", got)
	}
	if got := unq[1].Imported(); got != "unwrap" {
		t.Errorf("Imported = %q, want unwrap", got)
	}
	if got := unq[1].Alias(); got != "get" {
		t.Errorf("alias = %q, want get", got)
	}

	if imp.Alias() == nil || imp.Alias().Text() != "opt" {
		t.Errorf("module alias = %v, want opt", imp.Alias())
	}
}

func TestConstantAccessors(t *testing.T) {
	file := parseFile(t, "const sizes: List(Int) = [1, 2, 3]\n")
	c := file.Statements()[0].(*ModuleConstant)

	if got := c.Name().Text(); got != "sizes" {
		t.Errorf("Name = %q, want sizes", got)
	}
	if _, ok := c.Type().(*TypeApplication); !ok {
		t.Errorf("Type = %T, want *TypeApplication", c.Type())
	}
	list, ok := c.Value().(*ConstantList)
	if !ok {
		t.Fatalf("Value = %T, want *ConstantList", c.Value())
	}
	if got := len(list.Elements()); got != 3 {
		t.Errorf("elements = %d, want 3", got)
	}
}

func TestAdtAccessors(t *testing.T) {
	file := parseFile(t, "pub opaque type Shape(a) {\n  Circle(radius: Float)\n  Point\n}\n")
	adt := file.Statements()[0].(*Adt)

	if got := adt.Name().Text(); got != "Shape" {
		t.Errorf("Name = %q, want Shape", got)
	}
	if !adt.IsOpaque() {
		t.Error("IsOpaque = false, want true")
	}
	gp := adt.GenericParams()
	if len(gp) != 1 || gp[0].Text() != "a" {
		t.Errorf("GenericParams = %v, want [a]", gp)
	}

	variants := adt.Variants()
	if len(variants) != 2 {
		t.Fatalf("variants = %d, want 2", len(variants))
	}
	if got := variants[0].Name().Text(); got != "Circle" {
		t.Errorf("variant name = %q, want Circle", got)
	}
	fields := variants[0].Fields()
	if len(fields) != 1 {
		t.Fatalf("fields = %d, want 1", len(fields))
	}
	if got := fields[0].Label().Text(); got != "radius" {
		t.Errorf("field label = %q, want radius", got)
	}
	if ref, ok := fields[0].Type().(*TypeNameRef); !ok || ref.TypeName().Text() != "Float" {
		t.Errorf("field type = %v, want Float", fields[0].Type())
	}
	if len(variants[1].Fields()) != 0 {
		t.Error("Point has fields, want none")
	}
}

func TestTypeAliasAccessors(t *testing.T) {
	file := parseFile(t, "type Names = List(String)\n")
	alias := file.Statements()[0].(*CustomTypeAlias)

	if got := alias.Name().Text(); got != "Names" {
		t.Errorf("Name = %q, want Names", got)
	}
	app, ok := alias.Aliased().(*TypeApplication)
	if !ok {
		t.Fatalf("Aliased = %T, want *TypeApplication", alias.Aliased())
	}
	if got := app.Constructor().TypeName().Text(); got != "List" {
		t.Errorf("constructor = %q, want List", got)
	}
	if got := len(app.Args()); got != 1 {
		t.Errorf("type args = %d, want 1", got)
	}
}

func TestFnTypeAccessors(t *testing.T) {
	file := parseFile(t, "type F = fn(Int, a) -> Bool\n")
	alias := file.Statements()[0].(*CustomTypeAlias)
	fnType, ok := alias.Aliased().(*FnType)
	if !ok {
		t.Fatalf("Aliased = %T, want *FnType", alias.Aliased())
	}
	if got := len(fnType.ParamTypes()); got != 2 {
		t.Errorf("param types = %d, want 2", got)
	}
	ret, ok := fnType.ReturnType().(*TypeNameRef)
	if !ok || ret.TypeName().Text() != "Bool" {
		t.Errorf("return type = %v, want Bool", fnType.ReturnType())
	}
}

func firstBody(t *testing.T, file *SourceFile) *Block {
	t.Helper()
	fn, ok := file.Statements()[0].(*Function)
	if !ok {
		t.Fatalf("statement is %T, want *Function", file.Statements()[0])
	}
	body := fn.Body()
	if body == nil {
		t.Fatal("no body")
	}
	return body
}

func TestBinaryOpAccessors(t *testing.T) {
	file := parseFile(t, "fn f() { 1 + 2 * 3 }")
	body := firstBody(t, file)

	stmt := body.Statements()[0].(*StmtExpr)
	op, ok := stmt.Expr().(*BinaryOp)
	if !ok {
		t.Fatalf("expr = %T, want *BinaryOp", stmt.Expr())
	}
	if tok := op.OpToken(); tok == nil || tok.Kind() != parser.TokenPlus {
		t.Errorf("OpToken = %v, want +", tok)
	}
	if _, ok := op.Lhs().(*Literal); !ok {
		t.Errorf("Lhs = %T, want *Literal", op.Lhs())
	}
	rhs, ok := op.Rhs().(*BinaryOp)
	if !ok {
		t.Fatalf("Rhs = %T, want *BinaryOp", op.Rhs())
	}
	if tok := rhs.OpToken(); tok == nil || tok.Kind() != parser.TokenStar {
		t.Errorf("nested OpToken = %v, want *", tok)
	}
}

func TestPipeAccessors(t *testing.T) {
	file := parseFile(t, "fn f() { xs |> map(double) }")
	body := firstBody(t, file)

	stmt := body.Statements()[0].(*StmtExpr)
	pipe, ok := stmt.Expr().(*Pipe)
	if !ok {
		t.Fatalf("expr = %T, want *Pipe", stmt.Expr())
	}
	if _, ok := pipe.Lhs().(*Variable); !ok {
		t.Errorf("Lhs = %T, want *Variable", pipe.Lhs())
	}
	if _, ok := pipe.Rhs().(*ExprCall); !ok {
		t.Errorf("Rhs = %T, want *ExprCall", pipe.Rhs())
	}
}

func TestPostfixAccessors(t *testing.T) {
	file := parseFile(t, "fn f() { a.b(c).0 }")
	body := firstBody(t, file)

	stmt := body.Statements()[0].(*StmtExpr)
	index, ok := stmt.Expr().(*TupleIndex)
	if !ok {
		t.Fatalf("expr = %T, want *TupleIndex", stmt.Expr())
	}
	if got := index.Index().Token().Text(); got != "0" {
		t.Errorf("index = %q, want 0", got)
	}
	call, ok := index.Base().(*ExprCall)
	if !ok {
		t.Fatalf("base = %T, want *ExprCall", index.Base())
	}
	if got := len(call.Args()); got != 1 {
		t.Errorf("args = %d, want 1", got)
	}
	access, ok := call.Callee().(*FieldAccess)
	if !ok {
		t.Fatalf("callee = %T, want *FieldAccess", call.Callee())
	}
	if got := access.Field().Text(); got != "b" {
		t.Errorf("field = %q, want b", got)
	}
	variable, ok := access.Base().(*Variable)
	if !ok || variable.NameRef().Text() != "a" {
		t.Errorf("base = %v, want variable a", access.Base())
	}
}

func TestVariantConstructorLabeledArgs(t *testing.T) {
	file := parseFile(t, "fn f() { Muddle(name: 5) }")
	body := firstBody(t, file)

	stmt := body.Statements()[0].(*StmtExpr)
	ctor, ok := stmt.Expr().(*VariantConstructor)
	if !ok {
		t.Fatalf("expr = %T, want *VariantConstructor", stmt.Expr())
	}
	if got := ctor.NameRef().Text(); got != "Muddle" {
		t.Errorf("name = %q, want Muddle", got)
	}
	args := ctor.Args()
	if len(args) != 1 {
		t.Fatalf("args = %d, want 1", len(args))
	}
	if got := args[0].Label().Text(); got != "name" {
		t.Errorf("label = %q, want name", got)
	}
	if _, ok := args[0].Value().(*Literal); !ok {
		t.Errorf("value = %T, want *Literal", args[0].Value())
	}
}

func TestCaseAccessors(t *testing.T) {
	file := parseFile(t, "fn f(x) { case x { Bird | Snake, a if a -> 2 _ -> 0 } }")
	body := firstBody(t, file)

	stmt := body.Statements()[0].(*StmtExpr)
	c, ok := stmt.Expr().(*Case)
	if !ok {
		t.Fatalf("expr = %T, want *Case", stmt.Expr())
	}
	if got := len(c.Subjects()); got != 1 {
		t.Errorf("subjects = %d, want 1", got)
	}
	clauses := c.Clauses()
	if len(clauses) != 2 {
		t.Fatalf("clauses = %d, want 2", len(clauses))
	}

	alts := clauses[0].Patterns()
	if len(alts) != 2 {
		t.Fatalf("alternatives = %d, want 2", len(alts))
	}
	if got := len(alts[0].Patterns()); got != 2 {
		t.Errorf("patterns in first alternative = %d, want 2", got)
	}
	if clauses[0].Guard() == nil {
		t.Error("no guard on first clause")
	}
	if _, ok := clauses[0].Body().(*Literal); !ok {
		t.Errorf("clause body = %T, want *Literal", clauses[0].Body())
	}
	if clauses[1].Guard() != nil {
		t.Error("guard on second clause, want none")
	}
}

func TestPatternListSpread(t *testing.T) {
	file := parseFile(t, "fn f(x) { case x { [..name] -> name } }")
	body := firstBody(t, file)

	c := body.Statements()[0].(*StmtExpr).Expr().(*Case)
	alt := c.Clauses()[0].Patterns()[0]
	list, ok := alt.Patterns()[0].Pattern().(*PatternList)
	if !ok {
		t.Fatalf("pattern = %T, want *PatternList", alt.Patterns()[0].Pattern())
	}
	elems := list.Elements()
	if len(elems) != 1 {
		t.Fatalf("elements = %d, want 1", len(elems))
	}
	spread, ok := elems[0].Pattern().(*PatternSpread)
	if !ok {
		t.Fatalf("element = %T, want *PatternSpread", elems[0].Pattern())
	}
	if spread.Name() == nil || spread.Name().Text() != "name" {
		t.Errorf("spread name = %v, want name", spread.Name())
	}
}

func TestPatternConcat(t *testing.T) {
	file := parseFile(t, `fn f(x) { case x { "pre" <> rest -> rest } }`)
	body := firstBody(t, file)

	c := body.Statements()[0].(*StmtExpr).Expr().(*Case)
	concat, ok := c.Clauses()[0].Patterns()[0].Patterns()[0].Pattern().(*PatternConcat)
	if !ok {
		t.Fatal("pattern is not a concat")
	}
	if got := concat.Prefix().Token().Text(); got != `"pre"` {
		t.Errorf("prefix = %q, want %q", got, `"pre"`)
	}
	if got := concat.Rest().Text(); got != "rest" {
		t.Errorf("rest = %q, want rest", got)
	}
}

func TestVariantRefPattern(t *testing.T) {
	file := parseFile(t, "fn f(x) { case x { option.Some(v) as whole -> whole } }")
	body := firstBody(t, file)

	c := body.Statements()[0].(*StmtExpr).Expr().(*Case)
	as := c.Clauses()[0].Patterns()[0].Patterns()[0]
	ref, ok := as.Pattern().(*VariantRef)
	if !ok {
		t.Fatalf("pattern = %T, want *VariantRef", as.Pattern())
	}
	if ref.Module() == nil {
		t.Error("no module qualifier")
	}
	if got := ref.NameRef().Text(); got != "Some" {
		t.Errorf("name = %q, want Some", got)
	}
	if got := len(ref.Fields()); got != 1 {
		t.Errorf("fields = %d, want 1", got)
	}
	if as.AsName() == nil || as.AsName().Text() != "whole" {
		t.Errorf("as name = %v, want whole", as.AsName())
	}
}

func TestLetAccessors(t *testing.T) {
	file := parseFile(t, "fn f() { let assert Ok(v): Result = g() }")
	body := firstBody(t, file)

	let, ok := body.Statements()[0].(*StmtLet)
	if !ok {
		t.Fatalf("statement = %T, want *StmtLet", body.Statements()[0])
	}
	if !let.IsAssert() {
		t.Error("IsAssert = false, want true")
	}
	if _, ok := let.Pattern().Pattern().(*VariantRef); !ok {
		t.Errorf("pattern = %T, want *VariantRef", let.Pattern().Pattern())
	}
	if let.Annotation() == nil {
		t.Error("no annotation")
	}
	if _, ok := let.Value().(*ExprCall); !ok {
		t.Errorf("value = %T, want *ExprCall", let.Value())
	}
}

func TestUseAccessors(t *testing.T) {
	file := parseFile(t, "fn f() { use a, b <- zip(xs, ys) }")
	body := firstBody(t, file)

	use, ok := body.Statements()[0].(*StmtUse)
	if !ok {
		t.Fatalf("statement = %T, want *StmtUse", body.Statements()[0])
	}
	if got := len(use.Assignments()); got != 2 {
		t.Errorf("assignments = %d, want 2", got)
	}
	if _, ok := use.Callee().(*ExprCall); !ok {
		t.Errorf("callee = %T, want *ExprCall", use.Callee())
	}
}

func TestLambdaAccessors(t *testing.T) {
	file := parseFile(t, "fn f() { fn(a, b) { a } }")
	body := firstBody(t, file)

	stmt := body.Statements()[0].(*StmtExpr)
	lambda, ok := stmt.Expr().(*Lambda)
	if !ok {
		t.Fatalf("expr = %T, want *Lambda", stmt.Expr())
	}
	if got := len(lambda.Params()); got != 2 {
		t.Errorf("params = %d, want 2", got)
	}
	if lambda.Body() == nil {
		t.Error("no body")
	}
}
