package parser_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/th3oth3rjak3/Sigil/internal/ast"
	"github.com/th3oth3rjak3/Sigil/internal/diagnostics"
	"github.com/th3oth3rjak3/Sigil/internal/lexer"
	"github.com/th3oth3rjak3/Sigil/internal/parser"
)

func parse(t *testing.T, source string) ([]ast.Stmt, *diagnostics.Sink) {
	t.Helper()

	sink := diagnostics.NewSink(source)
	tokens := lexer.New(source, sink).Tokenize()

	return parser.New(source, tokens, sink).Parse(), sink
}

func TestParseLetDecl(t *testing.T) {
	stmts, sink := parse(t, "let x = 10;")

	require.False(t, sink.HadError())
	require.Len(t, stmts, 1)

	let, ok := stmts[0].(*ast.LetDecl)
	require.True(t, ok)
	assert.Equal(t, "x", let.Name)
	assert.Nil(t, let.DeclaredType)

	lit, ok := let.Init.(*ast.IntLit)
	require.True(t, ok)
	assert.EqualValues(t, 10, lit.Value)
}

func TestParseLetDeclWithDeclaredType(t *testing.T) {
	stmts, sink := parse(t, "let x: Int = 10;")

	require.False(t, sink.HadError())
	let := stmts[0].(*ast.LetDecl)
	require.NotNil(t, let.DeclaredType)
	assert.Equal(t, "Int", *let.DeclaredType)
}

func TestParseFunctionCallPrecedence(t *testing.T) {
	stmts, sink := parse(t, "println(x + 20);")

	require.False(t, sink.HadError())
	exprStmt := stmts[0].(*ast.ExprStmt)
	call := exprStmt.Expr.(*ast.Call)

	callee := call.Callee.(*ast.Ident)
	assert.Equal(t, "println", callee.Name)
	require.Len(t, call.Args, 1)

	bin := call.Args[0].(*ast.Binary)
	assert.Equal(t, lexer.Plus, bin.Op)
}

func TestParsePrintAsOrdinaryCallee(t *testing.T) {
	// Open Question 1 decision: `print` is a call target like any
	// identifier, never a statement keyword.
	stmts, sink := parse(t, "print(1);")

	require.False(t, sink.HadError())
	exprStmt := stmts[0].(*ast.ExprStmt)
	call := exprStmt.Expr.(*ast.Call)
	callee := call.Callee.(*ast.Ident)
	assert.Equal(t, "print", callee.Name)
}

func TestParseFunDeclWithDocComment(t *testing.T) {
	source := "/// Computes a factorial.\nfun factorial(n: Int) -> Int { return n; }"
	stmts, sink := parse(t, source)

	require.False(t, sink.HadError())
	require.Len(t, stmts, 1)

	fd := stmts[0].(*ast.FunDecl)
	assert.Equal(t, "factorial", fd.Name)
	assert.Equal(t, "Computes a factorial.", fd.Doc)
	require.Len(t, fd.Params, 1)
	assert.Equal(t, "n", fd.Params[0].Name)
	assert.Equal(t, "Int", fd.Params[0].TypeName)
	require.NotNil(t, fd.ReturnType)
	assert.Equal(t, "Int", *fd.ReturnType)
}

func TestParseIfElse(t *testing.T) {
	stmts, sink := parse(t, "if x < 1 { return 1; } else { return 2; }")

	require.False(t, sink.HadError())
	ifStmt := stmts[0].(*ast.If)
	assert.NotNil(t, ifStmt.Then)
	assert.NotNil(t, ifStmt.Else)
}

func TestParseWhileLoop(t *testing.T) {
	source := "let i = 0; while i < 3 { i = i + 1; }"
	stmts, sink := parse(t, source)

	require.False(t, sink.HadError())
	require.Len(t, stmts, 2)
	_, ok := stmts[1].(*ast.While)
	assert.True(t, ok)
}

func TestParseAssignSpeculative(t *testing.T) {
	stmts, sink := parse(t, "y = 42;")

	require.False(t, sink.HadError())
	assign, ok := stmts[0].(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "y", assign.Name)
}

func TestParseMissingSemicolonRecoversToNextStatement(t *testing.T) {
	// spec.md §8 scenario 7.
	source := "let x = 5\nlet y = 10;"
	stmts, sink := parse(t, source)

	require.True(t, sink.HadError())
	assert.Equal(t, 1, sink.Count())
	require.Len(t, stmts, 1)

	let := stmts[0].(*ast.LetDecl)
	assert.Equal(t, "y", let.Name)
}

func TestParseIntegerOverflowReportsDiagnostic(t *testing.T) {
	source := "let x = 99999999999999999999;"
	_, sink := parse(t, source)

	require.True(t, sink.HadError())
	assert.Contains(t, sink.Render(), "Invalid integer literal")
}

func TestParseTooManyArgumentsWarnsButContinues(t *testing.T) {
	var b []byte

	b = append(b, "f("...)

	for i := 0; i < 300; i++ {
		if i > 0 {
			b = append(b, ','...)
		}

		b = append(b, '1')
	}

	b = append(b, ");"...)

	stmts, sink := parse(t, string(b))

	require.True(t, sink.HadError())
	assert.Contains(t, sink.Render(), "more than 255 arguments")
	require.Len(t, stmts, 1)
}

// TestParseIsDeterministic parses the same source twice into two entirely
// separate trees and diffs them structurally with go-cmp: no AST node is
// shared across parents (spec.md §3 invariant), so this is the only way to
// compare "the same program" across two parses without relying on pointer
// identity. Span/Type fields are unexported and compared by neither run
// mutating shared state, so they're excluded from the diff on purpose.
func TestParseIsDeterministic(t *testing.T) {
	source := "let x = 1 + 2 * 3;"

	stmts1, sink1 := parse(t, source)
	stmts2, sink2 := parse(t, source)

	require.False(t, sink1.HadError())
	require.False(t, sink2.HadError())

	opts := cmp.Options{
		cmpopts.IgnoreUnexported(ast.LetDecl{}, ast.Binary{}, ast.IntLit{}),
	}

	if diff := cmp.Diff(stmts1, stmts2, opts); diff != "" {
		t.Fatalf("re-parsing identical source produced different trees (-first +second):\n%s", diff)
	}
}

func TestParseSpanCoversChildren(t *testing.T) {
	stmts, sink := parse(t, "let x = 1 + 2;")
	require.False(t, sink.HadError())

	let := stmts[0].(*ast.LetDecl)
	bin := let.Init.(*ast.Binary)

	assert.True(t, let.Span().Start.Offset <= bin.Span().Start.Offset)
	assert.True(t, let.Span().End.Offset >= bin.Span().End.Offset)
}
