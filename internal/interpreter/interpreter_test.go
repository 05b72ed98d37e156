package interpreter_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/th3oth3rjak3/Sigil/internal/diagnostics"
	"github.com/th3oth3rjak3/Sigil/internal/interpreter"
	"github.com/th3oth3rjak3/Sigil/internal/lexer"
	"github.com/th3oth3rjak3/Sigil/internal/parser"
)

// bufSink is a minimal OutputSink backed by a strings.Builder, used for
// scenarios where only the accumulated text matters.
type bufSink struct {
	strings.Builder
}

func (b *bufSink) Write(s string)     { b.WriteString(s) }
func (b *bufSink) WriteLine(s string) { b.WriteString(s); b.WriteString("\n") }

func run(t *testing.T, source string) (string, *diagnostics.Sink) {
	t.Helper()

	sink := diagnostics.NewSink(source)
	tokens := lexer.New(source, sink).Tokenize()
	stmts := parser.New(source, tokens, sink).Parse()

	out := &bufSink{}
	interpreter.New(sink, out).Run(stmts)

	return out.String(), sink
}

func TestRunArithmeticPrecedence(t *testing.T) {
	// spec.md §8 scenario 1.
	out, sink := run(t, "print(1 + 2 * 3);")

	require.False(t, sink.HadError())
	assert.Equal(t, "7", out)
}

func TestRunLetAndPrintln(t *testing.T) {
	// spec.md §8 scenario 2.
	out, sink := run(t, "let x = 10;\nlet y = 20;\nprintln(x + y);")

	require.False(t, sink.HadError())
	assert.Equal(t, "30\n", out)
}

func TestRunRecursiveFactorial(t *testing.T) {
	// spec.md §8 scenario 3.
	source := `fun factorial(n: Int) -> Int {
		if n <= 1 { return 1; }
		return n * factorial(n - 1);
	}
	println(factorial(5));`

	out, sink := run(t, source)

	require.False(t, sink.HadError())
	assert.Equal(t, "120\n", out)
}

func TestRunWhileLoopAccumulates(t *testing.T) {
	// spec.md §8 scenario 4.
	source := "let i = 0; let sum = 0; while i < 3 { sum = sum + i; i = i + 1; } println(sum);"

	out, sink := run(t, source)

	require.False(t, sink.HadError())
	assert.Equal(t, "3\n", out)
}

func TestRunLogicalAndShortCircuits(t *testing.T) {
	// spec.md §8 scenario 5: no division-by-zero diagnostic because the
	// right operand of `and` is never evaluated once the left is falsy.
	out, sink := run(t, "println(false and (5 / 0));")

	require.False(t, sink.HadError())
	assert.Equal(t, "False\n", out)
}

func TestRunUndefinedVariableIsRuntimeError(t *testing.T) {
	// spec.md §8 scenario 6.
	_, sink := run(t, "y = 42;")

	require.True(t, sink.HadError())
	assert.Contains(t, sink.Render(), "Undefined variable 'y'")
}

func TestRunDivisionByZero(t *testing.T) {
	_, sink := run(t, "println(1 / 0);")

	require.True(t, sink.HadError())
	assert.Contains(t, sink.Render(), "Division by zero")
}

func TestRunRuntimeErrorInBlockHaltsProgram(t *testing.T) {
	source := "let x = 1; { let y = 2; z = 3; } println(x);"

	out, sink := run(t, source)

	// The runtime error inside the block halts the program before the
	// final println ever executes (spec.md §7 "terminal").
	require.True(t, sink.HadError())
	assert.Empty(t, out)
}

func TestRunStringCharConcatenation(t *testing.T) {
	out, sink := run(t, `println("count: " + 'x');`)

	require.False(t, sink.HadError())
	assert.Equal(t, "count: x\n", out)
}

func TestRunFloatStringificationDropsTrailingZero(t *testing.T) {
	out, sink := run(t, "println(6.0 / 2.0);")

	require.False(t, sink.HadError())
	assert.Equal(t, "3\n", out)
}

func TestRunBuiltinOutputSinkMock(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := interpreter.NewMockOutputSink(ctrl)
	mock.EXPECT().WriteLine("hi")

	sink := diagnostics.NewSink(`println("hi");`)
	tokens := lexer.New(`println("hi");`, sink).Tokenize()
	stmts := parser.New(`println("hi");`, tokens, sink).Parse()

	interpreter.New(sink, mock).Run(stmts)

	require.False(t, sink.HadError())
}
