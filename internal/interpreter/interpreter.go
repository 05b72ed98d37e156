// Package interpreter tree-walks a type-checked Sigil AST (spec.md §4.6).
// Statement execution yields a tagged Outcome (Normal, Return, or Error)
// instead of unwinding via a host exception, per spec.md §9's
// re-architecture note; the nearest enclosing function call site
// pattern-matches on it.
package interpreter

import (
	"github.com/th3oth3rjak3/Sigil/internal/ast"
	"github.com/th3oth3rjak3/Sigil/internal/diagnostics"
)

// Interpreter executes a statement list against a chain of lexical scope
// frames, writing built-in output to an OutputSink.
type Interpreter struct {
	global    *Environment
	current   *Environment
	functions map[string]*ast.FunDecl
	sink      *diagnostics.Sink
	out       OutputSink
}

// New creates an Interpreter reporting runtime errors into sink and
// sending built-in output to out.
func New(sink *diagnostics.Sink, out OutputSink) *Interpreter {
	global := NewEnvironment(nil)

	return &Interpreter{
		global:    global,
		current:   global,
		functions: map[string]*ast.FunDecl{},
		sink:      sink,
		out:       out,
	}
}

// ResetSink swaps the diagnostics sink a REPL session reports into between
// lines, while leaving accumulated global variables and function
// declarations untouched.
func (i *Interpreter) ResetSink(sink *diagnostics.Sink) {
	i.sink = sink
}

// Run registers every top-level function declaration (so forward
// references resolve) and then executes stmts in order. A runtime error
// is reported to the sink and halts execution (spec.md §7 "Runtime
// errors... are terminal").
func (i *Interpreter) Run(stmts []ast.Stmt) {
	for _, s := range stmts {
		if fd, ok := s.(*ast.FunDecl); ok {
			i.functions[fd.Name] = fd
		}
	}

	for _, s := range stmts {
		outcome := i.execStmt(s)

		switch outcome.Kind {
		case errorOutcome:
			i.sink.Report(outcome.Err.Message, outcome.Err.Span)

			return
		case returnOutcome:
			// spec.md §9 Open Question 3: top-level return is rejected by
			// the type checker before this point is ever reached in the
			// normal pipeline; executing the interpreter directly on
			// unchecked input simply ends the program here.
			return
		}
	}
}
