// Package typechecker implements the Sigil static type checker described
// in spec.md §4.4: a two-pass AST walk (collect function signatures, then
// visit) that annotates expressions with their resolved Type and reports
// mismatches into the shared diagnostics sink. It never mutates the AST
// structurally; an ErrorType poisons a subtree to suppress cascades.
package typechecker

import (
	"fmt"

	"github.com/th3oth3rjak3/Sigil/internal/ast"
	"github.com/th3oth3rjak3/Sigil/internal/diagnostics"
	"github.com/th3oth3rjak3/Sigil/internal/types"
)

// builtin describes one of the three hard-coded built-in functions
// (spec.md §4.4 "built-in table", reconciled with §6's variadic external
// interface: print/println accept any number of Any-typed arguments, not
// the single String parameter §4.4's prose shorthand suggests).
type builtin struct {
	Params   []types.Type // nil when Variadic
	Variadic bool
	Returns  types.Type
}

var builtins = map[string]builtin{
	"print":   {Variadic: true, Returns: types.TVoid},
	"println": {Variadic: true, Returns: types.TVoid},
	"string":  {Params: []types.Type{types.TAny}, Returns: types.TString},
}

// Checker walks a statement list and annotates its expressions.
type Checker struct {
	sink      *diagnostics.Sink
	scopes    []map[string]types.Type
	functions map[string]types.Type

	inFunction     bool
	declaredReturn types.Type
	lastReturn     types.Type
}

// Check type-checks stmts, reporting into sink. It is the package's sole
// entry point.
func Check(stmts []ast.Stmt, sink *diagnostics.Sink) {
	c := &Checker{sink: sink, functions: map[string]types.Type{}}

	c.pushScope()
	defer c.popScope()

	c.collectFunctions(stmts)

	for _, s := range stmts {
		c.checkStmt(s)
	}
}

// collectFunctions is pass 1 (spec.md §4.4): every top-level FunDecl is
// registered before any body is visited, so forward references resolve.
func (c *Checker) collectFunctions(stmts []ast.Stmt) {
	for _, s := range stmts {
		fd, ok := s.(*ast.FunDecl)
		if !ok {
			continue
		}

		params := make([]types.Type, len(fd.Params))

		for i, p := range fd.Params {
			t, ok := types.FromName(p.TypeName)
			if !ok {
				c.sink.Report(fmt.Sprintf("Unknown type name: %s", p.TypeName), fd.Span())
			}

			params[i] = t
		}

		ret := types.TVoid

		if fd.ReturnType != nil {
			t, ok := types.FromName(*fd.ReturnType)
			if !ok {
				c.sink.Report(fmt.Sprintf("Unknown type name: %s", *fd.ReturnType), fd.Span())
			}

			ret = t
		}

		c.functions[fd.Name] = types.Function(params, ret)
	}
}

// --- scope chain ---

func (c *Checker) pushScope() {
	c.scopes = append(c.scopes, map[string]types.Type{})
}

func (c *Checker) popScope() {
	c.scopes = c.scopes[:len(c.scopes)-1]
}

func (c *Checker) define(name string, t types.Type) {
	c.scopes[len(c.scopes)-1][name] = t
}

func (c *Checker) lookupVar(name string) (types.Type, bool) {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if t, ok := c.scopes[i][name]; ok {
			return t, true
		}
	}

	return types.Type{}, false
}
