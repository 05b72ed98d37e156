package typechecker

import (
	"fmt"

	"github.com/th3oth3rjak3/Sigil/internal/ast"
	"github.com/th3oth3rjak3/Sigil/internal/lexer"
	"github.com/th3oth3rjak3/Sigil/internal/types"
)

// checkExpr resolves n's static type, annotates n via SetType, and
// reports any mismatch. A result's IsError() suppresses further
// diagnostics from whatever uses it (spec.md §4.4 "Error propagation").
func (c *Checker) checkExpr(n ast.Expr) types.Type {
	t := c.resolve(n)
	n.SetType(t)

	return t
}

func (c *Checker) resolve(n ast.Expr) types.Type {
	switch e := n.(type) {
	case *ast.IntLit:
		return types.TInt
	case *ast.FloatLit:
		return types.TFloat
	case *ast.StringLit:
		return types.TString
	case *ast.CharLit:
		return types.TChar
	case *ast.BoolLit:
		return types.TBool
	case *ast.Ident:
		return c.resolveIdent(e)
	case *ast.Unary:
		return c.resolveUnary(e)
	case *ast.Binary:
		return c.resolveBinary(e)
	case *ast.Grouping:
		return c.checkExpr(e.Inner)
	case *ast.Call:
		return c.resolveCall(e)
	default:
		return types.TError
	}
}

func (c *Checker) resolveIdent(e *ast.Ident) types.Type {
	if t, ok := c.lookupVar(e.Name); ok {
		return t
	}

	if t, ok := c.functions[e.Name]; ok {
		return t
	}

	if b, ok := builtins[e.Name]; ok {
		if b.Variadic {
			return types.Function(nil, b.Returns)
		}

		return types.Function(b.Params, b.Returns)
	}

	c.sink.Report(fmt.Sprintf("Undefined variable or function: %s", e.Name), e.Span())

	return types.TError
}

func (c *Checker) resolveUnary(e *ast.Unary) types.Type {
	operand := c.checkExpr(e.Operand)
	if operand.IsError() {
		return types.TError
	}

	switch e.Op {
	case lexer.Minus:
		if operand.Equal(types.TInt) {
			return types.TInt
		}

		if operand.Equal(types.TFloat) {
			return types.TFloat
		}

		c.sink.Report(fmt.Sprintf("Unary '-' is not supported for type %s", operand), e.Span())

		return types.TError
	case lexer.Bang:
		if operand.Equal(types.TBool) {
			return types.TBool
		}

		c.sink.Report(fmt.Sprintf("Unary '!' is not supported for type %s", operand), e.Span())

		return types.TError
	default:
		return types.TError
	}
}

func (c *Checker) resolveBinary(e *ast.Binary) types.Type {
	left := c.checkExpr(e.Left)
	right := c.checkExpr(e.Right)

	if left.IsError() || right.IsError() {
		return types.TError
	}

	switch e.Op {
	case lexer.Plus:
		return c.resolveAdd(e, left, right)
	case lexer.Minus, lexer.Star, lexer.Slash:
		return c.resolveArithmetic(e, left, right)
	case lexer.Less, lexer.LessEqual, lexer.Greater, lexer.GreaterEqual:
		return c.resolveComparison(e, left, right)
	case lexer.EqualEqual, lexer.BangEqual:
		// Any two types compare for equality; the runtime compares tags
		// (spec.md §4.4 "no cross-type coercion").
		return types.TBool
	case lexer.Or, lexer.And:
		return c.resolveLogical(left, right)
	default:
		return types.TError
	}
}

func (c *Checker) resolveAdd(e *ast.Binary, left, right types.Type) types.Type {
	switch {
	case left.Equal(types.TInt) && right.Equal(types.TInt):
		return types.TInt
	case left.Equal(types.TFloat) && right.Equal(types.TFloat):
		return types.TFloat
	case (left.Equal(types.TInt) && right.Equal(types.TFloat)) || (left.Equal(types.TFloat) && right.Equal(types.TInt)):
		return types.TFloat
	case left.Equal(types.TString) && right.Equal(types.TString):
		return types.TString
	case left.Equal(types.TString) && right.Equal(types.TChar):
		return types.TString
	case left.Equal(types.TChar) && right.Equal(types.TString):
		return types.TString
	case left.Equal(types.TChar) && right.Equal(types.TChar):
		return types.TString
	default:
		c.sink.Report(fmt.Sprintf("Operator '+' does not support %s and %s", left, right), e.Span())

		return types.TError
	}
}

func (c *Checker) resolveArithmetic(e *ast.Binary, left, right types.Type) types.Type {
	switch {
	case left.Equal(types.TInt) && right.Equal(types.TInt):
		return types.TInt
	case left.Equal(types.TFloat) && right.Equal(types.TFloat):
		return types.TFloat
	case (left.Equal(types.TInt) && right.Equal(types.TFloat)) || (left.Equal(types.TFloat) && right.Equal(types.TInt)):
		return types.TFloat
	default:
		c.sink.Report(fmt.Sprintf("Operator '%s' does not support %s and %s", e.Op, left, right), e.Span())

		return types.TError
	}
}

func (c *Checker) resolveComparison(e *ast.Binary, left, right types.Type) types.Type {
	numeric := func(t types.Type) bool { return t.Equal(types.TInt) || t.Equal(types.TFloat) }

	switch {
	case numeric(left) && numeric(right):
		return types.TBool
	case left.Equal(types.TString) && right.Equal(types.TString):
		return types.TBool
	default:
		c.sink.Report(fmt.Sprintf("Operator '%s' does not support %s and %s", e.Op, left, right), e.Span())

		return types.TError
	}
}

// resolveLogical types `or`/`and`. The runtime can yield either operand's
// value untouched (spec.md §4.6 truthiness rule), so when both sides
// agree we report that type; otherwise the static result is Any.
func (c *Checker) resolveLogical(left, right types.Type) types.Type {
	if left.Equal(right) {
		return left
	}

	return types.TAny
}

func (c *Checker) resolveCall(e *ast.Call) types.Type {
	callee, ok := e.Callee.(*ast.Ident)
	if !ok {
		c.sink.Report("Call target must be a function name", e.Callee.Span())

		for _, arg := range e.Args {
			c.checkExpr(arg)
		}

		return types.TError
	}

	if b, ok := builtins[callee.Name]; ok {
		return c.resolveBuiltinCall(e, callee.Name, b)
	}

	if fn, ok := c.functions[callee.Name]; ok {
		return c.resolveUserCall(e, callee.Name, fn)
	}

	c.sink.Report(fmt.Sprintf("Undefined variable or function: %s", callee.Name), callee.Span())

	for _, arg := range e.Args {
		c.checkExpr(arg)
	}

	return types.TError
}

func (c *Checker) resolveBuiltinCall(e *ast.Call, name string, b builtin) types.Type {
	if b.Variadic {
		for _, arg := range e.Args {
			c.checkExpr(arg)
		}

		return b.Returns
	}

	if len(e.Args) != len(b.Params) {
		c.sink.Report(fmt.Sprintf("'%s' expects %d argument(s), got %d", name, len(b.Params), len(e.Args)), e.Span())

		for _, arg := range e.Args {
			c.checkExpr(arg)
		}

		return types.TError
	}

	for i, arg := range e.Args {
		argType := c.checkExpr(arg)
		if !types.AssignableFrom(b.Params[i], argType) {
			c.sink.Report(fmt.Sprintf("Argument %d to '%s': expected %s, got %s", i+1, name, b.Params[i], argType), arg.Span())
		}
	}

	return b.Returns
}

func (c *Checker) resolveUserCall(e *ast.Call, name string, fn types.Type) types.Type {
	if len(e.Args) != len(fn.Params) {
		c.sink.Report(fmt.Sprintf("'%s' expects %d argument(s), got %d", name, len(fn.Params), len(e.Args)), e.Span())

		for _, arg := range e.Args {
			c.checkExpr(arg)
		}

		return types.TError
	}

	for i, arg := range e.Args {
		argType := c.checkExpr(arg)
		if !types.AssignableFrom(fn.Params[i], argType) {
			c.sink.Report(fmt.Sprintf("Argument %d to '%s': expected %s, got %s", i+1, name, fn.Params[i], argType), arg.Span())
		}
	}

	return *fn.Returns
}
