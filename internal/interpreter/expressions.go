package interpreter

import (
	"fmt"

	"github.com/th3oth3rjak3/Sigil/internal/ast"
	"github.com/th3oth3rjak3/Sigil/internal/lexer"
	"github.com/th3oth3rjak3/Sigil/internal/position"
)

func (i *Interpreter) eval(e ast.Expr) (Value, *RuntimeError) {
	switch n := e.(type) {
	case *ast.IntLit:
		return NewInt(n.Value), nil
	case *ast.FloatLit:
		return NewFloat(n.Value), nil
	case *ast.StringLit:
		return NewString(n.Value), nil
	case *ast.CharLit:
		return NewChar(n.Value), nil
	case *ast.BoolLit:
		return NewBool(n.Value), nil
	case *ast.Ident:
		return i.current.Get(n.Name, n.Span())
	case *ast.Unary:
		return i.evalUnary(n)
	case *ast.Binary:
		return i.evalBinary(n)
	case *ast.Grouping:
		return i.eval(n.Inner)
	case *ast.Call:
		return i.evalCall(n)
	default:
		return Value{}, &RuntimeError{Message: "Unsupported expression", Span: e.Span()}
	}
}

func (i *Interpreter) evalUnary(n *ast.Unary) (Value, *RuntimeError) {
	operand, err := i.eval(n.Operand)
	if err != nil {
		return Value{}, err
	}

	switch n.Op {
	case lexer.Minus:
		switch operand.Kind {
		case Int:
			return NewInt(-operand.AsInt), nil
		case Float:
			return NewFloat(-operand.AsFlt), nil
		default:
			return Value{}, &RuntimeError{Message: "Unary '-' is not supported for " + operand.TypeName(), Span: n.Span()}
		}
	case lexer.Bang:
		return NewBool(!operand.Truthy()), nil
	default:
		return Value{}, &RuntimeError{Message: "Unsupported unary operator", Span: n.Span()}
	}
}

func (i *Interpreter) evalBinary(n *ast.Binary) (Value, *RuntimeError) {
	// `or`/`and` short-circuit and must not evaluate the right operand
	// unless needed (spec.md §8 scenario 5).
	if n.Op == lexer.Or || n.Op == lexer.And {
		return i.evalLogical(n)
	}

	left, err := i.eval(n.Left)
	if err != nil {
		return Value{}, err
	}

	right, err := i.eval(n.Right)
	if err != nil {
		return Value{}, err
	}

	switch n.Op {
	case lexer.Plus:
		return i.evalAdd(n, left, right)
	case lexer.Minus, lexer.Star, lexer.Slash:
		return i.evalArithmetic(n, left, right)
	case lexer.Less, lexer.LessEqual, lexer.Greater, lexer.GreaterEqual:
		return i.evalComparison(n, left, right)
	case lexer.EqualEqual:
		return NewBool(left.Equal(right)), nil
	case lexer.BangEqual:
		return NewBool(!left.Equal(right)), nil
	default:
		return Value{}, &RuntimeError{Message: "Unsupported binary operator", Span: n.Span()}
	}
}

func (i *Interpreter) evalLogical(n *ast.Binary) (Value, *RuntimeError) {
	left, err := i.eval(n.Left)
	if err != nil {
		return Value{}, err
	}

	if n.Op == lexer.Or {
		if left.Truthy() {
			return left, nil
		}

		return i.eval(n.Right)
	}

	// lexer.And
	if !left.Truthy() {
		return left, nil
	}

	return i.eval(n.Right)
}

func asFloat(v Value) float64 {
	if v.Kind == Int {
		return float64(v.AsInt)
	}

	return v.AsFlt
}

func bothNumeric(l, r Value) bool {
	numeric := func(v Value) bool { return v.Kind == Int || v.Kind == Float }

	return numeric(l) && numeric(r)
}

func (i *Interpreter) evalAdd(n *ast.Binary, left, right Value) (Value, *RuntimeError) {
	switch {
	case left.Kind == Int && right.Kind == Int:
		return NewInt(left.AsInt + right.AsInt), nil
	case bothNumeric(left, right):
		return NewFloat(asFloat(left) + asFloat(right)), nil
	case (left.Kind == String || left.Kind == Char) && (right.Kind == String || right.Kind == Char):
		return NewString(left.String() + right.String()), nil
	default:
		return Value{}, &RuntimeError{Message: "Operator '+' does not support " + left.TypeName() + " and " + right.TypeName(), Span: n.Span()}
	}
}

func (i *Interpreter) evalArithmetic(n *ast.Binary, left, right Value) (Value, *RuntimeError) {
	if !bothNumeric(left, right) {
		return Value{}, &RuntimeError{Message: "Operator does not support " + left.TypeName() + " and " + right.TypeName(), Span: n.Span()}
	}

	if left.Kind == Int && right.Kind == Int {
		switch n.Op {
		case lexer.Minus:
			return NewInt(left.AsInt - right.AsInt), nil
		case lexer.Star:
			return NewInt(left.AsInt * right.AsInt), nil
		case lexer.Slash:
			if right.AsInt == 0 {
				return Value{}, &RuntimeError{Message: "Division by zero", Span: n.Span()}
			}

			return NewInt(left.AsInt / right.AsInt), nil
		}
	}

	l, r := asFloat(left), asFloat(right)

	switch n.Op {
	case lexer.Minus:
		return NewFloat(l - r), nil
	case lexer.Star:
		return NewFloat(l * r), nil
	case lexer.Slash:
		if r == 0.0 {
			return Value{}, &RuntimeError{Message: "Division by zero", Span: n.Span()}
		}

		return NewFloat(l / r), nil
	}

	return Value{}, &RuntimeError{Message: "Unsupported arithmetic operator", Span: n.Span()}
}

func (i *Interpreter) evalComparison(n *ast.Binary, left, right Value) (Value, *RuntimeError) {
	var cmp int

	switch {
	case bothNumeric(left, right):
		l, r := asFloat(left), asFloat(right)

		switch {
		case l < r:
			cmp = -1
		case l > r:
			cmp = 1
		default:
			cmp = 0
		}
	case left.Kind == String && right.Kind == String:
		switch {
		case left.AsStr < right.AsStr:
			cmp = -1
		case left.AsStr > right.AsStr:
			cmp = 1
		default:
			cmp = 0
		}
	default:
		return Value{}, &RuntimeError{Message: "Operator does not support " + left.TypeName() + " and " + right.TypeName(), Span: n.Span()}
	}

	switch n.Op {
	case lexer.Less:
		return NewBool(cmp < 0), nil
	case lexer.LessEqual:
		return NewBool(cmp <= 0), nil
	case lexer.Greater:
		return NewBool(cmp > 0), nil
	case lexer.GreaterEqual:
		return NewBool(cmp >= 0), nil
	default:
		return Value{}, &RuntimeError{Message: "Unsupported comparison operator", Span: n.Span()}
	}
}

func (i *Interpreter) evalCall(n *ast.Call) (Value, *RuntimeError) {
	callee, ok := n.Callee.(*ast.Ident)
	if !ok {
		return Value{}, &RuntimeError{Message: "Call target must be a function name", Span: n.Span()}
	}

	args := make([]Value, len(n.Args))

	for idx, a := range n.Args {
		v, err := i.eval(a)
		if err != nil {
			return Value{}, err
		}

		args[idx] = v
	}

	// Built-ins are checked first, then user-defined functions (spec.md
	// §4.6 "Call").
	if fn, ok := builtinTable[callee.Name]; ok {
		return fn(i, args, n.Span())
	}

	if fd, ok := i.functions[callee.Name]; ok {
		return i.callUserFunction(fd, args, n.Span())
	}

	return Value{}, &RuntimeError{Message: "Undefined variable or function: " + callee.Name, Span: n.Span()}
}

// callUserFunction creates a fresh child environment of the *current*
// environment — not the function's declaration-time environment — per
// spec.md §9 Open Question 2's decision to keep dynamic scope.
func (i *Interpreter) callUserFunction(fd *ast.FunDecl, args []Value, callSpan position.Span) (Value, *RuntimeError) {
	if len(args) != len(fd.Params) {
		return Value{}, &RuntimeError{
			Message: fmt.Sprintf("'%s' expects %d argument(s), got %d", fd.Name, len(fd.Params), len(args)),
			Span:    callSpan,
		}
	}

	saved := i.current
	i.current = NewEnvironment(saved)

	defer func() { i.current = saved }()

	for idx, param := range fd.Params {
		i.current.Define(param.Name, args[idx])
	}

	for _, stmt := range fd.Body {
		outcome := i.execStmt(stmt)

		switch outcome.Kind {
		case errorOutcome:
			return Value{}, outcome.Err
		case returnOutcome:
			return outcome.Value, nil
		}
	}

	return NullValue, nil
}
