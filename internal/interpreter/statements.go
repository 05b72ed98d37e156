package interpreter

import "github.com/th3oth3rjak3/Sigil/internal/ast"

func (i *Interpreter) execStmt(s ast.Stmt) Outcome {
	switch n := s.(type) {
	case *ast.LetDecl:
		return i.execLetDecl(n)
	case *ast.Assign:
		return i.execAssign(n)
	case *ast.If:
		return i.execIf(n)
	case *ast.While:
		return i.execWhile(n)
	case *ast.Block:
		return i.execBlock(n)
	case *ast.Return:
		return i.execReturn(n)
	case *ast.ExprStmt:
		return i.execExprStmt(n)
	case *ast.FunDecl:
		// Registered by Run's pre-pass; nothing to do at the point a
		// FunDecl statement is reached in program order.
		return normal()
	default:
		return normal()
	}
}

func (i *Interpreter) execLetDecl(n *ast.LetDecl) Outcome {
	v, err := i.eval(n.Init)
	if err != nil {
		return errored(err)
	}

	i.current.Define(n.Name, v)

	return normal()
}

func (i *Interpreter) execAssign(n *ast.Assign) Outcome {
	v, err := i.eval(n.Value)
	if err != nil {
		return errored(err)
	}

	if err := i.current.Set(n.Name, v, n.Span()); err != nil {
		return errored(err)
	}

	return normal()
}

func (i *Interpreter) execIf(n *ast.If) Outcome {
	cond, err := i.eval(n.Cond)
	if err != nil {
		return errored(err)
	}

	if cond.Truthy() {
		return i.execStmt(n.Then)
	}

	if n.Else != nil {
		return i.execStmt(n.Else)
	}

	return normal()
}

func (i *Interpreter) execWhile(n *ast.While) Outcome {
	for {
		cond, err := i.eval(n.Cond)
		if err != nil {
			return errored(err)
		}

		if !cond.Truthy() {
			return normal()
		}

		outcome := i.execStmt(n.Body)
		if !outcome.IsNormal() {
			return outcome
		}
	}
}

// execBlock pushes a child environment, executes the body, and restores
// the parent environment on every exit path — normal, return, or error
// (spec.md §8 invariant 5 "Env discipline").
func (i *Interpreter) execBlock(n *ast.Block) Outcome {
	saved := i.current
	i.current = NewEnvironment(saved)

	defer func() { i.current = saved }()

	for _, stmt := range n.Stmts {
		outcome := i.execStmt(stmt)
		if !outcome.IsNormal() {
			return outcome
		}
	}

	return normal()
}

func (i *Interpreter) execReturn(n *ast.Return) Outcome {
	if n.Value == nil {
		return returning(NullValue)
	}

	v, err := i.eval(n.Value)
	if err != nil {
		return errored(err)
	}

	return returning(v)
}

func (i *Interpreter) execExprStmt(n *ast.ExprStmt) Outcome {
	if _, err := i.eval(n.Expr); err != nil {
		return errored(err)
	}

	return normal()
}
