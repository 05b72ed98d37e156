package typechecker

import (
	"fmt"

	"github.com/th3oth3rjak3/Sigil/internal/ast"
	"github.com/th3oth3rjak3/Sigil/internal/types"
)

func (c *Checker) checkStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.LetDecl:
		c.checkLetDecl(n)
	case *ast.Assign:
		c.checkAssign(n)
	case *ast.If:
		c.checkIf(n)
	case *ast.While:
		c.checkWhile(n)
	case *ast.Block:
		c.pushScope()
		for _, inner := range n.Stmts {
			c.checkStmt(inner)
		}
		c.popScope()
	case *ast.Return:
		c.checkReturn(n)
	case *ast.ExprStmt:
		c.checkExpr(n.Expr)
	case *ast.FunDecl:
		c.checkFunDecl(n)
	}
}

func (c *Checker) checkLetDecl(n *ast.LetDecl) {
	initType := c.checkExpr(n.Init)

	bound := initType

	if n.DeclaredType != nil {
		declared, ok := types.FromName(*n.DeclaredType)
		if !ok {
			c.sink.Report(fmt.Sprintf("Unknown type name: %s", *n.DeclaredType), n.Span())
		} else if !declared.IsError() && !initType.IsError() && !declared.Equal(initType) {
			c.sink.Report(fmt.Sprintf("Type mismatch in declaration of '%s': declared %s, got %s", n.Name, declared, initType), n.Span())
		}

		bound = declared
	}

	c.define(n.Name, bound)
}

func (c *Checker) checkAssign(n *ast.Assign) {
	existing, ok := c.lookupVar(n.Name)
	if !ok {
		c.sink.Report(fmt.Sprintf("Undefined variable: %s", n.Name), n.Span())

		c.checkExpr(n.Value)

		return
	}

	rhs := c.checkExpr(n.Value)

	if !existing.IsError() && !rhs.IsError() && !existing.Equal(rhs) {
		c.sink.Report(fmt.Sprintf("Type mismatch in assignment to '%s': expected %s, got %s", n.Name, existing, rhs), n.Span())
	}
}

func (c *Checker) checkIf(n *ast.If) {
	cond := c.checkExpr(n.Cond)
	if !cond.IsError() && !cond.Equal(types.TBool) {
		c.sink.Report(fmt.Sprintf("If condition must be Bool, got %s", cond), n.Cond.Span())
	}

	c.checkStmt(n.Then)

	if n.Else != nil {
		c.checkStmt(n.Else)
	}
}

func (c *Checker) checkWhile(n *ast.While) {
	cond := c.checkExpr(n.Cond)
	if !cond.IsError() && !cond.Equal(types.TBool) {
		c.sink.Report(fmt.Sprintf("While condition must be Bool, got %s", cond), n.Cond.Span())
	}

	c.checkStmt(n.Body)
}

func (c *Checker) checkReturn(n *ast.Return) {
	if !c.inFunction {
		c.sink.Report("Return statement outside of function", n.Span())

		return
	}

	ret := types.TVoid
	if n.Value != nil {
		ret = c.checkExpr(n.Value)
	}

	c.lastReturn = ret
}

func (c *Checker) checkFunDecl(n *ast.FunDecl) {
	fnType, ok := c.functions[n.Name]
	if !ok {
		// Only reachable for a nested FunDecl, which collectFunctions
		// never registers (it only scans the top-level list).
		return
	}

	savedInFunction, savedDeclared, savedLast := c.inFunction, c.declaredReturn, c.lastReturn

	c.inFunction = true
	c.declaredReturn = *fnType.Returns
	c.lastReturn = types.TVoid

	c.pushScope()

	for _, param := range n.Params {
		t, ok := types.FromName(param.TypeName)
		if !ok {
			t = types.TError
		}

		c.define(param.Name, t)
	}

	for _, stmt := range n.Body {
		c.checkStmt(stmt)
	}

	c.popScope()

	if !c.declaredReturn.IsError() && !c.lastReturn.IsError() && !c.declaredReturn.Equal(c.lastReturn) {
		c.sink.Report(fmt.Sprintf("Function '%s' declared to return %s but returns %s", n.Name, c.declaredReturn, c.lastReturn), n.Span())
	}

	c.inFunction, c.declaredReturn, c.lastReturn = savedInFunction, savedDeclared, savedLast
}
