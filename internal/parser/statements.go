package parser

import (
	"github.com/th3oth3rjak3/Sigil/internal/ast"
	"github.com/th3oth3rjak3/Sigil/internal/lexer"
	"github.com/th3oth3rjak3/Sigil/internal/position"
)

// statement dispatches on the current token's first-set (spec.md §4.3
// "Statement grammar"). A leading DocStringComment is peeled off and
// attached to an immediately following FunDecl (spec.md §9 Open Question
// 5); any other statement shape simply drops it.
func (p *Parser) statement() ast.Stmt {
	var doc string

	if p.check(lexer.DocStringComment) {
		doc = p.advance().Literal
	}

	switch {
	case p.match(lexer.Fun):
		return p.funDecl(doc)
	case p.match(lexer.Let):
		return p.letDecl()
	case p.match(lexer.Return):
		return p.returnStmt()
	case p.match(lexer.If):
		return p.ifStmt()
	case p.match(lexer.While):
		return p.whileStmt()
	case p.check(lexer.LeftBrace):
		return p.block()
	case p.check(lexer.Identifier) && p.checkNext(lexer.Equal):
		return p.assignStmt()
	default:
		return p.exprStmt()
	}
}

func (p *Parser) letDecl() ast.Stmt {
	letTok := p.previous()

	name, ok := p.expect(lexer.Identifier, "Expected variable name")
	if !ok {
		return nil
	}

	var declaredType *string

	if p.match(lexer.Colon) {
		typeTok, ok := p.expect(lexer.Identifier, "Expected type name")
		if !ok {
			return nil
		}

		tn := p.lexeme(typeTok)
		declaredType = &tn
	}

	if _, ok := p.expect(lexer.Equal, "Expected '=' after variable name"); !ok {
		return nil
	}

	init := p.expression()
	if init == nil {
		return nil
	}

	semi, ok := p.expect(lexer.Semicolon, "Expected ';' after variable declaration")
	if !ok {
		return nil
	}

	return ast.NewLetDecl(p.lexeme(name), declaredType, init, letTok.Span.Merge(semi.Span))
}

func (p *Parser) assignStmt() ast.Stmt {
	name := p.advance()
	p.advance() // '='

	value := p.expression()
	if value == nil {
		return nil
	}

	semi, ok := p.expect(lexer.Semicolon, "Expected ';' after assignment")
	if !ok {
		return nil
	}

	return ast.NewAssign(p.lexeme(name), value, name.Span.Merge(semi.Span))
}

func (p *Parser) ifStmt() ast.Stmt {
	ifTok := p.previous()

	cond := p.expression()
	if cond == nil {
		return nil
	}

	then := p.statement()
	if then == nil {
		return nil
	}

	var els ast.Stmt

	if p.match(lexer.Else) {
		els = p.statement()
		if els == nil {
			return nil
		}
	}

	end := then.Span()
	if els != nil {
		end = els.Span()
	}

	return ast.NewIf(cond, then, els, ifTok.Span.Merge(end))
}

func (p *Parser) whileStmt() ast.Stmt {
	whileTok := p.previous()

	cond := p.expression()
	if cond == nil {
		return nil
	}

	body := p.statement()
	if body == nil {
		return nil
	}

	return ast.NewWhile(cond, body, whileTok.Span.Merge(body.Span()))
}

func (p *Parser) block() ast.Stmt {
	stmts, span, ok := p.blockBody()
	if !ok {
		return nil
	}

	return ast.NewBlock(stmts, span)
}

// blockBody parses `{` statements... `}` and returns the statement list
// plus the span covering the braces. Shared by block() and funDecl().
func (p *Parser) blockBody() ([]ast.Stmt, position.Span, bool) {
	lbrace, ok := p.expect(lexer.LeftBrace, "Expected '{'")
	if !ok {
		return nil, position.Span{}, false
	}

	var stmts []ast.Stmt

	for !p.check(lexer.RightBrace) && !p.atEnd() {
		stmt := p.statement()
		if stmt == nil {
			p.synchronize()

			continue
		}

		stmts = append(stmts, stmt)
	}

	rbrace, ok := p.expect(lexer.RightBrace, "Expected '}'")
	if !ok {
		return nil, position.Span{}, false
	}

	return stmts, lbrace.Span.Merge(rbrace.Span), true
}

func (p *Parser) returnStmt() ast.Stmt {
	returnTok := p.previous()

	var value ast.Expr

	if !p.check(lexer.Semicolon) {
		value = p.expression()
		if value == nil {
			return nil
		}
	}

	semi, ok := p.expect(lexer.Semicolon, "Expected ';' after return value")
	if !ok {
		return nil
	}

	return ast.NewReturn(value, returnTok.Span.Merge(semi.Span))
}

func (p *Parser) exprStmt() ast.Stmt {
	expr := p.expression()
	if expr == nil {
		return nil
	}

	semi, ok := p.expect(lexer.Semicolon, "Expected ';' after expression")
	if !ok {
		return nil
	}

	return ast.NewExprStmt(expr, expr.Span().Merge(semi.Span))
}

func (p *Parser) funDecl(doc string) ast.Stmt {
	funTok := p.previous()

	name, ok := p.expect(lexer.Identifier, "Expected function name")
	if !ok {
		return nil
	}

	if _, ok := p.expect(lexer.LeftParen, "Expected '(' after function name"); !ok {
		return nil
	}

	var params []ast.Param

	if !p.check(lexer.RightParen) {
		for {
			paramName, ok := p.expect(lexer.Identifier, "Expected parameter name")
			if !ok {
				return nil
			}

			if _, ok := p.expect(lexer.Colon, "Expected ':' after parameter name"); !ok {
				return nil
			}

			paramType, ok := p.expect(lexer.Identifier, "Expected parameter type")
			if !ok {
				return nil
			}

			params = append(params, ast.Param{Name: p.lexeme(paramName), TypeName: p.lexeme(paramType)})

			if !p.match(lexer.Comma) {
				break
			}
		}
	}

	if _, ok := p.expect(lexer.RightParen, "Expected ')' after parameters"); !ok {
		return nil
	}

	var returnType *string

	if p.match(lexer.Arrow) {
		retTok, ok := p.expect(lexer.Identifier, "Expected return type name")
		if !ok {
			return nil
		}

		rt := p.lexeme(retTok)
		returnType = &rt
	}

	body, bodySpan, ok := p.blockBody()
	if !ok {
		return nil
	}

	return ast.NewFunDecl(p.lexeme(name), params, returnType, body, doc, funTok.Span.Merge(bodySpan))
}
