package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/th3oth3rjak3/Sigil/internal/ast"
	"github.com/th3oth3rjak3/Sigil/internal/lexer"
)

// maxCallArgs is the point past which an argument list still parses but
// earns a non-fatal warning diagnostic (spec.md §4.3 "Argument lists").
const maxCallArgs = 255

// Expression precedence, lowest to highest (spec.md §4.3): logical-or,
// logical-and, equality, comparison, additive, multiplicative, unary
// prefix, call, primary. Each level is its own method, calling the next
// tighter one for its operands — a left-associative precedence chain
// equivalent to Pratt climbing for this grammar's fixed operator set.
func (p *Parser) expression() ast.Expr {
	return p.or()
}

func (p *Parser) or() ast.Expr {
	left := p.and()
	if left == nil {
		return nil
	}

	for p.check(lexer.Or) {
		op := p.advance()

		right := p.and()
		if right == nil {
			return nil
		}

		left = ast.NewBinary(left, op.Kind, right, left.Span().Merge(right.Span()))
	}

	return left
}

func (p *Parser) and() ast.Expr {
	left := p.equality()
	if left == nil {
		return nil
	}

	for p.check(lexer.And) {
		op := p.advance()

		right := p.equality()
		if right == nil {
			return nil
		}

		left = ast.NewBinary(left, op.Kind, right, left.Span().Merge(right.Span()))
	}

	return left
}

func (p *Parser) equality() ast.Expr {
	left := p.comparison()
	if left == nil {
		return nil
	}

	for p.check(lexer.EqualEqual) || p.check(lexer.BangEqual) {
		op := p.advance()

		right := p.comparison()
		if right == nil {
			return nil
		}

		left = ast.NewBinary(left, op.Kind, right, left.Span().Merge(right.Span()))
	}

	return left
}

func (p *Parser) comparison() ast.Expr {
	left := p.additive()
	if left == nil {
		return nil
	}

	for p.check(lexer.Less) || p.check(lexer.LessEqual) || p.check(lexer.Greater) || p.check(lexer.GreaterEqual) {
		op := p.advance()

		right := p.additive()
		if right == nil {
			return nil
		}

		left = ast.NewBinary(left, op.Kind, right, left.Span().Merge(right.Span()))
	}

	return left
}

func (p *Parser) additive() ast.Expr {
	left := p.multiplicative()
	if left == nil {
		return nil
	}

	for p.check(lexer.Plus) || p.check(lexer.Minus) {
		op := p.advance()

		right := p.multiplicative()
		if right == nil {
			return nil
		}

		left = ast.NewBinary(left, op.Kind, right, left.Span().Merge(right.Span()))
	}

	return left
}

func (p *Parser) multiplicative() ast.Expr {
	left := p.unary()
	if left == nil {
		return nil
	}

	for p.check(lexer.Star) || p.check(lexer.Slash) {
		op := p.advance()

		right := p.unary()
		if right == nil {
			return nil
		}

		left = ast.NewBinary(left, op.Kind, right, left.Span().Merge(right.Span()))
	}

	return left
}

func (p *Parser) unary() ast.Expr {
	if p.check(lexer.Minus) || p.check(lexer.Bang) {
		op := p.advance()

		operand := p.unary()
		if operand == nil {
			return nil
		}

		return ast.NewUnary(op.Kind, operand, op.Span.Merge(operand.Span()))
	}

	return p.call()
}

func (p *Parser) call() ast.Expr {
	expr := p.primary()
	if expr == nil {
		return nil
	}

	for p.check(lexer.LeftParen) {
		p.advance()

		expr = p.finishCall(expr)
		if expr == nil {
			return nil
		}
	}

	return expr
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr

	if !p.check(lexer.RightParen) {
		for {
			arg := p.expression()
			if arg == nil {
				return nil
			}

			args = append(args, arg)

			if len(args) > maxCallArgs {
				p.sink.Report(fmt.Sprintf("Call has more than %d arguments", maxCallArgs), arg.Span())
			}

			if !p.match(lexer.Comma) {
				break
			}
		}
	}

	rparen, ok := p.expect(lexer.RightParen, "Expected ')' after arguments")
	if !ok {
		return nil
	}

	return ast.NewCall(callee, args, callee.Span().Merge(rparen.Span))
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(lexer.True):
		return ast.NewBoolLit(true, p.previous().Span)
	case p.match(lexer.False):
		return ast.NewBoolLit(false, p.previous().Span)
	case p.check(lexer.IntegerLiteral):
		return p.integerLit()
	case p.check(lexer.FloatLiteral):
		return p.floatLit()
	case p.check(lexer.StringLiteral):
		return p.stringLit()
	case p.check(lexer.CharacterLiteral):
		return p.charLit()
	case p.check(lexer.Identifier) || p.check(lexer.Print):
		tok := p.advance()

		return ast.NewIdent(p.lexeme(tok), tok.Span)
	case p.match(lexer.LeftParen):
		lparen := p.previous()

		inner := p.expression()
		if inner == nil {
			return nil
		}

		rparen, ok := p.expect(lexer.RightParen, "Expected ')' after expression")
		if !ok {
			return nil
		}

		return ast.NewGrouping(inner, lparen.Span.Merge(rparen.Span))
	default:
		p.sink.Report("Expected expression", p.current().Span)

		return nil
	}
}

func (p *Parser) integerLit() ast.Expr {
	tok := p.advance()

	text := p.lexeme(tok)

	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		p.sink.Report(fmt.Sprintf("Invalid integer literal: %s", text), tok.Span)

		return nil
	}

	return ast.NewIntLit(value, tok.Span)
}

func (p *Parser) floatLit() ast.Expr {
	tok := p.advance()

	text := p.lexeme(tok)

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		p.sink.Report(fmt.Sprintf("Invalid float literal: %s", text), tok.Span)

		return nil
	}

	return ast.NewFloatLit(value, tok.Span)
}

func (p *Parser) stringLit() ast.Expr {
	tok := p.advance()

	text := p.lexeme(tok)
	// Strip surrounding quotes only; escapes are not decoded inside
	// strings (spec.md §9 Open Question 4, decided in DESIGN.md).
	value := strings.TrimSuffix(strings.TrimPrefix(text, `"`), `"`)

	return ast.NewStringLit(value, tok.Span)
}

func (p *Parser) charLit() ast.Expr {
	tok := p.advance()

	text := p.lexeme(tok)
	inner := strings.TrimSuffix(strings.TrimPrefix(text, "'"), "'")

	runes := []rune(inner)

	var value rune

	if len(runes) > 0 && runes[0] == '\\' && len(runes) > 1 {
		decoded, ok := lexer.DecodeEscape(runes[1])
		if !ok {
			p.sink.Report(fmt.Sprintf("Invalid character literal: %s", text), tok.Span)

			return nil
		}

		value = decoded
	} else if len(runes) > 0 {
		value = runes[0]
	}

	return ast.NewCharLit(value, tok.Span)
}
