// Package parser implements the Sigil recursive-descent statement parser
// and Pratt-style expression parser described in spec.md §4.3. It walks a
// token list with a single integer cursor and never fails outright:
// Parse always returns a (possibly partial) statement list, leaving every
// problem in the shared diagnostics sink.
package parser

import (
	"github.com/th3oth3rjak3/Sigil/internal/ast"
	"github.com/th3oth3rjak3/Sigil/internal/diagnostics"
	"github.com/th3oth3rjak3/Sigil/internal/lexer"
)

// Parser turns a token list into a statement list with recovery.
type Parser struct {
	source string
	tokens []lexer.Token
	sink   *diagnostics.Sink
	pos    int
}

// New creates a Parser over tokens, reporting into sink. source is kept
// only so lexeme() can slice a token's exact text.
func New(source string, tokens []lexer.Token, sink *diagnostics.Sink) *Parser {
	return &Parser{source: source, tokens: tokens, sink: sink}
}

// Parse consumes the entire token stream and returns every statement it
// could build (spec.md §4.3 "Guarantee").
func (p *Parser) Parse() []ast.Stmt {
	var stmts []ast.Stmt

	for !p.atEnd() {
		stmt := p.statement()
		if stmt == nil {
			p.synchronize()

			continue
		}

		stmts = append(stmts, stmt)
	}

	return stmts
}

// synchronize advances past the failed statement until the previous token
// was a semicolon or the next token starts a new statement, guaranteeing
// forward progress (spec.md §4.3 "Error recovery").
func (p *Parser) synchronize() {
	for !p.atEnd() {
		if p.previous().Kind == lexer.Semicolon {
			return
		}

		switch p.current().Kind {
		case lexer.Class, lexer.Fun, lexer.Let, lexer.For, lexer.If, lexer.While, lexer.Return:
			return
		}

		p.advance()
	}
}

// --- cursor helpers ---

func (p *Parser) atEnd() bool {
	return p.current().Kind == lexer.Eof
}

func (p *Parser) current() lexer.Token {
	return p.tokens[p.pos]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.pos-1]
}

// checkNext reports whether the token one past the current one has kind.
// Used for the speculative `identifier "=" ...` assignment lookahead.
func (p *Parser) checkNext(kind lexer.Kind) bool {
	if p.pos+1 >= len(p.tokens) {
		return false
	}

	return p.tokens[p.pos+1].Kind == kind
}

func (p *Parser) check(kind lexer.Kind) bool {
	return p.current().Kind == kind
}

func (p *Parser) advance() lexer.Token {
	tok := p.current()
	if tok.Kind != lexer.Eof {
		p.pos++
	}

	return tok
}

// match advances past the current token and returns true if it has kind.
func (p *Parser) match(kind lexer.Kind) bool {
	if !p.check(kind) {
		return false
	}

	p.advance()

	return true
}

// expect consumes the current token if it has kind, else reports message
// at the current token's span and returns ok=false.
func (p *Parser) expect(kind lexer.Kind, message string) (lexer.Token, bool) {
	if p.check(kind) {
		return p.advance(), true
	}

	p.sink.Report(message, p.current().Span)

	return lexer.Token{}, false
}

func (p *Parser) lexeme(tok lexer.Token) string {
	return tok.Lexeme(p.source)
}
