package lexer

import (
	"fmt"

	"github.com/th3oth3rjak3/Sigil/internal/position"
)

// Kind is the type of a lexical token, enumerated per spec.md §6. Not
// every kind is ever produced by this lexer: the interpolated-string
// kinds and Newline/Whitespace are reserved for future use.
type Kind int

const (
	// Literals.
	IntegerLiteral Kind = iota
	FloatLiteral
	StringLiteral
	CharacterLiteral
	InterpolatedStringStart
	InterpolatedStringMiddle
	InterpolatedStringEnd

	// Identifier.
	Identifier

	// Keywords.
	Let
	Fun
	Class
	New
	This
	If
	Else
	While
	For
	Return
	True
	False
	Break
	Continue
	Or
	And
	Print

	// Operators.
	Plus
	PlusEqual
	Minus
	MinusEqual
	Star
	StarEqual
	Slash
	SlashEqual
	Equal
	EqualEqual
	Bang
	BangEqual
	Less
	LessEqual
	Greater
	GreaterEqual
	Arrow
	FatArrow

	// Delimiters.
	LeftParen
	RightParen
	LeftBrace
	RightBrace
	LeftBracket
	RightBracket
	Comma
	Semicolon
	Colon
	Dot

	// Special.
	Newline
	Whitespace
	Comment
	DocStringComment
	Eof

	// Error.
	Invalid
)

var kindNames = map[Kind]string{
	IntegerLiteral:           "IntegerLiteral",
	FloatLiteral:             "FloatLiteral",
	StringLiteral:            "StringLiteral",
	CharacterLiteral:         "CharacterLiteral",
	InterpolatedStringStart:  "InterpolatedStringStart",
	InterpolatedStringMiddle: "InterpolatedStringMiddle",
	InterpolatedStringEnd:    "InterpolatedStringEnd",
	Identifier:               "Identifier",
	Let:                      "Let",
	Fun:                      "Fun",
	Class:                    "Class",
	New:                      "New",
	This:                     "This",
	If:                       "If",
	Else:                     "Else",
	While:                    "While",
	For:                      "For",
	Return:                   "Return",
	True:                     "True",
	False:                    "False",
	Break:                    "Break",
	Continue:                 "Continue",
	Or:                       "Or",
	And:                      "And",
	Print:                    "Print",
	Plus:                     "Plus",
	PlusEqual:                "PlusEqual",
	Minus:                    "Minus",
	MinusEqual:               "MinusEqual",
	Star:                     "Star",
	StarEqual:                "StarEqual",
	Slash:                    "Slash",
	SlashEqual:               "SlashEqual",
	Equal:                    "Equal",
	EqualEqual:               "EqualEqual",
	Bang:                     "Bang",
	BangEqual:                "BangEqual",
	Less:                     "Less",
	LessEqual:                "LessEqual",
	Greater:                  "Greater",
	GreaterEqual:             "GreaterEqual",
	Arrow:                    "Arrow",
	FatArrow:                 "FatArrow",
	LeftParen:                "LeftParen",
	RightParen:               "RightParen",
	LeftBrace:                "LeftBrace",
	RightBrace:               "RightBrace",
	LeftBracket:              "LeftBracket",
	RightBracket:             "RightBracket",
	Comma:                    "Comma",
	Semicolon:                "Semicolon",
	Colon:                    "Colon",
	Dot:                      "Dot",
	Newline:                  "Newline",
	Whitespace:               "Whitespace",
	Comment:                  "Comment",
	DocStringComment:         "DocStringComment",
	Eof:                      "Eof",
	Invalid:                  "Invalid",
}

// String renders the kind's stable name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// keywords maps reserved lexemes to their keyword Kind (spec.md §4.2).
var keywords = map[string]Kind{
	"let":      Let,
	"fun":      Fun,
	"class":    Class,
	"new":      New,
	"this":     This,
	"if":       If,
	"else":     Else,
	"while":    While,
	"for":      For,
	"return":   Return,
	"true":     True,
	"false":    False,
	"break":    Break,
	"continue": Continue,
	"or":       Or,
	"and":      And,
	"print":    Print,
}

// Token is a lexical token with a span; its lexeme is recovered on demand
// by slicing the source (spec.md §3 "the lexeme is recovered on demand").
type Token struct {
	Kind    Kind
	Span    position.Span
	Literal string // decoded literal text: the doc-comment body, or "" for
	// any kind whose lexeme is fully recoverable via Span.Slice.
}

// Lexeme returns the exact source text the token covers.
func (t Token) Lexeme(source string) string {
	return t.Span.Slice(source)
}

// String gives a debug representation of the token.
func (t Token) String() string {
	return fmt.Sprintf("%s@%s", t.Kind, t.Span)
}
