// Package ast defines the Sigil abstract syntax tree described in
// spec.md §3. Nodes are a tagged union of concrete Go structs rather than
// a classic Visitor hierarchy — per spec.md §9's re-architecture note,
// callers dispatch on these with a type switch (a sum-type switch) instead
// of double-dispatch polymorphism.
package ast

import (
	"github.com/th3oth3rjak3/Sigil/internal/lexer"
	"github.com/th3oth3rjak3/Sigil/internal/position"
	"github.com/th3oth3rjak3/Sigil/internal/types"
)

// Stmt is any statement node. No AST node is shared across parents
// (spec.md §3 invariant): ownership is a tree.
type Stmt interface {
	Span() position.Span

	stmtNode()
}

// Expr is any expression node. The type checker annotates expressions via
// SetType without structurally mutating the tree (spec.md §4.4).
type Expr interface {
	Span() position.Span
	Type() types.Type
	SetType(t types.Type)

	exprNode()
}

type stmtBase struct {
	span position.Span
}

func (s *stmtBase) Span() position.Span { return s.span }
func (s *stmtBase) stmtNode()           {}

type exprBase struct {
	span     position.Span
	resolved types.Type
}

func (e *exprBase) Span() position.Span  { return e.span }
func (e *exprBase) Type() types.Type     { return e.resolved }
func (e *exprBase) SetType(t types.Type) { e.resolved = t }
func (e *exprBase) exprNode()            {}

// --- expressions ---

// IntLit is an integer literal.
type IntLit struct {
	exprBase
	Value int64
}

// NewIntLit constructs an IntLit.
func NewIntLit(value int64, span position.Span) *IntLit {
	return &IntLit{exprBase: exprBase{span: span}, Value: value}
}

// FloatLit is a floating-point literal.
type FloatLit struct {
	exprBase
	Value float64
}

// NewFloatLit constructs a FloatLit.
func NewFloatLit(value float64, span position.Span) *FloatLit {
	return &FloatLit{exprBase: exprBase{span: span}, Value: value}
}

// StringLit is a string literal (quotes already stripped, no escape
// decoding — spec.md §4.3).
type StringLit struct {
	exprBase
	Value string
}

// NewStringLit constructs a StringLit.
func NewStringLit(value string, span position.Span) *StringLit {
	return &StringLit{exprBase: exprBase{span: span}, Value: value}
}

// CharLit is a character literal with escapes already decoded.
type CharLit struct {
	exprBase
	Value rune
}

// NewCharLit constructs a CharLit.
func NewCharLit(value rune, span position.Span) *CharLit {
	return &CharLit{exprBase: exprBase{span: span}, Value: value}
}

// BoolLit is a boolean literal.
type BoolLit struct {
	exprBase
	Value bool
}

// NewBoolLit constructs a BoolLit.
func NewBoolLit(value bool, span position.Span) *BoolLit {
	return &BoolLit{exprBase: exprBase{span: span}, Value: value}
}

// Ident is a bare identifier reference (variable, function, or built-in).
type Ident struct {
	exprBase
	Name string
}

// NewIdent constructs an Ident.
func NewIdent(name string, span position.Span) *Ident {
	return &Ident{exprBase: exprBase{span: span}, Name: name}
}

// Unary is a prefix unary expression (`-` or `!`).
type Unary struct {
	exprBase
	Op      lexer.Kind
	Operand Expr
}

// NewUnary constructs a Unary.
func NewUnary(op lexer.Kind, operand Expr, span position.Span) *Unary {
	return &Unary{exprBase: exprBase{span: span}, Op: op, Operand: operand}
}

// Binary is an infix binary expression.
type Binary struct {
	exprBase
	Left  Expr
	Op    lexer.Kind
	Right Expr
}

// NewBinary constructs a Binary.
func NewBinary(left Expr, op lexer.Kind, right Expr, span position.Span) *Binary {
	return &Binary{exprBase: exprBase{span: span}, Left: left, Op: op, Right: right}
}

// Grouping is a parenthesized expression.
type Grouping struct {
	exprBase
	Inner Expr
}

// NewGrouping constructs a Grouping.
func NewGrouping(inner Expr, span position.Span) *Grouping {
	return &Grouping{exprBase: exprBase{span: span}, Inner: inner}
}

// Call is a function call expression.
type Call struct {
	exprBase
	Callee Expr
	Args   []Expr
}

// NewCall constructs a Call.
func NewCall(callee Expr, args []Expr, span position.Span) *Call {
	return &Call{exprBase: exprBase{span: span}, Callee: callee, Args: args}
}

// --- statements ---

// LetDecl declares and initializes a new local variable.
type LetDecl struct {
	stmtBase
	Name         string
	DeclaredType *string // nil when no `: Type` annotation was written
	Init         Expr
}

// NewLetDecl constructs a LetDecl.
func NewLetDecl(name string, declaredType *string, init Expr, span position.Span) *LetDecl {
	return &LetDecl{stmtBase: stmtBase{span: span}, Name: name, DeclaredType: declaredType, Init: init}
}

// Assign mutates an existing binding.
type Assign struct {
	stmtBase
	Name  string
	Value Expr
}

// NewAssign constructs an Assign.
func NewAssign(name string, value Expr, span position.Span) *Assign {
	return &Assign{stmtBase: stmtBase{span: span}, Name: name, Value: value}
}

// If is a conditional statement with an optional else branch.
type If struct {
	stmtBase
	Cond Expr
	Then Stmt
	Else Stmt // nil when there is no else branch
}

// NewIf constructs an If.
func NewIf(cond Expr, then Stmt, els Stmt, span position.Span) *If {
	return &If{stmtBase: stmtBase{span: span}, Cond: cond, Then: then, Else: els}
}

// While is a condition-guarded loop.
type While struct {
	stmtBase
	Cond Expr
	Body Stmt
}

// NewWhile constructs a While.
func NewWhile(cond Expr, body Stmt, span position.Span) *While {
	return &While{stmtBase: stmtBase{span: span}, Cond: cond, Body: body}
}

// Block is a brace-delimited statement list introducing a new scope.
type Block struct {
	stmtBase
	Stmts []Stmt
}

// NewBlock constructs a Block.
func NewBlock(stmts []Stmt, span position.Span) *Block {
	return &Block{stmtBase: stmtBase{span: span}, Stmts: stmts}
}

// Return yields from the enclosing function, optionally with a value.
type Return struct {
	stmtBase
	Value Expr // nil for a bare `return;`
}

// NewReturn constructs a Return.
func NewReturn(value Expr, span position.Span) *Return {
	return &Return{stmtBase: stmtBase{span: span}, Value: value}
}

// ExprStmt evaluates an expression for its side effects and discards the
// result.
type ExprStmt struct {
	stmtBase
	Expr Expr
}

// NewExprStmt constructs an ExprStmt.
func NewExprStmt(expr Expr, span position.Span) *ExprStmt {
	return &ExprStmt{stmtBase: stmtBase{span: span}, Expr: expr}
}

// Param is a single function parameter.
type Param struct {
	Name     string
	TypeName string
}

// FunDecl declares a user-defined function.
type FunDecl struct {
	stmtBase
	Name       string
	Params     []Param
	ReturnType *string // nil when no `-> Type` annotation was written
	Body       []Stmt
	Doc        string // joined text of a preceding contiguous `///` run, if any
}

// NewFunDecl constructs a FunDecl.
func NewFunDecl(name string, params []Param, returnType *string, body []Stmt, doc string, span position.Span) *FunDecl {
	return &FunDecl{
		stmtBase:   stmtBase{span: span},
		Name:       name,
		Params:     params,
		ReturnType: returnType,
		Body:       body,
		Doc:        doc,
	}
}
