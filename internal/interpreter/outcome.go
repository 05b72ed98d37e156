package interpreter

import (
	"fmt"

	"github.com/th3oth3rjak3/Sigil/internal/position"
)

// RuntimeError carries a span and message for a failure raised during
// execution (spec.md §4.6 "Error reporting").
type RuntimeError struct {
	Message string
	Span    position.Span
}

// Error implements the error interface.
func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Span)
}

// outcomeKind tags what happened while executing one statement.
type outcomeKind int

const (
	normalOutcome outcomeKind = iota
	returnOutcome
	errorOutcome
)

// Outcome is the tagged result of executing a statement (spec.md §9's
// re-architecture note: a sum type standing in for host exceptions).
// Every execXxx method returns one; callers pattern-match on Kind instead
// of unwinding via panic/recover.
type Outcome struct {
	Kind  outcomeKind
	Value Value
	Err   *RuntimeError
}

func normal() Outcome { return Outcome{Kind: normalOutcome} }

func returning(v Value) Outcome { return Outcome{Kind: returnOutcome, Value: v} }

func errored(err *RuntimeError) Outcome { return Outcome{Kind: errorOutcome, Err: err} }

// IsNormal reports whether execution fell through without returning or
// erroring.
func (o Outcome) IsNormal() bool { return o.Kind == normalOutcome }
