// Package types defines the closed set of semantic types used by the type
// checker and interpreter (spec.md §3 "Type").
package types

import "fmt"

// Kind identifies which member of the closed type set a Type is.
type Kind int

const (
	Int Kind = iota
	Float
	String
	Bool
	Char
	Void
	Any
	FunctionKind
	ErrorKind
)

// Type is a semantic type. Function types additionally carry parameter and
// return types; every other kind is a singleton value.
type Type struct {
	Kind    Kind
	Params  []Type // only meaningful when Kind == FunctionKind
	Returns *Type  // only meaningful when Kind == FunctionKind
}

// Singletons for the non-function, non-error kinds.
var (
	TInt    = Type{Kind: Int}
	TFloat  = Type{Kind: Float}
	TString = Type{Kind: String}
	TBool   = Type{Kind: Bool}
	TChar   = Type{Kind: Char}
	TVoid   = Type{Kind: Void}
	TAny    = Type{Kind: Any}
	TError  = Type{Kind: ErrorKind}
)

// Function constructs a function type from parameter types and a return type.
func Function(params []Type, returns Type) Type {
	ret := returns

	return Type{Kind: FunctionKind, Params: params, Returns: &ret}
}

// IsError reports whether t is the poisoned ErrorType that suppresses
// cascaded diagnostics (spec.md §4.4 "Error propagation").
func (t Type) IsError() bool {
	return t.Kind == ErrorKind
}

// Equal reports structural equality. Any matches another type only when
// checked through AssignableFrom; Equal itself is strict, matching
// spec.md §4.4's call-argument rule where "Any matches anything" is a
// special case handled separately.
func (t Type) Equal(other Type) bool {
	if t.Kind != other.Kind {
		return false
	}

	if t.Kind != FunctionKind {
		return true
	}

	if len(t.Params) != len(other.Params) {
		return false
	}

	for i := range t.Params {
		if !t.Params[i].Equal(other.Params[i]) {
			return false
		}
	}

	return t.Returns.Equal(*other.Returns)
}

// AssignableFrom reports whether a value of type `from` may be used where
// `to` is expected, per spec.md §4.4's call rule ("Any matching anything").
func AssignableFrom(to, from Type) bool {
	if to.Kind == Any || from.Kind == Any {
		return true
	}

	return to.Equal(from)
}

// String renders the type's source-level name.
func (t Type) String() string {
	switch t.Kind {
	case Int:
		return "Int"
	case Float:
		return "Float"
	case String:
		return "String"
	case Bool:
		return "Bool"
	case Char:
		return "Char"
	case Void:
		return "Void"
	case Any:
		return "Any"
	case ErrorKind:
		return "<error>"
	case FunctionKind:
		params := ""
		for i, p := range t.Params {
			if i > 0 {
				params += ", "
			}
			params += p.String()
		}

		ret := "Void"
		if t.Returns != nil {
			ret = t.Returns.String()
		}

		return fmt.Sprintf("fun(%s) -> %s", params, ret)
	default:
		return "<unknown>"
	}
}

// FromName resolves a spec.md §4.4 source-level type name ("Int Float
// String Bool Char Void") to its Type, or reports ok=false for any other
// name (the caller turns that into an ErrorType at the point of reference).
func FromName(name string) (Type, bool) {
	switch name {
	case "Int":
		return TInt, true
	case "Float":
		return TFloat, true
	case "String":
		return TString, true
	case "Bool":
		return TBool, true
	case "Char":
		return TChar, true
	case "Void":
		return TVoid, true
	default:
		return TError, false
	}
}
