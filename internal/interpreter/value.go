package interpreter

import (
	"strconv"
	"strings"
)

// Kind tags a runtime Value's active field (spec.md §3 "Runtime value").
type Kind int

const (
	Int Kind = iota
	Float
	String
	Char
	Bool
	Null
)

// Value is the tagged union of runtime values the interpreter produces
// and consumes. Only the field matching Kind is meaningful.
type Value struct {
	Kind  Kind
	AsInt int64
	AsFlt float64
	AsStr string
	AsChr rune
	AsBln bool
}

// NullValue is the singleton unit/absence value.
var NullValue = Value{Kind: Null}

// NewInt wraps a signed 64-bit integer.
func NewInt(v int64) Value { return Value{Kind: Int, AsInt: v} }

// NewFloat wraps a 64-bit float.
func NewFloat(v float64) Value { return Value{Kind: Float, AsFlt: v} }

// NewString wraps an immutable string.
func NewString(v string) Value { return Value{Kind: String, AsStr: v} }

// NewChar wraps a single rune.
func NewChar(v rune) Value { return Value{Kind: Char, AsChr: v} }

// NewBool wraps a boolean.
func NewBool(v bool) Value { return Value{Kind: Bool, AsBln: v} }

// Truthy implements spec.md §4.6's rule: null and false are falsy,
// everything else is truthy.
func (v Value) Truthy() bool {
	switch v.Kind {
	case Null:
		return false
	case Bool:
		return v.AsBln
	default:
		return true
	}
}

// Equal compares by tag then value; values of different tags are never
// equal, except that null equals null (spec.md §4.6).
func (v Value) Equal(other Value) bool {
	if v.Kind == Null && other.Kind == Null {
		return true
	}

	if v.Kind != other.Kind {
		return false
	}

	switch v.Kind {
	case Int:
		return v.AsInt == other.AsInt
	case Float:
		return v.AsFlt == other.AsFlt
	case String:
		return v.AsStr == other.AsStr
	case Char:
		return v.AsChr == other.AsChr
	case Bool:
		return v.AsBln == other.AsBln
	default:
		return true
	}
}

// String renders v per spec.md §4.6's stringification rule: booleans
// capitalize, integral floats drop their trailing ".0", null renders as
// "null", everything else uses its natural representation.
func (v Value) String() string {
	switch v.Kind {
	case Int:
		return strconv.FormatInt(v.AsInt, 10)
	case Float:
		if v.AsFlt == float64(int64(v.AsFlt)) {
			return strconv.FormatInt(int64(v.AsFlt), 10)
		}

		return strconv.FormatFloat(v.AsFlt, 'g', -1, 64)
	case String:
		return v.AsStr
	case Char:
		return string(v.AsChr)
	case Bool:
		if v.AsBln {
			return "True"
		}

		return "False"
	case Null:
		return "null"
	default:
		return ""
	}
}

// TypeName renders v's runtime type for error messages.
func (v Value) TypeName() string {
	switch v.Kind {
	case Int:
		return "Int"
	case Float:
		return "Float"
	case String:
		return "String"
	case Char:
		return "Char"
	case Bool:
		return "Bool"
	case Null:
		return "Null"
	default:
		return "<unknown>"
	}
}

// joinStrings concatenates the stringification of every value, used by
// the print/println built-ins.
func joinStrings(values []Value) string {
	var b strings.Builder

	for _, v := range values {
		b.WriteString(v.String())
	}

	return b.String()
}
