package interpreter

import "github.com/th3oth3rjak3/Sigil/internal/position"

//go:generate go run go.uber.org/mock/mockgen -source=builtins.go -destination=mock_outputsink.go -package=interpreter

// OutputSink is the byte-oriented writer built-ins emit to (spec.md §6
// "Output sink contract").
type OutputSink interface {
	Write(s string)
	WriteLine(s string)
}

// builtinFunc evaluates a call to one of the hard-coded built-ins.
type builtinFunc func(i *Interpreter, args []Value, span position.Span) (Value, *RuntimeError)

var builtinTable = map[string]builtinFunc{
	"print":   builtinPrint,
	"println": builtinPrintln,
	"string":  builtinString,
}

// builtinPrint concatenates every argument's stringification and writes
// it without a trailing newline (spec.md §6).
func builtinPrint(i *Interpreter, args []Value, _ position.Span) (Value, *RuntimeError) {
	i.out.Write(joinStrings(args))

	return NullValue, nil
}

// builtinPrintln is builtinPrint plus one trailing newline.
func builtinPrintln(i *Interpreter, args []Value, _ position.Span) (Value, *RuntimeError) {
	i.out.WriteLine(joinStrings(args))

	return NullValue, nil
}

// builtinString returns the stringification of its single argument.
func builtinString(_ *Interpreter, args []Value, span position.Span) (Value, *RuntimeError) {
	if len(args) != 1 {
		return Value{}, &RuntimeError{Message: "'string' expects exactly 1 argument", Span: span}
	}

	return NewString(args[0].String()), nil
}
