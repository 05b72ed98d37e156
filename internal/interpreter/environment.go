package interpreter

import (
	"fmt"

	"github.com/th3oth3rjak3/Sigil/internal/position"
)

// Environment is a scope frame: a name→value map chained to an optional
// enclosing frame (spec.md §4.5). Lookups walk outward; Define always
// inserts locally; Set mutates the nearest enclosing binding.
type Environment struct {
	vars   map[string]Value
	parent *Environment
}

// NewEnvironment creates a frame enclosed by parent (nil for the global
// frame).
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{vars: map[string]Value{}, parent: parent}
}

// Define binds name to value in the local frame, shadowing any outer
// binding of the same name.
func (e *Environment) Define(name string, value Value) {
	e.vars[name] = value
}

// Get walks outward from e looking for name.
func (e *Environment) Get(name string, span position.Span) (Value, *RuntimeError) {
	for frame := e; frame != nil; frame = frame.parent {
		if v, ok := frame.vars[name]; ok {
			return v, nil
		}
	}

	return Value{}, &RuntimeError{Message: fmt.Sprintf("Undefined variable '%s'", name), Span: span}
}

// Set walks outward from e and mutates the first frame containing name.
func (e *Environment) Set(name string, value Value, span position.Span) *RuntimeError {
	for frame := e; frame != nil; frame = frame.parent {
		if _, ok := frame.vars[name]; ok {
			frame.vars[name] = value

			return nil
		}
	}

	return &RuntimeError{Message: fmt.Sprintf("Undefined variable '%s'", name), Span: span}
}
