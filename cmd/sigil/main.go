// Command sigil is the lexer/parser/type-checker/interpreter pipeline's
// command-line front end: run a file, type-check it without running it, or
// drop into an interactive REPL.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
