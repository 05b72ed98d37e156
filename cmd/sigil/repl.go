package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/th3oth3rjak3/Sigil/internal/cli"
	"github.com/th3oth3rjak3/Sigil/internal/config"
	"github.com/th3oth3rjak3/Sigil/internal/diagnostics"
	"github.com/th3oth3rjak3/Sigil/internal/interpreter"
	"github.com/th3oth3rjak3/Sigil/internal/lexer"
	"github.com/th3oth3rjak3/Sigil/internal/parser"
	"github.com/th3oth3rjak3/Sigil/internal/typechecker"
)

func newReplCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive Sigil session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := loadRuntime(root, ".")
			if err != nil {
				return err
			}

			return runREPL(cfg, os.Stdin, os.Stdout)
		},
	}

	return cmd
}

// session is one REPL run: a stable id for diagnostics/logging correlation
// plus the interpreter whose environment persists across lines.
type session struct {
	id     uuid.UUID
	interp *interpreter.Interpreter
}

func newSession(cfg config.Config) *session {
	sink := diagnostics.NewSinkWithCap("", cfg.DiagnosticsCap)

	return &session{
		id:     uuid.New(),
		interp: interpreter.New(sink, replSink{}),
	}
}

// replSink is an OutputSink writing straight to stdout.
type replSink struct{}

func (replSink) Write(s string)     { fmt.Print(s) }
func (replSink) WriteLine(s string) { fmt.Println(s) }

// runREPL evaluates one line at a time against a single session, so
// variables and functions declared on one line are visible on the next.
func runREPL(cfg config.Config, in *os.File, out *os.File) error {
	sess := newSession(cfg)

	fmt.Fprintf(out, "sigil repl (session %s)\n", sess.id)
	fmt.Fprintln(out, "type :quit to exit, :reset to clear session state")

	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, "sigil> ")

		if !scanner.Scan() {
			fmt.Fprintln(out)
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch line {
		case ":quit", ":q", ":exit":
			return nil
		case ":reset":
			sess = newSession(cfg)
			fmt.Fprintf(out, "session reset (new id %s)\n", sess.id)

			continue
		}

		evalLine(sess, line, cfg, out)
	}
}

// evalLine lexes, parses, type-checks, and interprets one line of input
// against sess's persistent interpreter state.
func evalLine(sess *session, line string, cfg config.Config, out *os.File) {
	sink := diagnostics.NewSinkWithCap(line, cfg.DiagnosticsCap)

	tokens := lexer.New(line, sink).Tokenize()
	stmts := parser.New(line, tokens, sink).Parse()
	typechecker.Check(stmts, sink)

	if sink.HadError() {
		fmt.Fprint(out, cli.RenderSink(sink, cfg))
		return
	}

	sess.interp.ResetSink(sink)
	sess.interp.Run(stmts)

	if sink.HadError() {
		fmt.Fprint(out, cli.RenderSink(sink, cfg))
	}
}
