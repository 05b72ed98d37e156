package cli

import (
	"os"

	"github.com/th3oth3rjak3/Sigil/internal/ast"
	"github.com/th3oth3rjak3/Sigil/internal/cache"
	"github.com/th3oth3rjak3/Sigil/internal/config"
	"github.com/th3oth3rjak3/Sigil/internal/diagnostics"
	"github.com/th3oth3rjak3/Sigil/internal/interpreter"
	"github.com/th3oth3rjak3/Sigil/internal/lexer"
	"github.com/th3oth3rjak3/Sigil/internal/parser"
	"github.com/th3oth3rjak3/Sigil/internal/typechecker"
)

// StdoutSink adapts os.Stdout to interpreter.OutputSink.
type StdoutSink struct{}

func (StdoutSink) Write(s string)     { os.Stdout.WriteString(s) }
func (StdoutSink) WriteLine(s string) { os.Stdout.WriteString(s + "\n") }

// CheckResult is what Check produces: the parsed program (cacheable) and
// the diagnostics sink that accumulated every lexical, syntax, and static
// error found along the way, whether this run lexed/parsed/checked source
// itself or replayed a cache hit's stored diagnostics. HadError mirrors
// Sink.HadError() either way.
type CheckResult struct {
	Stmts    []ast.Stmt
	Sink     *diagnostics.Sink
	HadError bool
}

// Check lexes, parses, and type-checks source, consulting c for a prior
// result keyed by content hash and populating it on a miss. c may be nil to
// bypass caching entirely. A cache hit skips re-lexing/parsing/checking but
// replays the original run's diagnostics verbatim, so the rendered output
// a caller sees is identical whether or not the cache was consulted.
func Check(source string, cfg config.Config, c *cache.Cache) CheckResult {
	if c != nil {
		if entry, ok := c.Get(source); ok {
			sink := diagnostics.Restore(source, cfg.DiagnosticsCap, entry.Diagnostics, entry.Suppressed)
			return CheckResult{Stmts: entry.Stmts, Sink: sink, HadError: sink.HadError()}
		}
	}

	sink := diagnostics.NewSinkWithCap(source, cfg.DiagnosticsCap)

	tokens := lexer.New(source, sink).Tokenize()
	stmts := parser.New(source, tokens, sink).Parse()
	typechecker.Check(stmts, sink)

	if c != nil {
		c.Put(source, cache.Entry{
			Stmts:       stmts,
			HadError:    sink.HadError(),
			Diagnostics: sink.Diagnostics(),
			Suppressed:  sink.Suppressed(),
		})
	}

	return CheckResult{Stmts: stmts, Sink: sink, HadError: sink.HadError()}
}

// RenderSink formats sink the way cfg asks for: plain text, or lipgloss-
// colored text when the project config has color output turned on. Every
// CLI entry point renders diagnostics through this instead of calling
// Sink.Render directly, so the color config knob actually does something.
func RenderSink(sink *diagnostics.Sink, cfg config.Config) string {
	if cfg.Color {
		return sink.RenderColor()
	}

	return sink.Render()
}

// Run checks source and, if it type-checks cleanly, interprets it, writing
// output to out. It always returns the sink so callers can render
// diagnostics uniformly whether the failure was static or at runtime.
func Run(source string, cfg config.Config, c *cache.Cache, out interpreter.OutputSink) *diagnostics.Sink {
	result := Check(source, cfg, c)
	if result.HadError {
		return result.Sink
	}

	interp := interpreter.New(result.Sink, out)
	interp.Run(result.Stmts)

	return result.Sink
}
