// Package diagnostics implements the shared error sink described in
// spec.md §4.1: every later pipeline stage reports into it by value, and
// it renders a three-line, source-context view of each problem on demand.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/th3oth3rjak3/Sigil/internal/position"
)

// DefaultCap is the number of diagnostics rendered before further reports
// are counted but not shown, per spec.md §4.1.
const DefaultCap = 5

// Diagnostic is a single reported problem.
type Diagnostic struct {
	Message string
	Span    position.Span
}

// Sink accumulates diagnostics against a single source string and renders
// them in the three-line format spec.md §4.1 mandates.
type Sink struct {
	source     string
	cap        int
	reported   []Diagnostic
	suppressed int
}

// NewSink creates a Sink over source with the default visible-error cap.
func NewSink(source string) *Sink {
	return NewSinkWithCap(source, DefaultCap)
}

// NewSinkWithCap creates a Sink with an explicit visible-error cap. A cap
// of 0 or less means unlimited.
func NewSinkWithCap(source string, cap int) *Sink {
	return &Sink{source: source, cap: cap}
}

// Restore rebuilds a Sink that renders identically to one that actually
// reported reported and suppressed more past the cap, without re-running
// the pipeline stages that produced them. Callers that persist diagnostics
// outside the Sink itself (a content-addressed cache, say) use this to
// reproduce the original Render()/RenderColor() output on a replay.
func Restore(source string, cap int, reported []Diagnostic, suppressed int) *Sink {
	out := make([]Diagnostic, len(reported))
	copy(out, reported)

	return &Sink{source: source, cap: cap, reported: out, suppressed: suppressed}
}

// Suppressed returns how many diagnostics were counted past the cap and
// never kept in Diagnostics().
func (s *Sink) Suppressed() int {
	return s.suppressed
}

// Report records a diagnostic at span. Invalid spans are rejected at
// construction time (position.NewSpan), not here; Report always succeeds
// for any Span value it is handed.
func (s *Sink) Report(message string, span position.Span) {
	if s.cap <= 0 || len(s.reported) < s.cap {
		s.reported = append(s.reported, Diagnostic{Message: message, Span: span})
		return
	}

	s.suppressed++
}

// HadError reports whether any diagnostic (visible or suppressed) has been
// recorded.
func (s *Sink) HadError() bool {
	return len(s.reported) > 0 || s.suppressed > 0
}

// Count returns the total number of diagnostics reported, including those
// suppressed past the cap.
func (s *Sink) Count() int {
	return len(s.reported) + s.suppressed
}

// Diagnostics returns the diagnostics that were kept (not suppressed by
// the cap), in report order.
func (s *Sink) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(s.reported))
	copy(out, s.reported)

	return out
}

// Render formats every visible diagnostic using Format, separated by a
// blank line, followed by a cap-footer if any were suppressed.
func (s *Sink) Render() string {
	var b strings.Builder

	for i, d := range s.reported {
		if i > 0 {
			b.WriteString("\n")
		}

		b.WriteString(Format(s.source, d))
		b.WriteString("\n")
	}

	if s.suppressed > 0 {
		if len(s.reported) > 0 {
			b.WriteString("\n")
		}

		fmt.Fprintf(&b, "Showing %d of %d errors. Recompile with a narrower input to see the rest.\n", len(s.reported), s.Count())
	}

	return b.String()
}

// Format renders a single diagnostic as the three-line block spec.md §4.1
// describes:
//
//	[<line>:<col>] Error: <message>
//	<line> | <source line>
//	        <spaces><carets> <- Error Here
func Format(source string, d Diagnostic) string {
	start, end := d.Span.Start, d.Span.End

	header := fmt.Sprintf("[%d:%d] Error: %s", start.Line, start.Column, d.Message)

	lineText := sourceLine(source, start)
	prefix := fmt.Sprintf("%d | ", start.Line)
	sourceRow := prefix + lineText

	caretLen := end.Column - start.Column + 1
	if caretLen < 0 {
		caretLen = 0
	}

	caretRow := strings.Repeat(" ", len(prefix)+start.Column-1) + strings.Repeat("^", caretLen) + " <- Error Here"

	return strings.Join([]string{header, sourceRow, caretRow}, "\n")
}

// sourceLine returns the full line of source containing pos.Offset.
func sourceLine(source string, pos position.Position) string {
	lineStart := pos.LineStart
	if lineStart < 0 || lineStart > len(source) {
		return ""
	}

	end := strings.IndexByte(source[lineStart:], '\n')
	if end < 0 {
		return source[lineStart:]
	}

	return source[lineStart : lineStart+end]
}
