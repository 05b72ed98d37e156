package diagnostics

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styles used only by RenderColor; Format/Render's plain text is always
// byte-for-byte the spec.md §4.1 contract and never passes through these.
var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	caretStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// RenderColor behaves like Render but wraps the header and caret lines of
// each diagnostic in ANSI color, for terminals that want it. The
// underlying text is identical to Render/Format; only styling is added.
func (s *Sink) RenderColor() string {
	var b strings.Builder

	for i, d := range s.reported {
		if i > 0 {
			b.WriteString("\n")
		}

		b.WriteString(FormatColor(s.source, d))
		b.WriteString("\n")
	}

	if s.suppressed > 0 {
		if len(s.reported) > 0 {
			b.WriteString("\n")
		}

		b.WriteString(footerStyle.Render(formatFooter(len(s.reported), s.Count())))
		b.WriteString("\n")
	}

	return b.String()
}

func formatFooter(shown, total int) string {
	return fmt.Sprintf("Showing %d of %d errors. Recompile with a narrower input to see the rest.", shown, total)
}

// FormatColor renders a single diagnostic like Format, with the header and
// caret lines styled for a color terminal.
func FormatColor(source string, d Diagnostic) string {
	plain := strings.Split(Format(source, d), "\n")
	if len(plain) != 3 {
		return Format(source, d)
	}

	header, sourceRow, caretRow := plain[0], plain[1], plain[2]

	return strings.Join([]string{headerStyle.Render(header), sourceRow, caretStyle.Render(caretRow)}, "\n")
}
