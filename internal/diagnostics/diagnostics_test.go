package diagnostics_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/th3oth3rjak3/Sigil/internal/diagnostics"
	"github.com/th3oth3rjak3/Sigil/internal/position"
)

func mustSpan(t *testing.T, startCol, endCol, offset int) position.Span {
	t.Helper()

	start, err := position.New(1, startCol, offset, 0)
	require.NoError(t, err)
	end, err := position.New(1, endCol, offset+(endCol-startCol), 0)
	require.NoError(t, err)

	span, err := position.NewSpan(start, end)
	require.NoError(t, err)

	return span
}

func TestSinkRenderFormat(t *testing.T) {
	source := "let y = z;"
	sink := diagnostics.NewSink(source)

	sink.Report("Undefined variable or function: z", mustSpan(t, 9, 9, 8))

	rendered := sink.Render()
	lines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "[1:9] Error: Undefined variable or function: z", lines[0])
	assert.Equal(t, "1 | let y = z;", lines[1])
	assert.True(t, strings.HasSuffix(lines[2], "<- Error Here"))
	assert.True(t, strings.Contains(lines[2], "^"))
}

func TestSinkCapsSuppression(t *testing.T) {
	source := "a b c d e f g"
	sink := diagnostics.NewSinkWithCap(source, 2)

	for i := 0; i < 5; i++ {
		sink.Report("bad token", mustSpan(t, 1, 1, 0))
	}

	assert.True(t, sink.HadError())
	assert.Len(t, sink.Diagnostics(), 2)
	assert.Equal(t, 5, sink.Count())
	assert.Contains(t, sink.Render(), "Showing 2 of 5 errors.")
}

func TestSinkNoErrorsWhenEmpty(t *testing.T) {
	sink := diagnostics.NewSink("")
	assert.False(t, sink.HadError())
	assert.Equal(t, "", sink.Render())
}
