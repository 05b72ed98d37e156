package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/th3oth3rjak3/Sigil/internal/cache"
	"github.com/th3oth3rjak3/Sigil/internal/cli"
	"github.com/th3oth3rjak3/Sigil/internal/config"
)

type capturingSink struct {
	lines []string
}

func (c *capturingSink) Write(s string)     { c.lines = append(c.lines, s) }
func (c *capturingSink) WriteLine(s string) { c.lines = append(c.lines, s) }

func TestRunCleanProgramProducesNoDiagnostics(t *testing.T) {
	out := &capturingSink{}

	sink := cli.Run("println(1 + 2);", config.Default(), nil, out)

	require.False(t, sink.HadError())
	assert.Equal(t, []string{"3"}, out.lines)
}

func TestRunTypeErrorProducesDiagnosticsWithoutInterpreting(t *testing.T) {
	out := &capturingSink{}

	sink := cli.Run(`println(1 + "x");`, config.Default(), nil, out)

	assert.True(t, sink.HadError())
	assert.Empty(t, out.lines)
}

func TestCheckPopulatesAndReusesCache(t *testing.T) {
	c := cache.New(4)
	source := "println(1);"

	first := cli.Check(source, config.Default(), c)
	require.False(t, first.HadError)
	require.Equal(t, 1, c.Len())

	second := cli.Check(source, config.Default(), c)
	assert.False(t, second.HadError)
	assert.Len(t, second.Stmts, len(first.Stmts))
}

func TestCheckCacheHitReplaysDiagnosticsForFailingProgram(t *testing.T) {
	c := cache.New(4)
	source := `println(1 + "x");`

	first := cli.Check(source, config.Default(), c)
	require.True(t, first.HadError)
	firstRendered := first.Sink.Render()
	require.NotEmpty(t, firstRendered)
	require.Equal(t, 1, c.Len())

	second := cli.Check(source, config.Default(), c)
	assert.True(t, second.HadError)
	assert.Equal(t, firstRendered, second.Sink.Render())
}

func TestCheckCacheHitReplaysSuppressionFooter(t *testing.T) {
	c := cache.New(4)
	cfg := config.Default()
	cfg.DiagnosticsCap = 1

	source := `println(1 + "x"); println(2 + "y"); println(3 + "z");`

	first := cli.Check(source, cfg, c)
	require.True(t, first.HadError)
	firstRendered := first.Sink.Render()
	assert.Contains(t, firstRendered, "Showing 1 of 3 errors")

	second := cli.Check(source, cfg, c)
	assert.True(t, second.HadError)
	assert.Equal(t, firstRendered, second.Sink.Render())
}
