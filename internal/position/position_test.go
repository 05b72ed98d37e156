package position_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/th3oth3rjak3/Sigil/internal/position"
)

func TestNewRejectsInvalidValues(t *testing.T) {
	_, err := position.New(0, 1, 0, 0)
	require.Error(t, err)

	_, err = position.New(1, 0, 0, 0)
	require.Error(t, err)

	_, err = position.New(1, 1, -1, 0)
	require.Error(t, err)

	_, err = position.New(1, 1, 5, 10)
	require.Error(t, err, "lineStart must not exceed offset")

	pos, err := position.New(1, 1, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, pos.Line)
}

func TestSpanSliceIsInclusive(t *testing.T) {
	source := "let x = 42;"

	start, err := position.New(1, 1, 0, 0)
	require.NoError(t, err)
	end, err := position.New(1, 3, 2, 0)
	require.NoError(t, err)

	span, err := position.NewSpan(start, end)
	require.NoError(t, err)
	assert.Equal(t, "let", span.Slice(source))
}

func TestSpanContains(t *testing.T) {
	start, _ := position.New(1, 1, 0, 0)
	end, _ := position.New(1, 3, 2, 0)
	span, _ := position.NewSpan(start, end)

	assert.True(t, span.Contains(0))
	assert.True(t, span.Contains(2))
	assert.False(t, span.Contains(3))
}

func TestSpanMerge(t *testing.T) {
	s1Start, _ := position.New(1, 1, 0, 0)
	s1End, _ := position.New(1, 4, 3, 0)
	s1, _ := position.NewSpan(s1Start, s1End)

	s2Start, _ := position.New(1, 6, 5, 0)
	s2End, _ := position.New(1, 8, 7, 0)
	s2, _ := position.NewSpan(s2Start, s2End)

	merged := s1.Merge(s2)
	assert.Equal(t, 0, merged.Start.Offset)
	assert.Equal(t, 7, merged.End.Offset)
}

func TestNewSpanRejectsBackwardsRange(t *testing.T) {
	start, _ := position.New(1, 5, 4, 0)
	end, _ := position.New(1, 1, 0, 0)

	_, err := position.NewSpan(start, end)
	require.Error(t, err)
}
