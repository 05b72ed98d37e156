package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/th3oth3rjak3/Sigil/internal/ast"
	"github.com/th3oth3rjak3/Sigil/internal/cache"
	"github.com/th3oth3rjak3/Sigil/internal/position"
)

func TestKeyIsStableAndDistinguishesSource(t *testing.T) {
	a := cache.Key("let x = 1;")
	b := cache.Key("let x = 1;")
	c := cache.Key("let x = 2;")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestPutGetRoundTrips(t *testing.T) {
	c := cache.New(4)

	source := "println(1);"
	stmt := ast.NewExprStmt(ast.NewIntLit(1, position.Span{}), position.Span{})
	entry := cache.Entry{Stmts: []ast.Stmt{stmt}}

	c.Put(source, entry)

	got, ok := c.Get(source)
	require.True(t, ok)
	assert.Len(t, got.Stmts, 1)
}

func TestGetMissReturnsFalse(t *testing.T) {
	c := cache.New(4)

	_, ok := c.Get("nope")
	assert.False(t, ok)
}

func TestNewNonPositiveSizeFallsBackToDefault(t *testing.T) {
	c := cache.New(0)

	for i := 0; i < 200; i++ {
		c.Put(string(rune('a'+i%26))+string(rune(i)), cache.Entry{})
	}

	assert.LessOrEqual(t, c.Len(), 128)
}

func TestPurgeEmptiesCache(t *testing.T) {
	c := cache.New(4)
	c.Put("x", cache.Entry{})
	require.Equal(t, 1, c.Len())

	c.Purge()

	assert.Equal(t, 0, c.Len())
}
