// Package cache memoizes parsed-and-checked programs by source content hash,
// so the watch-mode and batch-file CLI paths don't re-lex/re-parse/re-check
// a file that hasn't changed since the last run.
package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/cespare/xxhash/v2"

	"github.com/th3oth3rjak3/Sigil/internal/ast"
	"github.com/th3oth3rjak3/Sigil/internal/diagnostics"
)

// Entry is a fully checked program, keyed by the hash of the source text
// that produced it. Diagnostics and Suppressed carry forward everything a
// Sink reported the first time the source was checked, so a cache hit can
// reproduce the exact same Render()/RenderColor() output a cache miss
// would have produced, not just the same pass/fail verdict.
type Entry struct {
	Stmts       []ast.Stmt
	HadError    bool
	Diagnostics []diagnostics.Diagnostic
	Suppressed  int
}

// Key hashes source text with xxhash, the same non-cryptographic hash the
// retrieval pack uses for its own content-addressed build cache.
func Key(source string) uint64 {
	return xxhash.Sum64String(source)
}

// Cache is a bounded LRU of Entry keyed by Key. The underlying golang-lru
// cache locks internally, so one instance may be shared across goroutines;
// the CLI's batch runner shares a single instance across all of its files.
type Cache struct {
	lru *lru.Cache[uint64, Entry]
}

// New creates a Cache holding at most size entries. size <= 0 is an error
// from the underlying LRU package, so New substitutes a sane default.
func New(size int) *Cache {
	if size <= 0 {
		size = 128
	}

	c, err := lru.New[uint64, Entry](size)
	if err != nil {
		// Only returned by golang-lru when size <= 0, which can't happen above.
		panic(err)
	}

	return &Cache{lru: c}
}

// Get looks up the entry for source, returning ok=false on a miss.
func (c *Cache) Get(source string) (Entry, bool) {
	return c.lru.Get(Key(source))
}

// Put stores entry under source's content hash, evicting the least
// recently used entry if the cache is full.
func (c *Cache) Put(source string, entry Entry) {
	c.lru.Add(Key(source), entry)
}

// Purge discards every cached entry.
func (c *Cache) Purge() {
	c.lru.Purge()
}

// Len reports how many entries are currently cached.
func (c *Cache) Len() int {
	return c.lru.Len()
}
