package memoize_test

import (
	"testing"

	"github.com/on-the-ground/lowdash_go/memoize"
	"github.com/stretchr/testify/assert"
)

func TestTrie_BasicUsage(t *testing.T) {
	trie := memoize.NewTrie[string](1)

	trie.Store([]memoize.TrieKey{"a", "b", "c"}, "final")

	val, ok := trie.Load([]memoize.TrieKey{"a", "b", "c"})
	assert.True(t, ok)
	assert.Equal(t, "final", val)

	_, ok = trie.Load([]memoize.TrieKey{"a", "b", "x"})
	assert.False(t, ok)

	trie.Store([]memoize.TrieKey{"a", "b", "c"}, "updated")
	val, ok = trie.Load([]memoize.TrieKey{"a", "b", "c"})
	assert.True(t, ok)
	assert.Equal(t, "updated", val)
}

func TestTrie_DropsOldestGeneration(t *testing.T) {
	trie := memoize.NewTrie[int](2)
	for i, k := range []string{"a", "b", "c"} {
		trie.Store([]memoize.TrieKey{k}, i)
	}

	// a and b moved to the previous generation
	v, ok := trie.Load([]memoize.TrieKey{"a"})
	assert.True(t, ok)
	assert.Equal(t, 0, v)

	trie.Store([]memoize.TrieKey{"d"}, 3)
	trie.Store([]memoize.TrieKey{"e"}, 4)

	_, ok = trie.Load([]memoize.TrieKey{"a"})
	assert.False(t, ok)
	for _, k := range []string{"c", "d", "e"} {
		_, ok = trie.Load([]memoize.TrieKey{k})
		assert.True(t, ok, k)
	}
}

func TestTrie_MixedKeyTypes(t *testing.T) {
	trie := memoize.NewTrie[string](4)
	trie.Store([]memoize.TrieKey{1, "1"}, "int then string")
	trie.Store([]memoize.TrieKey{"1", 1}, "string then int")

	v, _ := trie.Load([]memoize.TrieKey{1, "1"})
	assert.Equal(t, "int then string", v)
	v, _ = trie.Load([]memoize.TrieKey{"1", 1})
	assert.Equal(t, "string then int", v)
}

func TestTrie_EmptyKeysPanics(t *testing.T) {
	trie := memoize.NewTrie[int](2)
	assert.Panics(t, func() {
		trie.Load([]memoize.TrieKey{})
	})
}

func TestNewTrie_ZeroSizePanics(t *testing.T) {
	assert.Panics(t, func() {
		memoize.NewTrie[int](0)
	})
}
