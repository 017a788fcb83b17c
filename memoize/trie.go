package memoize

import (
	"sync"
	"sync/atomic"

	"github.com/on-the-ground/lowdash_go/shared/helper"
)

// KeyArg is an argument of a typed memoizer: comparable, or a fmt.Stringer.
type KeyArg any

// TrieKey is what a trie node is keyed by: the argument itself, or its
// String() form.
type TrieKey any

// Trie maps argument tuples to results. It keeps two generations of
// entries; once maxSize stores have gone to the current generation it
// becomes the previous one and the older generation is dropped.
type Trie[O any] struct {
	head    atomic.Pointer[sync.Map]
	tail    atomic.Pointer[sync.Map]
	size    atomic.Uint32
	maxSize uint32
}

func NewTrie[O any](maxSize uint32) *Trie[O] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	t := &Trie[O]{maxSize: maxSize}
	t.head.Store(&sync.Map{})
	t.tail.Store(&sync.Map{})
	return t
}

func (t *Trie[O]) Load(keys []TrieKey) (O, bool) {
	if len(keys) == 0 {
		panic("load: empty keys")
	}
	for _, root := range []*sync.Map{t.head.Load(), t.tail.Load()} {
		if v, ok := helper.LookupAs[O](lookup(root, keys)); ok {
			return v, true
		}
	}
	var zero O
	return zero, false
}

func (t *Trie[O]) Store(keys []TrieKey, value O) {
	if t.size.CompareAndSwap(t.maxSize, 0) {
		t.tail.Store(t.head.Load())
		t.head.Store(&sync.Map{})
	}
	m, k := t.traverse(t.head.Load(), keys)
	m.Store(k, value)
	t.size.Add(1)
}

// lookup walks keys without creating nodes.
func lookup(node *sync.Map, keys []TrieKey) (any, bool) {
	for _, k := range keys[:len(keys)-1] {
		v, ok := node.Load(k)
		if !ok {
			return nil, false
		}
		if node, ok = v.(*sync.Map); !ok {
			return nil, false
		}
	}
	return node.Load(keys[len(keys)-1])
}

func (t *Trie[O]) traverse(node *sync.Map, keys []TrieKey) (*sync.Map, TrieKey) {
	length := len(keys)
	if length == 0 {
		panic("traverse: empty keys")
	}

	for _, k := range keys[:length-1] {
		v, _ := node.LoadOrStore(k, &sync.Map{})
		node = v.(*sync.Map)
	}
	return node, keys[length-1]
}
