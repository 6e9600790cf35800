// Package trie provides a rune-indexed prefix tree used to index console names.
//
// Exact lookup costs O(k) in the key length. Prefix enumeration costs O(k) to
// reach the subtree plus O(m) to yield its m keys, in lexicographic order.
// A Trie is not safe for concurrent use; callers synchronise.
package trie

import (
	"iter"
	"sort"
)

type node[V any] struct {
	children []child[V] // sorted by r
	terminal bool
	value    V
}

type child[V any] struct {
	r    rune
	next *node[V]
}

func (n *node[V]) find(r rune) (int, bool) {
	i := sort.Search(len(n.children), func(i int) bool { return n.children[i].r >= r })
	return i, i < len(n.children) && n.children[i].r == r
}

// Trie maps string keys to values of type V.
type Trie[V any] struct {
	root node[V]
	size int
}

// New creates an empty Trie.
func New[V any]() *Trie[V] {
	return &Trie[V]{}
}

// Insert stores v under key. It returns true when the key was new and false
// when an existing value was replaced.
func (t *Trie[V]) Insert(key string, v V) bool {
	n := &t.root
	for _, r := range key {
		i, ok := n.find(r)
		if !ok {
			n.children = append(n.children, child[V]{})
			copy(n.children[i+1:], n.children[i:])
			n.children[i] = child[V]{r: r, next: &node[V]{}}
		}
		n = n.children[i].next
	}
	added := !n.terminal
	n.terminal = true
	n.value = v
	if added {
		t.size++
	}
	return added
}

// Get returns the value stored under key.
func (t *Trie[V]) Get(key string) (V, bool) {
	n := t.descend(key)
	if n == nil || !n.terminal {
		var zero V
		return zero, false
	}
	return n.value, true
}

// Contains reports whether key is stored.
func (t *Trie[V]) Contains(key string) bool {
	_, ok := t.Get(key)
	return ok
}

// Len returns the number of stored keys.
func (t *Trie[V]) Len() int { return t.size }

// PrefixIter yields every key starting with prefix together with its value,
// in lexicographic rune order. An empty prefix yields every key.
func (t *Trie[V]) PrefixIter(prefix string) iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		n := t.descend(prefix)
		if n == nil {
			return
		}
		buf := []rune(prefix)
		walk(n, buf, yield)
	}
}

// Keys returns every key with the given prefix.
func (t *Trie[V]) Keys(prefix string) []string {
	var keys []string
	for k := range t.PrefixIter(prefix) {
		keys = append(keys, k)
	}
	return keys
}

func (t *Trie[V]) descend(key string) *node[V] {
	n := &t.root
	for _, r := range key {
		i, ok := n.find(r)
		if !ok {
			return nil
		}
		n = n.children[i].next
	}
	return n
}

// walk is a pre-order traversal; a key sorts before its extensions.
func walk[V any](n *node[V], path []rune, yield func(string, V) bool) bool {
	if n.terminal && !yield(string(path), n.value) {
		return false
	}
	for _, c := range n.children {
		if !walk(c.next, append(path, c.r), yield) {
			return false
		}
	}
	return true
}
