// Package wordindex answers membership and prefix queries over the words of a
// list, backed by a prefix trie.
package wordindex

import (
	"slices"

	"github.com/derekparker/trie"
	"github.com/npillmayer/schuko/tracing"

	radixsort "github.com/NarmeenMousa31/Radix-Sort"
)

// tracer writes to trace with key 'radixsort.wordindex'
func tracer() tracing.Trace {
	return tracing.Select("radixsort.wordindex")
}

// Index maps distinct words to their number of occurrences.
// It is a snapshot; later changes to the source list are not reflected
// unless applied through Add and Remove.
type Index struct {
	trie   *trie.Trie
	maxLen int
	words  int
}

// Build indexes every word of list.
func Build(list *radixsort.List) *Index {
	idx := &Index{
		trie:   trie.New(),
		maxLen: list.MaxLen(),
	}
	for w := range list.All() {
		idx.Add(w)
	}
	tracer().Debugf("indexed %d words", idx.words)
	return idx
}

// Add counts one more occurrence of word.
func (idx *Index) Add(word string) {
	idx.words++
	if node, ok := idx.trie.Find(word); ok {
		*node.Meta().(*int)++
		return
	}
	count := 1
	idx.trie.Add(word, &count)
}

// Remove drops one occurrence of word and reports whether there was one.
func (idx *Index) Remove(word string) bool {
	node, ok := idx.trie.Find(word)
	if !ok {
		return false
	}
	idx.words--
	count := node.Meta().(*int)
	*count--
	if *count == 0 {
		idx.trie.Remove(word)
	}
	return true
}

// Count returns the number of occurrences of word.
func (idx *Index) Count(word string) int {
	node, ok := idx.trie.Find(word)
	if !ok {
		return 0
	}
	return *node.Meta().(*int)
}

// Has reports whether word occurs at least once.
func (idx *Index) Has(word string) bool {
	return idx.Count(word) > 0
}

// Len returns the number of indexed occurrences.
func (idx *Index) Len() int {
	return idx.words
}

// HasPrefix reports whether any word starts with prefix.
func (idx *Index) HasPrefix(prefix string) bool {
	if prefix == "" {
		return idx.words > 0
	}
	return idx.trie.HasKeysWithPrefix(prefix)
}

// Prefix returns the distinct words starting with prefix, radix sorted.
// Words that tie under radixsort.Compare come out in byte order.
func (idx *Index) Prefix(prefix string) []string {
	var keys []string
	if prefix == "" {
		keys = idx.trie.Keys()
	} else {
		keys = idx.trie.PrefixSearch(prefix)
	}
	slices.Sort(keys)
	l := radixsort.New(radixsort.WithMaxLen(idx.maxLen))
	l.InsertAll(keys...)
	l.Sort()
	return l.Words()
}
