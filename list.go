package radixsort

import (
	"fmt"
	"iter"
)

// DefaultMaxLen is the default bound on stored word length, in bytes.
const DefaultMaxLen = 30

// maxMaxLen is the largest bound accepted by WithMaxLen.
const maxMaxLen = 255

// List is a doubly linked list of words that can be radix sorted.
//
// A List is owned by one goroutine at a time. Sortedness is not maintained
// incrementally: it holds right after Sort and may be broken by any later
// Insert.
type List struct {
	maxLen   int
	arena    *arena
	seq      sequence
	observer Observer
}

// Option configures a List.
type Option func(*List)

// WithMaxLen sets the word length bound. Longer words are truncated by Insert.
// n must be in 1..255.
func WithMaxLen(n int) Option {
	return func(l *List) {
		assert(n > 0 && n <= maxMaxLen, fmt.Sprintf("max word length out of range (1..%d): %d", maxMaxLen, n))
		l.maxLen = n
	}
}

// WithObserver attaches an observer that is notified about sort passes.
func WithObserver(o Observer) Option {
	return func(l *List) {
		if o != nil {
			l.observer = o
		}
	}
}

// New creates an empty list.
func New(opts ...Option) *List {
	l := &List{
		maxLen:   DefaultMaxLen,
		arena:    newArena(64),
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// MaxLen returns the word length bound of the list.
func (l *List) MaxLen() int {
	return l.maxLen
}

// Len returns the number of words in the list.
func (l *List) Len() int {
	return l.seq.n
}

// Insert appends word at the tail, truncated to MaxLen bytes, and returns the
// ID of the new record. The word is not validated.
func (l *List) Insert(word string) RecordID {
	if len(word) > l.maxLen {
		word = word[:l.maxLen]
	}
	id := l.arena.alloc(word)
	l.arena.push(&l.seq, id)
	return id
}

// InsertAll appends every word of words, in order.
func (l *List) InsertAll(words ...string) {
	for _, w := range words {
		l.Insert(w)
	}
}

// Delete removes the first record, scanning from the head, whose word equals
// word byte for byte. It reports false and leaves the list unchanged if there
// is no such record.
func (l *List) Delete(word string) bool {
	for id := l.seq.head; id != none; id = l.arena.recs[id].next {
		if l.arena.recs[id].word == word {
			l.arena.detach(&l.seq, id)
			l.arena.release(id)
			return true
		}
	}
	return false
}

// Clear removes every record. The list is empty afterwards.
func (l *List) Clear() {
	for id := l.seq.head; id != none; id = l.seq.head {
		l.arena.detach(&l.seq, id)
		l.arena.release(id)
	}
}

// Word returns the word stored under id.
func (l *List) Word(id RecordID) (string, bool) {
	if !l.arena.valid(id) {
		return "", false
	}
	return l.arena.recs[id].word, true
}

// All iterates the words from head to tail.
func (l *List) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for id := l.seq.head; id != none; id = l.arena.recs[id].next {
			if !yield(l.arena.recs[id].word) {
				return
			}
		}
	}
}

// Backward iterates the words from tail to head.
func (l *List) Backward() iter.Seq[string] {
	return func(yield func(string) bool) {
		for id := l.seq.tail; id != none; id = l.arena.recs[id].prev {
			if !yield(l.arena.recs[id].word) {
				return
			}
		}
	}
}

// IDs iterates the record IDs from head to tail.
func (l *List) IDs() iter.Seq[RecordID] {
	return func(yield func(RecordID) bool) {
		for id := l.seq.head; id != none; id = l.arena.recs[id].next {
			if !yield(id) {
				return
			}
		}
	}
}

// Words returns a copy of the words from head to tail.
func (l *List) Words() []string {
	words := make([]string, 0, l.seq.n)
	for w := range l.All() {
		words = append(words, w)
	}
	return words
}

// MaxWordLen returns the length in bytes of the longest stored word, or 0 for
// an empty list.
func (l *List) MaxWordLen() int {
	maxLen := 0
	for w := range l.All() {
		maxLen = max(maxLen, len(w))
	}
	return maxLen
}

// checkInvariants verifies the links of the working sequence.
func (l *List) checkInvariants() error {
	return l.arena.verify(&l.seq)
}

func (l *List) String() string {
	return fmt.Sprintf("List(len=%d,maxLen=%d,arena=%d,free=%d)",
		l.seq.n, l.maxLen, len(l.arena.recs)-1, len(l.arena.free))
}
