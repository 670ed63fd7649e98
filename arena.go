package radixsort

import "fmt"

// RecordID addresses a record in a list's arena. IDs stay stable while a record
// moves between the working list and buckets. The zero ID means "no record".
type RecordID uint32

const none RecordID = 0

// record is one stored word plus its links. Links are only touched by the
// arena, which keeps a record in at most one sequence at a time.
type record struct {
	word   string
	prev   RecordID
	next   RecordID
	linked bool // member of some sequence
	live   bool
}

// sequence is a doubly linked chain of records inside an arena.
// head == none iff tail == none iff n == 0.
type sequence struct {
	head RecordID
	tail RecordID
	n    int
}

func (s *sequence) empty() bool {
	return s.head == none
}

// arena owns all records of a list. Slot 0 is unused so that the zero
// RecordID can stand for "none".
type arena struct {
	recs []record
	free []RecordID // released IDs, reused by alloc
}

func newArena(capacity int) *arena {
	recs := make([]record, 1, capacity+1)
	return &arena{recs: recs}
}

// alloc creates an unlinked record holding word.
func (a *arena) alloc(word string) RecordID {
	if n := len(a.free); n > 0 {
		id := a.free[n-1]
		a.free = a.free[:n-1]
		a.recs[id] = record{word: word, live: true}
		return id
	}
	a.recs = append(a.recs, record{word: word, live: true})
	return RecordID(len(a.recs) - 1)
}

// release drops an unlinked record and recycles its ID.
func (a *arena) release(id RecordID) {
	r := &a.recs[id]
	assert(r.live, "release of a dead record")
	assert(!r.linked, "release of a linked record")
	*r = record{}
	a.free = append(a.free, id)
}

func (a *arena) valid(id RecordID) bool {
	return id != none && int(id) < len(a.recs) && a.recs[id].live
}

// push links an unlinked record id after the tail of seq.
func (a *arena) push(seq *sequence, id RecordID) {
	r := &a.recs[id]
	assert(r.live && !r.linked, "push of a record that is still linked")
	if seq.tail == none {
		seq.head = id
	} else {
		a.recs[seq.tail].next = id
		r.prev = seq.tail
	}
	seq.tail = id
	r.linked = true
	seq.n++
}

// detach unlinks id from seq and clears both of its links.
// id must be a member of seq.
func (a *arena) detach(seq *sequence, id RecordID) {
	assert(seq.n > 0, "detach from an empty sequence")
	r := &a.recs[id]
	assert(r.linked, "detach of an unlinked record")
	if r.prev == none {
		assert(seq.head == id, "detach of a record that is not in the sequence")
		seq.head = r.next
	} else {
		a.recs[r.prev].next = r.next
	}
	if r.next == none {
		assert(seq.tail == id, "detach of a record that is not in the sequence")
		seq.tail = r.prev
	} else {
		a.recs[r.next].prev = r.prev
	}
	r.prev, r.next = none, none
	r.linked = false
	seq.n--
}

// transfer moves id from one sequence to the tail of another. This is the
// only way records change container.
func (a *arena) transfer(from, to *sequence, id RecordID) {
	a.detach(from, id)
	a.push(to, id)
}

// splice appends all of src to dst in O(1) and leaves src empty.
func (a *arena) splice(dst, src *sequence) {
	if src.empty() {
		return
	}
	if dst.empty() {
		*dst = *src
	} else {
		a.recs[dst.tail].next = src.head
		a.recs[src.head].prev = dst.tail
		dst.tail = src.tail
		dst.n += src.n
	}
	*src = sequence{}
}

// verify walks seq in both directions and checks its link invariants.
func (a *arena) verify(seq *sequence) error {
	if seq.empty() {
		if seq.tail != none || seq.n != 0 {
			return fmt.Errorf("empty head but tail=%d n=%d", seq.tail, seq.n)
		}
		return nil
	}
	if a.recs[seq.head].prev != none {
		return fmt.Errorf("head %d has prev %d", seq.head, a.recs[seq.head].prev)
	}
	if a.recs[seq.tail].next != none {
		return fmt.Errorf("tail %d has next %d", seq.tail, a.recs[seq.tail].next)
	}
	seen := make(map[RecordID]bool, seq.n)
	count := 0
	last := none
	for id := seq.head; id != none; id = a.recs[id].next {
		if !a.valid(id) || !a.recs[id].linked {
			return fmt.Errorf("sequence reaches dead or unlinked record %d", id)
		}
		if seen[id] {
			return fmt.Errorf("record %d visited twice", id)
		}
		if a.recs[id].prev != last {
			return fmt.Errorf("record %d has prev %d, expected %d", id, a.recs[id].prev, last)
		}
		seen[id] = true
		last = id
		count++
	}
	if last != seq.tail {
		return fmt.Errorf("forward walk ends at %d, tail is %d", last, seq.tail)
	}
	if count != seq.n {
		return fmt.Errorf("forward walk counts %d records, sequence says %d", count, seq.n)
	}
	back := 0
	for id := seq.tail; id != none; id = a.recs[id].prev {
		back++
	}
	if back != count {
		return fmt.Errorf("backward walk counts %d records, forward %d", back, count)
	}
	return nil
}
