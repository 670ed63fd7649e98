package radixsort

import "fmt"

// DistributeByPosition runs one stable bucketing pass on the character at
// position pos (0-based). Words shorter than pos+1 use the NUL byte.
//
// Every record is moved, in list order, to the tail of the bucket for its slot.
// The buckets are then spliced back onto the list in ascending slot order, so
// records with equal slots keep their relative order. Only links change.
//
// It returns the number of non-empty buckets. pos must not be negative.
func (l *List) DistributeByPosition(pos int) int {
	assert(pos >= 0, fmt.Sprintf("negative character position: %d", pos))
	var buckets [SlotCount]sequence
	a := l.arena
	for id := l.seq.head; id != none; id = l.seq.head {
		slot := Slot(byteAt(a.recs[id].word, pos))
		a.transfer(&l.seq, &buckets[slot], id)
	}
	assert(l.seq.empty(), "working list not drained by distribution")
	used := 0
	for slot := range buckets {
		if buckets[slot].empty() {
			continue
		}
		used++
		a.splice(&l.seq, &buckets[slot])
	}
	return used
}
