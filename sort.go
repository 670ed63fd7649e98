package radixsort

import "time"

// Sort orders the list by its words with an LSD radix sort: one
// DistributeByPosition pass per character position, from the last position of
// the longest word down to 0. Each pass is stable, so ties at a position keep
// the order set by the passes before it.
//
// Afterwards, Compare(a, b) <= 0 holds for every word a directly before b.
// An empty list, or a list of empty words, runs no pass.
func (l *List) Sort() {
	start := time.Now()
	maxLen := l.MaxWordLen()
	passes := 0
	for pos := maxLen - 1; pos >= 0; pos-- {
		buckets := l.DistributeByPosition(pos)
		passes++
		tracer().Debugf("radix pass position=%d records=%d buckets=%d", pos, l.seq.n, buckets)
		l.observer.ObservePass(pos, l.seq.n, buckets)
	}
	elapsed := time.Since(start)
	tracer().Infof("sorted %d words in %d passes (%s)", l.seq.n, passes, elapsed)
	l.observer.ObserveSort(passes, elapsed)
}

// Sorted reports whether every word is ordered before or equal to its
// successor under Compare.
func (l *List) Sorted() bool {
	first := true
	var prev string
	for w := range l.All() {
		if !first && Compare(prev, w) > 0 {
			return false
		}
		prev, first = w, false
	}
	return true
}
