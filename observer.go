package radixsort

import "time"

// Observer is notified about the work done by Sort.
// Calls happen synchronously on the sorting goroutine.
type Observer interface {
	// ObservePass is called after each distribution pass with the character
	// position, the number of records distributed and the number of
	// non-empty buckets.
	ObservePass(position, records, buckets int)
	// ObserveSort is called once per Sort with the number of passes run.
	ObserveSort(passes int, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) ObservePass(int, int, int)      {}
func (nopObserver) ObserveSort(int, time.Duration) {}
