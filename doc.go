/*
Package radixsort sorts short words with an LSD radix sort over a doubly
linked list.

Words are kept as records in an arena and addressed by stable IDs. A sort runs
one distribution pass per character position, from the rightmost position of
the longest word down to position 0. Each pass moves every record from the
working list into one of 256 buckets, keyed by the character at that position,
and then splices the buckets back together in slot order. Records are relinked,
never copied.

Words shorter than the current position are padded with a NUL byte, so a
shorter word sorts before a longer word with the same prefix.

# Slot mapping

Letters map to c-'A' regardless of case, digits map to 52+d, every other byte
maps to its own value. The mapping has two visible quirks:

	'A' and the NUL pad both land in slot 0   ("A" and "AA" compare equal)
	'u'..'z' share slots 52..57 with '0'..'5'  ("xu" and "x0" compare equal)

Equal keys keep their input order, since every pass is stable.
*/
package radixsort

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'radixsort'
func tracer() tracing.Trace {
	return tracing.Select("radixsort")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
