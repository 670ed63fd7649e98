package radixsort

// SlotCount is the number of buckets used by one distribution pass. It covers
// every byte value, since bytes outside letters and digits map to themselves.
const SlotCount = 256

// slotTable maps a byte to its bucket slot. It is filled once at init.
var slotTable [SlotCount]uint8

func init() {
	for c := 0; c < SlotCount; c++ {
		slotTable[c] = uint8(computeSlot(byte(c)))
	}
}

// computeSlot is the literal character-to-slot mapping.
//
// Letters subtract 'A' whatever their case, so lowercase letters land in
// 32..57 and 'u'..'z' collide with the digit slots 52..57.
func computeSlot(c byte) int {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z':
		return int(c) - 'A'
	case c >= '0' && c <= '9':
		return int(c-'0') + 52
	default:
		return int(c)
	}
}

// Slot returns the bucket slot for byte c.
func Slot(c byte) int {
	return int(slotTable[c])
}

// byteAt returns the byte of word at position pos, or 0 past its end.
func byteAt(word string, pos int) byte {
	if pos >= len(word) {
		return 0
	}
	return word[pos]
}

// Compare orders two words the way Sort does: position by position on their
// slots, with words padded by NUL bytes to equal length.
// It returns -1, 0 or +1.
func Compare(a, b string) int {
	n := max(len(a), len(b))
	for i := range n {
		sa, sb := Slot(byteAt(a, i)), Slot(byteAt(b, i))
		if sa < sb {
			return -1
		}
		if sa > sb {
			return 1
		}
	}
	return 0
}
